// Copyright (c) 2017 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package diclock

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

var _ Clock = clock.Clock(nil)

// Just a basic sanity check that everything is in order.
func TestSystemClock(t *testing.T) {
	t.Parallel()

	before := System.Now()
	assert.GreaterOrEqual(t, System.Since(before), time.Duration(0))
}

func TestMockClock(t *testing.T) {
	t.Parallel()

	c := NewMock()
	start := c.Now()
	assert.Equal(t, time.Duration(0), c.Since(start))

	c.Add(3 * time.Millisecond)
	assert.Equal(t, 3*time.Millisecond, c.Since(start))
	assert.Equal(t, start.Add(3*time.Millisecond), c.Now())
}
