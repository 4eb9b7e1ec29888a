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

package ditest

import (
	"errors"
	"testing"

	"github.com/sappy-go/di"
	"github.com/sappy-go/di/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type greeter struct{ name string }

func newGreeter(name string) *greeter { return &greeter{name} }

func TestMustGet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		spy := newTB()
		c := New(spy)
		c.MustDefine("greeter", di.Config{Function: newGreeter, Arguments: []interface{}{"bob"}})

		g := c.MustGet("greeter")
		assert.Equal(t, &greeter{"bob"}, g)
		assert.Zero(t, spy.failures)
		assert.Contains(t, spy.logs.String(), `"id": "greeter"`)
	})

	t.Run("Failure", func(t *testing.T) {
		spy := newTB()
		c := New(spy)

		assert.Nil(t, c.MustGet("missing"))
		assert.Equal(t, 1, spy.failures)
		assert.Contains(t, spy.errors.String(), `service "missing" does not exist`)
	})
}

func TestMustDefine(t *testing.T) {
	spy := newTB()
	c := New(spy)

	c.MustDefine("", di.Config{Function: newGreeter})
	assert.Equal(t, 1, spy.failures)
	assert.Contains(t, spy.errors.String(), "must not be empty")
}

func TestMustCompile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		spy := newTB()
		c := New(spy)
		require.NoError(t, c.AddExtension(di.NewExtension(func(c *di.Container) error {
			return c.SetParameter("name", "alice")
		})))

		c.MustCompile()
		assert.Zero(t, spy.failures)
		assert.True(t, c.HasParameter("name"))
	})

	t.Run("Failure", func(t *testing.T) {
		spy := newTB()
		c := New(spy)
		require.NoError(t, c.AddExtension(di.NewExtension(func(*di.Container) error {
			return errors.New("great sadness")
		})))

		c.MustCompile()
		assert.Equal(t, 1, spy.failures)
		assert.Contains(t, spy.errors.String(), "great sadness")
	})
}

func TestSpy(t *testing.T) {
	c := New(t)
	c.MustDefine("greeter", di.Config{Function: newGreeter, Arguments: []interface{}{"bob"}})
	c.MustGet("greeter")

	assert.Equal(t, []string{"Defined", "Building", "Built"}, c.Spy().EventTypes())

	events := c.Spy().Events()
	require.Len(t, events, 3)
	built, ok := events[2].(*event.Built)
	require.True(t, ok)
	assert.Equal(t, "greeter", built.ID)
	assert.Equal(t, "*ditest.greeter", built.TypeName)
	assert.NoError(t, built.Err)

	c.Spy().Reset()
	assert.Empty(t, c.Spy().Events())

	c.MustGet("greeter")
	assert.Empty(t, c.Spy().Events(), "cached services are not rebuilt")
}
