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

package di

import (
	"github.com/pkg/errors"
	"github.com/sappy-go/di/internal/direflect"
)

// Extension is a hook run against the container when it is compiled. It is
// typically used to load definitions and parameters from somewhere else,
// or to post-process tagged definitions.
type Extension struct {
	fn func(*Container) error
}

// NewExtension wraps fn into an Extension.
func NewExtension(fn func(*Container) error) *Extension {
	return &Extension{fn: fn}
}

// Compile runs the extension against c.
func (e *Extension) Compile(c *Container) error {
	if e.fn == nil {
		return errors.New("extension has no callback")
	}
	return e.fn(c)
}

func (e *Extension) String() string {
	return direflect.FuncName(e.fn)
}
