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
	"go.uber.org/dig"
)

// Provide exposes service id of c to a dig container as a T. The service is
// built on the first dig invocation that needs a T, not before.
func Provide[T any](c *Container, dc *dig.Container, id string, opts ...dig.ProvideOption) error {
	ctor := func() (T, error) {
		return Resolve[T](c, id)
	}
	return errors.Wrapf(dc.Provide(ctor, opts...), "unable to provide service %q to dig", id)
}

// DefineFromDig defines service id of c as the T held by a dig container.
func DefineFromDig[T any](c *Container, dc *dig.Container, id string) error {
	fn := func() (T, error) {
		var out T
		err := dc.Invoke(func(v T) {
			out = v
		})
		return out, err
	}
	return c.Define(id, Config{Function: fn})
}
