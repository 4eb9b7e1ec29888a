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
	"github.com/sappy-go/di"
	"github.com/sappy-go/di/event"
	"go.uber.org/zap/zaptest"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	Fail()
	Failed() bool
	Name() string
	FailNow()
}

var _ zaptest.TestingT = TB(nil)

// Container is a di.Container that logs to the test and fails it instead of
// returning errors from its Must methods.
type Container struct {
	*di.Container

	tb  TB
	spy *Spy
}

// New builds a container for tests. Its events are logged to tb through
// Zap and recorded by a Spy, regardless of any WithLogger in opts.
func New(tb TB, opts ...di.Option) *Container {
	spy := new(Spy)
	logger := teeLogger{
		&event.ZapLogger{Logger: zaptest.NewLogger(tb)},
		spy,
	}
	opts = append(opts, di.WithLogger(logger))
	return &Container{
		Container: di.New(opts...),
		tb:        tb,
		spy:       spy,
	}
}

// Spy returns the recorder of the container's events.
func (c *Container) Spy() *Spy { return c.spy }

// MustGet returns the service with the given id, failing the test if it
// can not be built.
func (c *Container) MustGet(id string) interface{} {
	svc, err := c.Get(id)
	if err != nil {
		c.tb.Errorf("service %q could not be built: %v", id, err)
		c.tb.FailNow()
	}
	return svc
}

// MustDefine defines service id, failing the test on error.
func (c *Container) MustDefine(id string, cfg di.Config) {
	if err := c.Define(id, cfg); err != nil {
		c.tb.Errorf("service %q could not be defined: %v", id, err)
		c.tb.FailNow()
	}
}

// MustCompile compiles the container, failing the test on error.
func (c *Container) MustCompile() {
	if err := c.Compile(); err != nil {
		c.tb.Errorf("container didn't compile cleanly: %v", err)
		c.tb.FailNow()
	}
}

type teeLogger []event.Logger

func (t teeLogger) LogEvent(e event.Event) {
	for _, l := range t {
		l.LogEvent(e)
	}
}
