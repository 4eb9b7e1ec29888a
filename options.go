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
	"github.com/opentracing/opentracing-go"
	"github.com/sappy-go/di/event"
	"github.com/sappy-go/di/internal/diclock"
	"github.com/uber-go/tally"
)

// An Option configures a Container.
type Option interface {
	apply(*Container)
}

// WithLogger sets the logger receiving container events. Containers log
// nothing by default.
func WithLogger(l event.Logger) Option {
	return loggerOption{l}
}

type loggerOption struct{ l event.Logger }

func (o loggerOption) apply(c *Container) {
	if o.l != nil {
		c.log = o.l
	}
}

// WithRegistry sets the registry that string functions, factories and
// modules are resolved against. Containers otherwise start with an empty
// registry of their own.
func WithRegistry(r *Registry) Option {
	return registryOption{r}
}

type registryOption struct{ r *Registry }

func (o registryOption) apply(c *Container) {
	if o.r != nil {
		c.registry = o.r
	}
}

// WithMetrics reports build counts, failures and latencies to scope.
//
// A failure is counted once in build_errors, tagged with its kind, by the
// build where it started; the builds waiting on it are not counted. A
// constructor panic counts as a "panic" failure before it propagates.
func WithMetrics(scope tally.Scope) Option {
	return metricsOption{scope}
}

type metricsOption struct{ scope tally.Scope }

func (o metricsOption) apply(c *Container) {
	if o.scope != nil {
		c.metrics = newMetrics(o.scope)
	}
}

// WithTracer records a span for every service build. Nested builds become
// child spans of the build that requested them.
func WithTracer(t opentracing.Tracer) Option {
	return tracerOption{t}
}

type tracerOption struct{ t opentracing.Tracer }

func (o tracerOption) apply(c *Container) {
	if o.t != nil {
		c.tracer = o.t
	}
}

// RecoverFromPanics turns panics in constructors and method calls into
// errors.
func RecoverFromPanics() Option {
	return recoverOption{}
}

type recoverOption struct{}

func (recoverOption) apply(c *Container) {
	c.recoverFromPanics = true
}

func withClock(clock diclock.Clock) Option {
	return clockOption{clock}
}

type clockOption struct{ clock diclock.Clock }

func (o clockOption) apply(c *Container) {
	c.clock = o.clock
}
