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
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"
	"github.com/pkg/errors"
	"github.com/uber-go/tally"
)

const (
	_buildOperation = "di.build"
	_serviceTag     = "di.service"
)

type metrics struct {
	scope   tally.Scope
	builds  tally.Counter
	latency tally.Timer
}

func newMetrics(scope tally.Scope) *metrics {
	return &metrics{
		scope:   scope,
		builds:  scope.Counter("builds"),
		latency: scope.Timer("build_latency"),
	}
}

// record counts a finished build. A failure is counted once, by the build
// it started in, not by every build that was waiting on it.
func (m *metrics) record(d time.Duration, err error, origin bool) {
	if err != nil {
		if !origin {
			return
		}
		m.scope.Tagged(map[string]string{"error": errorKind(err)}).Counter("build_errors").Inc(1)
		return
	}
	m.builds.Inc(1)
	m.latency.Record(d)
}

func errorKind(err error) string {
	var (
		cycle    *CircularDependencyError
		notFound *ServiceNotFoundError
		config   *ConfigurationError
		lookup   *LookupError
		result   *InvalidResultError
		method   *MethodNotFoundError
		panicked *PanicError
	)
	switch {
	case errors.As(err, &cycle):
		return "circular_dependency"
	case errors.As(err, &notFound):
		return "service_not_found"
	case errors.As(err, &config):
		return "configuration"
	case errors.As(err, &lookup):
		return "lookup"
	case errors.As(err, &result):
		return "invalid_result"
	case errors.As(err, &method):
		return "method_not_found"
	case errors.As(err, &panicked):
		return "panic"
	default:
		return "constructor"
	}
}

// startSpan opens the span of a build, as a child of the build that
// requested it if any.
func (c *Container) startSpan(id string) opentracing.Span {
	var opts []opentracing.StartSpanOption
	if n := len(c.spans); n > 0 {
		opts = append(opts, opentracing.ChildOf(c.spans[n-1].Context()))
	}
	span := c.tracer.StartSpan(_buildOperation, opts...)
	span.SetTag(_serviceTag, id)
	c.spans = append(c.spans, span)
	return span
}

func (c *Container) finishSpan(span opentracing.Span, err error) {
	c.spans = c.spans[:len(c.spans)-1]
	if err != nil {
		ext.Error.Set(span, true)
		span.LogFields(otlog.Error(err))
	}
	span.Finish()
}
