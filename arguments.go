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
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/sappy-go/di/event"
	"github.com/sappy-go/di/internal/direflect"
)

// resolveArguments expands every string argument. "%name%" tokens are
// replaced by the value of the named parameter, then a string starting
// with "@" is replaced by the service it names. Other arguments are passed
// as-is.
func (c *Container) resolveArguments(args []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(args))
	for i, arg := range args {
		s, ok := arg.(string)
		if !ok {
			out[i] = arg
			continue
		}

		s = c.interpolate(s)
		if strings.HasPrefix(s, "@") {
			svc, err := c.Get(s[1:])
			if err != nil {
				return nil, err
			}
			out[i] = svc
			continue
		}
		out[i] = s
	}
	return out, nil
}

// interpolate replaces "%name%" tokens with the string form of the named
// parameter in a single left-to-right pass. Tokens naming an undefined
// parameter are left untouched, and replaced text is never scanned again.
func (c *Container) interpolate(s string) string {
	if c.parameters.Len() == 0 || !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	for {
		i := strings.IndexByte(s, '%')
		if i < 0 {
			break
		}
		j := strings.IndexByte(s[i+1:], '%')
		if j < 0 {
			break
		}
		j += i + 1

		name := s[i+1 : j]
		if v, err := c.parameters.Get(name); name != "" && err == nil {
			b.WriteString(s[:i])
			b.WriteString(fmt.Sprint(v))
			s = s[j+1:]
			continue
		}
		// The closing '%' may open the next token.
		b.WriteString(s[:j])
		s = s[j:]
	}
	b.WriteString(s)
	return b.String()
}

// construct calls the constructor of a definition and checks what it
// produced.
func (c *Container) construct(t target, args []interface{}) (interface{}, error) {
	ft := t.fn.Type()
	if direflect.ResultCount(ft) != 1 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf(
			"%s must return exactly one value, optionally followed by an error, got %v", t.name, ft)}
	}

	in, err := direflect.CoerceArgs(ft, args)
	if err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unable to call %s", t.name), Err: err}
	}

	out, err := c.call(t.name, t.fn, in)
	if err != nil {
		return nil, errors.Wrapf(err, "%s failed", t.name)
	}

	service := out[0].Interface()
	if !direflect.IsObject(out[0]) {
		return nil, &InvalidResultError{TypeName: direflect.TypeName(service)}
	}
	return service, nil
}

// callMethod runs a configured method call against a freshly built service.
func (c *Container) callMethod(service interface{}, call MethodCall) (err error) {
	typeName := direflect.TypeName(service)
	defer func() {
		c.log.LogEvent(&event.MethodCalled{TypeName: typeName, Method: call.Method, Err: err})
	}()

	m, ok := direflect.Member(reflect.ValueOf(service), call.Method)
	if !ok || !direflect.IsFunc(m) {
		return &MethodNotFoundError{TypeName: typeName, Method: call.Method}
	}

	args, err := c.resolveArguments(call.Arguments)
	if err != nil {
		return err
	}

	name := typeName + "." + call.Method
	in, err := direflect.CoerceArgs(m.Type(), args)
	if err != nil {
		return &ConfigurationError{Reason: fmt.Sprintf("unable to call %s", name), Err: err}
	}

	_, err = c.call(name, m, in)
	return errors.Wrapf(err, "method call %s failed", name)
}

func (c *Container) call(name string, fn reflect.Value, in []reflect.Value) (out []reflect.Value, err error) {
	if c.recoverFromPanics {
		defer func() {
			if p := recover(); p != nil {
				err = &PanicError{Func: name, Value: p}
			}
		}()
	}
	return direflect.Invoke(fn, in)
}
