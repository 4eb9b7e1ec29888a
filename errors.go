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
	"strings"

	"github.com/pkg/errors"
)

// ConfigurationError is returned when a definition or a call site is set up
// in a way that can never succeed: conflicting or missing instantiation
// strategies, constructors with an unsupported signature, or arguments
// that do not fit the parameters of the function they are passed to.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

// Unwrap returns the underlying error, if any.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// LookupError is returned when a name can not be resolved against the
// registry: a missing module, a missing export, or a dotted path that stops
// resolving half way.
type LookupError struct {
	Name   string
	Reason string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup of %q failed: %s", e.Name, e.Reason)
}

// InvalidResultError is returned when a constructor produces something that
// is not an object.
type InvalidResultError struct {
	TypeName string
}

func (e *InvalidResultError) Error() string {
	return fmt.Sprintf("unable to initialize service: expected an object, got %s", e.TypeName)
}

// MethodNotFoundError is returned when a configured method call names a
// member that the service does not have or that is not callable.
type MethodNotFoundError struct {
	TypeName string
	Method   string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("unable to execute method call %q: %s has no such method", e.Method, e.TypeName)
}

// ServiceNotFoundError is returned when a service is neither built nor
// defined. RequestedBy holds the service whose build asked for it, if any.
type ServiceNotFoundError struct {
	ID          string
	RequestedBy string
}

func (e *ServiceNotFoundError) Error() string {
	if e.RequestedBy == "" {
		return fmt.Sprintf("service %q does not exist", e.ID)
	}
	return fmt.Sprintf("service %q does not exist, requested by %q", e.ID, e.RequestedBy)
}

// CircularDependencyError is returned when a service is requested while it
// is still being built. Chain lists the services being built, outermost
// first.
type CircularDependencyError struct {
	ID    string
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	path := append(append([]string(nil), e.Chain...), e.ID)
	return fmt.Sprintf("circular dependency detected while loading service %q: %s",
		e.ID, strings.Join(path, " -> "))
}

// PanicError is returned instead of crashing when a constructor or a method
// call panics and the container was built with RecoverFromPanics. Without
// it the panic propagates, and a PanicError with no Func is only reported
// to the logger and the metrics.
type PanicError struct {
	Func  string
	Value interface{}
}

func (e *PanicError) Error() string {
	if e.Func == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic: %v in func: %q", e.Value, e.Func)
}

// buildError is returned by Get when the definition of a service fails.
type buildError struct {
	ID  string
	Err error
}

func (e *buildError) Error() string {
	return fmt.Sprintf("failed to build service %q: %v", e.ID, e.Err)
}

func (e *buildError) Unwrap() error { return e.Err }

// Cause supports github.com/pkg/errors.Cause.
func (e *buildError) Cause() error { return e.Err }

func isBuildError(err error) bool {
	var b *buildError
	return errors.As(err, &b)
}
