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

package event

import (
	"time"
)

// Event defines an event emitted by the container.
type Event interface {
	event() // Only this package can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Defined) event()           {}
func (*ParameterSet) event()      {}
func (*Building) event()          {}
func (*Built) event()             {}
func (*MethodCalled) event()      {}
func (*ExtensionCompiled) event() {}
func (*Compiled) event()          {}

// Defined is emitted when a definition is registered under a service id.
type Defined struct {
	ID   string
	Tags []string
}

// ParameterSet is emitted when a parameter is written.
type ParameterSet struct {
	Name   string
	Locked bool

	// Err is non-nil if the parameter could not be written.
	Err error
}

// Building is emitted before a service definition is initialized.
type Building struct {
	ID string

	// RequestedBy is the service whose arguments referenced ID, or empty
	// for a top-level lookup.
	RequestedBy string
}

// Built is emitted after a service definition was initialized.
type Built struct {
	ID string

	// TypeName is the type of the built service.
	TypeName string

	Runtime time.Duration
	Err     error
}

// MethodCalled is emitted after a post-construction method call.
type MethodCalled struct {
	TypeName string
	Method   string
	Err      error
}

// ExtensionCompiled is emitted after an extension ran.
type ExtensionCompiled struct {
	// FunctionName is the name of the extension callback.
	FunctionName string
	Err          error
}

// Compiled is emitted once every extension ran.
type Compiled struct {
	Err error
}
