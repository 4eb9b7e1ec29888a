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
	"fmt"
	"io"
	"strings"
)

// ConsoleLogger is an event logger that attempts to write human-readable
// messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[DI] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Defined:
		if len(e.Tags) > 0 {
			l.logf("DEFINE\t\t%s [%s]", e.ID, strings.Join(e.Tags, ", "))
		} else {
			l.logf("DEFINE\t\t%s", e.ID)
		}
	case *ParameterSet:
		switch {
		case e.Err != nil:
			l.logf("ERROR\t\tFailed to set parameter %s: %v", e.Name, e.Err)
		case e.Locked:
			l.logf("PARAM\t\t%s (locked)", e.Name)
		default:
			l.logf("PARAM\t\t%s", e.Name)
		}
	case *Building:
		if e.RequestedBy != "" {
			l.logf("BUILD\t\t%s (requested by %s)", e.ID, e.RequestedBy)
		} else {
			l.logf("BUILD\t\t%s", e.ID)
		}
	case *Built:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to build %s: %v", e.ID, e.Err)
		} else {
			l.logf("BUILT\t\t%s <= %s in %s", e.ID, e.TypeName, e.Runtime)
		}
	case *MethodCalled:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to call %s.%s: %v", e.TypeName, e.Method, e.Err)
		} else {
			l.logf("CALL\t\t%s.%s", e.TypeName, e.Method)
		}
	case *ExtensionCompiled:
		if e.Err != nil {
			l.logf("ERROR\t\tExtension %s failed: %v", e.FunctionName, e.Err)
		} else {
			l.logf("EXTENSION\t%s", e.FunctionName)
		}
	case *Compiled:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to compile: %v", e.Err)
		} else {
			l.logf("COMPILED")
		}
	}
}
