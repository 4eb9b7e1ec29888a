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
	"go.uber.org/zap"
)

// ZapLogger is an event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Defined:
		fields := []zap.Field{zap.String("id", e.ID)}
		if len(e.Tags) > 0 {
			fields = append(fields, zap.Strings("tags", e.Tags))
		}
		l.Logger.Info("defined", fields...)
	case *ParameterSet:
		if e.Err != nil {
			l.Logger.Error("set parameter failed",
				zap.String("name", e.Name),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("parameter set",
				zap.String("name", e.Name),
				zap.Bool("locked", e.Locked),
			)
		}
	case *Building:
		fields := []zap.Field{zap.String("id", e.ID)}
		if e.RequestedBy != "" {
			fields = append(fields, zap.String("requested_by", e.RequestedBy))
		}
		l.Logger.Info("building", fields...)
	case *Built:
		if e.Err != nil {
			l.Logger.Error("build failed",
				zap.String("id", e.ID),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("built",
				zap.String("id", e.ID),
				zap.String("type", e.TypeName),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	case *MethodCalled:
		if e.Err != nil {
			l.Logger.Error("method call failed",
				zap.String("type", e.TypeName),
				zap.String("method", e.Method),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("method called",
				zap.String("type", e.TypeName),
				zap.String("method", e.Method),
			)
		}
	case *ExtensionCompiled:
		if e.Err != nil {
			l.Logger.Error("extension failed",
				zap.String("function", e.FunctionName),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("extension compiled",
				zap.String("function", e.FunctionName))
		}
	case *Compiled:
		if e.Err != nil {
			l.Logger.Error("compile failed", zap.Error(e.Err))
		} else {
			l.Logger.Info("compiled")
		}
	}
}
