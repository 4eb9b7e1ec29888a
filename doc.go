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

// Package di is a small dependency injection container.
//
// Services are described by Definitions and built lazily the first time
// they are requested. A definition names how its service is instantiated
// (a function, a module export or a factory method), the arguments to pass
// and the methods to call on the result:
//
//	c := di.New()
//	c.SetParameter("dsn", "postgres://localhost/app")
//	c.Define("db", di.Config{
//	  Function:  sql.Open,
//	  Arguments: []interface{}{"postgres", "%dsn%"},
//	})
//	c.Define("users", di.Config{
//	  Function:  NewUserStore,
//	  Arguments: []interface{}{"@db"},
//	})
//
//	users, err := di.Resolve[*UserStore](c, "users")
//
// String arguments are expanded when the service is built: "%name%" is
// replaced with the named parameter, and a value starting with "@" is
// replaced with the service it names. Every service is built at most once;
// requesting a service while it is being built fails with a
// CircularDependencyError.
//
// Functions, factories and modules may also be named by string, in which
// case they are resolved against the container's Registry.
package di
