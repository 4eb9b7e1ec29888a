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

// Package config loads container parameters and service definitions from
// YAML.
//
// A document looks like:
//
//   parameters:
//     greeting: Hello
//     listen: ${PORT}
//
//   locked_parameters:
//     env: production
//
//   services:
//     greeter:
//       function: greeters.New
//       arguments: ["%greeting%", "@clock"]
//       method_calls:
//         - [SetTimezone, [UTC]]
//         - method: SetVerbose
//           arguments: [true]
//       tags: [http]
//
//     clock:
//       module: clock
//
// Function, factory and module names are resolved against the container's
// di.Registry. Documents loaded together are merged in order: a later
// parameter or service replaces an earlier one with the same name.
//
// Apply writes a File into a container right away. Extension defers that
// until the container is compiled:
//
//   f, err := config.LoadFiles(nil, "base.yaml", "production.yaml")
//   if err != nil {
//     return err
//   }
//   c.AddExtension(f.Expand(os.Getenv).Extension())
package config
