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

package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sappy-go/di"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// Parameter is a named parameter value.
type Parameter struct {
	Name  string
	Value interface{}
}

// Service is the configuration of a single service.
type Service struct {
	ID            string
	Function      string
	Module        string
	Factory       string
	FactoryMethod string
	Arguments     []interface{}
	MethodCalls   []MethodCall
	Tags          []string
}

// MethodCall is a method call configured on a service.
type MethodCall struct {
	Method    string
	Arguments []interface{}
}

// File is a parsed configuration document. Items keep the order they
// appear in.
type File struct {
	Parameters       []Parameter
	LockedParameters []Parameter
	Services         []Service
}

// Parse parses a single YAML document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, errors.Wrap(err, "unable to parse configuration")
	}
	return &File{
		Parameters:       doc.Parameters,
		LockedParameters: doc.LockedParameters,
		Services:         doc.Services,
	}, nil
}

// Load parses every document read from readers and merges them in order.
func Load(readers ...io.Reader) (*File, error) {
	f := new(File)
	for i, r := range readers {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read configuration #%d", i)
		}
		next, err := Parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, "configuration #%d", i)
		}
		f.Merge(next)
	}
	return f, nil
}

// LoadFiles resolves, parses and merges the named files in order. A nil
// resolver looks files up relative to the working directory and the
// executable.
func LoadFiles(resolver FileResolver, files ...string) (*File, error) {
	if resolver == nil {
		resolver = NewRelativeResolver()
	}

	f := new(File)
	for _, name := range files {
		next, err := loadFile(resolver, name)
		if err != nil {
			return nil, err
		}
		f.Merge(next)
	}
	return f, nil
}

func loadFile(resolver FileResolver, name string) (_ *File, err error) {
	r, err := resolver.Resolve(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open configuration %q", name)
	}
	defer func() {
		err = multierr.Append(err, r.Close())
	}()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, errors.Wrapf(err, "unable to read configuration %q", name)
	}
	f, err := Parse(buf.Bytes())
	return f, errors.Wrapf(err, "configuration %q", name)
}

// Merge merges other into f. Parameters and services of other replace the
// ones of f with the same name, keeping their original position; new ones
// are appended.
func (f *File) Merge(other *File) *File {
	f.Parameters = mergeParameters(f.Parameters, other.Parameters)
	f.LockedParameters = mergeParameters(f.LockedParameters, other.LockedParameters)

	for _, svc := range other.Services {
		replaced := false
		for i := range f.Services {
			if f.Services[i].ID == svc.ID {
				f.Services[i], replaced = svc, true
				break
			}
		}
		if !replaced {
			f.Services = append(f.Services, svc)
		}
	}
	return f
}

func mergeParameters(dst, src []Parameter) []Parameter {
	for _, p := range src {
		replaced := false
		for i := range dst {
			if dst[i].Name == p.Name {
				dst[i], replaced = p, true
				break
			}
		}
		if !replaced {
			dst = append(dst, p)
		}
	}
	return dst
}

// Expand replaces ${var} and $var in string parameter values, including
// strings nested in maps and lists, based on the mapping function.
func (f *File) Expand(mapping func(string) string) *File {
	for _, params := range [][]Parameter{f.Parameters, f.LockedParameters} {
		for i := range params {
			params[i].Value = expand(params[i].Value, mapping)
		}
	}
	return f
}

func expand(v interface{}, mapping func(string) string) interface{} {
	switch t := v.(type) {
	case string:
		return os.Expand(t, mapping)
	case map[string]interface{}:
		for k, v := range t {
			t[k] = expand(v, mapping)
		}
		return t
	case []interface{}:
		for i, v := range t {
			t[i] = expand(v, mapping)
		}
		return t
	default:
		return v
	}
}

// Apply sets every parameter of f on c and defines every service. It goes
// on after a failure; all errors are returned together.
func (f *File) Apply(c *di.Container) error {
	var err error
	for _, p := range f.Parameters {
		err = multierr.Append(err, c.SetParameter(p.Name, p.Value))
	}
	for _, p := range f.LockedParameters {
		err = multierr.Append(err, c.SetLockedParameter(p.Name, p.Value))
	}
	for _, svc := range f.Services {
		err = multierr.Append(err, errors.Wrapf(
			c.SetDefinition(svc.ID, svc.Definition()), "unable to define service %q", svc.ID))
	}
	return err
}

// Extension returns an extension applying f when the container is compiled.
func (f *File) Extension() *di.Extension {
	return di.NewExtension(f.Apply)
}

// Definition converts the service configuration into a definition.
func (s Service) Definition() *di.Definition {
	cfg := di.Config{
		Module:        s.Module,
		FactoryMethod: s.FactoryMethod,
		Arguments:     s.Arguments,
		Tags:          s.Tags,
	}
	// Unset strategies must stay nil, not "".
	if s.Function != "" {
		cfg.Function = s.Function
	}
	if s.Factory != "" {
		cfg.Factory = s.Factory
	}
	for _, mc := range s.MethodCalls {
		cfg.MethodCalls = append(cfg.MethodCalls, di.MethodCall{Method: mc.Method, Arguments: mc.Arguments})
	}
	return di.NewDefinition(cfg)
}
