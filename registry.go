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
	"github.com/sappy-go/di/hashmap"
	"github.com/sappy-go/di/internal/direflect"
)

// Registry holds the named functions, objects and modules that definitions
// refer to by string.
//
// Plain names are resolved against registered values. Dotted names such as
// "http.handlers.NewRouter" walk from a registered value through methods,
// exported struct fields and string-keyed map entries. Modules are looked
// up by exact name only.
//
// Names are write-once. Once sealed, a Registry accepts no new names.
type Registry struct {
	values  *hashmap.Map[interface{}]
	modules *hashmap.Map[interface{}]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		values:  hashmap.New[interface{}](nil),
		modules: hashmap.New[interface{}](nil),
	}
}

// Register makes v available under name.
func (r *Registry) Register(name string, v interface{}) error {
	return register(r.values, "value", name, v)
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, v interface{}) {
	if err := r.Register(name, v); err != nil {
		panic(err)
	}
}

// RegisterModule makes a module available under name. A module is either a
// constructor function or a value whose members are exported functions.
func (r *Registry) RegisterModule(name string, module interface{}) error {
	return register(r.modules, "module", name, module)
}

func register(m *hashmap.Map[interface{}], kind, name string, v interface{}) error {
	if name == "" {
		return errors.Errorf("%s name must not be empty", kind)
	}
	if v == nil {
		return errors.Errorf("%s %q must not be nil", kind, name)
	}
	return errors.Wrapf(m.SetLocked(name, v), "unable to register %s %q", kind, name)
}

// Has reports whether a value is registered under the given plain name.
func (r *Registry) Has(name string) bool {
	return r.values.Has(name)
}

// HasModule reports whether a module is registered under name.
func (r *Registry) HasModule(name string) bool {
	return r.modules.Has(name)
}

// Seal stops the registry from accepting new names.
func (r *Registry) Seal() {
	r.values.Freeze()
	r.modules.Freeze()
}

// Sealed reports whether Seal was called.
func (r *Registry) Sealed() bool {
	return r.values.Frozen()
}

func (r *Registry) lookup(path string) (reflect.Value, string, error) {
	if v, err := r.values.Get(path); err == nil {
		return reflect.ValueOf(v), "registry." + path, nil
	}

	chunks := strings.Split(path, ".")
	resolved := "registry"
	root, err := r.values.Get(chunks[0])
	if err != nil {
		return reflect.Value{}, resolved, &LookupError{
			Name:   path,
			Reason: fmt.Sprintf("unable to resolve %q from %q", chunks[0], resolved),
		}
	}

	v := reflect.ValueOf(root)
	resolved += "." + chunks[0]
	for _, chunk := range chunks[1:] {
		m, ok := direflect.Member(v, chunk)
		if !ok {
			return reflect.Value{}, resolved, &LookupError{
				Name:   path,
				Reason: fmt.Sprintf("unable to resolve %q from %q", chunk, resolved),
			}
		}
		v = m
		resolved += "." + chunk
	}
	return v, resolved, nil
}

func (r *Registry) function(path string) (reflect.Value, error) {
	v, resolved, err := r.lookup(path)
	if err != nil {
		return v, err
	}
	v = direflect.Indirect(v)
	if !direflect.IsFunc(v) {
		return reflect.Value{}, &LookupError{
			Name:   path,
			Reason: fmt.Sprintf("expected %q to resolve as function, got %s instead", resolved, kindOf(v)),
		}
	}
	return v, nil
}

func (r *Registry) object(path string) (reflect.Value, error) {
	v, resolved, err := r.lookup(path)
	if err != nil {
		return v, err
	}
	v = direflect.Indirect(v)
	if !direflect.IsObject(v) || v.Kind() == reflect.Func {
		return reflect.Value{}, &LookupError{
			Name:   path,
			Reason: fmt.Sprintf("expected %q to resolve as object, got %s instead", resolved, kindOf(v)),
		}
	}
	return v, nil
}

func (r *Registry) module(name string) (reflect.Value, error) {
	m, err := r.modules.Get(name)
	if err != nil {
		return reflect.Value{}, &LookupError{Name: name, Reason: "module is not registered"}
	}
	return reflect.ValueOf(m), nil
}

func kindOf(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}
