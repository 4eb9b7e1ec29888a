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

	"github.com/sappy-go/di/collection"
	"github.com/sappy-go/di/internal/direflect"
)

// Config describes how a service is instantiated. Exactly one strategy
// must be set:
//
//   - Function: a func, or the name of a func in the Registry, called with
//     the resolved arguments.
//   - Module: the name of a registered module. The module itself is called
//     unless Function or FactoryMethod names one of its exported functions.
//   - Factory: an object, or the name of an object in the Registry, whose
//     FactoryMethod is called.
//
// String arguments are expanded before use: "%name%" tokens are replaced
// with parameter values and a result starting with "@" is replaced with the
// service it names.
type Config struct {
	Function      interface{}
	Module        string
	Factory       interface{}
	FactoryMethod string
	Arguments     []interface{}
	MethodCalls   []MethodCall
	Tags          []string
}

// MethodCall is a method invoked on a service right after it was built.
type MethodCall struct {
	Method    string
	Arguments []interface{}
}

// Definition is the recipe for a single service. A Definition builds its
// service at most once; the result is kept only if construction and every
// method call succeeded.
type Definition struct {
	function      interface{}
	module        string
	factory       interface{}
	factoryMethod string

	arguments   *collection.Collection[interface{}]
	methodCalls *collection.Collection[MethodCall]
	tags        *collection.Collection[string]

	initialized bool
	service     interface{}
}

// NewDefinition builds a Definition from cfg. The configuration is only
// validated when the service is first built.
func NewDefinition(cfg Config) *Definition {
	d := &Definition{
		function:      cfg.Function,
		module:        cfg.Module,
		factory:       cfg.Factory,
		factoryMethod: cfg.FactoryMethod,
		arguments:     collection.New(cfg.Arguments...),
		methodCalls:   collection.New(cfg.MethodCalls...),
		tags:          collection.New[string](),
	}
	for _, tag := range cfg.Tags {
		d.AddTag(tag)
	}
	return d
}

// Arguments returns the constructor arguments.
func (d *Definition) Arguments() []interface{} {
	return d.arguments.All()
}

// SetArguments replaces the constructor arguments.
func (d *Definition) SetArguments(args ...interface{}) *Definition {
	d.arguments = collection.New(args...)
	return d
}

// MethodCalls returns the configured method calls in order.
func (d *Definition) MethodCalls() []MethodCall {
	return d.methodCalls.All()
}

// AddMethodCall appends a method call.
func (d *Definition) AddMethodCall(method string, args ...interface{}) *Definition {
	// MethodCall holds a slice and is never equal to another one.
	_ = d.methodCalls.Add(MethodCall{Method: method, Arguments: args})
	return d
}

// AddTag tags the definition. Adding a tag twice has no effect.
func (d *Definition) AddTag(tag string) *Definition {
	if tag != "" && !d.tags.Contains(tag) {
		_ = d.tags.Add(tag)
	}
	return d
}

// Tags returns the tags in the order they were added.
func (d *Definition) Tags() []string {
	return d.tags.All()
}

// HasTag reports whether the definition carries tag.
func (d *Definition) HasTag(tag string) bool {
	return d.tags.Contains(tag)
}

// Initialized reports whether the service was built successfully.
func (d *Definition) Initialized() bool {
	return d.initialized
}

// Initialize builds the service against c, or returns the one built by an
// earlier call. Nothing is kept when construction or a method call fails,
// so a later call starts over.
func (d *Definition) Initialize(c *Container) (interface{}, error) {
	if d.initialized {
		return d.service, nil
	}

	t, err := d.target(c.registry)
	if err != nil {
		return nil, err
	}

	args, err := c.resolveArguments(d.arguments.All())
	if err != nil {
		return nil, err
	}

	service, err := c.construct(t, args)
	if err != nil {
		return nil, err
	}

	for _, call := range d.methodCalls.All() {
		if err := c.callMethod(service, call); err != nil {
			return nil, err
		}
	}

	d.initialized, d.service = true, service
	return service, nil
}

// target is a resolved constructor.
type target struct {
	fn   reflect.Value
	name string
}

func (d *Definition) target(r *Registry) (target, error) {
	if err := d.validate(); err != nil {
		return target{}, err
	}

	switch {
	case d.module != "":
		return d.moduleTarget(r)
	case d.factory != nil:
		return d.factoryTarget(r)
	}

	if name, ok := d.function.(string); ok {
		fn, err := r.function(name)
		return target{fn: fn, name: name}, err
	}
	return target{fn: reflect.ValueOf(d.function), name: direflect.FuncName(d.function)}, nil
}

func (d *Definition) moduleTarget(r *Registry) (target, error) {
	mod, err := r.module(d.module)
	if err != nil {
		return target{}, err
	}

	export, what := "", ""
	switch {
	case d.function != nil:
		export, what = d.function.(string), "function"
	case d.factoryMethod != "":
		export, what = d.factoryMethod, "factory method"
	}

	if export == "" {
		fn := direflect.Indirect(mod)
		if !direflect.IsFunc(fn) {
			return target{}, &LookupError{
				Name:   d.module,
				Reason: fmt.Sprintf("module is not a function, got %s", kindOf(fn)),
			}
		}
		return target{fn: fn, name: d.module}, nil
	}

	fn, ok := direflect.Member(mod, export)
	if !ok || !direflect.IsFunc(fn) {
		return target{}, &LookupError{
			Name:   d.module,
			Reason: fmt.Sprintf("%s %q does not exist in module", what, export),
		}
	}
	return target{fn: fn, name: d.module + "." + export}, nil
}

func (d *Definition) factoryTarget(r *Registry) (target, error) {
	var (
		factory reflect.Value
		name    string
		err     error
	)
	if s, ok := d.factory.(string); ok {
		name = s
		if factory, err = r.object(s); err != nil {
			return target{}, err
		}
	} else {
		name = direflect.TypeName(d.factory)
		factory = reflect.ValueOf(d.factory)
	}

	fn, ok := direflect.Member(factory, d.factoryMethod)
	if !ok || !direflect.IsFunc(fn) {
		return target{}, &LookupError{
			Name:   name,
			Reason: fmt.Sprintf("factory method %q does not exist in factory", d.factoryMethod),
		}
	}
	return target{fn: fn, name: name + "." + d.factoryMethod}, nil
}

func (d *Definition) validate() error {
	var strategies []string

	switch fn := d.function.(type) {
	case nil:
	case string:
		if fn == "" {
			return &ConfigurationError{Reason: `"function" must not be empty`}
		}
		if d.module == "" {
			strategies = append(strategies, "function")
		}
	default:
		if !direflect.IsFunc(reflect.ValueOf(fn)) {
			return &ConfigurationError{Reason: fmt.Sprintf(
				`"function" must be a func or a registry name, got %s`, direflect.TypeName(fn))}
		}
		if d.module != "" {
			return &ConfigurationError{Reason: `"function" must name an export when "module" is set`}
		}
		strategies = append(strategies, "function")
	}
	if d.module != "" {
		strategies = append(strategies, "module")
	}
	if d.factory != nil {
		strategies = append(strategies, "factory")
	}

	switch len(strategies) {
	case 0:
		return &ConfigurationError{
			Reason: `no instantiation strategy configured, set one of "function", "module" or "factory"`,
		}
	case 1:
	default:
		return &ConfigurationError{Reason: fmt.Sprintf(
			"conflicting instantiation strategies: %s", strings.Join(strategies, ", "))}
	}

	switch {
	case d.factory != nil:
		if s, ok := d.factory.(string); ok {
			if s == "" {
				return &ConfigurationError{Reason: `"factory" must not be empty`}
			}
		} else if v := reflect.ValueOf(d.factory); !direflect.IsObject(v) || v.Kind() == reflect.Func {
			return &ConfigurationError{Reason: fmt.Sprintf(
				`"factory" must be an object or a registry name, got %s`, direflect.TypeName(d.factory))}
		}
		if d.factoryMethod == "" {
			return &ConfigurationError{Reason: `"factory_method" is required when "factory" is set`}
		}
	case d.module != "":
		if d.function != nil && d.factoryMethod != "" {
			return &ConfigurationError{Reason: fmt.Sprintf(
				`"function" and "factory_method" are mutually exclusive for module %q`, d.module)}
		}
	default:
		if d.factoryMethod != "" {
			return &ConfigurationError{Reason: `"factory_method" requires "factory" or "module"`}
		}
	}
	return nil
}
