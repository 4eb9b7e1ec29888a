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

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/sappy-go/di/collection"
	"github.com/sappy-go/di/event"
	"github.com/sappy-go/di/hashmap"
	"github.com/sappy-go/di/internal/diclock"
	"github.com/sappy-go/di/internal/direflect"
	"github.com/uber-go/tally"
	"go.uber.org/multierr"
)

// Container holds service definitions, the services built from them, and
// the parameters their arguments may refer to.
//
// Services are built lazily on first Get and cached; every later Get
// returns the same instance. A Container is not safe for concurrent use.
type Container struct {
	definitions *hashmap.Map[*Definition]
	services    *hashmap.Map[interface{}]
	parameters  *hashmap.Map[interface{}]
	loading     *collection.Collection[string]
	extensions  *collection.Collection[*Extension]
	compiled    bool

	registry          *Registry
	log               event.Logger
	clock             diclock.Clock
	metrics           *metrics
	tracer            opentracing.Tracer
	spans             []opentracing.Span
	recoverFromPanics bool

	// Set while a constructor panic unwinds through nested builds.
	panicking bool
}

// New builds an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		definitions: hashmap.New[*Definition](nil),
		services:    hashmap.New[interface{}](nil),
		parameters:  hashmap.New[interface{}](nil),
		loading:     collection.New[string](),
		extensions:  collection.New[*Extension](),
		registry:    NewRegistry(),
		log:         event.NopLogger,
		clock:       diclock.System,
		metrics:     newMetrics(tally.NoopScope),
		tracer:      opentracing.NoopTracer{},
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

// Registry returns the registry that definitions resolve names against.
func (c *Container) Registry() *Registry {
	return c.registry
}

// Get returns the service with the given id, building it first if needed.
func (c *Container) Get(id string) (interface{}, error) {
	if c.loading.Contains(id) {
		return nil, &CircularDependencyError{ID: id, Chain: c.loading.All()}
	}

	if c.services.Has(id) {
		return c.services.Get(id)
	}

	def, err := c.definitions.Get(id)
	if err != nil {
		requester, _ := c.loading.Last()
		return nil, &ServiceNotFoundError{ID: id, RequestedBy: requester}
	}
	return c.build(id, def)
}

// MustGet is like Get but panics on error.
func (c *Container) MustGet(id string) interface{} {
	svc, err := c.Get(id)
	if err != nil {
		panic(err)
	}
	return svc
}

func (c *Container) build(id string, def *Definition) (service interface{}, err error) {
	requester, _ := c.loading.Last()
	c.log.LogEvent(&event.Building{ID: id, RequestedBy: requester})

	_ = c.loading.Add(id)
	span := c.startSpan(id)
	start := c.clock.Now()

	var cause error
	defer func() {
		// Every path pops id, otherwise a failed build would report a cycle
		// on the next attempt.
		_ = c.loading.Remove(id)

		// Only the build where a failure starts counts it.
		origin := cause == nil || !isBuildError(cause)
		p := recover()
		if p != nil {
			err = &PanicError{Value: p}
			origin = !c.panicking
			c.panicking = true
		}
		if c.loading.Len() == 0 {
			c.panicking = false
		}

		runtime := c.clock.Since(start)
		c.finishSpan(span, err)
		c.metrics.record(runtime, err, origin)
		c.log.LogEvent(&event.Built{
			ID:       id,
			TypeName: direflect.TypeName(service),
			Runtime:  runtime,
			Err:      err,
		})

		if p != nil {
			panic(p)
		}
	}()

	service, cause = def.Initialize(c)
	if cause != nil {
		return nil, &buildError{ID: id, Err: cause}
	}
	if err := c.services.Set(id, service); err != nil {
		return nil, errors.Wrapf(err, "unable to store service %q", id)
	}
	return service, nil
}

// Has reports whether a definition is registered under id, built or not.
// Services stored with Set do not count.
func (c *Container) Has(id string) bool {
	return c.definitions.Has(id)
}

// Initialized reports whether the service with the given id is built.
func (c *Container) Initialized(id string) bool {
	return c.services.Has(id)
}

// Set stores an already built service under id. It takes precedence over
// any definition with the same id.
func (c *Container) Set(id string, service interface{}) error {
	return c.services.Set(id, service)
}

// SetDefinition registers the definition of service id, replacing any
// previous one. A service that was already built is not affected.
func (c *Container) SetDefinition(id string, def *Definition) error {
	if id == "" {
		return errors.New("service id must not be empty")
	}
	if def == nil {
		return errors.Errorf("definition of service %q must not be nil", id)
	}
	if err := c.definitions.Set(id, def); err != nil {
		return err
	}
	c.log.LogEvent(&event.Defined{ID: id, Tags: def.Tags()})
	return nil
}

// Define is a shorthand for SetDefinition(id, NewDefinition(cfg)).
func (c *Container) Define(id string, cfg Config) error {
	return c.SetDefinition(id, NewDefinition(cfg))
}

// Definition returns the definition of service id.
func (c *Container) Definition(id string) (*Definition, error) {
	def, err := c.definitions.Get(id)
	if err != nil {
		return nil, &ServiceNotFoundError{ID: id}
	}
	return def, nil
}

// DefinitionIDs returns the ids of every definition in the order they were
// first registered.
func (c *Container) DefinitionIDs() []string {
	return c.definitions.Keys()
}

// TaggedIDs returns the ids of the definitions carrying tag, in the order
// they were first registered.
func (c *Container) TaggedIDs(tag string) []string {
	var ids []string
	c.definitions.Each(func(id string, def *Definition) {
		if def.HasTag(tag) {
			ids = append(ids, id)
		}
	})
	return ids
}

// Parameter returns the value of the named parameter.
func (c *Container) Parameter(name string) (interface{}, error) {
	return c.parameters.Get(name)
}

// HasParameter reports whether the named parameter is set.
func (c *Container) HasParameter(name string) bool {
	return c.parameters.Has(name)
}

// SetParameter creates or updates a parameter. Locked parameters can not be
// updated.
func (c *Container) SetParameter(name string, value interface{}) error {
	err := c.parameters.Set(name, value)
	c.log.LogEvent(&event.ParameterSet{Name: name, Err: err})
	return err
}

// SetLockedParameter creates a parameter that can never be changed or
// removed afterwards.
func (c *Container) SetLockedParameter(name string, value interface{}) error {
	err := c.parameters.SetLocked(name, value)
	c.log.LogEvent(&event.ParameterSet{Name: name, Locked: true, Err: err})
	return err
}

// Parameters returns the parameter map itself, so that it can be merged
// into, frozen or iterated.
func (c *Container) Parameters() *hashmap.Map[interface{}] {
	return c.parameters
}

// AddExtension registers an extension to run on Compile.
func (c *Container) AddExtension(ext *Extension) error {
	if ext == nil {
		return errors.New("extension must not be nil")
	}
	return errors.Wrap(c.extensions.Add(ext), "unable to add extension")
}

// Compile runs every registered extension in order, once. All extensions
// run even if some fail; their errors are combined. Calling Compile again
// does nothing.
func (c *Container) Compile() error {
	if c.compiled {
		return nil
	}
	c.compiled = true

	var err error
	c.extensions.Each(func(ext *Extension, _ int) {
		extErr := ext.Compile(c)
		c.log.LogEvent(&event.ExtensionCompiled{FunctionName: ext.String(), Err: extErr})
		err = multierr.Append(err, extErr)
	})
	c.log.LogEvent(&event.Compiled{Err: err})
	return err
}

// Compiled reports whether Compile was called.
func (c *Container) Compiled() bool {
	return c.compiled
}

func (c *Container) String() string {
	return fmt.Sprintf("di.Container(%d definitions, %d services, %d parameters)",
		c.definitions.Len(), c.services.Len(), c.parameters.Len())
}
