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
	"fmt"
	"reflect"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type document struct {
	Parameters       parameters `yaml:"parameters"`
	LockedParameters parameters `yaml:"locked_parameters"`
	Services         services   `yaml:"services"`
}

type parameters []Parameter

func (p *parameters) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var byName map[string]interface{}
	if err := unmarshal(&byName); err != nil {
		return err
	}
	names, err := orderedKeys(unmarshal, byName)
	if err != nil {
		return err
	}
	for _, name := range names {
		*p = append(*p, Parameter{Name: name, Value: normalize(byName[name])})
	}
	return nil
}

type services []Service

func (s *services) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var byID map[string]Service
	if err := unmarshal(&byID); err != nil {
		return err
	}
	ids, err := orderedKeys(unmarshal, byID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		svc := byID[id]
		svc.ID = id
		*s = append(*s, svc)
	}
	return nil
}

// orderedKeys returns the keys of byID in document order, as written.
//
// The ordered decode resolves keys such as y, on or 80 to bools and
// numbers, while the string-keyed decode keeps their text. Those keys are
// matched back to the text that resolves to the same value.
func orderedKeys[V any](unmarshal func(interface{}) error, byID map[string]V) ([]string, error) {
	var order yaml.MapSlice
	if err := unmarshal(&order); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(order))
	for _, item := range order {
		if k, ok := item.Key.(string); ok {
			seen[k] = true
		}
	}
	var pending []string
	for k := range byID {
		if !seen[k] {
			pending = append(pending, k)
		}
	}
	sort.Strings(pending)

	keys := make([]string, 0, len(order))
	for _, item := range order {
		if k, ok := item.Key.(string); ok {
			keys = append(keys, k)
			continue
		}
		i := indexResolving(pending, item.Key)
		if i < 0 {
			return nil, errors.Errorf("unable to recover the name of key %v", item.Key)
		}
		keys = append(keys, pending[i])
		pending = append(pending[:i], pending[i+1:]...)
	}
	return keys, nil
}

func indexResolving(texts []string, key interface{}) int {
	for i, text := range texts {
		var v interface{}
		if err := yaml.Unmarshal([]byte(text), &v); err == nil && reflect.DeepEqual(v, key) {
			return i
		}
	}
	return -1
}

type rawService struct {
	Function      string        `yaml:"function"`
	Module        string        `yaml:"module"`
	Factory       string        `yaml:"factory"`
	FactoryMethod string        `yaml:"factory_method"`
	Arguments     []interface{} `yaml:"arguments"`
	MethodCalls   []MethodCall  `yaml:"method_calls"`
	Tags          []string      `yaml:"tags"`
}

// UnmarshalYAML decodes a service and normalizes its arguments.
func (s *Service) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw rawService
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*s = Service{
		Function:      raw.Function,
		Module:        raw.Module,
		Factory:       raw.Factory,
		FactoryMethod: raw.FactoryMethod,
		Arguments:     normalizeSlice(raw.Arguments),
		MethodCalls:   raw.MethodCalls,
		Tags:          raw.Tags,
	}
	return nil
}

// UnmarshalYAML accepts either the [name, [args...]] form or the
// {method: name, arguments: [args...]} form.
func (m *MethodCall) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var seq []interface{}
	if err := unmarshal(&seq); err == nil {
		return m.fromSequence(seq)
	}

	var obj struct {
		Method    string        `yaml:"method"`
		Arguments []interface{} `yaml:"arguments"`
	}
	if err := unmarshal(&obj); err != nil {
		return errors.Wrap(err, "method call must be [name, [args...]] or {method: name, arguments: [args...]}")
	}
	if obj.Method == "" {
		return errors.New("method call has no method name")
	}
	m.Method, m.Arguments = obj.Method, normalizeSlice(obj.Arguments)
	return nil
}

func (m *MethodCall) fromSequence(seq []interface{}) error {
	if len(seq) == 0 || len(seq) > 2 {
		return errors.Errorf("method call must have a name and at most one argument list, got %d items", len(seq))
	}
	name, ok := seq[0].(string)
	if !ok || name == "" {
		return errors.Errorf("method call name must be a non-empty string, got %v", seq[0])
	}

	var args []interface{}
	if len(seq) == 2 && seq[1] != nil {
		if args, ok = seq[1].([]interface{}); !ok {
			return errors.Errorf("arguments of method call %q must be a sequence", name)
		}
	}
	m.Method, m.Arguments = name, normalizeSlice(args)
	return nil
}

// normalize turns the map[interface{}]interface{} and yaml.MapSlice values
// produced by YAML into map[string]interface{}, recursively.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, v := range t {
			m[fmt.Sprint(k)] = normalize(v)
		}
		return m
	case yaml.MapSlice:
		m := make(map[string]interface{}, len(t))
		for _, item := range t {
			m[fmt.Sprint(item.Key)] = normalize(item.Value)
		}
		return m
	case []interface{}:
		return normalizeSlice(t)
	default:
		return v
	}
}

func normalizeSlice(s []interface{}) []interface{} {
	if s == nil {
		return nil
	}
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = normalize(v)
	}
	return out
}
