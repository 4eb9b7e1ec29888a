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

package hashmap

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when reading or removing a missing item.
	ErrNotFound = errors.New("item does not exist")

	// ErrLocked is returned when modifying or removing a locked item.
	ErrLocked = errors.New("item is locked")

	// ErrFrozen is returned when modifying a frozen map.
	ErrFrozen = errors.New("map is frozen")

	// ErrLockExisting is returned when locking an item that already exists.
	ErrLockExisting = errors.New("cannot lock existing item")
)

// Map is a string-keyed map with write protection.
//
// Single items may be locked when they are created, after which they can
// not be modified or removed. The whole map may be frozen, after which no
// item can be modified. Values are deep-copied when the map is built, when
// merging and when reading all items at once, so those callers never share
// maps or slices with the Map. Get and Set store and return values as-is.
//
// Iteration follows insertion order. A Map is not safe for concurrent use.
type Map[V any] struct {
	data   map[string]V
	order  []string
	locked map[string]bool
	frozen bool
}

// New builds a map holding a deep copy of items. Since Go maps are
// unordered, the initial items are inserted in lexical key order.
func New[V any](items map[string]V) *Map[V] {
	m := &Map[V]{
		data:   make(map[string]V, len(items)),
		locked: make(map[string]bool),
	}
	for _, k := range sortedKeys(items) {
		m.put(k, clone(items[k]))
	}
	return m
}

// All returns a deep copy of every item.
func (m *Map[V]) All() map[string]V {
	out := make(map[string]V, len(m.data))
	for k, v := range m.data {
		out[k] = clone(v)
	}
	return out
}

// Keys returns the item names in insertion order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, len(m.order))
	copy(keys, m.order)
	return keys
}

// Len returns the number of items.
func (m *Map[V]) Len() int {
	return len(m.data)
}

// Has reports whether an item with the given name exists.
func (m *Map[V]) Has(name string) bool {
	_, ok := m.data[name]
	return ok
}

// Get returns the item with the given name.
func (m *Map[V]) Get(name string) (V, error) {
	v, ok := m.data[name]
	if !ok {
		return v, errors.Wrapf(ErrNotFound, "attempt to retrieve undefined item %q from map", name)
	}
	return v, nil
}

// Remove deletes the item with the given name.
func (m *Map[V]) Remove(name string) error {
	if m.frozen {
		return errors.Wrapf(ErrFrozen, "unable to remove item %q", name)
	}
	if !m.Has(name) {
		return errors.Wrapf(ErrNotFound, "unable to remove item %q", name)
	}
	if m.locked[name] {
		return errors.Wrapf(ErrLocked, "unable to remove item %q", name)
	}

	delete(m.data, name)
	for i, k := range m.order {
		if k == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Set creates or updates an item.
func (m *Map[V]) Set(name string, value V) error {
	if err := m.checkWritable(name); err != nil {
		return err
	}
	m.put(name, value)
	return nil
}

// SetLocked creates an item that can never be modified or removed. Locking
// is only allowed for new items so that an item owned by one component can
// not be taken away from it by another.
func (m *Map[V]) SetLocked(name string, value V) error {
	if err := m.checkWritable(name); err != nil {
		return err
	}
	if m.Has(name) {
		return errors.Wrapf(ErrLockExisting, "unable to lock item %q", name)
	}
	m.put(name, value)
	m.locked[name] = true
	return nil
}

// Locked reports whether the named item is locked.
func (m *Map[V]) Locked(name string) bool {
	return m.locked[name]
}

// Freeze prohibits any further modification. A frozen map can not be
// unfrozen.
func (m *Map[V]) Freeze() {
	m.frozen = true
}

// Frozen reports whether Freeze was called.
func (m *Map[V]) Frozen() bool {
	return m.frozen
}

// Merge deep-copies src into the map. Nested string-keyed maps present on
// both sides are merged recursively; any other value in src replaces the
// existing one. Merge fails without modifying anything if the map is
// frozen or if src would overwrite a locked item.
func (m *Map[V]) Merge(src map[string]V) error {
	if m.frozen {
		return errors.Wrap(ErrFrozen, "unable to merge")
	}
	keys := sortedKeys(src)
	for _, k := range keys {
		if m.locked[k] {
			return errors.Wrapf(ErrLocked, "unable to merge item %q", k)
		}
	}

	for _, k := range keys {
		v := clone(src[k])
		if cur, ok := m.data[k]; ok {
			if merged, ok := mergeValues(cur, v); ok {
				m.data[k] = merged
				continue
			}
		}
		m.put(k, v)
	}
	return nil
}

// Each calls fn for every item in insertion order.
func (m *Map[V]) Each(fn func(name string, value V)) {
	for _, k := range m.Keys() {
		if v, ok := m.data[k]; ok {
			fn(k, v)
		}
	}
}

func (m *Map[V]) checkWritable(name string) error {
	if m.frozen {
		return errors.Wrapf(ErrFrozen, "unable to modify item %q", name)
	}
	if m.locked[name] {
		return errors.Wrapf(ErrLocked, "unable to modify item %q", name)
	}
	return nil
}

func (m *Map[V]) put(name string, value V) {
	if _, ok := m.data[name]; !ok {
		m.order = append(m.order, name)
	}
	m.data[name] = value
}
