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

package collection

import (
	"github.com/pkg/errors"
	"github.com/sappy-go/di/internal/direflect"
)

var (
	// ErrDuplicate is returned when adding an item that is already present.
	ErrDuplicate = errors.New("item already exists in collection")

	// ErrNotFound is returned when removing an item that is not present.
	ErrNotFound = errors.New("item does not exist in collection")

	// ErrOutOfRange is returned for indexed access outside of the collection.
	ErrOutOfRange = errors.New("index out of range")
)

// Collection is an ordered sequence of items.
//
// Items are compared by identity: comparable values with ==, maps, slices
// and funcs by their backing pointer. A Collection is not safe for
// concurrent use.
type Collection[T any] struct {
	items []T
}

// New builds a collection holding the given items in order. Duplicates in
// items are kept; only Add rejects them.
func New[T any](items ...T) *Collection[T] {
	c := &Collection[T]{items: make([]T, len(items))}
	copy(c.items, items)
	return c
}

// Len returns the number of items in the collection.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// First returns the first item, or false if the collection is empty.
func (c *Collection[T]) First() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[0], true
}

// Last returns the last item, or false if the collection is empty.
func (c *Collection[T]) Last() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[len(c.items)-1], true
}

// Add appends item to the collection. It fails with ErrDuplicate if the
// same item is already present.
func (c *Collection[T]) Add(item T) error {
	if c.Contains(item) {
		return ErrDuplicate
	}
	c.items = append(c.items, item)
	return nil
}

// Get returns the item at index i.
func (c *Collection[T]) Get(i int) (T, error) {
	if err := c.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return c.items[i], nil
}

// Set replaces the item at index i. It never grows the collection.
func (c *Collection[T]) Set(i int, value T) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.items[i] = value
	return nil
}

// All returns a copy of the items in order.
func (c *Collection[T]) All() []T {
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Each calls fn for every item in order with the item and its index.
// Items added by fn are not visited.
func (c *Collection[T]) Each(fn func(item T, i int)) {
	for i, item := range c.All() {
		fn(item, i)
	}
}

// Remove deletes every occurrence of item from the collection.
func (c *Collection[T]) Remove(item T) error {
	if !c.Contains(item) {
		return ErrNotFound
	}

	kept := c.items[:0]
	for _, it := range c.items {
		if !direflect.Same(it, item) {
			kept = append(kept, it)
		}
	}
	// Release references held past the new length.
	for i := len(kept); i < len(c.items); i++ {
		var zero T
		c.items[i] = zero
	}
	c.items = kept
	return nil
}

// Contains reports whether item is present in the collection.
func (c *Collection[T]) Contains(item T) bool {
	for _, it := range c.items {
		if direflect.Same(it, item) {
			return true
		}
	}
	return false
}

func (c *Collection[T]) checkIndex(i int) error {
	if i < 0 || i >= len(c.items) {
		return errors.Wrapf(ErrOutOfRange, "index #%d is out of range of 0-%d", i, len(c.items)-1)
	}
	return nil
}
