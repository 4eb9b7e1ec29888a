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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewClonesItems(t *testing.T) {
	t.Parallel()

	nested := map[string]interface{}{"b": 1}
	items := map[string]interface{}{"a": nested, "list": []interface{}{1, 2}}
	m := New(items)

	nested["b"] = 2
	items["c"] = 3

	v, err := m.Get("a")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"b": 1}, v)
	assert.False(t, m.Has("c"))
	assert.Equal(t, []string{"a", "list"}, m.Keys())
}

func TestAllReturnsDeepCopy(t *testing.T) {
	t.Parallel()

	m := New[interface{}](nil)
	require.NoError(t, m.Set("a", map[string]interface{}{"b": 1}))

	all := m.All()
	all["a"].(map[string]interface{})["b"] = 2

	v, err := m.Get("a")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"b": 1}, v)
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	m := New[int](nil)
	_, err := m.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), `undefined item "nope"`)
}

func TestSetPreservesIdentity(t *testing.T) {
	t.Parallel()

	type service struct{ n int }
	svc := &service{n: 1}

	m := New[interface{}](nil)
	require.NoError(t, m.Set("svc", svc))

	got, err := m.Get("svc")
	require.NoError(t, err)
	assert.Same(t, svc, got)
}

func TestLocking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(*Map[string])
		do      func(*Map[string]) error
		wantErr error
	}{
		{
			name:    "ModifyLocked",
			setup:   func(m *Map[string]) { m.SetLocked("k", "v") },
			do:      func(m *Map[string]) error { return m.Set("k", "x") },
			wantErr: ErrLocked,
		},
		{
			name:    "RelockLocked",
			setup:   func(m *Map[string]) { m.SetLocked("k", "v") },
			do:      func(m *Map[string]) error { return m.SetLocked("k", "x") },
			wantErr: ErrLocked,
		},
		{
			name:    "LockExisting",
			setup:   func(m *Map[string]) { m.Set("k", "v") },
			do:      func(m *Map[string]) error { return m.SetLocked("k", "x") },
			wantErr: ErrLockExisting,
		},
		{
			name:    "RemoveLocked",
			setup:   func(m *Map[string]) { m.SetLocked("k", "v") },
			do:      func(m *Map[string]) error { return m.Remove("k") },
			wantErr: ErrLocked,
		},
		{
			name:    "RemoveMissing",
			setup:   func(m *Map[string]) {},
			do:      func(m *Map[string]) error { return m.Remove("k") },
			wantErr: ErrNotFound,
		},
		{
			name:    "SetFrozen",
			setup:   func(m *Map[string]) { m.Freeze() },
			do:      func(m *Map[string]) error { return m.Set("k", "v") },
			wantErr: ErrFrozen,
		},
		{
			name: "RemoveFrozen",
			setup: func(m *Map[string]) {
				m.Set("k", "v")
				m.Freeze()
			},
			do:      func(m *Map[string]) error { return m.Remove("k") },
			wantErr: ErrFrozen,
		},
		{
			name:    "MergeFrozen",
			setup:   func(m *Map[string]) { m.Freeze() },
			do:      func(m *Map[string]) error { return m.Merge(map[string]string{"k": "v"}) },
			wantErr: ErrFrozen,
		},
		{
			name:    "MergeLocked",
			setup:   func(m *Map[string]) { m.SetLocked("k", "v") },
			do:      func(m *Map[string]) error { return m.Merge(map[string]string{"k": "x"}) },
			wantErr: ErrLocked,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := New[string](nil)
			tt.setup(m)
			err := tt.do(m)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLockedItemKeepsValue(t *testing.T) {
	t.Parallel()

	m := New[int](nil)
	require.NoError(t, m.SetLocked("answer", 42))
	assert.True(t, m.Locked("answer"))
	assert.Error(t, m.Set("answer", 1))

	v, err := m.Get("answer")
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	m := New(map[string]int{"a": 1, "b": 2, "c": 3})
	require.NoError(t, m.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.Equal(t, 2, m.Len())
}

func TestMerge(t *testing.T) {
	t.Parallel()

	m := New(map[string]interface{}{
		"db": map[string]interface{}{
			"host": "localhost",
			"port": 5432,
		},
		"name": "app",
	})

	src := map[string]interface{}{
		"db": map[string]interface{}{
			"port": 6432,
			"user": "admin",
		},
		"name":  "svc",
		"debug": true,
	}
	require.NoError(t, m.Merge(src))

	src["db"].(map[string]interface{})["user"] = "root"

	assert.Equal(t, map[string]interface{}{
		"db": map[string]interface{}{
			"host": "localhost",
			"port": 6432,
			"user": "admin",
		},
		"name":  "svc",
		"debug": true,
	}, m.All())
	assert.Equal(t, []string{"db", "name", "debug"}, m.Keys())
}

func TestEachFollowsInsertionOrder(t *testing.T) {
	t.Parallel()

	m := New[int](nil)
	for i, k := range []string{"z", "a", "m"} {
		require.NoError(t, m.Set(k, i))
	}
	require.NoError(t, m.Set("z", 10))

	var keys []string
	var values []int
	m.Each(func(name string, v int) {
		keys = append(keys, name)
		values = append(values, v)
	})

	assert.Equal(t, []string{"z", "a", "m"}, keys)
	assert.Equal(t, []int{10, 1, 2}, values)
}
