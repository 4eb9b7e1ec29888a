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
	"reflect"
	"sort"
)

// clone returns a deep copy of the maps, slices and interfaces reachable
// from v. Pointers, structs and funcs are copied by value.
func clone[V any](v V) V {
	var out V
	src := reflect.ValueOf(&v).Elem()
	reflect.ValueOf(&out).Elem().Set(deepCopy(src))
	return out
}

func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return out

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out

	default:
		return v
	}
}

// mergeValues merges src into dst when both hold string-keyed maps of the
// same type.
func mergeValues[V any](dst, src V) (V, bool) {
	d, s := reflect.ValueOf(&dst).Elem(), reflect.ValueOf(&src).Elem()
	if !mergeInto(d, s) {
		return dst, false
	}
	return dst, true
}

func mergeInto(dst, src reflect.Value) bool {
	dst, src = unwrap(dst), unwrap(src)
	if dst.Kind() != reflect.Map || src.Kind() != reflect.Map {
		return false
	}
	if dst.Type() != src.Type() || dst.Type().Key().Kind() != reflect.String || dst.IsNil() {
		return false
	}

	iter := src.MapRange()
	for iter.Next() {
		k, sv := iter.Key(), iter.Value()
		if dv := dst.MapIndex(k); dv.IsValid() && mergeInto(dv, sv) {
			continue
		}
		dst.SetMapIndex(k, sv)
	}
	return true
}

func unwrap(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
