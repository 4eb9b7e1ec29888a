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

package direflect

import (
	"fmt"
	"reflect"
	"runtime"
)

var _errorType = reflect.TypeOf((*error)(nil)).Elem()

// FuncName returns a funcs formatted name
func FuncName(fn interface{}) string {
	fnV := reflect.ValueOf(fn)
	if fnV.Kind() != reflect.Func || fnV.IsNil() {
		return "n/a"
	}

	fnName := runtime.FuncForPC(fnV.Pointer()).Name()
	return fmt.Sprintf("%s()", fnName)
}

// TypeName returns the name of the dynamic type of v, or "nil".
func TypeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// IsObject reports whether v holds a non-nil, non-scalar value: a pointer,
// struct, map, slice, array, chan or func.
func IsObject(v reflect.Value) bool {
	v = Indirect(v)
	if !v.IsValid() {
		return false
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return !v.IsNil()
	case reflect.Struct, reflect.Array:
		return true
	default:
		return false
	}
}

// Indirect strips interface wrappers from v.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// Member looks up the named member of v. Methods are tried first, then
// exported struct fields (through one pointer), then entries of maps keyed
// by strings. The returned value has its interface wrappers stripped. Nil
// values have no members.
func Member(v reflect.Value, name string) (reflect.Value, bool) {
	v = Indirect(v)
	if !v.IsValid() || name == "" || isNil(v) {
		return reflect.Value{}, false
	}

	if m := v.MethodByName(name); m.IsValid() {
		return m, true
	}

	s := v
	if s.Kind() == reflect.Ptr {
		s = s.Elem()
	}

	switch s.Kind() {
	case reflect.Struct:
		sf, ok := s.Type().FieldByName(name)
		if !ok || sf.PkgPath != "" {
			return reflect.Value{}, false
		}
		// Promoted through a nil embedded pointer.
		f, err := s.FieldByIndexErr(sf.Index)
		if err != nil {
			return reflect.Value{}, false
		}
		f = Indirect(f)
		return f, f.IsValid()

	case reflect.Map:
		kt := s.Type().Key()
		if kt.Kind() != reflect.String {
			return reflect.Value{}, false
		}
		e := Indirect(s.MapIndex(reflect.ValueOf(name).Convert(kt)))
		return e, e.IsValid()
	}

	return reflect.Value{}, false
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// IsFunc reports whether v is a non-nil func.
func IsFunc(v reflect.Value) bool {
	return v.IsValid() && v.Kind() == reflect.Func && !v.IsNil()
}
