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
	"strconv"
	"time"

	"github.com/pkg/errors"
)

var _durationType = reflect.TypeOf(time.Duration(0))

// ArityError is returned when a function is called with the wrong number of
// arguments.
type ArityError struct {
	Want     int
	Got      int
	Variadic bool
}

func (e *ArityError) Error() string {
	if e.Variadic {
		return fmt.Sprintf("expected at least %d arguments, got %d", e.Want, e.Got)
	}
	return fmt.Sprintf("expected %d arguments, got %d", e.Want, e.Got)
}

// ArgumentError is returned when an argument can not be used as the type
// the function expects.
type ArgumentError struct {
	Index int
	Type  reflect.Type
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument #%d: cannot use as %v: %v", e.Index, e.Type, e.Err)
}

// Unwrap returns the underlying conversion error.
func (e *ArgumentError) Unwrap() error { return e.Err }

// Call invokes fn with args, coercing every argument to the matching
// parameter type. See Invoke for how results are handled.
func Call(fn reflect.Value, args []interface{}) ([]reflect.Value, error) {
	in, err := CoerceArgs(fn.Type(), args)
	if err != nil {
		return nil, err
	}
	return Invoke(fn, in)
}

// Invoke calls fn with prepared arguments. If the last result of fn is an
// error and is non-nil, it is returned; otherwise the results are returned
// without it.
func Invoke(fn reflect.Value, in []reflect.Value) ([]reflect.Value, error) {
	ft := fn.Type()
	out := fn.Call(in)
	if n := len(out); n > 0 && ft.Out(n-1) == _errorType {
		if e := out[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		out = out[:n-1]
	}
	return out, nil
}

// ResultCount returns the number of results of ft, not counting a trailing
// error.
func ResultCount(ft reflect.Type) int {
	n := ft.NumOut()
	if n > 0 && ft.Out(n-1) == _errorType {
		n--
	}
	return n
}

// CoerceArgs checks args against the parameters of ft and converts each
// one with Coerce.
func CoerceArgs(ft reflect.Type, args []interface{}) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, &ArityError{Want: numIn - 1, Got: len(args), Variadic: true}
		}
	} else if len(args) != numIn {
		return nil, &ArityError{Want: numIn, Got: len(args)}
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		t := paramType(ft, i)
		v, err := Coerce(arg, t)
		if err != nil {
			return nil, &ArgumentError{Index: i, Type: t, Err: err}
		}
		in[i] = v
	}
	return in, nil
}

func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

// Coerce converts v into a value of type t.
//
// Assignable values are used as-is and nil becomes the zero value of
// nilable types. Numeric values convert between numeric kinds. Strings are
// parsed into booleans, numbers and time.Duration, since interpolated
// parameters always reach functions in string form.
func Coerce(v interface{}, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, errors.New("nil is not allowed")
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}

	switch {
	case isNumber(rv.Kind()) && isNumber(t.Kind()):
		return rv.Convert(t), nil
	case rv.Kind() == reflect.String && t.Kind() == reflect.String:
		return rv.Convert(t), nil
	case rv.Kind() == reflect.String:
		return parseString(rv.String(), t)
	}

	return reflect.Value{}, errors.Errorf("incompatible type %v", rv.Type())
}

func parseString(s string, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()

	if t == _durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(int64(d))
		return out, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetFloat(f)
	default:
		return reflect.Value{}, errors.Errorf("incompatible type string")
	}
	return out, nil
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
