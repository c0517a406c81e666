package arr

import (
	"fmt"
	"reflect"
)

// InvokeMethod calls the exported method name on every element with args,
// for its side effects, and returns items unchanged. Return values of the
// method are discarded.
//
// Methods with pointer receivers are only visible when items holds pointers.
// Iteration stops at the first element that lacks the method
// ([ErrMethodNotFound]) or whose method does not accept args
// ([ErrBadArguments]); elements before it have already been invoked.
//
//	arr.InvokeMethod(counters, "Add", 2)
func InvokeMethod[T any](items []T, name string, args ...any) ([]T, error) {
	for i, item := range items {
		var method reflect.Value
		if rv := reflect.ValueOf(item); rv.IsValid() {
			method = rv.MethodByName(name)
		}
		if !method.IsValid() {
			return items, fmt.Errorf("%w: %T has no method %q (index %d)", ErrMethodNotFound, item, name, i)
		}
		in, err := methodArgs(method.Type(), args)
		if err != nil {
			return items, fmt.Errorf("%w: %T.%s: %v", ErrBadArguments, item, name, err)
		}
		method.Call(in)
	}
	return items, nil
}

func methodArgs(fn reflect.Type, args []any) ([]reflect.Value, error) {
	switch {
	case fn.IsVariadic() && len(args) < fn.NumIn()-1:
		return nil, fmt.Errorf("want at least %d arguments, got %d", fn.NumIn()-1, len(args))
	case !fn.IsVariadic() && len(args) != fn.NumIn():
		return nil, fmt.Errorf("want %d arguments, got %d", fn.NumIn(), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := paramType(fn, i)
		if arg == nil {
			switch want.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
				in[i] = reflect.Zero(want)
				continue
			}
			return nil, fmt.Errorf("argument %d: nil is not assignable to %s", i, want)
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(want) {
			return nil, fmt.Errorf("argument %d: %s is not assignable to %s", i, v.Type(), want)
		}
		in[i] = v
	}
	return in, nil
}

// paramType returns the type the i-th argument must have, unpacking the
// element type of a trailing variadic parameter.
func paramType(fn reflect.Type, i int) reflect.Type {
	if fn.IsVariadic() && i >= fn.NumIn()-1 {
		return fn.In(fn.NumIn() - 1).Elem()
	}
	return fn.In(i)
}
