// Package helpers holds fail-fast guards used by constructors.
package helpers

import (
	"reflect"
	"time"
)

// MustNonEmpty panics with panicMessage if s is empty; otherwise returns s.
// Used by constructors for required configuration strings (storage URL, registry path, key prefix).
func MustNonEmpty(s string, panicMessage string) string {
	if s == "" {
		panic(panicMessage)
	}
	return s
}

// MustNonNil panics with panicMessage if v is nil, including typed nil pointers, slices, maps,
// channels, funcs and interfaces; otherwise returns v unchanged.
func MustNonNil[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// MustPositive panics with panicMessage if d is not a positive duration; otherwise returns d.
func MustPositive(d time.Duration, panicMessage string) time.Duration {
	if d <= 0 {
		panic(panicMessage)
	}
	return d
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
