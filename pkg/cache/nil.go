package cache

import "reflect"

// isNil reports whether v is a nil interface or holds a nil pointer, map,
// slice, channel or function. Zero values of other kinds are not nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// valuesEqual compares two stored values. Comparable dynamic types use ==,
// everything else falls back to deep equality.
func valuesEqual[V any](a, b V) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.IsValid() && rb.IsValid() && ra.Type() == rb.Type() && ra.Comparable() && rb.Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(a, b)
}
