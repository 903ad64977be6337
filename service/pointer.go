package service

// Value dereferences an optional request parameter, yielding the zero value when it is absent.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
