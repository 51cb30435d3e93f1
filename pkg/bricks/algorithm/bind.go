package algorithm

// BindFront fixes the first argument of f.
func BindFront[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// BindFront2 fixes the first two arguments of f.
func BindFront2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return f(a, b, c)
	}
}
