package slice

func TruncateSafe[T any](s []T, n int) []T {
	switch {
	case len(s) > n:
		return s[:n]
	default:
		return s
	}
}

// Reversed returns a copy of s with the elements in reverse order.
func Reversed[T any](s []T) []T {
	reversed := make([]T, len(s))
	for i, v := range s {
		reversed[len(s)-1-i] = v
	}
	return reversed
}
