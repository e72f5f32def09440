package domain

// Coalesce returns the first non-empty value from vals.
func Coalesce[T ~string](vals ...T) T {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	var zero T
	return zero
}
