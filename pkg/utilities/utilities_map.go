package utilities

// Map transforms every element of arr through fn, preserving order.
func Map[T any, U any](arr []T, fn func(T) U) []U {
	mapped := make([]U, 0, len(arr))
	for _, x := range arr {
		mapped = append(mapped, fn(x))
	}

	return mapped
}
