package util

// Toggle adds value to the end of slice, or removes it if it is already present.
// The input slice is never modified.
func Toggle[T comparable](slice []T, value T) []T {
	out := make([]T, 0, len(slice)+1)
	found := false
	for _, item := range slice {
		if item == value {
			found = true
			continue
		}
		out = append(out, item)
	}
	if !found {
		out = append(out, value)
	}
	return out
}

func IndexOf[T comparable](slice []T, value T) int {
	for i, item := range slice {
		if item == value {
			return i
		}
	}
	return -1
}
