package array

// Returns true if any element satisfies the condition.
func Some[T any](arr []T, cond func(T) bool) bool {
	for i := 0; i < len(arr); i++ {
		if cond(arr[i]) {
			return true
		}
	}
	return false
}

// Returns true if the array contains the given value.
func Contains[T comparable](arr []T, value T) bool {
	return Some(arr, func(elem T) bool {
		return elem == value
	})
}
