package maputil

// Filter returns a new map containing only the entries which match all of the given predicates, where no predicates
// are given the map is copied.
func Filter[M ~map[K]V, K comparable, V any](m M, p ...func(k K, v V) bool) M {
	filtered := make(M, len(m))

	for k, v := range m {
		if all(k, v, p...) {
			filtered[k] = v
		}
	}

	return filtered
}

func all[K comparable, V any](k K, v V, p ...func(k K, v V) bool) bool {
	for _, fn := range p {
		if !fn(k, v) {
			return false
		}
	}

	return true
}
