// Package collection provides the generic slice helpers the services and
// repositories lean on.
//
// Usage:
//
//	ids := collection.Map(items, func(p PositionInput) uint { return p.ProductID })
//	distinct := collection.Unique(ids)
//	byID := collection.KeyBy(products, func(p models.Product) uint { return p.ID })
package collection

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Unique returns s without duplicates, keeping first occurrences in order.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	var out []T
	for _, v := range s {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// KeyBy indexes s into a map keyed by fn. Later elements overwrite earlier
// ones sharing a key.
func KeyBy[T any, K comparable](s []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(s))
	for _, v := range s {
		out[fn(v)] = v
	}
	return out
}
