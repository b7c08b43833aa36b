package hosts

import (
	"maps"
	"slices"
)

// Mapping maps a canonical host key to its display name.
type Mapping map[string]string

// Keys returns the canonical keys in ascending order.
func (m Mapping) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Has reports whether key is present.
func (m Mapping) Has(key string) bool {
	_, ok := m[key]
	return ok
}
