package hosts

// Merge writes every entry of src into dst, overwriting dst's value on key
// collision, and returns dst. A nil dst returns src and a nil src returns dst
// unchanged.
//
// Merge mutates dst and is not safe for concurrent use on the same dst.
func Merge(dst, src Mapping) Mapping {
	if dst == nil {
		return src
	}
	if src == nil {
		return dst
	}
	for key, name := range src {
		dst[key] = name
	}
	return dst
}

// MergeAll folds mappings into a new mapping in argument order.
func MergeAll(mappings ...Mapping) Mapping {
	result := make(Mapping)
	for _, m := range mappings {
		result = Merge(result, m)
	}
	return result
}
