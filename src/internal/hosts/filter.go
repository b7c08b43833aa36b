package hosts

// Exclude returns a new mapping holding the entries of m whose key is not
// present in allow. Only allow's keys are consulted; a nil or empty allow
// excludes nothing.
func Exclude(m, allow Mapping) Mapping {
	result := make(Mapping, len(m))
	for key, name := range m {
		if allow.Has(key) {
			continue
		}
		result[key] = name
	}
	return result
}
