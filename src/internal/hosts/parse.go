package hosts

import (
	"regexp"
	"strings"
)

var (
	nonKeyRegexp  = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	nonNameRegexp = regexp.MustCompile(`[\s\v\x{FEFF}\x{A0}]+`)
	numericRegexp = regexp.MustCompile(`^[\d.]+$`)
)

// Key returns the canonical key of a host name: the name with every
// character outside [A-Za-z0-9] removed.
func Key(name string) string {
	return nonKeyRegexp.ReplaceAllString(name, "")
}

// Entry returns the canonical key and display name for one sanitized line.
// ok is false when the line does not describe a host: an empty key or name,
// or a name made of digits and dots only (a bare IPv4 address).
func Entry(line string) (key, name string, ok bool) {
	key = Key(line)
	name = nonNameRegexp.ReplaceAllString(line, "")
	if key == "" || name == "" || numericRegexp.MatchString(name) {
		return "", "", false
	}
	return key, name, true
}

// Parse sanitizes text and returns its hosts. When a key occurs more than
// once, the last occurrence wins. Empty text yields an empty mapping.
func Parse(text string) Mapping {
	result := make(Mapping)

	sanitized := Sanitize(text)
	if sanitized == "" {
		return result
	}

	for _, line := range strings.Split(sanitized, "\n") {
		if key, name, ok := Entry(line); ok {
			result[key] = name
		}
	}

	return result
}
