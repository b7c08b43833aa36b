package hosts

import (
	"strings"

	"github.com/miekg/dns"
)

// Format controls how Build renders each line.
type Format struct {
	HostIP    string
	LineSpace string
	LineBreak string
}

// Build renders one "<HostIP><LineSpace><name><LineBreak>" line per entry,
// ordered by canonical key. An empty mapping yields "".
func Build(m Mapping, f Format) string {
	if len(m) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, key := range m.Keys() {
		sb.WriteString(f.HostIP)
		sb.WriteString(f.LineSpace)
		sb.WriteString(m[key])
		sb.WriteString(f.LineBreak)
	}
	return sb.String()
}

// InvalidNames returns, ordered by key, the display names that are not
// syntactically valid domain names. It only reports; Build keeps them.
func InvalidNames(m Mapping) []string {
	var invalid []string
	for _, key := range m.Keys() {
		if _, ok := dns.IsDomainName(m[key]); !ok {
			invalid = append(invalid, m[key])
		}
	}
	return invalid
}
