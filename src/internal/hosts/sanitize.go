package hosts

import (
	"net/netip"
	"regexp"
	"strings"
)

const localNames = `(?:localhost|localdomain|local|broadcasthost)`

var (
	commentRegexp = regexp.MustCompile(`(?m)#.*$`)
	tokenRegexp   = regexp.MustCompile(`[^\s\v\p{Zs}\x{FEFF}]+`)
	// A line led by a local name, optionally dot-prefixed or chained
	// (".localdomain", "localhost.localdomain"), is dropped up to its end.
	localLineRegexp = regexp.MustCompile(`(?im)^[ \t\r\f\v\p{Zs}\x{FEFF}]*\.?` + localNames +
		`(?:\.` + localNames + `)*\.?(?:[ \t\r\f\v\p{Zs}\x{FEFF}].*)?$`)
	blankRegexp = regexp.MustCompile(`[\s\v\p{Zs}\x{FEFF}]+`)
)

var strippedAddresses = map[string]struct{}{
	"255.255.255.255": {},
	"127.0.0.1":       {},
	"0.0.0.0":         {},
	"::1":             {},
}

// Sanitize reduces raw hosts-file text to one candidate host name per line.
//
// Comments, well-known loopback/broadcast addresses, loopback, link-local and
// multicast IPv6 literals, and lines led by localhost-style names are removed;
// every remaining run of blanks becomes a single newline. Sanitize is
// idempotent and returns "" for empty input.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	text = commentRegexp.ReplaceAllString(text, "")
	text = tokenRegexp.ReplaceAllStringFunc(text, func(token string) string {
		if isStrippedAddress(token) {
			return ""
		}
		return token
	})
	text = localLineRegexp.ReplaceAllString(text, "")
	text = collapse(text)

	// Hosts that trailed an address on the same line are line-leading now.
	return collapse(localLineRegexp.ReplaceAllString(text, ""))
}

func collapse(text string) string {
	return strings.Trim(blankRegexp.ReplaceAllString(text, "\n"), "\n")
}

func isStrippedAddress(token string) bool {
	if _, ok := strippedAddresses[token]; ok {
		return true
	}
	if !strings.Contains(token, ":") {
		return false
	}

	// fe80::1%lo0 and friends, including zone suffixes netip rejects.
	if isLinkLocalShape(token) {
		return true
	}

	addr, err := netip.ParseAddr(token)
	if err != nil || !addr.Is6() {
		return false
	}
	return addr.IsLoopback() ||
		addr.IsUnspecified() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsMulticast()
}

func isLinkLocalShape(token string) bool {
	head, _, ok := strings.Cut(token, ":")
	if !ok || len(head) < 2 || !strings.EqualFold(head[:2], "fe") {
		return false
	}
	for _, c := range head {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}
