package events

import "strings"

const linkParam = "event="

// Link returns the fragment that addresses an event: "#event=<id>".
func Link(id string) string {
	return "#" + linkParam + id
}

// ParseLink extracts an event id from a bare id, a "#event=<id>" fragment,
// or any URL or path whose fragment carries one.
func ParseLink(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	frag := s
	hasFragment := false
	if i := strings.LastIndex(s, "#"); i >= 0 {
		frag = s[i+1:]
		hasFragment = true
	}

	for _, part := range strings.Split(frag, "&") {
		if id, ok := strings.CutPrefix(part, linkParam); ok {
			if id == "" {
				return "", false
			}
			return id, true
		}
	}

	if hasFragment || strings.ContainsAny(s, "=/ ") {
		return "", false
	}
	return s, true
}
