package item

import "strings"

// MakeItemID derives the deterministic item id slug(name)+"-"+unit.
// Two imports of the same name+unit therefore hit the same row.
func MakeItemID(name, unit string) string {
	return Slugify(name) + "-" + strings.ToLower(strings.TrimSpace(unit))
}

// Slugify lowercases, maps every non-alphanumeric run to a single
// hyphen and trims the ends.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
