package slug

import "strings"

// Normalize canonicalizes raw tag text: trims surrounding whitespace, strips
// a single leading "#", lowercases, and joins internal words with dashes.
// The result may be empty.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.Join(strings.Fields(s), "-")
	return s
}

// Encode serializes a tag list into the flat comma-separated value owned by
// the host. An empty list encodes to "".
func Encode(tags []string) string {
	return strings.Join(tags, ",")
}

// Decode parses a flat comma-separated value into an ordered tag list. Each
// piece is normalized; empties are dropped and duplicates keep their first
// occurrence, so any input string decodes without error.
func Decode(value string) []string {
	parts := strings.Split(value, ",")
	seen := map[string]struct{}{}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := Normalize(p)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
