package types

import (
	"sort"
	"strings"
)

// SerializeTags renders a tag map as "k1=v1; k2=v2" with keys sorted, so
// the same tag set always serializes identically. An empty or nil map
// serializes to the N/A sentinel.
func SerializeTags(tags map[string]string) string {
	if len(tags) == 0 {
		return NotAvailable
	}

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+tags[k])
	}
	return strings.Join(pairs, "; ")
}

// TagValue returns the value for key, or empty string when absent.
func TagValue(tags map[string]string, key string) string {
	if tags == nil {
		return ""
	}
	return tags[key]
}

// NameFromTags returns the Name tag, or the N/A sentinel when the
// resource carries no Name tag.
func NameFromTags(tags map[string]string) string {
	if name := TagValue(tags, "Name"); name != "" {
		return name
	}
	return NotAvailable
}
