package engine

import (
	"regexp"
	"sort"
)

// Matches "https://host/any/path ... (Label)"
var sourceLink = regexp.MustCompile(`https?://([^/]+)/.*\(([^)]+)\)`)

// normalizeSource collapses deep links to the same provider into
// "https://<host> (<label>)". Anything else is kept verbatim.
func normalizeSource(src string) string {
	m := sourceLink.FindStringSubmatch(src)
	if m == nil {
		return src
	}
	return "https://" + m[1] + " (" + m[2] + ")"
}

// Sources lists every distinct data source, sorted.
func (s *Store) Sources() []string {
	seen := make(map[string]bool)
	for i := range s.entries {
		for _, rec := range s.entries[i].Data {
			if rec.Source == "" {
				continue
			}
			seen[normalizeSource(rec.Source)] = true
		}
	}

	sources := make([]string, 0, len(seen))
	for src := range seen {
		sources = append(sources, src)
	}
	sort.Strings(sources)
	return sources
}
