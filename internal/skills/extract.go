package skills

import "strings"

// Extract scans text against the dictionary and returns the set of
// normalized skill names present. The function is pure: it only reads
// the compiled catalog and never fails, so calling it concurrently for
// different inputs is fine.
func (d *Dictionary) Extract(text string) Set {
	found := make(Set)

	if strings.TrimSpace(text) == "" {
		return found
	}

	for _, e := range d.entries {
		if !e.match.MatchString(text) {
			continue
		}

		// Keywords with an upper pattern require the full-caps form
		// somewhere in the text, case-sensitive.
		if e.upper != nil && !e.upper.MatchString(text) {
			continue
		}

		found.Add(e.name)
	}

	return found
}
