package recipe

import "strings"

// Filter returns the records whose title, description, or cuisine contains
// term, ignoring case. A blank term returns records unchanged. Matches keep
// their original relative order.
func Filter(records []Summary, term string) []Summary {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return records
	}

	matched := make([]Summary, 0, len(records))
	for _, r := range records {
		if matches(r, needle) {
			matched = append(matched, r)
		}
	}
	return matched
}

// IsBlank reports whether a search term filters nothing.
func IsBlank(term string) bool {
	return strings.TrimSpace(term) == ""
}

func matches(r Summary, needle string) bool {
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	if r.Description != "" && strings.Contains(strings.ToLower(r.Description), needle) {
		return true
	}
	if r.Cuisine != "" && strings.Contains(strings.ToLower(r.Cuisine), needle) {
		return true
	}
	return false
}
