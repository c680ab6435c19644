package main

import "strings"

// SearchJobTitles ranks the title table against a partial query: exact
// matches first, then prefix matches, then substring matches. An empty
// query returns the primary titles, which is what the suggestion box shows
// before typing starts. Duplicate titles are collapsed keeping the best rank.
func SearchJobTitles(titles []JobTitleEntry, query string, limit int) []string {
	if limit <= 0 {
		limit = 10
	}
	q := normalizeTitle(query)

	if q == "" {
		var out []string
		seen := make(map[string]bool)
		for _, jt := range titles {
			if !jt.IsPrimary {
				continue
			}
			key := normalizeTitle(jt.Title)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, jt.Title)
			if len(out) >= limit {
				break
			}
		}
		return out
	}

	var exact, prefix, substring []string
	seen := make(map[string]bool)
	for _, jt := range titles {
		key := normalizeTitle(jt.Title)
		if seen[key] {
			continue
		}
		switch {
		case key == q:
			seen[key] = true
			exact = append(exact, jt.Title)
		case strings.HasPrefix(key, q):
			seen[key] = true
			prefix = append(prefix, jt.Title)
		case strings.Contains(key, q):
			seen[key] = true
			substring = append(substring, jt.Title)
		}
	}

	out := append(exact, prefix...)
	out = append(out, substring...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
