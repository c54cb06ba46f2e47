package nav

import "strings"

// pathname strips the query string from a URL path.
func pathname(fullURL string) string {
	if idx := strings.Index(fullURL, "?"); idx >= 0 {
		return fullURL[:idx]
	}
	return fullURL
}

// IsItemActive reports whether an item should highlight for the current
// location. Hrefs that carry a query string require an exact full-URL match.
// Prefix items match on the path prefix but yield to a child whose href is an
// exact match, so only one entry lights up at a time.
func IsItemActive(item NavItem, fullURL string) bool {
	if item.Href == "" {
		return false
	}

	if strings.Contains(item.Href, "?") {
		return item.Href == fullURL
	}

	path := pathname(fullURL)

	if item.MatchPrefix {
		if !strings.HasPrefix(path, item.Href) {
			return false
		}
		for _, child := range item.Children {
			if child.Href == fullURL {
				return false
			}
		}
		return true
	}

	return item.Href == path
}

// ActiveItemID walks a layout and returns the id of the first active entry,
// checking children before their parent. Empty when nothing matches.
func ActiveItemID(groups []NavGroup, fullURL string) string {
	for _, group := range groups {
		for _, item := range group.Items {
			for _, child := range item.Children {
				if IsItemActive(child, fullURL) {
					return child.ID
				}
			}
			if IsItemActive(item, fullURL) {
				return item.ID
			}
		}
	}
	return ""
}
