package fetch

import "strings"

// NextLink returns the target of the rel="next" relation in a Link
// header, or "" when there isn't one.
//
//	Link: <https://api.github.com/...&page=2>; rel="next", <...>; rel="last"
func NextLink(header string) string {
	if header == "" {
		return ""
	}

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if !strings.Contains(part, `rel="next"`) {
			continue
		}

		start := strings.IndexByte(part, '<')
		end := strings.IndexByte(part, '>')
		if start < 0 || end <= start {
			return ""
		}
		return part[start+1 : end]
	}

	return ""
}
