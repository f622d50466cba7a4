package note

import "strings"

// Header renders a "/"-separated title hierarchy as markdown headings, one
// per segment, each a level deeper than the last, joined by blank lines.
func Header(title string) string {
	if strings.TrimSpace(title) == "" {
		return ""
	}
	segments := strings.Split(title, "/")
	headings := make([]string, 0, len(segments))
	for i, segment := range segments {
		headings = append(headings, strings.Repeat("#", i+1)+" "+strings.Trim(segment, " "))
	}
	return strings.Join(headings, "\n\n")
}

// Prefill fills a markdown template from the hierarchical title and the
// piped-in body, either of which may be empty.
func Prefill(title, body string) string {
	components := make([]string, 0, 2)
	if header := Header(title); header != "" {
		components = append(components, header)
	}
	if body != "" {
		components = append(components, body)
	}
	return strings.Join(components, "\n\n")
}
