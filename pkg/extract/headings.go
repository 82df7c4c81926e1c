package extract

import (
	"regexp"
	"strings"

	"github.com/mdforge/mdforge/pkg/types"
)

var (
	headingRegex = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	sectionRegex = regexp.MustCompile(`^(#{1,3})\s+(.+)$`)
)

// ExtractHeadings returns every ATX heading (1-6 hashes, a space, text)
// in document order.
func ExtractHeadings(text string) []types.Heading {
	var headings []types.Heading

	for _, line := range strings.Split(text, "\n") {
		m := headingRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		headings = append(headings, types.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}

	return headings
}

// SplitIntoSections splits text at every heading of level 1-3. Lines
// before the first such heading form a section with an empty heading.
// Body lines accumulate verbatim, blank lines included, so later
// bullet and sentence extraction sees the original formatting. A
// section with no heading and no non-whitespace body is dropped; a
// section with a heading and an empty body is kept.
func SplitIntoSections(text string) []types.Section {
	var sections []types.Section

	heading := ""
	started := false
	var body []string

	flush := func() {
		if !started {
			return
		}
		content := strings.Join(body, "\n")
		if heading == "" && strings.TrimSpace(content) == "" {
			return
		}
		sections = append(sections, types.Section{Heading: heading, Content: content})
	}

	for _, line := range strings.Split(text, "\n") {
		if m := sectionRegex.FindStringSubmatch(line); m != nil {
			flush()
			heading = strings.TrimSpace(m[2])
			body = body[:0:0]
			started = true
			continue
		}
		started = true
		body = append(body, line)
	}
	flush()

	return sections
}
