package extract

import (
	"regexp"
	"strings"

	"github.com/mdforge/mdforge/pkg/types"
)

var (
	unorderedItemRegex = regexp.MustCompile(`^\s*[-*]\s+(.+)$`)
	orderedItemRegex   = regexp.MustCompile(`^\s*\d+\.\s+(.+)$`)
	headingMarkerRegex = regexp.MustCompile(`^#{1,6}\s+`)
)

// ExtractLists scans text for contiguous runs of bullet ("-"/"*") or
// numbered ("1.") list items. A run's title is the nearest preceding
// non-blank line with heading markers and a trailing colon stripped.
// The Ordered flag reflects the first item of the run. A run ends at
// the first non-list line; empty runs are discarded.
func ExtractLists(text string) []types.StructuredList {
	var lists []types.StructuredList
	var current *types.StructuredList

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		itemText, ordered, ok := classifyListItem(line)

		if !ok {
			if current != nil {
				lists = append(lists, *current)
				current = nil
			}
			continue
		}

		if current == nil {
			current = &types.StructuredList{
				Title:   precedingTitle(lines, i),
				Ordered: ordered,
			}
		}
		current.Items = append(current.Items, itemText)
	}

	if current != nil {
		lists = append(lists, *current)
	}

	return lists
}

func classifyListItem(line string) (text string, ordered bool, ok bool) {
	if m := unorderedItemRegex.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), false, true
	}
	if m := orderedItemRegex.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true, true
	}
	return "", false, false
}

// precedingTitle returns the nearest non-blank line above index start,
// cleaned of heading markers and a trailing colon.
func precedingTitle(lines []string, start int) string {
	for i := start - 1; i >= 0; i-- {
		candidate := strings.TrimSpace(lines[i])
		if candidate == "" {
			continue
		}
		candidate = headingMarkerRegex.ReplaceAllString(candidate, "")
		candidate = strings.TrimSuffix(candidate, ":")
		return strings.TrimSpace(candidate)
	}
	return ""
}
