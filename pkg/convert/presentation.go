package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mdforge/mdforge/pkg/types"
)

// PresentationConverter implements interfaces.PresentationConverter.
type PresentationConverter struct{}

// NewPresentationConverter creates a presentation converter.
func NewPresentationConverter() *PresentationConverter {
	return &PresentationConverter{}
}

var (
	slideHeadingRegex = regexp.MustCompile(`^##\s+Slide\s+\d+:\s+(.+)$`)
	anyHeadingRegex   = regexp.MustCompile(`^#{1,6}\s+(.+)$`)
	slideBulletRegex  = regexp.MustCompile(`^\s*(?:[-*]|\d+\.)\s+(.+)$`)
	italicLineRegex   = regexp.MustCompile(`^\*([^*]+)\*$`)

	slideMetaKeyword = "slide"
)

// ToMarkdown renders a presentation slide by slide, separated by "---"
// lines. The first text element with non-empty text on a slide becomes
// its title; later text elements become bullet lines, tables render as
// inline pipe tables, and images render as Markdown image links using
// contentUrl with sourceUrl as fallback. Speaker notes render as
// ">"-quoted lines.
func (c *PresentationConverter) ToMarkdown(p *types.Presentation) string {
	var sb strings.Builder

	if p.Title != "" {
		sb.WriteString("# " + p.Title + "\n\n")
		sb.WriteString(fmt.Sprintf("*%d slides*\n\n", len(p.Slides)))
	}

	for i, slide := range p.Slides {
		if i > 0 {
			sb.WriteString("\n---\n\n")
		}
		c.writeSlide(&sb, slide, i+1)
	}

	return sb.String()
}

func (c *PresentationConverter) writeSlide(sb *strings.Builder, slide types.Slide, number int) {
	titleSeen := false

	for _, el := range slide.Elements {
		switch el.Kind {
		case types.ElementText:
			text := strings.TrimSpace(el.Text)
			if text == "" {
				continue
			}
			if !titleSeen {
				// positional heuristic: the first non-empty text box is
				// the title, whatever the element is marked as
				sb.WriteString(fmt.Sprintf("## Slide %d: %s\n\n", number, firstLine(text)))
				titleSeen = true
				continue
			}
			for _, line := range strings.Split(text, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				sb.WriteString("- " + line + "\n")
			}
		case types.ElementTable:
			sb.WriteString(tableToMarkdown(el.Table))
		case types.ElementImage:
			url := el.ContentURL
			if url == "" {
				url = el.SourceURL
			}
			if url != "" {
				sb.WriteString(fmt.Sprintf("![%s](%s)\n", el.AltText, url))
			}
		}
	}

	if !titleSeen {
		sb.WriteString(fmt.Sprintf("## Slide %d:\n\n", number))
	}

	if notes := strings.TrimSpace(slide.SpeakerNotes); notes != "" {
		sb.WriteString("\n")
		for _, line := range strings.Split(notes, "\n") {
			sb.WriteString("> " + strings.TrimSpace(line) + "\n")
		}
	}
}

// ParseMarkdownToSlides reconstructs slide title/body pairs from
// Markdown by splitting on "---" separator lines. A "## Slide N: Title"
// heading wins over any generic heading as the slide title. Bullet and
// numbered lines and pipe-table row literals become body lines. Lines
// that are italic-wrapped and mention "slide" are deck metadata and are
// skipped, as are ">"-quoted notes lines.
func (c *PresentationConverter) ParseMarkdownToSlides(markdown string) []types.SlideContent {
	var slides []types.SlideContent

	for _, chunk := range splitSlideChunks(markdown) {
		slide, ok := parseSlideChunk(chunk)
		if !ok {
			continue
		}
		slides = append(slides, slide)
	}

	return slides
}

func splitSlideChunks(markdown string) [][]string {
	var chunks [][]string
	var current []string

	for _, line := range strings.Split(markdown, "\n") {
		if strings.TrimSpace(line) == "---" {
			chunks = append(chunks, current)
			current = nil
			continue
		}
		current = append(current, line)
	}
	chunks = append(chunks, current)

	return chunks
}

func parseSlideChunk(lines []string) (types.SlideContent, bool) {
	slide := types.SlideContent{Layout: "TITLE_AND_BODY"}
	titleSet := false
	var fallbackTitle string
	hasContent := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// notes lines are skipped during reverse parse
		if strings.HasPrefix(line, ">") {
			continue
		}

		// italic metadata lines mentioning slides are deck chrome
		if m := italicLineRegex.FindStringSubmatch(line); m != nil {
			if strings.Contains(strings.ToLower(m[1]), slideMetaKeyword) {
				continue
			}
		}

		if m := slideHeadingRegex.FindStringSubmatch(line); m != nil {
			slide.Title = strings.TrimSpace(m[1])
			titleSet = true
			hasContent = true
			continue
		}

		if m := anyHeadingRegex.FindStringSubmatch(line); m != nil {
			if fallbackTitle == "" {
				fallbackTitle = strings.TrimSpace(m[1])
			}
			hasContent = true
			continue
		}

		if isGridRow(line) {
			if isGridSeparator(line) {
				continue
			}
			slide.Body = append(slide.Body, line)
			hasContent = true
			continue
		}

		if m := slideBulletRegex.FindStringSubmatch(line); m != nil {
			slide.Body = append(slide.Body, strings.TrimSpace(m[1]))
			hasContent = true
			continue
		}
	}

	if !titleSet {
		slide.Title = fallbackTitle
	}

	return slide, hasContent
}

// SlidesToPresentation lifts parsed slide contents back into the
// structured presentation model, one text element for the title and one
// per body line, ready for write-back.
func SlidesToPresentation(title string, slides []types.SlideContent) *types.Presentation {
	p := &types.Presentation{Title: title}

	for _, sc := range slides {
		slide := types.Slide{Layout: sc.Layout, SpeakerNotes: sc.Notes}
		slide.Elements = append(slide.Elements, types.PageElement{
			Kind: types.ElementText,
			Text: sc.Title,
		})
		if len(sc.Body) > 0 {
			slide.Elements = append(slide.Elements, types.PageElement{
				Kind: types.ElementText,
				Text: strings.Join(sc.Body, "\n"),
			})
		}
		p.Slides = append(p.Slides, slide)
	}

	return p
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return strings.TrimSpace(text[:idx])
	}
	return text
}
