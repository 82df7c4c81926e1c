// Package render turns Markdown into HTML previews using goldmark.
package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/mdforge/mdforge/pkg/errors"
)

// Options control a single render invocation.
type Options struct {
	// Extensions names goldmark extensions to enable; unknown names are
	// ignored. Empty selects the GFM defaults.
	Extensions []string

	// HardWraps renders single newlines as <br>
	HardWraps bool

	// Unsafe passes raw HTML through instead of dropping it
	Unsafe bool
}

// Renderer renders Markdown into HTML. A Renderer is stateless and safe
// to share across goroutines.
type Renderer struct {
	defaults Options
}

// NewRenderer constructs a renderer with the given default options.
func NewRenderer(defaults Options) *Renderer {
	return &Renderer{defaults: defaults}
}

// Render renders Markdown into HTML using the renderer's defaults.
func (r *Renderer) Render(markdown []byte) ([]byte, error) {
	return r.RenderWithOptions(markdown, r.defaults)
}

// RenderWithOptions renders Markdown into HTML using the provided
// options.
func (r *Renderer) RenderWithOptions(markdown []byte, opts Options) ([]byte, error) {
	engine := newEngine(opts)
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, errors.NewRenderError("markdown render failed", err)
	}
	return buf.Bytes(), nil
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func newEngine(opts Options) goldmark.Markdown {
	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(collectExtensions(opts.Extensions)...),
	}

	if opts.HardWraps {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(html.WithHardWraps()))
	}
	if opts.Unsafe {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	return goldmark.New(engineOptions...)
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
