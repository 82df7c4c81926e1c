package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHeading(t *testing.T) {
	r := NewRenderer(Options{})

	out, err := r.Render([]byte("# Hello"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1")
	assert.Contains(t, string(out), "Hello</h1>")
}

func TestRenderGFMTable(t *testing.T) {
	r := NewRenderer(Options{})

	md := "| a | b |\n| --- | --- |\n| 1 | 2 |\n"
	out, err := r.Render([]byte(md))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<table>")
	assert.Contains(t, string(out), "<td>1</td>")
}

func TestRenderTaskList(t *testing.T) {
	r := NewRenderer(Options{})

	out, err := r.Render([]byte("- [x] done\n- [ ] open\n"))
	require.NoError(t, err)
	assert.Contains(t, string(out), `type="checkbox"`)
}

func TestRenderHardWraps(t *testing.T) {
	r := NewRenderer(Options{})

	out, err := r.RenderWithOptions([]byte("one\ntwo"), Options{HardWraps: true})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<br")
}

func TestRenderUnsafeOption(t *testing.T) {
	r := NewRenderer(Options{})

	md := []byte("<div>raw</div>")

	out, err := r.Render(md)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<div>raw</div>")

	out, err = r.RenderWithOptions(md, Options{Unsafe: true})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<div>raw</div>")
}

func TestRenderNamedExtensions(t *testing.T) {
	r := NewRenderer(Options{Extensions: []string{"table"}})

	// strikethrough was not requested, so the markers pass through
	out, err := r.Render([]byte("~~gone~~"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "~~gone~~")

	// unknown names are ignored rather than rejected
	out, err = r.RenderWithOptions([]byte("# ok"), Options{Extensions: []string{"bogus", "gfm"}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1")
}
