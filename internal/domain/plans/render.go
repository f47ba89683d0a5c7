package plans

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithUnsafe()),
	)
	ugc = bluemonday.UGCPolicy()
)

// RenderContent turns plan content (markdown, possibly with inline HTML)
// into HTML that is safe to embed in a page.
func RenderContent(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return ugc.Sanitize(content)
	}
	return ugc.Sanitize(buf.String())
}
