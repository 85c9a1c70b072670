// Package markdown renders notice and FAQ bodies and strips markup from user-supplied text.
package markdown

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer is safe for concurrent use.
type Renderer struct {
	md    goldmark.Markdown
	ugc   *bluemonday.Policy
	plain *bluemonday.Policy
}

func NewRenderer() *Renderer {
	ugc := bluemonday.UGCPolicy()
	ugc.RequireNoFollowOnLinks(true)
	ugc.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough, extension.Linkify),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
		ugc:   ugc,
		plain: bluemonday.StrictPolicy(),
	}
}

// ToHTMLSanitized converts markdown and passes the result through the UGC policy, so raw
// HTML embedded in the source never reaches the client unfiltered.
func (r *Renderer) ToHTMLSanitized(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return r.ugc.Sanitize(buf.String()), nil
}

// StripTags returns text without any markup. Entities escaped by the policy are decoded
// so plain input is returned unchanged.
func (r *Renderer) StripTags(text string) string {
	return strings.TrimSpace(html.UnescapeString(r.plain.Sanitize(text)))
}
