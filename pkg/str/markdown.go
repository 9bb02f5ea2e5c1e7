package str

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// The markdown processor and sanitizer policy are built once and reused;
// both are safe for concurrent use. The renderer passes raw HTML through
// so that sanitization is an explicit, separate step.
var (
	markdownProcessor = sync.OnceValue(func() goldmark.Markdown {
		return goldmark.New(
			goldmark.WithRendererOptions(html.WithUnsafe()),
		)
	})

	ugcPolicy = sync.OnceValue(func() *bluemonday.Policy {
		return bluemonday.UGCPolicy()
	})
)

// Markdown renders CommonMark source to HTML.
//
// The output is NOT sanitized: raw HTML in the source passes through.
// Use [MarkdownSanitized] for untrusted input.
func Markdown(value string) (string, error) {
	var buf bytes.Buffer
	if err := markdownProcessor().Convert([]byte(value), &buf); err != nil {
		return "", fmt.Errorf("str: render markdown: %w", err)
	}
	return buf.String(), nil
}

// MarkdownSanitized renders CommonMark source to HTML and strips
// everything outside a conservative user-generated-content policy:
// scripts, event handlers, javascript: URLs and unknown elements are
// removed.
func MarkdownSanitized(value string) (string, error) {
	html, err := Markdown(value)
	if err != nil {
		return "", err
	}
	return ugcPolicy().Sanitize(html), nil
}
