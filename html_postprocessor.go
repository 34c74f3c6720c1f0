package md2html

import (
	"context"
	"strings"
)

// headCloseTag anchors style insertion on standalone documents. The document
// template always emits it in lowercase.
const headCloseTag = "</head>"

// cssInjector defines the contract for CSS injection into HTML.
type cssInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string, standalone bool) string
}

// cssInjection injects CSS as a <style> block into HTML content.
type cssInjection struct{}

// InjectCSS inserts a <style> block into HTML content. On standalone
// documents the block lands immediately before the template's </head>; on
// fragments it is prepended. Placement follows the standalone flag, never
// tags found in the content: translated output carries source text
// unescaped, so a paragraph may mention </head> or <body> literally. CSS
// content is sanitized to prevent injection attacks.
func (s *cssInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string, standalone bool) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return htmlContent
	}
	if cssContent == "" {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"

	if standalone {
		if idx := strings.Index(htmlContent, headCloseTag); idx != -1 {
			return htmlContent[:idx] + styleBlock + htmlContent[idx:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
// Prevents CSS injection by escaping </style> and similar closing sequences.
func sanitizeCSS(css string) string {
	// Escape </ sequences to prevent closing the style tag prematurely
	return strings.ReplaceAll(css, "</", `<\/`)
}
