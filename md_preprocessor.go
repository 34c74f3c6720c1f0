package md2html

import (
	"context"
	"regexp"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// markdownPreprocessor defines the contract for markdown preprocessing.
type markdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// sourceNormalizer applies transformations before line translation.
type sourceNormalizer struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for
// translation. Currently that is line ending normalization only, so the
// translator can split on \n regardless of how the source was saved.
func (p *sourceNormalizer) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
