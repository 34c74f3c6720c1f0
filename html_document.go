package md2html

import (
	"context"
	"fmt"
	"html"
)

// documentTemplate wraps the translated fragment in a complete HTML5
// document. The verbs are the head metadata lines and the body fragment,
// both newline-terminated.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
%s</head>
<body>
%s</body>
</html>
`

// defaultTitle is used for standalone documents when neither the input nor
// the front matter supplies one.
const defaultTitle = "Document"

// documentMeta carries the head metadata for standalone output.
type documentMeta struct {
	Title  string
	Author string
}

// documentWrapper defines the contract for fragment-to-document wrapping.
type documentWrapper interface {
	WrapDocument(ctx context.Context, fragment string, meta documentMeta) string
}

// html5Wrapper renders a standalone HTML5 document around a fragment.
type html5Wrapper struct{}

// WrapDocument embeds the fragment in a complete document. Title and author
// are HTML-escaped: they come from flags or front matter and land in element
// and attribute content.
func (w *html5Wrapper) WrapDocument(ctx context.Context, fragment string, meta documentMeta) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return fragment
	}

	title := meta.Title
	if title == "" {
		title = defaultTitle
	}

	head := "<title>" + html.EscapeString(title) + "</title>\n"
	if meta.Author != "" {
		head += `<meta name="author" content="` + html.EscapeString(meta.Author) + `">` + "\n"
	}

	return fmt.Sprintf(documentTemplate, head, fragment)
}
