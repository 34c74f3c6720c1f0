// Package md2html converts a constrained subset of Markdown to HTML.
//
// # Supported Syntax
//
// Translation works line by line and recognizes exactly four constructs:
//
//   - ATX headings, # through ###### (levels 1 to 6)
//   - unordered list items: lines starting with "- "
//   - ordered list items: lines starting with "* "
//   - paragraphs: any other non-blank line
//
// Consecutive paragraph lines merge into a single <p> element with <br/>
// between the source lines. On list items and paragraph lines the first
// **bold** pair becomes <b> and the first __emphasis__ pair becomes <em>;
// heading content is emitted verbatim. Blank lines end the pending
// paragraph and close the open list, and whatever is still open at end of
// input is flushed, paragraph first.
//
// Everything else is passed through as literal paragraph text. There is no
// escaping of source content and no support for nesting, code blocks, or
// links.
//
// # Quick Start
//
// Create a service and convert markdown:
//
//	svc := md2html.New()
//	html, err := svc.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nSome **bold** text.",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(html), 0644)
//
// The result is a body fragment with one element per line. Use
// Input.Standalone to wrap it in a complete HTML5 document.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Line ending normalization (CRLF and CR to LF)
//  2. YAML front matter extraction (Input.FrontMatter)
//  3. Line-by-line translation to an HTML fragment
//  4. Standalone document wrapping (Input.Standalone, Input.Title)
//  5. Stylesheet injection (Input.CSS)
//
// Stages 2, 4, and 5 only run when the corresponding Input field asks for
// them.
package md2html
