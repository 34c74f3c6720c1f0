package md2html

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// maxHeadingLevel is the deepest ATX heading the translator recognizes.
// Lines with more leading hashes are plain paragraph text.
const maxHeadingLevel = 6

// breakTag separates successive source lines inside one <p> element.
const breakTag = "<br/>"

// List item markers. Dashes open unordered lists, stars ordered ones.
const (
	unorderedMarker = "- "
	orderedMarker   = "* "
)

// htmlTranslator defines the contract for Markdown to HTML translation.
type htmlTranslator interface {
	Translate(ctx context.Context, content string) (string, error)
}

// listState identifies which list element is currently open in the output.
type listState int

const (
	listNone listState = iota
	listUnordered
	listOrdered
)

// openTag returns the tag that starts a list of this kind.
func (s listState) openTag() string {
	switch s {
	case listUnordered:
		return "<ul>"
	case listOrdered:
		return "<ol>"
	}
	return ""
}

// closeTag returns the tag that ends a list of this kind.
func (s listState) closeTag() string {
	switch s {
	case listUnordered:
		return "</ul>"
	case listOrdered:
		return "</ol>"
	}
	return ""
}

// blockState carries the translator state between lines: the open list
// element and the pending paragraph fragments. The zero value is the
// start-of-document state.
type blockState struct {
	list      listState
	paragraph []string
}

// lineTranslator translates the constrained Markdown subset line by line.
type lineTranslator struct{}

// newLineTranslator creates the default translator.
func newLineTranslator() *lineTranslator {
	return &lineTranslator{}
}

// Translate converts content to an HTML fragment, one element per output
// line. Translation itself cannot fail; the only error is context
// cancellation, checked once before the line loop.
func (t *lineTranslator) Translate(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	var st blockState
	for _, raw := range strings.Split(content, "\n") {
		var emitted []string
		st, emitted = translateLine(st, raw)
		writeElements(&b, emitted)
	}
	writeElements(&b, finishDocument(st))
	return b.String(), nil
}

// writeElements appends each HTML element on its own line.
func writeElements(b *strings.Builder, elements []string) {
	for _, e := range elements {
		b.WriteString(e)
		b.WriteByte('\n')
	}
}

// translateLine classifies one source line and returns the updated state
// plus the HTML emitted for it, in order. Classification happens on the
// stripped line and the first matching rule wins: blank, heading,
// unordered item, ordered item, paragraph text.
func translateLine(st blockState, raw string) (blockState, []string) {
	line := strings.TrimSpace(raw)

	if line == "" {
		return flushBlocks(st)
	}

	if level, content, ok := parseHeading(line); ok {
		// Headings leave the open list and the pending paragraph alone;
		// only blank lines and end of input flush them.
		return st, []string{fmt.Sprintf("<h%d>%s</h%d>", level, content, level)}
	}

	if strings.HasPrefix(line, unorderedMarker) {
		return listItem(st, listUnordered, line[len(unorderedMarker):])
	}
	if strings.HasPrefix(line, orderedMarker) {
		return listItem(st, listOrdered, line[len(orderedMarker):])
	}

	return appendParagraphLine(st, line), nil
}

// parseHeading reports whether line is an ATX heading. The level is the
// number of leading '#' characters in the first whitespace-delimited token
// and must not exceed maxHeadingLevel; the content is the rest of the line
// after that token, stripped. Heading content carries no inline markup.
func parseHeading(line string) (level int, content string, ok bool) {
	if !strings.HasPrefix(line, "#") {
		return 0, "", false
	}

	token := line
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		token = line[:i]
	}
	for level < len(token) && token[level] == '#' {
		level++
	}
	if level > maxHeadingLevel {
		return 0, "", false
	}
	return level, strings.TrimSpace(line[len(token):]), true
}

// listItem emits one <li> element, preceded by the list opening tag when
// kind is not the currently open list. Switching marker kinds opens the new
// list without closing the previous one; closing tags are emitted only by
// blank lines and end of input.
func listItem(st blockState, kind listState, text string) (blockState, []string) {
	var out []string
	if st.list != kind {
		out = append(out, kind.openTag())
		st.list = kind
	}
	out = append(out, "<li>"+applyInline(strings.TrimSpace(text))+"</li>")
	return st, out
}

// appendParagraphLine adds one source line to the pending paragraph.
// Fragments after the first carry a break marker so the joined paragraph
// keeps the source line separation.
func appendParagraphLine(st blockState, line string) blockState {
	fragment := applyInline(line)
	if len(st.paragraph) > 0 {
		fragment = breakTag + fragment
	}
	st.paragraph = append(st.paragraph, fragment)
	return st
}

// flushBlocks emits the pending paragraph and then the closing tag of the
// open list.
func flushBlocks(st blockState) (blockState, []string) {
	st, out := flushParagraph(st)
	st, closing := closeList(st)
	return st, append(out, closing...)
}

// flushParagraph joins the pending fragments with single spaces into one
// <p> element.
func flushParagraph(st blockState) (blockState, []string) {
	if len(st.paragraph) == 0 {
		return st, nil
	}
	p := "<p>" + strings.Join(st.paragraph, " ") + "</p>"
	st.paragraph = nil
	return st, []string{p}
}

// closeList emits the closing tag of the open list element, if any.
func closeList(st blockState) (blockState, []string) {
	if st.list == listNone {
		return st, nil
	}
	tag := st.list.closeTag()
	st.list = listNone
	return st, []string{tag}
}

// finishDocument flushes whatever is still open at end of input, paragraph
// first, then the open list.
func finishDocument(st blockState) []string {
	_, out := flushBlocks(st)
	return out
}
