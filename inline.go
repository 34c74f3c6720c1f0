package md2html

import "regexp"

// Inline span patterns. Non-greedy so the nearest closing delimiter ends
// the span.
var (
	// Bold: **text**
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

	// Emphasis: __text__
	emphasisPattern = regexp.MustCompile(`__(.*?)__`)
)

// applyInline converts the first bold span and then the first emphasis span
// of a line to HTML tags. Later pairs of the same kind and unmatched
// delimiters stay literal. Substitution is lexical: the delimiters are not
// re-inspected for nesting, so interleaved pairs produce interleaved tags.
func applyInline(line string) string {
	line = replaceFirstSpan(boldPattern, line, "<b>", "</b>")
	line = replaceFirstSpan(emphasisPattern, line, "<em>", "</em>")
	return line
}

// replaceFirstSpan rewrites the first match of pattern, wrapping the
// captured text in openTag and closeTag. The rest of the line is untouched.
func replaceFirstSpan(pattern *regexp.Regexp, line, openTag, closeTag string) string {
	m := pattern.FindStringSubmatchIndex(line)
	if m == nil {
		return line
	}
	return line[:m[0]] + openTag + line[m[2]:m[3]] + closeTag + line[m[1]:]
}
