package main

import (
	"fmt"
	"io"
)

// usageLine is the one-line summary printed for argument count errors.
const usageLine = "Usage: md2html [flags] <input.md> <output.html>"

// printUsage prints the full usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input.md      Markdown file to read")
	fmt.Fprintln(w, "  output.html   HTML file to write (created or truncated)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --standalone     Wrap output in a complete HTML document")
	fmt.Fprintln(w, "      --title <s>      Document title for standalone output")
	fmt.Fprintln(w, "      --css <path>     Stylesheet file injected as a <style> block")
	fmt.Fprintln(w, "      --front-matter   Read title/author from a leading YAML block")
	fmt.Fprintln(w, "  -q, --quiet          Only show errors")
	fmt.Fprintln(w, "  -v, --verbose        Show conversion timing")
	fmt.Fprintln(w, "      --version        Print version and exit")
	fmt.Fprintln(w, "  -h, --help           Show this help")
}
