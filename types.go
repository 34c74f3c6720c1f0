package md2html

// Input contains conversion parameters.
type Input struct {
	Markdown    string // Markdown content (may be empty)
	CSS         string // Stylesheet injected as a <style> block (optional)
	Title       string // Document title for standalone output; overrides front matter
	Standalone  bool   // Wrap the fragment in a complete HTML5 document
	FrontMatter bool   // Extract a leading YAML front matter block
}
