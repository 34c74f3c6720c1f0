package md2html

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// frontMatterDelimiter opens and closes a front matter block.
const frontMatterDelimiter = "---"

// frontMatter holds the document metadata a leading YAML block may carry.
// Unknown keys are tolerated and ignored.
type frontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// splitFrontMatter separates a leading YAML front matter block from the
// document body. A block starts with a first line of exactly "---" and runs
// to the next such line; both delimiter lines are removed from the body.
// When the first line is not a delimiter, the content is returned unchanged
// with a nil front matter.
func splitFrontMatter(content string) (*frontMatter, string, error) {
	lines := strings.Split(content, "\n")
	if strings.TrimSpace(lines[0]) != frontMatterDelimiter {
		return nil, content, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterDelimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, "", ErrFrontMatterUnterminated
	}

	var fm frontMatter
	block := strings.Join(lines[1:end], "\n")
	if strings.TrimSpace(block) != "" {
		if err := yamlutil.Unmarshal([]byte(block), &fm); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrFrontMatterParse, err)
		}
	}

	return &fm, strings.Join(lines[end+1:], "\n"), nil
}
