package md2html

import (
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-HTML pipeline.
type Service struct {
	preprocessor markdownPreprocessor
	translator   htmlTranslator
	wrapper      documentWrapper
	cssInjector  cssInjector
}

// New creates a Service with the default pipeline stages.
func New() *Service {
	return &Service{
		preprocessor: &sourceNormalizer{},
		translator:   newLineTranslator(),
		wrapper:      &html5Wrapper{},
		cssInjector:  &cssInjection{},
	}
}

// Convert runs the full pipeline and returns the HTML output.
// By default the result is a body fragment with one element per line; the
// Input fields enable front matter extraction, standalone wrapping, and
// stylesheet injection. The context is used for cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	// Preprocess markdown
	content := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	// Extract front matter (if enabled)
	meta := documentMeta{Title: input.Title}
	if input.FrontMatter {
		fm, body, err := splitFrontMatter(content)
		if err != nil {
			return "", fmt.Errorf("extracting front matter: %w", err)
		}
		if fm != nil {
			if meta.Title == "" {
				meta.Title = fm.Title
			}
			meta.Author = fm.Author
		}
		content = body
	}

	// Translate to HTML
	htmlContent, err := s.translator.Translate(ctx, content)
	if err != nil {
		return "", fmt.Errorf("translating to HTML: %w", err)
	}

	// Wrap in a standalone document (if requested)
	if input.Standalone {
		htmlContent = s.wrapper.WrapDocument(ctx, htmlContent, meta)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	// Inject CSS
	htmlContent = s.cssInjector.InjectCSS(ctx, htmlContent, input.CSS, input.Standalone)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	return htmlContent, nil
}
