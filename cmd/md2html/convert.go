package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	md2html "github.com/alnah/go-md2html"
)

// Sentinel errors for CLI operations. The ErrUsage and ErrMissingInput
// texts are part of the CLI contract: argument count errors print the usage
// line and a nonexistent input prints "Missing <path>", both verbatim.
var (
	ErrUsage        = errors.New(usageLine)
	ErrMissingInput = errors.New("Missing")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrReadCSS      = errors.New("failed to read CSS file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

const (
	minPositionalArgs = 2
	inputArgIndex     = 0
	outputArgIndex    = 1
)

// Output file permissions.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input md2html.Input) (string, error)
}

// Compile-time interface implementation check.
var _ Converter = (*md2html.Service)(nil)

// runConvert validates arguments, reads the input, delegates to the
// conversion service, and writes the output. The input existence check runs
// before any file is opened, and the output file is only created after a
// successful conversion, so failures never leave a fresh empty output
// behind.
func runConvert(flags *cliFlags, args []string, service Converter, env *Environment) error {
	if len(args) < minPositionalArgs {
		return ErrUsage
	}

	inputPath := args[inputArgIndex]
	outputPath := args[outputArgIndex]

	if !pathExists(inputPath) {
		return fmt.Errorf("%w %s", ErrMissingInput, inputPath)
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	cssContent, err := readCSSFile(flags.cssFile)
	if err != nil {
		return err
	}

	start := time.Now()
	htmlContent, err := service.Convert(context.Background(), md2html.Input{
		Markdown:    string(content),
		CSS:         cssContent,
		Title:       flags.title,
		Standalone:  flags.standalone,
		FrontMatter: flags.frontMatter,
	})
	if err != nil {
		return err
	}
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Converted in %s\n", time.Since(start).Round(time.Microsecond))
	}

	if err := os.WriteFile(outputPath, []byte(htmlContent), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}

	return nil
}

// pathExists reports whether the path exists at all. Directories pass this
// check and fail at read time, so the "Missing" diagnostic stays reserved
// for paths that are not there.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readCSSFile reads the optional stylesheet. An empty path means no CSS.
func readCSSFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}
