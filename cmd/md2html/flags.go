package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all md2html flags.
type cliFlags struct {
	standalone  bool
	title       string
	cssFile     string
	frontMatter bool
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses command-line flags and returns the remaining positional
// arguments. Parse failures are reported by pflag on stderr together with
// the usage text before the error is returned.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.BoolVarP(&f.standalone, "standalone", "s", false, "wrap output in a complete HTML document")
	fs.StringVar(&f.title, "title", "", "document title for standalone output")
	fs.StringVar(&f.cssFile, "css", "", "stylesheet file injected as a <style> block")
	fs.BoolVar(&f.frontMatter, "front-matter", false, "read title/author from a leading YAML block")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show conversion timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
