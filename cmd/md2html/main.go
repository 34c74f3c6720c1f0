package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	md2html "github.com/alnah/go-md2html"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Parse flags first to get verbose
	flags, args, err := parseFlags(os.Args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(ExitSuccess)
		}
		// pflag already reported the problem and the usage text.
		os.Exit(ExitError)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		os.Exit(ExitSuccess)
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := runConvert(flags, args, md2html.New(), env); err != nil {
		fmt.Fprintln(env.Stderr, renderError(err))
		os.Exit(ExitError)
	}
}
