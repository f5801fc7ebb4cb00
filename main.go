package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nodeadmin/pathway-search/internal/apperr"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var ae *apperr.AppError
	if !errors.As(err, &ae) {
		// Flag and argument errors come straight from cobra.
		err = apperr.Wrap(err, apperr.CodeInvalidCommand, "invalid command line")
	}
	fmt.Fprintf(stderr, "pathsearch: %v\n", err)
	return apperr.ExitCode(err)
}
