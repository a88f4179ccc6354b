package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/strata/log"
)

// Check parses a structured table and reports recoverable errors, exiting
// nonzero when any were recorded.
type Check struct {
	Source string `arg:"" default:"-" help:"Input file or '-' for stdin." name:"source"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	log.DebugContext(ctx, "check", slog.String("source", c.Source))

	_, errs, err := parseSource(c.Source)
	if err != nil {
		return err
	}

	for _, perr := range errs {
		fmt.Fprintln(os.Stderr, perr)
	}

	if n := len(errs); n > 0 {
		return fmt.Errorf("%d recoverable parse error(s)", n)
	}

	fmt.Println("ok")

	return nil
}
