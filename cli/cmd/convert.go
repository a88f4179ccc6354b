package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/strata/log"
	"github.com/ardnew/strata/table"
)

// Convert parses a structured table and writes the converted nested mapping
// to stdout in the chosen format.
type Convert struct {
	Format string `default:"yaml" enum:"json,yaml" help:"Output format."               short:"f"`
	Indent int    `default:"2"                     help:"Indent width."                short:"i"`
	Source string `arg:""         default:"-"      help:"Input file or '-' for stdin." name:"source"`
}

// Run executes the convert command.
func (c *Convert) Run(ctx context.Context) error {
	log.DebugContext(ctx, "convert",
		slog.String("source", c.Source),
		slog.String("format", c.Format),
	)

	root, _, err := parseSource(c.Source)
	if err != nil {
		return err
	}

	value := table.Convert(root)

	if c.Format == "json" {
		return table.EncodeJSON(os.Stdout, value, c.Indent)
	}

	return table.EncodeYAML(os.Stdout, value, c.Indent)
}
