package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/strata/log"
	"github.com/ardnew/strata/table"
)

//nolint:gochecknoglobals
var (
	treeTermStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	treeValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	treeKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Tree parses a structured table and prints the assembled record tree.
type Tree struct {
	Plain  bool   `default:"false" help:"Disable styled output."       negatable:""`
	Source string `arg:""          default:"-"                         help:"Input file or '-' for stdin." name:"source"`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) error {
	log.DebugContext(ctx, "tree", slog.String("source", t.Source))

	root, _, err := parseSource(t.Source)
	if err != nil {
		return err
	}

	if t.Plain {
		return root.Dump(os.Stdout)
	}

	return writeStyled(os.Stdout, root, 0)
}

// writeStyled renders the subtree rooted at r with one styled line per
// record: term name, value, and (when remapped) the value-name key.
func writeStyled(w io.Writer, r *table.Record, depth int) error {
	line := strings.Repeat("  ", depth) + treeTermStyle.Render(r.Term)

	if r.Value != "" {
		line += ": " + treeValueStyle.Render(r.Value)

		if r.ValueName != table.DefaultValueName {
			line += " " + treeKeyStyle.Render("("+r.ValueName+")")
		}
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, child := range r.Children {
		if err := writeStyled(w, child, depth+1); err != nil {
			return err
		}
	}

	return nil
}
