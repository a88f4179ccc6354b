package cmd

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/strata/log"
	"github.com/ardnew/strata/table"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// parseSource opens the named source ("-" for stdin), consumes it through
// the parse/build pipeline, and returns the record tree along with any
// recoverable errors accumulated during the pass.
func parseSource(source string) (*table.Record, []error, error) {
	var (
		reader io.Reader
		dir    string
	)

	if source == stdinSource {
		reader, dir = os.Stdin, "."
	} else {
		file, err := os.Open(source)
		if err != nil {
			return nil, nil, err
		}
		defer file.Close()

		reader, dir = file, filepath.Dir(source)
	}

	parser := table.NewParser(
		table.CSVRows(bufio.NewReader(reader)),
		table.WithRootDir(dir),
		table.WithLogger(log.Default()),
	)
	defer parser.Close()

	root, err := table.Build(parser)
	if err != nil {
		return nil, parser.Errs(), err
	}

	for _, perr := range parser.Errs() {
		log.Warn("recoverable parse error", slog.Any("error", perr))
	}

	return root, parser.Errs(), nil
}
