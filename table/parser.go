package table

import (
	"errors"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/strata/log"
)

// Directive term names recognized by the parser. Matching is
// case-insensitive on the lowercased record term.
const (
	dirValueName = "termvaluename"
	dirSection   = "section"
	dirTerm      = "term"
	dirSynonym   = "synonym"
	dirInclude   = "include"
)

// directives is the mutable state a parser accumulates from directive rows.
// All map keys are normalized to lowercase at insertion; last write wins.
type directives struct {
	// synonyms maps a lowercased alias to the name substituted for it.
	synonyms map[string]string

	// valueNames maps a lowercased record term to the key its value is
	// stored under in converted mappings.
	valueNames map[string]string

	// paramMap is the ordered parameter-name list declared by the most
	// recent Section/Term row.
	paramMap []string
}

func newDirectives() directives {
	return directives{
		synonyms:   make(map[string]string),
		valueNames: make(map[string]string),
	}
}

// Option configures a Parser.
type Option func(*Parser)

// WithRootDir sets the base directory for resolving relative include
// targets. The default is the process working directory ("." when unknown).
func WithRootDir(dir string) Option {
	return func(p *Parser) { p.rootDir = dir }
}

// WithHTTPClient sets the client used to fetch include targets by URL.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Parser) { p.client = client }
}

// WithLogger sets the logger used for parse diagnostics.
// The zero logger discards everything.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// Parser transforms a [RowSource] into a stream of [Term] values in a
// single forward pass.
//
// The pass is stateful: Synonym, TermValueName, and Section/Term rows mutate
// the parser's directive state and emit nothing, and Include rows splice a
// nested parser's entire output into the stream before the including source
// resumes. The stream is not restartable; once [Parser.Next] returns
// [io.EOF] the underlying source is exhausted.
type Parser struct {
	rows    RowSource
	rootDir string
	client  *http.Client
	logger  log.Logger

	state directives
	errs  []error

	// queue holds arg-children pending emission after their parent term.
	queue []*Term

	// include is the active nested include, drained before the next row.
	include *includeFrame

	done bool
}

// includeFrame pairs a nested parser with the resource it reads from, so the
// resource can be released when the include is exhausted or abandoned.
type includeFrame struct {
	parser *Parser
	closer io.Closer
}

// NewParser creates a Parser over the given row source.
func NewParser(rows RowSource, opts ...Option) *Parser {
	p := &Parser{
		rows:    rows,
		rootDir: ".",
		client:  http.DefaultClient,
		state:   newDirectives(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Next returns the next term in the stream.
//
// It returns [io.EOF] once the source (and any spliced includes) are
// exhausted. Any other error is fatal to the stream: an include target that
// cannot be opened, or a row source failure. Recoverable problems are
// accumulated instead; see [Parser.Errs].
func (p *Parser) Next() (*Term, error) {
	for {
		// Arg-children synthesized from the previous row go out first.
		if len(p.queue) > 0 {
			term := p.queue[0]
			p.queue = p.queue[1:]

			return term, nil
		}

		// An active include is drained completely before the next row.
		if p.include != nil {
			term, err := p.include.parser.Next()

			switch {
			case err == nil:
				return term, nil

			case errors.Is(err, io.EOF):
				p.errs = append(p.errs, p.include.parser.Errs()...)
				p.closeInclude()

				continue

			default:
				return nil, err
			}
		}

		if p.done {
			return nil, io.EOF
		}

		row, err := p.rows.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				p.done = true

				return nil, io.EOF
			}

			return nil, ErrReadRow.Wrap(err)
		}

		term, err := p.transform(row)
		if err != nil {
			return nil, err
		}

		if term == nil {
			continue
		}

		p.queue = term.ChildTerms(p.state.paramMap)

		return term, nil
	}
}

// Terms returns a single-use iterator over the remaining term stream.
// Fatal errors are yielded once with a nil term, then iteration stops.
// Abandoning the iteration releases any open include resource.
func (p *Parser) Terms() iter.Seq2[*Term, error] {
	return func(yield func(*Term, error) bool) {
		for {
			term, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}

			if !yield(term, err) {
				_ = p.Close()

				return
			}

			if err != nil {
				return
			}
		}
	}
}

// Errs returns the recoverable errors accumulated so far, in arrival order.
// Errors from exhausted includes are folded into the including parser's
// list.
func (p *Parser) Errs() []error {
	if len(p.errs) == 0 {
		return nil
	}

	errs := make([]error, len(p.errs))
	copy(errs, p.errs)

	return errs
}

// Close releases any include resource still open, for consumers that stop
// pulling before exhaustion. Closing an exhausted parser is a no-op.
func (p *Parser) Close() error {
	if p.include == nil {
		return nil
	}

	err := p.include.parser.Close()
	if cerr := p.include.closer.Close(); err == nil {
		err = cerr
	}

	p.include = nil
	p.done = true

	return err
}

// transform applies the per-row algorithm: synonym substitution, term
// construction, and directive handling. It returns a nil term for rows that
// emit nothing (blank, malformed, or directive rows). A non-nil error is
// fatal to the stream.
func (p *Parser) transform(row []string) (*Term, error) {
	if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
		return nil, nil
	}

	if len(row) < 2 {
		p.errs = append(p.errs, ErrMalformedRow.With(
			slog.String("term", strings.TrimSpace(row[0])),
		))
		p.logger.Debug("skipping malformed row",
			slog.String("term", strings.TrimSpace(row[0])),
		)

		return nil, nil
	}

	// Substitute the term cell via the synonym table, at most once:
	// the substituted name is not looked up again.
	name := row[0]
	if canon, ok := p.state.synonyms[strings.ToLower(name)]; ok {
		name = canon
	}

	term := NewTerm(name, row[1], row[2:])
	key := strings.ToLower(term.RecordTerm)

	switch key {
	case dirValueName:
		if len(term.Args) == 0 {
			p.errs = append(p.errs, ErrMalformedRow.With(
				slog.String("term", term.RecordTerm),
				slog.String("value", term.Value),
			))

			return nil, nil
		}

		p.state.valueNames[strings.ToLower(term.Value)] = term.Args[0]

		return nil, nil

	case dirSection, dirTerm:
		// Replaces the parameter map outright, clearing it when the row
		// declares no names.
		p.state.paramMap = term.Args

		return nil, nil

	case dirSynonym:
		if len(term.Args) == 0 {
			p.errs = append(p.errs, ErrMalformedSynonym.With(
				slog.String("alias", term.Value),
			))

			return nil, nil
		}

		p.state.synonyms[strings.ToLower(term.Value)] = strings.ToLower(term.Args[0])

		return nil, nil

	case dirInclude:
		return nil, p.openInclude(term.Value)
	}

	if valueName, ok := p.state.valueNames[key]; ok {
		term.ValueName = valueName
	}

	return term, nil
}

// openInclude resolves an include target, opens it as a CSV row source, and
// installs a nested parser scoped to the target's own directory.
//
// The nested parser starts with fresh directive state: synonyms, value-name
// remappings, and the parameter map do not cross an include boundary in
// either direction.
func (p *Parser) openInclude(target string) error {
	var (
		body io.ReadCloser
		dir  string
	)

	if strings.HasPrefix(target, "http") {
		resp, err := p.client.Get(target)
		if err != nil {
			return ErrInclude.Wrap(err).With(slog.String("url", target))
		}

		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()

			return ErrInclude.With(
				slog.String("url", target),
				slog.String("status", resp.Status),
			)
		}

		body, dir = resp.Body, p.rootDir
	} else {
		path := filepath.Join(p.rootDir, strings.Trim(target, "/"))

		file, err := os.Open(path)
		if err != nil {
			return ErrInclude.Wrap(err).With(slog.String("path", path))
		}

		body, dir = file, filepath.Dir(path)
	}

	p.logger.Debug("include", slog.String("target", target), slog.String("dir", dir))

	nested := NewParser(CSVRows(body),
		WithRootDir(dir),
		WithHTTPClient(p.client),
		WithLogger(p.logger),
	)

	p.include = &includeFrame{parser: nested, closer: body}

	return nil
}

// closeInclude releases the active include after normal exhaustion.
func (p *Parser) closeInclude() {
	if p.include == nil {
		return
	}

	if err := p.include.closer.Close(); err != nil {
		p.logger.Warn("closing include", slog.Any("error", err))
	}

	p.include = nil
}
