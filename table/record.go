package table

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// RootTerm is the name of the synthetic anchor record at the top of every
// tree built by [Build]. The anchor itself never appears in converted
// output; only its children do.
const RootTerm = "Root"

// Record is one node of the hierarchy built from a term stream. A record
// owns its children exclusively, and children retain arrival order.
type Record struct {
	// Term is the record's name, trimmed.
	Term string

	// Value is the record's scalar value; may be empty.
	Value string

	// ValueName is the mapping key for Value in converted output.
	ValueName string

	// Children holds the record's child records in arrival order.
	Children []*Record
}

// NewRecord creates a record with the given term, value, and value-name key.
// An empty valueName falls back to [DefaultValueName].
func NewRecord(term, value, valueName string) *Record {
	if valueName == "" {
		valueName = DefaultValueName
	}

	return &Record{
		Term:      strings.TrimSpace(term),
		Value:     value,
		ValueName: valueName,
	}
}

// AddChild appends child to the record's children.
func (r *Record) AddChild(child *Record) {
	r.Children = append(r.Children, child)
}

// Has reports whether the record has a direct child with the given term.
func (r *Record) Has(term string) bool {
	for _, child := range r.Children {
		if child.Term == term {
			return true
		}
	}

	return false
}

// Find returns every direct child with the given term, in arrival order.
func (r *Record) Find(term string) []*Record {
	var found []*Record

	for _, child := range r.Children {
		if child.Term == term {
			found = append(found, child)
		}
	}

	return found
}

// String renders the record as "term: value".
func (r *Record) String() string {
	return r.Term + ": " + r.Value
}

// Dump writes an indented rendering of the subtree rooted at r.
func (r *Record) Dump(w io.Writer) error {
	return r.dump(w, 0)
}

func (r *Record) dump(w io.Writer, depth int) error {
	_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), r)
	if err != nil {
		return err
	}

	for _, child := range r.Children {
		if err := child.dump(w, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// Build consumes the parser's entire term stream and assembles the record
// tree, rooted at a synthetic [RootTerm] anchor.
//
// Each term's parent is resolved through a lookup table mapping lowercased
// term names to the most recently created record with that name. [NoTerm]
// resolves to the root; [ElidedTerm] resolves to the most recent eligible
// record overall. Records created for arg-children or for elided-parent
// terms never become lookup anchors themselves.
//
// A term naming a parent that has not been seen attaches to the root, and
// the problem is recorded with the parser's recoverable errors. Fatal parser
// errors abort the build and propagate.
func Build(p *Parser) (*Record, error) {
	root := NewRecord(RootTerm, "", "")
	last := map[string]*Record{NoTerm: root}

	for {
		term, err := p.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return root, nil
			}

			return nil, err
		}

		record := NewRecord(term.RecordTerm, term.Value, term.ValueName)

		parent, ok := last[strings.ToLower(term.ParentTerm)]
		if !ok {
			p.errs = append(p.errs, ErrUnknownParent.With(
				slog.String("parent", term.ParentTerm),
				slog.String("term", term.RecordTerm),
			))

			parent = root
		}

		parent.AddChild(record)

		if !term.IsArgChild && term.ParentTerm != ElidedTerm {
			last[strings.ToLower(term.RecordTerm)] = record
			last[ElidedTerm] = record
		}
	}
}
