package table

import (
	"strings"
)

// Sentinel parent names assigned during term decomposition.
//
// The values are stable identifiers, not display strings: the tree builder
// keys its parent lookup table with them.
const (
	// NoTerm marks a term whose name cell contains no '.'.
	NoTerm = "<no_term>"

	// ElidedTerm marks a term whose name cell begins with '.', eliding the
	// parent component.
	ElidedTerm = "<elided_term>"
)

// DefaultValueName is the mapping key used for a record's own value unless a
// TermValueName directive remapped it.
const DefaultValueName = "@value"

// Term is one parsed row: a name/value pair plus positional arguments.
//
// A Term is transient. The parser constructs one per row and the tree
// builder consumes it immediately; it is never retained.
type Term struct {
	// ParentTerm is the dotted prefix of the name cell, or one of the
	// sentinels [NoTerm] and [ElidedTerm].
	ParentTerm string

	// RecordTerm is the term's own name, trimmed, never empty.
	RecordTerm string

	// Value is the trimmed value cell.
	Value string

	// ValueName is the mapping key for Value ([DefaultValueName] unless
	// remapped by a TermValueName directive).
	ValueName string

	// Args holds the trimmed positional argument cells in arrival order.
	Args []string

	// IsArgChild reports whether this term was synthesized from another
	// term's positional arguments.
	IsArgChild bool
}

// NewTerm parses the cells of one row into a Term.
//
// A dotted name cell is split on its first '.', both halves trimmed; an
// empty prefix yields [ElidedTerm]. A name cell without a dot yields
// [NoTerm]. The value and every argument cell are trimmed, preserving
// argument order.
func NewTerm(name, value string, args []string) *Term {
	t := &Term{
		Value:     strings.TrimSpace(value),
		ValueName: DefaultValueName,
	}

	if parent, record, ok := strings.Cut(name, "."); ok {
		t.ParentTerm = strings.TrimSpace(parent)
		t.RecordTerm = strings.TrimSpace(record)

		if t.ParentTerm == "" {
			t.ParentTerm = ElidedTerm
		}
	} else {
		t.ParentTerm = NoTerm
		t.RecordTerm = strings.TrimSpace(name)
	}

	if len(args) > 0 {
		t.Args = make([]string, len(args))
		for i, arg := range args {
			t.Args[i] = strings.TrimSpace(arg)
		}
	}

	return t
}

// ChildTerms expands the term's positional arguments into synthetic child
// terms using the given ordered parameter names.
//
// Parameter names pair positionally with Args; pairing stops at the shorter
// sequence. Each pair whose trimmed halves are both non-empty produces a
// term named "RecordTerm.param" carrying the argument as its value, marked
// IsArgChild, with no arguments of its own.
func (t *Term) ChildTerms(paramMap []string) []*Term {
	n := min(len(paramMap), len(t.Args))

	children := make([]*Term, 0, n)

	for i := range n {
		param := strings.TrimSpace(paramMap[i])
		if param == "" || t.Args[i] == "" {
			continue
		}

		child := NewTerm(t.RecordTerm+"."+param, t.Args[i], nil)
		child.IsArgChild = true

		children = append(children, child)
	}

	return children
}

// String renders the term as "name: value", prefixing the parent name (or a
// bare '.' for an elided parent) when present.
func (t *Term) String() string {
	switch t.ParentTerm {
	case NoTerm:
		return t.RecordTerm + ": " + t.Value
	case ElidedTerm:
		return "." + t.RecordTerm + ": " + t.Value
	default:
		return t.ParentTerm + "." + t.RecordTerm + ": " + t.Value
	}
}
