package table

import (
	"errors"
	"io"
	"testing"
)

// drain collects the full term stream, failing the test on fatal errors.
func drain(t *testing.T, p *Parser) []*Term {
	t.Helper()

	var terms []*Term

	for {
		term, err := p.Next()
		if errors.Is(err, io.EOF) {
			return terms
		}

		if err != nil {
			t.Fatalf("unexpected fatal error: %v", err)
		}

		terms = append(terms, term)
	}
}

func TestParser_BlankAndMalformedRows(t *testing.T) {
	p := NewParser(SliceRows([][]string{
		{"", "ignored"},
		{"   ", "ignored"},
		{},
		{"lonely"},
		{"table", "t1"},
	}))

	terms := drain(t, p)

	if len(terms) != 1 || terms[0].RecordTerm != "table" {
		t.Fatalf("terms = %v, want single table term", terms)
	}

	errs := p.Errs()
	if len(errs) != 1 {
		t.Fatalf("Errs() = %v, want one malformed row error", errs)
	}

	if !errors.Is(errs[0], ErrMalformedRow) {
		t.Errorf("errs[0] = %v, want ErrMalformedRow", errs[0])
	}
}

func TestParser_SynonymSubstitutedOnce(t *testing.T) {
	p := NewParser(SliceRows([][]string{
		{"synonym", "a", "b"},
		{"synonym", "b", "c"},
		{"A", "v"},
	}))

	terms := drain(t, p)

	if len(terms) != 1 {
		t.Fatalf("got %d terms, want 1", len(terms))
	}

	// "a" rewrites to "b"; the substituted name is not looked up again.
	if terms[0].RecordTerm != "b" {
		t.Errorf("RecordTerm = %q, want %q", terms[0].RecordTerm, "b")
	}
}

func TestParser_SynonymMissingTarget(t *testing.T) {
	p := NewParser(SliceRows([][]string{
		{"synonym", "alias"},
		{"table", "t1"},
	}))

	terms := drain(t, p)

	if len(terms) != 1 {
		t.Fatalf("got %d terms, want 1", len(terms))
	}

	errs := p.Errs()
	if len(errs) != 1 || !errors.Is(errs[0], ErrMalformedSynonym) {
		t.Fatalf("Errs() = %v, want one ErrMalformedSynonym", errs)
	}
}

func TestParser_ValueNameRemap(t *testing.T) {
	p := NewParser(SliceRows([][]string{
		{"termvaluename", "table", "title"},
		{"table", "t1"},
		{"other", "o1"},
	}))

	terms := drain(t, p)

	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2", len(terms))
	}

	if terms[0].ValueName != "title" {
		t.Errorf("table ValueName = %q, want %q", terms[0].ValueName, "title")
	}

	if terms[1].ValueName != DefaultValueName {
		t.Errorf("other ValueName = %q, want %q", terms[1].ValueName, DefaultValueName)
	}
}

func TestParser_SectionDeclaresParamMap(t *testing.T) {
	p := NewParser(SliceRows([][]string{
		{"section", "", "a", "b"},
		{"table", "v1", "x1", "x2", "x3"},
		{"term", ""},
		{"table", "v2", "y1"},
	}))

	terms := drain(t, p)

	got := make([]string, len(terms))
	for i, term := range terms {
		got[i] = term.String()
	}

	want := []string{
		"table: v1",
		"table.a: x1",
		"table.b: x2",
		"table: v2",
	}

	if len(got) != len(want) {
		t.Fatalf("terms = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("terms[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParser_SectionMatchIsCaseInsensitive(t *testing.T) {
	p := NewParser(SliceRows([][]string{
		{"Section", "", "a"},
		{"table", "v1", "x1"},
	}))

	terms := drain(t, p)

	if len(terms) != 2 || terms[1].RecordTerm != "a" {
		t.Fatalf("terms = %v, want table followed by arg-child a", terms)
	}
}

func TestParser_ArgChildrenFollowParentImmediately(t *testing.T) {
	p := NewParser(SliceRows([][]string{
		{"section", "", "a"},
		{"table", "v1", "x1"},
		{"next", "n1"},
	}))

	terms := drain(t, p)

	want := []string{"table", "a", "next"}
	if len(terms) != len(want) {
		t.Fatalf("got %d terms, want %d", len(terms), len(want))
	}

	for i, term := range terms {
		if term.RecordTerm != want[i] {
			t.Errorf("terms[%d].RecordTerm = %q, want %q", i, term.RecordTerm, want[i])
		}
	}

	if !terms[1].IsArgChild {
		t.Error("arg child not marked IsArgChild")
	}
}

func TestParser_ExhaustionIsSticky(t *testing.T) {
	p := NewParser(SliceRows([][]string{{"table", "t1"}}))

	drain(t, p)

	for range 3 {
		if _, err := p.Next(); !errors.Is(err, io.EOF) {
			t.Fatalf("Next() after exhaustion = %v, want io.EOF", err)
		}
	}
}

func TestParser_Terms_Iterator(t *testing.T) {
	p := NewParser(SliceRows([][]string{
		{"a", "1"},
		{"b", "2"},
	}))

	var got []string

	for term, err := range p.Terms() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got = append(got, term.RecordTerm)
	}

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got = %v, want [a b]", got)
	}
}
