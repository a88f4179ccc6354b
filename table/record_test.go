package table

import (
	"errors"
	"strings"
	"testing"
)

func buildFrom(t *testing.T, rows [][]string) (*Record, *Parser) {
	t.Helper()

	p := NewParser(SliceRows(rows))

	root, err := Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	return root, p
}

func TestBuild_RootAnchor(t *testing.T) {
	root, _ := buildFrom(t, [][]string{
		{"a", "1"},
		{"b", "2"},
	})

	if root.Term != RootTerm || root.Value != "" {
		t.Fatalf("root = %v, want synthetic %q anchor", root, RootTerm)
	}

	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}
}

func TestBuild_DottedParentAttachment(t *testing.T) {
	root, _ := buildFrom(t, [][]string{
		{"table", "t1"},
		{"table.column", "name"},
	})

	tables := root.Find("table")
	if len(tables) != 1 {
		t.Fatalf("Find(table) = %v, want one record", tables)
	}

	if !tables[0].Has("column") {
		t.Error("column not attached under table")
	}
}

func TestBuild_ParentLookupIsCaseInsensitive(t *testing.T) {
	root, _ := buildFrom(t, [][]string{
		{"Table", "t1"},
		{"TABLE.column", "name"},
	})

	tables := root.Find("Table")
	if len(tables) != 1 || !tables[0].Has("column") {
		t.Fatal("column not attached under Table via case-insensitive lookup")
	}
}

func TestBuild_ElidedParentAttachesToMostRecentEligible(t *testing.T) {
	// The elided row attaches to the most recently created eligible record
	// (second), not to its lexical predecessor's parent.
	root, _ := buildFrom(t, [][]string{
		{"first", "1"},
		{"second", "2"},
		{".foo", "bar"},
	})

	second := root.Find("second")
	if len(second) != 1 || !second[0].Has("foo") {
		t.Fatal("elided-parent record not attached under most recent record")
	}

	if root.Find("first")[0].Has("foo") {
		t.Error("elided record attached under wrong record")
	}
}

func TestBuild_ElidedRecordIsNotAnAnchor(t *testing.T) {
	// ".a" attaches under "top" but must not become the anchor for the
	// following elided row, which also belongs under "top".
	root, _ := buildFrom(t, [][]string{
		{"top", "1"},
		{".a", "2"},
		{".b", "3"},
	})

	top := root.Find("top")[0]
	if !top.Has("a") || !top.Has("b") {
		t.Fatalf("top children = %v, want a and b", top.Children)
	}
}

func TestBuild_ArgChildIsNotAnAnchor(t *testing.T) {
	// The arg-child "a" under the second table must not shadow the table
	// record; the elided row still attaches to the table itself.
	root, _ := buildFrom(t, [][]string{
		{"section", "", "a"},
		{"table", "v1", "x1"},
		{".extra", "y"},
	})

	table := root.Find("table")[0]
	if !table.Has("extra") {
		t.Fatalf("table children = %v, want extra attached", table.Children)
	}
}

func TestBuild_UnknownParentAttachesToRoot(t *testing.T) {
	root, p := buildFrom(t, [][]string{
		{"orphan.child", "v"},
	})

	if !root.Has("child") {
		t.Fatal("orphan child not attached to root")
	}

	errs := p.Errs()
	if len(errs) != 1 || !errors.Is(errs[0], ErrUnknownParent) {
		t.Fatalf("Errs() = %v, want one ErrUnknownParent", errs)
	}
}

func TestRecord_HasAndFind(t *testing.T) {
	root, _ := buildFrom(t, [][]string{
		{"table", "t1"},
		{"table", "t2"},
	})

	if !root.Has("table") {
		t.Error("Has(table) = false, want true")
	}

	if root.Has("missing") {
		t.Error("Has(missing) = true, want false")
	}

	if got := root.Find("table"); len(got) != 2 {
		t.Errorf("Find(table) returned %d records, want 2", len(got))
	}
}

func TestRecord_Dump(t *testing.T) {
	root, _ := buildFrom(t, [][]string{
		{"table", "t1"},
		{"table.column", "name"},
	})

	var sb strings.Builder
	if err := root.Dump(&sb); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	want := "Root: \n  table: t1\n    column: name\n"
	if sb.String() != want {
		t.Errorf("Dump = %q, want %q", sb.String(), want)
	}
}
