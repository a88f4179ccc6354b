package table

import (
	"reflect"
	"testing"
)

func TestConvert_Leaf(t *testing.T) {
	value := Convert(NewRecord("table", "t1", ""))

	if value.Kind != KindScalar || value.Scalar != "t1" {
		t.Fatalf("Convert(leaf) = %+v, want scalar t1", value)
	}
}

func TestConvert_SectionExample(t *testing.T) {
	root, _ := buildFrom(t, [][]string{
		{"section", "", "a", "b"},
		{"table", "v1", "x1", "x2"},
	})

	got := Convert(root).ToNative()

	want := map[string]any{
		"table": map[string]any{
			"a":      "x1",
			"b":      "x2",
			"@value": "v1",
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("converted = %#v, want %#v", got, want)
	}
}

func TestConvert_RepeatedTermsBecomeList(t *testing.T) {
	root, _ := buildFrom(t, [][]string{
		{"table", "t1"},
		{"table", "t2"},
	})

	got := Convert(root).ToNative()

	want := map[string]any{
		"table": []any{"t1", "t2"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("converted = %#v, want %#v", got, want)
	}
}

func TestConvert_ThirdOccurrenceAppends(t *testing.T) {
	root, _ := buildFrom(t, [][]string{
		{"table", "t1"},
		{"table", "t2"},
		{"table", "t3"},
	})

	got := Convert(root).ToNative()

	want := map[string]any{
		"table": []any{"t1", "t2", "t3"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("converted = %#v, want %#v", got, want)
	}
}

func TestConvert_ValueNameRemapped(t *testing.T) {
	root, _ := buildFrom(t, [][]string{
		{"termvaluename", "table", "title"},
		{"table", "v1"},
		{"table.column", "name"},
	})

	got := Convert(root).ToNative()

	want := map[string]any{
		"table": map[string]any{
			"column": "name",
			"title":  "v1",
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("converted = %#v, want %#v", got, want)
	}
}

func TestConvert_EmptyValueOmittedFromMapping(t *testing.T) {
	root, _ := buildFrom(t, [][]string{
		{"table", ""},
		{"table.column", "name"},
	})

	got := Convert(root).ToNative()

	want := map[string]any{
		"table": map[string]any{
			"column": "name",
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("converted = %#v, want %#v", got, want)
	}
}

func TestMapping_OrderAndMerge(t *testing.T) {
	m := NewMapping()

	m.merge("k", Value{Kind: KindScalar, Scalar: "1"})

	if got, _ := m.Get("k"); got.Kind != KindScalar {
		t.Fatalf("first merge kind = %v, want scalar", got.Kind)
	}

	m.merge("k", Value{Kind: KindScalar, Scalar: "2"})

	got, _ := m.Get("k")
	if got.Kind != KindList || len(got.List) != 2 {
		t.Fatalf("second merge = %+v, want two-element list", got)
	}

	m.merge("j", Value{Kind: KindScalar, Scalar: "3"})

	if keys := m.Keys(); !reflect.DeepEqual(keys, []string{"k", "j"}) {
		t.Errorf("Keys() = %v, want insertion order [k j]", keys)
	}
}

func TestKind_String(t *testing.T) {
	names := map[Kind]string{
		KindScalar:  "Scalar",
		KindList:    "List",
		KindMapping: "Mapping",
		Kind(42):    "Unknown",
	}

	for kind, want := range names {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
