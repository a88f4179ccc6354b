package table

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestCSVRows(t *testing.T) {
	src := strings.NewReader(
		"table,t1\n" +
			"table.column,\"name, with comma\"\n" +
			"\n" +
			"note,hello,extra\n",
	)

	rows := CSVRows(src)

	var got [][]string

	for {
		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			t.Fatalf("Next: %v", err)
		}

		got = append(got, row)
	}

	want := [][]string{
		{"table", "t1"},
		{"table.column", "name, with comma"},
		{"note", "hello", "extra"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestPipeline_FromCSV(t *testing.T) {
	src := strings.NewReader(
		"declare,dataset\n" +
			"section,,name,type\n" +
			"column,c1,id,integer\n" +
			"column,c2,label,string\n",
	)

	p := NewParser(CSVRows(src))

	root, err := Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := Convert(root).ToNative()

	want := map[string]any{
		"declare": "dataset",
		"column": []any{
			map[string]any{"name": "id", "type": "integer", "@value": "c1"},
			map[string]any{"name": "label", "type": "string", "@value": "c2"},
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("converted = %#v, want %#v", got, want)
	}
}
