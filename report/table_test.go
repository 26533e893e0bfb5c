package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	in := "doll_id,text\ndoll-1,안녕\ndoll-2,\"쉼표, 포함\"\n"
	got, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(got.Columns) != 2 || got.Columns[1] != "text" {
		t.Fatalf("columns=%v", got.Columns)
	}
	if len(got.Rows) != 2 || got.Rows[1][1] != "쉼표, 포함" {
		t.Fatalf("rows=%v", got.Rows)
	}
}

func TestReadCSVEmptyInputIsError(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("want error on empty input")
	}
}

func TestColumnValues(t *testing.T) {
	tab := Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "x"}, {"2", "y"}}}

	got, err := tab.ColumnValues("b")
	if err != nil {
		t.Fatalf("ColumnValues: %v", err)
	}
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Fatalf("got=%v", got)
	}
	if _, err := tab.ColumnValues("missing"); err == nil {
		t.Fatal("want error for unknown column")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	tab := Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "두 단어"}}}

	var buf bytes.Buffer
	if err := tab.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if back.Rows[0][1] != "두 단어" {
		t.Fatalf("roundtrip rows=%v", back.Rows)
	}
}
