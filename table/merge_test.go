package table

import (
	"strings"
	"testing"
)

func geoFixture() *Table {
	t := New("GSM", "title")
	t.Append([]string{"GSM1", "sample one"})
	t.Append([]string{"GSM2", "sample two"})
	return t
}

func sraFixture() *Table {
	t := New("Run", "SampleName", "title")
	t.Append([]string{"SRR10", "GSM2", "run a"})
	t.Append([]string{"SRR11", "GSM9", "run b"})
	return t
}

func TestMergeInnerSingleMatch(t *testing.T) {
	merged, err := Merge(geoFixture(), sraFixture(), Inner, "GSM", "SampleName", "_geo", "_sra")
	if err != nil {
		t.Fatal(err)
	}

	if merged.NumRows() != 1 {
		t.Fatalf("expected 1 row, got %d", merged.NumRows())
	}
	row := merged.Row(0)
	if row[merged.ColumnIndex("GSM")] != "GSM2" || row[merged.ColumnIndex("SampleName")] != "GSM2" {
		t.Errorf("unexpected matched row: %v", row)
	}
}

func TestMergeSuffixesAndKeyRetention(t *testing.T) {
	merged, err := Merge(geoFixture(), sraFixture(), Inner, "GSM", "SampleName", "_geo", "_sra")
	if err != nil {
		t.Fatal(err)
	}

	cols := strings.Join(merged.Columns(), "|")
	want := "GSM|title_geo|Run|SampleName|title_sra"
	if cols != want {
		t.Errorf("expected columns %s, got %s", want, cols)
	}
}

func TestMergeLeft(t *testing.T) {
	merged, err := Merge(geoFixture(), sraFixture(), Left, "GSM", "SampleName", "_geo", "_sra")
	if err != nil {
		t.Fatal(err)
	}

	if merged.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", merged.NumRows())
	}
	// Left row order is preserved; the unmatched left row has blank right
	// values.
	if row := merged.Row(0); row[merged.ColumnIndex("GSM")] != "GSM1" || row[merged.ColumnIndex("Run")] != "" {
		t.Errorf("unexpected first row: %v", row)
	}
}

func TestMergeRight(t *testing.T) {
	merged, err := Merge(geoFixture(), sraFixture(), Right, "GSM", "SampleName", "_geo", "_sra")
	if err != nil {
		t.Fatal(err)
	}

	if merged.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", merged.NumRows())
	}
	// Unmatched right rows follow the matched rows.
	if row := merged.Row(1); row[merged.ColumnIndex("SampleName")] != "GSM9" || row[merged.ColumnIndex("GSM")] != "" {
		t.Errorf("unexpected appended right row: %v", row)
	}
}

func TestMergeOuterCounts(t *testing.T) {
	merged, err := Merge(geoFixture(), sraFixture(), Outer, "GSM", "SampleName", "_geo", "_sra")
	if err != nil {
		t.Fatal(err)
	}

	// 1 matched + 1 unmatched left + 1 unmatched right.
	if merged.NumRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", merged.NumRows())
	}
	if row := merged.Row(2); row[merged.ColumnIndex("Run")] != "SRR11" {
		t.Errorf("expected the unmatched right row last, got %v", row)
	}
}

func TestMergeDuplicateRightKeys(t *testing.T) {
	right := New("SampleName", "Run")
	right.Append([]string{"GSM1", "SRR1"})
	right.Append([]string{"GSM1", "SRR2"})

	left := New("GSM")
	left.Append([]string{"GSM1"})

	merged, err := Merge(left, right, Inner, "GSM", "SampleName", "_geo", "_sra")
	if err != nil {
		t.Fatal(err)
	}

	if merged.NumRows() != 2 {
		t.Errorf("expected one output row per right match, got %d", merged.NumRows())
	}
}

func TestMergeMissingKeyColumn(t *testing.T) {
	if _, err := Merge(geoFixture(), sraFixture(), Inner, "nope", "SampleName", "_geo", "_sra"); err == nil {
		t.Error("expected an error for a missing left key column")
	}
	if _, err := Merge(geoFixture(), sraFixture(), Inner, "GSM", "nope", "_geo", "_sra"); err == nil {
		t.Error("expected an error for a missing right key column")
	}
}

func TestMergeUnknownHow(t *testing.T) {
	if _, err := Merge(geoFixture(), sraFixture(), How("cross"), "GSM", "SampleName", "_geo", "_sra"); err == nil {
		t.Error("expected an error for an unknown merge mode")
	}
}
