package geo

import (
	"strings"
	"testing"
)

func TestParseSoftQuickTwoSamples(t *testing.T) {
	raw := "^SAMPLE = GSM1\n!Sample_title = Foo\n^SAMPLE = GSM2\n!Sample_organism_ch1 = Bar"

	samples := ParseSoftQuick(raw, "GSE1", 0)
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}

	first := Sample{GSE: "GSE1", GSM: "GSM1", Title: "Foo"}
	if samples[0] != first {
		t.Errorf("unexpected first sample: %+v", samples[0])
	}

	second := Sample{GSE: "GSE1", GSM: "GSM2", Organism: "Bar"}
	if samples[1] != second {
		t.Errorf("unexpected second sample: %+v", samples[1])
	}
}

func TestParseSoftQuickJoinsRepeatedFields(t *testing.T) {
	raw := strings.Join([]string{
		"^SAMPLE = GSM10",
		"!Sample_characteristics_ch1 = tissue: liver",
		"!Sample_characteristics_ch1 = age: 61",
		"!Sample_title = a",
		"!Sample_title = b",
	}, "\n")

	samples := ParseSoftQuick(raw, "GSE10", 0)
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	if samples[0].Characteristics != "tissue: liver; age: 61" {
		t.Errorf("unexpected characteristics: %q", samples[0].Characteristics)
	}
	if samples[0].Title != "a; b" {
		t.Errorf("unexpected title: %q", samples[0].Title)
	}
}

func TestParseSoftQuickLimit(t *testing.T) {
	raw := "^SAMPLE = GSM1\n^SAMPLE = GSM2\n^SAMPLE = GSM3\n"

	if n := len(ParseSoftQuick(raw, "GSE1", 2)); n != 2 {
		t.Errorf("expected limit to cap at 2 samples, got %d", n)
	}
	if n := len(ParseSoftQuick(raw, "GSE1", 3)); n != 3 {
		t.Errorf("expected all 3 samples at limit 3, got %d", n)
	}
	if n := len(ParseSoftQuick(raw, "GSE1", 0)); n != 3 {
		t.Errorf("expected all 3 samples without a limit, got %d", n)
	}
}

func TestParseSoftQuickOneRecordPerMarker(t *testing.T) {
	// Duplicate GSM identifiers are not deduplicated.
	raw := "^SAMPLE = GSM7\n!Sample_title = first\n^SAMPLE = GSM7\n!Sample_title = second\n"

	samples := ParseSoftQuick(raw, "GSE7", 0)
	if len(samples) != 2 {
		t.Fatalf("expected 2 records for 2 markers, got %d", len(samples))
	}
	if samples[0].Title != "first" || samples[1].Title != "second" {
		t.Errorf("unexpected titles: %q, %q", samples[0].Title, samples[1].Title)
	}
}

func TestParseSoftQuickIgnoresUnrecognizedLines(t *testing.T) {
	raw := strings.Join([]string{
		"!Series_title = some series", // before any sample: ignored
		"^SAMPLE = notagsm",           // malformed marker: ignored
		"^SAMPLE = GSM5",
		"!Sample_geo_accession = GSM5", // unrecognized key: ignored
		"!Sample_source_name_ch1 = heart, left ventricle",
	}, "\n")

	samples := ParseSoftQuick(raw, "GSE5", 0)
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
	if samples[0].GSM != "GSM5" || samples[0].SourceName != "heart, left ventricle" {
		t.Errorf("unexpected sample: %+v", samples[0])
	}
}

func TestParseSoftQuickValueKeepsEqualsSigns(t *testing.T) {
	raw := "^SAMPLE = GSM1\n!Sample_title = dose = 5mg\n"

	samples := ParseSoftQuick(raw, "GSE1", 0)
	if samples[0].Title != "dose = 5mg" {
		t.Errorf("unexpected title: %q", samples[0].Title)
	}
}

func TestSamplesTableSchema(t *testing.T) {
	tbl := SamplesTable(nil)

	if got := strings.Join(tbl.Columns(), ","); got != "GSE,GSM,title,organism,source_name,characteristics" {
		t.Errorf("unexpected empty-table schema: %s", got)
	}
	if !tbl.Empty() {
		t.Errorf("expected zero rows, got %d", tbl.NumRows())
	}
}

func TestSamplesTableRows(t *testing.T) {
	tbl := SamplesTable([]Sample{{GSE: "GSE1", GSM: "GSM1", Title: "Foo"}})

	if tbl.NumRows() != 1 {
		t.Fatalf("expected 1 row, got %d", tbl.NumRows())
	}
	if row := tbl.Row(0); row[0] != "GSE1" || row[1] != "GSM1" || row[2] != "Foo" || row[3] != "" {
		t.Errorf("unexpected row: %v", row)
	}
}
