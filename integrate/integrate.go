// Package integrate correlates GEO sample tables with SRA RunInfo tables
// on a shared GSM-like identifier and drives the combined fetch-and-merge
// use case.
package integrate

import (
	"fmt"
	"regexp"
	"time"

	"github.com/KiarashBabaei/biodownloader/geo"
	"github.com/KiarashBabaei/biodownloader/sra"
	"github.com/KiarashBabaei/biodownloader/table"
)

// gsmPattern is the GEO sample identifier shape shared by both detectors.
var gsmPattern = regexp.MustCompile(`GSM\d+`)

// geoKeySpec locates the GSM column of a GEO-side table. The fallback scan
// insists on values that are purely a GSM id.
var geoKeySpec = table.KeySpec{
	Exact:     []string{"GSM", "Sample", "Sample_ID", "GEO_accession"},
	Folded:    []string{"GSM", "SAMPLE", "GEO_ACCESSION"},
	Pattern:   gsmPattern,
	NamedMode: table.MatchContains,
	ScanMode:  table.MatchFull,
}

// sraKeySpec locates the column of an SRA-side table that carries GSM ids,
// often embedded in longer text such as "GSM123-rep1".
var sraKeySpec = table.KeySpec{
	Exact:     []string{"SampleName", "sample_name", "GEO_Accession", "geo_accession"},
	Folded:    []string{"samplename", "sample_name", "geo_accession"},
	Pattern:   gsmPattern,
	NamedMode: table.MatchContains,
	ScanMode:  table.MatchContains,
}

// MergeSeriesRuns joins a GEO series table with an SRA RunInfo table on
// their GSM-like key columns. Pass geoCol/sraCol as "" to detect them
// automatically; detection failure on either side reports
// table.ErrKeyDetection. Column names appearing in both inputs are
// disambiguated with the _geo and _sra suffixes.
func MergeSeriesRuns(geoTbl, sraTbl *table.Table, how table.How, geoCol, sraCol string) (*table.Table, error) {
	if geoCol == "" {
		geoCol, _ = geoKeySpec.Detect(geoTbl)
	}
	if sraCol == "" {
		sraCol, _ = sraKeySpec.Detect(sraTbl)
	}

	if geoCol == "" || sraCol == "" {
		return nil, fmt.Errorf("%w automatically; provide the GEO and SRA key columns explicitly", table.ErrKeyDetection)
	}

	return table.Merge(geoTbl, sraTbl, how, geoCol, sraCol, "_geo", "_sra")
}

// FetchAndMerge fetches a GEO series and an SRA RunInfo result set, then
// merges them with automatic key detection. If either fetch comes back with
// zero rows, the result is a completely empty table (no rows, no columns)
// and no merge is attempted.
func FetchAndMerge(gseID, sraTerm string, geoLimit, sraLimit int, how table.How, timeout time.Duration) (*table.Table, error) {
	geoTbl, err := geo.FetchSeries(gseID, geoLimit, timeout)
	if err != nil {
		return nil, err
	}

	sraTbl, err := sra.FetchRunInfo(sraTerm, sraLimit, timeout)
	if err != nil {
		return nil, err
	}

	if geoTbl.Empty() || sraTbl.Empty() {
		return table.New(), nil
	}

	return MergeSeriesRuns(geoTbl, sraTbl, how, "", "")
}
