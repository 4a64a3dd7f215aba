package geo

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/KiarashBabaei/biodownloader/table"
)

// SeriesBaseURL is the GEO accession viewer in quick text mode. The GSE
// accession is appended directly.
const SeriesBaseURL = "https://www.ncbi.nlm.nih.gov/geo/query/acc.cgi?targ=all&form=text&view=quick&acc="

// DefaultTimeout applies when a fetch is invoked with a zero timeout.
const DefaultTimeout = 30 * time.Second

// ErrInvalidAccession indicates that the given series accession does not
// start with the GSE prefix.
var ErrInvalidAccession = errors.New("geo: invalid series accession")

// FetchSeriesSamples fetches the quick SOFT text for a GEO series and
// parses it. limit > 0 caps the number of samples; timeout 0 means
// DefaultTimeout. The accession must begin with "GSE" (case-insensitive).
// When GEO responds with neither a Series section nor a sample marker, the
// result is zero samples rather than an error.
func FetchSeriesSamples(gseID string, limit int, timeout time.Duration) ([]Sample, error) {
	gseID = strings.TrimSpace(gseID)
	if !strings.HasPrefix(strings.ToUpper(gseID), "GSE") {
		return nil, fmt.Errorf("%w: expected an accession starting with 'GSE', got %q", ErrInvalidAccession, gseID)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(SeriesBaseURL + gseID)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pfx.Err(fmt.Errorf("geo: fetching %s returned status %d", gseID, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pfx.Err(err)
	}
	text := string(body)

	// A response without any recognizable section is treated as no results.
	if !strings.Contains(text, "Series") && !strings.Contains(text, "^SAMPLE") {
		return nil, nil
	}

	return ParseSoftQuick(text, gseID, limit), nil
}

// FetchSeries fetches a GEO series and returns it as a table with the
// fixed SampleColumns schema, empty (but with the schema declared) when the
// series has no parseable samples.
func FetchSeries(gseID string, limit int, timeout time.Duration) (*table.Table, error) {
	samples, err := FetchSeriesSamples(gseID, limit, timeout)
	if err != nil {
		return nil, err
	}

	return SamplesTable(samples), nil
}

// WriteSamplesCSV writes samples as CSV with the SampleColumns header.
func WriteSamplesCSV(w io.Writer, samples []Sample) error {
	return gocsv.Marshal(&samples, w)
}
