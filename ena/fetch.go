// Package ena fetches read-run metadata from the ENA portal API.
package ena

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/carbocation/pfx"

	"github.com/KiarashBabaei/biodownloader/table"
)

// SearchBaseURL is the ENA portal search endpoint.
const SearchBaseURL = "https://www.ebi.ac.uk/ena/portal/api/search"

// DefaultTimeout applies when a fetch is invoked with a zero timeout.
const DefaultTimeout = 30 * time.Second

// ErrEmptyAccession indicates a missing accession.
var ErrEmptyAccession = errors.New("ena: accession cannot be empty")

// runAccessionRe matches run accessions (SRR/ERR/DRR followed by digits).
var runAccessionRe = regexp.MustCompile(`^(?:SRR|ERR|DRR)\d+$`)

// query runs one portal search and parses the TSV response. The portal
// sends a header line even for zero hits; a fully blank body yields a
// zero-column table.
func query(client *http.Client, queryExpr, result string) (*table.Table, error) {
	params := url.Values{
		"result": {result},
		"query":  {queryExpr},
		"format": {"tsv"},
		"limit":  {"0"}, // 0 disables the server-side row cap
	}

	resp, err := client.Get(SearchBaseURL + "?" + params.Encode())
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pfx.Err(fmt.Errorf("ena: search %q returned status %d", queryExpr, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pfx.Err(err)
	}

	t, err := table.ReadSeparated(string(body), '\t')
	if err != nil {
		return nil, pfx.Err(err)
	}

	return t, nil
}

// FetchAccession fetches read-run metadata for any ENA-supported accession
// (runs such as ERR/SRR/DRR, studies such as PRJEB/PRJNA, samples such as
// SAMEA/SAMN). It first queries by generic accession; if that comes back
// empty and the accession looks like a run accession, it retries scoped to
// run_accession. limit > 0 keeps only the first rows; timeout 0 means
// DefaultTimeout. No matches yield an empty table.
func FetchAccession(accession string, limit int, timeout time.Duration) (*table.Table, error) {
	accession = strings.TrimSpace(accession)
	if accession == "" {
		return nil, fmt.Errorf("%w (e.g., 'SRR23080510' or 'PRJEB12345')", ErrEmptyAccession)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	t, err := query(client, "accession="+accession, "read_run")
	if err != nil {
		return nil, err
	}

	if t.Empty() && runAccessionRe.MatchString(strings.ToUpper(accession)) {
		t, err = query(client, "run_accession="+accession, "read_run")
		if err != nil {
			return nil, err
		}
	}

	if limit > 0 && t.NumRows() > limit {
		t = t.Head(limit)
	}

	return t, nil
}
