// Package sra fetches RunInfo metadata from the NCBI SRA via the
// E-utilities two-step protocol (esearch with history, then efetch in
// runinfo format), mirroring `esearch -db sra | efetch -format runinfo`.
package sra

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/carbocation/pfx"

	"github.com/KiarashBabaei/biodownloader/table"
)

// EutilsBaseURL is the NCBI E-utilities endpoint prefix.
const EutilsBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/"

// DefaultTimeout applies when a fetch is invoked with a zero timeout.
const DefaultTimeout = 30 * time.Second

// ErrEmptyTerm indicates a missing search term.
var ErrEmptyTerm = errors.New("sra: search term cannot be empty")

// searchHandle is the slice of the esearch XML envelope we care about:
// the history server coordinates and the hit count.
type searchHandle struct {
	Count    int    `xml:"Count"`
	QueryKey string `xml:"QueryKey"`
	WebEnv   string `xml:"WebEnv"`
}

func (h searchHandle) empty() bool {
	return h.WebEnv == "" || h.QueryKey == "" || h.Count == 0
}

// esearch resolves term to a history-server handle on the SRA database. A
// missing handle or zero hit count comes back as an empty handle, not an
// error.
func esearch(client *http.Client, term string) (searchHandle, error) {
	params := url.Values{
		"db":         {"sra"},
		"term":       {term},
		"usehistory": {"y"},
		"retmode":    {"xml"},
	}

	resp, err := client.Get(EutilsBaseURL + "esearch.fcgi?" + params.Encode())
	if err != nil {
		return searchHandle{}, pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return searchHandle{}, pfx.Err(fmt.Errorf("sra: esearch for %q returned status %d", term, resp.StatusCode))
	}

	var handle searchHandle
	if err := xml.NewDecoder(resp.Body).Decode(&handle); err != nil {
		return searchHandle{}, pfx.Err(err)
	}

	return handle, nil
}

// FetchRunInfo searches SRA for term (a BioProject such as PRJNA730495, an
// SRA study such as SRP320091, or any general term) and retrieves the
// matching RunInfo table. limit > 0 keeps only the first rows; timeout 0
// means DefaultTimeout. No matches yield an empty table.
func FetchRunInfo(term string, limit int, timeout time.Duration) (*table.Table, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w (e.g., 'PRJNA730495')", ErrEmptyTerm)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	handle, err := esearch(client, term)
	if err != nil {
		return nil, err
	}
	if handle.empty() {
		return table.New(), nil
	}

	params := url.Values{
		"db":        {"sra"},
		"query_key": {handle.QueryKey},
		"WebEnv":    {handle.WebEnv},
		"retmode":   {"text"},
		"rettype":   {"runinfo"},
	}

	resp, err := client.Get(EutilsBaseURL + "efetch.fcgi?" + params.Encode())
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pfx.Err(fmt.Errorf("sra: efetch for %q returned status %d", term, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pfx.Err(err)
	}

	t, err := table.ReadDelimited(string(body))
	if err != nil {
		return nil, pfx.Err(err)
	}

	if limit > 0 && t.NumRows() > limit {
		t = t.Head(limit)
	}

	return t, nil
}
