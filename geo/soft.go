// Package geo fetches sample-level metadata for GEO series (GSE*) from the
// NCBI GEO "quick" SOFT view and parses it into a tidy table.
package geo

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/KiarashBabaei/biodownloader/table"
)

// SampleColumns is the fixed schema of a parsed series table, in order.
var SampleColumns = []string{"GSE", "GSM", "title", "organism", "source_name", "characteristics"}

// Sample is one GSM sample parsed out of the SOFT quick text. Fields that
// appear on multiple lines in the source are joined with "; ".
type Sample struct {
	GSE             string `csv:"GSE"`
	GSM             string `csv:"GSM"`
	Title           string `csv:"title"`
	Organism        string `csv:"organism"`
	SourceName      string `csv:"source_name"`
	Characteristics string `csv:"characteristics"`
}

// sampleStartRe detects the start of a new sample block.
var sampleStartRe = regexp.MustCompile(`^\^SAMPLE\s=\s(GSM\d+)`)

// softSample accumulates one sample block while scanning. The parser holds
// at most one of these: nil means no sample block has started yet.
type softSample struct {
	gsm             string
	title           []string
	organism        []string
	sourceName      []string
	characteristics []string
}

// absorb appends the value of a recognized !Sample_* line to the matching
// list. Unrecognized lines are ignored.
func (s *softSample) absorb(line string) {
	switch {
	case strings.HasPrefix(line, "!Sample_title ="):
		s.title = append(s.title, valueAfterEquals(line))
	case strings.HasPrefix(line, "!Sample_organism_ch1 ="):
		s.organism = append(s.organism, valueAfterEquals(line))
	case strings.HasPrefix(line, "!Sample_source_name_ch1 ="):
		s.sourceName = append(s.sourceName, valueAfterEquals(line))
	case strings.HasPrefix(line, "!Sample_characteristics_ch1 ="):
		s.characteristics = append(s.characteristics, valueAfterEquals(line))
	}
}

// finalize converts the accumulated lists into a Sample. It is a pure
// function of the accumulator state: each list joins with "; ", an empty
// list becomes "".
func (s *softSample) finalize(gseID string) Sample {
	return Sample{
		GSE:             gseID,
		GSM:             s.gsm,
		Title:           strings.Join(s.title, "; "),
		Organism:        strings.Join(s.organism, "; "),
		SourceName:      strings.Join(s.sourceName, "; "),
		Characteristics: strings.Join(s.characteristics, "; "),
	}
}

func valueAfterEquals(line string) string {
	_, value, _ := strings.Cut(line, "=")
	return strings.TrimSpace(value)
}

// ParseSoftQuick parses the GEO quick SOFT text into one Sample per
// ^SAMPLE block. limit > 0 caps the number of samples returned. Lines
// before the first sample block, and lines that match none of the four
// recognized !Sample_* keys, are skipped without error. Repeated GSM
// identifiers each produce their own record.
func ParseSoftQuick(rawText, gseID string, limit int) []Sample {
	var samples []Sample
	var current *softSample

	scanner := bufio.NewScanner(strings.NewReader(rawText))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if m := sampleStartRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				samples = append(samples, current.finalize(gseID))
				if limit > 0 && len(samples) >= limit {
					return samples
				}
			}
			current = &softSample{gsm: m[1]}
			continue
		}

		if current == nil {
			continue
		}
		current.absorb(line)
	}

	if current != nil {
		samples = append(samples, current.finalize(gseID))
	}

	return samples
}

// SamplesTable converts parsed samples into a table with the fixed
// SampleColumns schema. Zero samples yield an empty table that still
// declares the schema.
func SamplesTable(samples []Sample) *table.Table {
	t := table.New(SampleColumns...)
	for _, s := range samples {
		t.Append([]string{s.GSE, s.GSM, s.Title, s.Organism, s.SourceName, s.Characteristics})
	}

	return t
}
