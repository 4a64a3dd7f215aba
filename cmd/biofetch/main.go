// biofetch fetches GEO / SRA / ENA metadata for an accession and writes it
// as CSV, or prints a preview to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/KiarashBabaei/biodownloader/buildinfoprint"
	"github.com/KiarashBabaei/biodownloader/ena"
	"github.com/KiarashBabaei/biodownloader/geo"
	"github.com/KiarashBabaei/biodownloader/sra"
	"github.com/KiarashBabaei/biodownloader/table"
)

const previewRows = 5

func main() {
	var source, id, out string
	var limit, timeoutSec int

	flag.StringVar(&source, "source", "", "Database to query: geo, sra, or ena.")
	flag.StringVar(&id, "id", "", "Accession (e.g., GSE181294, PRJNA123456, ERR1234567).")
	flag.StringVar(&out, "out", "", "Output CSV path. Without it, a preview is printed to stdout.")
	flag.IntVar(&limit, "limit", 0, "Optional cap on the number of records (0 = no cap).")
	flag.IntVar(&timeoutSec, "timeout", 30, "HTTP timeout in seconds.")
	flag.Parse()

	if source == "" || id == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(source, id, out, limit, time.Duration(timeoutSec)*time.Second); err != nil {
		log.Fatalln(err)
	}
}

func run(source, id, out string, limit int, timeout time.Duration) error {
	switch source {
	case "geo":
		samples, err := geo.FetchSeriesSamples(id, limit, timeout)
		if err != nil {
			return err
		}

		if out == "" {
			preview(geo.SamplesTable(samples))
			return nil
		}

		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := geo.WriteSamplesCSV(f, samples); err != nil {
			return err
		}
		log.Printf("Saved %d records to %s\n", len(samples), out)

		return nil

	case "sra", "ena":
		var t *table.Table
		var err error
		if source == "sra" {
			t, err = sra.FetchRunInfo(id, limit, timeout)
		} else {
			t, err = ena.FetchAccession(id, limit, timeout)
		}
		if err != nil {
			return err
		}

		if out == "" {
			preview(t)
			return nil
		}

		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := t.WriteCSV(f); err != nil {
			return err
		}
		log.Printf("Saved %d records to %s\n", t.NumRows(), out)

		return nil
	}

	return fmt.Errorf("unknown source %q (expected geo, sra, or ena)", source)
}

// preview prints the header and the first few rows, tab-separated, plus a
// total record count.
func preview(t *table.Table) {
	fmt.Println(strings.Join(t.Columns(), "\t"))
	head := t.Head(previewRows)
	for i := 0; i < head.NumRows(); i++ {
		fmt.Println(strings.Join(head.Row(i), "\t"))
	}
	fmt.Printf("\nTotal records: %d\n", t.NumRows())
}
