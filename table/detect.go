package table

import (
	"regexp"
	"strings"
)

// MatchMode controls how a cell value is tested against a KeySpec pattern.
type MatchMode int

const (
	// MatchContains accepts a value containing the pattern anywhere.
	MatchContains MatchMode = iota
	// MatchFull accepts only values that are entirely one pattern match.
	MatchFull
)

// KeySpec describes how to locate the column of a table that carries a
// particular class of identifier. Detection runs an ordered list of
// strategies: first the named-candidate pass, then a pattern scan over all
// columns. The first strategy to find a column wins.
type KeySpec struct {
	// Exact lists column names accepted verbatim.
	Exact []string
	// Folded lists column names accepted case-insensitively.
	Folded []string
	// Pattern is the identifier shape the column's values must exhibit.
	Pattern *regexp.Regexp
	// NamedMode tests values during the named-candidate pass.
	NamedMode MatchMode
	// ScanMode tests values during the all-columns fallback scan.
	ScanMode MatchMode
}

// Detect returns the first column of t satisfying the spec, in declared
// column order, and whether one was found.
func (s KeySpec) Detect(t *Table) (string, bool) {
	for _, strategy := range []func(*Table) (string, bool){s.byName, s.byScan} {
		if col, ok := strategy(t); ok {
			return col, true
		}
	}

	return "", false
}

// byName accepts the first candidate-named column with at least one value
// matching the pattern.
func (s KeySpec) byName(t *Table) (string, bool) {
	for _, col := range t.cols {
		if !s.candidateName(col) {
			continue
		}
		if s.anyValueMatches(t, col, s.NamedMode) {
			return col, true
		}
	}

	return "", false
}

// byScan accepts the first column, of any name, with at least one value
// matching the pattern.
func (s KeySpec) byScan(t *Table) (string, bool) {
	for _, col := range t.cols {
		if s.anyValueMatches(t, col, s.ScanMode) {
			return col, true
		}
	}

	return "", false
}

func (s KeySpec) candidateName(col string) bool {
	for _, name := range s.Exact {
		if col == name {
			return true
		}
	}
	for _, name := range s.Folded {
		if strings.EqualFold(col, name) {
			return true
		}
	}

	return false
}

func (s KeySpec) anyValueMatches(t *Table, col string, mode MatchMode) bool {
	ix := t.ColumnIndex(col)
	if ix < 0 {
		return false
	}

	for _, row := range t.rows {
		if s.valueMatches(row[ix], mode) {
			return true
		}
	}

	return false
}

func (s KeySpec) valueMatches(v string, mode MatchMode) bool {
	switch mode {
	case MatchFull:
		m := s.Pattern.FindString(v)
		return m != "" && m == v
	default:
		return s.Pattern.MatchString(v)
	}
}
