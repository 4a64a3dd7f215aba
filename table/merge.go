package table

import (
	"errors"
	"fmt"
)

// How selects which unmatched rows survive a merge.
type How string

const (
	Inner How = "inner"
	Left  How = "left"
	Right How = "right"
	Outer How = "outer"
)

// ErrKeyDetection indicates that a merge was requested without explicit key
// columns and automatic detection failed. Callers should supply the key
// columns explicitly.
var ErrKeyDetection = errors.New("could not detect join key columns")

// Merge joins left and right rows whose key-column values are equal.
//
// The output declares the union of both tables' columns. Column names
// present in both inputs, other than the two key columns, are disambiguated
// by appending leftSuffix on the left side and rightSuffix on the right
// side. The key columns keep their original names on both sides. Left-table
// row order is preserved; for right and outer merges, unmatched right rows
// are appended after all left-derived rows in right-table order.
func Merge(left, right *Table, how How, leftKey, rightKey, leftSuffix, rightSuffix string) (*Table, error) {
	switch how {
	case Inner, Left, Right, Outer:
	default:
		return nil, fmt.Errorf("table: unknown merge mode %q", how)
	}

	li := left.ColumnIndex(leftKey)
	if li < 0 {
		return nil, fmt.Errorf("table: left table has no column %q", leftKey)
	}
	ri := right.ColumnIndex(rightKey)
	if ri < 0 {
		return nil, fmt.Errorf("table: right table has no column %q", rightKey)
	}

	shared := make(map[string]bool)
	for _, lc := range left.cols {
		if lc == leftKey {
			continue
		}
		for _, rc := range right.cols {
			if rc == rightKey {
				continue
			}
			if lc == rc {
				shared[lc] = true
			}
		}
	}

	cols := make([]string, 0, len(left.cols)+len(right.cols))
	for _, c := range left.cols {
		if shared[c] {
			c += leftSuffix
		}
		cols = append(cols, c)
	}
	for _, c := range right.cols {
		if shared[c] {
			c += rightSuffix
		}
		cols = append(cols, c)
	}
	out := New(cols...)

	// Index right rows by key value.
	index := make(map[string][]int)
	for j, row := range right.rows {
		index[row[ri]] = append(index[row[ri]], j)
	}
	matched := make([]bool, len(right.rows))

	blankLeft := make([]string, len(left.cols))
	blankRight := make([]string, len(right.cols))

	for _, lrow := range left.rows {
		hits := index[lrow[li]]
		if len(hits) == 0 {
			if how == Left || how == Outer {
				out.Append(append(append([]string{}, lrow...), blankRight...))
			}
			continue
		}

		for _, j := range hits {
			matched[j] = true
			out.Append(append(append([]string{}, lrow...), right.rows[j]...))
		}
	}

	if how == Right || how == Outer {
		for j, rrow := range right.rows {
			if matched[j] {
				continue
			}
			out.Append(append(append([]string{}, blankLeft...), rrow...))
		}
	}

	return out, nil
}
