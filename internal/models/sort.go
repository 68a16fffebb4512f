package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownColumn is returned when a column name is not one of the table columns
var ErrUnknownColumn = errors.New("unknown column")

// Column identifies a sortable table column
type Column string

const (
	ColumnNone    Column = ""
	ColumnName    Column = "name"
	ColumnURL     Column = "url"
	ColumnUsedFor Column = "used_for"
)

// Columns lists the table columns in display order
var Columns = []Column{ColumnName, ColumnURL, ColumnUsedFor}

// Title returns the header text for the column
func (c Column) Title() string {
	switch c {
	case ColumnName:
		return "Name"
	case ColumnURL:
		return "URL"
	case ColumnUsedFor:
		return "Used For"
	}
	return ""
}

// ParseColumn accepts the column keys as well as their header titles
func ParseColumn(s string) (Column, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")

	switch key {
	case "":
		return ColumnNone, nil
	case "name":
		return ColumnName, nil
	case "url", "link":
		return ColumnURL, nil
	case "used_for", "usedfor":
		return ColumnUsedFor, nil
	}
	return ColumnNone, fmt.Errorf("%w: %q", ErrUnknownColumn, s)
}

// Order is a sort direction
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// ParseOrder defaults to ascending for anything that is not a descending spelling
func ParseOrder(s string) Order {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending", "down":
		return Descending
	}
	return Ascending
}

// Reverse returns the opposite direction
func (o Order) Reverse() Order {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// Arrow is the indicator shown next to a sorted header
func (o Order) Arrow() string {
	if o == Descending {
		return "▼"
	}
	return "▲"
}

// SortState records which column the table is sorted by. The zero value is unsorted.
type SortState struct {
	Column Column
	Order  Order
}

// Sorted reports whether a column is selected
func (s SortState) Sorted() bool {
	return s.Column != ColumnNone
}

// Toggle returns the state after clicking col: the same column flips its
// direction, any other column starts ascending.
func (s SortState) Toggle(col Column) SortState {
	if s.Column == col && col != ColumnNone {
		return SortState{Column: col, Order: s.Order.Reverse()}
	}
	return SortState{Column: col, Order: Ascending}
}

// Next is the state a header link for col should request
func (s SortState) Next(col Column) SortState {
	return s.Toggle(col)
}

// Active reports whether col is the sorted column
func (s SortState) Active(col Column) bool {
	return s.Sorted() && s.Column == col
}

// Sort orders the list in place by the column. Comparison is case-insensitive
// and stable, so equal values keep their relative order in both directions.
func (el EntryList) Sort(col Column, order Order) {
	if col == ColumnNone {
		return
	}

	slices.SortStableFunc(el, func(a, b Entry) int {
		c := strings.Compare(strings.ToLower(a.Value(col)), strings.ToLower(b.Value(col)))
		if order == Descending {
			return -c
		}
		return c
	})
}

// Apply sorts the list in place according to the state
func (el EntryList) Apply(s SortState) {
	if !s.Sorted() {
		return
	}
	el.Sort(s.Column, s.Order)
}
