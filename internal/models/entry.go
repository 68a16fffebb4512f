package models

import (
	"strings"
)

// NotAvailable is displayed in place of a missing value
const NotAvailable = "N/A"

// Entry represents one row of the links sheet
type Entry struct {
	Name    string `json:"name,omitempty"`     // "Name" column
	URL     string `json:"url,omitempty"`      // "URL" column
	UsedFor string `json:"used_for,omitempty"` // "Used for" column
}

// Value returns the raw value of the given column
func (e Entry) Value(col Column) string {
	switch col {
	case ColumnName:
		return e.Name
	case ColumnURL:
		return e.URL
	case ColumnUsedFor:
		return e.UsedFor
	}
	return ""
}

// Display returns the value of the given column, or N/A when it is missing
func (e Entry) Display(col Column) string {
	return displayValue(e.Value(col))
}

// HasURL reports whether the entry carries a link target
func (e Entry) HasURL() bool {
	return e.URL != ""
}

func displayValue(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}

// ColumnIndex holds the header positions of the known columns, -1 when absent
type ColumnIndex struct {
	Name    int
	URL     int
	UsedFor int
}

// LocateColumns finds the first header containing each known column label.
// Matching ignores case and position within the header text.
func LocateColumns(header []string) ColumnIndex {
	idx := ColumnIndex{Name: -1, URL: -1, UsedFor: -1}

	for i, h := range header {
		h = strings.ToLower(cleanCell(h))
		if idx.Name < 0 && strings.Contains(h, "name") {
			idx.Name = i
		}
		if idx.URL < 0 && strings.Contains(h, "url") {
			idx.URL = i
		}
		if idx.UsedFor < 0 && strings.Contains(h, "used for") {
			idx.UsedFor = i
		}
	}

	return idx
}

// ParseEntryRow projects a CSV row onto an Entry using the located columns.
// Blank rows return nil.
func ParseEntryRow(row []string, idx ColumnIndex) *Entry {
	if isBlankRow(row) {
		return nil
	}

	return &Entry{
		Name:    cell(row, idx.Name),
		URL:     cell(row, idx.URL),
		UsedFor: cell(row, idx.UsedFor),
	}
}

// ParseEntries turns CSV records into entries. The first record is the header row.
func ParseEntries(records [][]string) EntryList {
	entries := EntryList{}
	if len(records) == 0 {
		return entries
	}

	idx := LocateColumns(records[0])

	for _, row := range records[1:] {
		if e := ParseEntryRow(row, idx); e != nil {
			entries = append(entries, *e)
		}
	}

	return entries
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return cleanCell(row[i])
}

// cleanCell trims whitespace and a single pair of stray surrounding quotes
func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}
	return v
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
