package models

import (
	"strings"
)

// EntryList represents the ordered table rows with helper methods
type EntryList []Entry

// Clone returns a copy that can be sorted without touching the original
func (el EntryList) Clone() EntryList {
	out := make(EntryList, len(el))
	copy(out, el)
	return out
}

// Search returns entries whose name or purpose contains the search string
func (el EntryList) Search(search string) EntryList {
	searchLower := strings.ToLower(strings.TrimSpace(search))
	if searchLower == "" {
		return el
	}

	var matches EntryList
	for _, e := range el {
		if strings.Contains(strings.ToLower(e.Name), searchLower) ||
			strings.Contains(strings.ToLower(e.UsedFor), searchLower) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Rows returns the display values of each entry in column order
func (el EntryList) Rows() [][]string {
	rows := make([][]string, 0, len(el))
	for _, e := range el {
		row := make([]string, 0, len(Columns))
		for _, col := range Columns {
			row = append(row, e.Display(col))
		}
		rows = append(rows, row)
	}
	return rows
}
