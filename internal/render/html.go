package render

import (
	"html/template"
	"io"
	"net/url"

	"github.com/pmurley/linkboard/internal/models"
)

// ErrorMessage replaces the table body when the sheet could not be loaded
const ErrorMessage = "Error loading data."

// HeaderCell is one clickable column header
type HeaderCell struct {
	Title string
	Key   string
	Href  string
	Arrow string
}

// RowData is one rendered table row
type RowData struct {
	Name    string
	URL     string
	HasURL  bool
	UsedFor string
}

// PageData is the template input for the table page
type PageData struct {
	Title        string
	Headers      []HeaderCell
	Rows         []RowData
	Error        bool
	ErrorMessage string
	ColumnCount  int
	Query        string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th a { color: inherit; text-decoration: none; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table id="links-table">
<thead>
<tr>{{range .Headers}}<th data-column="{{.Key}}"><a href="{{.Href}}">{{.Title}}</a>{{if .Arrow}} {{.Arrow}}{{end}}</th>{{end}}</tr>
</thead>
<tbody id="table-body">
{{- if .Error}}
<tr><td colspan="{{.ColumnCount}}">{{.ErrorMessage}}</td></tr>
{{- else}}
{{- range .Rows}}
<tr><td>{{.Name}}</td><td>{{if .HasURL}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.URL}}</a>{{else}}{{.URL}}{{end}}</td><td>{{.UsedFor}}</td></tr>
{{- end}}
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// NewPageData builds the template input. A non-nil loadErr yields the single error row.
func NewPageData(title string, entries models.EntryList, state models.SortState, query string, loadErr error) PageData {
	data := PageData{
		Title:        title,
		Headers:      Headers(state, query),
		ColumnCount:  len(models.Columns),
		ErrorMessage: ErrorMessage,
		Query:        query,
	}

	if loadErr != nil {
		data.Error = true
		return data
	}

	data.Rows = make([]RowData, 0, len(entries))
	for _, e := range entries {
		data.Rows = append(data.Rows, RowData{
			Name:    e.Display(models.ColumnName),
			URL:     e.Display(models.ColumnURL),
			HasURL:  e.HasURL(),
			UsedFor: e.Display(models.ColumnUsedFor),
		})
	}
	return data
}

// Headers builds the header links. Each link requests the toggled state for its column.
func Headers(state models.SortState, query string) []HeaderCell {
	headers := make([]HeaderCell, 0, len(models.Columns))
	for _, col := range models.Columns {
		cell := HeaderCell{
			Title: col.Title(),
			Key:   string(col),
			Href:  SortHref(state.Next(col), query),
		}
		if state.Active(col) {
			cell.Arrow = state.Order.Arrow()
		}
		headers = append(headers, cell)
	}
	return headers
}

// SortHref encodes a sort state as a relative query link
func SortHref(state models.SortState, query string) string {
	v := url.Values{}
	if state.Sorted() {
		v.Set("sort", string(state.Column))
		v.Set("order", string(state.Order))
	}
	if query != "" {
		v.Set("q", query)
	}
	return "?" + v.Encode()
}

// Page writes the full HTML document
func Page(w io.Writer, data PageData) error {
	return pageTemplate.Execute(w, data)
}
