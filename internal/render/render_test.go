package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/linkboard/internal/models"
)

func renderDoc(t *testing.T, data PageData) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Page(&buf, data))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestPageRows(t *testing.T) {
	entries := models.EntryList{
		{Name: "Go", URL: "https://go.dev", UsedFor: "Docs"},
		{URL: "", UsedFor: ""},
	}

	doc := renderDoc(t, NewPageData("Links", entries, models.SortState{}, "", nil))

	rows := doc.Find("#table-body tr")
	require.Equal(t, 2, rows.Length())

	first := rows.Eq(0).Find("td")
	assert.Equal(t, "Go", first.Eq(0).Text())
	link := first.Eq(1).Find("a")
	href, _ := link.Attr("href")
	target, _ := link.Attr("target")
	assert.Equal(t, "https://go.dev", href)
	assert.Equal(t, "_blank", target)

	second := rows.Eq(1).Find("td")
	assert.Equal(t, models.NotAvailable, second.Eq(0).Text())
	assert.Equal(t, models.NotAvailable, second.Eq(1).Text())
	assert.Equal(t, 0, second.Eq(1).Find("a").Length())
	assert.Equal(t, models.NotAvailable, second.Eq(2).Text())
}

func TestPageErrorRow(t *testing.T) {
	entries := models.EntryList{{Name: "ignored"}}
	doc := renderDoc(t, NewPageData("Links", entries, models.SortState{}, "", errors.New("fetch failed")))

	rows := doc.Find("#table-body tr")
	require.Equal(t, 1, rows.Length())

	cell := rows.Find("td")
	colspan, _ := cell.Attr("colspan")
	assert.Equal(t, "3", colspan)
	assert.Equal(t, ErrorMessage, cell.Text())
	assert.NotContains(t, doc.Text(), "fetch failed")
}

func TestHeaderLinksToggle(t *testing.T) {
	state := models.SortState{Column: models.ColumnName, Order: models.Ascending}
	doc := renderDoc(t, NewPageData("Links", nil, state, "", nil))

	hrefs := map[string]string{}
	doc.Find("thead th").Each(func(i int, s *goquery.Selection) {
		key, _ := s.Attr("data-column")
		href, _ := s.Find("a").Attr("href")
		hrefs[key] = href
	})

	assert.Equal(t, "?order=desc&sort=name", hrefs["name"])
	assert.Equal(t, "?order=asc&sort=url", hrefs["url"])
	assert.Equal(t, "?order=asc&sort=used_for", hrefs["used_for"])
	assert.Contains(t, doc.Find(`th[data-column="name"]`).Text(), "▲")
}

func TestSortHrefKeepsQuery(t *testing.T) {
	assert.Equal(t, "?q=logs", SortHref(models.SortState{}, "logs"))
	assert.Equal(t, "?order=desc&q=a+b&sort=url", SortHref(models.SortState{Column: models.ColumnURL, Order: models.Descending}, "a b"))
}

func TestPageEscapesValues(t *testing.T) {
	entries := models.EntryList{{Name: "<script>alert(1)</script>", URL: "javascript:alert(1)"}}

	var buf bytes.Buffer
	require.NoError(t, Page(&buf, NewPageData("Links", entries, models.SortState{}, "", nil)))

	out := buf.String()
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.False(t, strings.Contains(out, `href="javascript:`))
}

func TestTerminal(t *testing.T) {
	entries := models.EntryList{{Name: "Go", URL: "https://go.dev"}}
	out := Terminal(entries, models.SortState{Column: models.ColumnURL, Order: models.Descending}, nil)

	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "https://go.dev")
	assert.Contains(t, out, models.NotAvailable)
	assert.Contains(t, out, "URL ▼")

	errOut := Terminal(nil, models.SortState{}, errors.New("boom"))
	assert.Contains(t, errOut, ErrorMessage)
}
