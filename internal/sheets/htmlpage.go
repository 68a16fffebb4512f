package sheets

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNotCSV is returned when the sheet URL answers with an HTML page
var ErrNotCSV = errors.New("sheet did not return CSV")

// notCSVError describes the HTML page Google served instead of the export,
// usually a sign-in page for a sheet that is not published to the web.
func notCSVError(body []byte) error {
	title := PageTitle(body)
	if title == "" {
		return fmt.Errorf("%w: got an HTML page, is the sheet published?", ErrNotCSV)
	}
	return fmt.Errorf("%w: got HTML page %q, is the sheet published?", ErrNotCSV, title)
}

// PageTitle extracts the <title> text of an HTML document
func PageTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	return strings.Join(strings.Fields(title), " ")
}
