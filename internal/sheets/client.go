package sheets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/pmurley/linkboard/internal/models"
)

// ErrNoSource is returned when neither a sheet URL nor a spreadsheet ID is configured
var ErrNoSource = errors.New("no sheet URL or spreadsheet ID configured")

// Client fetches data from a public Google Sheet using CSV export
type Client struct {
	csvURL     string
	httpClient *http.Client
}

// NewClient creates a client for a published CSV URL
func NewClient(csvURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(csvURL) == "" {
		return nil, ErrNoSource
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		csvURL: csvURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// NewClientForSheet creates a client for one tab of a spreadsheet
func NewClientForSheet(spreadsheetID, gid string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, ErrNoSource
	}
	return NewClient(ExportURL(spreadsheetID, gid), timeout)
}

// ExportURL builds the CSV export URL of a spreadsheet tab
func ExportURL(spreadsheetID, gid string) string {
	if gid == "" {
		gid = "0"
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", spreadsheetID, gid)
}

// URL returns the CSV address the client reads from
func (c *Client) URL() string {
	return c.csvURL
}

// LoadEntries fetches the sheet and parses it into entries
func (c *Client) LoadEntries(ctx context.Context) (models.EntryList, error) {
	text, err := c.FetchCSV(ctx)
	if err != nil {
		return nil, err
	}
	return ParseCSV(text)
}

// FetchCSV downloads the sheet as CSV text
func (c *Client) FetchCSV(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.csvURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/csv,text/plain;q=0.9,*/*;q=0.1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch sheet data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	// Unpublished sheets redirect to a sign-in page instead of CSV
	if isHTML(resp.Header.Get("Content-Type")) {
		return "", notCSVError(body)
	}

	return string(body), nil
}

// ParseCSV tokenizes CSV text and projects it onto entries.
// Parsing the same text always yields the same list.
func ParseCSV(text string) (models.EntryList, error) {
	records, err := ReadRecords(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return models.ParseEntries(records), nil
}

// ReadRecords reads every CSV record. Quoted fields may contain commas and
// newlines; rows may have differing field counts.
func ReadRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var data [][]string

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		data = append(data, record)
	}

	return data, nil
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
