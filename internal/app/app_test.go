package app

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pmurley/linkboard/internal/config"
	"github.com/pmurley/linkboard/internal/models"
	"github.com/pmurley/linkboard/pkg/logger"
)

type countingLoader struct {
	calls atomic.Int32
}

func (l *countingLoader) LoadEntries(ctx context.Context) (models.EntryList, error) {
	l.calls.Add(1)
	return models.EntryList{{Name: "Go", URL: "https://go.dev"}}, nil
}

func freePort(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		SheetURL:      "https://example.com/sheet.csv",
		Port:          freePort(t),
		PageTitle:     "Links",
		CacheDuration: time.Minute,
		FetchTimeout:  time.Second,
		CommandPrefix: "!",
		LogLevel:      "info",
	}
}

func TestNewSheetsClient(t *testing.T) {
	client, err := NewSheetsClient(&config.Config{SheetURL: "https://example.com/pub?output=csv"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/pub?output=csv", client.URL())

	client, err = NewSheetsClient(&config.Config{GoogleSheetsID: "abc", SheetGID: "7"})
	require.NoError(t, err)
	assert.Contains(t, client.URL(), "/d/abc/export?format=csv&gid=7")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(&config.Config{Port: "8080", CacheDuration: time.Minute}, logger.NewWithZap("info", zap.NewNop()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestStartServesAndStops(t *testing.T) {
	cfg := testConfig(t)
	loader := &countingLoader{}

	a, err := newWithLoader(cfg, logger.NewWithZap("info", zap.NewNop()), loader)
	require.NoError(t, err)
	require.NoError(t, a.Start())

	resp, err := http.Get("http://127.0.0.1:" + cfg.Port + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), loader.calls.Load())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, a.Stop(ctx))
}

func TestRefreshMonitor(t *testing.T) {
	cfg := testConfig(t)
	loader := &countingLoader{}

	a, err := newWithLoader(cfg, logger.NewWithZap("info", zap.NewNop()), loader)
	require.NoError(t, err)

	a.startRefreshMonitor(10 * time.Millisecond)
	assert.Eventually(t, func() bool { return loader.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, a.Stop(context.Background()))
}
