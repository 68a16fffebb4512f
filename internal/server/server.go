package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pmurley/linkboard/internal/links"
	"github.com/pmurley/linkboard/internal/models"
	"github.com/pmurley/linkboard/internal/render"
	"github.com/pmurley/linkboard/pkg/logger"
)

// Server serves the links table over HTTP
type Server struct {
	repo   *links.Repository
	logger *logger.Logger
	title  string
	engine *gin.Engine
	http   *http.Server
}

func New(repo *links.Repository, log *logger.Logger, title string) *Server {
	s := &Server{
		repo:   repo,
		logger: log,
		title:  title,
	}
	s.engine = s.setupRouter()
	return s
}

// Handler returns the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/", s.handleTable)
	r.GET("/api/entries", s.handleEntries)
	r.POST("/reload", s.handleReload)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// Start listens on the port in the background
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
	case <-time.After(100 * time.Millisecond):
	}

	s.logger.Info("Serving links table on port", port)
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// sortFromQuery reads the sort and order parameters. An unknown column is an error.
func sortFromQuery(c *gin.Context) (models.SortState, error) {
	col, err := models.ParseColumn(c.Query("sort"))
	if err != nil {
		return models.SortState{}, err
	}
	if col == models.ColumnNone {
		return models.SortState{}, nil
	}
	return models.SortState{Column: col, Order: models.ParseOrder(c.Query("order"))}, nil
}

func (s *Server) handleTable(c *gin.Context) {
	state, err := sortFromQuery(c)
	if err != nil {
		s.logger.Debug("Ignoring sort parameter:", err)
		state = models.SortState{}
	}
	search := c.Query("q")

	entries, loadErr := s.repo.Sorted(c.Request.Context(), state, search)
	if loadErr != nil {
		s.logger.Error("Error loading data:", loadErr)
	}

	var buf bytes.Buffer
	if err := render.Page(&buf, render.NewPageData(s.title, entries, state, search, loadErr)); err != nil {
		s.logger.Error("Failed to render page:", err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleEntries(c *gin.Context) {
	state, err := sortFromQuery(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := s.repo.Sorted(c.Request.Context(), state, c.Query("q"))
	if err != nil {
		s.logger.Error("Error loading data:", err)
		RespondError(c, http.StatusBadGateway, render.ErrorMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"sort":    state.Column,
		"order":   state.Order,
		"count":   len(entries),
	})
}

func (s *Server) handleReload(c *gin.Context) {
	n, err := s.repo.Reload(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to reload data:", err)
		RespondError(c, http.StatusBadGateway, "Failed to reload data")
		return
	}

	s.logger.Info("Data reloaded,", n, "entries")
	c.JSON(http.StatusOK, gin.H{"status": "reloaded", "count": n})
}
