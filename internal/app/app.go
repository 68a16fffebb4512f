package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
	"github.com/pmurley/linkboard/internal/cache"
	"github.com/pmurley/linkboard/internal/config"
	"github.com/pmurley/linkboard/internal/discord"
	"github.com/pmurley/linkboard/internal/links"
	"github.com/pmurley/linkboard/internal/server"
	"github.com/pmurley/linkboard/internal/sheets"
	"github.com/pmurley/linkboard/pkg/logger"
)

const initialLoadTimeout = 30 * time.Second

type App struct {
	config   *config.Config
	logger   *logger.Logger
	repo     *links.Repository
	server   *server.Server
	session  *discordgo.Session
	handlers *discord.HandlerManager
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewSheetsClient picks the CSV source from the configuration
func NewSheetsClient(cfg *config.Config) (*sheets.Client, error) {
	if cfg.SheetURL != "" {
		return sheets.NewClient(cfg.SheetURL, cfg.FetchTimeout)
	}
	return sheets.NewClientForSheet(cfg.GoogleSheetsID, cfg.SheetGID, cfg.FetchTimeout)
}

func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	sheetsClient, err := NewSheetsClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return newWithLoader(cfg, log, sheetsClient)
}

func newWithLoader(cfg *config.Config, log *logger.Logger, loader links.Loader) (*App, error) {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	repo := links.NewRepository(loader, cache.New(cfg.CacheDuration), log)

	a := &App{
		config:   cfg,
		logger:   log,
		repo:     repo,
		server:   server.New(repo, log, cfg.PageTitle),
		stopChan: make(chan struct{}),
	}

	if cfg.DiscordEnabled() {
		session, err := discordgo.New("Bot " + cfg.DiscordToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}

		session.Identify.Intents = discordgo.IntentsGuildMessages |
			discordgo.IntentsDirectMessages |
			discordgo.IntentsMessageContent

		a.session = session
		a.handlers = discord.NewHandlerManager(session, cfg, log, repo)
	}

	return a, nil
}

func (a *App) Start() error {
	ctx, cancel := context.WithTimeout(context.Background(), initialLoadTimeout)
	defer cancel()

	if n, err := a.repo.Reload(ctx); err != nil {
		a.logger.Error("Failed to load initial data from sheet:", err)
	} else {
		a.logger.Info("Loaded", n, "links from sheet")
	}

	if err := a.server.Start(a.config.Port); err != nil {
		return err
	}

	if a.session != nil {
		a.handlers.RegisterHandlers()
		if err := a.session.Open(); err != nil {
			return fmt.Errorf("failed to open Discord session: %w", err)
		}
		a.logger.Info("Discord commands enabled with prefix", a.config.CommandPrefix)
	}

	if a.config.RefreshInterval > 0 {
		a.startRefreshMonitor(a.config.RefreshInterval)
	}

	return nil
}

func (a *App) Stop(ctx context.Context) error {
	close(a.stopChan)
	a.wg.Wait()

	var firstErr error
	if a.session != nil {
		if err := a.session.Close(); err != nil {
			firstErr = err
		}
	}
	if err := a.server.Stop(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
