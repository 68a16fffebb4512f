package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmurley/linkboard/internal/app"
	"github.com/pmurley/linkboard/internal/config"
	"github.com/pmurley/linkboard/internal/models"
	"github.com/pmurley/linkboard/internal/render"
	"github.com/pmurley/linkboard/pkg/logger"
)

var (
	cfg *config.Config
	lg  *logger.Logger

	sheetURL   string
	sheetID    string
	sheetGID   string
	logLevel   string
	port       string
	sortColumn string
	sortOrder  string
	outputFile string
)

var rootCmd = &cobra.Command{
	Use:   "linkboard",
	Short: "Serve a published Google Sheet of links as a sortable table",
	Long: `linkboard fetches a published Google Sheet as CSV, reads the Name, URL
and Used for columns, and shows them as a table sorted by clicking a header.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		applyFlagOverrides(cfg)

		lg = logger.New(cfg.LogLevel)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if lg != nil {
			_ = lg.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (and Discord commands when DISCORD_TOKEN is set)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(cfg, lg)
		if err != nil {
			return fmt.Errorf("failed to create app: %w", err)
		}

		if err := a.Start(); err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		lg.Info("linkboard is running. Press CTRL+C to exit.")
		sc := make(chan os.Signal, 1)
		signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
		<-sc

		lg.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Stop(ctx); err != nil {
			lg.Error("Error during shutdown:", err)
		}
		return nil
	},
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Fetch the sheet and print the table to the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := sortStateFromFlags()
		if err != nil {
			return err
		}

		entries, loadErr := loadSorted(cmd.Context(), state)
		fmt.Fprintln(cmd.OutOrStdout(), render.Terminal(entries, state, loadErr))
		return nil
	},
}

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Fetch the sheet and write the table as a static HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := sortStateFromFlags()
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		entries, loadErr := loadSorted(cmd.Context(), state)
		return render.Page(w, render.NewPageData(cfg.PageTitle, entries, state, "", loadErr))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sheetURL, "sheet-url", "", "published CSV URL (overrides SHEET_URL)")
	rootCmd.PersistentFlags().StringVar(&sheetID, "sheet-id", "", "spreadsheet ID (overrides GOOGLE_SHEETS_ID)")
	rootCmd.PersistentFlags().StringVar(&sheetGID, "gid", "", "sheet tab gid (overrides SHEET_GID)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	serveCmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")

	for _, c := range []*cobra.Command{printCmd, htmlCmd} {
		c.Flags().StringVarP(&sortColumn, "sort", "s", "", "sort column: name, url or used_for")
		c.Flags().StringVar(&sortOrder, "order", "asc", "sort order: asc or desc")
	}
	htmlCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(serveCmd, printCmd, htmlCmd)
}

func applyFlagOverrides(c *config.Config) {
	if sheetURL != "" {
		c.SheetURL = sheetURL
	}
	if sheetID != "" {
		c.GoogleSheetsID = sheetID
	}
	if sheetGID != "" {
		c.SheetGID = sheetGID
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if port != "" {
		c.Port = port
	}
}

func sortStateFromFlags() (models.SortState, error) {
	col, err := models.ParseColumn(sortColumn)
	if err != nil {
		return models.SortState{}, err
	}
	if col == models.ColumnNone {
		return models.SortState{}, nil
	}
	return models.SortState{Column: col, Order: models.ParseOrder(sortOrder)}, nil
}

// loadSorted fetches once; a failure is logged and handed to the renderer as the error row
func loadSorted(ctx context.Context, state models.SortState) (models.EntryList, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := app.NewSheetsClient(cfg)
	if err != nil {
		lg.Error("Error loading data:", err)
		return nil, err
	}

	entries, err := client.LoadEntries(ctx)
	if err != nil {
		lg.Error("Error loading data:", err)
		return nil, err
	}

	entries.Apply(state)
	return entries, nil
}
