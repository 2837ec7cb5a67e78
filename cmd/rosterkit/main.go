package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/opshr/rosterkit/internal/config"
	"github.com/opshr/rosterkit/internal/csvsource"
	"github.com/opshr/rosterkit/internal/domain/roster"
	"github.com/opshr/rosterkit/internal/tui"
)

var (
	// Global flags
	rosterPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rosterkit",
	Short: "Personnel roster reporting from a flat CSV file",
	Long: `rosterkit loads an employee roster CSV and answers read-only
queries over it: headline statistics, filtered listings, keyword search
and upcoming probation deadlines.

Run without arguments to start the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Logs go to stderr so stdout stays clean for report output.
		zapCfg := zap.NewProductionConfig()
		zapCfg.OutputPaths = []string{"stderr"}
		zapCfg.Level = zap.NewAtomicLevelAt(parseLogLevel(cfg.Log.Level))
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveMenu()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rosterPath, "path", "", "roster CSV file (defaults to the configured path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	listCmd.Flags().BoolVar(&listActiveOnly, "active-only", false, "only show employees without a resignation date")
	searchCmd.Flags().StringVar(&searchKeyword, "keyword", "", "substring to match against name, team and title (required)")
	_ = searchCmd.MarkFlagRequired("keyword")
	probationCmd.Flags().IntVar(&probationWithin, "within", 30, "days ahead to look for probation deadlines")
	probationCmd.Flags().StringVar(&probationRef, "reference-date", "", "reference date YYYY-MM-DD (defaults to today)")

	rootCmd.AddCommand(summaryCmd, listCmd, searchCmd, probationCmd)
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// loadRoster reads the CSV named by --path, falling back to the
// configured default.
func loadRoster() (*roster.Roster, error) {
	path := rosterPath
	if path == "" {
		path = cfg.Roster.Path
	}
	r, err := csvsource.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Info("roster loaded",
		zap.String("path", path),
		zap.String("roster_id", r.ID),
		zap.Int("records", r.Len()))
	return r, nil
}

func runInteractiveMenu() error {
	r, err := loadRoster()
	if err != nil {
		return err
	}
	svc := roster.NewService(logger)
	p := tea.NewProgram(tui.NewApp(svc, r, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
