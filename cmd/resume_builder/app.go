package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/workspace"
)

var (
	configFile string
	storeURL   string
	logMode    string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&storeURL, "store", "", "Store URL or directory (default ~/.resume-builder)")
	rootCmd.PersistentFlags().StringVar(&logMode, "log-mode", "", "Log encoding: production or development")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// app is the state shared by every command of one invocation.
var app struct {
	cfg    config.Config
	logger *zap.Logger
	store  storage.Store
}

// setup resolves configuration (defaults, then file, then environment, then
// flags) and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	teardown(cmd, nil)

	cfg := config.Defaults()
	if configFile != "" {
		fileCfg, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	cfg.ApplyEnv()
	if cmd.Flags().Changed("store") {
		cfg.Store = storeURL
	}
	if cmd.Flags().Changed("log-mode") {
		cfg.LogMode = logMode
	}
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogMode, cfg.Verbose)
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.logger = logger
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if app.store != nil {
		if err := app.store.Close(); err != nil {
			app.logger.Warn("Failed to close store", zap.Error(err))
		}
		app.store = nil
	}
	if app.logger != nil {
		_ = app.logger.Sync()
	}
}

// openStore connects to the configured store once per invocation.
func openStore(ctx context.Context) (storage.Store, error) {
	if app.store != nil {
		return app.store, nil
	}
	store, err := storage.Open(ctx, app.cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	app.store = store
	return store, nil
}

// loadWorkspace opens the store and loads the persisted package.
func loadWorkspace(ctx context.Context) (*workspace.Workspace, error) {
	store, err := openStore(ctx)
	if err != nil {
		return nil, err
	}
	return workspace.Load(ctx, store, app.logger, workspaceOptions()...), nil
}

func workspaceOptions() []workspace.Option {
	var opts []workspace.Option
	if app.cfg.Template != "" {
		opts = append(opts, workspace.WithDefaultTemplate(types.TemplateID(app.cfg.Template)))
	}
	return opts
}

// confirm asks before a destructive action unless assumeYes is set. Any
// answer other than y or yes declines.
func confirm(cmd *cobra.Command, assumeYes bool, prompt string) bool {
	if assumeYes {
		return true
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		_, _ = fmt.Fprintln(out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func cancelled(cmd *cobra.Command) error {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled; nothing changed.")
	return nil
}

// writeOutput writes data to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
