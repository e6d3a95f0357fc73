package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/printing"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
)

var (
	servePort     int
	serveWatchOut string
	serveNoLimit  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editor API server",
	Long: `Start an HTTP server that exposes the editor, history, import/export and
rendering over a JSON API. When RESUME_JWT_SECRET is set every /api route
requires a bearer token (see "resume_builder token").`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config, 8080)")
	serveCmd.Flags().StringVar(&serveWatchOut, "watch-out", "", "Also keep an HTML preview file up to date")
	serveCmd.Flags().BoolVar(&serveNoLimit, "no-rate-limit", false, "Disable per-client rate limiting")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jwtCfg, err := config.LoadJWTConfig(false)
	if err != nil {
		return err
	}
	ws, err := loadWorkspace(ctx)
	if err != nil {
		return err
	}

	port := app.cfg.Port
	if servePort != 0 {
		port = servePort
	}
	cfg := server.Config{
		Port:      port,
		Workspace: ws,
		Logger:    app.logger,
		JWT:       jwtCfg,
	}
	if !serveNoLimit {
		cfg.RateLimit = ratelimit.LoadConfig(app.cfg.RequestsPerSecond, app.cfg.Burst)
	}
	if chrome, ok := printing.FindChrome(app.cfg.ChromePath); ok {
		cfg.Printer = printing.NewPrinter(app.logger, printing.WithChromePath(chrome))
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	if serveWatchOut != "" {
		w, err := newWatcher(app.store, serveWatchOut, "", false)
		if err != nil {
			return err
		}
		g.Go(func() error { return w.Run(gctx) })
	}
	g.Go(func() error { return srv.Start(gctx) })
	return g.Wait()
}
