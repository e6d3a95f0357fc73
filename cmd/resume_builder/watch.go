package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	watchOut         string
	watchTemplate    string
	watchCoverLetter bool
	watchDebounce    time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render an HTML preview whenever the stored document changes",
	Long:  "Watches the file store and rewrites --out after every change made by another resume_builder command or the API server. Only the file store can be watched.",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "preview.html", "Preview HTML file")
	watchCmd.Flags().StringVarP(&watchTemplate, "template", "t", "", "Pin a template (default: follow the active one)")
	watchCmd.Flags().BoolVar(&watchCoverLetter, "cover-letter", false, "Preview the cover letter")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", preview.DefaultDebounce, "Quiet period before re-rendering")
	rootCmd.AddCommand(watchCmd)
}

// newWatcher builds a watcher over the configured store.
func newWatcher(store storage.Store, out, template string, coverLetter bool) (*preview.Watcher, error) {
	opts := []preview.Option{
		preview.WithDebounce(watchDebounce),
		preview.WithDocument(documentFor(coverLetter)),
	}
	if template != "" {
		id, err := types.ParseTemplateID(template)
		if err != nil {
			return nil, err
		}
		opts = append(opts, preview.WithTemplate(id))
	}
	return preview.NewWatcher(store, out, app.logger, opts...)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	w, err := newWatcher(store, watchOut, watchTemplate, watchCoverLetter)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Watching %s, writing %s (Ctrl+C to stop)\n", storage.Dir(store), watchOut)
	return w.Run(ctx)
}
