package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces bursts of editor write events into one run.
const watchDebounce = 250 * time.Millisecond

func watchCmd() *cobra.Command {
	var (
		flags       projectConfig
		projectFile string
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the input documents change",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(projectFile, flags)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cfg)
		},
	}
	addProjectFlags(cmd, &flags, &projectFile)
	return cmd
}

func runWatch(ctx context.Context, cfg *projectConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.Shapes); err != nil {
		return err
	}
	if cfg.Context != "" {
		if err := watcher.Add(cfg.Context); err != nil {
			return err
		}
	}

	// Initial run before waiting for changes. A broken document is not
	// fatal in watch mode; the next save gets another chance.
	if err := runGenerate(cfg); err != nil {
		slog.Error("generation failed", "error", err)
	}

	var timer *time.Timer
	runs := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case runs <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		case <-runs:
			slog.Info("input changed, regenerating")
			if err := runGenerate(cfg); err != nil {
				slog.Error("generation failed", "error", err)
			}
		}
	}
}
