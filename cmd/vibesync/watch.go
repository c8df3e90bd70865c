package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vibesync/internal/processor"
	"github.com/nguyentantai21042004/vibesync/internal/watcher"
)

func newWatchCommand(configFlag *string) *cobra.Command {
	var maxConcurrent int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the input folder and caption every video dropped into it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(*configFlag, maxConcurrent)
		},
	}

	cmd.Flags().IntVar(&maxConcurrent, "max-concurrent", 1, "Maximum videos processed at once")
	return cmd
}

func runWatch(configPath string, maxConcurrent int) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p, err := buildPipeline(configPath)
	if err != nil {
		return err
	}

	proc := processor.New(p.cfg, p.transcriber, p.renderer, p.log)

	w, err := watcher.New(p.cfg.Paths.Input, proc.Process, p.log, maxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	p.log.Info(ctx, "Monitoring: %s", p.cfg.Paths.Input)
	p.log.Info(ctx, "Output: %s", p.cfg.Paths.Output)

	select {
	case <-sigChan:
		p.log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return err
	}

	cancel()
	p.log.Info(ctx, "vibesync watch stopped")
	return nil
}
