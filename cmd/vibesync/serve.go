package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vibesync/internal/server"
	"github.com/nguyentantai21042004/vibesync/internal/session"
)

func newServeCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the interactive captioning session service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configFlag)
		},
	}
}

func runServe(configPath string) error {
	ctx := context.Background()

	p, err := buildPipeline(configPath)
	if err != nil {
		return err
	}

	sess := session.New(p.transcriber, p.renderer, p.log)
	srv := &http.Server{
		Addr:    p.cfg.Server.Addr,
		Handler: server.New(p.cfg, p.log, sess).Routes(),
	}

	p.log.Info(ctx, "vibesync session service listening on %s", p.cfg.Server.Addr)
	p.log.Info(ctx, "Upload ceiling: %d bytes", p.cfg.Limits.MaxUploadBytes)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		p.log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	p.log.Info(ctx, "vibesync stopped")
	return nil
}
