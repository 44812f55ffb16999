package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"

	"github.com/chartgrep/chartgrep/pkg/api"
	"github.com/chartgrep/chartgrep/pkg/assemble"
	"github.com/chartgrep/chartgrep/pkg/config"
	"github.com/chartgrep/chartgrep/pkg/hospital"
	"github.com/chartgrep/chartgrep/pkg/log"
	"github.com/chartgrep/chartgrep/pkg/search"
)

// ServeCommand creates the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the record search API, refreshing on an interval",
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve(ctx, c)
		},
	}
}

func serve(ctx context.Context, c *cli.Command) error {
	configPath := c.String("config")
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger := log.ForService("serve")

	st := buildStore(cfg)
	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	st.Start(serveCtx)
	defer st.Close()

	server := api.NewServer(st, search.NewService(search.NewSubstringMatcher()))
	mux := http.NewServeMux()
	server.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.RequestIDMiddleware(api.CorsMiddleware(mux)),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Signal handling: SIGHUP reloads the configuration, INT/TERM stop.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	// Watch the config file so edits apply without a manual SIGHUP.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warnf("failed to create config file watcher: %v", err)
	} else {
		defer func() {
			if err := watcher.Close(); err != nil {
				logger.Warnf("closing config file watcher: %v", err)
			}
		}()
		if err := watcher.Add(configPath); err != nil {
			logger.Warnf("failed to watch config file %s: %v", configPath, err)
		} else {
			logger.Infof("watching config file for changes: %s", configPath)
		}
	}

	reload := func() {
		newCfg, err := config.LoadConfig(configPath)
		if err != nil {
			logger.Errorf("config reload failed: %v", err)
			return
		}
		if newCfg.ListenAddr != cfg.ListenAddr {
			logger.Warnf("listen_addr changed; restart required for it to take effect")
		}
		cfg = newCfg

		client := hospital.NewClient(cfg.Services, cfg.RequestTimeout.Duration)
		st.SetSources(assemble.NewAssembler(client, cfg.Hospital), client)
		if err := st.Refresh(serveCtx); err != nil {
			logger.Errorf("refresh after reload failed: %v", err)
			return
		}
		logger.Infof("configuration reloaded")
	}

	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	if watcher != nil {
		events = watcher.Events
		watchErrs = watcher.Errors
	}

	for {
		select {
		case <-ctx.Done():
			return shutdown(httpServer)
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		case sig := <-sigCh:
			if sig == syscall.SIGHUP {
				logger.Infof("received SIGHUP, reloading configuration")
				reload()
				continue
			}
			logger.Infof("received %v, shutting down", sig)
			return shutdown(httpServer)
		case event := <-events:
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				// Editors replace files on save; re-add the watch in
				// case the inode changed.
				if event.Has(fsnotify.Rename) {
					_ = watcher.Add(configPath)
				}
				logger.Infof("config file changed, reloading")
				reload()
			}
		case err := <-watchErrs:
			logger.Warnf("config watcher error: %v", err)
		}
	}
}

func shutdown(s *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
