package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/rom8726/chatsweep"
	"github.com/rom8726/chatsweep/api"
	"github.com/rom8726/chatsweep/discord"
	"github.com/rom8726/chatsweep/plugins/api/cleanup"
	"github.com/rom8726/chatsweep/plugins/api/stop"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("[chatsweep] exit", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	slog.SetDefault(newLogger(cfg.Log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracer, err := initTracer(ctx, cfg.OTel)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(); err != nil {
			slog.Error("[chatsweep] shutdown tracer", "error", err)
		}
	}()

	client := discord.New(cfg.APIURL, cfg.Token, cfg.Bot)

	user, err := resolveUser(ctx, client, cfg.User)
	if err != nil {
		return err
	}

	channels, err := resolveChannels(ctx, client, cfg)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	pm, closers, err := buildPlugins(ctx, cfg, registry)
	if err != nil {
		return err
	}
	defer closeAll(closers)

	engine := chatsweep.NewEngine(client, chatsweep.WithEnginePluginManager(pm))
	runCfg := cfg.runConfig(user, channels)

	var worker *chatsweep.Worker
	if cfg.Interval > 0 {
		worker = chatsweep.NewWorker(engine, runCfg, cfg.Interval)
	} else {
		// raised by a signal even before the run registers with the engine
		runCfg.Stop = chatsweep.NewStopFlag()
	}

	go handleSignals(ctx, cancel, engine, worker, runCfg.Stop)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Listen != "" {
		server := api.NewServer(engine.Store(), stop.New(engine, nil), cleanup.New(engine.Store()))
		server.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		g.Go(func() error {
			return server.ListenAndServe(gctx, cfg.Listen)
		})
	}

	g.Go(func() error {
		// the API server lives as long as the sweeps
		defer cancel()

		if worker != nil {
			worker.Start(gctx)

			return nil
		}

		result, err := engine.Run(gctx, runCfg)
		if err != nil {
			return fmt.Errorf("sweep: %w", err)
		}

		slog.Info("[chatsweep] sweep finished",
			"run_id", result.ID,
			"status", result.Status,
			"scanned", result.Scanned,
			"matched", result.Matched,
			"deleted", result.Deleted,
			"failed", result.Failed,
		)

		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// handleSignals stops the sweeps gracefully on the first signal: the current
// page finishes. A second signal cancels everything.
func handleSignals(
	ctx context.Context,
	cancel context.CancelFunc,
	engine chatsweep.IEngine,
	worker *chatsweep.Worker,
	flag *chatsweep.StopFlag,
) {
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		return
	case sig := <-sigCh:
		slog.Info("[chatsweep] stopping after the current page", "signal", sig.String())
		stopSweeps(ctx, engine, worker, flag)
	}

	select {
	case <-ctx.Done():
	case <-sigCh:
		slog.Warn("[chatsweep] second signal, aborting")
		cancel()
	}
}

func stopSweeps(ctx context.Context, engine chatsweep.IEngine, worker *chatsweep.Worker, flag *chatsweep.StopFlag) {
	if worker != nil {
		worker.Stop()
	}

	if flag != nil {
		flag.Raise()
	}

	engine.StopAll(ctx, "signal")
}

func resolveUser(ctx context.Context, client discord.Client, user string) (string, error) {
	if user != "" {
		return user, nil
	}

	me, err := client.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("current user: %w", err)
	}

	slog.Info("[chatsweep] sweeping messages of the current user", "user_id", me.ID, "username", me.Username)

	return me.ID, nil
}

func resolveChannels(ctx context.Context, client discord.Client, cfg Config) ([]string, error) {
	channels := append([]string(nil), cfg.Channels...)

	if !cfg.AllChannels {
		return channels, nil
	}

	textChannels, err := client.TextChannels(ctx)
	if err != nil {
		return nil, fmt.Errorf("text channels: %w", err)
	}

	for _, channel := range textChannels {
		channels = append(channels, channel.ID)
	}

	return channels, nil
}

func newLogger(cfg LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
