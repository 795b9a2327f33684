package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/veland/wearsyncd/internal/config"
	"codeberg.org/veland/wearsyncd/internal/health"
	"codeberg.org/veland/wearsyncd/internal/journal"
	"codeberg.org/veland/wearsyncd/internal/logger"
	"codeberg.org/veland/wearsyncd/internal/pid"
	"codeberg.org/veland/wearsyncd/internal/remote"
	"codeberg.org/veland/wearsyncd/internal/source"
	"codeberg.org/veland/wearsyncd/internal/syncer"

	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"
)

type modeFlags struct {
	syncNow    bool
	status     bool
	summary    bool
	disconnect bool
	history    bool
}

var (
	cfg  *config.Config
	mode modeFlags
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	// debug/verbose flags outrank the configured level
	if level, ok := logger.ParseLevel(cfg.LogLevel); ok && !cfg.Debug && !cfg.Verbose {
		logger.SetLogLevel(level)
	}
	logger.Debug().Msg("Config loaded")
}

func parseMode() modeFlags {
	flags := pflag.NewFlagSet("wearsyncd-mode", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true

	var m modeFlags
	flags.BoolVar(&m.syncNow, "sync-now", false, "Run one sync cycle and exit")
	flags.BoolVar(&m.status, "status", false, "Print connection status and exit")
	flags.BoolVar(&m.summary, "summary", false, "Print the rolling week summary and exit")
	flags.BoolVar(&m.disconnect, "disconnect", false, "Disconnect the device linkage and exit")
	flags.BoolVar(&m.history, "history", false, "Print recent sync attempts and exit")

	if err := flags.Parse(os.Args[1:]); err != nil && err != pflag.ErrHelp {
		logger.Fatal().Err(err).Msg("failed to parse flags")
	}

	return m
}

func main() {
	mode = parseMode()

	provider, err := health.New(cfg.HealthDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open health store")
	}
	defer provider.Close()

	recorder, err := journal.NewService(journal.Config{
		Enabled: cfg.Journal,
		DBPath:  cfg.JournalDB,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize sync journal")
	}
	defer recorder.Close()

	client := remote.NewClient(remote.Config{
		BaseURL: cfg.APIURL,
		Token:   cfg.Token,
		Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
	})

	adapters := source.NewAdapters(provider, time.Duration(cfg.AdapterTimeout)*time.Second)
	engine := syncer.New(provider, adapters, client, recorder, cfg.WindowDays)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	switch {
	case mode.syncNow:
		runSync(ctx, engine)
	case mode.status:
		runStatus(ctx, client)
	case mode.summary:
		runSummary(ctx, client)
	case mode.disconnect:
		runDisconnect(ctx, client)
	case mode.history:
		runHistory(ctx, recorder)
	default:
		runDaemon(ctx, engine)
	}
}

func runSync(ctx context.Context, engine *syncer.Syncer) {
	days, err := engine.Sync(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("sync failed")
	}
	fmt.Printf("synced %d days\n", days)
}

func runStatus(ctx context.Context, client remote.Client) {
	status, err := client.Status(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("status check failed")
	}

	fmt.Printf("connected: %v\n", status.Connected)
	if ws := status.WeekSummary; ws != nil && ws.DataAvailable {
		fmt.Printf("avg sleep: %.1fh  avg HRV: %.0f  avg steps: %.0f  avg resting HR: %.0f\n",
			ws.AvgSleep, ws.AvgHRV, ws.AvgSteps, ws.AvgRestingHR)
	}
}

func runSummary(ctx context.Context, client remote.Client) {
	summary, err := client.Summary(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("summary fetch failed")
	}

	if !summary.DataAvailable {
		fmt.Println("no data available for the past week")
		return
	}
	fmt.Printf("avg sleep: %.1fh  avg readiness: %.0f  avg HRV: %.0f  avg steps: %.0f  avg resting HR: %.0f\n",
		summary.AvgSleep, summary.AvgReadiness, summary.AvgHRV, summary.AvgSteps, summary.AvgRestingHR)
}

func runDisconnect(ctx context.Context, client remote.Client) {
	if err := client.Disconnect(ctx); err != nil {
		logger.Fatal().Err(err).Msg("disconnect failed")
	}
	fmt.Println("device linkage removed")
}

func runHistory(ctx context.Context, recorder journal.Recorder) {
	entries, err := recorder.Recent(ctx, 20)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read sync journal")
	}

	for _, e := range entries {
		fmt.Printf("%s  %-7s  days=%d  window=%d  %s\n",
			e.StartedAt.Format(time.RFC3339), e.Outcome, e.DaysSynced, e.WindowDays, e.ErrorCode)
	}
}

func runDaemon(ctx context.Context, engine *syncer.Syncer) {
	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to write pid file")
	}
	defer pid.Remove()

	scheduler := cron.New()
	_, err := scheduler.AddFunc(cfg.Schedule, func() {
		check := engine.CheckAndSync(ctx)
		logger.Info().
			Bool("sync_needed", check.SyncNeeded).
			Str("reason", check.Reason).
			Msg("auto-sync check")
	})
	if err != nil {
		logger.Fatal().Err(err).Msgf("could not schedule auto-sync on schedule: %s", cfg.Schedule)
	}

	logger.Info().Str("schedule", cfg.Schedule).Msg("auto-sync scheduled")
	scheduler.Start()

	<-ctx.Done()

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	engine.Wait()
	logger.Info().Msg("shutdown complete")
}

func handleSignals(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info().Msg("received shutdown signal")
	cancel()
}
