package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"morningbrief/internal/api"
	"morningbrief/internal/builder"
	"morningbrief/internal/config"
	"morningbrief/internal/content"
	"morningbrief/internal/scheduler"
	"morningbrief/internal/services"
	"morningbrief/pkg/client"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "morningbrief",
		Short:         "Assemble and deliver a Norwegian morning brief to Discord",
		Long:          "Fetches weather, electricity prices, news, markets and calendar facts,\nrenders a single Discord embed and posts it to the configured webhook.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSend,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "send",
			Short: "Collect everything and post one brief (default)",
			RunE:  runSend,
		},
		&cobra.Command{
			Use:   "check",
			Short: "Probe every provider and report status without sending",
			RunE:  runCheck,
		},
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP preview server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "schedule",
			Short: "Run as a daemon posting briefs on a cron spec",
			RunE:  runSchedule,
		},
	)

	return root
}

// setup wires logging first so config loading can already log, then loads
// config. The returned logger is installed as the zap global.
func setup() (*config.Config, *zap.Logger, error) {
	bootstrap, _ := zap.NewProduction()
	zap.ReplaceGlobals(bootstrap)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger := bootstrap
	if cfg.Debug {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	} else if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapConfig := zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(level)
		if leveled, err := zapConfig.Build(); err == nil {
			logger = leveled
		}
	}
	zap.ReplaceGlobals(logger)

	return cfg, logger, nil
}

func clientConfigFrom(cfg *config.Config) client.ClientConfig {
	return client.ClientConfig{
		Timeout:        cfg.HTTP.Timeout,
		UserAgent:      cfg.UserAgent,
		MaxRetries:     cfg.Retry.MaxRetries,
		RetryDelay:     cfg.Retry.Delay,
		Multiplier:     cfg.Retry.Multiplier,
		Threshold:      cfg.CircuitBreaker.Threshold,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
	}
}

func newPipeline(cfg *config.Config, logger *zap.Logger) (*services.Aggregator, *builder.Builder, *services.Notifier) {
	aggregator := services.NewAggregator(cfg, logger)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	picker := content.NewPicker(rng, cfg.Content)
	b := builder.NewBuilder(cfg.City, picker)
	notifier := services.NewNotifier(cfg.WebhookURL, clientConfigFrom(cfg), logger)
	return aggregator, b, notifier
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		zap.L().Error("Startup failed", zap.Error(err))
		return err
	}
	defer logger.Sync()

	logger.Info("Starting morning brief run", zap.String("city", cfg.City))

	aggregator, b, notifier := newPipeline(cfg, logger)
	defer aggregator.Stop()

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	snapshot := aggregator.Collect(ctx)

	if snapshot.SectionCount() == 0 {
		err := fmt.Errorf("all data sources failed")
		logger.Error("Nothing to send", zap.Error(err))
		if sendErr := notifier.SendError(ctx, err); sendErr != nil {
			logger.Error("Failed to deliver error notice", zap.Error(sendErr))
		}
		return err
	}

	message := b.Build(snapshot)

	if err := notifier.Send(ctx, message); err != nil {
		logger.Error("Brief delivery failed", zap.Error(err))
		return err
	}

	logger.Info("Brief delivered", zap.Int("sections", snapshot.SectionCount()))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		zap.L().Error("Startup failed", zap.Error(err))
		return err
	}
	defer logger.Sync()

	aggregator := services.NewAggregator(cfg, logger)
	defer aggregator.Stop()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	statuses := aggregator.CheckProviders(ctx)

	failed := 0
	for _, status := range statuses {
		if status.OK {
			fmt.Fprintf(cmd.OutOrStdout(), "OK    %-12s %s\n", status.Name, status.Duration.Round(time.Millisecond))
			continue
		}
		failed++
		fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %-12s %s: %v\n", status.Name, status.Duration.Round(time.Millisecond), status.Err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d providers failed", failed, len(statuses))
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		zap.L().Error("Startup failed", zap.Error(err))
		return err
	}
	defer logger.Sync()

	aggregator, b, notifier := newPipeline(cfg, logger)
	defer aggregator.Stop()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	handler := api.NewHandler(aggregator, b, notifier, logger)
	api.SetupRoutes(app, handler, logger)

	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting preview server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
	return nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		zap.L().Error("Startup failed", zap.Error(err))
		return err
	}
	defer logger.Sync()

	aggregator, b, notifier := newPipeline(cfg, logger)
	defer aggregator.Stop()

	sched := scheduler.NewScheduler(aggregator, b, notifier, cfg.Scheduler.CronSpec, logger)
	if err := sched.Start(); err != nil {
		logger.Error("Failed to start scheduler", zap.Error(err))
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down scheduler...")
	sched.Stop()
	logger.Info("Scheduler stopped")
	return nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}
