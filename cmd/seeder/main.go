// Command seeder loads a YAML fixture of shows into the catalog for local
// development and demos.
//
// Flags override the matching SEEDER_* settings:
//
//	--fixture        path to the fixture file
//	--dry-run        validate the fixture without writing to the database
//	--force          seed even if the catalog already has shows
//	--migrate        apply the embedded schema first
//	--seeder-config  path to a seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/php-ini/thamaneya/internal/adapter/postgres"
	"github.com/php-ini/thamaneya/internal/app"
	"github.com/php-ini/thamaneya/internal/app/seeder"
	"github.com/php-ini/thamaneya/internal/config"
	"github.com/php-ini/thamaneya/internal/domain"
)

func main() {
	fixturePath := flag.String("fixture", "", "path to the fixture file")
	dryRun := flag.Bool("dry-run", false, "validate the fixture without writing to the database")
	force := flag.Bool("force", false, "seed even if the catalog already has shows")
	migrate := flag.Bool("migrate", false, "apply the embedded schema before seeding")
	seederConfig := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	cfg, err := seeder.LoadConfig(*seederConfig)
	if err != nil {
		fail(logger, "load seeder config", err)
	}
	if *fixturePath != "" {
		cfg.FixturePath = *fixturePath
	}
	cfg.DryRun = cfg.DryRun || *dryRun
	cfg.Force = cfg.Force || *force
	cfg.Migrate = cfg.Migrate || *migrate

	fixture, err := seeder.LoadFixture(cfg.FixturePath)
	if err != nil {
		fail(logger, "load fixture "+cfg.FixturePath, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database, logger)
	if err != nil {
		fail(logger, "connect to database", err)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := app.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			fail(logger, "migrate", err)
		}
	}

	svc := app.NewShowService(appCfg, pool, logger)
	pipeline := seeder.NewPipeline(logger, svc, postgres.NewTxManager(pool), *cfg)

	if _, err := pipeline.Run(ctx, fixture); err != nil {
		pool.Close()
		fail(logger, "seeding failed", err)
	}
}

// fail logs err, one line per invalid fixture field, and exits with status 1.
func fail(logger *slog.Logger, msg string, err error) {
	for _, fe := range domain.FieldErrors(err) {
		logger.Error("invalid fixture field",
			slog.String("field", fe.Field),
			slog.String("message", fe.Message),
		)
	}
	logger.Error(msg, slog.String("error", err.Error()))
	os.Exit(1)
}
