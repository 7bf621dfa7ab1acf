package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/php-ini/thamaneya/internal/adapter/postgres"
	showrepo "github.com/php-ini/thamaneya/internal/adapter/postgres/show"
	"github.com/php-ini/thamaneya/internal/config"
	showsvc "github.com/php-ini/thamaneya/internal/service/show"
	"github.com/php-ini/thamaneya/internal/transport/middleware"
	"github.com/php-ini/thamaneya/internal/transport/rest"
)

// NewShowService wires the show engine to its PostgreSQL storage.
func NewShowService(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *showsvc.Service {
	repo := showrepo.New(pool, cfg.Search.TextSearchConfig)
	return showsvc.NewService(logger, repo, postgres.NewTxManager(pool))
}

// NewHandler builds the complete HTTP handler: CMS, Discovery and probe
// routes behind the middleware chain. The returned stop function releases
// background resources and must be called after the server has shut down.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func()) {
	svc := NewShowService(cfg, pool, logger)

	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, BuildVersion()).Register(mux)
	rest.NewCMSHandler(svc, logger).Register(mux)
	rest.NewDiscoveryHandler(svc, logger).Register(mux)

	stop := func() {}
	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		limit = rl.Limit(cfg.RateLimit.RequestsPerMinute)
		stop = rl.Stop
	}

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
	)(mux)

	return handler, stop
}
