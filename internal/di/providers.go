package di

import (
	"time"

	"CreditForge/internal/domain/repository"
	domsvc "CreditForge/internal/domain/service"
	"CreditForge/internal/handler/api"
	"CreditForge/internal/service/cache"
	"CreditForge/internal/services/riskmodel"
	"CreditForge/internal/usecase"
	"CreditForge/pkg/config"
	applogger "CreditForge/pkg/logger"
	"CreditForge/pkg/metrics"
	"CreditForge/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	return applogger.New(lc)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideModel builds the risk model instance from config.
func ProvideModel(cfg *config.Config) domsvc.RiskModel {
	m := cfg.Model
	return riskmodel.New(
		riskmodel.WithSeed(m.Seed),
		riskmodel.WithSegments(m.Segments...),
		riskmodel.WithBasePD(m.BasePD),
		riskmodel.WithPDBounds(m.PDFloor, m.PDCap),
		riskmodel.WithLGDRange(m.LGDRange[0], m.LGDRange[1]),
		riskmodel.WithEADRange(m.EADRange[0], m.EADRange[1]),
		riskmodel.WithCouponRange(m.CouponRange[0], m.CouponRange[1]),
		riskmodel.WithTermRange(m.TermRangeMonths[0], m.TermRangeMonths[1]),
	)
}

// ProvideCache creates the in-process snapshot cache.
func ProvideCache() *cache.TTLCache {
	return cache.NewTTLCache()
}

// ProvideWorkbench creates the model workbench usecase.
func ProvideWorkbench(model domsvc.RiskModel, c *cache.TTLCache, m repository.Metrics, cfg *config.Config) *usecase.Workbench {
	ttl := cfg.Cache.SnapshotTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return usecase.NewWorkbench(model, c, m, ttl)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(logger *applogger.Logger, wb *usecase.Workbench) *api.PortfolioEchoHandler {
	return api.NewPortfolioEchoHandler(logger, wb)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, h *api.PortfolioEchoHandler) *server.App {
	return server.New(cfg, logger, h)
}
