// Package logging builds the service logger.
package logging

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/erappo-hq/pdf-service/internal/config"
)

// New builds the zap logger: JSON output in production, console output
// with colored levels everywhere else.
func New(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Module provides the logger and flushes it on shutdown.
var Module = fx.Module("logging",
	fx.Provide(New),
	fx.Invoke(func(lc fx.Lifecycle, log *zap.Logger) {
		lc.Append(fx.StopHook(func() {
			// Sync on stdout/stderr fails on some platforms; the buffers
			// are flushed either way.
			_ = log.Sync()
		}))
	}),
)
