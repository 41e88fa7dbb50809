// Command pdfserver runs the payroll PDF generation service.
package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	pdfgen "github.com/erappo-hq/pdf-service"
	"github.com/erappo-hq/pdf-service/internal/config"
	"github.com/erappo-hq/pdf-service/internal/logging"
	"github.com/erappo-hq/pdf-service/internal/metrics"
	"github.com/erappo-hq/pdf-service/internal/server"
)

func newRenderer(cfg config.Config) (*pdfgen.ChromeRenderer, error) {
	return pdfgen.NewChromeRenderer(pdfgen.RendererConfig{
		ExecPath: cfg.ChromePath,
		// Production containers carry no system browser; resolve a
		// managed one at startup instead.
		DownloadBrowser: cfg.IsProduction(),
		Timeout:         cfg.RenderTimeout,
	})
}

func main() {
	fx.New(
		config.Module,
		logging.Module,
		metrics.Module,
		fx.Provide(
			pdfgen.NewRegistry,
			fx.Annotate(newRenderer, fx.As(new(server.Renderer))),
		),
		server.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	).Run()
}
