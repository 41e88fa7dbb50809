// Package server exposes the PDF generation service over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	pdfgen "github.com/erappo-hq/pdf-service"
	"github.com/erappo-hq/pdf-service/internal/config"
	"github.com/erappo-hq/pdf-service/internal/metrics"
)

// Renderer turns laid-out HTML into PDF bytes. *pdfgen.ChromeRenderer is
// the production implementation; tests substitute stubs.
type Renderer interface {
	Render(ctx context.Context, html, footerHTML string, opts pdfgen.PageOptions) ([]byte, error)
}

// Server wires the document registry and the renderer behind the HTTP
// surface.
type Server struct {
	cfg      config.Config
	log      *zap.Logger
	registry *pdfgen.Registry
	renderer Renderer
	metrics  *metrics.Metrics
}

// New builds the server. It does not start listening; see [Module].
func New(cfg config.Config, log *zap.Logger, registry *pdfgen.Registry, renderer Renderer, m *metrics.Metrics) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		registry: registry,
		renderer: renderer,
		metrics:  m,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(s.log))

	r.GET("/healthz", s.handleHealthz)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	r.GET("/generate-pdf", s.handleServiceInfo)
	r.POST("/generate-pdf", secretAuth(s.cfg.Secret), s.handleGenerate)

	return r
}

// Module provides the server and binds its lifetime to the application.
var Module = fx.Module("server",
	fx.Provide(New),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Router(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Fatal("http server failed", zap.Error(err))
				}
			}()
			s.log.Info("listening", zap.String("addr", s.cfg.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
