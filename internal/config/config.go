// Package config resolves the service configuration from the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Config is the resolved service configuration. It is loaded once at
// startup and treated as immutable afterwards.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// Secret guards the PDF generation endpoint. Empty disables
	// authentication, intended only for local development.
	Secret string

	// Environment selects runtime behavior: "production" enables the
	// managed browser download and JSON logging.
	Environment string

	// ChromePath points at an explicit browser binary, overriding both
	// the system lookup and the managed download.
	ChromePath string

	// RenderTimeout bounds a single PDF render.
	RenderTimeout time.Duration

	// PublicDir is the root for logo assets referenced by relative path.
	PublicDir string
}

// IsProduction reports whether the service runs in production mode.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads the configuration from PDF_SERVICE_* environment variables
// and applies defaults for everything unset.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("environment", "development")
	v.SetDefault("render_timeout", 30*time.Second)
	v.SetDefault("public_dir", "public")

	bindings := map[string]string{
		"addr":           "PDF_SERVICE_ADDR",
		"secret":         "PDF_SERVICE_SECRET",
		"environment":    "PDF_SERVICE_ENV",
		"chrome_path":    "CHROME_PATH",
		"render_timeout": "PDF_RENDER_TIMEOUT",
		"public_dir":     "PUBLIC_DIR",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("config: binding %s: %w", env, err)
		}
	}

	timeout := v.GetDuration("render_timeout")
	if timeout <= 0 {
		return Config{}, fmt.Errorf("config: PDF_RENDER_TIMEOUT must be a positive duration, got %q", v.GetString("render_timeout"))
	}

	return Config{
		Addr:          v.GetString("addr"),
		Secret:        v.GetString("secret"),
		Environment:   v.GetString("environment"),
		ChromePath:    v.GetString("chrome_path"),
		RenderTimeout: timeout,
		PublicDir:     v.GetString("public_dir"),
	}, nil
}

// Module provides the loaded configuration to the application graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)
