package pdfgen

import (
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
)

// resolveBrowser downloads a minimal compatible Chromium binary if one is
// not already cached and returns the path to the executable. Used in
// constrained deployments where no system browser is installed. The binary
// is stored in ~/.cache/rod/browser (Unix) or %APPDATA%\rod\browser
// (Windows).
func resolveBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("pdfgen: downloading browser: %w", err)
	}
	return path, nil
}
