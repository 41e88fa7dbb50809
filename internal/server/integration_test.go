package server

import (
	"net/http"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	pdfgen "github.com/erappo-hq/pdf-service"
	"github.com/erappo-hq/pdf-service/internal/config"
	"github.com/erappo-hq/pdf-service/internal/metrics"
	"github.com/erappo-hq/pdf-service/internal/pdftest"
)

// chromeAvailable reports whether a Chrome/Chromium executable is in PATH.
func chromeAvailable() bool {
	for _, name := range []string{
		"chromium-browser", "chromium", "google-chrome",
		"google-chrome-stable", "chrome",
	} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func skipIfNoChrome(t *testing.T) {
	t.Helper()
	if !chromeAvailable() {
		t.Skip("skipping: Chrome/Chromium not found in PATH")
	}
}

func TestGenerate_BankslipEndToEnd(t *testing.T) {
	skipIfNoChrome(t)

	renderer, err := pdfgen.NewChromeRenderer(pdfgen.RendererConfig{Timeout: 60 * time.Second})
	if err != nil {
		t.Fatalf("NewChromeRenderer: %v", err)
	}
	srv := New(config.Config{}, zap.NewNop(), pdfgen.NewRegistry(), renderer, metrics.New())

	body := `{
		"templateName": "bankslip",
		"data": {
			"period": "August 2025",
			"company": {"companyName": "Acme Builders"},
			"employees": [{
				"employeeCode": "EMP-001",
				"employeeName": "K. Perera",
				"projectName": "Head Office",
				"bankName": "People's Bank",
				"branchName": "Colombo 07",
				"accountNumber": "123456789",
				"accountHolder": "K. Perera"
			}]
		}
	}`

	req := httptest.NewRequest(http.MethodPost, "/generate-pdf", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q", got)
	}
	if !pdftest.IsPDF(w.Body.Bytes()) {
		t.Fatal("response body is not a PDF")
	}
	if w.Body.Len() < 1000 {
		t.Errorf("bankslip PDF unexpectedly small: %d bytes", w.Body.Len())
	}
}
