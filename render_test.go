package pdfgen_test

import (
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"testing"
	"time"

	pdfgen "github.com/erappo-hq/pdf-service"
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

func newTestRenderer(t *testing.T) *pdfgen.ChromeRenderer {
	t.Helper()
	skipIfNoChrome(t)
	r, err := pdfgen.NewChromeRenderer(pdfgen.RendererConfig{Timeout: 60 * time.Second})
	if err != nil {
		t.Fatalf("NewChromeRenderer: %v", err)
	}
	return r
}

func TestRender_Basic(t *testing.T) {
	r := newTestRenderer(t)

	pdf, err := r.Render(context.Background(), "<h1>Hello World</h1>", "<div></div>", pdfgen.PageOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !pdftest.IsPDF(pdf) {
		t.Fatal("output is not a valid PDF")
	}
	if len(pdf) < 100 {
		t.Errorf("PDF unexpectedly small: %d bytes", len(pdf))
	}
}

func TestRender_PayslipDocument(t *testing.T) {
	r := newTestRenderer(t)

	reg := pdfgen.NewRegistry()
	html, err := reg.Render("payslip", json.RawMessage(`{
		"employeeName": "K. Perera",
		"employeeCode": "EMP-042",
		"basicSalary": 185000,
		"netSalary": 171300.50
	}`))
	if err != nil {
		t.Fatalf("registry render: %v", err)
	}

	footer := pdfgen.ComposeFooter(pdfgen.CompanyProfile{CompanyName: "Acme Builders"}, "", pdfgen.VerificationCode("payslip"))
	pdf, err := r.Render(context.Background(), html, footer, pdfgen.PageOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !pdftest.IsPDF(pdf) {
		t.Fatal("output is not a valid PDF")
	}
	if len(pdf) < 1000 {
		t.Errorf("payslip PDF unexpectedly small: %d bytes", len(pdf))
	}
}

func TestRender_Landscape(t *testing.T) {
	r := newTestRenderer(t)

	opts := pdfgen.PageOptions{Format: pdfgen.FormatLetter, Orientation: pdfgen.Landscape}
	pdf, err := r.Render(context.Background(), "<table><tr><td>wide</td></tr></table>", "<div></div>", opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !pdftest.IsPDF(pdf) {
		t.Fatal("output is not a valid PDF")
	}
}

func TestRender_InvalidMargin(t *testing.T) {
	// The margin error surfaces before any browser session is launched,
	// so this runs without Chrome.
	r, err := pdfgen.NewChromeRenderer(pdfgen.RendererConfig{})
	if err != nil {
		t.Fatalf("NewChromeRenderer: %v", err)
	}

	_, err = r.Render(context.Background(), "<p>x</p>", "<div></div>", pdfgen.PageOptions{
		Margins: pdfgen.Margins{Top: "bogus"},
	})
	if err == nil {
		t.Fatal("expected error for invalid margin")
	}
	var rerr *pdfgen.RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("error is %T, want *RenderError", err)
	}
	if rerr.Stage != "export" {
		t.Errorf("Stage = %q, want export", rerr.Stage)
	}
}

func TestRender_CanceledContext(t *testing.T) {
	r := newTestRenderer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Render(ctx, "<p>x</p>", "<div></div>", pdfgen.PageOptions{})
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	// The session dies starting the browser, before navigation.
	var rerr *pdfgen.RenderError
	if errors.As(err, &rerr) && rerr.Stage != "launch" {
		t.Errorf("Stage = %q, want launch", rerr.Stage)
	}
}
