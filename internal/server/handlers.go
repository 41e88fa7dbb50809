package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	pdfgen "github.com/erappo-hq/pdf-service"
	"github.com/erappo-hq/pdf-service/internal/assets"
)

// generateRequest is the body of POST /generate-pdf. Data is kept raw:
// each document type decodes it into its own schema.
type generateRequest struct {
	TemplateName string          `json:"templateName"`
	Data         json.RawMessage `json:"data"`
	Options      generateOptions `json:"options"`
}

type generateOptions struct {
	Format      string         `json:"format"`
	Orientation string         `json:"orientation"`
	Margin      pdfgen.Margins `json:"margin"`
	Filename    string         `json:"filename"`
}

func (o generateOptions) pageOptions() pdfgen.PageOptions {
	return pdfgen.PageOptions{
		Format:      o.Format,
		Orientation: o.Orientation,
		Margins:     o.Margin,
	}
}

// companyEnvelope pulls the company identity out of an otherwise opaque
// document payload for the page footer.
type companyEnvelope struct {
	Company pdfgen.CompanyProfile `json:"company"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing templateName or data"})
		return
	}
	if req.TemplateName == "" || len(req.Data) == 0 || bytes.Equal(req.Data, []byte("null")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing templateName or data"})
		return
	}

	if !s.registry.Has(req.TemplateName) {
		s.metrics.RendersTotal.WithLabelValues(req.TemplateName, "not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{
			"error":              fmt.Sprintf("Template '%s' not found", req.TemplateName),
			"availableTemplates": s.registry.Names(),
		})
		return
	}

	s.metrics.InFlight.Inc()
	defer s.metrics.InFlight.Dec()
	timer := prometheus.NewTimer(s.metrics.RenderDuration.WithLabelValues(req.TemplateName))
	defer timer.ObserveDuration()

	log := s.log.With(
		zap.String("request_id", c.GetString("request_id")),
		zap.String("template", req.TemplateName),
	)
	log.Info("generating pdf")

	html, err := s.registry.Render(req.TemplateName, req.Data)
	if err != nil {
		s.failGenerate(c, log, req.TemplateName, err)
		return
	}

	var envelope companyEnvelope
	// Best effort: documents without a company block get a bare footer.
	_ = json.Unmarshal(req.Data, &envelope)

	code := pdfgen.VerificationCode(req.TemplateName)
	logo := assets.LogoDataURI(s.cfg.PublicDir, envelope.Company.CompanyLogo)
	footer := pdfgen.ComposeFooter(envelope.Company, logo, code)

	pdf, err := s.renderer.Render(c.Request.Context(), html, footer, req.Options.pageOptions())
	if err != nil {
		s.failGenerate(c, log, req.TemplateName, err)
		return
	}

	doc := pdfgen.NewDocument(pdf, req.TemplateName, req.Options.Filename)
	s.metrics.RendersTotal.WithLabelValues(req.TemplateName, "ok").Inc()
	log.Info("pdf generated",
		zap.Int("bytes", doc.Len()),
		zap.String("verification_code", code),
	)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename()))
	c.Header("Content-Length", fmt.Sprint(doc.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "application/pdf", doc.Bytes())
}

func (s *Server) failGenerate(c *gin.Context, log *zap.Logger, template string, err error) {
	s.metrics.RendersTotal.WithLabelValues(template, "render_error").Inc()
	log.Error("pdf generation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Failed to generate PDF",
		"message": err.Error(),
	})
}

func (s *Server) handleServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":            "ERAPPO PDF Generation Service",
		"version":            "1.0.0",
		"availableTemplates": s.registry.Names(),
		"endpoints": gin.H{
			"post": gin.H{
				"path":           "/generate-pdf",
				"description":    "Generate PDF from template",
				"authentication": "X-PDF-Service-Secret header (if configured)",
			},
		},
	})
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
