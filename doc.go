// Package pdfgen renders payroll documents to PDF.
//
// The pipeline is: a template registry turns a document-type name and a
// JSON payload into a self-contained HTML document, a footer fragment with
// company branding and a verification code is composed, and a headless
// Chrome session (Chrome DevTools Protocol) paginates the HTML and exports
// the result as PDF bytes.
//
// Rendering a document:
//
//	reg := pdfgen.NewRegistry()
//	html, err := reg.Render("bankslip", payload)
//
//	footer := pdfgen.ComposeFooter(company, logoURI, pdfgen.VerificationCode("bankslip"))
//
//	r, err := pdfgen.NewChromeRenderer(pdfgen.RendererConfig{})
//	pdf, err := r.Render(ctx, html, footer, pdfgen.PageOptions{})
//
// Every call to [ChromeRenderer.Render] launches its own browser session
// and tears it down before returning. Requests are isolated from each
// other; there is no session pooling.
//
// The HTTP surface for this library lives in internal/server and is wired
// in cmd/pdfserver.
package pdfgen
