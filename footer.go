package pdfgen

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// CompanyProfile is the company identity block read from document
// payloads. Every field is optional; absent fields degrade to empty
// strings in the composed footer.
type CompanyProfile struct {
	CompanyName  string         `json:"companyName"`
	Address      CompanyAddress `json:"address"`
	CompanyPhone string         `json:"companyPhone"`
	CompanyEmail string         `json:"companyEmail"`
	CompanyLogo  string         `json:"companyLogo"`
}

// CompanyAddress holds the printable address parts.
type CompanyAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// ComposeFooter builds the HTML fragment the rendering engine repeats on
// every exported page: company identity, verification code, page-number
// placeholders (substituted per page by the engine), and a generation
// timestamp.
//
// Address parts are joined with ", " and prefixed with " | " only when at
// least one part is present. Phone and email are joined with " | " only
// when both are present. The logo is embedded right-aligned inside a fixed
// 25mm x 10mm box only when logoDataURI is non-empty.
func ComposeFooter(p CompanyProfile, logoDataURI, verificationCode string) string {
	var parts []string
	for _, s := range []string{p.Address.Street, p.Address.City, p.Address.State, p.Address.Country} {
		if s != "" {
			parts = append(parts, html.EscapeString(s))
		}
	}
	addressText := ""
	if len(parts) > 0 {
		addressText = " | " + strings.Join(parts, ", ")
	}

	phoneText := ""
	if p.CompanyPhone != "" {
		phoneText = "Tel: " + html.EscapeString(p.CompanyPhone)
	}
	emailText := ""
	if p.CompanyEmail != "" {
		emailText = "E-mail: " + html.EscapeString(p.CompanyEmail)
	}
	sep := ""
	if phoneText != "" && emailText != "" {
		sep = " | "
	}
	contactText := phoneText + sep + emailText

	logoBlock := ""
	if logoDataURI != "" {
		logoBlock = fmt.Sprintf(`
        <div style="width: 25mm; height: 10mm; display: flex; align-items: center; justify-content: flex-end; margin: 0; padding: 0;">
          <img src="%s" style="max-width: 25mm; max-height: 10mm; object-fit: contain;" />
        </div>`, logoDataURI)
	}

	generatedAt := time.Now().Format("1/2/2006, 3:04:05 PM")

	return fmt.Sprintf(`
    <div style="width: 100%%; font-family: Arial, sans-serif; padding: 0 12mm; box-sizing: border-box; position: relative; margin: 0; line-height: 1.2;">
      <div style="display: flex; justify-content: space-between; align-items: flex-end; margin-bottom: 1mm; margin-top: 0;">
        <div style="flex: 1;">
          <div style="font-size: 8px; color: #333333; margin-bottom: 0; margin-top: 0; line-height: 1.2;">
            %s%s
          </div>
          <div style="font-size: 7px; color: #333333; margin: 0; line-height: 1.2;">
            %s
          </div>
        </div>%s
      </div>

      <div style="display: flex; justify-content: space-between; align-items: center; border-top: 1px solid #e0e0e0; padding-top: 1mm; margin-bottom: 0; margin-top: 1mm;">
        <div style="font-size: 6px; color: #808080; margin: 0; line-height: 1;">
          %s
        </div>
        <div style="font-size: 6px; color: #808080; margin: 0; line-height: 1;">
          Page <span class="pageNumber"></span> of <span class="totalPages"></span>
        </div>
      </div>

      <div style="text-align: center; font-size: 6px; color: #999999; margin: 0; padding-top: 0.5mm; line-height: 1;">
        This is a system-generated report. Generated on %s
      </div>
    </div>`,
		html.EscapeString(p.CompanyName), addressText, contactText, logoBlock,
		html.EscapeString(verificationCode), generatedAt)
}
