package pdfgen

import (
	"strings"
	"testing"
)

func fullProfile() CompanyProfile {
	return CompanyProfile{
		CompanyName: "Acme Builders",
		Address: CompanyAddress{
			Street:  "12 Station Rd",
			City:    "Colombo",
			Country: "Sri Lanka",
		},
		CompanyPhone: "+94 11 234 5678",
		CompanyEmail: "payroll@acme.example",
	}
}

func TestComposeFooter_FullProfile(t *testing.T) {
	footer := ComposeFooter(fullProfile(), "data:image/png;base64,AAAA", "PAY-20260831-ABCD1234")

	for _, want := range []string{
		"Acme Builders | 12 Station Rd, Colombo, Sri Lanka",
		"Tel: +94 11 234 5678 | E-mail: payroll@acme.example",
		"PAY-20260831-ABCD1234",
		`<span class="pageNumber"></span>`,
		`<span class="totalPages"></span>`,
		`src="data:image/png;base64,AAAA"`,
		"This is a system-generated report.",
	} {
		if !strings.Contains(footer, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestComposeFooter_EmptyProfile(t *testing.T) {
	footer := ComposeFooter(CompanyProfile{}, "", "")

	// No address separator and no logo box when nothing is set.
	if strings.Contains(footer, " | ") {
		t.Error("footer has a separator with no address or contact parts")
	}
	if strings.Contains(footer, "<img") {
		t.Error("footer has a logo image without a logo")
	}
	if !strings.Contains(footer, `<span class="pageNumber"></span>`) {
		t.Error("footer missing page number placeholder")
	}
}

func TestComposeFooter_PhoneOnly(t *testing.T) {
	p := CompanyProfile{CompanyPhone: "555-0100"}
	footer := ComposeFooter(p, "", "")

	if !strings.Contains(footer, "Tel: 555-0100") {
		t.Error("footer missing phone")
	}
	// The contact separator appears only when both phone and email exist.
	if strings.Contains(footer, "Tel: 555-0100 |") {
		t.Error("footer has trailing contact separator with phone only")
	}
}

func TestComposeFooter_EscapesUserFields(t *testing.T) {
	p := CompanyProfile{CompanyName: `<script>alert("x")</script>`}
	footer := ComposeFooter(p, "", "")
	if strings.Contains(footer, "<script>") {
		t.Error("company name not escaped")
	}
}
