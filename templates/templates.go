// Package templates holds the HTML builders for every payroll document
// type. Each builder is a pure function from a typed data struct to a
// complete self-contained HTML document with embedded CSS; the only
// impurity is reading the wall clock for "generated on" stamps.
package templates

import (
	"html/template"
	"strconv"
	"strings"
	"time"
)

// Company is the company identity block as it appears inside document
// payloads. All fields are optional.
type Company struct {
	CompanyName  string  `json:"companyName"`
	Address      Address `json:"address"`
	CompanyPhone string  `json:"companyPhone"`
	CompanyEmail string  `json:"companyEmail"`
	CompanyLogo  string  `json:"companyLogo"`
}

// Address holds the printable address parts of a company.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// AddressLine joins the non-empty address parts with ", " and prefixes
// the result with " | ". Empty when no part is set.
func (c Company) AddressLine() string {
	var parts []string
	for _, s := range []string{c.Address.Street, c.Address.City, c.Address.State, c.Address.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " | " + strings.Join(parts, ", ")
}

// ContactLine renders "Tel: x | E-mail: y" with the separator only when
// both parts are present.
func (c Company) ContactLine() string {
	phone := ""
	if c.CompanyPhone != "" {
		phone = "Tel: " + c.CompanyPhone
	}
	email := ""
	if c.CompanyEmail != "" {
		email = "E-mail: " + c.CompanyEmail
	}
	if phone != "" && email != "" {
		return phone + " | " + email
	}
	return phone + email
}

var funcs = template.FuncMap{
	"money":   money,
	"grouped": grouped,
	"orNA":    orNA,
	"orDash":  orDash,
	"count":   func(v int) string { return strconv.Itoa(v) },
	"whole":   func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) },
	"dateUS":  dateUS,
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

// money formats an amount with two decimal places and no grouping.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// grouped formats an amount with two decimal places and thousands
// separators: 1234567.891 -> "1,234,567.89".
func grouped(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]
	if len(whole) > 3 {
		var b strings.Builder
		lead := len(whole) % 3
		if lead > 0 {
			b.WriteString(whole[:lead])
		}
		for i := lead; i < len(whole); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(whole[i : i+3])
		}
		whole = b.String()
	}
	if neg {
		return "-" + whole + frac
	}
	return whole + frac
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// dateUS reformats a payload date (RFC 3339 or "2006-01-02") as
// MM/DD/YYYY. Unparseable values pass through unchanged rather than
// failing the document.
func dateUS(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return s
	}
	return t.Format("01/02/2006")
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// monthName returns the English month name for a 1-based month number,
// empty for out-of-range values.
func monthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return time.Month(m).String()
}
