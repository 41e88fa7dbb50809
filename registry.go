package pdfgen

import (
	"encoding/json"
	"fmt"

	"github.com/erappo-hq/pdf-service/templates"
)

// TemplateFunc renders a document body from its raw JSON payload.
type TemplateFunc func(json.RawMessage) (string, error)

// Registry is the fixed mapping from document-type names to their HTML
// builders. The set is closed: it is built once at construction and never
// grows at runtime.
type Registry struct {
	funcs map[string]TemplateFunc
	names []string
}

// NewRegistry builds the registry with all ten supported document types.
func NewRegistry() *Registry {
	r := &Registry{funcs: map[string]TemplateFunc{
		"payslip":               typed(templates.Payslip),
		"salary-sheet":          typed(templates.SalarySheet),
		"bankslip":              typed(templates.Bankslip),
		"advance-payroll":       typed(templates.AdvancePayroll),
		"custom-advance-report": typed(templates.CustomAdvanceReport),
		"attendance-report":     typed(templates.AttendanceReport),
		"deposit-tools":         typed(templates.DepositTools),
		"losses-recovery":       typed(templates.LossesRecovery),
		"other-deductions":      typed(templates.OtherDeductions),
		"salary-sheet-summary":  typed(templates.SalarySheetSummary),
	}}
	// Presentation order, kept stable for the service-metadata endpoint
	// and not-found responses.
	r.names = []string{
		"payslip",
		"salary-sheet",
		"bankslip",
		"advance-payroll",
		"custom-advance-report",
		"attendance-report",
		"deposit-tools",
		"losses-recovery",
		"other-deductions",
		"salary-sheet-summary",
	}
	return r
}

// typed adapts a typed template function to [TemplateFunc] by decoding
// the raw payload into the template's data struct first.
func typed[T any](fn func(T) (string, error)) TemplateFunc {
	return func(raw json.RawMessage) (string, error) {
		var data T
		if err := json.Unmarshal(raw, &data); err != nil {
			return "", fmt.Errorf("pdfgen: decoding payload: %w", err)
		}
		return fn(data)
	}
}

// Has reports whether name is a registered document type.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns the registered document-type names in presentation order.
// The returned slice is a copy.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Render produces the body HTML for a document. Unknown names return a
// [*TemplateNotFoundError]; no rendering work happens in that case.
func (r *Registry) Render(name string, payload json.RawMessage) (string, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return "", &TemplateNotFoundError{Name: name, Available: r.Names()}
	}
	return fn(payload)
}
