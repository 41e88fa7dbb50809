package templates

import (
	"strings"
	"testing"
)

func sampleSalarySheet() SalarySheetData {
	return SalarySheetData{
		Period:    "2026 August",
		SheetType: "Monthly",
		SheetName: "August Payroll",
		Employees: []SalarySheetEmployee{
			{
				EmployeeID:        "EMP-001",
				ProjectDepartment: "Highway Phase 2",
				EmployeeName:      "K. Perera",
				JobTitle:          "Site Engineer",
				BasicSalary:       185000,
				GrossSalary:       203500,
				NetSalary:         171300.50,
				Deductions:        SalarySheetDeductions{EPFEmployee: 14800, EPFEmployer: 22200, ETFEmployer: 5550, Advance: 15000},
			},
			{
				EmployeeID:        "EMP-002",
				ProjectDepartment: "Head Office",
				EmployeeName:      "S. Silva",
				JobTitle:          "Accountant",
				BasicSalary:       150000,
				GrossSalary:       160000,
				NetSalary:         148000,
				Deductions:        SalarySheetDeductions{EPFEmployee: 12000, EPFEmployer: 18000, ETFEmployer: 4500},
			},
			{
				EmployeeID:        "EMP-003",
				ProjectDepartment: "Highway Phase 2",
				EmployeeName:      "N. Fernando",
				JobTitle:          "Foreman",
				BasicSalary:       95000,
				GrossSalary:       101000,
				NetSalary:         93400,
				Deductions:        SalarySheetDeductions{EPFEmployee: 7600, EPFEmployer: 11400, ETFEmployer: 2850},
			},
		},
		Company: Company{CompanyName: "Acme Builders"},
	}
}

func TestSalarySheet(t *testing.T) {
	html, err := SalarySheet(sampleSalarySheet())
	if err != nil {
		t.Fatalf("SalarySheet: %v", err)
	}
	for _, want := range []string{
		"Payroll Report",
		"Period: 2026 August | Type: Monthly | Sheet: August Payroll | Total Employees: 3",
		"EMP-001", "K. Perera", "Site Engineer",
		"EPF(8%)", "EPF(12%)", "ETF(3%)",
		"TOTAL",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("salary sheet missing %q", want)
		}
	}
}

func TestSalarySheet_ComputedTotals(t *testing.T) {
	d := sampleSalarySheet()
	html, err := SalarySheet(d)
	if err != nil {
		t.Fatalf("SalarySheet: %v", err)
	}
	// 185000 + 150000 + 95000
	if !strings.Contains(html, "430000.00") {
		t.Error("salary sheet missing computed basic total")
	}
	// 171300.50 + 148000 + 93400
	if !strings.Contains(html, "412700.50") {
		t.Error("salary sheet missing computed net total")
	}
}

func TestSalarySheet_ExplicitTotalsWin(t *testing.T) {
	d := sampleSalarySheet()
	d.Totals = &SalarySheetTotals{TotalNetSalary: 999999}
	html, err := SalarySheet(d)
	if err != nil {
		t.Fatalf("SalarySheet: %v", err)
	}
	if !strings.Contains(html, "999999.00") {
		t.Error("payload totals were recomputed instead of used")
	}
	if strings.Contains(html, "412700.50") {
		t.Error("computed net total shown despite explicit totals")
	}
}

func TestSalarySheet_MissingFieldsShowNA(t *testing.T) {
	d := SalarySheetData{Employees: []SalarySheetEmployee{{BasicSalary: 1000}}}
	html, err := SalarySheet(d)
	if err != nil {
		t.Fatalf("SalarySheet: %v", err)
	}
	if !strings.Contains(html, "N/A") {
		t.Error("missing employee fields not shown as N/A")
	}
}

func TestSalarySheetSummary_GroupsByProject(t *testing.T) {
	html, err := SalarySheetSummary(sampleSalarySheet())
	if err != nil {
		t.Fatalf("SalarySheetSummary: %v", err)
	}

	for _, want := range []string{
		"Acme Builders",
		"Salary Sheet Summary - 2026 August",
		"Highway Phase 2",
		"Head Office",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	// Groups keep first-seen order: Highway before Head Office, and the
	// two Highway employees stay under one header.
	highway := strings.Index(html, "Highway Phase 2")
	office := strings.Index(html, "Head Office")
	if highway > office {
		t.Error("group order does not follow first appearance")
	}
	if strings.Count(html, `<td colspan="13">Highway Phase 2</td>`) != 1 {
		t.Error("expected exactly one Highway Phase 2 group header")
	}
}

func TestSalarySheetSummary_TotalsRow(t *testing.T) {
	html, err := SalarySheetSummary(sampleSalarySheet())
	if err != nil {
		t.Fatalf("SalarySheetSummary: %v", err)
	}
	if !strings.Contains(html, "412700.50") {
		t.Error("summary missing grand net total")
	}
	if !strings.Contains(html, "Total Employees") {
		t.Error("summary missing employee count line")
	}
}
