package templates

import (
	"strings"
	"testing"
)

func sampleAdvance() AdvancePayrollData {
	return AdvancePayrollData{
		Company: Company{CompanyName: "Acme Builders"},
		ViewingRecord: map[string]any{
			"periodYear":  float64(2026),
			"periodMonth": float64(8),
			"advanceDate": "2026-08-15",
		},
		EmployeeDetails: []map[string]any{
			{"displayId": "EMP-001", "employeeName": "K. Perera", "jobRole": "Site Engineer", "advanceAmount": float64(15000)},
			{"displayId": "EMP-003", "employeeName": "N. Fernando", "jobRole": "Foreman", "advanceAmount": float64(8500.25)},
		},
		Months:       []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		TotalAdvance: 23500.25,
	}
}

func TestAdvancePayroll(t *testing.T) {
	html, err := AdvancePayroll(sampleAdvance())
	if err != nil {
		t.Fatalf("AdvancePayroll: %v", err)
	}
	for _, want := range []string{
		"Acme Builders",
		"Salary Advance Payroll Report",
		"2026 August",
		"08/15/2026",
		"EMP-001", "K. Perera",
		"15,000.00", "8,500.25",
		"TOTAL", "23,500.25",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("advance report missing %q", want)
		}
	}
}

func TestAdvancePayroll_CustomColumns(t *testing.T) {
	d := sampleAdvance()
	d.Title = "Recovery Report"
	d.CustomTotalLabel = "GRAND TOTAL"
	d.Columns = []ReportColumn{
		{Label: "ID", Key: "displayId"},
		{Label: "RECOVERED", Key: "advanceAmount", Align: "right", Format: "grouped"},
	}

	html, err := AdvancePayroll(d)
	if err != nil {
		t.Fatalf("AdvancePayroll: %v", err)
	}
	for _, want := range []string{"Recovery Report", "RECOVERED", "GRAND TOTAL"} {
		if !strings.Contains(html, want) {
			t.Errorf("custom report missing %q", want)
		}
	}
	if strings.Contains(html, "JOB ROLE") {
		t.Error("default columns used despite custom configuration")
	}
}

func TestAdvancePayroll_MissingValuesShowNA(t *testing.T) {
	d := sampleAdvance()
	d.EmployeeDetails = []map[string]any{{"displayId": "EMP-009"}}
	html, err := AdvancePayroll(d)
	if err != nil {
		t.Fatalf("AdvancePayroll: %v", err)
	}
	if !strings.Contains(html, "N/A") {
		t.Error("missing cell values not shown as N/A")
	}
}

func TestAdvancePayroll_TotalFallsBackToTotalAmount(t *testing.T) {
	d := sampleAdvance()
	d.TotalAdvance = 0
	d.TotalAmount = 777
	html, err := AdvancePayroll(d)
	if err != nil {
		t.Fatalf("AdvancePayroll: %v", err)
	}
	if !strings.Contains(html, "777.00") {
		t.Error("TotalAmount fallback not used")
	}
}

func TestAdvancePayroll_OutOfRangeMonth(t *testing.T) {
	d := sampleAdvance()
	d.ViewingRecord["periodMonth"] = float64(0)
	html, err := AdvancePayroll(d)
	if err != nil {
		t.Fatalf("AdvancePayroll: %v", err)
	}
	if !strings.Contains(html, "2026") {
		t.Error("year missing from period line")
	}
}

func TestCustomAdvanceReport(t *testing.T) {
	d := CustomAdvanceReportData{
		Company:   Company{CompanyName: "Acme Builders"},
		MonthName: "August",
		Year:      2026,
		EmployeeDetails: []CustomAdvanceEmployee{
			{
				EmployeeID:   "EMP-001",
				EmployeeName: "K. Perera",
				Advances: []CustomAdvance{
					{Amount: 10000, Date: "2026-08-05"},
					{Amount: 5000, Date: "2026-08-19"},
				},
				TotalAdvance: 15000,
			},
		},
		TotalAmount: 15000,
	}

	html, err := CustomAdvanceReport(d)
	if err != nil {
		t.Fatalf("CustomAdvanceReport: %v", err)
	}
	for _, want := range []string{
		"Acme Builders",
		"Salary Advance Report",
		"August 2026",
		"K. Perera",
		"10,000.00", "08/05/2026",
		"5,000.00", "08/19/2026",
		"15,000.00",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("custom advance report missing %q", want)
		}
	}
}

func TestCustomAdvanceReport_DefaultCompanyName(t *testing.T) {
	html, err := CustomAdvanceReport(CustomAdvanceReportData{})
	if err != nil {
		t.Fatalf("CustomAdvanceReport: %v", err)
	}
	if !strings.Contains(html, "Company") {
		t.Error("empty company name did not fall back to placeholder")
	}
}
