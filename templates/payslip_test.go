package templates

import (
	"strings"
	"testing"
)

func samplePayslip() PayslipData {
	return PayslipData{
		EmployeeName:         "K. Perera",
		JobTitle:             "Site Engineer",
		EmployeeCode:         "EMP-042",
		BankName:             "People's Bank",
		BranchName:           "Kandy",
		AccountNo:            "100200300",
		FormattedPaymentDate: "08/31/2026",
		ProjectName:          "Highway Phase 2",
		PeriodStr:            "2026 August",
		WorkingDays:          22,
		NumberOfRC:           3,
		NumberOfDC:           1,
		BasicSalary:          185000,
		GrossSalary:          203500,
		NetSalary:            171300.50,
		EPFEmployee:          14800,
		EPFEmployer:          22200,
		ETFEmployer:          5550,
		TotalDeduction:       32199.50,
		ContributionTotal:    27750,
		DeductionRows: []LabelValue{
			{Label: "EPF 8%", Value: 14800},
			{Label: "Advance", Value: 15000},
			{Label: "No Pay", Value: 0},
		},
		Company: Company{CompanyName: "Acme Builders"},
	}
}

func TestPayslip(t *testing.T) {
	html, err := Payslip(samplePayslip())
	if err != nil {
		t.Fatalf("Payslip: %v", err)
	}

	for _, want := range []string{
		"K. Perera",
		"Site Engineer",
		"EMP-042",
		"Days: 22", "RC: 3", "DC: 1",
		"Basic", "185000.00",
		"TOTAL DEDUCTION", "32199.50",
		"Employer Contribution", "EPF 12%", "ETF 3%",
		"TOTAL EARNINGS", "203500.00",
		"NET PAY", "171300.50",
		"Thank You for Being a Part with Us",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("payslip missing %q", want)
		}
	}
}

func TestPayslipRows_ZeroDeductionValueStaysBlank(t *testing.T) {
	rows := buildPayslipRows(samplePayslip())

	var noPay *payslipRow
	for i := range rows {
		if rows[i].RightLabel == "No Pay" {
			noPay = &rows[i]
			break
		}
	}
	if noPay == nil {
		t.Fatal("No Pay deduction slot missing")
	}
	if noPay.RightValue != "" {
		t.Errorf("zero deduction rendered %q, want blank", noPay.RightValue)
	}
}

func TestPayslipRows_PadsShorterSide(t *testing.T) {
	// The right side always has 9 rows; with 2 custom earnings rows the
	// left side is shorter and must be padded with empty cells.
	d := samplePayslip()
	d.EarningsRows = []LabelValue{{Label: "A", Value: 1}, {Label: "B", Value: 2}}

	rows := buildPayslipRows(d)
	last := rows[len(rows)-1]
	if !last.LeftEmpty {
		t.Error("left side not padded")
	}
	if last.RightLabel != "Total Contribution" {
		t.Errorf("last right label = %q, want Total Contribution", last.RightLabel)
	}
}

func TestPayslip_CustomHeaderAndEarningsRows(t *testing.T) {
	d := samplePayslip()
	d.HeaderRows = []LabelValue{
		{Label: "Shifts", Value: 26},
		{Label: "OT Hrs", Value: 14},
	}
	d.EarningsRows = []LabelValue{
		{Label: "Shift Pay", Value: 120000},
		{Label: "OT Pay", Value: 21000},
	}

	html, err := Payslip(d)
	if err != nil {
		t.Fatalf("Payslip: %v", err)
	}
	for _, want := range []string{"Shifts: 26", "OT Hrs: 14", "Shift Pay", "OT Pay"} {
		if !strings.Contains(html, want) {
			t.Errorf("payslip missing %q", want)
		}
	}
	// Custom rows replace the fixed layout.
	for _, absent := range []string{"Days: 22", "Bike &amp; Fuel"} {
		if strings.Contains(html, absent) {
			t.Errorf("payslip still shows fixed row %q", absent)
		}
	}
}

func TestPayslip_LocationFallsBackToDepartment(t *testing.T) {
	d := samplePayslip()
	d.ProjectName = ""
	d.DepartmentName = "Head Office"

	html, err := Payslip(d)
	if err != nil {
		t.Fatalf("Payslip: %v", err)
	}
	if !strings.Contains(html, "Head Office") {
		t.Error("payslip missing department fallback location")
	}
}

func TestPayslip_LogoDataURISurvivesEscaping(t *testing.T) {
	d := samplePayslip()
	d.LogoBase64 = "data:image/png;base64,iVBORw0KGgo="

	html, err := Payslip(d)
	if err != nil {
		t.Fatalf("Payslip: %v", err)
	}
	if !strings.Contains(html, `src="data:image/png;base64,iVBORw0KGgo="`) {
		t.Error("logo data URI was mangled by HTML escaping")
	}
	if strings.Contains(html, "ZgotmplZ") {
		t.Error("html/template rejected the data URI")
	}
}

func TestPayslip_NoLogoNoImage(t *testing.T) {
	html, err := Payslip(samplePayslip())
	if err != nil {
		t.Fatalf("Payslip: %v", err)
	}
	if strings.Contains(html, "<img") {
		t.Error("payslip has an image without a logo")
	}
}
