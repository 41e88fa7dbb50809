package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// LabelValue is a single labelled amount row inside a payslip section.
type LabelValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PayslipData is the payload for the "payslip" document type.
//
// HeaderRows and EarningsRows, when present, replace the fixed
// counts/earnings layout with job-role specific rows; the fixed fields
// below are used otherwise.
type PayslipData struct {
	EmployeeName         string `json:"employeeName"`
	JobTitle             string `json:"jobTitle"`
	EmployeeCode         string `json:"employeeCode"`
	BankName             string `json:"bankName"`
	BranchName           string `json:"branchName"`
	AccountNo            string `json:"accountNo"`
	FormattedPaymentDate string `json:"formattedPaymentDate"`
	ProjectName          string `json:"projectName"`
	DepartmentName       string `json:"departmentName"`
	PeriodStr            string `json:"periodStr"`

	WorkingDays        float64 `json:"workingdays"`
	NumberOfRC         float64 `json:"numberofRC"`
	NumberOfDC         float64 `json:"numberofDC"`
	BasicSalary        float64 `json:"basicSalary"`
	BikeFuelValue      float64 `json:"bikeFuelValue"`
	MobileDataValue    float64 `json:"mobilDataValue"`
	MobilePhoneValue   float64 `json:"mobilePhoneValue"`
	ValueOf80          float64 `json:"valueof80"`
	ValueOfVisit       float64 `json:"valueofVisit"`
	ValueOfRC          float64 `json:"valueofRC"`
	ValueOf100         float64 `json:"valueof100"`
	AdjustmentNetValue float64 `json:"adjustmentNetValue"`
	GrossSalary        float64 `json:"grossSalary"`
	NetSalary          float64 `json:"netSalary"`

	EPFEmployee       float64 `json:"epfEmployee"`
	EPFEmployer       float64 `json:"epfEmployer"`
	ETFEmployer       float64 `json:"etfEmployer"`
	TotalDeduction    float64 `json:"totalDeduction"`
	ContributionTotal float64 `json:"contributionTotal"`

	DeductionRows []LabelValue `json:"deductionRows"`
	HeaderRows    []LabelValue `json:"headerRows"`
	EarningsRows  []LabelValue `json:"earningsRows"`

	Company      Company `json:"company"`
	LogoBase64   string  `json:"logoBase64"`
	SpecificCode string  `json:"specificCode"`
}

// payslipCountCell is one bold cell in the counts row at the top of the
// earnings column.
type payslipCountCell struct {
	Text    string
	Colspan int
}

// payslipRow is one merged row of the two-column earnings/deductions
// grid. Exactly one of Counts/Label/Empty describes each side.
type payslipRow struct {
	LeftCounts []payslipCountCell
	LeftLabel  string
	LeftValue  string
	LeftBold   bool
	LeftEmpty  bool

	RightHeader string
	RightLabel  string
	RightValue  string
	RightBold   bool
	RightEmpty  bool
}

type payslipView struct {
	PayslipData
	Location string
	Rows     []payslipRow
	// Logo carries the data URI as template.URL: html/template would
	// otherwise reject the data: scheme in the src attribute.
	Logo template.URL
}

// Payslip renders a single-employee payslip: employee and bank details,
// the earnings/deductions grid, employer contributions, and an inline
// footer with company identity and the slip's specific code.
func Payslip(data PayslipData) (string, error) {
	view := payslipView{
		PayslipData: data,
		Location:    firstNonEmpty(data.ProjectName, data.DepartmentName),
		Rows:        buildPayslipRows(data),
		Logo:        template.URL(data.LogoBase64),
	}
	var buf bytes.Buffer
	if err := payslipTpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildPayslipRows(d PayslipData) []payslipRow {
	type cell struct {
		label, value string
		bold         bool
	}

	var left []payslipRow

	// Counts row: job-role header rows when supplied, the fixed
	// Days/RC/DC trio otherwise.
	if len(d.HeaderRows) > 0 {
		var cells []payslipCountCell
		for i, h := range d.HeaderRows {
			colspan := 1
			if i == len(d.HeaderRows)-1 && 3-i > 1 {
				colspan = 3 - i
			}
			cells = append(cells, payslipCountCell{
				Text:    fmt.Sprintf("%s: %.0f", h.Label, h.Value),
				Colspan: colspan,
			})
		}
		left = append(left, payslipRow{LeftCounts: cells})
	} else {
		left = append(left, payslipRow{LeftCounts: []payslipCountCell{
			{Text: fmt.Sprintf("Days: %.0f", d.WorkingDays), Colspan: 1},
			{Text: fmt.Sprintf("RC: %.0f", d.NumberOfRC), Colspan: 1},
			{Text: fmt.Sprintf("DC: %.0f", d.NumberOfDC), Colspan: 1},
		}})
	}

	var earnings []cell
	if len(d.EarningsRows) > 0 {
		for _, e := range d.EarningsRows {
			earnings = append(earnings, cell{e.Label, money(e.Value), false})
		}
	} else {
		earnings = []cell{
			{"Basic", money(d.BasicSalary), true},
			{"Bike & Fuel", money(d.BikeFuelValue), false},
			{"Mobile Data", money(d.MobileDataValue), false},
			{"Mobile Phone", money(d.MobilePhoneValue), false},
			{"80%", money(d.ValueOf80), false},
			{"Visit", money(d.ValueOfVisit), false},
			{"RC", money(d.ValueOfRC), false},
			{"100%", money(d.ValueOf100), false},
			{"Adjustment", money(d.AdjustmentNetValue), false},
		}
	}
	for _, e := range earnings {
		left = append(left, payslipRow{LeftLabel: e.label, LeftValue: e.value, LeftBold: e.bold})
	}

	// Right side: four deduction slots (absent ones render blank), the
	// deduction total, then the employer contribution block.
	var right []payslipRow
	for i := 0; i < 4; i++ {
		var r payslipRow
		if i < len(d.DeductionRows) {
			r.RightLabel = d.DeductionRows[i].Label
			if d.DeductionRows[i].Value != 0 {
				r.RightValue = money(d.DeductionRows[i].Value)
			}
		}
		right = append(right, r)
	}
	right = append(right,
		payslipRow{RightLabel: "TOTAL DEDUCTION", RightValue: money(d.TotalDeduction), RightBold: true},
		payslipRow{RightHeader: "Employer Contribution"},
		payslipRow{RightLabel: "EPF 12%", RightValue: money(d.EPFEmployer)},
		payslipRow{RightLabel: "ETF 3%", RightValue: money(d.ETFEmployer)},
		payslipRow{RightLabel: "Total Contribution", RightValue: money(d.ContributionTotal), RightBold: true},
	)

	// Merge: pad the shorter side with empty cells.
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	rows := make([]payslipRow, n)
	for i := range rows {
		if i < len(left) {
			rows[i].LeftCounts = left[i].LeftCounts
			rows[i].LeftLabel = left[i].LeftLabel
			rows[i].LeftValue = left[i].LeftValue
			rows[i].LeftBold = left[i].LeftBold
		} else {
			rows[i].LeftEmpty = true
		}
		if i < len(right) {
			rows[i].RightHeader = right[i].RightHeader
			rows[i].RightLabel = right[i].RightLabel
			rows[i].RightValue = right[i].RightValue
			rows[i].RightBold = right[i].RightBold
		} else {
			rows[i].RightEmpty = true
		}
	}
	return rows
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

var payslipTpl = mustParse("payslip", `<!DOCTYPE html>
<html>
<head>
  <title>Payslip - {{.EmployeeName}}</title>
  <style>
    @page {
      margin: 10mm;
    }
    body {
      font-family: Arial, sans-serif;
      font-size: 12px;
      line-height: 1.35;
      margin: 0;
      padding: 10px 10px 40px 10px;
      -webkit-print-color-adjust: exact;
      print-color-adjust: exact;
    }
    .payslip-container {
      width: 100%;
      max-width: 900px;
      margin: 0 auto;
    }
    table {
      width: 100%;
      border-collapse: collapse;
    }
    td {
      padding: 1px 3px;
      vertical-align: middle;
      line-height: 1.2;
    }
    .header-title {
      font-size: 14px;
      font-weight: bold;
      text-align: center;
      padding: 5px 0;
    }
    .info-label {
      font-weight: bold;
      width: 15%;
    }
    .info-value {
      width: 35%;
      padding: 1px 2px;
    }
    .info-right-label {
      font-weight: bold;
      width: 15%;
      text-align: right;
      padding-right: 10px;
    }
    .info-right-value {
      width: 35%;
      padding: 1px 2px;
    }
    .section-header {
      font-weight: bold;
      text-align: center;
    }
    .text-right { text-align: right; }
    .text-center { text-align: center; }
    .bold { font-weight: bold; }
    .col-label { width: 18%; }
    .col-value { width: 8%; text-align: right; font-family: monospace; }
    .counts {
      font-weight: bold;
      font-family: monospace;
      font-size: 12px;
    }
    .summary-row {
      font-weight: bold;
    }
    .footer {
      text-align: center;
      margin-top: 15px;
      font-size: 10px;
    }
  </style>
</head>
<body>
  <div class="payslip-container">

    <table style="margin-bottom: 10px;">
      <tr>
        <td colspan="6" class="header-title">{{.Company.CompanyName}}</td>
      </tr>
    </table>

    <table style="margin-bottom: 15px;">
      <tr>
        <td class="info-label">Name</td>
        <td class="info-value" colspan="2">{{.EmployeeName}}</td>
        <td style="width: 5%;"></td>
        <td class="info-right-label">Pay Slip</td>
        <td class="info-right-value">{{.PeriodStr}}</td>
      </tr>
      <tr>
        <td class="info-label">Occupation</td>
        <td class="info-value" colspan="2">{{.JobTitle}}</td>
        <td style="width: 5%;"></td>
        <td class="info-right-label">E.P.F No</td>
        <td class="info-right-value">{{.EmployeeCode}}</td>
      </tr>
      <tr>
        <td class="info-label">Bank</td>
        <td class="info-value" colspan="2">{{.BankName}}</td>
        <td style="width: 5%;"></td>
        <td class="info-right-label">Branch</td>
        <td class="info-right-value">{{.BranchName}}</td>
      </tr>
      <tr>
        <td class="info-label">Account No</td>
        <td class="info-value" colspan="2">{{.AccountNo}}</td>
        <td style="width: 5%;"></td>
        <td class="info-right-label">Paid On</td>
        <td class="info-right-value">{{.FormattedPaymentDate}}</td>
      </tr>
      <tr>
        <td class="info-label">Contract No</td>
        <td class="info-value" colspan="2">{{.ProjectName}}</td>
        <td style="width: 5%;"></td>
        <td class="info-right-label">Location</td>
        <td class="info-right-value">{{.Location}}</td>
      </tr>
    </table>

    <table>
      <tr class="section-header">
        <td colspan="3" class="text-center" style="width: 48.5%;">EARNINGS</td>
        <td style="width: 3%;"></td>
        <td colspan="3" class="text-center" style="width: 48.5%;">DEDUCTIONS</td>
      </tr>
      {{range .Rows}}
      <tr{{if .RightHeader}} class="section-header"{{end}}>
        {{- if .LeftCounts}}
        {{- range .LeftCounts}}
        <td class="col-label counts"{{if gt .Colspan 1}} colspan="{{.Colspan}}"{{end}}>{{.Text}}</td>
        {{- end}}
        {{- else if .LeftEmpty}}
        <td colspan="3" style="width: 48.5%;"></td>
        {{- else}}
        <td class="col-label" style="width: 30%;">{{.LeftLabel}}</td>
        <td class="col-value{{if .LeftBold}} bold{{end}}" colspan="2" style="width: 18.5%;">{{.LeftValue}}</td>
        {{- end}}
        <td style="width: 3%;"></td>
        {{- if .RightHeader}}
        <td colspan="3" class="text-center bold" style="padding: 5px 0; width: 48.5%;">{{.RightHeader}}</td>
        {{- else if .RightEmpty}}
        <td colspan="3" style="width: 48.5%;"></td>
        {{- else}}
        <td class="col-label{{if .RightBold}} bold{{end}}" style="width: 30%;">{{.RightLabel}}</td>
        <td class="col-value{{if .RightBold}} bold{{end}}" colspan="2" style="width: 18.5%;">{{.RightValue}}</td>
        {{- end}}
      </tr>
      {{end}}
      <tr class="summary-row">
        <td colspan="2" class="text-center" style="width: 40%;">TOTAL EARNINGS</td>
        <td class="col-value" style="font-size: 12px; width: 8.5%;">{{money .GrossSalary}}</td>
        <td style="width: 3%;"></td>
        <td colspan="2" class="text-center" style="width: 40%;">NET PAY</td>
        <td class="col-value bold" style="font-size: 13px; width: 8.5%;">{{money .NetSalary}}</td>
      </tr>
    </table>

    <p style="margin: 5px 0; text-align: center; font-weight: bold; font-size: 14px;">Thank You for Being a Part with Us</p>

    <div class="footer" style="display: flex; justify-content: space-between; margin-top: 0; padding-top: 5px;">
      <div style="flex: 1;">
        <p style="margin: 5px 0; text-align: left;">{{.Company.CompanyName}}{{.Company.AddressLine}}</p>
        <p style="margin: 5px 0; text-align: left;">{{.Company.ContactLine}}</p>
        <p style="margin: 5px 0; text-align: left; font-size: 9px; color: #666;">{{.SpecificCode}}</p>
      </div>
      {{if .Logo}}<div style="flex: 0;">
        <img src="{{.Logo}}" alt="Company Logo" style="max-width: 100px; max-height: 100px;">
      </div>{{end}}
    </div>

  </div>
</body>
</html>
`)
