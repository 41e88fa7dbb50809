package templates

import (
	"bytes"
	"fmt"
	"strconv"
)

// ReportColumn configures one column of a tabular payroll report. Align
// is "left", "right" or "center" (empty means left). Format "grouped"
// renders numeric cell values with thousands separators.
type ReportColumn struct {
	Label  string `json:"label"`
	Key    string `json:"key"`
	Align  string `json:"align"`
	Format string `json:"format"`
}

// AdvancePayrollData is the payload for the "advance-payroll" document
// type. ViewingRecord and EmployeeDetails are schemaless because the
// report columns are configurable per request.
type AdvancePayrollData struct {
	Company          Company          `json:"company"`
	ViewingRecord    map[string]any   `json:"viewingRecord"`
	EmployeeDetails  []map[string]any `json:"employeeDetails"`
	Months           []string         `json:"months"`
	Title            string           `json:"title"`
	ReportType       string           `json:"reportType"`
	TotalAmount      float64          `json:"totalAmount"`
	TotalAdvance     float64          `json:"totalAdvance"`
	Columns          []ReportColumn   `json:"columns"`
	CustomTotalLabel string           `json:"customTotalLabel"`
}

var defaultAdvanceColumns = []ReportColumn{
	{Label: "EMP ID", Key: "displayId"},
	{Label: "NAME", Key: "employeeName"},
	{Label: "JOB ROLE", Key: "jobRole"},
	{Label: "ADVANCE", Key: "advanceAmount", Align: "right", Format: "grouped"},
}

type reportCell struct {
	Text  string
	Align string
}

type reportColumnView struct {
	Label string
	Align string
}

type advanceReportView struct {
	CompanyName    string
	Title          string
	Period         string
	Date           string
	TotalEmployees int
	TotalLabel     string
	Total          string
	Columns        []reportColumnView
	Rows           [][]reportCell
	FootColspan    int
}

// AdvancePayroll renders the per-period advance (or generic deduction)
// listing with configurable columns and a totals footer.
func AdvancePayroll(data AdvancePayrollData) (string, error) {
	columns := data.Columns
	if len(columns) == 0 {
		columns = defaultAdvanceColumns
	}

	total := data.TotalAdvance
	if total == 0 {
		total = data.TotalAmount
	}

	totalLabel := data.CustomTotalLabel
	if totalLabel == "" {
		totalLabel = "TOTAL"
	}

	title := data.Title
	if title == "" {
		title = "Salary Advance Payroll Report"
	}

	view := advanceReportView{
		CompanyName:    data.Company.CompanyName,
		Title:          title,
		Period:         recordPeriod(data.ViewingRecord, data.Months),
		Date:           recordDate(data.ViewingRecord),
		TotalEmployees: len(data.EmployeeDetails),
		TotalLabel:     totalLabel,
		Total:          grouped(total),
		Columns:        columnViews(columns),
		Rows:           reportRows(columns, data.EmployeeDetails),
		FootColspan:    len(columns) - 1,
	}
	var buf bytes.Buffer
	if err := advancePayrollTpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func columnViews(columns []ReportColumn) []reportColumnView {
	out := make([]reportColumnView, len(columns))
	for i, c := range columns {
		out[i] = reportColumnView{Label: c.Label, Align: cellAlign(c.Align)}
	}
	return out
}

func reportRows(columns []ReportColumn, details []map[string]any) [][]reportCell {
	rows := make([][]reportCell, len(details))
	for i, emp := range details {
		cells := make([]reportCell, len(columns))
		for j, c := range columns {
			cells[j] = reportCell{Text: cellText(emp[c.Key], c.Format), Align: cellAlign(c.Align)}
		}
		rows[i] = cells
	}
	return rows
}

func cellAlign(align string) string {
	switch align {
	case "right", "center":
		return align
	}
	return "left"
}

// cellText stringifies a schemaless cell value. Missing or empty values
// render as "N/A"; "grouped" columns treat them as zero instead.
func cellText(v any, format string) string {
	if format == "grouped" {
		n, _ := toFloat(v)
		return grouped(n)
	}
	switch t := v.(type) {
	case nil:
		return "N/A"
	case string:
		return orNA(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		n, err := strconv.ParseFloat(t, 64)
		return n, err == nil
	}
	return 0, false
}

// recordPeriod renders "<year> <month name>" from the record's
// periodYear/periodMonth, guarding the 1-based month against the
// supplied month-name list.
func recordPeriod(record map[string]any, months []string) string {
	year, _ := toFloat(record["periodYear"])
	month, _ := toFloat(record["periodMonth"])
	name := ""
	if m := int(month); m >= 1 && m <= len(months) {
		name = months[m-1]
	} else if m := int(month); m >= 1 && m <= 12 {
		name = monthName(m)
	}
	return fmt.Sprintf("%d %s", int(year), name)
}

// recordDate picks whichever date field the record carries. The field
// name varies with the report type.
func recordDate(record map[string]any) string {
	for _, key := range []string{"advanceDate", "recoveryDate", "depositDate", "deductionDate"} {
		if s, ok := record[key].(string); ok && s != "" {
			return dateUS(s)
		}
	}
	return ""
}

// CustomAdvance is one advance installment within a custom advance
// report row.
type CustomAdvance struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// CustomAdvanceEmployee groups an employee's advance installments.
type CustomAdvanceEmployee struct {
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Advances     []CustomAdvance `json:"advances"`
	TotalAdvance float64         `json:"totalAdvance"`
}

// CustomAdvanceReportData is the payload for the
// "custom-advance-report" document type.
type CustomAdvanceReportData struct {
	Company         Company                 `json:"company"`
	ReportTitle     string                  `json:"reportTitle"`
	Period          string                  `json:"period"`
	MonthName       string                  `json:"monthName"`
	Year            int                     `json:"year"`
	EmployeeDetails []CustomAdvanceEmployee `json:"employeeDetails"`
	TotalAmount     float64                 `json:"totalAmount"`
}

// CustomAdvanceReport renders the per-employee advance breakdown with
// each installment's amount and date listed inside the employee row.
func CustomAdvanceReport(data CustomAdvanceReportData) (string, error) {
	if data.Company.CompanyName == "" {
		data.Company.CompanyName = "Company"
	}
	var buf bytes.Buffer
	if err := customAdvanceTpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var advancePayrollTpl = mustParse("advance-payroll", `<html>
  <head>
    <style>
      * {
        margin: 0;
        padding: 0;
        box-sizing: border-box;
      }
      @page {
        size: A4;
        margin: 20mm 10mm 10mm 10mm;
      }
      html {
        height: 100%;
      }
      body {
        font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
        background-color: white;
        display: flex;
        flex-direction: column;
        min-height: 100%;
        padding-bottom: 40px;
      }
      .container {
        max-width: 100%;
        display: flex;
        flex-direction: column;
        flex-grow: 1;
      }
      .header {
        display: flex;
        justify-content: center;
        gap: 200px;
        margin-bottom: 20px;
        font-size: 14px;
        text-align: left;
      }
      .header-left, .header-right {
        line-height: 1.6;
      }
      .title {
        font-size: 14px;
        color: #333;
        margin-bottom: 15px;
        text-align: center;
        width: 100%;
      }
      .company-name {
        font-size: 18px;
        font-weight: bold;
        text-align: center;
        margin-bottom: 5px;
        width: 100%;
      }
      .label {
        display: inline-block;
        width: 120px;
        color: #666;
      }
      .period-value, .total-value {
        font-weight: bold;
        color: #333;
      }
      .date-value, .employees-value {
        color: #333;
      }
      table {
        width: 100%;
        border-collapse: collapse;
        margin-top: 10px;
      }
      thead {
        border-bottom: 1px solid #000;
      }
      th {
        padding: 8px 12px;
        font-weight: bold;
        font-size: 12px;
      }
      td {
        padding: 3px 12px;
        font-size: 11px;
      }
      tfoot tr {
        font-weight: bold;
        border-top: 1px solid #000;
      }
      tfoot td {
        padding: 8px 12px;
      }
      .text-right { text-align: right; }
      .text-center { text-align: center; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="company-name">{{.CompanyName}}</div>
      <div class="title">{{.Title}}</div>
      <div class="header">
        <div class="header-left">
          <div><span class="label">Period </span> <span class="period-value">: {{.Period}}</span></div>
          <div><span class="label">Date </span> <span class="date-value">: {{.Date}}</span></div>
        </div>
        <div class="header-right">
          <div><span class="label">Total Employees </span> <span class="employees-value">: {{.TotalEmployees}}</span></div>
          <div><span class="label">Total </span> <span class="total-value">: Rs {{.Total}}</span></div>
        </div>
      </div>
      <table>
        <thead>
          <tr>
            {{range .Columns}}<th style="text-align: {{.Align}}">{{.Label}}</th>{{end}}
          </tr>
        </thead>
        <tbody>
          {{range .Rows}}
          <tr>
            {{range .}}<td style="text-align: {{.Align}}">{{.Text}}</td>{{end}}
          </tr>
          {{end}}
        </tbody>
        <tfoot>
          <tr>
            <td colspan="{{.FootColspan}}" class="text-center">{{.TotalLabel}}</td>
            <td class="text-right">{{.Total}}</td>
          </tr>
        </tfoot>
      </table>
    </div>
  </body>
</html>
`)

var customAdvanceTpl = mustParse("custom-advance-report", `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <style>
      * {
        margin: 0;
        padding: 0;
        box-sizing: border-box;
      }
      @page {
        size: A4;
        margin: 20mm 10mm 10mm 10mm;
      }
      body {
        font-family: Arial, sans-serif;
        margin: 0;
        padding: 0 0 40px 0;
      }
      .container {
        max-width: 900px;
        margin: 0 auto;
        padding: 0 8px;
      }
      .header {
        text-align: center;
        margin-bottom: 10px;
        padding-bottom: 8px;
        border-bottom: 1px solid #ddd;
        page-break-inside: avoid;
      }
      .title {
        font-size: 16px;
        font-weight: bold;
        color: #333;
      }
      .company-info {
        font-size: 12px;
        color: #333;
        margin-bottom: 8px;
        font-weight: 500;
      }
      .period-info {
        display: flex;
        justify-content: space-between;
        font-size: 12px;
        color: #333;
        margin-top: 8px;
        padding-top: 8px;
        border-top: 1px solid #ddd;
      }
      .period-label {
        color: #666;
      }
      .period-value {
        font-weight: 600;
        color: #333;
      }
      table {
        width: 100%;
        border-collapse: collapse;
        margin-bottom: 20px;
      }
      thead {
        background-color: #f3f4f6;
      }
      thead tr {
        border-bottom: 2px solid #333;
      }
      th {
        padding: 12px;
        text-align: left;
        font-weight: 600;
        font-size: 12px;
        color: #333;
        border-right: 1px solid #d1d5db;
      }
      th:last-child {
        border-right: none;
        text-align: right;
      }
      td {
        padding: 12px;
        font-size: 11px;
        border-right: 1px solid #d1d5db;
      }
      td:last-child {
        border-right: none;
        text-align: right;
      }
      tfoot tr {
        background-color: #f9fafb;
        font-weight: bold;
        border-top: 2px solid #333;
      }
      .advance-line {
        display: flex;
        justify-content: space-between;
        padding: 4px 0;
        border-bottom: 1px solid #e5e7eb;
      }
      .advance-line .amount { font-weight: 500; }
      .advance-line .date { color: #666; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <div class="title">{{.Company.CompanyName}}</div>
        <div class="company-info">Salary Advance Report</div>
        <div class="period-info">
          <div class="period-info-item">
            <span class="period-label">Period</span>
            <span class="period-value">: {{.MonthName}} {{.Year}}</span>
          </div>
          <div class="period-info-item">
            <span class="period-label">Total Employees</span>
            <span class="period-value">: {{len .EmployeeDetails}}</span>
          </div>
        </div>
      </div>

      <table>
        <thead>
          <tr>
            <th style="width: 30%;">Employee Name</th>
            <th style="width: 40%;">Advances (Amount / Date)</th>
            <th style="width: 30%;">Total</th>
          </tr>
        </thead>
        <tbody>
          {{range .EmployeeDetails}}
          <tr style="border-bottom: 1px solid #e5e7eb;">
            <td style="font-weight: 600;">{{.EmployeeName}}</td>
            <td>
              {{range .Advances}}
              <div class="advance-line">
                <span class="amount">{{grouped .Amount}}</span>
                <span class="date">{{dateUS .Date}}</span>
              </div>
              {{end}}
            </td>
            <td style="font-weight: bold;">{{grouped .TotalAdvance}}</td>
          </tr>
          {{end}}
        </tbody>
        <tfoot>
          <tr>
            <td colspan="2">TOTAL</td>
            <td>{{grouped .TotalAmount}}</td>
          </tr>
        </tfoot>
      </table>
    </div>
  </body>
</html>
`)
