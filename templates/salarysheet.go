package templates

import (
	"bytes"
	"time"
)

// SalarySheetDeductions are the per-employee deduction amounts. Absent
// fields decode as zero and render as "0.00".
type SalarySheetDeductions struct {
	EPFEmployee  float64 `json:"epfEmployee"`
	EPFEmployer  float64 `json:"epfEmployer"`
	ETFEmployer  float64 `json:"etfEmployer"`
	Advance      float64 `json:"advance"`
	NoPay        float64 `json:"noPay"`
	Other        float64 `json:"other"`
	DepositTools float64 `json:"depositTools"`
	LossRecovery float64 `json:"lossRecovery"`
}

// SalarySheetEmployee is one row of a salary sheet.
type SalarySheetEmployee struct {
	EmployeeID        string                `json:"employeeId"`
	ProjectDepartment string                `json:"projectDepartment"`
	EmployeeName      string                `json:"employeeName"`
	JobTitle          string                `json:"jobTitle"`
	BasicSalary       float64               `json:"basicSalary"`
	GrossSalary       float64               `json:"grossSalary"`
	NetSalary         float64               `json:"netSalary"`
	Deductions        SalarySheetDeductions `json:"deductions"`
}

// SalarySheetTotals are the footer totals. When absent from the payload
// they are computed from the employee rows.
type SalarySheetTotals struct {
	TotalBasicSalary float64 `json:"totalBasicSalary"`
	TotalGrossSalary float64 `json:"totalGrossSalary"`
	TotalEPFEmp      float64 `json:"totalEpfEmp"`
	TotalEPFEmployer float64 `json:"totalEpfEmployer"`
	TotalETFEmployer float64 `json:"totalEtfEmployer"`
	TotalAdvance     float64 `json:"totalAdvance"`
	TotalNoPay       float64 `json:"totalNoPay"`
	TotalOther       float64 `json:"totalOther"`
	TotalNetSalary   float64 `json:"totalNetSalary"`
}

// SalarySheetData is the payload for the "salary-sheet" and
// "salary-sheet-summary" document types.
type SalarySheetData struct {
	Period    string                `json:"period"`
	SheetType string                `json:"sheetType"`
	SheetName string                `json:"sheetName"`
	Employees []SalarySheetEmployee `json:"employees"`
	Totals    *SalarySheetTotals    `json:"totals"`
	Company   Company               `json:"company"`
}

func (d SalarySheetData) effectiveTotals() SalarySheetTotals {
	if d.Totals != nil {
		return *d.Totals
	}
	var t SalarySheetTotals
	for _, e := range d.Employees {
		t.TotalBasicSalary += e.BasicSalary
		t.TotalGrossSalary += e.GrossSalary
		t.TotalEPFEmp += e.Deductions.EPFEmployee
		t.TotalEPFEmployer += e.Deductions.EPFEmployer
		t.TotalETFEmployer += e.Deductions.ETFEmployer
		t.TotalAdvance += e.Deductions.Advance
		t.TotalNoPay += e.Deductions.NoPay
		t.TotalOther += e.Deductions.Other
		t.TotalNetSalary += e.NetSalary
	}
	return t
}

type salarySheetView struct {
	SalarySheetData
	Totals SalarySheetTotals
}

// SalarySheet renders the flat per-period payroll table with one row per
// employee and a totals footer.
func SalarySheet(data SalarySheetData) (string, error) {
	view := salarySheetView{SalarySheetData: data, Totals: data.effectiveTotals()}
	var buf bytes.Buffer
	if err := salarySheetTpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// salarySheetGroup is the set of employees under one project/department
// header in the summary layout.
type salarySheetGroup struct {
	Project   string
	Employees []SalarySheetEmployee
}

type salarySheetSummaryView struct {
	Period         string
	Company        Company
	Groups         []salarySheetGroup
	Totals         SalarySheetTotals
	TotalEmployees int
	GeneratedOn    string
}

// SalarySheetSummary renders the same payroll data grouped by
// project/department, with group header rows and a grand-total footer.
// Groups keep the order in which their project first appears.
func SalarySheetSummary(data SalarySheetData) (string, error) {
	var groups []salarySheetGroup
	index := map[string]int{}
	for _, e := range data.Employees {
		i, ok := index[e.ProjectDepartment]
		if !ok {
			i = len(groups)
			index[e.ProjectDepartment] = i
			groups = append(groups, salarySheetGroup{Project: e.ProjectDepartment})
		}
		groups[i].Employees = append(groups[i].Employees, e)
	}

	view := salarySheetSummaryView{
		Period:         data.Period,
		Company:        data.Company,
		Groups:         groups,
		Totals:         data.effectiveTotals(),
		TotalEmployees: len(data.Employees),
		GeneratedOn:    time.Now().Format("02/01/2006"),
	}
	var buf bytes.Buffer
	if err := salarySheetSummaryTpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var salarySheetTpl = mustParse("salary-sheet", `<html>
  <head>
    <title>Payroll Report - {{.Period}}</title>
    <style>
      * {
        margin: 0;
        padding: 0;
        box-sizing: border-box;
      }
      body {
        font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
        padding: 20px 20px 40px 20px;
        background-color: white;
      }
      .header {
        text-align: center;
        margin-bottom: 10px;
      }
      .title {
        font-size: 14px;
        font-weight: bold;
        color: #333;
        margin-bottom: 5px;
      }
      .period-info {
        font-size: 9px;
        color: #666;
        margin-bottom: 15px;
      }
      table {
        width: 100%;
        border-collapse: collapse;
        margin-top: 10px;
      }
      thead {
        border-bottom: 2px solid #000;
      }
      th {
        padding: 4px 6px;
        text-align: left;
        font-weight: bold;
        font-size: 9px;
      }
      td {
        padding: 2px 6px;
        font-size: 8px;
        line-height: 1.15;
      }
      tfoot tr {
        font-weight: bold;
        border-top: 2px solid #000;
      }
      tfoot td {
        padding: 6px 8px;
      }
      .text-right { text-align: right; }
      .text-center { text-align: center; }
      .emp-id { font-weight: 500; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <div class="title">Payroll Report</div>
        <div class="period-info">
          Period: {{.Period}} | Type: {{.SheetType}} | Sheet: {{.SheetName}} | Total Employees: {{len .Employees}}
        </div>
      </div>
      <table>
        <thead>
          <tr>
            <th>EMP ID</th>
            <th>NAME</th>
            <th>JOB ROLE</th>
            <th class="text-right">BASIC</th>
            <th class="text-right">GROSS</th>
            <th class="text-right">EPF(8%)</th>
            <th class="text-right">EPF(12%)</th>
            <th class="text-right">ETF(3%)</th>
            <th class="text-right">ADV</th>
            <th class="text-right">NO-PAY</th>
            <th class="text-right">OTHER</th>
            <th class="text-right">NET</th>
          </tr>
        </thead>
        <tbody>
          {{range .Employees}}
          <tr>
            <td class="emp-id">{{orNA .EmployeeID}}</td>
            <td>{{orNA .EmployeeName}}</td>
            <td>{{orNA .JobTitle}}</td>
            <td class="text-right">{{money .BasicSalary}}</td>
            <td class="text-right">{{money .GrossSalary}}</td>
            <td class="text-right">{{money .Deductions.EPFEmployee}}</td>
            <td class="text-right">{{money .Deductions.EPFEmployer}}</td>
            <td class="text-right">{{money .Deductions.ETFEmployer}}</td>
            <td class="text-right">{{money .Deductions.Advance}}</td>
            <td class="text-right">{{money .Deductions.NoPay}}</td>
            <td class="text-right">{{money .Deductions.Other}}</td>
            <td class="text-right">{{money .NetSalary}}</td>
          </tr>
          {{end}}
        </tbody>
        <tfoot>
          <tr>
            <td colspan="3" class="text-center">TOTAL</td>
            <td class="text-right">{{money .Totals.TotalBasicSalary}}</td>
            <td class="text-right">{{money .Totals.TotalGrossSalary}}</td>
            <td class="text-right">{{money .Totals.TotalEPFEmp}}</td>
            <td class="text-right">{{money .Totals.TotalEPFEmployer}}</td>
            <td class="text-right">{{money .Totals.TotalETFEmployer}}</td>
            <td class="text-right">{{money .Totals.TotalAdvance}}</td>
            <td class="text-right">{{money .Totals.TotalNoPay}}</td>
            <td class="text-right">{{money .Totals.TotalOther}}</td>
            <td class="text-right">{{money .Totals.TotalNetSalary}}</td>
          </tr>
        </tfoot>
      </table>
    </div>
  </body>
</html>
`)

var salarySheetSummaryTpl = mustParse("salary-sheet-summary", `<html>
  <head>
    <style>
      body {
        font-family: Arial, sans-serif;
        margin: 0;
        padding: 20px;
      }
      .company-header {
        text-align: center;
        margin-bottom: 30px;
      }
      .company-header h1 {
        font-size: 28px;
        font-weight: bold;
        margin: 0 0 10px 0;
      }
      .report-title {
        font-size: 18px;
        color: #333;
        margin: 0;
      }
      .header-info {
        display: flex;
        justify-content: space-between;
        margin-top: 20px;
      }
      .left-info, .right-info {
        display: flex;
        flex-direction: column;
        gap: 8px;
      }
      .info-row {
        display: flex;
        align-items: center;
        gap: 8px;
      }
      .info-row .label {
        min-width: 140px;
        font-size: 14px;
      }
      .info-row .value {
        font-size: 14px;
        font-weight: bold;
      }
      table {
        width: 100%;
        border-collapse: collapse;
        margin-top: 20px;
      }
      th, td {
        padding: 8px 10px;
        font-size: 13px;
      }
      th {
        font-weight: bold;
        text-align: center;
        white-space: nowrap;
        border-top: 2px solid #000;
        border-bottom: 2px solid #000;
      }
      .project-header td {
        font-weight: bold;
        background-color: #f5f5f5;
        padding: 10px;
        font-size: 14px;
        border-top: 1px solid #ddd;
        text-align: left;
      }
      .currency { text-align: right; }
      .bold { font-weight: bold; }
      .total-row td {
        font-weight: bold;
        border-top: 2px solid #000;
        border-bottom: 2px solid #000;
      }
      .total-row td:first-child { text-align: center; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <div class="company-header">
          <h1>{{.Company.CompanyName}}</h1>
          <h3>Salary Sheet Summary - {{.Period}}</h3>
          <p class="report-title">Salary Advance Payroll Report</p>
        </div>

        <div class="header-info">
          <div class="left-info">
            <div class="info-row">
              <span class="label">Period</span>
              <span class="colon">:</span>
              <span class="value">{{.Period}}</span>
            </div>
            <div class="info-row">
              <span class="label">Date</span>
              <span class="colon">:</span>
              <span class="value">{{.GeneratedOn}}</span>
            </div>
          </div>

          <div class="right-info">
            <div class="info-row">
              <span class="label">Total Employees</span>
              <span class="colon">:</span>
              <span class="value">{{.TotalEmployees}}</span>
            </div>
            <div class="info-row">
              <span class="label">Total</span>
              <span class="colon">:</span>
              <span class="value">Rs {{money .Totals.TotalNetSalary}}</span>
            </div>
          </div>
        </div>
      </div>
      <div class="content">
        <table>
          <thead>
            <tr>
              <th>EMP ID</th>
              <th>NAME</th>
              <th>JOB ROLE</th>
              <th>BASIC</th>
              <th>GROSS</th>
              <th>EPF(8%)</th>
              <th>EPF(12%)</th>
              <th>ETF(3%)</th>
              <th>ADV</th>
              <th>NO-PAY</th>
              <th>OTHER</th>
              <th>NET</th>
            </tr>
          </thead>
          <tbody>
            {{range .Groups}}
            <tr class="project-header">
              <td colspan="13">{{.Project}}</td>
            </tr>
            {{range .Employees}}
            <tr>
              <td>{{.EmployeeID}}</td>
              <td>{{.EmployeeName}}</td>
              <td>{{.JobTitle}}</td>
              <td class="currency">{{money .BasicSalary}}</td>
              <td class="currency">{{money .GrossSalary}}</td>
              <td class="currency">{{money .Deductions.EPFEmployee}}</td>
              <td class="currency">{{money .Deductions.EPFEmployer}}</td>
              <td class="currency">{{money .Deductions.ETFEmployer}}</td>
              <td class="currency">{{money .Deductions.Advance}}</td>
              <td class="currency">{{money .Deductions.NoPay}}</td>
              <td class="currency">{{money .Deductions.Other}}</td>
              <td class="currency bold">{{money .NetSalary}}</td>
            </tr>
            {{end}}
            {{end}}
          </tbody>
          <tfoot>
            <tr class="total-row">
              <td colspan="3">TOTAL</td>
              <td class="currency">{{money .Totals.TotalBasicSalary}}</td>
              <td class="currency">{{money .Totals.TotalGrossSalary}}</td>
              <td class="currency">{{money .Totals.TotalEPFEmp}}</td>
              <td class="currency">{{money .Totals.TotalEPFEmployer}}</td>
              <td class="currency">{{money .Totals.TotalETFEmployer}}</td>
              <td class="currency">{{money .Totals.TotalAdvance}}</td>
              <td class="currency">{{money .Totals.TotalNoPay}}</td>
              <td class="currency">{{money .Totals.TotalOther}}</td>
              <td class="currency bold">{{money .Totals.TotalNetSalary}}</td>
            </tr>
          </tfoot>
        </table>
      </div>
    </div>
  </body>
</html>
`)
