package templates

import (
	"bytes"
	"fmt"
)

// DeductionRecord is the header of a deduction run: which period it
// belongs to and when it was applied. Only one of the date fields is set,
// depending on the deduction kind.
type DeductionRecord struct {
	PeriodYear    int    `json:"periodYear"`
	PeriodMonth   int    `json:"periodMonth"`
	DepositDate   string `json:"depositDate"`
	RecoveryDate  string `json:"recoveryDate"`
	DeductionDate string `json:"deductionDate"`
	Description   string `json:"description"`
}

// DeductionDetail is one employee's line in a deduction run. Item is
// used by tool-deposit runs, Reason by other-deduction runs.
type DeductionDetail struct {
	DisplayID    string  `json:"displayId"`
	EmployeeName string  `json:"employeeName"`
	JobRole      string  `json:"jobRole"`
	Item         string  `json:"item"`
	Reason       string  `json:"reason"`
	Amount       float64 `json:"amount"`
}

// DeductionReportData is the payload shared by the "deposit-tools",
// "losses-recovery" and "other-deductions" document types.
type DeductionReportData struct {
	Record  DeductionRecord   `json:"record"`
	Details []DeductionDetail `json:"details"`
	Company Company           `json:"company"`
}

// DepositTools renders the tool-deposit deduction run with an ITEM
// column describing what each employee deposited against.
func DepositTools(data DeductionReportData) (string, error) {
	return deductionReport(data, "Deposit Tools Report", "ITEM")
}

// LossesRecovery renders the losses-recovery deduction run.
func LossesRecovery(data DeductionReportData) (string, error) {
	return deductionReport(data, "Losses Recovery Report", "")
}

// OtherDeductions renders the miscellaneous deduction run with a REASON
// column.
func OtherDeductions(data DeductionReportData) (string, error) {
	return deductionReport(data, "Other Deductions Report", "REASON")
}

// deductionReport renders the shared deduction layout. It reuses the
// advance-payroll table; extraColumn adds the run-specific detail column
// between JOB ROLE and AMOUNT.
func deductionReport(data DeductionReportData, title, extraColumn string) (string, error) {
	columns := []reportColumnView{
		{Label: "EMP ID", Align: "left"},
		{Label: "NAME", Align: "left"},
		{Label: "JOB ROLE", Align: "left"},
	}
	if extraColumn != "" {
		columns = append(columns, reportColumnView{Label: extraColumn, Align: "left"})
	}
	columns = append(columns, reportColumnView{Label: "AMOUNT", Align: "right"})

	var total float64
	rows := make([][]reportCell, len(data.Details))
	for i, d := range data.Details {
		total += d.Amount
		cells := []reportCell{
			{Text: orNA(d.DisplayID), Align: "left"},
			{Text: orNA(d.EmployeeName), Align: "left"},
			{Text: orNA(d.JobRole), Align: "left"},
		}
		switch extraColumn {
		case "ITEM":
			cells = append(cells, reportCell{Text: orNA(d.Item), Align: "left"})
		case "REASON":
			cells = append(cells, reportCell{Text: orNA(d.Reason), Align: "left"})
		}
		cells = append(cells, reportCell{Text: grouped(d.Amount), Align: "right"})
		rows[i] = cells
	}

	view := advanceReportView{
		CompanyName:    data.Company.CompanyName,
		Title:          title,
		Period:         fmt.Sprintf("%d %s", data.Record.PeriodYear, monthName(data.Record.PeriodMonth)),
		Date:           deductionDate(data.Record),
		TotalEmployees: len(data.Details),
		TotalLabel:     "TOTAL",
		Total:          grouped(total),
		Columns:        columns,
		Rows:           rows,
		FootColspan:    len(columns) - 1,
	}
	var buf bytes.Buffer
	if err := advancePayrollTpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func deductionDate(r DeductionRecord) string {
	for _, s := range []string{r.DepositDate, r.RecoveryDate, r.DeductionDate} {
		if s != "" {
			return dateUS(s)
		}
	}
	return ""
}
