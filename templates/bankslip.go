package templates

import "bytes"

// BankslipEmployee is one bank-transfer row.
type BankslipEmployee struct {
	EmployeeCode  string `json:"employeeCode"`
	EmployeeName  string `json:"employeeName"`
	ProjectName   string `json:"projectName"`
	BankName      string `json:"bankName"`
	BranchName    string `json:"branchName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
}

// BankslipData is the payload for the "bankslip" document type.
type BankslipData struct {
	Period    string             `json:"period"`
	Employees []BankslipEmployee `json:"employees"`
}

// Bankslip renders the bank transfer listing handed to the bank for
// salary disbursement: one bordered row per employee account.
func Bankslip(data BankslipData) (string, error) {
	var buf bytes.Buffer
	if err := bankslipTpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var bankslipTpl = mustParse("bankslip", `<!DOCTYPE html>
<html>
<head>
  <title>Bank Slip - {{.Period}}</title>
  <style>
    @page {
      margin: 10mm;
    }
    body {
      font-family: Arial, sans-serif;
      font-size: 11px;
      line-height: 1.4;
      margin: 0;
      padding: 10px 10px 40px 10px;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      margin-bottom: 20px;
    }
    th, td {
      border: 1px solid #333;
      padding: 8px;
      text-align: left;
    }
    th {
      background-color: #f0f0f0;
      font-weight: bold;
    }
    .header {
      text-align: center;
      margin-bottom: 20px;
      font-weight: bold;
      font-size: 14px;
    }
    .period {
      text-align: center;
      font-size: 12px;
      margin-bottom: 10px;
      font-weight: bold;
    }
  </style>
</head>
<body>
  <div class="header">Bank Slip Report</div>
  <div class="period">Period: {{.Period}}</div>
  <table>
    <thead>
      <tr>
        <th>Employee Code</th>
        <th>Employee Name</th>
        <th>Project</th>
        <th>Bank Name</th>
        <th>Branch</th>
        <th>Account Number</th>
        <th>Account Holder</th>
      </tr>
    </thead>
    <tbody>
      {{range .Employees}}
      <tr>
        <td>{{.EmployeeCode}}</td>
        <td>{{.EmployeeName}}</td>
        <td>{{.ProjectName}}</td>
        <td>{{.BankName}}</td>
        <td>{{.BranchName}}</td>
        <td>{{.AccountNumber}}</td>
        <td>{{.AccountHolder}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
</body>
</html>
`)
