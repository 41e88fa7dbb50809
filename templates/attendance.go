package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

// AttendanceEmployee identifies an employee in the attendance payload.
// Name fields are optional; the report falls back through them.
type AttendanceEmployee struct {
	ID              string `json:"_id"`
	EmployeeID      string `json:"employeeId"`
	CommonName      string `json:"commonName"`
	NameWithInitial string `json:"nameWithInitial"`
}

// AttendanceRecord is one day's check-in/check-out entry.
type AttendanceRecord struct {
	EmpID           string `json:"empId"`
	Date            string `json:"date"`
	CheckInTime     string `json:"checkInTime"`
	CheckOutTime    string `json:"checkOutTime"`
	IsLateCheckIn   bool   `json:"isLateCheckIn"`
	IsEarlyCheckOut bool   `json:"isEarlyCheckOut"`
}

// AttendanceSummary sets the expectations the per-employee charts are
// measured against.
type AttendanceSummary struct {
	TotalWorkingDays int     `json:"totalWorkingDays"`
	HoursPerDay      float64 `json:"hoursPerDay"`
}

// AttendanceReportData is the payload for the "attendance-report"
// document type. Unlike the payroll documents it carries the company
// identity as flat fields rather than a nested company object.
type AttendanceReportData struct {
	ReportStartDate string               `json:"reportStartDate"`
	ReportEndDate   string               `json:"reportEndDate"`
	SelectedEmps    []AttendanceEmployee `json:"selectedEmps"`
	ReportData      []AttendanceRecord   `json:"reportData"`
	Employees       []AttendanceEmployee `json:"employees"`
	ReportSummary   AttendanceSummary    `json:"reportSummary"`
	CompanyName     string               `json:"companyName"`
	CompanyAddress  string               `json:"companyAddress"`
	CompanyPhone    string               `json:"companyPhone"`
	CompanyEmail    string               `json:"companyEmail"`
	LogoBase64      string               `json:"logoBase64"`
}

type attendanceRow struct {
	Date           string
	CheckIn        string
	CheckInClass   string
	CheckInStatus  string
	CheckOut       string
	CheckOutClass  string
	CheckOutStatus string
	Hours          string
}

// donutChart is one precomputed SVG donut: DashArray fills the colored
// arc against the full circumference of 251.2.
type donutChart struct {
	DashArray string
	Center    string
}

type attendanceEmployeeView struct {
	Name       string
	EmployeeID string
	Rows       []attendanceRow

	Hours       donutChart
	HoursLegend string

	CheckIn       donutChart
	OnTimeIn      int
	LateIn        int
	CheckOut      donutChart
	OnTimeOut     int
	EarlyOut      int
	Days          donutChart
	PresentDays   int
	ExpectedDays  int
}

type attendanceView struct {
	Period         string
	TotalEmployees int
	Employees      []attendanceEmployeeView
	CompanyName    string
	AddressLine    string
	ContactLine    string
	Logo           template.URL
}

// AttendanceReport renders one section per selected employee: the
// day-by-day check-in/out table followed by four summary donut charts.
// Employees with no attendance records are omitted.
func AttendanceReport(data AttendanceReportData) (string, error) {
	var views []attendanceEmployeeView
	for _, emp := range data.SelectedEmps {
		v, ok := buildAttendanceEmployee(emp, data)
		if ok {
			views = append(views, v)
		}
	}

	company := Company{
		CompanyPhone: data.CompanyPhone,
		CompanyEmail: data.CompanyEmail,
	}
	addressLine := ""
	if data.CompanyAddress != "" {
		addressLine = " | " + data.CompanyAddress
	}

	view := attendanceView{
		Period:         fmt.Sprintf("%s to %s", data.ReportStartDate, data.ReportEndDate),
		TotalEmployees: len(data.SelectedEmps),
		Employees:      views,
		CompanyName:    data.CompanyName,
		AddressLine:    addressLine,
		ContactLine:    company.ContactLine(),
		// Logo carries the data URI as template.URL: html/template would
		// otherwise reject the data: scheme in the src attribute.
		Logo: template.URL(data.LogoBase64),
	}
	var buf bytes.Buffer
	if err := attendanceTpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildAttendanceEmployee(emp AttendanceEmployee, data AttendanceReportData) (attendanceEmployeeView, bool) {
	var records []AttendanceRecord
	for _, r := range data.ReportData {
		if r.EmpID == emp.EmployeeID {
			records = append(records, r)
		}
	}
	if len(records) == 0 {
		return attendanceEmployeeView{}, false
	}

	name := firstNonEmpty(emp.CommonName, emp.NameWithInitial)
	if name == "" {
		for _, e := range data.Employees {
			if (emp.ID != "" && e.ID == emp.ID) || e.EmployeeID == emp.EmployeeID {
				name = e.NameWithInitial
				break
			}
		}
	}
	if name == "" {
		name = "Unknown"
	}

	var (
		actualMinutes int
		lateIn        int
		onTimeIn      int
		earlyOut      int
		onTimeOut     int
		rows          []attendanceRow
	)
	for _, r := range records {
		row := attendanceRow{
			Date:           orNA(r.Date),
			CheckIn:        orDash(r.CheckInTime),
			CheckInStatus:  "-",
			CheckOut:       orDash(r.CheckOutTime),
			CheckOutStatus: "-",
			Hours:          "-",
		}

		if r.CheckInTime != "" && r.CheckOutTime != "" {
			in, inOK := clockMinutes(r.CheckInTime)
			out, outOK := clockMinutes(r.CheckOutTime)
			if inOK && outOK && out > in {
				diff := out - in
				actualMinutes += diff
				row.Hours = fmt.Sprintf("%dh %dm", diff/60, diff%60)
			}
		}
		if r.CheckInTime != "" {
			if r.IsLateCheckIn {
				lateIn++
				row.CheckInClass = "late-checkin"
				row.CheckInStatus = "Late"
			} else {
				onTimeIn++
				row.CheckInStatus = "On Time"
			}
		}
		if r.CheckOutTime != "" {
			if r.IsEarlyCheckOut {
				earlyOut++
				row.CheckOutClass = "early-checkout"
				row.CheckOutStatus = "Early"
			} else {
				onTimeOut++
				row.CheckOutStatus = "On Time"
			}
		}
		rows = append(rows, row)
	}

	expectedHours := float64(data.ReportSummary.TotalWorkingDays) * data.ReportSummary.HoursPerDay
	actualHours := float64(actualMinutes) / 60

	v := attendanceEmployeeView{
		Name:         name,
		EmployeeID:   emp.EmployeeID,
		Rows:         rows,
		Hours:        ratioDonut(actualHours, expectedHours),
		HoursLegend:  fmt.Sprintf("%.1fh / %.1fh", actualHours, expectedHours),
		CheckIn:      ratioDonut(float64(onTimeIn), float64(onTimeIn+lateIn)),
		OnTimeIn:     onTimeIn,
		LateIn:       lateIn,
		CheckOut:     ratioDonut(float64(onTimeOut), float64(onTimeOut+earlyOut)),
		OnTimeOut:    onTimeOut,
		EarlyOut:     earlyOut,
		Days:         ratioDonut(float64(len(records)), float64(data.ReportSummary.TotalWorkingDays)),
		PresentDays:  len(records),
		ExpectedDays: data.ReportSummary.TotalWorkingDays,
	}
	v.Days.Center = fmt.Sprintf("%dd", len(records))
	return v, true
}

// ratioDonut computes the arc and center label for a part/whole donut.
// The arc is capped at the full circumference; a zero whole renders an
// empty arc and 0%.
func ratioDonut(part, whole float64) donutChart {
	if whole <= 0 {
		return donutChart{DashArray: "0 251.2", Center: "0%"}
	}
	ratio := part / whole
	arc := ratio * 251.2
	if arc > 251.2 {
		arc = 251.2
	}
	return donutChart{
		DashArray: strconv.FormatFloat(arc, 'f', 1, 64) + " 251.2",
		Center:    strconv.Itoa(int(ratio*100+0.5)) + "%",
	}
}

// clockMinutes parses "HH:MM" into minutes since midnight.
func clockMinutes(s string) (int, bool) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}
	hours, err1 := strconv.Atoi(h)
	mins, err2 := strconv.Atoi(m)
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return hours*60 + mins, true
}

var attendanceTpl = mustParse("attendance-report", `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <title>Attendance Report</title>
    <style>
      * {
        margin: 0;
        padding: 0;
      }
      .footer-reserve {
        height: 30px;
        page-break-inside: avoid;
      }
      .employee-section {
        page-break-inside: auto;
        margin-top: 8px;
      }
      .employee-header {
        background-color: #f5f5f5;
        padding: 4px 5px;
        border-radius: 4px;
        margin-bottom: 6px;
        page-break-inside: avoid;
      }
      .employee-header .name {
        font-size: 12px;
        font-weight: bold;
        color: #333;
      }
      .employee-header .emp-id {
        font-size: 10px;
        color: #666;
        margin-top: 2px;
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
      .period-info {
        font-size: 11px;
        color: #666;
        margin-top: 3px;
      }
      table {
        width: 100%;
        border-collapse: collapse;
        margin-top: 10px;
        margin-bottom: 5px;
        page-break-inside: auto;
      }
      tbody tr {
        page-break-inside: avoid;
      }
      thead {
        border-bottom: 2px solid #000;
        display: table-header-group;
        page-break-inside: avoid;
      }
      th {
        padding: 8px;
        text-align: left;
        font-weight: bold;
        font-size: 10px;
      }
      td {
        padding: 4px 8px;
        font-size: 9px;
      }
      .late-checkin {
        color: #dc2626;
        font-weight: bold;
      }
      .early-checkout {
        color: #f97316;
        font-weight: bold;
      }
      .on-time {
        color: #22c55e;
      }
      .working-hours {
        color: #2563eb;
        font-weight: bold;
      }
      .charts-grid {
        margin-top: 8px;
        display: flex;
        flex-wrap: wrap;
        justify-content: center;
        gap: 8px;
        page-break-inside: avoid;
      }
      .chart-box {
        width: 160px;
        text-align: center;
        padding: 10px;
        border: 1px solid #e5e7eb;
        border-radius: 6px;
        background: #fff;
        page-break-inside: avoid;
      }
      .chart-title {
        font-size: 10px;
        font-weight: bold;
        margin-bottom: 8px;
      }
      .donut-container {
        position: relative;
        width: 80px;
        height: 80px;
        margin: 0 auto 6px auto;
      }
      .donut-center {
        position: absolute;
        top: 50%;
        left: 50%;
        transform: translate(-50%, -50%);
        font-size: 12px;
        font-weight: bold;
      }
      .chart-legend {
        margin-top: 6px;
        font-size: 8px;
      }
      .legend-item {
        display: inline-block;
        margin: 1px 2px;
      }
      .legend-dot {
        width: 8px;
        height: 8px;
        border-radius: 50%;
        display: inline-block;
        vertical-align: middle;
        margin-right: 3px;
      }
      .footer-section {
        margin-top: 15px;
        page-break-inside: avoid;
        padding-top: 8px;
        border-top: 1px solid #ddd;
      }
      .footer {
        display: flex;
        justify-content: space-between;
        align-items: flex-start;
        padding-top: 8px;
        page-break-inside: avoid;
        font-size: 9px;
      }
      .footer-left {
        flex: 1;
      }
      .footer-left p {
        margin: 2px 0;
        font-size: 9px;
        color: #333;
        line-height: 1.2;
      }
      .footer-right {
        text-align: right;
      }
      .footer-right img {
        max-width: 80px;
        max-height: 40px;
      }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <div class="title">Attendance Report</div>
        <div class="period-info">
          Period: {{.Period}} | Total Employees: {{.TotalEmployees}}
        </div>
      </div>

      {{range .Employees}}
      <div class="employee-section">
        <div class="employee-header">
          <div class="name">{{.Name}}</div>
          <div class="emp-id">Employee ID: {{.EmployeeID}}</div>
        </div>

        <table>
          <thead>
            <tr>
              <th>DATE</th>
              <th>CHECK-IN</th>
              <th>STATUS</th>
              <th>CHECK-OUT</th>
              <th>STATUS</th>
              <th>HOURS</th>
            </tr>
          </thead>
          <tbody>
            {{range .Rows}}
            <tr>
              <td>{{.Date}}</td>
              <td class="{{.CheckInClass}}">{{.CheckIn}}</td>
              <td class="{{if .CheckInClass}}{{.CheckInClass}}{{else}}on-time{{end}}">{{.CheckInStatus}}</td>
              <td class="{{.CheckOutClass}}">{{.CheckOut}}</td>
              <td class="{{if .CheckOutClass}}{{.CheckOutClass}}{{else}}on-time{{end}}">{{.CheckOutStatus}}</td>
              <td class="working-hours">{{.Hours}}</td>
            </tr>
            {{end}}
          </tbody>
        </table>

        <div class="charts-grid">
          <div class="chart-box">
            <div class="chart-title">Working Hours</div>
            <div class="donut-container">
              <svg width="80" height="80" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
                <circle cx="50" cy="50" r="40" fill="none" stroke="#e5e7eb" stroke-width="12"/>
                <circle cx="50" cy="50" r="40" fill="none" stroke="#2563eb" stroke-width="12" stroke-dasharray="{{.Hours.DashArray}}" stroke-linecap="round" transform="rotate(-90 50 50)"/>
              </svg>
              <div class="donut-center" style="color: #2563eb;">{{.Hours.Center}}</div>
            </div>
            <div class="chart-legend">
              <span class="legend-item"><span class="legend-dot" style="background-color:#2563eb"></span>{{.HoursLegend}}</span>
            </div>
          </div>

          <div class="chart-box">
            <div class="chart-title">Check-In Status</div>
            <div class="donut-container">
              <svg width="80" height="80" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
                <circle cx="50" cy="50" r="40" fill="none" stroke="#ef4444" stroke-width="12"/>
                <circle cx="50" cy="50" r="40" fill="none" stroke="#22c55e" stroke-width="12" stroke-dasharray="{{.CheckIn.DashArray}}" stroke-linecap="round" transform="rotate(-90 50 50)"/>
              </svg>
              <div class="donut-center" style="color: #22c55e;">{{.CheckIn.Center}}</div>
            </div>
            <div class="chart-legend">
              <span class="legend-item"><span class="legend-dot" style="background-color:#22c55e"></span>On Time: {{.OnTimeIn}}</span>
              <span class="legend-item"><span class="legend-dot" style="background-color:#ef4444"></span>Late: {{.LateIn}}</span>
            </div>
          </div>

          <div class="chart-box">
            <div class="chart-title">Check-Out Status</div>
            <div class="donut-container">
              <svg width="80" height="80" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
                <circle cx="50" cy="50" r="40" fill="none" stroke="#f97316" stroke-width="12"/>
                <circle cx="50" cy="50" r="40" fill="none" stroke="#22c55e" stroke-width="12" stroke-dasharray="{{.CheckOut.DashArray}}" stroke-linecap="round" transform="rotate(-90 50 50)"/>
              </svg>
              <div class="donut-center" style="color: #22c55e;">{{.CheckOut.Center}}</div>
            </div>
            <div class="chart-legend">
              <span class="legend-item"><span class="legend-dot" style="background-color:#22c55e"></span>On Time: {{.OnTimeOut}}</span>
              <span class="legend-item"><span class="legend-dot" style="background-color:#f97316"></span>Early: {{.EarlyOut}}</span>
            </div>
          </div>

          <div class="chart-box">
            <div class="chart-title">Working Days vs Leave</div>
            <div class="donut-container">
              <svg width="80" height="80" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
                <circle cx="50" cy="50" r="40" fill="none" stroke="#fbbf24" stroke-width="12"/>
                <circle cx="50" cy="50" r="40" fill="none" stroke="#10b981" stroke-width="12" stroke-dasharray="{{.Days.DashArray}}" stroke-linecap="round" transform="rotate(-90 50 50)"/>
              </svg>
              <div class="donut-center" style="color: #10b981;">{{.Days.Center}}</div>
            </div>
            <div class="chart-legend">
              <span class="legend-item"><span class="legend-dot" style="background-color:#10b981"></span>Present: {{.PresentDays}}</span>
              <span class="legend-item"><span class="legend-dot" style="background-color:#fbbf24"></span>Expected: {{.ExpectedDays}}</span>
            </div>
          </div>
        </div>
      </div>
      <div class="footer-reserve"></div>
      {{end}}

      <div class="footer-section">
        <div class="footer">
          <div class="footer-left">
            <p><strong>{{.CompanyName}}</strong>{{.AddressLine}}</p>
            {{if .ContactLine}}<p>{{.ContactLine}}</p>{{end}}
          </div>
          <div class="footer-right">
            {{if .Logo}}<img src="{{.Logo}}" alt="Company Logo">{{end}}
          </div>
        </div>
      </div>
    </div>
  </body>
</html>
`)
