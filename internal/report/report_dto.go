package report

import "time"

// RangeFilter is an inclusive civil-date range with an optional
// single-employee restriction.
type RangeFilter struct {
	Start      time.Time
	End        time.Time
	EmployeeID *uint
}

// SummaryRow is the raw aggregation row scanned from the database.
type SummaryRow struct {
	UserID         uint   `gorm:"column:user_id"`
	Name           string `gorm:"column:name"`
	Function       string `gorm:"column:function"`
	DaysWorked     int    `gorm:"column:days_worked"`
	DaysWithRecord int    `gorm:"column:days_with_record"`
	TotalPunches   int    `gorm:"column:total_punches"`
}

// DetailRow is one punch joined with its owner, in range order.
type DetailRow struct {
	Date     time.Time `gorm:"column:date"`
	Type     string    `gorm:"column:type"`
	Time     string    `gorm:"column:time"`
	Note     string    `gorm:"column:note"`
	Name     string    `gorm:"column:name"`
	Function string    `gorm:"column:function"`
}

// DashboardRow carries today's per-type punch counts for one employee.
type DashboardRow struct {
	Name     string `gorm:"column:name"`
	Function string `gorm:"column:function"`
	ClockIn  int    `gorm:"column:clock_in"`
	LunchOut int    `gorm:"column:lunch_out"`
	LunchIn  int    `gorm:"column:lunch_in"`
	ClockOut int    `gorm:"column:clock_out"`
}

// EmployeeInfo is the header block of single-employee reports.
type EmployeeInfo struct {
	Name     string `gorm:"column:name"`
	Function string `gorm:"column:function"`
}

type SummaryItem struct {
	Name           string  `json:"name"`
	Function       string  `json:"function"`
	DaysWorked     int     `json:"days_worked"`
	DaysWithRecord int     `json:"days_with_record"`
	TotalPunches   int     `json:"total_punches"`
	Frequency      float64 `json:"frequency"`
}

type SummaryResponse struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Rows      []SummaryItem `json:"rows"`
}

type DetailEntry struct {
	Type      string `json:"type"`
	TypeLabel string `json:"type_label"`
	Time      string `json:"time"`
	Note      string `json:"note,omitempty"`
}

type DateGroup struct {
	Date    string        `json:"date"`
	Entries []DetailEntry `json:"entries"`
}

type DetailedResponse struct {
	EmployeeName string      `json:"employee_name"`
	Function     string      `json:"function"`
	StartDate    string      `json:"start_date"`
	EndDate      string      `json:"end_date"`
	Days         []DateGroup `json:"days"`
}

type DashboardEmployee struct {
	Name     string `json:"name"`
	Function string `json:"function"`
	ClockIn  int    `json:"clock_in"`
	LunchOut int    `json:"lunch_out"`
	LunchIn  int    `json:"lunch_in"`
	ClockOut int    `json:"clock_out"`
}

type DashboardResponse struct {
	Date           string              `json:"date"`
	TotalEmployees int64               `json:"total_employees"`
	Employees      []DashboardEmployee `json:"employees"`
}

type PrintEntry struct {
	Time string `json:"time"`
	Note string `json:"note"`
}

// PrintDay maps punch type to its entry, mirroring how the printable
// sheet lays one day out as four fixed slots.
type PrintDay struct {
	Date    string                `json:"date"`
	Entries map[string]PrintEntry `json:"entries"`
}

type PrintResponse struct {
	EmployeeName string     `json:"employee_name"`
	Function     string     `json:"function"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	Days         []PrintDay `json:"days"`
}
