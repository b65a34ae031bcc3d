package punch

type RegisterPunchRequest struct {
	Note string `json:"note"`
}

type PunchResponse struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	TypeLabel string `json:"type_label"`
	Time      string `json:"time"`
	Note      string `json:"note,omitempty"`
}

type TodayResponse struct {
	Date      string          `json:"date"`
	Punches   []PunchResponse `json:"punches"`
	NextPunch *string         `json:"next_punch,omitempty"`
	Complete  bool            `json:"complete"`
}

type HistoryItem struct {
	Date         string `json:"date"`
	Type         string `json:"type"`
	TypeLabel    string `json:"type_label"`
	Time         string `json:"time"`
	Note         string `json:"note,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
}

type HistoryResponse struct {
	EmployeeName string        `json:"employee_name"`
	Punches      []HistoryItem `json:"punches"`
}
