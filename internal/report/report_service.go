package report

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go-ponto/internal/export"
	"go-ponto/internal/punch"
	reporterrors "go-ponto/internal/report/errors"
	"go-ponto/internal/shared/civil"
	"go-ponto/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// frequencyDenominator is the fixed 30-day base of the attendance
// percentage. It is a business rule, not the length of the requested
// range; changing it changes report semantics.
const frequencyDenominator = 30

// DetailedExport bundles both renderings of a detailed report: a flat
// table for spreadsheets and date groups for the PDF layout.
type DetailedExport struct {
	Title       string
	Period      string
	FlatColumns []string
	FlatRows    [][]string
	Groups      []export.Group
	Filename    string
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context, filter RangeFilter) (SummaryResponse, error)
	Detailed(ctx context.Context, filter RangeFilter) (DetailedResponse, error)
	Dashboard(ctx context.Context) (DashboardResponse, error)
	Print(ctx context.Context, filter RangeFilter) (PrintResponse, error)

	ExportHistory(ctx context.Context, employeeID *uint) (export.Dataset, string, error)
	ExportSummary(ctx context.Context, filter RangeFilter) (export.Dataset, string, error)
	ExportDetailed(ctx context.Context, filter RangeFilter) (DetailedExport, error)
}

type service struct {
	repo Repository
	sf   *singleflight.Group
}

func NewService(repo Repository) Service {
	return &service{repo: repo, sf: &singleflight.Group{}}
}

// Frequency applies the fixed-denominator attendance percentage,
// rounded to one decimal.
func Frequency(daysWorked int) float64 {
	return math.Round(float64(daysWorked)/frequencyDenominator*100*10) / 10
}

// emptyRange reports whether the filter can match anything. An inverted
// range yields zero rows rather than an error.
func emptyRange(filter RangeFilter) bool {
	return filter.Start.After(filter.End)
}

func (s *service) Summary(ctx context.Context, filter RangeFilter) (SummaryResponse, error) {
	resp := SummaryResponse{
		StartDate: civil.DisplayDate(filter.Start),
		EndDate:   civil.DisplayDate(filter.End),
		Rows:      []SummaryItem{},
	}

	rows, err := s.summaryRows(ctx, filter)
	if err != nil {
		return SummaryResponse{}, err
	}

	for _, row := range rows {
		resp.Rows = append(resp.Rows, SummaryItem{
			Name:           row.Name,
			Function:       row.Function,
			DaysWorked:     row.DaysWorked,
			DaysWithRecord: row.DaysWithRecord,
			TotalPunches:   row.TotalPunches,
			Frequency:      Frequency(row.DaysWorked),
		})
	}

	return resp, nil
}

// summaryRows deduplicates identical concurrent aggregations; the
// summary query is the heaviest one the system runs.
func (s *service) summaryRows(ctx context.Context, filter RangeFilter) ([]SummaryRow, error) {
	if emptyRange(filter) {
		return nil, nil
	}

	key := fmt.Sprintf("summary:%s:%s", civil.ISODate(filter.Start), civil.ISODate(filter.End))
	if filter.EmployeeID != nil {
		key += fmt.Sprintf(":%d", *filter.EmployeeID)
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		return s.repo.Summary(ctx, filter.Start, filter.End, filter.EmployeeID)
	})
	if err != nil {
		return nil, err
	}
	return v.([]SummaryRow), nil
}

func (s *service) Detailed(ctx context.Context, filter RangeFilter) (DetailedResponse, error) {
	if filter.EmployeeID == nil {
		return DetailedResponse{}, reporterrors.ErrEmployeeRequired
	}

	resp := DetailedResponse{
		StartDate: civil.DisplayDate(filter.Start),
		EndDate:   civil.DisplayDate(filter.End),
		Days:      []DateGroup{},
	}

	rows, err := s.detailRows(ctx, filter)
	if err != nil {
		return DetailedResponse{}, err
	}
	if len(rows) == 0 {
		// Unknown employee and empty range look the same here: an
		// empty listing, not an error.
		return resp, nil
	}

	resp.EmployeeName = rows[0].Name
	resp.Function = rows[0].Function

	for _, row := range rows {
		display := civil.DisplayDate(row.Date)
		entry := DetailEntry{
			Type:      row.Type,
			TypeLabel: punch.Type(row.Type).DisplayName(),
			Time:      civil.DisplayTime(row.Time),
			Note:      row.Note,
		}

		n := len(resp.Days)
		if n == 0 || resp.Days[n-1].Date != display {
			resp.Days = append(resp.Days, DateGroup{Date: display})
			n++
		}
		resp.Days[n-1].Entries = append(resp.Days[n-1].Entries, entry)
	}

	return resp, nil
}

func (s *service) detailRows(ctx context.Context, filter RangeFilter) ([]DetailRow, error) {
	if emptyRange(filter) {
		return nil, nil
	}
	return s.repo.Detailed(ctx, filter.Start, filter.End, *filter.EmployeeID)
}

func (s *service) Dashboard(ctx context.Context) (DashboardResponse, error) {
	l := contextutil.GetLogger(ctx, nil)
	today := civil.Today()

	key := "dashboard:" + civil.ISODate(today)
	v, err, _ := s.sf.Do(key, func() (any, error) {
		rows, err := s.repo.DashboardToday(ctx, today)
		if err != nil {
			return nil, err
		}
		total, err := s.repo.CountEmployees(ctx)
		if err != nil {
			return nil, err
		}
		return DashboardResponse{
			Date:           civil.DisplayDate(today),
			TotalEmployees: total,
			Employees:      mapDashboardRows(rows),
		}, nil
	})
	if err != nil {
		l.Error("dashboard aggregation failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	return v.(DashboardResponse), nil
}

func mapDashboardRows(rows []DashboardRow) []DashboardEmployee {
	out := make([]DashboardEmployee, len(rows))
	for i, r := range rows {
		out[i] = DashboardEmployee{
			Name:     r.Name,
			Function: r.Function,
			ClockIn:  r.ClockIn,
			LunchOut: r.LunchOut,
			LunchIn:  r.LunchIn,
			ClockOut: r.ClockOut,
		}
	}
	return out
}

// Print builds the printable per-day sheet for one employee. Unlike the
// detailed listing, a missing employee is a rejection here: the sheet
// has a header block that cannot be rendered without the user row.
func (s *service) Print(ctx context.Context, filter RangeFilter) (PrintResponse, error) {
	if filter.EmployeeID == nil {
		return PrintResponse{}, reporterrors.ErrEmployeeRequired
	}

	info, err := s.repo.FindEmployee(ctx, *filter.EmployeeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return PrintResponse{}, reporterrors.ErrEmployeeNotFound
		}
		return PrintResponse{}, err
	}

	resp := PrintResponse{
		EmployeeName: info.Name,
		Function:     info.Function,
		StartDate:    civil.DisplayDate(filter.Start),
		EndDate:      civil.DisplayDate(filter.End),
		Days:         []PrintDay{},
	}

	rows, err := s.detailRows(ctx, filter)
	if err != nil {
		return PrintResponse{}, err
	}

	for _, row := range rows {
		display := civil.DisplayDate(row.Date)

		n := len(resp.Days)
		if n == 0 || resp.Days[n-1].Date != display {
			resp.Days = append(resp.Days, PrintDay{
				Date:    display,
				Entries: map[string]PrintEntry{},
			})
			n++
		}
		resp.Days[n-1].Entries[row.Type] = PrintEntry{
			Time: civil.DisplayTime(row.Time),
			Note: row.Note,
		}
	}

	return resp, nil
}

func (s *service) ExportHistory(ctx context.Context, employeeID *uint) (export.Dataset, string, error) {
	rows, err := s.repo.HistoryAll(ctx, employeeID)
	if err != nil {
		return export.Dataset{}, "", err
	}
	if len(rows) == 0 {
		return export.Dataset{}, "", reporterrors.ErrNoExportData
	}

	d := export.Dataset{
		Title:   "Histórico de Pontos",
		Columns: []string{"Data", "Funcionário", "Tipo de Ponto", "Horário", "Observação"},
	}
	for _, row := range rows {
		d.Rows = append(d.Rows, []string{
			civil.DisplayDate(row.Date),
			row.Name,
			punch.Type(row.Type).DisplayName(),
			civil.DisplayTime(row.Time),
			noteOrDash(row.Note),
		})
	}

	filename := "historico_todos_funcionarios"
	if employeeID != nil {
		filename = fmt.Sprintf("historico_funcionario_%d", *employeeID)
	}

	return d, filename, nil
}

func (s *service) ExportSummary(ctx context.Context, filter RangeFilter) (export.Dataset, string, error) {
	rows, err := s.summaryRows(ctx, filter)
	if err != nil {
		return export.Dataset{}, "", err
	}
	if len(rows) == 0 {
		return export.Dataset{}, "", reporterrors.ErrNoExportData
	}

	start := civil.DisplayDate(filter.Start)
	end := civil.DisplayDate(filter.End)

	d := export.Dataset{
		Title:  "Relatório de Frequência",
		Period: fmt.Sprintf("Período: %s a %s", start, end),
		Columns: []string{
			"Funcionário", "Função", "Dias Trabalhados",
			"Dias com Registro", "Total de Pontos", "Frequência (%)",
		},
	}
	for _, row := range rows {
		d.Rows = append(d.Rows, []string{
			row.Name,
			row.Function,
			strconv.Itoa(row.DaysWorked),
			strconv.Itoa(row.DaysWithRecord),
			strconv.Itoa(row.TotalPunches),
			strconv.FormatFloat(Frequency(row.DaysWorked), 'f', 1, 64),
		})
	}

	filename := fmt.Sprintf("relatorio_frequencia_%s_a_%s", start, end)
	return d, filename, nil
}

func (s *service) ExportDetailed(ctx context.Context, filter RangeFilter) (DetailedExport, error) {
	detailed, err := s.Detailed(ctx, filter)
	if err != nil {
		return DetailedExport{}, err
	}
	if len(detailed.Days) == 0 {
		return DetailedExport{}, reporterrors.ErrNoExportData
	}

	out := DetailedExport{
		Title:       "Relatório Detalhado - " + detailed.EmployeeName,
		Period:      fmt.Sprintf("Período: %s a %s", detailed.StartDate, detailed.EndDate),
		FlatColumns: []string{"Data", "Funcionário", "Função", "Tipo de Ponto", "Horário", "Observação"},
		Filename: strings.ReplaceAll(
			fmt.Sprintf("relatorio_detalhado_%s_%s_a_%s", detailed.EmployeeName, detailed.StartDate, detailed.EndDate),
			" ", "_",
		),
	}

	groupColumns := []string{"Tipo de Ponto", "Horário", "Observação"}
	for _, day := range detailed.Days {
		group := export.Group{Heading: day.Date, Columns: groupColumns}
		for _, entry := range day.Entries {
			group.Rows = append(group.Rows, []string{
				entry.TypeLabel,
				entry.Time,
				noteOrDash(entry.Note),
			})
			out.FlatRows = append(out.FlatRows, []string{
				day.Date,
				detailed.EmployeeName,
				detailed.Function,
				entry.TypeLabel,
				entry.Time,
				entry.Note,
			})
		}
		out.Groups = append(out.Groups, group)
	}

	return out, nil
}

func noteOrDash(note string) string {
	if note == "" {
		return "-"
	}
	return note
}
