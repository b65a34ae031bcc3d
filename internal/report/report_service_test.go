package report_test

import (
	"context"
	"testing"
	"time"

	"go-ponto/internal/report"
	reporterrors "go-ponto/internal/report/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeReportRepository struct {
	summaryFn        func(ctx context.Context, start, end time.Time, employeeID *uint) ([]report.SummaryRow, error)
	detailedFn       func(ctx context.Context, start, end time.Time, employeeID uint) ([]report.DetailRow, error)
	dashboardTodayFn func(ctx context.Context, date time.Time) ([]report.DashboardRow, error)
	countEmployeesFn func(ctx context.Context) (int64, error)
	findEmployeeFn   func(ctx context.Context, id uint) (*report.EmployeeInfo, error)
	historyAllFn     func(ctx context.Context, employeeID *uint) ([]report.DetailRow, error)
}

func (f *fakeReportRepository) Summary(ctx context.Context, start, end time.Time, employeeID *uint) ([]report.SummaryRow, error) {
	if f.summaryFn != nil {
		return f.summaryFn(ctx, start, end, employeeID)
	}
	return nil, nil
}

func (f *fakeReportRepository) Detailed(ctx context.Context, start, end time.Time, employeeID uint) ([]report.DetailRow, error) {
	if f.detailedFn != nil {
		return f.detailedFn(ctx, start, end, employeeID)
	}
	return nil, nil
}

func (f *fakeReportRepository) DashboardToday(ctx context.Context, date time.Time) ([]report.DashboardRow, error) {
	if f.dashboardTodayFn != nil {
		return f.dashboardTodayFn(ctx, date)
	}
	return nil, nil
}

func (f *fakeReportRepository) CountEmployees(ctx context.Context) (int64, error) {
	if f.countEmployeesFn != nil {
		return f.countEmployeesFn(ctx)
	}
	return 0, nil
}

func (f *fakeReportRepository) FindEmployee(ctx context.Context, id uint) (*report.EmployeeInfo, error) {
	if f.findEmployeeFn != nil {
		return f.findEmployeeFn(ctx, id)
	}
	return &report.EmployeeInfo{}, nil
}

func (f *fakeReportRepository) HistoryAll(ctx context.Context, employeeID *uint) ([]report.DetailRow, error) {
	if f.historyAllFn != nil {
		return f.historyAllFn(ctx, employeeID)
	}
	return nil, nil
}

func day(dayOfMonth int) time.Time {
	return time.Date(2026, time.September, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func TestFrequency_FixedDenominator(t *testing.T) {
	assert.Equal(t, 0.0, report.Frequency(0))
	assert.Equal(t, 30.0, report.Frequency(9))
	assert.Equal(t, 43.3, report.Frequency(13))
	assert.Equal(t, 100.0, report.Frequency(30))
	// A month with more clock-in days than the base exceeds 100.
	assert.Equal(t, 103.3, report.Frequency(31))
}

func TestSummary_MapsRowsAndComputesFrequency(t *testing.T) {
	repo := &fakeReportRepository{
		summaryFn: func(ctx context.Context, start, end time.Time, employeeID *uint) ([]report.SummaryRow, error) {
			return []report.SummaryRow{
				{UserID: 2, Name: "Ana", Function: "Analista", DaysWorked: 3, DaysWithRecord: 4, TotalPunches: 13},
				{UserID: 5, Name: "Bruno", Function: "Técnico", DaysWorked: 0, DaysWithRecord: 0, TotalPunches: 0},
			}, nil
		},
	}
	svc := report.NewService(repo)

	resp, err := svc.Summary(context.Background(), report.RangeFilter{Start: day(1), End: day(30)})
	assert.NoError(t, err)
	assert.Equal(t, "01-09-2026", resp.StartDate)
	assert.Equal(t, "30-09-2026", resp.EndDate)
	assert.Len(t, resp.Rows, 2)

	ana := resp.Rows[0]
	assert.Equal(t, 3, ana.DaysWorked)
	assert.Equal(t, 4, ana.DaysWithRecord)
	assert.Equal(t, 10.0, ana.Frequency)

	assert.Equal(t, 0.0, resp.Rows[1].Frequency)
}

func TestSummary_InvertedRangeSkipsQuery(t *testing.T) {
	repo := &fakeReportRepository{
		summaryFn: func(ctx context.Context, start, end time.Time, employeeID *uint) ([]report.SummaryRow, error) {
			t.Fatal("an inverted range must not reach the database")
			return nil, nil
		},
	}
	svc := report.NewService(repo)

	resp, err := svc.Summary(context.Background(), report.RangeFilter{Start: day(30), End: day(1)})
	assert.NoError(t, err)
	assert.Empty(t, resp.Rows)
}

func TestDetailed_GroupsByDatePreservingOrder(t *testing.T) {
	id := uint(2)
	repo := &fakeReportRepository{
		detailedFn: func(ctx context.Context, start, end time.Time, employeeID uint) ([]report.DetailRow, error) {
			assert.Equal(t, uint(2), employeeID)
			return []report.DetailRow{
				{Date: day(1), Type: "clock_in", Time: "08:00:00", Name: "Ana", Function: "Analista"},
				{Date: day(1), Type: "lunch_out", Time: "12:00:00", Name: "Ana", Function: "Analista"},
				{Date: day(2), Type: "clock_in", Time: "08:05:00", Note: "trânsito", Name: "Ana", Function: "Analista"},
			}, nil
		},
	}
	svc := report.NewService(repo)

	resp, err := svc.Detailed(context.Background(), report.RangeFilter{Start: day(1), End: day(30), EmployeeID: &id})
	assert.NoError(t, err)
	assert.Equal(t, "Ana", resp.EmployeeName)
	assert.Len(t, resp.Days, 2)

	assert.Equal(t, "01-09-2026", resp.Days[0].Date)
	assert.Len(t, resp.Days[0].Entries, 2)
	assert.Equal(t, "Entrada", resp.Days[0].Entries[0].TypeLabel)
	assert.Equal(t, "08:00", resp.Days[0].Entries[0].Time)

	assert.Equal(t, "02-09-2026", resp.Days[1].Date)
	assert.Equal(t, "trânsito", resp.Days[1].Entries[0].Note)
}

func TestDetailed_RequiresEmployee(t *testing.T) {
	svc := report.NewService(&fakeReportRepository{})

	_, err := svc.Detailed(context.Background(), report.RangeFilter{Start: day(1), End: day(30)})
	assert.ErrorIs(t, err, reporterrors.ErrEmployeeRequired)
}

func TestDetailed_UnknownEmployeeIsEmptyListing(t *testing.T) {
	id := uint(404)
	svc := report.NewService(&fakeReportRepository{})

	resp, err := svc.Detailed(context.Background(), report.RangeFilter{Start: day(1), End: day(30), EmployeeID: &id})
	assert.NoError(t, err)
	assert.Empty(t, resp.Days)
	assert.Empty(t, resp.EmployeeName)
}

func TestDashboard_CombinesCountsAndTotal(t *testing.T) {
	repo := &fakeReportRepository{
		dashboardTodayFn: func(ctx context.Context, date time.Time) ([]report.DashboardRow, error) {
			return []report.DashboardRow{
				{Name: "Ana", Function: "Analista", ClockIn: 1, LunchOut: 1},
			}, nil
		},
		countEmployeesFn: func(ctx context.Context) (int64, error) { return 12, nil },
	}
	svc := report.NewService(repo)

	resp, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(12), resp.TotalEmployees)
	assert.Len(t, resp.Employees, 1)
	assert.Equal(t, 1, resp.Employees[0].ClockIn)
	assert.Equal(t, 0, resp.Employees[0].ClockOut)
}

func TestPrint_UnknownEmployeeRejected(t *testing.T) {
	id := uint(404)
	repo := &fakeReportRepository{
		findEmployeeFn: func(ctx context.Context, lookupID uint) (*report.EmployeeInfo, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := report.NewService(repo)

	_, err := svc.Print(context.Background(), report.RangeFilter{Start: day(1), End: day(30), EmployeeID: &id})
	assert.ErrorIs(t, err, reporterrors.ErrEmployeeNotFound)
}

func TestPrint_KeysEntriesByType(t *testing.T) {
	id := uint(2)
	repo := &fakeReportRepository{
		findEmployeeFn: func(ctx context.Context, lookupID uint) (*report.EmployeeInfo, error) {
			return &report.EmployeeInfo{Name: "Ana", Function: "Analista"}, nil
		},
		detailedFn: func(ctx context.Context, start, end time.Time, employeeID uint) ([]report.DetailRow, error) {
			return []report.DetailRow{
				{Date: day(1), Type: "clock_in", Time: "08:00:00"},
				{Date: day(1), Type: "clock_out", Time: "17:30:00", Note: "saída antecipada"},
			}, nil
		},
	}
	svc := report.NewService(repo)

	resp, err := svc.Print(context.Background(), report.RangeFilter{Start: day(1), End: day(30), EmployeeID: &id})
	assert.NoError(t, err)
	assert.Equal(t, "Ana", resp.EmployeeName)
	assert.Len(t, resp.Days, 1)

	entries := resp.Days[0].Entries
	assert.Equal(t, "08:00", entries["clock_in"].Time)
	assert.Equal(t, "17:30", entries["clock_out"].Time)
	assert.Equal(t, "saída antecipada", entries["clock_out"].Note)
	_, hasLunch := entries["lunch_out"]
	assert.False(t, hasLunch)
}

func TestExportHistory_EmptyDataRejected(t *testing.T) {
	svc := report.NewService(&fakeReportRepository{})

	_, _, err := svc.ExportHistory(context.Background(), nil)
	assert.ErrorIs(t, err, reporterrors.ErrNoExportData)
}

func TestExportHistory_BuildsDisplayRows(t *testing.T) {
	repo := &fakeReportRepository{
		historyAllFn: func(ctx context.Context, employeeID *uint) ([]report.DetailRow, error) {
			return []report.DetailRow{
				{Date: day(2), Type: "clock_in", Time: "08:05:00", Name: "Ana"},
				{Date: day(1), Type: "clock_out", Time: "17:00:00", Note: "ok", Name: "Ana"},
			}, nil
		},
	}
	svc := report.NewService(repo)

	dataset, filename, err := svc.ExportHistory(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "historico_todos_funcionarios", filename)
	assert.Equal(t, []string{"Data", "Funcionário", "Tipo de Ponto", "Horário", "Observação"}, dataset.Columns)
	assert.Equal(t, []string{"02-09-2026", "Ana", "Entrada", "08:05", "-"}, dataset.Rows[0])
	assert.Equal(t, []string{"01-09-2026", "Ana", "Saída Final", "17:00", "ok"}, dataset.Rows[1])
}

func TestExportHistory_SingleEmployeeFilename(t *testing.T) {
	id := uint(2)
	repo := &fakeReportRepository{
		historyAllFn: func(ctx context.Context, employeeID *uint) ([]report.DetailRow, error) {
			if assert.NotNil(t, employeeID) {
				assert.Equal(t, uint(2), *employeeID)
			}
			return []report.DetailRow{{Date: day(1), Type: "clock_in", Time: "08:00:00", Name: "Ana"}}, nil
		},
	}
	svc := report.NewService(repo)

	_, filename, err := svc.ExportHistory(context.Background(), &id)
	assert.NoError(t, err)
	assert.Equal(t, "historico_funcionario_2", filename)
}

func TestExportSummary_FormatsFrequencyWithOneDecimal(t *testing.T) {
	repo := &fakeReportRepository{
		summaryFn: func(ctx context.Context, start, end time.Time, employeeID *uint) ([]report.SummaryRow, error) {
			return []report.SummaryRow{
				{Name: "Ana", Function: "Analista", DaysWorked: 9, DaysWithRecord: 9, TotalPunches: 36},
			}, nil
		},
	}
	svc := report.NewService(repo)

	dataset, filename, err := svc.ExportSummary(context.Background(), report.RangeFilter{Start: day(1), End: day(30)})
	assert.NoError(t, err)
	assert.Equal(t, "relatorio_frequencia_01-09-2026_a_30-09-2026", filename)
	assert.Equal(t, "Relatório de Frequência", dataset.Title)
	assert.Equal(t, []string{"Ana", "Analista", "9", "9", "36", "30.0"}, dataset.Rows[0])
}

func TestExportDetailed_BuildsGroupsAndFlatRows(t *testing.T) {
	id := uint(2)
	repo := &fakeReportRepository{
		detailedFn: func(ctx context.Context, start, end time.Time, employeeID uint) ([]report.DetailRow, error) {
			return []report.DetailRow{
				{Date: day(1), Type: "clock_in", Time: "08:00:00", Name: "Ana Souza", Function: "Analista"},
				{Date: day(2), Type: "clock_in", Time: "08:10:00", Name: "Ana Souza", Function: "Analista"},
			}, nil
		},
	}
	svc := report.NewService(repo)

	out, err := svc.ExportDetailed(context.Background(), report.RangeFilter{Start: day(1), End: day(30), EmployeeID: &id})
	assert.NoError(t, err)
	assert.Equal(t, "Relatório Detalhado - Ana Souza", out.Title)
	assert.Equal(t, "relatorio_detalhado_Ana_Souza_01-09-2026_a_30-09-2026", out.Filename)
	assert.Len(t, out.Groups, 2)
	assert.Equal(t, "01-09-2026", out.Groups[0].Heading)
	assert.Len(t, out.FlatRows, 2)
	assert.Equal(t, []string{"01-09-2026", "Ana Souza", "Analista", "Entrada", "08:00", ""}, out.FlatRows[0])
}

func TestExportDetailed_NoDataRejected(t *testing.T) {
	id := uint(2)
	svc := report.NewService(&fakeReportRepository{})

	_, err := svc.ExportDetailed(context.Background(), report.RangeFilter{Start: day(1), End: day(30), EmployeeID: &id})
	assert.ErrorIs(t, err, reporterrors.ErrNoExportData)
}
