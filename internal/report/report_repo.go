package report

import (
	"context"
	"time"

	"go-ponto/internal/user"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	Summary(ctx context.Context, start, end time.Time, employeeID *uint) ([]SummaryRow, error)
	Detailed(ctx context.Context, start, end time.Time, employeeID uint) ([]DetailRow, error)
	DashboardToday(ctx context.Context, date time.Time) ([]DashboardRow, error)
	CountEmployees(ctx context.Context) (int64, error)
	FindEmployee(ctx context.Context, id uint) (*EmployeeInfo, error)
	HistoryAll(ctx context.Context, employeeID *uint) ([]DetailRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const isoDate = "2006-01-02"

// Summary keeps the LEFT JOIN so employees without punches in range
// still appear with zero counts. Days worked counts distinct dates that
// have a clock-in; days with record counts distinct dates with any type.
func (r *repository) Summary(ctx context.Context, start, end time.Time, employeeID *uint) ([]SummaryRow, error) {
	var rows []SummaryRow

	q := `
		SELECT u.id AS user_id, u.name, u.function,
		       COUNT(DISTINCT CASE WHEN p.type = 'clock_in' THEN p.date END) AS days_worked,
		       COUNT(DISTINCT p.date) AS days_with_record,
		       COUNT(p.id) AS total_punches
		FROM users u
		LEFT JOIN punches p ON p.user_id = u.id AND p.date BETWEEN ? AND ?`

	args := []any{start.Format(isoDate), end.Format(isoDate)}

	if employeeID != nil {
		q += `
		WHERE u.id = ?`
		args = append(args, *employeeID)
	} else {
		q += `
		WHERE u.role = ?`
		args = append(args, user.RoleEmployee)
	}

	q += `
		GROUP BY u.id, u.name, u.function
		ORDER BY u.name ASC`

	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error
	return rows, err
}

func (r *repository) Detailed(ctx context.Context, start, end time.Time, employeeID uint) ([]DetailRow, error) {
	var rows []DetailRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT p.date, p.type, p.time, p.note, u.name, u.function
		FROM punches p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = ? AND p.date BETWEEN ? AND ?
		ORDER BY p.date ASC, p.time ASC`,
		employeeID, start.Format(isoDate), end.Format(isoDate),
	).Scan(&rows).Error
	return rows, err
}

func (r *repository) DashboardToday(ctx context.Context, date time.Time) ([]DashboardRow, error) {
	var rows []DashboardRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT u.name, u.function,
		       COUNT(CASE WHEN p.type = 'clock_in' THEN 1 END) AS clock_in,
		       COUNT(CASE WHEN p.type = 'lunch_out' THEN 1 END) AS lunch_out,
		       COUNT(CASE WHEN p.type = 'lunch_in' THEN 1 END) AS lunch_in,
		       COUNT(CASE WHEN p.type = 'clock_out' THEN 1 END) AS clock_out
		FROM users u
		LEFT JOIN punches p ON p.user_id = u.id AND p.date = ?
		WHERE u.role = ?
		GROUP BY u.id, u.name, u.function
		ORDER BY u.name ASC`,
		date.Format(isoDate), user.RoleEmployee,
	).Scan(&rows).Error
	return rows, err
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("role = ?", user.RoleEmployee).
		Count(&count).Error
	return count, err
}

func (r *repository) FindEmployee(ctx context.Context, id uint) (*EmployeeInfo, error) {
	var info EmployeeInfo
	err := r.db.WithContext(ctx).
		Model(&user.User{}).
		Select("name", "function").
		Where("id = ?", id).
		First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// HistoryAll feeds the history export: every punch, newest first, for
// one employee or for all employee-role users.
func (r *repository) HistoryAll(ctx context.Context, employeeID *uint) ([]DetailRow, error) {
	var rows []DetailRow

	q := `
		SELECT p.date, p.type, p.time, p.note, u.name, u.function
		FROM punches p
		JOIN users u ON u.id = p.user_id`

	var args []any
	if employeeID != nil {
		q += `
		WHERE p.user_id = ?`
		args = append(args, *employeeID)
	} else {
		q += `
		WHERE u.role = ?`
		args = append(args, user.RoleEmployee)
	}

	q += `
		ORDER BY p.date DESC, p.time DESC`

	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error
	return rows, err
}
