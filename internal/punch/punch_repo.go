package punch

import (
	"context"
	"database/sql"
	"time"

	"go-ponto/internal/user"

	"gorm.io/gorm"
)

// History listings are capped; the reporting engine is the place for
// unbounded ranges.
const historyLimit = 100

type HistoryFilter struct {
	// UserID restricts the listing to one employee; nil means every
	// employee-role user.
	UserID *uint
}

//go:generate mockgen -source=punch_repo.go -destination=mock/punch_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Punch) error
	FindTypesByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]Type, error)
	FindByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]Punch, error)
	History(ctx context.Context, filter HistoryFilter) ([]Punch, error)
	FindUserRef(ctx context.Context, userID uint) (*UserRef, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, p *Punch) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindTypesByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]Type, error) {
	var types []Type
	err := r.db.WithContext(ctx).
		Model(&Punch{}).
		Where("user_id = ?", userID).
		Where("date = ?", date.Format("2006-01-02")).
		Order("time ASC").
		Pluck("type", &types).Error
	return types, err
}

func (r *repository) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date = ?", date.Format("2006-01-02")).
		Order("time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) History(ctx context.Context, filter HistoryFilter) ([]Punch, error) {
	var rows []Punch

	q := r.db.WithContext(ctx).
		Preload("User").
		Order("date DESC, time DESC").
		Limit(historyLimit)

	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	} else {
		q = q.Where("user_id IN (?)",
			r.db.Model(&user.User{}).Select("id").Where("role = ?", user.RoleEmployee))
	}

	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindUserRef(ctx context.Context, userID uint) (*UserRef, error) {
	var ref UserRef
	err := r.db.WithContext(ctx).First(&ref, "id = ?", userID).Error
	return &ref, err
}
