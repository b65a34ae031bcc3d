package punch

import (
	"context"
	"database/sql"

	puncherrors "go-ponto/internal/punch/errors"
	"go-ponto/internal/shared/civil"
	"go-ponto/internal/shared/contextutil"
	"go-ponto/internal/user"

	"go.uber.org/zap"
)

//go:generate mockgen -source=punch_service.go -destination=mock/punch_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, userID uint, req RegisterPunchRequest) (PunchResponse, error)
	Today(ctx context.Context, userID uint) (TodayResponse, error)
	History(ctx context.Context, actorID uint, role string, employeeID *uint) (HistoryResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

// Register appends today's next punch for the acting employee. The
// sequencer gate runs inside a transaction, but the unique index on
// (user_id, date, type) is what actually guarantees once-per-type when
// two requests race past the gate together.
func (s *service) Register(ctx context.Context, userID uint, req RegisterPunchRequest) (PunchResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PunchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	today := civil.Today()
	now := civil.Now()

	recorded, err := qtx.FindTypesByUserAndDate(ctx, userID, today)
	if err != nil {
		return PunchResponse{}, mapRepositoryError(err)
	}

	next, ok := NextType(recorded)
	if !ok {
		return PunchResponse{}, puncherrors.ErrDayComplete
	}

	row := &Punch{
		UserID: userID,
		Date:   today,
		Type:   next,
		Time:   civil.ClockTime(now),
		Note:   req.Note,
	}

	if err := qtx.Create(ctx, row); err != nil {
		l.Warn("punch insert rejected", zap.Uint("user_id", userID), zap.Error(err))
		return PunchResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PunchResponse{}, err
	}

	l.Info("punch recorded",
		zap.Uint("user_id", userID),
		zap.String("type", string(next)),
		zap.String("time", row.Time),
	)
	return mapToResponse(*row), nil
}

// Today returns the day's punches plus the next expected type.
func (s *service) Today(ctx context.Context, userID uint) (TodayResponse, error) {
	today := civil.Today()

	rows, err := s.repo.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		return TodayResponse{}, mapRepositoryError(err)
	}

	types := make([]Type, len(rows))
	punches := make([]PunchResponse, len(rows))
	for i, p := range rows {
		types[i] = p.Type
		punches[i] = mapToResponse(p)
	}

	resp := TodayResponse{
		Date:    civil.DisplayDate(today),
		Punches: punches,
	}

	if next, ok := NextType(types); ok {
		label := next.DisplayName()
		resp.NextPunch = &label
	} else {
		resp.Complete = true
	}

	return resp, nil
}

// History lists recent punches, newest first. Employees only ever see
// their own; admins see everyone or a selected employee.
func (s *service) History(ctx context.Context, actorID uint, role string, employeeID *uint) (HistoryResponse, error) {
	filter := HistoryFilter{}
	name := "Todos os Funcionários"

	if role != user.RoleAdmin {
		filter.UserID = &actorID
	} else if employeeID != nil {
		filter.UserID = employeeID
	}

	if filter.UserID != nil {
		ref, err := s.repo.FindUserRef(ctx, *filter.UserID)
		if err != nil {
			return HistoryResponse{}, mapRepositoryError(err)
		}
		name = ref.Name
	}

	rows, err := s.repo.History(ctx, filter)
	if err != nil {
		return HistoryResponse{}, mapRepositoryError(err)
	}

	items := make([]HistoryItem, len(rows))
	for i, p := range rows {
		items[i] = HistoryItem{
			Date:      civil.DisplayDate(p.Date),
			Type:      string(p.Type),
			TypeLabel: p.Type.DisplayName(),
			Time:      civil.DisplayTime(p.Time),
			Note:      p.Note,
		}
		if p.User != nil {
			items[i].EmployeeName = p.User.Name
		}
	}

	return HistoryResponse{EmployeeName: name, Punches: items}, nil
}

func mapToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:        p.ID,
		Date:      civil.DisplayDate(p.Date),
		Type:      string(p.Type),
		TypeLabel: p.Type.DisplayName(),
		Time:      p.Time,
		Note:      p.Note,
	}
}
