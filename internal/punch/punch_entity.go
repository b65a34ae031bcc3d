package punch

import (
	"time"
)

// Type is one of the four daily clock events.
type Type string

const (
	TypeClockIn  Type = "clock_in"
	TypeLunchOut Type = "lunch_out"
	TypeLunchIn  Type = "lunch_in"
	TypeClockOut Type = "clock_out"
)

// DisplayName returns the presentation label used on screens and exports.
func (t Type) DisplayName() string {
	switch t {
	case TypeClockIn:
		return "Entrada"
	case TypeLunchOut:
		return "Saída Almoço"
	case TypeLunchIn:
		return "Volta Almoço"
	case TypeClockOut:
		return "Saída Final"
	default:
		return string(t)
	}
}

// Punch is one immutable ledger row. The composite unique index is the
// storage-level backstop for the once-per-type-per-day invariant; the
// sequencer check in the service is only the first line of defense.
type Punch struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    uint      `gorm:"column:user_id;not null;index;uniqueIndex:uq_punches_user_date_type"`
	Date      time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_punches_user_date_type"`
	Type      Type      `gorm:"column:type;type:varchar(20);not null;uniqueIndex:uq_punches_user_date_type"`
	Time      string    `gorm:"column:time;type:time;not null"`
	Note      string    `gorm:"column:note;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	User      *UserRef  `gorm:"foreignKey:UserID;references:ID"`
}

func (Punch) TableName() string {
	return "punches"
}

// UserRef joins the minimal owner fields needed for listings.
type UserRef struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"column:name"`
	Function string `gorm:"column:function"`
}

func (UserRef) TableName() string {
	return "users"
}
