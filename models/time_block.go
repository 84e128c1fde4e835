package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeBlock reserves a time range on a given day so the agenda shows it as
// unavailable (lunch break, personal errand). Appointments may not overlap a
// block.
type TimeBlock struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Date      time.Time `gorm:"type:date;index;not null"`
	StartTime string    `gorm:"type:varchar(5);not null"` // HH:MM
	EndTime   string    `gorm:"type:varchar(5);not null"`
	Reason    string

	gorm.Model
}

func (b *TimeBlock) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
