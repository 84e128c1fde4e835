package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	ClientName string    `gorm:"not null"`
	Phone      string    `gorm:"not null"`
	ServiceID  uuid.UUID `gorm:"type:uuid;index;not null"`
	// ServiceName is copied from the service at create/edit time. It is a
	// point-in-time snapshot and is never refreshed when the service is
	// renamed.
	ServiceName     string `gorm:"not null"`
	DurationMinutes int    `gorm:"not null"`

	Date      time.Time `gorm:"type:date;index;not null"`
	StartTime string    `gorm:"type:varchar(5);not null"` // HH:MM
	EndTime   string    `gorm:"type:varchar(5);not null"` // derived from start + duration

	Completed   bool `gorm:"default:false"`
	CompletedAt *time.Time

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
