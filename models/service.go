package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name string `gorm:"not null"`
	// Label is an optional short display name shown on the agenda; older
	// records may carry only this field.
	Label           string
	DurationMinutes int     `gorm:"default:30"`
	Price           float64 `gorm:"type:decimal(10,2);not null"`
	IsActive        bool    `gorm:"default:true"`

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
