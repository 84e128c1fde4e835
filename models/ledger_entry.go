package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger entry directions
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// CategoryService tags entries produced by the appointment completion
// workflow. Manual entries may use any of the other categories.
const CategoryService = "service"

var LedgerCategories = []string{CategoryService, "product", "chemicals", "nails", "other"}

// LedgerEntry is a single cash-flow record. Entries are immutable once
// created; the only mutation allowed is deleting the row as a whole.
type LedgerEntry struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Amount    float64 `gorm:"type:decimal(10,2);not null"`
	Direction string  `gorm:"type:varchar(3);not null"` // in | out
	Category  string  `gorm:"type:varchar(20);not null"`
	Note      string

	// Back-references for entries created by completing an appointment.
	AppointmentID *uuid.UUID `gorm:"type:uuid;index"`
	ServiceID     *uuid.UUID `gorm:"type:uuid"`
	ClientName    string

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
