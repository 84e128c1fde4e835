package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studioflow-backend/utils"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Phone    string

	// Business profile and agenda settings. One user == one studio == one
	// data partition; every other record carries this user's ID.
	BusinessName string
	OpeningTime  string `gorm:"type:varchar(5);default:'08:00'"` // HH:MM
	ClosingTime  string `gorm:"type:varchar(5);default:'20:00'"` // HH:MM
	SMSReminders bool   `gorm:"default:false"`

	Clients      []Client      `gorm:"foreignKey:UserID"`
	Services     []Service     `gorm:"foreignKey:UserID"`
	Appointments []Appointment `gorm:"foreignKey:UserID"`

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
