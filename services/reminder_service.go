// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"studioflow-backend/models"
	"studioflow-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends an SMS the evening before each booked appointment so
// clients show up. Only accounts with SMSReminders enabled are processed.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

// StartScheduler runs the reminder pass every day at 18:00.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 18 * * *", s.SendDailyReminders); err != nil {
		log.Printf("Failed to schedule reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	var users []models.User
	if err := s.db.Find(&users, "is_active = ? AND sms_reminders = ?", true, true).Error; err != nil {
		log.Printf("Failed to fetch users: %v", err)
		return
	}

	for _, user := range users {
		s.ProcessUserReminders(&user)
	}
}

// ProcessUserReminders messages every uncompleted appointment the user has
// tomorrow, skipping ones already reminded.
func (s *ReminderService) ProcessUserReminders(user *models.User) {
	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	var appointments []models.Appointment
	if err := s.db.
		Where("user_id = ? AND date = ? AND completed = ?", user.ID, tomorrow, false).
		Order("start_time asc").
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch appointments for %s: %v", user.ID, err)
		return
	}

	for _, appt := range appointments {
		if appt.Phone == "" {
			continue
		}

		var already int64
		s.db.Model(&models.ReminderLog{}).
			Where("appointment_id = ? AND status = ?", appt.ID, "sent").
			Count(&already)
		if already > 0 {
			continue
		}

		message := fmt.Sprintf(
			"Hi %s! Reminder: you have %s booked at %s tomorrow (%s). See you there! - %s",
			appt.ClientName, appt.ServiceName, appt.StartTime,
			tomorrow.Format("02/01"), user.BusinessName,
		)

		logEntry := models.ReminderLog{
			UserID:        user.ID,
			AppointmentID: appt.ID,
			Phone:         appt.Phone,
			Message:       message,
			SentAt:        time.Now(),
		}

		if err := s.sendSMS(appt.Phone, message); err != nil {
			log.Printf("Failed to send reminder for appointment %s: %v", appt.ID, err)
			logEntry.Status = "failed"
			logEntry.ErrorMessage = err.Error()
		} else {
			logEntry.Status = "sent"
		}

		if err := s.db.Create(&logEntry).Error; err != nil {
			log.Printf("Failed to log reminder: %v", err)
		}
	}
}

func (s *ReminderService) sendSMS(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
