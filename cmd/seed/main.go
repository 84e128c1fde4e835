// cmd/seed populates a development database with a demo account, catalog,
// roster and a conflict-free agenda for the coming week.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"studioflow-backend/config"
	"studioflow-backend/models"
	"studioflow-backend/scheduling"
	"studioflow-backend/utils"
)

const demoEmail = "demo@studioflow.dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.LedgerEntry{},
		&models.TimeBlock{},
		&models.ReminderLog{},
	)

	gofakeit.Seed(time.Now().UnixNano())

	user, err := seedUser()
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}

	services, err := seedServices(user.ID)
	if err != nil {
		log.Fatalf("seed services: %v", err)
	}

	if err := seedClients(user.ID, 25); err != nil {
		log.Fatalf("seed clients: %v", err)
	}

	if err := seedAgenda(user.ID, services, 7); err != nil {
		log.Fatalf("seed agenda: %v", err)
	}

	log.Printf("seed complete, login with %s / demo-password", demoEmail)
}

func seedUser() (*models.User, error) {
	var existing models.User
	if err := config.DB.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		return &existing, nil
	}

	user := models.User{
		Email:        demoEmail,
		Password:     "demo-password",
		Name:         gofakeit.Name(),
		Phone:        gofakeit.Phone(),
		BusinessName: gofakeit.Company(),
		OpeningTime:  scheduling.DefaultOpeningLabel,
		ClosingTime:  scheduling.DefaultClosingLabel,
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func seedServices(userID uuid.UUID) ([]models.Service, error) {
	catalog := []struct {
		name     string
		duration int
		price    float64
	}{
		{"Haircut", 30, 60},
		{"Hair coloring", 90, 180},
		{"Manicure", 60, 45},
		{"Pedicure", 60, 55},
		{"Keratin treatment", 90, 250},
		{"Eyebrow design", 30, 35},
	}

	services := make([]models.Service, 0, len(catalog))
	for _, item := range catalog {
		svc := models.Service{
			UserID:          userID,
			Name:            item.name,
			DurationMinutes: item.duration,
			Price:           item.price,
			IsActive:        true,
		}
		if err := config.DB.Create(&svc).Error; err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}

func seedClients(userID uuid.UUID, count int) error {
	log.Printf("seeding %d clients", count)

	for i := 0; i < count; i++ {
		client := models.Client{
			UserID:   userID,
			Name:     gofakeit.Name(),
			Phone:    fmt.Sprintf("+55119%08d", gofakeit.Number(0, 99999999)),
			IsActive: true,
		}
		if err := config.DB.Create(&client).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedAgenda books random slots over the coming days, using the same
// conflict check as the API so the demo data never violates the
// no-double-booking invariant.
func seedAgenda(userID uuid.UUID, services []models.Service, days int) error {
	log.Printf("seeding agenda for %d days", days)

	slots := scheduling.GenerateSlots(scheduling.DefaultOpening, scheduling.DefaultClosing, scheduling.DefaultStepMinutes)

	for d := 0; d < days; d++ {
		day := utils.BeginningOfDay(time.Now().AddDate(0, 0, d))
		booked := []scheduling.Interval{}

		target := gofakeit.Number(3, 8)
		for attempts := 0; attempts < 40 && len(booked) < target; attempts++ {
			svc := services[gofakeit.Number(0, len(services)-1)]
			duration := scheduling.AllowedDurations[gofakeit.Number(0, len(scheduling.AllowedDurations)-1)]
			start := slots[gofakeit.Number(0, len(slots)-1)]

			candidate := scheduling.Interval{Start: start, DurationMinutes: duration}
			if scheduling.CanPlace(candidate, booked) != nil {
				continue
			}

			appt := models.Appointment{
				UserID:          userID,
				ClientName:      gofakeit.Name(),
				Phone:           fmt.Sprintf("+55119%08d", gofakeit.Number(0, 99999999)),
				ServiceID:       svc.ID,
				ServiceName:     scheduling.ServiceDisplayName(svc.Name, svc.Label, svc.ID.String()),
				DurationMinutes: duration,
				Date:            day,
				StartTime:       start.String(),
				EndTime:         candidate.End().String(),
			}
			if err := config.DB.Create(&appt).Error; err != nil {
				return err
			}
			booked = append(booked, candidate)
		}
	}
	return nil
}
