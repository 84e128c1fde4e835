package main

import (
	"fmt"
	"log"
	"os"

	"studioflow-backend/config"
	"studioflow-backend/models"
	"studioflow-backend/routes"
	"studioflow-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
	config.ConnectRedis()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.LedgerEntry{},
		&models.TimeBlock{},
		&models.ReminderLog{},
	)
}

func main() {
	services.NewReminderService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
