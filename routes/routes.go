package routes

import (
	"os"
	"strings"

	"studioflow-backend/config"
	"studioflow-backend/controllers"
	"studioflow-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())
	r.Use(config.MetricsMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Agenda routes
		api.GET("/agenda", controllers.GetAgenda)

		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
			appointments.POST("/:id/complete", controllers.CompleteAppointment)
		}

		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Ledger routes
		ledger := api.Group("/ledger")
		{
			ledger.POST("", controllers.CreateLedgerEntry)
			ledger.GET("", controllers.GetLedgerEntries)
			ledger.GET("/summary", controllers.GetLedgerSummary)
			ledger.DELETE("/:id", controllers.DeleteLedgerEntry)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Settings routes
		settings := api.Group("/settings")
		{
			settings.GET("", controllers.GetSettings)
			settings.PUT("", controllers.UpdateSettings)
			settings.POST("/blocks", controllers.CreateTimeBlock)
			settings.DELETE("/blocks/:id", controllers.DeleteTimeBlock)
		}
	}

	return r
}
