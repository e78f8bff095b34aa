package main

import (
	"log"
	"os"
	"time"

	"admin-service/internal/auth"
	"admin-service/internal/db"
	"admin-service/internal/event"
	"admin-service/internal/gateway"
	"admin-service/internal/handlers"
	"admin-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	db.InitMongo(mongoURI)
	defer db.Disconnect()

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "admin_service"
	}

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, admin events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Session capability, gateway, engine, handlers
	authService := auth.New(jwtSecret, adminEmail, adminPassword)
	gw := gateway.NewMongoGateway(db.Client.Database(dbName), authService)
	engine := service.NewAdminService(gw)

	authHandler := handlers.NewAuthHandler(authService)
	purchaseHandler := handlers.NewPurchaseHandler(engine)
	resultHandler := handlers.NewResultHandler(engine)
	analyticsHandler := handlers.NewAnalyticsHandler(engine)
	settingsHandler := handlers.NewSettingsHandler(engine)

	public := r.Group("/public/admin")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
		public.POST("/login", authHandler.Login)
	}

	protected := r.Group("/protected/admin")
	protected.Use(authService.Middleware())
	{
		protected.POST("/logout", authHandler.Logout)

		protected.GET("/purchases", purchaseHandler.ListPurchases)

		protected.GET("/bookings", purchaseHandler.ListBookings)
		protected.GET("/bookings/export", purchaseHandler.ExportBookingsCSV)
		protected.PUT("/bookings/:userId/:id", func(c *gin.Context) {
			purchaseHandler.UpdateBooking(c)
			if publisher != nil {
				publisher.Publish("admin.booking.updated", gin.H{
					"user_id":     c.Param("userId"),
					"purchase_id": c.Param("id"),
					"timestamp":   time.Now(),
				})
			}
		})

		protected.GET("/results", resultHandler.ListResults)
		protected.GET("/results/export", func(c *gin.Context) {
			resultHandler.ExportResultsCSV(c)
			if publisher != nil {
				publisher.Publish("admin.results.exported", gin.H{"format": "csv", "timestamp": time.Now()})
			}
		})
		protected.GET("/results/export/xlsx", func(c *gin.Context) {
			resultHandler.ExportResultsXLSX(c)
			if publisher != nil {
				publisher.Publish("admin.results.exported", gin.H{"format": "xlsx", "timestamp": time.Now()})
			}
		})

		protected.GET("/analytics/revenue", analyticsHandler.Revenue)
		protected.GET("/analytics/categories", analyticsHandler.Categories)
		protected.GET("/analytics/trend", analyticsHandler.Trend)

		protected.GET("/settings", settingsHandler.GetSettings)
		protected.PUT("/settings", func(c *gin.Context) {
			settingsHandler.UpdateSettings(c)
			if publisher != nil {
				publisher.Publish("admin.settings.updated", gin.H{"timestamp": time.Now()})
			}
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8086"
	}
	r.Run(":" + port)
}
