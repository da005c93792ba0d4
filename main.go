package main

import (
	"fmt"
	"log"
	"os"

	"bizops-backend/config"
	"bizops-backend/models"
	"bizops-backend/routes"
	"bizops-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.PurchaseOrder{},
		&models.Invoice{},
		&models.Payment{},
		&models.Agreement{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	renewals := services.NewRenewalService(db, services.NotifierFromEnv())
	renewals.Start()
	renewals.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db, renewals)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
