package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"punchcard-backend/config"
	"punchcard-backend/controllers"
	"punchcard-backend/models"
	"punchcard-backend/routes"
	"punchcard-backend/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	settings := config.LoadSettings()

	db, err := config.ConnectDB(settings.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Transaction{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	customers := store.NewGormCustomerStore(db)
	transactions := store.NewGormTransactionStore(db)

	r := routes.SetupRouter(settings, routes.Controllers{
		Customers: controllers.NewCustomerController(customers, transactions),
		Admin:     controllers.NewAdminController(customers, transactions, settings),
	})
	printRoutes(r)

	if err := r.Run(":" + settings.Port); err != nil {
		log.Fatal(err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
