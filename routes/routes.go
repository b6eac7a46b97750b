package routes

import (
	"punchcard-backend/config"
	"punchcard-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Controllers aggregates the handler sets wired into the router.
type Controllers struct {
	Customers *controllers.CustomerController
	Admin     *controllers.AdminController
}

func SetupRouter(settings *config.Settings, ctrl Controllers) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(settings.CORSOrigins) == 1 && settings.CORSOrigins[0] == "*" {
		// The cors middleware rejects credentials with a wildcard origin.
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = settings.CORSOrigins
	}
	r.Use(cors.New(corsConfig))

	r.Use(config.PerformanceLogger())

	r.GET("/", controllers.Root)
	r.GET("/health", controllers.Health)

	customers := r.Group("/customers")
	{
		customers.POST("/signup", ctrl.Customers.Signup)
		customers.POST("/lookup", ctrl.Customers.Lookup)
		customers.GET("/:id", ctrl.Customers.GetByID)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", ctrl.Admin.Login)
		admin.GET("/customers", ctrl.Admin.ListCustomers)
		admin.POST("/add-punch", ctrl.Admin.AddPunch)
		admin.POST("/redeem-reward", ctrl.Admin.RedeemReward)
		admin.GET("/transactions", ctrl.Admin.ListTransactions)
	}

	return r
}
