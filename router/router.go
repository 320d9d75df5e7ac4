package router

import (
	"log"

	"memberly/config"
	"memberly/controllers"
	"memberly/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares.
// Public API + check-in page + admin routes (token required).
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// Check-in por QR (página HTML, fora do /api)
	r.GET("/checkin/:memberId", Logger(), controllers.CheckinHandler(cfg))

	api := r.Group("/api")

	// Public (frontend de vendas e dashboard)
	api.GET("/plans", Logger(), controllers.GetPlans)
	api.GET("/plans/:id", Logger(), controllers.GetPlanByID)

	api.GET("/members", Logger(), controllers.GetMembers)
	api.POST("/members", Logger(), controllers.CreateMember(cfg))

	api.POST("/chat", Logger(), controllers.Chat)

	api.POST("/payments/link", Logger(), controllers.GeneratePaymentLink(cfg))

	// Admin routes (X-Admin-Token)
	admin := api.Group("")
	admin.Use(controllers.AdminRequired(cfg))

	admin.GET("/tenants", Logger(), controllers.GetTenants)
	admin.POST("/tenants", Logger(), controllers.CreateTenant)

	admin.POST("/plans", Logger(), controllers.CreatePlan)
	admin.PUT("/plans/:id", Logger(), controllers.UpdatePlan)
	admin.DELETE("/plans/:id", Logger(), controllers.DeletePlan)

	log.Printf("Routes initialized")
}
