package router

import (
	"github.com/gin-gonic/gin"

	"chayen/internal/domain"
	"chayen/internal/handler"
	"chayen/internal/middleware"
	"chayen/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	parseH *handler.ParseHandler,
	orderH *handler.OrderHandler,
	catalogH *handler.CatalogHandler,
	staffH *handler.StaffHandler,
	userH *handler.UserHandler,
	shopH *handler.ShopHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Order capture
	protected.POST("/parse", parseH.Parse)
	orders := protected.Group("/orders")
	orders.POST("", orderH.Confirm)
	orders.GET("", orderH.List)
	orders.GET("/:id", orderH.Get)

	// Catalog: reads for everyone, writes for admins
	products := protected.Group("/products")
	products.GET("", catalogH.ListProducts)
	products.POST("", middleware.RequireRole(domain.RoleAdmin), catalogH.CreateProduct)
	products.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), catalogH.UpdateProduct)
	products.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), catalogH.DeleteProduct)

	toppings := protected.Group("/toppings")
	toppings.GET("", catalogH.ListToppings)
	toppings.POST("", middleware.RequireRole(domain.RoleAdmin), catalogH.CreateTopping)
	toppings.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), catalogH.UpdateTopping)
	toppings.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), catalogH.DeleteTopping)

	// Staff roster
	staffs := protected.Group("/staffs")
	staffs.GET("", staffH.List)
	staffs.POST("", middleware.RequireRole(domain.RoleAdmin), staffH.Create)
	staffs.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), staffH.Update)
	staffs.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), staffH.Delete)

	// Shop open/close
	shop := protected.Group("/shop")
	shop.GET("/status", shopH.Status)
	shop.POST("/open", middleware.RequireRole(domain.RoleAdmin), shopH.Open)
	shop.POST("/close", middleware.RequireRole(domain.RoleAdmin), shopH.Close)

	// Daily reports
	reports := protected.Group("/reports")
	reports.GET("/daily", reportH.Daily)
	reports.GET("/daily/export", reportH.Export)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/users", userH.Create)
	admin.GET("/users", userH.List)
	admin.PUT("/users/:id", userH.Update)
	admin.DELETE("/users/:id", userH.Delete)
	admin.DELETE("/orders", orderH.DeleteByDate)

	return r
}
