package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/config"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/middleware"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/services"
)

// SetupRouter wires every handler onto a gin engine. Route access is split
// three ways: login and health are public, /auth/me and /employees/me need
// only a valid token, and everything else needs the HR or Admin role.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	importService := services.NewImportService(db)
	authHandler := NewAuthHandler(services.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpireHours))
	employeeHandler := NewEmployeeHandler(services.NewEmployeeService(db), importService)
	assetHandler := NewAssetHandler(services.NewAssetService(db), importService)
	assignmentHandler := NewAssignmentHandler(services.NewAssignmentService(db))
	simHandler := NewSimHandler(services.NewSimService(db), importService)
	reportHandler := NewReportHandler(services.NewReportService(db))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("", middleware.RequireAuth(cfg.JWTSecret))
	authed.GET("/auth/me", authHandler.Me)
	authed.GET("/employees/me", employeeHandler.Me)

	staff := authed.Group("", middleware.RequireRole(constants.RoleHR, constants.RoleAdmin))

	staff.GET("/employees", employeeHandler.List)
	staff.GET("/employees/export", employeeHandler.Export)
	staff.GET("/employees/template", employeeHandler.Template)
	staff.POST("/employees/import", employeeHandler.Import)
	staff.GET("/employees/:employee_id", employeeHandler.Get)
	staff.POST("/employees", employeeHandler.Create)
	staff.PUT("/employees/:employee_id", employeeHandler.Update)
	staff.DELETE("/employees/:employee_id", employeeHandler.Delete)

	staff.GET("/assets", assetHandler.List)
	staff.GET("/assets/export", assetHandler.Export)
	staff.GET("/assets/template", assetHandler.Template)
	staff.POST("/assets/import", assetHandler.Import)
	staff.GET("/assets/:asset_id", assetHandler.Get)
	staff.POST("/assets", assetHandler.Create)
	staff.PUT("/assets/:asset_id", assetHandler.Update)
	staff.DELETE("/assets/:asset_id", assetHandler.Delete)

	staff.GET("/assignments", assignmentHandler.List)
	staff.GET("/assignments/export", assignmentHandler.Export)
	staff.GET("/assignments/template", assignmentHandler.Template)
	staff.GET("/assignments/:assignment_id", assignmentHandler.Get)
	staff.POST("/assignments", assignmentHandler.Create)
	staff.PUT("/assignments/:assignment_id", assignmentHandler.Update)
	staff.DELETE("/assignments/:assignment_id", assignmentHandler.Delete)

	staff.GET("/sim-connections", simHandler.List)
	staff.GET("/sim-connections/export", simHandler.Export)
	staff.GET("/sim-connections/template", simHandler.Template)
	staff.POST("/sim-connections/import", simHandler.Import)
	staff.GET("/sim-connections/:sim_mobile_number", simHandler.Get)
	staff.POST("/sim-connections", simHandler.Create)
	staff.PUT("/sim-connections/:sim_mobile_number", simHandler.Update)
	staff.DELETE("/sim-connections/:sim_mobile_number", simHandler.Delete)

	staff.GET("/dashboard/stats", reportHandler.Dashboard)
	staff.GET("/pending-returns", reportHandler.PendingReturns)
	staff.GET("/search", reportHandler.Search)
	staff.GET("/global-search", reportHandler.Search)
	staff.GET("/search/employees", reportHandler.SearchEmployees)

	return router
}
