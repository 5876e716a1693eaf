package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/store"
)

// RegisterRoutes wires every resource handler onto the router.
func RegisterRoutes(router *gin.Engine, s *store.Store) {
	applicationHandler := NewApplicationHandler(s)
	analyticsHandler := NewAnalyticsHandler(s)
	companyHandler := NewCompanyHandler(s)

	applications := router.Group("/applications")
	{
		applications.GET("", applicationHandler.List)
		applications.POST("", applicationHandler.Create)
		applications.GET("/stats/summary", applicationHandler.Summary)
		applications.GET("/:id", applicationHandler.Get)
		applications.PUT("/:id", applicationHandler.Update)
		applications.DELETE("/:id", applicationHandler.Delete)
	}

	analyticsGroup := router.Group("/analytics")
	{
		analyticsGroup.GET("/dashboard", analyticsHandler.Dashboard)
		analyticsGroup.GET("/funnel", analyticsHandler.Funnel)
		analyticsGroup.GET("/sources", analyticsHandler.Sources)
		analyticsGroup.GET("/status-distribution", analyticsHandler.StatusDistribution)
		analyticsGroup.GET("/weekly-trends", analyticsHandler.WeeklyTrends)
		analyticsGroup.GET("/response-timeline", analyticsHandler.ResponseTimeline)
	}

	companies := router.Group("/companies")
	{
		companies.GET("", companyHandler.List)
		companies.GET("/:name", companyHandler.Applications)
		companies.GET("/:name/stats", companyHandler.Stats)
		companies.GET("/:name/details", companyHandler.Details)
		companies.PUT("/:name/notes", companyHandler.UpdateNotes)
		companies.POST("/:name/contacts", companyHandler.AddContact)
		companies.DELETE("/:name/contacts/:contact_id", companyHandler.DeleteContact)
		companies.PUT("/:name/status", companyHandler.UpdateStatus)
	}
}
