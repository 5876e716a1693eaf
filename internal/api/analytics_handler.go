package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/analytics"
	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/store"
)

// AnalyticsHandler serves the read-only aggregate views. It never mutates
// the store.
type AnalyticsHandler struct {
	store *store.Store
	now   func() time.Time
}

// NewAnalyticsHandler constructs an AnalyticsHandler using the real clock.
func NewAnalyticsHandler(s *store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: s, now: time.Now}
}

// Dashboard returns the headline stats block.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, analytics.BuildDashboard(h.store.Applications(), h.now()))
}

// Funnel returns the four cumulative pipeline stages.
func (h *AnalyticsHandler) Funnel(c *gin.Context) {
	c.JSON(http.StatusOK, analytics.BuildFunnel(h.store.Applications()))
}

// Sources returns per-source volumes and conversion rates.
func (h *AnalyticsHandler) Sources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sources": analytics.BySource(h.store.Applications())})
}

// StatusDistribution returns per-status counts and percentages.
func (h *AnalyticsHandler) StatusDistribution(c *gin.Context) {
	apps := h.store.Applications()
	c.JSON(http.StatusOK, gin.H{
		"distribution": analytics.StatusDistribution(apps),
		"total":        len(apps),
	})
}

// WeeklyTrends returns application volume per week.
func (h *AnalyticsHandler) WeeklyTrends(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"weeks": analytics.WeeklyTrends(h.store.Applications())})
}

// ResponseTimeline returns the rate triple per week.
func (h *AnalyticsHandler) ResponseTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeline": analytics.ResponseTimeline(h.store.Applications())})
}
