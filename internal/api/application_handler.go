package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/analytics"
	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/api/middleware"
	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/store"
	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/tracker"
)

// ApplicationHandler serves CRUD on application records.
type ApplicationHandler struct {
	store *store.Store
}

// NewApplicationHandler constructs an ApplicationHandler.
func NewApplicationHandler(s *store.Store) *ApplicationHandler {
	return &ApplicationHandler{store: s}
}

type createApplicationRequest struct {
	Company     string                    `json:"company" binding:"required,min=1,max=200"`
	Role        string                    `json:"role" binding:"required,min=1,max=200"`
	Status      tracker.ApplicationStatus `json:"status" binding:"required"`
	Source      tracker.ApplicationSource `json:"source" binding:"required"`
	Location    string                    `json:"location"`
	SalaryRange string                    `json:"salary_range"`
	Notes       string                    `json:"notes"`
}

type updateApplicationRequest struct {
	Company     *string                    `json:"company"`
	Role        *string                    `json:"role"`
	Status      *tracker.ApplicationStatus `json:"status"`
	Source      *tracker.ApplicationSource `json:"source"`
	Location    *string                    `json:"location"`
	SalaryRange *string                    `json:"salary_range"`
	Notes       *string                    `json:"notes"`
}

// List returns applications narrowed by the optional query filters.
func (h *ApplicationHandler) List(c *gin.Context) {
	f := store.Filter{
		Company: c.Query("company"),
		Search:  c.Query("search"),
	}
	if status := c.Query("status"); status != "" {
		f.Status = tracker.ApplicationStatus(status)
		if !f.Status.Valid() {
			BadRequest(c, "invalid status filter")
			return
		}
	}
	if source := c.Query("source"); source != "" {
		f.Source = tracker.ApplicationSource(source)
		if !f.Source.Valid() {
			BadRequest(c, "invalid source filter")
			return
		}
	}

	c.JSON(http.StatusOK, h.store.List(f))
}

// Get returns a single application by id.
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.store.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "Application not found")
		return
	}
	c.JSON(http.StatusOK, app)
}

// Create validates and stores a new application.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		BadRequest(c, "invalid status")
		return
	}
	if !req.Source.Valid() {
		BadRequest(c, "invalid source")
		return
	}

	app := h.store.Create(store.CreateInput{
		Company:     req.Company,
		Role:        req.Role,
		Status:      req.Status,
		Source:      req.Source,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
		Notes:       req.Notes,
	})
	middleware.LoggerFromContext(c).Info("application created", "id", app.ID, "company", app.Company)
	c.JSON(http.StatusCreated, app)
}

// Update merges the supplied fields into an existing application.
func (h *ApplicationHandler) Update(c *gin.Context) {
	var req updateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.Company != nil && (*req.Company == "" || len(*req.Company) > 200) {
		BadRequest(c, "company must be 1-200 characters")
		return
	}
	if req.Role != nil && (*req.Role == "" || len(*req.Role) > 200) {
		BadRequest(c, "role must be 1-200 characters")
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		BadRequest(c, "invalid status")
		return
	}
	if req.Source != nil && !req.Source.Valid() {
		BadRequest(c, "invalid source")
		return
	}

	app, err := h.store.Update(c.Param("id"), store.UpdateInput{
		Company:     req.Company,
		Role:        req.Role,
		Status:      req.Status,
		Source:      req.Source,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, store.ErrApplicationNotFound) {
			NotFound(c, "Application not found")
			return
		}
		Internal(c, "failed to update application")
		return
	}
	c.JSON(http.StatusOK, app)
}

// Delete removes an application and returns the removed record.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	app, err := h.store.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrApplicationNotFound) {
			NotFound(c, "Application not found")
			return
		}
		Internal(c, "failed to delete application")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Application deleted successfully",
		"deleted": app,
	})
}

// Summary returns the raw status and source tallies.
func (h *ApplicationHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, analytics.Summarize(h.store.Applications()))
}
