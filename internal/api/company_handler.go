package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/analytics"
	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/store"
	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/tracker"
)

// CompanyHandler serves the per-company views and metadata writes.
type CompanyHandler struct {
	store *store.Store
}

// NewCompanyHandler constructs a CompanyHandler.
func NewCompanyHandler(s *store.Store) *CompanyHandler {
	return &CompanyHandler{store: s}
}

type companyNotesRequest struct {
	Notes *string `json:"notes" binding:"required,max=2000"`
}

type companyContactRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Role     string `json:"role" binding:"required,min=1,max=100"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Notes    string `json:"notes"`
}

type companyStatusRequest struct {
	Status tracker.CompanyStatus `json:"status" binding:"required"`
}

// companyEntry is one company rollup with its stored metadata merged in.
type companyEntry struct {
	analytics.CompanyRollup
	Status       *tracker.CompanyStatus `json:"status"`
	HasNotes     bool                   `json:"has_notes"`
	ContactCount int                    `json:"contact_count"`
}

// List returns every tracked company with aggregated stats, sorted by
// application count, with stored metadata merged in.
func (h *CompanyHandler) List(c *gin.Context) {
	rollups := analytics.Companies(h.store.Applications())

	companies := make([]companyEntry, 0, len(rollups))
	for _, rollup := range rollups {
		meta := h.store.Metadata(rollup.CompanyName)
		entry := companyEntry{
			CompanyRollup: rollup,
			HasNotes:      meta.Notes != "",
			ContactCount:  len(meta.Contacts),
		}
		if meta.Status != "" {
			status := meta.Status
			entry.Status = &status
		}
		companies = append(companies, entry)
	}

	c.JSON(http.StatusOK, gin.H{"companies": companies, "total": len(companies)})
}

// Applications returns the full application history for one company.
func (h *CompanyHandler) Applications(c *gin.Context) {
	name := c.Param("name")
	apps := h.store.CompanyApplications(name)
	if len(apps) == 0 {
		NotFound(c, "Company not found or no applications exist")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"company_name": name,
		"applications": apps,
		"total":        len(apps),
	})
}

// Stats returns the detailed per-company breakdown.
func (h *CompanyHandler) Stats(c *gin.Context) {
	name := c.Param("name")
	apps := h.store.CompanyApplications(name)
	if len(apps) == 0 {
		NotFound(c, "Company not found or no applications exist")
		return
	}

	first, latest := analytics.DateRange(apps)
	c.JSON(http.StatusOK, gin.H{
		"company_name":       name,
		"overview":           analytics.BuildOverview(apps),
		"status_breakdown":   analytics.CountByStatus(apps),
		"source_breakdown":   analytics.CountBySource(apps),
		"roles_applied":      analytics.RolesApplied(apps),
		"first_application":  first.Format(time.RFC3339),
		"latest_application": latest.Format(time.RFC3339),
	})
}

// Details returns the stored metadata for one company.
func (h *CompanyHandler) Details(c *gin.Context) {
	name := c.Param("name")
	apps := h.store.CompanyApplications(name)
	if len(apps) == 0 {
		NotFound(c, "Company not found or no applications exist")
		return
	}

	meta := h.store.Metadata(name)
	var status *tracker.CompanyStatus
	if meta.Status != "" {
		status = &meta.Status
	}
	c.JSON(http.StatusOK, gin.H{
		"company_name":      name,
		"notes":             meta.Notes,
		"contacts":          meta.Contacts,
		"status":            status,
		"application_count": len(apps),
	})
}

// UpdateNotes replaces a company's free-text notes.
func (h *CompanyHandler) UpdateNotes(c *gin.Context) {
	var req companyNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	name := c.Param("name")
	if err := h.store.SetCompanyNotes(name, *req.Notes); err != nil {
		NotFound(c, "Company not found or no applications exist")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Notes updated successfully",
		"company_name": name,
		"notes":        *req.Notes,
	})
}

// AddContact appends a contact to a company's list.
func (h *CompanyHandler) AddContact(c *gin.Context) {
	var req companyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	name := c.Param("name")
	contact, err := h.store.AddContact(name, tracker.Contact{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
		LinkedIn: req.LinkedIn,
		Notes:    req.Notes,
	})
	if err != nil {
		NotFound(c, "Company not found or no applications exist")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Contact added successfully",
		"company_name": name,
		"contact":      contact,
	})
}

// DeleteContact removes one contact by id.
func (h *CompanyHandler) DeleteContact(c *gin.Context) {
	contact, err := h.store.DeleteContact(c.Param("name"), c.Param("contact_id"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoContacts):
			NotFound(c, "Company has no contacts")
		case errors.Is(err, store.ErrContactNotFound):
			NotFound(c, "Contact not found")
		default:
			Internal(c, "failed to delete contact")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Contact deleted successfully",
		"deleted": contact,
	})
}

// UpdateStatus replaces a company's tracked status.
func (h *CompanyHandler) UpdateStatus(c *gin.Context) {
	var req companyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		BadRequest(c, "invalid company status")
		return
	}

	name := c.Param("name")
	if err := h.store.SetCompanyStatus(name, req.Status); err != nil {
		NotFound(c, "Company not found or no applications exist")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Status updated successfully",
		"company_name": name,
		"status":       req.Status,
	})
}
