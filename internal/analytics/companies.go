package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/tracker"
)

// Overview is the rate block shared by the company views.
type Overview struct {
	ApplicationCount int     `json:"application_count"`
	ResponseRate     float64 `json:"response_rate"`
	InterviewRate    float64 `json:"interview_rate"`
	OfferRate        float64 `json:"offer_rate"`
}

// BuildOverview computes the rate triple over one company's applications.
func BuildOverview(apps []tracker.Application) Overview {
	total := len(apps)
	var responded, interviewed, offers int
	for _, app := range apps {
		if app.Responded() {
			responded++
		}
		if app.Interviewed() {
			interviewed++
		}
		if app.Status == tracker.StatusOffer {
			offers++
		}
	}
	return Overview{
		ApplicationCount: total,
		ResponseRate:     rate(responded, total),
		InterviewRate:    rate(interviewed, total),
		OfferRate:        rate(offers, total),
	}
}

// LatestApplication is the summary of a company's most recent application.
type LatestApplication struct {
	Role          string                    `json:"role"`
	Status        tracker.ApplicationStatus `json:"status"`
	AppliedDate   time.Time                 `json:"applied_date"`
	ApplicationID string                    `json:"application_id"`
}

// Latest picks the application with the greatest applied date; among equal
// dates the earliest-inserted record wins. Nil when apps is empty.
func Latest(apps []tracker.Application) *LatestApplication {
	if len(apps) == 0 {
		return nil
	}
	best := apps[0]
	for _, app := range apps[1:] {
		if app.AppliedDate.After(best.AppliedDate) {
			best = app
		}
	}
	return &LatestApplication{
		Role:          best.Role,
		Status:        best.Status,
		AppliedDate:   best.AppliedDate,
		ApplicationID: best.ID,
	}
}

// CompanyRollup is one company's aggregated application history. Metadata
// fields (status, notes, contacts) are merged in by the caller that owns
// the metadata maps.
type CompanyRollup struct {
	CompanyName string `json:"company_name"`
	Overview
	LatestApplication *LatestApplication `json:"latest_application"`
}

// Companies groups applications by company name, case-insensitively, with
// the first-seen casing as the display name. Sorted by descending
// application count; ties keep first-seen order.
func Companies(apps []tracker.Application) []CompanyRollup {
	grouped := map[string][]tracker.Application{}
	display := map[string]string{}
	var order []string

	for _, app := range apps {
		key := strings.ToLower(app.Company)
		if _, ok := grouped[key]; !ok {
			display[key] = app.Company
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], app)
	}

	rollups := make([]CompanyRollup, 0, len(order))
	for _, key := range order {
		companyApps := grouped[key]
		rollups = append(rollups, CompanyRollup{
			CompanyName:       display[key],
			Overview:          BuildOverview(companyApps),
			LatestApplication: Latest(companyApps),
		})
	}
	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].ApplicationCount > rollups[j].ApplicationCount
	})
	return rollups
}

// RoleEntry is one application of a company's history, trimmed for the
// per-company stats view.
type RoleEntry struct {
	Role        string                    `json:"role"`
	Status      tracker.ApplicationStatus `json:"status"`
	AppliedDate time.Time                 `json:"applied_date"`
}

// RolesApplied lists a company's applications newest-first by applied date;
// equal dates keep insertion order.
func RolesApplied(apps []tracker.Application) []RoleEntry {
	entries := make([]RoleEntry, 0, len(apps))
	for _, app := range apps {
		entries = append(entries, RoleEntry{
			Role:        app.Role,
			Status:      app.Status,
			AppliedDate: app.AppliedDate,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AppliedDate.After(entries[j].AppliedDate)
	})
	return entries
}

// DateRange returns the earliest and latest applied dates of a company's
// history. Zero times when apps is empty.
func DateRange(apps []tracker.Application) (first, latest time.Time) {
	for _, app := range apps {
		if first.IsZero() || app.AppliedDate.Before(first) {
			first = app.AppliedDate
		}
		if app.AppliedDate.After(latest) {
			latest = app.AppliedDate
		}
	}
	return first, latest
}
