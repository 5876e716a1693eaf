package analytics

import (
	"testing"

	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/tracker"
)

func TestCompanies_ScenarioOrderingAndRates(t *testing.T) {
	apps := []tracker.Application{
		app("Acme", tracker.StatusApplied, baseDate),
		app("Acme", tracker.StatusOffer, baseDate.AddDate(0, 0, 1)),
		app("Globex", tracker.StatusRejected, baseDate),
	}

	rollups := Companies(apps)
	if len(rollups) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(rollups))
	}

	acme := rollups[0]
	if acme.CompanyName != "Acme" || acme.ApplicationCount != 2 {
		t.Fatalf("expected Acme first with 2 applications, got %+v", acme)
	}
	if acme.OfferRate != 50.0 {
		t.Fatalf("acme offer_rate: expected 50.0 got %v", acme.OfferRate)
	}
	if acme.LatestApplication == nil || !acme.LatestApplication.AppliedDate.Equal(baseDate.AddDate(0, 0, 1)) {
		t.Fatalf("unexpected latest application: %+v", acme.LatestApplication)
	}

	globex := rollups[1]
	if globex.CompanyName != "Globex" || globex.ApplicationCount != 1 || globex.OfferRate != 0.0 {
		t.Fatalf("unexpected Globex rollup: %+v", globex)
	}
}

func TestCompanies_CaseInsensitiveGrouping(t *testing.T) {
	apps := []tracker.Application{
		app("Acme", tracker.StatusApplied, baseDate),
		app("ACME", tracker.StatusOffer, baseDate),
	}

	rollups := Companies(apps)
	if len(rollups) != 1 {
		t.Fatalf("expected one group across casings, got %d", len(rollups))
	}
	// First-seen casing is the display name.
	if rollups[0].CompanyName != "Acme" || rollups[0].ApplicationCount != 2 {
		t.Fatalf("unexpected rollup: %+v", rollups[0])
	}
}

func TestCompanies_Empty(t *testing.T) {
	if rollups := Companies(nil); rollups == nil || len(rollups) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rollups)
	}
}

func TestLatest_TieBreaksByInsertionOrder(t *testing.T) {
	first := app("Acme", tracker.StatusApplied, baseDate)
	first.ID = "1"
	second := app("Acme", tracker.StatusOffer, baseDate)
	second.ID = "2"

	latest := Latest([]tracker.Application{first, second})
	if latest == nil || latest.ApplicationID != "1" {
		t.Fatalf("expected first-inserted record on tie, got %+v", latest)
	}
}

func TestLatest_Empty(t *testing.T) {
	if latest := Latest(nil); latest != nil {
		t.Fatalf("expected nil for empty input, got %+v", latest)
	}
}

func TestRolesApplied_NewestFirst(t *testing.T) {
	older := app("Acme", tracker.StatusApplied, baseDate)
	older.Role = "Backend Engineer"
	newer := app("Acme", tracker.StatusOffer, baseDate.AddDate(0, 0, 3))
	newer.Role = "Platform Engineer"

	entries := RolesApplied([]tracker.Application{older, newer})
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Role != "Platform Engineer" || entries[1].Role != "Backend Engineer" {
		t.Fatalf("entries not newest-first: %+v", entries)
	}
}

func TestDateRange(t *testing.T) {
	apps := []tracker.Application{
		app("Acme", tracker.StatusApplied, baseDate.AddDate(0, 0, 5)),
		app("Acme", tracker.StatusApplied, baseDate),
		app("Acme", tracker.StatusApplied, baseDate.AddDate(0, 0, 2)),
	}

	first, latest := DateRange(apps)
	if !first.Equal(baseDate) {
		t.Fatalf("first: expected %v got %v", baseDate, first)
	}
	if !latest.Equal(baseDate.AddDate(0, 0, 5)) {
		t.Fatalf("latest: expected %v got %v", baseDate.AddDate(0, 0, 5), latest)
	}
}

func TestBuildOverview_Empty(t *testing.T) {
	o := BuildOverview(nil)
	if o.ApplicationCount != 0 || o.ResponseRate != 0 || o.InterviewRate != 0 || o.OfferRate != 0 {
		t.Fatalf("expected zero overview, got %+v", o)
	}
}
