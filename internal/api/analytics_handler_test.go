package api

import (
	"net/http"
	"testing"
)

func TestDashboard_EmptyStore(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/analytics/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var resp struct {
		TotalApplications    int     `json:"total_applications"`
		ResponseRate         float64 `json:"response_rate"`
		ApplicationsThisWeek int     `json:"applications_this_week"`
	}
	decode(t, w, &resp)
	if resp.TotalApplications != 0 || resp.ResponseRate != 0 || resp.ApplicationsThisWeek != 0 {
		t.Fatalf("expected zero dashboard, got %+v", resp)
	}
}

func TestDashboard_Scenario(t *testing.T) {
	router, s := newTestRouter(t)
	seedScenario(s)

	w := doJSON(t, router, http.MethodGet, "/analytics/dashboard", nil)
	var resp struct {
		TotalApplications    int     `json:"total_applications"`
		ResponseRate         float64 `json:"response_rate"`
		OfferRate            float64 `json:"offer_rate"`
		ApplicationsThisWeek int     `json:"applications_this_week"`
	}
	decode(t, w, &resp)
	if resp.TotalApplications != 3 || resp.ResponseRate != 33.33 || resp.OfferRate != 33.33 {
		t.Fatalf("unexpected dashboard: %+v", resp)
	}
	// Everything was just created, so it all falls inside the current week.
	if resp.ApplicationsThisWeek != 3 {
		t.Fatalf("applications_this_week: expected 3 got %d", resp.ApplicationsThisWeek)
	}
}

func TestFunnelEndpoint(t *testing.T) {
	router, s := newTestRouter(t)
	seedScenario(s)

	w := doJSON(t, router, http.MethodGet, "/analytics/funnel", nil)
	var resp struct {
		Stages []struct {
			Stage      string  `json:"stage"`
			Count      int     `json:"count"`
			Percentage float64 `json:"percentage"`
		} `json:"stages"`
		Total int `json:"total"`
	}
	decode(t, w, &resp)
	if resp.Total != 3 || len(resp.Stages) != 4 {
		t.Fatalf("unexpected funnel shape: %+v", resp)
	}
	if resp.Stages[0].Stage != "Applied" || resp.Stages[0].Percentage != 100.0 {
		t.Fatalf("unexpected first stage: %+v", resp.Stages[0])
	}
	if resp.Stages[3].Stage != "Offer" || resp.Stages[3].Count != 1 {
		t.Fatalf("unexpected offer stage: %+v", resp.Stages[3])
	}
}

func TestSourcesEndpoint_EmptyList(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/analytics/sources", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	// An empty store must still produce a JSON array, not null.
	if got := w.Body.String(); got != `{"sources":[]}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestStatusDistributionEndpoint(t *testing.T) {
	router, s := newTestRouter(t)
	seedScenario(s)

	w := doJSON(t, router, http.MethodGet, "/analytics/status-distribution", nil)
	var resp struct {
		Distribution []struct {
			Status string `json:"status"`
			Count  int    `json:"count"`
		} `json:"distribution"`
		Total int `json:"total"`
	}
	decode(t, w, &resp)
	sum := 0
	for _, entry := range resp.Distribution {
		sum += entry.Count
	}
	if sum != resp.Total || resp.Total != 3 {
		t.Fatalf("distribution does not sum to total: %+v", resp)
	}
}
