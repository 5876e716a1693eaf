// Package analytics derives reporting views from the application list.
// Every function is a pure single-pass reduction: no store access, no
// mutation, zero-valued results on empty input.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/tracker"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// rate is part/total as a percentage, rounded to two decimals, 0 when empty.
func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

// WeekStart returns the Monday on or before t, the grouping key for all
// weekly views.
func WeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format("2006-01-02")
}

// Summary is the raw status/source tally.
type Summary struct {
	Total    int                               `json:"total"`
	ByStatus map[tracker.ApplicationStatus]int `json:"by_status"`
	BySource map[tracker.ApplicationSource]int `json:"by_source"`
}

// Summarize counts applications by status and by source.
func Summarize(apps []tracker.Application) Summary {
	s := Summary{
		Total:    len(apps),
		ByStatus: CountByStatus(apps),
		BySource: CountBySource(apps),
	}
	return s
}

// CountByStatus tallies applications per status.
func CountByStatus(apps []tracker.Application) map[tracker.ApplicationStatus]int {
	counts := map[tracker.ApplicationStatus]int{}
	for _, app := range apps {
		counts[app.Status]++
	}
	return counts
}

// CountBySource tallies applications per source.
func CountBySource(apps []tracker.Application) map[tracker.ApplicationSource]int {
	counts := map[tracker.ApplicationSource]int{}
	for _, app := range apps {
		counts[app.Source]++
	}
	return counts
}

// Dashboard is the headline stats block.
type Dashboard struct {
	TotalApplications    int     `json:"total_applications"`
	ResponseRate         float64 `json:"response_rate"`
	InterviewRate        float64 `json:"interview_rate"`
	OfferRate            float64 `json:"offer_rate"`
	ApplicationsThisWeek int     `json:"applications_this_week"`
}

// BuildDashboard computes the headline rates plus the count of applications
// submitted in the seven days before now.
func BuildDashboard(apps []tracker.Application, now time.Time) Dashboard {
	total := len(apps)
	var responded, interviewed, offers, thisWeek int
	weekAgo := now.AddDate(0, 0, -7)

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
		if !app.AppliedDate.Before(weekAgo) {
			thisWeek++
		}
	}

	return Dashboard{
		TotalApplications:    total,
		ResponseRate:         rate(responded, total),
		InterviewRate:        rate(interviewed, total),
		OfferRate:            rate(offers, total),
		ApplicationsThisWeek: thisWeek,
	}
}

// FunnelStage is one cumulative band of the pipeline.
type FunnelStage struct {
	Stage      string  `json:"stage"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Funnel is the four-stage pipeline view.
type Funnel struct {
	Stages []FunnelStage `json:"stages"`
	Total  int           `json:"total"`
}

// BuildFunnel computes the Applied / Phone Screen / Interview / Offer bands.
// Each later band is a subset of the previous one, so the counts are
// non-increasing down the funnel.
func BuildFunnel(apps []tracker.Application) Funnel {
	total := len(apps)
	if total == 0 {
		return Funnel{Stages: []FunnelStage{}}
	}

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

	return Funnel{
		Total: total,
		Stages: []FunnelStage{
			{Stage: "Applied", Count: total, Percentage: 100.0},
			{Stage: "Phone Screen", Count: responded, Percentage: rate(responded, total)},
			{Stage: "Interview", Count: interviewed, Percentage: rate(interviewed, total)},
			{Stage: "Offer", Count: offers, Percentage: rate(offers, total)},
		},
	}
}

// SourceStats holds per-source volume and conversion rates.
type SourceStats struct {
	Source            tracker.ApplicationSource `json:"source"`
	TotalApplications int                       `json:"total_applications"`
	ResponseRate      float64                   `json:"response_rate"`
	InterviewRate     float64                   `json:"interview_rate"`
	OfferRate         float64                   `json:"offer_rate"`
}

// BySource groups applications per source, sorted by descending volume.
// Ties keep first-seen order.
func BySource(apps []tracker.Application) []SourceStats {
	type tally struct {
		total, responded, interviewed, offers int
	}
	tallies := map[tracker.ApplicationSource]*tally{}
	var order []tracker.ApplicationSource

	for _, app := range apps {
		t, ok := tallies[app.Source]
		if !ok {
			t = &tally{}
			tallies[app.Source] = t
			order = append(order, app.Source)
		}
		t.total++
		if app.Responded() {
			t.responded++
		}
		if app.Interviewed() {
			t.interviewed++
		}
		if app.Status == tracker.StatusOffer {
			t.offers++
		}
	}

	stats := make([]SourceStats, 0, len(order))
	for _, source := range order {
		t := tallies[source]
		stats = append(stats, SourceStats{
			Source:            source,
			TotalApplications: t.total,
			ResponseRate:      rate(t.responded, t.total),
			InterviewRate:     rate(t.interviewed, t.total),
			OfferRate:         rate(t.offers, t.total),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalApplications > stats[j].TotalApplications
	})
	return stats
}

// StatusCount is one slice of the status distribution.
type StatusCount struct {
	Status     tracker.ApplicationStatus `json:"status"`
	Count      int                       `json:"count"`
	Percentage float64                   `json:"percentage"`
}

// StatusDistribution counts applications per status, sorted by descending
// count. The counts always sum to the number of applications.
func StatusDistribution(apps []tracker.Application) []StatusCount {
	total := len(apps)
	counts := map[tracker.ApplicationStatus]int{}
	var order []tracker.ApplicationStatus
	for _, app := range apps {
		if _, ok := counts[app.Status]; !ok {
			order = append(order, app.Status)
		}
		counts[app.Status]++
	}

	distribution := make([]StatusCount, 0, len(order))
	for _, status := range order {
		distribution = append(distribution, StatusCount{
			Status:     status,
			Count:      counts[status],
			Percentage: rate(counts[status], total),
		})
	}
	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})
	return distribution
}

// WeeklyTrend is one week's application volume and response rate.
type WeeklyTrend struct {
	WeekStart    string  `json:"week_start"`
	Applications int     `json:"applications"`
	Responses    int     `json:"responses"`
	ResponseRate float64 `json:"response_rate"`
}

// WeeklyTrends buckets applications by the Monday of their applied date,
// ascending by week.
func WeeklyTrends(apps []tracker.Application) []WeeklyTrend {
	type tally struct {
		total, responded int
	}
	buckets := map[string]*tally{}
	for _, app := range apps {
		week := WeekStart(app.AppliedDate)
		t, ok := buckets[week]
		if !ok {
			t = &tally{}
			buckets[week] = t
		}
		t.total++
		if app.Responded() {
			t.responded++
		}
	}

	weeks := sortedKeys(buckets)
	trends := make([]WeeklyTrend, 0, len(weeks))
	for _, week := range weeks {
		t := buckets[week]
		trends = append(trends, WeeklyTrend{
			WeekStart:    week,
			Applications: t.total,
			Responses:    t.responded,
			ResponseRate: rate(t.responded, t.total),
		})
	}
	return trends
}

// TimelinePoint is one week's full rate triple.
type TimelinePoint struct {
	WeekStart         string  `json:"week_start"`
	TotalApplications int     `json:"total_applications"`
	ResponseRate      float64 `json:"response_rate"`
	InterviewRate     float64 `json:"interview_rate"`
	OfferRate         float64 `json:"offer_rate"`
}

// ResponseTimeline buckets applications by week and reports the rate triple
// per bucket, ascending by week.
func ResponseTimeline(apps []tracker.Application) []TimelinePoint {
	type tally struct {
		total, responded, interviewed, offers int
	}
	buckets := map[string]*tally{}
	for _, app := range apps {
		week := WeekStart(app.AppliedDate)
		t, ok := buckets[week]
		if !ok {
			t = &tally{}
			buckets[week] = t
		}
		t.total++
		if app.Responded() {
			t.responded++
		}
		if app.Interviewed() {
			t.interviewed++
		}
		if app.Status == tracker.StatusOffer {
			t.offers++
		}
	}

	weeks := sortedKeys(buckets)
	timeline := make([]TimelinePoint, 0, len(weeks))
	for _, week := range weeks {
		t := buckets[week]
		timeline = append(timeline, TimelinePoint{
			WeekStart:         week,
			TotalApplications: t.total,
			ResponseRate:      rate(t.responded, t.total),
			InterviewRate:     rate(t.interviewed, t.total),
			OfferRate:         rate(t.offers, t.total),
		})
	}
	return timeline
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
