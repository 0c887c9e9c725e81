package generator

import (
	"math"
	"time"

	"github.com/inaiurai/admindemo/internal/models"
)

const (
	dailyPoints     = 30
	monthlyPoints   = 12
	retentionCohort = 6
	usageFeatures   = 8
)

// Analytics generates the dashboard summary: series, rollups, plan mix,
// retention and totals derived from the series.
func (g *Generator) Analytics() (models.AnalyticsSummary, error) {
	today := truncateDay(g.now)
	month := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	var s models.AnalyticsSummary
	s.Daily = make([]models.MetricPoint, dailyPoints)
	for i := range s.Daily {
		s.Daily[i] = models.MetricPoint{
			Date:          today.AddDate(0, 0, i-(dailyPoints-1)),
			NewUsers:      g.intn(10, 100),
			ActiveUsers:   g.intn(500, 2_000),
			Revenue:       g.intn(1_000, 5_000),
			APICalls:      g.intn(10_000, 50_000),
			Subscriptions: g.intn(5, 30),
			Churn:         g.intn(0, 10),
		}
	}
	s.Monthly = make([]models.MetricPoint, monthlyPoints)
	for i := range s.Monthly {
		s.Monthly[i] = models.MetricPoint{
			Date:          month.AddDate(0, i-(monthlyPoints-1), 0),
			NewUsers:      g.intn(300, 3_000),
			ActiveUsers:   g.intn(5_000, 20_000),
			Revenue:       g.intn(30_000, 150_000),
			APICalls:      g.intn(300_000, 1_500_000),
			Subscriptions: g.intn(150, 900),
			Churn:         g.intn(0, 300),
		}
	}

	s.FeatureUsage = make([]models.FeatureUsage, usageFeatures)
	for i := range s.FeatureUsage {
		s.FeatureUsage[i] = models.FeatureUsage{
			Feature:     featureNames[i],
			UsageCount:  g.intn(1_000, 50_000),
			UniqueUsers: g.intn(100, 5_000),
			Trend:       g.intn(-20, 50),
		}
	}

	s.PlanDistribution = g.planDistribution()
	s.Retention = g.retention(month)
	s.Summary = totals(s)

	if g.err != nil {
		return models.AnalyticsSummary{}, g.err
	}
	return s, nil
}

var planCountRanges = map[models.Plan][2]int{
	models.PlanFree:       {200, 800},
	models.PlanStarter:    {100, 400},
	models.PlanPro:        {50, 300},
	models.PlanEnterprise: {10, 100},
}

func (g *Generator) planDistribution() []models.PlanShare {
	out := make([]models.PlanShare, len(models.Plans))
	total := 0
	for i, p := range models.Plans {
		r := planCountRanges[p]
		out[i] = models.PlanShare{Plan: p, Count: g.intn(r[0], r[1])}
		total += out[i].Count
	}
	for i := range out {
		out[i].Percentage = round(float64(out[i].Count)/float64(max(total, 1))*100, 1)
	}
	return out
}

// retention builds a triangle: the oldest cohort has six monthly periods,
// the newest has one. Each period keeps at most the previous share.
func (g *Generator) retention(month time.Time) []models.RetentionCohort {
	out := make([]models.RetentionCohort, retentionCohort)
	for i := range out {
		periods := make([]int, retentionCohort-i)
		periods[0] = 100
		for p := 1; p < len(periods); p++ {
			periods[p] = max(periods[p-1]-g.intn(5, 20), 0)
		}
		out[i] = models.RetentionCohort{
			Cohort:    month.AddDate(0, i-(retentionCohort-1), 0).Format("2006-01"),
			Size:      g.intn(100, 500),
			Retention: periods,
		}
	}
	return out
}

func totals(s models.AnalyticsSummary) models.AnalyticsTotals {
	var t models.AnalyticsTotals
	churn := 0
	for _, m := range s.Monthly {
		t.TotalUsers += m.NewUsers
		t.TotalRevenue += m.Revenue
		churn += m.Churn
	}
	for _, d := range s.Daily {
		t.APICalls += d.APICalls
	}
	if n := len(s.Daily); n > 0 {
		t.ActiveUsers = s.Daily[n-1].ActiveUsers
	}
	if n := len(s.Monthly); n > 0 {
		t.MRR = s.Monthly[n-1].Revenue
	}
	if t.TotalUsers > 0 {
		t.ChurnRate = round(float64(churn)/float64(t.TotalUsers)*100, 1)
		t.AvgRevenuePerUser = round(float64(t.TotalRevenue)/float64(t.TotalUsers), 2)
	}
	return t
}

func round(v float64, places int) float64 {
	f := math.Pow(10, float64(places))
	return math.Round(v*f) / f
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
