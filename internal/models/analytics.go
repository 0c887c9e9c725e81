package models

import "time"

// MetricPoint is one bucket of the daily or monthly analytics series.
type MetricPoint struct {
	Date          time.Time `json:"date"`
	NewUsers      int       `json:"newUsers"`
	ActiveUsers   int       `json:"activeUsers"`
	Revenue       int       `json:"revenue"`
	APICalls      int       `json:"apiCalls"`
	Subscriptions int       `json:"subscriptions"`
	Churn         int       `json:"churn"`
}

type FeatureUsage struct {
	Feature     string `json:"feature"`
	UsageCount  int    `json:"usageCount"`
	UniqueUsers int    `json:"uniqueUsers"`
	Trend       int    `json:"trend"` // percent change over the previous period
}

type PlanShare struct {
	Plan       Plan    `json:"plan"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RetentionCohort holds the share of a signup cohort still active N months
// later. Retention[0] is always 100.
type RetentionCohort struct {
	Cohort    string `json:"cohort"`
	Size      int    `json:"size"`
	Retention []int  `json:"retention"`
}

type AnalyticsTotals struct {
	TotalUsers        int     `json:"totalUsers"`
	ActiveUsers       int     `json:"activeUsers"`
	TotalRevenue      int     `json:"totalRevenue"`
	MRR               int     `json:"mrr"`
	APICalls          int     `json:"apiCalls"`
	ChurnRate         float64 `json:"churnRate"`
	AvgRevenuePerUser float64 `json:"avgRevenuePerUser"`
}

type AnalyticsSummary struct {
	Daily            []MetricPoint     `json:"daily"`
	Monthly          []MetricPoint     `json:"monthly"`
	FeatureUsage     []FeatureUsage    `json:"featureUsage"`
	PlanDistribution []PlanShare       `json:"planDistribution"`
	Retention        []RetentionCohort `json:"retention"`
	Summary          AnalyticsTotals   `json:"summary"`
}
