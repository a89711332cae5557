package supplychain

import "time"

// Alert severity levels as reported by the service.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Alert represents a supply chain disruption alert
type Alert struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	URL         string    `json:"url"`
	DetectedAt  time.Time `json:"detected_at"`
	PublishedAt time.Time `json:"published_at"`
	Region      string    `json:"region"`
	Country     string    `json:"country"`
	Location    string    `json:"location"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Disruption  string    `json:"disruption"`
	Severity    string    `json:"severity"`
	Sentiment   string    `json:"sentiment"`
	Confidence  float64   `json:"confidence"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasCoordinates reports whether the alert carries a geocoded position.
func (a Alert) HasCoordinates() bool {
	return a.Latitude != 0 || a.Longitude != 0
}

// SeverityRank maps the severity string to an ordinal, unknown values rank
// lowest. Handy for sorting and for filter expressions.
func (a Alert) SeverityRank() int {
	switch a.Severity {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// AlertsResponse is the envelope returned by the alerts listing endpoint.
type AlertsResponse struct {
	Data      []Alert   `json:"data"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// UsageSummary describes the calling account's consumption for the current
// billing period.
type UsageSummary struct {
	AccountID   string         `json:"account_id"`
	PeriodStart time.Time      `json:"period_start"`
	PeriodEnd   time.Time      `json:"period_end"`
	Total       int            `json:"total"`
	PerEndpoint map[string]int `json:"per_endpoint"`
}

// UsageBucket is a single timeseries datapoint.
type UsageBucket struct {
	Timestamp time.Time `json:"ts"`
	Total     int       `json:"total"`
}

// UsageTimeseries is the bucketed usage response.
type UsageTimeseries struct {
	Bucket string        `json:"bucket"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Data   []UsageBucket `json:"data"`
}

// AccountInfo describes the plan and billing period of the calling API key.
type AccountInfo struct {
	AccountID      string    `json:"account_id"`
	Plan           string    `json:"plan"`
	OverageEnabled bool      `json:"overage_enabled"`
	PeriodStart    time.Time `json:"period_start"`
	PeriodEnd      time.Time `json:"period_end"`
}

// Limits lists the per-endpoint rate limits and monthly quota for the
// calling account's plan.
type Limits struct {
	PerMinute    map[string]int `json:"per_minute"`
	MonthlyQuota int            `json:"monthly_quota"`
}

// Health is the service health report.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// VersionInfo carries remote build information.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}
