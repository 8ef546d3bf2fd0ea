package dto

// DailyTotal is one row of the per-date income history.
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// DaySummary is the dashboard figure for a single date.
type DaySummary struct {
	Date  string  `json:"date"`
	Count int64   `json:"count"`
	Total float64 `json:"total"`
	Tip   float64 `json:"tip"`
}

// ClientStats aggregates one client's visit history. Services is only
// populated for single-client lookups.
type ClientStats struct {
	ClientName string   `json:"clientName"`
	TotalCuts  int64    `json:"totalCuts"`
	TotalSpent float64  `json:"totalSpent"`
	TotalTip   float64  `json:"totalTip"`
	LastVisit  string   `json:"lastVisit"`
	Services   []string `json:"services,omitempty"`
}
