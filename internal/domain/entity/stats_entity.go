package entity

// StatsSummary backs the dashboard summary cards.
type StatsSummary struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalRequests   int64 `json:"totalRequests"`
	PendingRequests int64 `json:"pendingRequests"`
	TotalFunds      int64 `json:"totalFunds"`
}

// RequestStatPoint is one bucket of the requests-over-time chart.
type RequestStatPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// RequestStats is the chart payload from GET /api/stats/requests.
type RequestStats struct {
	Daily   []RequestStatPoint `json:"daily"`
	Weekly  []RequestStatPoint `json:"weekly"`
	Monthly []RequestStatPoint `json:"monthly"`
}
