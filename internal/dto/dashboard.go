package dto

// DashboardStatsResponse aggregates per-organization counters
type DashboardStatsResponse struct {
	TotalCases         int64 `json:"total_cases"`
	ActiveCases        int64 `json:"active_cases"`
	ClosedCases        int64 `json:"closed_cases"`
	TotalConversations int64 `json:"total_conversations"`
	PendingTasks       int   `json:"pending_tasks"`
	UpcomingDeadlines  int   `json:"upcoming_deadlines"`
}
