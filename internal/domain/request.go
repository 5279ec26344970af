package domain

import "time"

// AssistanceRequest is a plea for help posted by a registered user.
// Deactivation is a soft state flip; records are kept for analytics.
type AssistanceRequest struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Location    string
	IsActive    bool
	CreatedAt   time.Time
}

type LocationStat struct {
	Location string
	Count    int
}

type StatusStat struct {
	Status string
	Count  int
}

// AnalyticsSummary is the admin dashboard aggregate: a full-collection
// scan on every call, no pagination or time windowing.
type AnalyticsSummary struct {
	TotalUsers          int
	ActiveRequests      int
	DeactivatedRequests int
	LocationStats       []LocationStat
	StatusStats         []StatusStat
}
