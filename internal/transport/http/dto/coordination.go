package dto

import (
	"time"

	"github.com/helpbridge/coord-service/internal/domain"
)

type CreateRequestRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location" validate:"required"`
}

func (r *CreateRequestRequest) Validate() error {
	return checkStruct(r)
}

type RequestView struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewRequestView(r domain.AssistanceRequest) RequestView {
	return RequestView{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	}
}

func NewRequestViews(reqs []domain.AssistanceRequest) []RequestView {
	out := make([]RequestView, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, NewRequestView(r))
	}
	return out
}

type ListRequestsResponse struct {
	Requests []RequestView `json:"requests"`
}

type LocationStatView struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type StatusStatView struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type AnalyticsResponse struct {
	TotalUsers          int                `json:"totalUsers"`
	ActiveRequests      int                `json:"activeRequests"`
	DeactivatedRequests int                `json:"deactivatedRequests"`
	LocationStats       []LocationStatView `json:"locationStats"`
	StatusStats         []StatusStatView   `json:"statusStats"`
}

func NewAnalyticsResponse(s domain.AnalyticsSummary) AnalyticsResponse {
	locs := make([]LocationStatView, 0, len(s.LocationStats))
	for _, l := range s.LocationStats {
		locs = append(locs, LocationStatView{Location: l.Location, Count: l.Count})
	}
	stats := make([]StatusStatView, 0, len(s.StatusStats))
	for _, st := range s.StatusStats {
		stats = append(stats, StatusStatView{Status: st.Status, Count: st.Count})
	}
	return AnalyticsResponse{
		TotalUsers:          s.TotalUsers,
		ActiveRequests:      s.ActiveRequests,
		DeactivatedRequests: s.DeactivatedRequests,
		LocationStats:       locs,
		StatusStats:         stats,
	}
}
