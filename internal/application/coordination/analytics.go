package coordination

import (
	"context"

	"github.com/helpbridge/coord-service/internal/domain"
)

const (
	statusActive      = "Active"
	statusDeactivated = "Deactivated"
)

// Analytics builds the admin summary: total users, request counts by
// status and a group-by-location breakdown.
func (s *Service) Analytics(ctx context.Context) (domain.AnalyticsSummary, error) {
	totalUsers, err := s.users.CountUsers(ctx)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	active, deactivated, err := s.requests.CountByStatus(ctx)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	locations, err := s.requests.CountByLocation(ctx)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}
	if locations == nil {
		locations = []domain.LocationStat{}
	}

	return domain.AnalyticsSummary{
		TotalUsers:          totalUsers,
		ActiveRequests:      active,
		DeactivatedRequests: deactivated,
		LocationStats:       locations,
		StatusStats: []domain.StatusStat{
			{Status: statusActive, Count: active},
			{Status: statusDeactivated, Count: deactivated},
		},
	}, nil
}
