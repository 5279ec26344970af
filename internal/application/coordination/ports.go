package coordination

import (
	"context"

	"github.com/helpbridge/coord-service/internal/domain"
)

/*
RequestRepo
-----------
Persistence port for assistance requests and the aggregate reads the
admin dashboard needs. Aggregations are full-collection scans by
contract; there is no pagination or time windowing.
*/
type RequestRepo interface {
	Create(ctx context.Context, r domain.AssistanceRequest) (domain.AssistanceRequest, error)
	GetByID(ctx context.Context, id string) (domain.AssistanceRequest, error)
	ListActive(ctx context.Context) ([]domain.AssistanceRequest, error)
	Deactivate(ctx context.Context, id string) error

	CountByStatus(ctx context.Context) (active int, deactivated int, err error)
	CountByLocation(ctx context.Context) ([]domain.LocationStat, error)
}

// UserCounter is the single user-collection read analytics needs.
type UserCounter interface {
	CountUsers(ctx context.Context) (int, error)
}
