package coordination

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/helpbridge/coord-service/internal/domain"
)

type Service struct {
	requests RequestRepo
	users    UserCounter
}

func NewService(requests RequestRepo, users UserCounter) *Service {
	return &Service{requests: requests, users: users}
}

type CreateInput struct {
	Title       string
	Description string
	Location    string
}

func (s *Service) CreateRequest(ctx context.Context, userID string, in CreateInput) (domain.AssistanceRequest, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.AssistanceRequest{}, domain.ErrMissingField("user_id")
	}
	if strings.TrimSpace(in.Title) == "" {
		return domain.AssistanceRequest{}, domain.ErrMissingField("title")
	}
	if strings.TrimSpace(in.Location) == "" {
		return domain.AssistanceRequest{}, domain.ErrMissingField("location")
	}

	r := domain.AssistanceRequest{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		IsActive:    true,
	}
	return s.requests.Create(ctx, r)
}

func (s *Service) ListActiveRequests(ctx context.Context) ([]domain.AssistanceRequest, error) {
	return s.requests.ListActive(ctx)
}

// DeactivateRequest soft-closes a request. Only the owner or an admin
// may do it; deactivating an already inactive request is a no-op.
func (s *Service) DeactivateRequest(ctx context.Context, actorID, actorRole, requestID string) error {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return domain.ErrMissingField("id")
	}

	r, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if r.UserID != actorID && actorRole != string(domain.RoleAdmin) {
		return domain.ErrNotRequestOwner()
	}

	if !r.IsActive {
		return nil
	}
	return s.requests.Deactivate(ctx, requestID)
}
