package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/helpbridge/coord-service/internal/domain"
)

type RequestRepo struct {
	mu       sync.RWMutex
	requests map[string]domain.AssistanceRequest
}

func NewRequestRepo() *RequestRepo {
	return &RequestRepo{requests: make(map[string]domain.AssistanceRequest)}
}

func (r *RequestRepo) Create(_ context.Context, req domain.AssistanceRequest) (domain.AssistanceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	r.requests[req.ID] = req
	return req, nil
}

func (r *RequestRepo) GetByID(_ context.Context, id string) (domain.AssistanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return domain.AssistanceRequest{}, domain.ErrRequestNotFound()
	}
	return req, nil
}

func (r *RequestRepo) ListActive(_ context.Context) ([]domain.AssistanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AssistanceRequest
	for _, req := range r.requests {
		if req.IsActive {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *RequestRepo) Deactivate(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return domain.ErrRequestNotFound()
	}
	req.IsActive = false
	r.requests[id] = req
	return nil
}

func (r *RequestRepo) CountByStatus(_ context.Context) (int, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var active, deactivated int
	for _, req := range r.requests {
		if req.IsActive {
			active++
		} else {
			deactivated++
		}
	}
	return active, deactivated, nil
}

func (r *RequestRepo) CountByLocation(_ context.Context) ([]domain.LocationStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[string]int)
	for _, req := range r.requests {
		counts[req.Location]++
	}
	out := make([]domain.LocationStat, 0, len(counts))
	for loc, n := range counts {
		out = append(out, domain.LocationStat{Location: loc, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Location < out[j].Location
	})
	return out, nil
}
