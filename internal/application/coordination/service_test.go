package coordination

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/helpbridge/coord-service/internal/domain"
)

type fakeRequestRepo struct {
	mu   sync.Mutex
	byID map[string]domain.AssistanceRequest

	createErr error
	listErr   error
	countErr  error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{byID: map[string]domain.AssistanceRequest{}}
}

func (f *fakeRequestRepo) Create(ctx context.Context, r domain.AssistanceRequest) (domain.AssistanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.AssistanceRequest{}, f.createErr
	}
	f.byID[r.ID] = r
	return r, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (domain.AssistanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if !ok {
		return domain.AssistanceRequest{}, domain.ErrRequestNotFound()
	}
	return r, nil
}

func (f *fakeRequestRepo) ListActive(ctx context.Context) ([]domain.AssistanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.AssistanceRequest
	for _, r := range f.byID {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) Deactivate(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if !ok {
		return domain.ErrRequestNotFound()
	}
	r.IsActive = false
	f.byID[id] = r
	return nil
}

func (f *fakeRequestRepo) CountByStatus(ctx context.Context) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, 0, f.countErr
	}
	var active, deactivated int
	for _, r := range f.byID {
		if r.IsActive {
			active++
		} else {
			deactivated++
		}
	}
	return active, deactivated, nil
}

func (f *fakeRequestRepo) CountByLocation(ctx context.Context) ([]domain.LocationStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[string]int{}
	for _, r := range f.byID {
		counts[r.Location]++
	}
	var out []domain.LocationStat
	for loc, n := range counts {
		out = append(out, domain.LocationStat{Location: loc, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out, nil
}

type fakeUserCounter struct {
	n   int
	err error
}

func (f *fakeUserCounter) CountUsers(ctx context.Context) (int, error) {
	return f.n, f.err
}

func newSvcForTest(t *testing.T) (*Service, *fakeRequestRepo, *fakeUserCounter) {
	t.Helper()
	reqs := newFakeRequestRepo()
	users := &fakeUserCounter{}
	return NewService(reqs, users), reqs, users
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	if !domain.Is(err, code) {
		t.Fatalf("expected domain code %q, got %v", code, err)
	}
}

func TestCreateRequest_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvcForTest(t)

	_, err := svc.CreateRequest(context.Background(), "", CreateInput{Title: "t", Location: "l"})
	requireDomainCode(t, err, "missing_field")

	_, err = svc.CreateRequest(context.Background(), "u1", CreateInput{Location: "l"})
	requireDomainCode(t, err, "missing_field")

	_, err = svc.CreateRequest(context.Background(), "u1", CreateInput{Title: "t"})
	requireDomainCode(t, err, "missing_field")
}

func TestCreateRequest_Success(t *testing.T) {
	t.Parallel()

	svc, reqs, _ := newSvcForTest(t)

	r, err := svc.CreateRequest(context.Background(), "u1", CreateInput{
		Title:       "  Need groceries ",
		Description: "weekly delivery",
		Location:    "Lviv",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.ID == "" || !r.IsActive {
		t.Fatalf("unexpected request: %+v", r)
	}
	if r.Title != "Need groceries" {
		t.Fatalf("title not trimmed: %q", r.Title)
	}
	if _, ok := reqs.byID[r.ID]; !ok {
		t.Fatalf("expected request persisted")
	}
}

func TestDeactivateRequest_OwnerOrAdmin(t *testing.T) {
	t.Parallel()

	svc, reqs, _ := newSvcForTest(t)
	r, _ := svc.CreateRequest(context.Background(), "owner", CreateInput{Title: "t", Location: "l"})

	err := svc.DeactivateRequest(context.Background(), "stranger", "user", r.ID)
	requireDomainCode(t, err, "not_request_owner")

	if err := svc.DeactivateRequest(context.Background(), "owner", "user", r.ID); err != nil {
		t.Fatalf("owner deactivate: %v", err)
	}
	if reqs.byID[r.ID].IsActive {
		t.Fatalf("expected inactive request")
	}

	// idempotent for repeated calls and allowed for admins
	if err := svc.DeactivateRequest(context.Background(), "someone-else", "admin", r.ID); err != nil {
		t.Fatalf("admin re-deactivate: %v", err)
	}
}

func TestDeactivateRequest_Unknown_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvcForTest(t)
	err := svc.DeactivateRequest(context.Background(), "u1", "admin", "nope")
	requireDomainCode(t, err, "request_not_found")
}

func TestAnalytics_Summary(t *testing.T) {
	t.Parallel()

	svc, _, users := newSvcForTest(t)
	users.n = 7

	mk := func(owner, loc string, active bool) {
		r, err := svc.CreateRequest(context.Background(), owner, CreateInput{Title: "t", Location: loc})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if !active {
			if err := svc.DeactivateRequest(context.Background(), owner, "user", r.ID); err != nil {
				t.Fatalf("deactivate: %v", err)
			}
		}
	}
	mk("u1", "Kyiv", true)
	mk("u2", "Kyiv", true)
	mk("u3", "Lviv", false)

	sum, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}

	if sum.TotalUsers != 7 {
		t.Fatalf("total users: %d", sum.TotalUsers)
	}
	if sum.ActiveRequests != 2 || sum.DeactivatedRequests != 1 {
		t.Fatalf("status counts: %+v", sum)
	}
	if len(sum.LocationStats) != 2 {
		t.Fatalf("location stats: %+v", sum.LocationStats)
	}
	if sum.LocationStats[0].Location != "Kyiv" || sum.LocationStats[0].Count != 2 {
		t.Fatalf("kyiv stat: %+v", sum.LocationStats[0])
	}
	if len(sum.StatusStats) != 2 || sum.StatusStats[0].Status != "Active" || sum.StatusStats[0].Count != 2 {
		t.Fatalf("status stats: %+v", sum.StatusStats)
	}
}

func TestAnalytics_EmptyCollections(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvcForTest(t)

	sum, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if sum.LocationStats == nil {
		t.Fatalf("location stats must serialize as [], not null")
	}
	if sum.TotalUsers != 0 || sum.ActiveRequests != 0 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}
