package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/helpbridge/coord-service/internal/domain"
)

const requestColumns = `id, user_id, title, description, location, is_active, created_at`

type RequestRepo struct {
	db *sql.DB
}

func NewRequestRepo(db *sql.DB) *RequestRepo {
	return &RequestRepo{db: db}
}

func scanRequest(scan func(dest ...any) error) (domain.AssistanceRequest, error) {
	var r domain.AssistanceRequest
	err := scan(
		&r.ID,
		&r.UserID,
		&r.Title,
		&r.Description,
		&r.Location,
		&r.IsActive,
		&r.CreatedAt,
	)
	return r, err
}

func (r *RequestRepo) Create(ctx context.Context, req domain.AssistanceRequest) (domain.AssistanceRequest, error) {
	if req.ID == "" {
		return domain.AssistanceRequest{}, domain.ErrMissingField("id")
	}
	if req.UserID == "" {
		return domain.AssistanceRequest{}, domain.ErrMissingField("user_id")
	}

	const q = `
INSERT INTO requests (id, user_id, title, description, location, is_active)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING ` + requestColumns + `;
`
	row := r.db.QueryRowContext(ctx, q,
		req.ID, req.UserID, req.Title, req.Description, req.Location, req.IsActive,
	)
	created, err := scanRequest(row.Scan)
	if err != nil {
		return domain.AssistanceRequest{}, domain.ErrDBUnavailable(err)
	}
	return created, nil
}

func (r *RequestRepo) GetByID(ctx context.Context, id string) (domain.AssistanceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.AssistanceRequest{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + requestColumns + `
FROM requests
WHERE id = $1
LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, id)
	req, err := scanRequest(row.Scan)
	if err != nil {
		if isNoRows(err) {
			return domain.AssistanceRequest{}, domain.ErrRequestNotFound()
		}
		return domain.AssistanceRequest{}, domain.ErrDBUnavailable(err)
	}
	return req, nil
}

func (r *RequestRepo) ListActive(ctx context.Context) ([]domain.AssistanceRequest, error) {
	const q = `
SELECT ` + requestColumns + `
FROM requests
WHERE is_active = TRUE
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.AssistanceRequest
	for rows.Next() {
		req, err := scanRequest(rows.Scan)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *RequestRepo) Deactivate(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	const q = `
UPDATE requests
SET is_active = FALSE
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrRequestNotFound()
	}
	return nil
}

func (r *RequestRepo) CountByStatus(ctx context.Context) (int, int, error) {
	const q = `
SELECT
  COUNT(1) FILTER (WHERE is_active),
  COUNT(1) FILTER (WHERE NOT is_active)
FROM requests;
`
	var active, deactivated int
	if err := r.db.QueryRowContext(ctx, q).Scan(&active, &deactivated); err != nil {
		return 0, 0, domain.ErrDBUnavailable(err)
	}
	return active, deactivated, nil
}

func (r *RequestRepo) CountByLocation(ctx context.Context) ([]domain.LocationStat, error) {
	const q = `
SELECT location, COUNT(1)
FROM requests
GROUP BY location
ORDER BY COUNT(1) DESC, location ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.LocationStat
	for rows.Next() {
		var st domain.LocationStat
		if err := rows.Scan(&st.Location, &st.Count); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}
