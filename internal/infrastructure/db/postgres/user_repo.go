package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/helpbridge/coord-service/internal/domain"
)

const userColumns = `id, name, email, password_hash, role, phone, location, bio, profile_picture, email_verified, verification_token, created_at`

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ---------- helpers ----------

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func scanUserRow(row *sql.Row) (userRow, error) {
	var ur userRow
	err := row.Scan(
		&ur.ID,
		&ur.Name,
		&ur.Email,
		&ur.PasswordHash,
		&ur.Role,
		&ur.Phone,
		&ur.Location,
		&ur.Bio,
		&ur.ProfilePicture,
		&ur.EmailVerified,
		&ur.VerificationToken,
		&ur.CreatedAt,
	)
	return ur, err
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// ---------- account.UserRepo ----------

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}

	const q = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
LIMIT 1;
`
	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if isNoRows(err) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
LIMIT 1;
`
	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if isNoRows(err) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

// GetByVerificationToken is the one read path not keyed by identity.
// The partial unique index on verification_token keeps it off a full
// scan and guarantees at most one match.
func (r *UserRepo) GetByVerificationToken(ctx context.Context, token string) (domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.User{}, domain.ErrMissingField("token")
	}

	const q = `
SELECT ` + userColumns + `
FROM users
WHERE verification_token = $1
LIMIT 1;
`
	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q, token))
	if err != nil {
		if isNoRows(err) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = normalizeEmail(u.Email)
	if u.ID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	if u.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if u.PasswordHash == "" {
		return domain.User{}, domain.ErrMissingField("password_hash")
	}
	if u.Role == "" {
		u.Role = string(domain.RoleUser)
	}

	const q = `
INSERT INTO users (id, name, email, password_hash, role, phone, location, bio, profile_picture, email_verified, verification_token)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
RETURNING ` + userColumns + `;
`
	var token any
	if u.VerificationToken != "" {
		token = u.VerificationToken
	}

	var ur userRow
	err := r.db.QueryRowContext(ctx, q,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role,
		u.Phone, u.Location, u.Bio, u.ProfilePicture,
		u.EmailVerified, token,
	).Scan(
		&ur.ID,
		&ur.Name,
		&ur.Email,
		&ur.PasswordHash,
		&ur.Role,
		&ur.Phone,
		&ur.Location,
		&ur.Bio,
		&ur.ProfilePicture,
		&ur.EmailVerified,
		&ur.VerificationToken,
		&ur.CreatedAt,
	)
	if err != nil {
		// The unique constraint is the only duplicate guard; the
		// register path never pre-checks, so races collapse here.
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return domain.User{}, domain.ErrEmailAlreadyRegistered()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) MarkEmailVerified(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.ErrMissingField("user_id")
	}

	const q = `
UPDATE users
SET email_verified = TRUE,
    verification_token = NULL
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, userID)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrUserNotFound()
	}
	return nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (domain.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.User{}, domain.ErrMissingField("user_id")
	}

	// NULL params fall through COALESCE and keep the stored value;
	// explicit empty strings overwrite.
	const q = `
UPDATE users
SET phone           = COALESCE($2, phone),
    location        = COALESCE($3, location),
    bio             = COALESCE($4, bio),
    profile_picture = COALESCE($5, profile_picture)
WHERE id = $1
RETURNING ` + userColumns + `;
`
	var ur userRow
	err := r.db.QueryRowContext(ctx, q,
		userID, upd.Phone, upd.Location, upd.Bio, upd.ProfilePicture,
	).Scan(
		&ur.ID,
		&ur.Name,
		&ur.Email,
		&ur.PasswordHash,
		&ur.Role,
		&ur.Phone,
		&ur.Location,
		&ur.Bio,
		&ur.ProfilePicture,
		&ur.EmailVerified,
		&ur.VerificationToken,
		&ur.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

// ---------- coordination.UserCounter ----------

func (r *UserRepo) CountUsers(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(1) FROM users;`

	var n int
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, domain.ErrDBUnavailable(err)
	}
	return n, nil
}
