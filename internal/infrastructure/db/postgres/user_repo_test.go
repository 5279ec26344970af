package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpbridge/coord-service/internal/domain"
)

func newUserRepoMock(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepo(db), mock
}

func userRows(u domain.User) *sqlmock.Rows {
	var token any
	if u.VerificationToken != "" {
		token = u.VerificationToken
	}
	return sqlmock.NewRows([]string{
		"id", "name", "email", "password_hash", "role", "phone", "location",
		"bio", "profile_picture", "email_verified", "verification_token", "created_at",
	}).AddRow(
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Phone, u.Location,
		u.Bio, u.ProfilePicture, u.EmailVerified, token, u.CreatedAt,
	)
}

func sampleUser() domain.User {
	return domain.User{
		ID:             "6e8bdc6a-9a20-4f91-a5d1-0a1f0e9c2b11",
		Name:           "Dana",
		Email:          "dana@example.com",
		PasswordHash:   "$2a$10$abcdefghijklmnopqrstuv",
		Role:           "user",
		ProfilePicture: "user_icon2.jpeg",
		EmailVerified:  true,
		CreatedAt:      time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestUserRepo_GetByEmail(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	want := sampleUser()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WithArgs("dana@example.com").
		WillReturnRows(userRows(want))

	got, err := repo.GetByEmail(context.Background(), "  Dana@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Email, got.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, domain.Is(err, "user_not_found"))
}

func TestUserRepo_GetByEmail_DBError(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetByEmail(context.Background(), "dana@example.com")
	require.Error(t, err)
	assert.True(t, domain.Is(err, "db_unavailable"))
}

func TestUserRepo_GetByVerificationToken(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	want := sampleUser()
	want.EmailVerified = false
	want.VerificationToken = "deadbeef"

	mock.ExpectQuery(`SELECT .+ FROM users WHERE verification_token = \$1`).
		WithArgs("deadbeef").
		WillReturnRows(userRows(want))

	got, err := repo.GetByVerificationToken(context.Background(), "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", got.VerificationToken)
	assert.False(t, got.EmailVerified)
}

func TestUserRepo_Create(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	u := sampleUser()
	u.EmailVerified = false
	u.VerificationToken = "cafebabe"

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, u.Role,
			u.Phone, u.Location, u.Bio, u.ProfilePicture,
			u.EmailVerified, u.VerificationToken).
		WillReturnRows(userRows(u))

	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, "cafebabe", got.VerificationToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	u := sampleUser()

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_uq"`))

	_, err := repo.Create(context.Background(), u)
	require.Error(t, err)
	assert.True(t, domain.Is(err, "email_already_registered"))

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindValidation, de.Kind)
}

func TestUserRepo_MarkEmailVerified(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(`UPDATE users SET email_verified = TRUE`).
		WithArgs("uid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkEmailVerified(context.Background(), "uid-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_MarkEmailVerified_NoSuchUser(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(`UPDATE users SET email_verified = TRUE`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkEmailVerified(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, domain.Is(err, "user_not_found"))
}

func TestUserRepo_UpdateProfile_PartialMerge(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	want := sampleUser()
	want.Phone = "555-0100"

	phone := "555-0100"
	mock.ExpectQuery(`UPDATE users SET phone`).
		WithArgs(want.ID, &phone, nil, nil, nil).
		WillReturnRows(userRows(want))

	got, err := repo.UpdateProfile(context.Background(), want.ID, domain.ProfileUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", got.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateProfile_NotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	bio := "hi"
	mock.ExpectQuery(`UPDATE users SET phone`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.UpdateProfile(context.Background(), "ghost", domain.ProfileUpdate{Bio: &bio})
	require.Error(t, err)
	assert.True(t, domain.Is(err, "user_not_found"))
}

func TestUserRepo_CountUsers(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`SELECT COUNT\(1\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}
