package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transit-delay-service/internal/domain"
	"transit-delay-service/internal/platform/obs"
)

// SQLite-backed implementation of the UserRepository port.
type SqliteUserRepository struct{ DB *sql.DB }

func NewSqliteUserRepository(db *sql.DB) *SqliteUserRepository {
	return &SqliteUserRepository{DB: db}
}

// Insert a new account. The primary key on email rejects duplicates.
func (s *SqliteUserRepository) CreateUser(ctx context.Context, user domain.User) (err error) {
	defer obs.Time("users.CreateUser")(&err)

	if s.DB == nil {
		return errors.New("sqlite user repository: DB is nil")
	}

	query := `
	INSERT INTO users (email, password_hash, name)
	VALUES (?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, query, user.Email, user.PasswordHash, user.Name); err != nil {
		return fmt.Errorf("create user %q: %w", user.Email, err)
	}

	return nil
}

// Fetch an account by email. Returns (nil, nil) when no row matches.
func (s *SqliteUserRepository) FindUser(ctx context.Context, email string) (_ *domain.User, err error) {
	defer obs.Time("users.FindUser")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite user repository: DB is nil")
	}

	query := `
	SELECT email, password_hash, name
	FROM users
	WHERE email = ?;
	`
	var u domain.User
	err = s.DB.QueryRowContext(ctx, query, email).Scan(&u.Email, &u.PasswordHash, &u.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %q: %w", email, err)
	}

	return &u, nil
}
