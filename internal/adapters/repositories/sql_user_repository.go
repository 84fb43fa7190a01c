package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transit-delay-service/internal/domain"
	"transit-delay-service/internal/platform/obs"
)

// Postgres-backed implementation of the UserRepository port, for deployments
// that point DATABASE_URL at a shared instance instead of the local SQLite
// file.
type SQLUserRepository struct{ DB *sql.DB }

func NewSQLUserRepository(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{DB: db}
}

func (s *SQLUserRepository) CreateUser(ctx context.Context, user domain.User) (err error) {
	defer obs.Time("users.CreateUser")(&err)

	if s.DB == nil {
		return errors.New("sql user repository: DB is nil")
	}

	query := `
	INSERT INTO users (email, password_hash, name)
	VALUES ($1, $2, $3);
	`
	if _, err := s.DB.ExecContext(ctx, query, user.Email, user.PasswordHash, user.Name); err != nil {
		return fmt.Errorf("create user %q: %w", user.Email, err)
	}

	return nil
}

func (s *SQLUserRepository) FindUser(ctx context.Context, email string) (_ *domain.User, err error) {
	defer obs.Time("users.FindUser")(&err)

	if s.DB == nil {
		return nil, errors.New("sql user repository: DB is nil")
	}

	query := `
	SELECT email, password_hash, name
	FROM users
	WHERE email = $1;
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
