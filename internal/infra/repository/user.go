package repository

import (
	"context"
	"errors"
	"time"

	"eventdeck/internal/domain/user"
	"eventdeck/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const stmt = `
INSERT INTO users (id, email, password_hash, full_name, role, company, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, stmt,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.FullName(), u.Role().String(), u.Company(), u.IsActive())
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const query = `
SELECT id, email, password_hash, full_name, role, company, last_login, is_active, created_at, updated_at
FROM users
WHERE email = $1 AND is_active = TRUE`

	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const query = `
SELECT id, email, password_hash, full_name, role, company, last_login, is_active, created_at, updated_at
FROM users
WHERE id = $1 AND is_active = TRUE`

	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	const stmt = `UPDATE users SET last_login = $2, updated_at = now() WHERE id = $1`

	if _, err := r.pool.Exec(ctx, stmt, id, at); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                        uuid.UUID
		emailStr                  string
		passwordHash, fullName    string
		roleStr                   string
		company                   *string
		lastLogin                 *time.Time
		isActive                  bool
		createdAt, updatedAt      time.Time
	)

	err := row.Scan(&id, &emailStr, &passwordHash, &fullName, &roleStr, &company, &lastLogin, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	email, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored role is invalid", err)
	}

	return user.Reconstruct(id, email, passwordHash, fullName, role, company, lastLogin, isActive, createdAt, updatedAt), nil
}
