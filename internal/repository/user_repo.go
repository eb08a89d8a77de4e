package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rental-hub/internal/domain"
)

// UserRepository define el contrato de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, userType string) (int64, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Create(ctx context.Context, email, passwordHash, userType string) (int64, error) {
	const query = `
		INSERT INTO users (email, password_hash, user_type)
		VALUES ($1, $2, $3)
		RETURNING user_id
	`
	var id int64
	if err := r.pool.QueryRow(ctx, query, email, passwordHash, userType).Scan(&id); err != nil {
		return 0, translateUnique(err)
	}
	return id, nil
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const query = `
		SELECT user_id, email, password_hash, user_type
		FROM users
		WHERE email = $1
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.UserType,
	)
	return u, err
}
