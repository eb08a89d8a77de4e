package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rental-hub/internal/domain"
)

// PropertyRepository define el contrato de persistencia para propiedades.
type PropertyRepository interface {
	ListAvailable(ctx context.Context) ([]domain.Property, error)
	Create(ctx context.Context, p domain.Property) (int64, error)
}

// PgPropertyRepository implementa PropertyRepository usando pgxpool.
type PgPropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPgPropertyRepository(pool *pgxpool.Pool) *PgPropertyRepository {
	return &PgPropertyRepository{pool: pool}
}

func (r *PgPropertyRepository) ListAvailable(ctx context.Context) ([]domain.Property, error) {
	const query = `
		SELECT property_id, title, address, city, price, status,
		       bedrooms, bathrooms, area_sqft, property_type, listed_date, owner_user_id
		FROM properties
		WHERE status = $1
		ORDER BY property_id
	`
	rows, err := r.pool.Query(ctx, query, domain.StatusAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var props []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Address, &p.City, &p.Price, &p.Status,
			&p.Bedrooms, &p.Bathrooms, &p.AreaSqft, &p.PropertyType, &p.ListedDate, &p.OwnerUserID,
		); err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

func (r *PgPropertyRepository) Create(ctx context.Context, p domain.Property) (int64, error) {
	const query = `
		INSERT INTO properties (title, address, city, price, status,
			bedrooms, bathrooms, area_sqft, property_type, listed_date, owner_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING property_id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		p.Title, p.Address, p.City, p.Price, p.Status,
		p.Bedrooms, p.Bathrooms, p.AreaSqft, p.PropertyType, p.ListedDate, p.OwnerUserID,
	).Scan(&id)
	return id, err
}
