package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rental-hub/internal/domain"
)

// DashboardRepository arma las vistas agregadas por rol.
type DashboardRepository interface {
	OwnerSummary(ctx context.Context, ownerUserID int64) ([]domain.OwnerDashboardEntry, error)
	TenantPropertyTitle(ctx context.Context, propertyID int64) (string, error)
}

// PgDashboardRepository implementa DashboardRepository usando pgxpool.
type PgDashboardRepository struct {
	pool *pgxpool.Pool
}

func NewPgDashboardRepository(pool *pgxpool.Pool) *PgDashboardRepository {
	return &PgDashboardRepository{pool: pool}
}

// OwnerSummary calcula yield y años de repago por propiedad rentada del dueño.
func (r *PgDashboardRepository) OwnerSummary(ctx context.Context, ownerUserID int64) ([]domain.OwnerDashboardEntry, error) {
	const query = `
		SELECT
			p.property_id,
			p.title AS property_title,
			p.price AS property_price,
			r.monthly_rent,
			(r.monthly_rent * 12) AS annual_rent,
			ROUND(((r.monthly_rent * 12 / p.price) * 100)::numeric, 2) AS rental_yield_percent,
			p.price / (r.monthly_rent * 12) AS years_to_cover_price
		FROM properties AS p
		JOIN rentals AS r ON p.property_id = r.property_id
		WHERE p.owner_user_id = $1
		ORDER BY p.property_id
	`
	rows, err := r.pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.OwnerDashboardEntry
	for rows.Next() {
		var e domain.OwnerDashboardEntry
		if err := rows.Scan(
			&e.PropertyID, &e.PropertyTitle, &e.PropertyPrice,
			&e.MonthlyRent, &e.AnnualRent, &e.RentalYieldPercent, &e.YearsToCoverPrice,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PgDashboardRepository) TenantPropertyTitle(ctx context.Context, propertyID int64) (string, error) {
	const query = `
		SELECT title FROM properties WHERE property_id = $1
	`
	var title string
	err := r.pool.QueryRow(ctx, query, propertyID).Scan(&title)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}
	return title, err
}
