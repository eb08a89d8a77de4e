package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rental-hub/internal/domain"
)

// LikeRepository define el contrato de persistencia para likes de propiedades.
type LikeRepository interface {
	Create(ctx context.Context, propertyID, tenantUserID int64) error
	InterestedTenants(ctx context.Context, propertyID int64) ([]domain.InterestedTenant, error)
	LikedPropertyIDs(ctx context.Context, tenantUserID int64) ([]int64, error)
}

// PgLikeRepository implementa LikeRepository usando pgxpool.
type PgLikeRepository struct {
	pool *pgxpool.Pool
}

func NewPgLikeRepository(pool *pgxpool.Pool) *PgLikeRepository {
	return &PgLikeRepository{pool: pool}
}

func (r *PgLikeRepository) Create(ctx context.Context, propertyID, tenantUserID int64) error {
	const query = `
		INSERT INTO property_likes (property_id, tenant_user_id)
		VALUES ($1, $2)
	`
	_, err := r.pool.Exec(ctx, query, propertyID, tenantUserID)
	return translateUnique(err)
}

// InterestedTenants junta los datos de contacto de cada tenant que likeó
// la propiedad, en orden de inserción.
func (r *PgLikeRepository) InterestedTenants(ctx context.Context, propertyID int64) ([]domain.InterestedTenant, error) {
	const query = `
		SELECT pt.name, pt.phone, u.email
		FROM property_likes AS pl
		JOIN users AS u ON pl.tenant_user_id = u.user_id
		JOIN potential_tenants AS pt ON pl.tenant_user_id = pt.tenant_id
		WHERE pl.property_id = $1
		ORDER BY pl.like_id
	`
	rows, err := r.pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []domain.InterestedTenant
	for rows.Next() {
		var t domain.InterestedTenant
		if err := rows.Scan(&t.Name, &t.Phone, &t.Email); err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func (r *PgLikeRepository) LikedPropertyIDs(ctx context.Context, tenantUserID int64) ([]int64, error) {
	const query = `
		SELECT property_id
		FROM property_likes
		WHERE tenant_user_id = $1
		ORDER BY like_id
	`
	rows, err := r.pool.Query(ctx, query, tenantUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
