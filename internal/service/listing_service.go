package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"rental-hub/internal/domain"
	"rental-hub/internal/repository"
)

var (
	ErrAlreadyLiked      = errors.New("property already liked")
	ErrNoOwnerProperties = errors.New("no properties for owner")
	ErrNoLikedProperties = errors.New("no liked properties")
	ErrNoLikes           = errors.New("no likes for property")
	ErrInvalidProperty   = errors.New("invalid property data")
)

// ListingService coordina el feed, los likes y los dashboards por rol.
type ListingService struct {
	logger     *zap.Logger
	properties repository.PropertyRepository
	likes      repository.LikeRepository
	dashboards repository.DashboardRepository
}

func NewListingService(
	logger *zap.Logger,
	properties repository.PropertyRepository,
	likes repository.LikeRepository,
	dashboards repository.DashboardRepository,
) *ListingService {
	return &ListingService{
		logger:     logger,
		properties: properties,
		likes:      likes,
		dashboards: dashboards,
	}
}

// ListAvailable devuelve el feed compartido. Una lista vacía es un estado
// válido y se devuelve tal cual; el cliente decide cómo mostrarla.
func (s *ListingService) ListAvailable(ctx context.Context) ([]domain.Property, error) {
	return s.properties.ListAvailable(ctx)
}

// AddProperty alta de propiedad con los campos completos del listado.
func (s *ListingService) AddProperty(ctx context.Context, p domain.Property) (int64, error) {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.City) == "" || p.Price <= 0 {
		return 0, ErrInvalidProperty
	}
	if p.Status == "" {
		p.Status = domain.StatusAvailable
	}
	return s.properties.Create(ctx, p)
}

// LikeProperty registra interés de un tenant. No hay deduplicación del lado
// del cliente: el UNIQUE de la tabla es quien rechaza repetidos.
func (s *ListingService) LikeProperty(ctx context.Context, propertyID, tenantUserID int64) error {
	err := s.likes.Create(ctx, propertyID, tenantUserID)
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrAlreadyLiked
	}
	return err
}

// PropertyLikes agrega total e interesados de una propiedad puntual.
func (s *ListingService) PropertyLikes(ctx context.Context, propertyID int64) (domain.PropertyLikes, error) {
	tenants, err := s.likes.InterestedTenants(ctx, propertyID)
	if err != nil {
		return domain.PropertyLikes{}, err
	}
	if len(tenants) == 0 {
		return domain.PropertyLikes{}, ErrNoLikes
	}
	return domain.PropertyLikes{
		TotalLikes:        len(tenants),
		InterestedTenants: tenants,
	}, nil
}

// OwnerDashboard arma las métricas financieras del dueño.
func (s *ListingService) OwnerDashboard(ctx context.Context, ownerUserID int64) ([]domain.OwnerDashboardEntry, error) {
	entries, err := s.dashboards.OwnerSummary(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoOwnerProperties
	}
	return entries, nil
}

// TenantDashboard arma, por cada propiedad likeada por el tenant, el total
// de likes y la lista de interesados en el orden devuelto por la consulta.
func (s *ListingService) TenantDashboard(ctx context.Context, tenantUserID int64) ([]domain.TenantDashboardEntry, error) {
	ids, err := s.likes.LikedPropertyIDs(ctx, tenantUserID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNoLikedProperties
	}

	var entries []domain.TenantDashboardEntry
	for _, propertyID := range ids {
		title, err := s.dashboards.TenantPropertyTitle(ctx, propertyID)
		if err != nil {
			s.logger.Warn("tenant dashboard property lookup failed",
				zap.Int64("property_id", propertyID), zap.Error(err))
			continue
		}
		tenants, err := s.likes.InterestedTenants(ctx, propertyID)
		if err != nil {
			return nil, err
		}
		if tenants == nil {
			// Una propiedad likeada sin interesados resolubles igual se
			// devuelve, con lista vacía en lugar de null.
			tenants = []domain.InterestedTenant{}
		}
		entries = append(entries, domain.TenantDashboardEntry{
			Title:             title,
			TotalLikes:        len(tenants),
			InterestedTenants: tenants,
		})
	}
	return entries, nil
}
