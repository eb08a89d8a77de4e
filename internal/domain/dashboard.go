package domain

// OwnerDashboardEntry resume una propiedad rentada del dueño con sus
// métricas financieras precalculadas en la consulta.
type OwnerDashboardEntry struct {
	PropertyID         int64   `json:"property_id"`
	PropertyTitle      string  `json:"property_title"`
	PropertyPrice      int64   `json:"property_price"`
	MonthlyRent        float64 `json:"monthly_rent"`
	AnnualRent         float64 `json:"annual_rent"`
	RentalYieldPercent float64 `json:"rental_yield_percent"`
	YearsToCoverPrice  float64 `json:"years_to_cover_price"`
}

// InterestedTenant es un inquilino que marcó interés en una propiedad.
type InterestedTenant struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// TenantDashboardEntry es una propiedad likeada por el inquilino junto
// con el resto de interesados, en el orden que devuelve la consulta.
type TenantDashboardEntry struct {
	Title             string             `json:"title"`
	TotalLikes        int                `json:"total_likes"`
	InterestedTenants []InterestedTenant `json:"interested_tenants"`
}

// PropertyLikes agrega los interesados de una propiedad puntual.
type PropertyLikes struct {
	TotalLikes        int                `json:"total_likes"`
	InterestedTenants []InterestedTenant `json:"interested_tenants"`
}
