package client

// View-models listos para mostrar. Cada render reemplaza la región entera;
// acá no existe el patching incremental.

const noPropertiesMessage = "No available properties at the moment."

// PropertyCard es una tarjeta del feed.
type PropertyCard struct {
	PropertyID int64
	Title      string
	City       string
	Price      string
	CanLike    bool
}

// FeedView es la región del feed. Loaded distingue "todavía no se buscó"
// de "se buscó y vino vacío": solo el segundo caso muestra el placeholder.
type FeedView struct {
	Loaded      bool
	Cards       []PropertyCard
	Placeholder string
}

// RenderFeed arma las tarjetas en el orden recibido, sin ordenar nada.
// El affordance de like existe únicamente para un tenant.
func RenderFeed(props []Property, userType UserType) FeedView {
	if len(props) == 0 {
		return FeedView{Loaded: true, Placeholder: noPropertiesMessage}
	}
	cards := make([]PropertyCard, 0, len(props))
	for _, p := range props {
		cards = append(cards, PropertyCard{
			PropertyID: p.PropertyID,
			Title:      p.Title,
			City:       p.City,
			Price:      "₹" + p.Price.String(),
			CanLike:    userType == UserTypeTenant,
		})
	}
	return FeedView{Loaded: true, Cards: cards}
}

// RenderFeedError deja una sola tarjeta informativa con el mensaje.
func RenderFeedError(message string) FeedView {
	return FeedView{Loaded: true, Placeholder: message}
}

// OwnerCard muestra las dos métricas precalculadas, literales.
type OwnerCard struct {
	Title        string
	RentalYield  string
	PaybackYears string
}

// TenantCard muestra una propiedad likeada con sus interesados en el orden
// que los devolvió el servidor. Una entrada sin interesados igual se
// renderiza, con la lista inline vacía.
type TenantCard struct {
	Title      string
	TotalLikes int
	Interested []InterestedTenant
}

// DashboardView es la región del dashboard. Kind none significa región
// vacía (estado anónimo). Message reemplaza a las tarjetas cuando el fetch
// falló: una sola tarjeta con el texto del servidor.
type DashboardView struct {
	Kind        UserType
	OwnerCards  []OwnerCard
	TenantCards []TenantCard
	Message     string
}

// RenderOwnerDashboard mapea cada entrada a una tarjeta.
func RenderOwnerDashboard(entries []OwnerDashboardEntry) DashboardView {
	cards := make([]OwnerCard, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, OwnerCard{
			Title:        e.PropertyTitle,
			RentalYield:  e.RentalYieldPercent.String() + "%",
			PaybackYears: e.YearsToCoverPrice.String(),
		})
	}
	return DashboardView{Kind: UserTypeOwner, OwnerCards: cards}
}

// RenderTenantDashboard mapea cada entrada a una tarjeta.
func RenderTenantDashboard(entries []TenantDashboardEntry) DashboardView {
	cards := make([]TenantCard, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, TenantCard{
			Title:      e.Title,
			TotalLikes: e.TotalLikes,
			Interested: e.InterestedTenants,
		})
	}
	return DashboardView{Kind: UserTypeTenant, TenantCards: cards}
}

// RenderDashboardError arma la tarjeta única de falla para el rol dado.
func RenderDashboardError(kind UserType, message string) DashboardView {
	return DashboardView{Kind: kind, Message: message}
}
