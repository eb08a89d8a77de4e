package domain

type Property struct {
	ID           int64  `json:"property_id"`
	Title        string `json:"title"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Price        int64  `json:"price"`
	Status       string `json:"status"`
	Bedrooms     int    `json:"bedrooms"`
	Bathrooms    int    `json:"bathrooms"`
	AreaSqft     int    `json:"area_sqft"`
	PropertyType string `json:"property_type"`
	ListedDate   string `json:"listed_date"`
	OwnerUserID  int64  `json:"owner_user_id"`
}

// StatusAvailable es el único estado visible en el feed público.
const StatusAvailable = "Available"
