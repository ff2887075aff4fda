package models

// Service is one priced offering of a business, derived from the raw
// services field.
type Service struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	PriceFrom       *float64 `json:"price_from,omitempty"`
	PriceTo         *float64 `json:"price_to,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
}

// OpeningHours is one row of a business opening schedule.
type OpeningHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}
