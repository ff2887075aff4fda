package models

// Location is a named area of the city used to scope business listings.
// BusinessCount is derived by the store and is zero when not requested.
type Location struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	BusinessCount int    `json:"business_count"`
}
