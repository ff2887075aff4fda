package models

// Specialization is a named service category such as "Puppy Grooming".
type Specialization struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IconType    *string `json:"icon_type,omitempty"`
}
