package service

import (
	"strings"

	"groomer-directory/internal/models"
	"groomer-directory/internal/slug"
)

// Icon types used by the specialization badges.
const (
	IconGrooming  = "grooming"
	IconPuppy     = "puppy"
	IconBreed     = "breed"
	IconMedical   = "medical"
	IconMobile    = "mobile"
	IconStyling   = "styling"
	IconSensitive = "sensitive"
	IconSpa       = "spa"
	IconDefault   = "default"
)

var iconKeywords = []struct {
	icon     string
	keywords []string
}{
	{IconPuppy, []string{"puppy", "young"}},
	{IconBreed, []string{"breed", "specific", "poodle", "terrier"}},
	{IconMedical, []string{"medic", "health", "skin", "allerg", "condition"}},
	{IconMobile, []string{"mobile", "home"}},
	{IconStyling, []string{"style", "cut", "fashion", "show"}},
	{IconSensitive, []string{"sensitive", "nervous", "anxious", "gentle"}},
	{IconSpa, []string{"spa", "massage", "relax", "luxury"}},
	{IconGrooming, []string{"groom", "basic", "standard"}},
}

// IconType classifies a specialization name by keyword. The first matching
// group wins.
func IconType(name string) string {
	lower := strings.ToLower(name)
	for _, group := range iconKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.icon
			}
		}
	}
	return IconDefault
}

var fallbackDescriptions = []struct {
	keywords    []string
	description string
}{
	{[]string{"puppy", "young"}, "Gentle grooming services specially designed for puppies and young dogs. Our groomers are trained to make their first grooming experiences positive and stress-free."},
	{[]string{"breed"}, "Specialized grooming techniques tailored to the specific needs of different dog breeds. Our groomers understand the unique requirements for each breed's coat type and style."},
	{[]string{"medic", "health", "skin"}, "Special care for dogs with medical conditions, skin problems, or allergies. Our groomers work with gentle products and techniques suited for sensitive skin."},
	{[]string{"mobile", "home"}, "Convenient grooming services brought directly to your doorstep. Ideal for busy owners or dogs that get stressed during travel."},
	{[]string{"style", "cut"}, "Creative styling and custom cuts to make your dog stand out. From show cuts to fashion-forward styles, our groomers can create the perfect look."},
	{[]string{"sensitive", "nervous"}, "Specialized handling for anxious, nervous, or sensitive dogs. Our patient groomers create a calm environment and use gentle techniques for a stress-free experience."},
	{[]string{"spa"}, "Pamper your pet with our luxurious spa treatments. Including massages, aromatic baths, and conditioning treatments for a truly relaxing experience."},
}

// FallbackDescription is shown for specializations stored without a description.
func FallbackDescription(name string) string {
	lower := strings.ToLower(name)
	for _, fd := range fallbackDescriptions {
		for _, kw := range fd.keywords {
			if strings.Contains(lower, kw) {
				return fd.description
			}
		}
	}
	return "Professional " + lower + " services for dogs of all breeds and sizes. Our expert groomers ensure your pet looks and feels their best."
}

// SpecializationView is a specialization prepared for display.
type SpecializationView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Icon        string `json:"icon_type"`
}

// NewSpecializationView fills in the derived slug, icon and description.
func NewSpecializationView(s models.Specialization) SpecializationView {
	v := SpecializationView{
		ID:   s.ID,
		Name: s.Name,
		Slug: slug.Normalize(s.Name),
		Path: SpecializationPath(s.Name),
	}
	if s.Description != nil && strings.TrimSpace(*s.Description) != "" {
		v.Description = *s.Description
	} else {
		v.Description = FallbackDescription(s.Name)
	}
	if s.IconType != nil && *s.IconType != "" {
		v.Icon = *s.IconType
	} else {
		v.Icon = IconType(s.Name)
	}
	return v
}

func strPtr(s string) *string { return &s }

// DefaultSpecializations is the seed vocabulary for an empty directory.
var DefaultSpecializations = []models.Specialization{
	{Name: "Basic Grooming", Description: strPtr("Full grooming service including bath, brush, trim, and nail clipping."), IconType: strPtr(IconGrooming)},
	{Name: "Puppy Grooming", Description: strPtr(fallbackDescriptions[0].description)},
	{Name: "Breed-Specific Styling", Description: strPtr(fallbackDescriptions[1].description)},
	{Name: "Medical Grooming", Description: strPtr(fallbackDescriptions[2].description)},
	{Name: "Mobile Grooming", Description: strPtr(fallbackDescriptions[3].description)},
	{Name: "Show Dog Styling", Description: strPtr("Professional grooming for show dogs following breed-specific standards to ensure they look their best in competition.")},
	{Name: "Sensitive Dog Handling", Description: strPtr(fallbackDescriptions[5].description)},
	{Name: "Spa Treatments", Description: strPtr(fallbackDescriptions[6].description)},
	{Name: "Full Grooming Service", Description: strPtr("Complete grooming package including bath, haircut, nail trimming, ear cleaning, and more for a comprehensive care experience.")},
}
