package service

import (
	"groomer-directory/internal/models"
	"groomer-directory/internal/slug"
)

// LocationPath is the canonical page path of a location.
func LocationPath(name string) string {
	return "/groomers/" + slug.Normalize(name)
}

// SpecializationPath is the canonical page path of a specialization.
func SpecializationPath(name string) string {
	return "/service/" + slug.Normalize(name)
}

// BusinessPath is the canonical profile path of a business.
func BusinessPath(b models.Business) string {
	return "/groomers/" + b.EffectiveSlug()
}
