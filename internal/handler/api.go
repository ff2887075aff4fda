package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"groomer-directory/internal/models"
	"groomer-directory/internal/service"

	"github.com/gin-gonic/gin"
)

// APIHandler serves the JSON API
type APIHandler struct {
	directory DirectoryAPI
	resolver  SegmentResolver
}

// Service interface for dependency injection
type DirectoryAPI interface {
	ListGroomers(ctx context.Context, q service.ListingQuery) ([]service.BusinessView, error)
	Featured(ctx context.Context, locationID, specializationID *int) *service.BusinessView
	Locations(ctx context.Context) []models.Location
	Specializations(ctx context.Context) []service.SpecializationView
	View(b models.Business) service.BusinessView
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(directory DirectoryAPI, resolver SegmentResolver) *APIHandler {
	return &APIHandler{directory: directory, resolver: resolver}
}

// ResolveResponse describes what a slug names.
type ResolveResponse struct {
	Kind           service.Kind                `json:"kind"`
	Path           string                      `json:"path"`
	Fuzzy          bool                        `json:"fuzzy"`
	Ambiguous      bool                        `json:"ambiguous"`
	Location       *models.Location            `json:"location,omitempty"`
	Specialization *service.SpecializationView `json:"specialization,omitempty"`
	Business       *service.BusinessView       `json:"business,omitempty"`
}

// ListGroomers handles GET /api/groomers
//
//	@Summary	List groomers
//	@Tags		groomers
//	@Produce	json
//	@Param		location_id			query		int		false	"Location id"
//	@Param		specialization_id	query		int		false	"Specialization id"
//	@Param		search				query		string	false	"Case-insensitive name or description search"
//	@Param		sort				query		string	false	"rating, reviews or name"	default(rating)
//	@Param		exclude_id			query		int		false	"Business id to leave out"
//	@Success	200					{array}		service.BusinessView
//	@Failure	400					{object}	map[string]string
//	@Router		/api/groomers [get]
func (h *APIHandler) ListGroomers(c *gin.Context) {
	var q service.ListingQuery
	var err error

	if q.LocationID, err = optionalInt(c, "location_id"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location_id"})
		return
	}
	if q.SpecializationID, err = optionalInt(c, "specialization_id"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid specialization_id"})
		return
	}
	if q.ExcludeID, err = optionalInt(c, "exclude_id"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exclude_id"})
		return
	}
	if q.Sort, err = service.ParseSortOrder(c.Query("sort")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort must be one of rating, reviews, name"})
		return
	}
	q.Search = c.Query("search")

	groomers, err := h.directory.ListGroomers(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sort must be one of rating, reviews, name"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, groomers)
}

// Resolve handles GET /api/resolve/:slug
//
//	@Summary	Resolve a URL slug
//	@Tags		directory
//	@Produce	json
//	@Param		slug	path		string	true	"Path segment"
//	@Success	200		{object}	ResolveResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	409		{object}	map[string]string
//	@Router		/api/resolve/{slug} [get]
func (h *APIHandler) Resolve(c *gin.Context) {
	res, err := h.resolver.Resolve(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMalformedSegment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed slug"})
		case errors.Is(err, service.ErrAmbiguousMatch):
			c.JSON(http.StatusConflict, gin.H{"error": "slug names both a location and a specialization"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	if !res.Found() {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location, specialization or groomer matches this slug"})
		return
	}

	resp := ResolveResponse{
		Kind:      res.Kind,
		Path:      res.CanonicalPath(),
		Fuzzy:     res.Fuzzy,
		Ambiguous: res.Ambiguous,
		Location:  res.Location,
	}
	if res.Specialization != nil {
		v := service.NewSpecializationView(*res.Specialization)
		resp.Specialization = &v
	}
	if res.Business != nil {
		v := h.directory.View(*res.Business)
		resp.Business = &v
	}

	c.JSON(http.StatusOK, resp)
}

// Locations handles GET /api/locations
//
//	@Summary	List locations with business counts
//	@Tags		directory
//	@Produce	json
//	@Success	200	{array}	models.Location
//	@Router		/api/locations [get]
func (h *APIHandler) Locations(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.Locations(c.Request.Context()))
}

// Specializations handles GET /api/specializations
//
//	@Summary	List specializations
//	@Tags		directory
//	@Produce	json
//	@Success	200	{array}	service.SpecializationView
//	@Router		/api/specializations [get]
func (h *APIHandler) Specializations(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.Specializations(c.Request.Context()))
}

// Featured handles GET /api/featured
//
//	@Summary	Featured groomer of a location or specialization
//	@Tags		groomers
//	@Produce	json
//	@Param		location_id			query		int	false	"Location id"
//	@Param		specialization_id	query		int	false	"Specialization id"
//	@Success	200					{object}	service.BusinessView
//	@Failure	400					{object}	map[string]string
//	@Failure	404					{object}	map[string]string
//	@Router		/api/featured [get]
func (h *APIHandler) Featured(c *gin.Context) {
	locationID, err := optionalInt(c, "location_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location_id"})
		return
	}
	specializationID, err := optionalInt(c, "specialization_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid specialization_id"})
		return
	}
	if locationID == nil && specializationID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'location_id' or 'specialization_id'"})
		return
	}

	featured := h.directory.Featured(c.Request.Context(), locationID, specializationID)
	if featured == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no featured groomer"})
		return
	}

	c.JSON(http.StatusOK, featured)
}

func optionalInt(c *gin.Context, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
