package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"groomer-directory/internal/models"
	"groomer-directory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PageHandler renders the public HTML pages
type PageHandler struct {
	pages    DirectoryPages
	resolver SegmentResolver
}

// Service interface for dependency injection
type DirectoryPages interface {
	Home(ctx context.Context) *service.HomePage
	Browse(ctx context.Context, p service.BrowseParams) (*service.BrowsePage, error)
	LocationPage(ctx context.Context, loc models.Location, p service.BrowseParams) (*service.BrowsePage, error)
	SpecializationPage(ctx context.Context, spec models.Specialization, p service.BrowseParams) (*service.BrowsePage, error)
	Profile(b models.Business) *service.BusinessProfile
	NotFound() service.PageMeta
}

// SegmentResolver maps URL slugs onto directory entities
type SegmentResolver interface {
	Resolve(ctx context.Context, segment string) (service.Resolution, error)
	ResolveSpecialization(ctx context.Context, segment string) (*models.Specialization, error)
}

// NewPageHandler creates a new page handler
func NewPageHandler(pages DirectoryPages, resolver SegmentResolver) *PageHandler {
	return &PageHandler{pages: pages, resolver: resolver}
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", h.pages.Home(c.Request.Context()))
}

// Groomers handles GET /groomers
func (h *PageHandler) Groomers(c *gin.Context) {
	page, err := h.pages.Browse(c.Request.Context(), browseParams(c))
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "listing.html", page)
}

// GroomerBySlug handles GET /groomers/:slug for locations and businesses
func (h *PageHandler) GroomerBySlug(c *gin.Context) {
	res, ok := h.resolve(c, c.Param("slug"))
	if !ok {
		return
	}
	if h.redirectToCanonical(c, res.CanonicalPath()) {
		return
	}

	switch res.Kind {
	case service.KindLocation:
		page, err := h.pages.LocationPage(c.Request.Context(), *res.Location, browseParams(c))
		if err != nil {
			h.serverError(c, err)
			return
		}
		c.HTML(http.StatusOK, "listing.html", page)
	case service.KindBusiness:
		c.HTML(http.StatusOK, "business.html", h.pages.Profile(*res.Business))
	default:
		h.notFound(c)
	}
}

// Specialization handles GET /service/:slug
func (h *PageHandler) Specialization(c *gin.Context) {
	spec, err := h.resolver.ResolveSpecialization(c.Request.Context(), c.Param("slug"))
	if err != nil || spec == nil {
		h.notFound(c)
		return
	}
	if h.redirectToCanonical(c, service.SpecializationPath(spec.Name)) {
		return
	}

	page, err := h.pages.SpecializationPage(c.Request.Context(), *spec, browseParams(c))
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "listing.html", page)
}

// Segment handles unmatched single-segment paths such as /chelsea by
// redirecting to the canonical page of whatever the segment names.
func (h *PageHandler) Segment(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		h.notFound(c)
		return
	}

	segment := strings.Trim(c.Request.URL.Path, "/")
	if segment == "" || strings.Contains(segment, "/") {
		h.notFound(c)
		return
	}

	res, ok := h.resolve(c, segment)
	if !ok {
		return
	}
	h.redirectToCanonical(c, res.CanonicalPath())
}

func (h *PageHandler) resolve(c *gin.Context, segment string) (service.Resolution, bool) {
	res, err := h.resolver.Resolve(c.Request.Context(), segment)
	if err != nil {
		if errors.Is(err, service.ErrAmbiguousMatch) {
			log.Warn().Err(err).Str("segment", segment).Msg("ambiguous slug requested")
		}
		h.notFound(c)
		return res, false
	}
	if !res.Found() {
		h.notFound(c)
		return res, false
	}
	return res, true
}

// redirectToCanonical issues a permanent redirect when the request path is
// not the canonical one, keeping the query string.
func (h *PageHandler) redirectToCanonical(c *gin.Context, canonical string) bool {
	if canonical == "" || c.Request.URL.Path == canonical {
		return false
	}
	target := canonical
	if q := c.Request.URL.RawQuery; q != "" {
		target += "?" + q
	}
	c.Redirect(http.StatusMovedPermanently, target)
	return true
}

func (h *PageHandler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{"Meta": h.pages.NotFound()})
}

func (h *PageHandler) serverError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("failed to render page")
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Meta": service.PageMeta{
		Heading:     "Something went wrong",
		Title:       "Something went wrong",
		Description: "We could not load this page. Please try again shortly.",
	}})
}

// browseParams reads the listing filters. Unknown sort values fall back to
// the rating order.
func browseParams(c *gin.Context) service.BrowseParams {
	order, err := service.ParseSortOrder(c.Query("sort"))
	if err != nil {
		order = service.SortRating
	}
	return service.BrowseParams{
		Location:       c.Query("location"),
		Specialization: c.Query("specialization"),
		Search:         strings.TrimSpace(c.Query("search")),
		Sort:           order,
	}
}
