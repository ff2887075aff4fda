package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"groomer-directory/internal/models"
	"groomer-directory/internal/service"
	"groomer-directory/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, dir *MockDirectory, resolver *MockResolver, contact *MockContactService, sitemap *MockSitemapService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	return NewRouter(Handlers{
		Pages:   NewPageHandler(dir, resolver),
		API:     NewAPIHandler(dir, resolver),
		Contact: NewContactHandler(contact),
		Sitemap: NewSitemapHandler(sitemap),
	}, tmpl, web.Static())
}

func TestPageHandler(t *testing.T) {
	chelsea := models.Location{ID: 1, Name: "Chelsea"}
	northLondon := models.Location{ID: 2, Name: "North London"}
	puppy := models.Specialization{ID: 3, Name: "Puppy Grooming"}
	paws := models.Business{ID: 4, Name: "Chelsea Paws", Slug: strPtr("chelsea-paws")}
	defaultParams := service.BrowseParams{Sort: service.SortRating}

	tests := []struct {
		name             string
		path             string
		setup            func(d *MockDirectory, r *MockResolver)
		expectedStatus   int
		expectedLocation string
		bodyContains     []string
	}{
		{
			name: "home page",
			path: "/",
			setup: func(d *MockDirectory, r *MockResolver) {
				d.On("Home", mock.Anything).Return(&service.HomePage{
					Meta:      service.PageMeta{Heading: "Find the Best Dog Groomers in London", Title: "Home"},
					Locations: []models.Location{{ID: 1, Name: "North London", BusinessCount: 4}},
					TopRated:  []service.BusinessView{{ID: 4, Name: "Chelsea Paws", Path: "/groomers/chelsea-paws"}},
				})
			},
			expectedStatus: http.StatusOK,
			bodyContains:   []string{"Find the Best Dog Groomers in London", `href="/groomers/north-london"`, "Chelsea Paws"},
		},
		{
			name: "browse page with unknown sort falls back to rating",
			path: "/groomers?sort=price&location=chelsea",
			setup: func(d *MockDirectory, r *MockResolver) {
				d.On("Browse", mock.Anything, service.BrowseParams{Location: "chelsea", Sort: service.SortRating}).
					Return(&service.BrowsePage{Meta: service.PageMeta{Heading: "Dog Groomers in Chelsea"}}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   []string{"Dog Groomers in Chelsea", "No groomers match your filters."},
		},
		{
			name: "location page",
			path: "/groomers/chelsea",
			setup: func(d *MockDirectory, r *MockResolver) {
				r.On("Resolve", mock.Anything, "chelsea").Return(service.Resolution{Kind: service.KindLocation, Location: &chelsea}, nil)
				d.On("LocationPage", mock.Anything, chelsea, defaultParams).Return(&service.BrowsePage{
					Meta:       service.PageMeta{Heading: "Dog Groomers in Chelsea", Canonical: "https://example.com/groomers/chelsea"},
					Featured:   &service.BusinessView{ID: 4, Name: "Chelsea Paws", Featured: true},
					Businesses: []service.BusinessView{{ID: 5, Name: "Kings Road Cuts"}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   []string{"Dog Groomers in Chelsea", "Featured Groomer", "Kings Road Cuts", `rel="canonical" href="https://example.com/groomers/chelsea"`},
		},
		{
			name: "fuzzy location redirects to canonical slug keeping query",
			path: "/groomers/north?sort=name",
			setup: func(d *MockDirectory, r *MockResolver) {
				r.On("Resolve", mock.Anything, "north").Return(service.Resolution{Kind: service.KindLocation, Location: &northLondon, Fuzzy: true}, nil)
			},
			expectedStatus:   http.StatusMovedPermanently,
			expectedLocation: "/groomers/north-london?sort=name",
		},
		{
			name: "business profile",
			path: "/groomers/chelsea-paws",
			setup: func(d *MockDirectory, r *MockResolver) {
				r.On("Resolve", mock.Anything, "chelsea-paws").Return(service.Resolution{Kind: service.KindBusiness, Business: &paws}, nil)
				d.On("Profile", paws).Return(&service.BusinessProfile{
					Meta:        service.PageMeta{Title: "Chelsea Paws"},
					Business:    service.BusinessView{ID: 4, Name: "Chelsea Paws", OpeningHours: []models.OpeningHours{{Day: "Sunday", Hours: "Closed"}}},
					FAQs:        service.BusinessFAQs(nil),
					Breadcrumbs: `{"@type":"BreadcrumbList"}`,
				})
			},
			expectedStatus: http.StatusOK,
			bodyContains:   []string{"<h1>Chelsea Paws</h1>", `{"@type":"BreadcrumbList"}`, "Sunday", "How often should I get my dog groomed?"},
		},
		{
			name: "specialization under groomers redirects to service page",
			path: "/groomers/puppy-grooming",
			setup: func(d *MockDirectory, r *MockResolver) {
				r.On("Resolve", mock.Anything, "puppy-grooming").Return(service.Resolution{Kind: service.KindSpecialization, Specialization: &puppy}, nil)
			},
			expectedStatus:   http.StatusMovedPermanently,
			expectedLocation: "/service/puppy-grooming",
		},
		{
			name: "unknown slug",
			path: "/groomers/zzz",
			setup: func(d *MockDirectory, r *MockResolver) {
				r.On("Resolve", mock.Anything, "zzz").Return(service.Resolution{Kind: service.KindNone}, nil)
			},
			expectedStatus: http.StatusNotFound,
			bodyContains:   []string{"Page Not Found"},
		},
		{
			name: "ambiguous slug in strict mode",
			path: "/groomers/mobile",
			setup: func(d *MockDirectory, r *MockResolver) {
				r.On("Resolve", mock.Anything, "mobile").Return(service.Resolution{Kind: service.KindNone}, service.ErrAmbiguousMatch)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "specialization page",
			path: "/service/puppy-grooming",
			setup: func(d *MockDirectory, r *MockResolver) {
				r.On("ResolveSpecialization", mock.Anything, "puppy-grooming").Return(&puppy, nil)
				d.On("SpecializationPage", mock.Anything, puppy, defaultParams).
					Return(&service.BrowsePage{Meta: service.PageMeta{Heading: "Puppy Grooming Dog Grooming Services in London"}}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   []string{"Puppy Grooming Dog Grooming Services in London"},
		},
		{
			name: "partial specialization slug redirects",
			path: "/service/puppy",
			setup: func(d *MockDirectory, r *MockResolver) {
				r.On("ResolveSpecialization", mock.Anything, "puppy").Return(&puppy, nil)
			},
			expectedStatus:   http.StatusMovedPermanently,
			expectedLocation: "/service/puppy-grooming",
		},
		{
			name: "unknown specialization",
			path: "/service/cats",
			setup: func(d *MockDirectory, r *MockResolver) {
				r.On("ResolveSpecialization", mock.Anything, "cats").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "top level slug redirects to canonical page",
			path: "/chelsea",
			setup: func(d *MockDirectory, r *MockResolver) {
				r.On("Resolve", mock.Anything, "chelsea").Return(service.Resolution{Kind: service.KindLocation, Location: &chelsea}, nil)
			},
			expectedStatus:   http.StatusMovedPermanently,
			expectedLocation: "/groomers/chelsea",
		},
		{
			name:           "nested unknown path",
			path:           "/a/b/c",
			setup:          func(d *MockDirectory, r *MockResolver) {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := new(MockDirectory)
			resolver := new(MockResolver)
			tt.setup(dir, resolver)
			router := newTestRouter(t, dir, resolver, new(MockContactService), new(MockSitemapService))

			w := httptest.NewRecorder()
			req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
			}
			for _, s := range tt.bodyContains {
				assert.Contains(t, w.Body.String(), s)
			}
			dir.AssertExpectations(t)
			resolver.AssertExpectations(t)
		})
	}
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, new(MockDirectory), new(MockResolver), new(MockContactService), new(MockSitemapService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_StaticAssets(t *testing.T) {
	router := newTestRouter(t, new(MockDirectory), new(MockResolver), new(MockContactService), new(MockSitemapService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, service.DefaultImage, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<svg")
}
