package handler

import (
	"context"

	"groomer-directory/internal/models"
	"groomer-directory/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockDirectory is a mock implementation of the DirectoryPages and
// DirectoryAPI interfaces
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Home(ctx context.Context) *service.HomePage {
	args := m.Called(ctx)
	return args.Get(0).(*service.HomePage)
}

func (m *MockDirectory) Browse(ctx context.Context, p service.BrowseParams) (*service.BrowsePage, error) {
	args := m.Called(ctx, p)
	page, _ := args.Get(0).(*service.BrowsePage)
	return page, args.Error(1)
}

func (m *MockDirectory) LocationPage(ctx context.Context, loc models.Location, p service.BrowseParams) (*service.BrowsePage, error) {
	args := m.Called(ctx, loc, p)
	page, _ := args.Get(0).(*service.BrowsePage)
	return page, args.Error(1)
}

func (m *MockDirectory) SpecializationPage(ctx context.Context, spec models.Specialization, p service.BrowseParams) (*service.BrowsePage, error) {
	args := m.Called(ctx, spec, p)
	page, _ := args.Get(0).(*service.BrowsePage)
	return page, args.Error(1)
}

func (m *MockDirectory) Profile(b models.Business) *service.BusinessProfile {
	args := m.Called(b)
	return args.Get(0).(*service.BusinessProfile)
}

func (m *MockDirectory) NotFound() service.PageMeta {
	return service.PageMeta{Heading: "Page Not Found", Title: "Page Not Found"}
}

func (m *MockDirectory) ListGroomers(ctx context.Context, q service.ListingQuery) ([]service.BusinessView, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]service.BusinessView)
	return views, args.Error(1)
}

func (m *MockDirectory) Featured(ctx context.Context, locationID, specializationID *int) *service.BusinessView {
	args := m.Called(ctx, locationID, specializationID)
	v, _ := args.Get(0).(*service.BusinessView)
	return v
}

func (m *MockDirectory) Locations(ctx context.Context) []models.Location {
	args := m.Called(ctx)
	return args.Get(0).([]models.Location)
}

func (m *MockDirectory) Specializations(ctx context.Context) []service.SpecializationView {
	args := m.Called(ctx)
	return args.Get(0).([]service.SpecializationView)
}

func (m *MockDirectory) View(b models.Business) service.BusinessView {
	return service.BusinessView{ID: b.ID, Name: b.Name, Slug: b.EffectiveSlug(), Path: service.BusinessPath(b)}
}

// MockResolver is a mock implementation of the SegmentResolver interface
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, segment string) (service.Resolution, error) {
	args := m.Called(ctx, segment)
	return args.Get(0).(service.Resolution), args.Error(1)
}

func (m *MockResolver) ResolveSpecialization(ctx context.Context, segment string) (*models.Specialization, error) {
	args := m.Called(ctx, segment)
	spec, _ := args.Get(0).(*models.Specialization)
	return spec, args.Error(1)
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }
