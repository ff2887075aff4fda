package service

import (
	"context"

	"groomer-directory/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the repository interfaces
// consumed by this package.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindLocationByName(ctx context.Context, name string) (*models.Location, error) {
	args := m.Called(ctx, name)
	loc, _ := args.Get(0).(*models.Location)
	return loc, args.Error(1)
}

func (m *MockRepository) FindLocationsByNameContaining(ctx context.Context, fragment string) ([]models.Location, error) {
	args := m.Called(ctx, fragment)
	locs, _ := args.Get(0).([]models.Location)
	return locs, args.Error(1)
}

func (m *MockRepository) FindSpecializationByName(ctx context.Context, name string) (*models.Specialization, error) {
	args := m.Called(ctx, name)
	spec, _ := args.Get(0).(*models.Specialization)
	return spec, args.Error(1)
}

func (m *MockRepository) FindSpecializationsByNameContaining(ctx context.Context, fragment string) ([]models.Specialization, error) {
	args := m.Called(ctx, fragment)
	specs, _ := args.Get(0).([]models.Specialization)
	return specs, args.Error(1)
}

func (m *MockRepository) FindBusinessBySlug(ctx context.Context, slug string) (*models.Business, error) {
	args := m.Called(ctx, slug)
	b, _ := args.Get(0).(*models.Business)
	return b, args.Error(1)
}

func (m *MockRepository) FindBusinessByDerivedSlug(ctx context.Context, slug string) (*models.Business, error) {
	args := m.Called(ctx, slug)
	b, _ := args.Get(0).(*models.Business)
	return b, args.Error(1)
}

func (m *MockRepository) ListBusinesses(ctx context.Context, filter models.BusinessFilter) ([]models.Business, error) {
	args := m.Called(ctx, filter)
	bs, _ := args.Get(0).([]models.Business)
	return bs, args.Error(1)
}

func (m *MockRepository) BusinessIDsBySpecialization(ctx context.Context, specializationID int) ([]int, error) {
	args := m.Called(ctx, specializationID)
	ids, _ := args.Get(0).([]int)
	return ids, args.Error(1)
}

func (m *MockRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	args := m.Called(ctx)
	locs, _ := args.Get(0).([]models.Location)
	return locs, args.Error(1)
}

func (m *MockRepository) ListSpecializations(ctx context.Context) ([]models.Specialization, error) {
	args := m.Called(ctx)
	specs, _ := args.Get(0).([]models.Specialization)
	return specs, args.Error(1)
}

func (m *MockRepository) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func business(id int, name string, rating *float64, reviews int) models.Business {
	return models.Business{ID: id, Name: name, Rating: rating, ReviewCount: intPtr(reviews)}
}
