package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"groomer-directory/internal/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClient is a mock implementation of the Client interface
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}

func (m *MockClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return redis.NewStatusResult("OK", args.Error(0))
}

func (m *MockClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return redis.NewIntResult(int64(len(keys)), args.Error(0))
}

// MockStore is a mock implementation of the Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListLocations(ctx context.Context) ([]models.Location, error) {
	args := m.Called(ctx)
	locs, _ := args.Get(0).([]models.Location)
	return locs, args.Error(1)
}

func (m *MockStore) ListSpecializations(ctx context.Context) ([]models.Specialization, error) {
	args := m.Called(ctx)
	specs, _ := args.Get(0).([]models.Specialization)
	return specs, args.Error(1)
}

func TestVocabulary_ListLocations(t *testing.T) {
	locations := []models.Location{{ID: 1, Name: "Chelsea", BusinessCount: 3}}
	encoded := `[{"id":1,"name":"Chelsea","business_count":3}]`

	tests := []struct {
		name        string
		setup       func(c *MockClient, s *MockStore)
		expected    []models.Location
		expectError bool
	}{
		{
			name: "cache hit skips the store",
			setup: func(c *MockClient, s *MockStore) {
				c.On("Get", mock.Anything, locationsKey).Return(encoded, nil)
			},
			expected: locations,
		},
		{
			name: "cache miss loads and stores",
			setup: func(c *MockClient, s *MockStore) {
				c.On("Get", mock.Anything, locationsKey).Return("", redis.Nil)
				s.On("ListLocations", mock.Anything).Return(locations, nil)
				c.On("Set", mock.Anything, locationsKey, []byte(encoded), time.Minute).Return(nil)
			},
			expected: locations,
		},
		{
			name: "redis outage falls back to the store",
			setup: func(c *MockClient, s *MockStore) {
				c.On("Get", mock.Anything, locationsKey).Return("", errors.New("connection refused"))
				s.On("ListLocations", mock.Anything).Return(locations, nil)
				c.On("Set", mock.Anything, locationsKey, mock.Anything, time.Minute).Return(errors.New("connection refused"))
			},
			expected: locations,
		},
		{
			name: "corrupt entry is reloaded",
			setup: func(c *MockClient, s *MockStore) {
				c.On("Get", mock.Anything, locationsKey).Return("{not json", nil)
				s.On("ListLocations", mock.Anything).Return(locations, nil)
				c.On("Set", mock.Anything, locationsKey, mock.Anything, time.Minute).Return(nil)
			},
			expected: locations,
		},
		{
			name: "store failure is returned",
			setup: func(c *MockClient, s *MockStore) {
				c.On("Get", mock.Anything, locationsKey).Return("", redis.Nil)
				s.On("ListLocations", mock.Anything).Return(nil, assert.AnError)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockClient)
			store := new(MockStore)
			tt.setup(client, store)

			result, err := NewVocabulary(store, client, time.Minute).ListLocations(context.Background())

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			client.AssertExpectations(t)
			store.AssertExpectations(t)
		})
	}
}

func TestVocabulary_ListSpecializations(t *testing.T) {
	client := new(MockClient)
	store := new(MockStore)
	specs := []models.Specialization{{ID: 2, Name: "Puppy Grooming"}}

	client.On("Get", mock.Anything, specializationsKey).Return("", redis.Nil)
	store.On("ListSpecializations", mock.Anything).Return(specs, nil)
	client.On("Set", mock.Anything, specializationsKey, mock.Anything, time.Hour).Return(nil)

	result, err := NewVocabulary(store, client, time.Hour).ListSpecializations(context.Background())

	require.NoError(t, err)
	assert.Equal(t, specs, result)
	client.AssertExpectations(t)
}

func TestVocabulary_Invalidate(t *testing.T) {
	client := new(MockClient)
	client.On("Del", mock.Anything, []string{locationsKey, specializationsKey}).Return(nil)

	err := NewVocabulary(new(MockStore), client, time.Minute).Invalidate(context.Background())

	assert.NoError(t, err)
	client.AssertExpectations(t)
}
