package service

import (
	"context"
	"math/rand/v2"
	"testing"

	"groomer-directory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPickFeatured_RandomTierIsUniform(t *testing.T) {
	candidates := []models.Business{
		business(1, "Qualified A", floatPtr(4.6), 20),
		business(2, "Below rating", floatPtr(4.4), 200),
		business(3, "Qualified B", floatPtr(4.5), 15),
		business(4, "Too few reviews", floatPtr(5.0), 14),
		business(5, "Qualified C", floatPtr(4.9), 90),
	}
	intn := rand.New(rand.NewPCG(42, 7)).IntN

	const draws = 30000
	counts := make(map[int]int)
	for range draws {
		picked := PickFeatured(candidates, intn)
		require.NotNil(t, picked)
		counts[picked.ID]++
	}

	assert.Len(t, counts, 3, "only qualifying candidates are picked")
	for _, id := range []int{1, 3, 5} {
		assert.InDelta(t, draws/3, counts[id], draws*0.02, "candidate %d", id)
	}
}

func TestPickFeatured(t *testing.T) {
	flagged := business(3, "Flagged", floatPtr(3.0), 1)
	flagged.Featured = true

	tests := []struct {
		name       string
		candidates []models.Business
		pick       int
		expectedID int
		expectNil  bool
	}{
		{
			name: "flagged business wins over better rated ones",
			candidates: []models.Business{
				business(1, "Top", floatPtr(5.0), 100),
				flagged,
			},
			expectedID: 3,
		},
		{
			name: "random choice among qualified businesses",
			candidates: []models.Business{
				business(1, "Qualified A", floatPtr(4.6), 20),
				business(2, "Too few reviews", floatPtr(4.9), 14),
				business(3, "Qualified B", floatPtr(4.5), 15),
			},
			pick:       1,
			expectedID: 3,
		},
		{
			name: "best rated fallback breaks ties by reviews",
			candidates: []models.Business{
				business(1, "A", floatPtr(4.3), 5),
				business(2, "B", floatPtr(4.3), 9),
				business(3, "C", floatPtr(4.1), 50),
			},
			expectedID: 2,
		},
		{
			name: "best rated fallback keeps first on full tie",
			candidates: []models.Business{
				business(1, "A", floatPtr(4.0), 5),
				business(2, "B", floatPtr(4.0), 5),
			},
			expectedID: 1,
		},
		{
			name: "nothing qualifies",
			candidates: []models.Business{
				business(1, "A", floatPtr(3.9), 500),
				business(2, "B", nil, 10),
			},
			expectNil: true,
		},
		{
			name:      "no candidates",
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var poolSize int
			intn := func(n int) int {
				poolSize = n
				return tt.pick
			}

			result := PickFeatured(tt.candidates, intn)

			if tt.expectNil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.expectedID, result.ID)
			if tt.pick > 0 {
				assert.Equal(t, 2, poolSize)
			}
		})
	}
}

func TestPickFeatured_ReturnsCopy(t *testing.T) {
	candidates := []models.Business{business(1, "A", floatPtr(4.2), 3)}

	result := PickFeatured(candidates, nil)
	require.NotNil(t, result)
	result.Name = "changed"

	assert.Equal(t, "A", candidates[0].Name)
}

func TestFeaturedService_ForLocation(t *testing.T) {
	mockRepo := new(MockRepository)
	locationID := 2
	mockRepo.On("ListBusinesses", mock.Anything, models.BusinessFilter{LocationID: &locationID}).
		Return([]models.Business{
			business(1, "A", floatPtr(4.7), 30),
			business(2, "B", floatPtr(4.9), 60),
		}, nil)

	svc := NewFeaturedService(mockRepo, WithRandom(func(n int) int { return n - 1 }))
	result := svc.ForLocation(context.Background(), locationID)

	require.NotNil(t, result)
	assert.Equal(t, 2, result.ID)
	mockRepo.AssertExpectations(t)
}

func TestFeaturedService_ForLocationStoreFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ListBusinesses", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	svc := NewFeaturedService(mockRepo)

	assert.Nil(t, svc.ForLocation(context.Background(), 1))
}

func TestFeaturedService_ForSpecialization(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(m *MockRepository)
		expectedID int
		expectNil  bool
	}{
		{
			name: "picks among offering businesses",
			setup: func(m *MockRepository) {
				m.On("BusinessIDsBySpecialization", mock.Anything, 5).Return([]int{4, 8}, nil)
				m.On("ListBusinesses", mock.Anything, models.BusinessFilter{IDs: []int{4, 8}}).
					Return([]models.Business{
						business(4, "A", floatPtr(4.2), 2),
						business(8, "B", floatPtr(4.4), 2),
					}, nil)
			},
			expectedID: 8,
		},
		{
			name: "no offering businesses",
			setup: func(m *MockRepository) {
				m.On("BusinessIDsBySpecialization", mock.Anything, 5).Return([]int{}, nil)
			},
			expectNil: true,
		},
		{
			name: "offering lookup failure",
			setup: func(m *MockRepository) {
				m.On("BusinessIDsBySpecialization", mock.Anything, 5).Return(nil, assert.AnError)
			},
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setup(mockRepo)
			svc := NewFeaturedService(mockRepo)

			result := svc.ForSpecialization(context.Background(), 5)

			if tt.expectNil {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, tt.expectedID, result.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
