package main

import (
	"strings"
	"testing"

	"groomer-directory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := `name,location,rating,review_count,services,specializations,featured
Chelsea Paws,Chelsea,4.8,32,"Bath, Full Groom",Puppy Grooming; Spa Treatments,true
Kings Road Cuts,,,,,,
`

	records, err := parseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Chelsea Paws", first.Business.Name)
	assert.Equal(t, "Chelsea", first.Location)
	require.NotNil(t, first.Business.Rating)
	assert.Equal(t, 4.8, *first.Business.Rating)
	assert.Equal(t, 32, *first.Business.ReviewCount)
	assert.Equal(t, models.RawString, first.Business.Services.Kind)
	assert.Equal(t, "Bath, Full Groom", first.Business.Services.Text)
	assert.Equal(t, []string{"Puppy Grooming", "Spa Treatments"}, first.Specializations)
	assert.True(t, first.Business.Featured)

	second := records[1]
	assert.Nil(t, second.Business.Rating)
	assert.Nil(t, second.Business.Description)
	assert.Equal(t, models.RawAbsent, second.Business.Services.Kind)
	assert.Empty(t, second.Specializations)
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing name column", input: "title,location\nA,B\n"},
		{name: "empty name", input: "name,location\n,Chelsea\n"},
		{name: "rating out of range", input: "name,rating\nA,7\n"},
		{name: "negative review count", input: "name,review_count\nA,-1\n"},
		{name: "empty file", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestAssignSlugs(t *testing.T) {
	records := []BusinessRecord{
		{Business: models.Business{Name: "Chelsea Paws"}},
		{Business: models.Business{Name: "Chelsea  Paws!"}},
		{Business: models.Business{Name: "Chelsea"}},
		{Business: models.Business{Name: "!!!"}},
	}
	taken := map[string]struct{}{"chelsea-paws": {}}
	reserved := map[string]struct{}{"chelsea": {}}

	assignSlugs(records, taken, reserved)

	got := make([]string, 0, len(records))
	for _, r := range records {
		got = append(got, *r.Business.Slug)
	}
	assert.Equal(t, []string{"chelsea-paws-2", "chelsea-paws-3", "chelsea-2", "groomer"}, got)
	assert.Contains(t, taken, "chelsea-paws-3")
}
