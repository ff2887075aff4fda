package normalize

import (
	"encoding/json"
	"strings"

	"groomer-directory/internal/models"
)

// DefaultOpeningHours is shown whenever no schedule can be read from the
// stored value, so a profile always displays plausible hours.
var DefaultOpeningHours = []models.OpeningHours{
	{Day: "Monday - Friday", Hours: "9:00 AM - 5:00 PM"},
	{Day: "Saturday", Hours: "10:00 AM - 4:00 PM"},
	{Day: "Sunday", Hours: "Closed"},
}

// OpeningHours converts a raw opening_hours field into an ordered schedule,
// substituting DefaultOpeningHours when nothing can be read.
func OpeningHours(raw models.RawField) []models.OpeningHours {
	var rows []models.OpeningHours
	switch raw.Kind {
	case models.RawArray:
		rows = hoursFromArray(raw.Array)
	case models.RawString:
		rows = hoursFromText(raw.Text)
	}

	if len(rows) == 0 {
		return defaultSchedule()
	}
	return rows
}

func defaultSchedule() []models.OpeningHours {
	rows := make([]models.OpeningHours, len(DefaultOpeningHours))
	copy(rows, DefaultOpeningHours)
	return rows
}

func hoursFromText(text string) []models.OpeningHours {
	var decoded any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &decoded); err != nil {
		return nil
	}

	switch v := decoded.(type) {
	case []any:
		return hoursFromArray(v)
	case map[string]any, string:
		return hoursFromArray([]any{v})
	default:
		return nil
	}
}

func hoursFromArray(items []any) []models.OpeningHours {
	rows := make([]models.OpeningHours, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case map[string]any:
			day := strings.TrimSpace(stringValue(v["day"]))
			if day == "" {
				continue
			}
			rows = append(rows, models.OpeningHours{Day: day, Hours: strings.TrimSpace(stringValue(v["hours"]))})
		case string:
			// "Monday: 9:00 AM - 5:00 PM"; the first ": " separates day from hours.
			day, hours, ok := strings.Cut(v, ": ")
			if !ok || strings.TrimSpace(day) == "" {
				continue
			}
			rows = append(rows, models.OpeningHours{Day: strings.TrimSpace(day), Hours: strings.TrimSpace(hours)})
		}
	}
	return rows
}
