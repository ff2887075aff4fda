// Package normalize turns the loosely typed services and opening_hours
// columns into structured lists. Every function here is total: input that
// matches no structured shape degrades to a plain-text reading instead of
// failing the request.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"groomer-directory/internal/models"
)

// Services converts a raw services field into an ordered list. The result is
// never nil.
func Services(raw models.RawField) []models.Service {
	switch raw.Kind {
	case models.RawArray:
		return servicesFromArray(raw.Array)
	case models.RawString:
		return servicesFromText(raw.Text)
	default:
		return []models.Service{}
	}
}

// servicesFromText reads a services column holding text. Only the empty
// string counts as absent; any other text yields at least one service, even
// when that service's name is blank.
func servicesFromText(text string) []models.Service {
	if text == "" {
		return []models.Service{}
	}
	trimmed := strings.TrimSpace(text)

	var decoded any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
		switch v := decoded.(type) {
		case []any:
			return servicesFromArray(v)
		case map[string]any:
			return servicesFromArray([]any{v})
		case string:
			return []models.Service{{ID: "service-1", Name: strings.TrimSpace(v)}}
		case nil:
			return []models.Service{}
		}
		// Bare numbers and booleans fall through to the plain-text reading.
	}

	if strings.Contains(trimmed, ",") {
		pieces := strings.Split(trimmed, ",")
		services := make([]models.Service, 0, len(pieces))
		for i, piece := range pieces {
			services = append(services, models.Service{
				ID:   fmt.Sprintf("service-%d", i),
				Name: strings.TrimSpace(piece),
			})
		}
		return services
	}

	return []models.Service{{ID: "service-1", Name: trimmed}}
}

// servicesFromArray maps each element to a service whose id is the element's
// position. Objects without a name are skipped and leave a gap in the ids.
func servicesFromArray(items []any) []models.Service {
	services := make([]models.Service, 0, len(items))
	for i, item := range items {
		id := fmt.Sprintf("service-%d", i)

		switch v := item.(type) {
		case string:
			name := strings.TrimSpace(v)
			if name == "" {
				continue
			}
			services = append(services, models.Service{ID: id, Name: name})
		case map[string]any:
			name := strings.TrimSpace(stringValue(v["name"]))
			if name == "" {
				continue
			}
			if ownID := stringValue(v["id"]); ownID != "" {
				id = ownID
			}
			services = append(services, models.Service{
				ID:              id,
				Name:            name,
				Description:     optionalString(v["description"]),
				PriceFrom:       numberValue(v["price_from"]),
				PriceTo:         numberValue(v["price_to"]),
				DurationMinutes: intValue(v["duration_minutes"]),
			})
		case float64, bool:
			services = append(services, models.Service{ID: id, Name: stringValue(v)})
		}
	}
	return services
}

func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}

func optionalString(v any) *string {
	s := strings.TrimSpace(stringValue(v))
	if s == "" {
		return nil
	}
	return &s
}

func numberValue(v any) *float64 {
	switch val := v.(type) {
	case float64:
		return &val
	case int:
		f := float64(val)
		return &f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(val, "£")), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func intValue(v any) *int {
	f := numberValue(v)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
