package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"groomer-directory/internal/models"
	"groomer-directory/internal/slug"
)

// BusinessRecord is one CSV row before it is written.
type BusinessRecord struct {
	Business        models.Business
	Location        string
	Specializations []string
}

var knownColumns = []string{
	"name", "location", "description", "phone", "email", "website", "address",
	"rating", "review_count", "services", "opening_hours", "specializations", "image_url", "featured",
}

// parseCSV reads business rows. Columns are matched by header name; only
// name is required.
func parseCSV(r io.Reader) ([]BusinessRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, errors.New("missing required column: name")
	}

	var records []BusinessRecord
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read record on line %d: %w", line, err)
		}

		get := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		rec, err := toRecord(get)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func toRecord(get func(string) string) (BusinessRecord, error) {
	name := get("name")
	if name == "" {
		return BusinessRecord{}, errors.New("name is empty")
	}

	b := models.Business{
		Name:         name,
		Description:  optional(get("description")),
		Phone:        optional(get("phone")),
		Email:        optional(get("email")),
		Website:      optional(get("website")),
		Address:      optional(get("address")),
		ImageURL:     optional(get("image_url")),
		Services:     models.RawFromText(optional(get("services"))),
		OpeningHours: models.RawFromText(optional(get("opening_hours"))),
	}

	if v := get("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil || rating < 0 || rating > 5 {
			return BusinessRecord{}, fmt.Errorf("invalid rating: %s", v)
		}
		b.Rating = &rating
	}
	if v := get("review_count"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil || count < 0 {
			return BusinessRecord{}, fmt.Errorf("invalid review_count: %s", v)
		}
		b.ReviewCount = &count
	}
	if v := get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return BusinessRecord{}, fmt.Errorf("invalid featured flag: %s", v)
		}
		b.Featured = featured
	}

	var specs []string
	for _, s := range strings.FieldsFunc(get("specializations"), func(r rune) bool { return r == ';' || r == '|' }) {
		if s = strings.TrimSpace(s); s != "" {
			specs = append(specs, s)
		}
	}

	return BusinessRecord{Business: b, Location: get("location"), Specializations: specs}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// assignSlugs gives every record a slug derived from its name that is not
// in taken and not in reserved. Clashes get a numeric suffix. Assigned
// slugs are added to taken.
func assignSlugs(records []BusinessRecord, taken, reserved map[string]struct{}) {
	for i := range records {
		base := slug.Normalize(records[i].Business.Name)
		if base == "" {
			base = "groomer"
		}

		candidate := base
		for n := 2; ; n++ {
			_, isTaken := taken[candidate]
			_, isReserved := reserved[candidate]
			if !isTaken && !isReserved {
				break
			}
			candidate = base + "-" + strconv.Itoa(n)
		}

		taken[candidate] = struct{}{}
		s := candidate
		records[i].Business.Slug = &s
	}
}
