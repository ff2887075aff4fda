package models

import "encoding/json"

// RawKind tells which representation a loosely typed column arrived in.
type RawKind int

const (
	RawAbsent RawKind = iota
	RawArray
	RawString
)

// RawField is the stored form of the services and opening_hours columns.
// Legacy rows hold JSON arrays, JSON strings, comma separated lists or plain
// text; the store hands them over untouched and internal/normalize turns
// them into structured lists.
type RawField struct {
	Kind  RawKind
	Array []any
	Text  string
}

// RawFromText lifts a nullable text column into a RawField.
func RawFromText(text *string) RawField {
	if text == nil {
		return RawField{Kind: RawAbsent}
	}
	return RawField{Kind: RawString, Text: *text}
}

// RawFromValue lifts a decoded JSON value (for example from a request body)
// into a RawField.
func RawFromValue(v any) RawField {
	switch val := v.(type) {
	case nil:
		return RawField{Kind: RawAbsent}
	case []any:
		return RawField{Kind: RawArray, Array: val}
	case string:
		return RawField{Kind: RawString, Text: val}
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return RawField{Kind: RawAbsent}
		}
		return RawField{Kind: RawString, Text: string(b)}
	}
}

// TextValue renders the field back into the form stored in a text column.
// Absent fields map to nil.
func (f RawField) TextValue() *string {
	switch f.Kind {
	case RawString:
		s := f.Text
		return &s
	case RawArray:
		b, err := json.Marshal(f.Array)
		if err != nil {
			return nil
		}
		s := string(b)
		return &s
	default:
		return nil
	}
}
