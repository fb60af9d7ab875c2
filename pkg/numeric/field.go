// Package numeric holds a JSON value that clients may send either as a number
// or as a numeric string ("12.5").
package numeric

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Field keeps the raw text of a submitted number so that parsing failures can
// be reported by the caller with its own message.
type Field struct {
	raw string
}

// Of builds a Field from a float.
func Of(v float64) Field {
	return Field{raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

// FromString builds a Field from raw text.
func FromString(s string) Field {
	return Field{raw: s}
}

// UnmarshalJSON accepts numbers, strings and booleans. Objects and arrays are
// kept as raw text and fail to parse later.
func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f.raw = s
		return nil
	}
	f.raw = string(data)
	return nil
}

// MarshalJSON writes the parsed number, or the raw text when it does not parse.
func (f Field) MarshalJSON() ([]byte, error) {
	if v, ok := f.Float(); ok {
		return json.Marshal(v)
	}
	return json.Marshal(f.raw)
}

// Float parses the field. NaN, infinities and blank input are rejected.
func (f Field) Float() (float64, bool) {
	s := strings.TrimSpace(f.raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Raw returns the text as submitted.
func (f Field) Raw() string {
	return f.raw
}
