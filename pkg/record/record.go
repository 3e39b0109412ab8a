// Package record defines the in-memory row of the country-risk dataset
// and helpers shared by all pipeline stages.
//
// A Record maps a column name to a value. Allowed value types are
// string, int64, float64, time.Time and nil (null). Stages never
// modify records they receive; they clone them first, so every stage
// returns a fresh snapshot of the working set.
package record

import (
	"maps"
	"time"
)

// Record is one row of the source table.
type Record map[string]any

// Clone returns a shallow copy of the record. Values are immutable
// types, so a shallow copy is a full copy.
func (r Record) Clone() Record {
	return maps.Clone(r)
}

// IsNull reports if the field is absent or null.
func (r Record) IsNull(field string) bool {
	v, ok := r[field]
	return !ok || v == nil
}

// String returns the text form of a field and false if the field
// is null.
func (r Record) String(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	return Format(v), true
}

// Time returns a field as time and false if it is null or not a date.
func (r Record) Time(field string) (time.Time, bool) {
	t, ok := r[field].(time.Time)
	return t, ok
}

// CloneAll clones every record of a slice.
func CloneAll(rs []Record) []Record {
	res := make([]Record, len(rs))
	for i := range rs {
		res[i] = rs[i].Clone()
	}
	return res
}
