package clean

import (
	"strings"
	"time"

	"github.com/gnames/ctryrisk/pkg/record"
)

// ParseDates converts string values of a field into dates, trying
// layouts in order. Values that fit no layout become null. Dates and
// nulls are kept as they are. It returns the new records and the
// number of values that could not be parsed.
func ParseDates(
	rs []record.Record,
	field string,
	layouts []string,
) ([]record.Record, int) {
	res := make([]record.Record, len(rs))
	var failed int
	for i, r := range rs {
		nr := r.Clone()
		res[i] = nr

		v, ok := nr[field]
		if !ok || v == nil {
			continue
		}
		if _, ok = v.(time.Time); ok {
			continue
		}

		s := strings.TrimSpace(record.Format(v))
		if t, ok := parseDate(s, layouts); ok {
			nr[field] = t
			continue
		}
		nr[field] = nil
		failed++
	}
	return res, failed
}

func parseDate(s string, layouts []string) (time.Time, bool) {
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
