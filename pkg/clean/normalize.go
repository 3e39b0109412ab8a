package clean

import (
	"strings"

	"github.com/gnames/ctryrisk/pkg/record"
	"github.com/gnames/gnlib"
)

// Normalize lower-cases every string value. Numbers, dates and nulls
// pass through unchanged. Broken UTF-8 sequences are repaired before
// lower-casing.
func Normalize(rs []record.Record) []record.Record {
	res := make([]record.Record, len(rs))
	for i := range rs {
		r := rs[i].Clone()
		for k, v := range r {
			if s, ok := v.(string); ok {
				r[k] = strings.ToLower(gnlib.FixUtf8(s))
			}
		}
		res[i] = r
	}
	return res
}
