// Package geo derives continents from country names.
//
// Two strategies share one signature and never fail: a lookup through
// ISO country data and a hand-maintained table. Classify runs any
// number of them over the working set and stores every result under
// its own field, results are never reconciled.
package geo

import (
	"github.com/gnames/ctryrisk/pkg/record"
)

// Unknown is the result of Lookup for names it cannot resolve.
const Unknown = "Unknown country"

// Strategy maps a country name to a continent name. An empty result
// means no answer.
type Strategy func(country string) string

// Classifier binds a strategy to the field its result goes to.
type Classifier struct {
	Field    string
	Strategy Strategy
}

// Classify runs every classifier over the source field of every
// record. Null or empty answers are stored as null. It returns the
// new records and the number of answers equal to Unknown.
func Classify(
	rs []record.Record,
	source string,
	cs ...Classifier,
) ([]record.Record, int) {
	res := make([]record.Record, len(rs))
	var unknown int
	for i, r := range rs {
		nr := r.Clone()
		country, _ := nr.String(source)
		for _, c := range cs {
			v := c.Strategy(country)
			if v == Unknown {
				unknown++
			}
			if v == "" {
				nr[c.Field] = nil
				continue
			}
			nr[c.Field] = v
		}
		res[i] = nr
	}
	return res, unknown
}
