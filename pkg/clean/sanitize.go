package clean

import "github.com/gnames/ctryrisk/pkg/record"

// Sanitize removes records without an identity key. It returns the
// surviving records and the number of removed ones.
func Sanitize(rs []record.Record) ([]record.Record, int) {
	res := make([]record.Record, 0, len(rs))
	for _, r := range rs {
		if r.IsNull(record.ID) {
			continue
		}
		res = append(res, r.Clone())
	}
	return res, len(rs) - len(res)
}
