package clean

import (
	"slices"
	"strings"

	"github.com/gnames/ctryrisk/pkg/record"
	"github.com/zeebo/xxh3"
)

// DropDuplicates collapses records that are identical across every
// field to their first occurrence. Relative order of the survivors is
// preserved. It returns the survivors and the number of removed
// records.
//
// An absent field and a null field are the same thing, as they are in
// a table where every row has every column.
func DropDuplicates(rs []record.Record) ([]record.Record, int) {
	res := make([]record.Record, 0, len(rs))
	// fingerprint -> canonical forms of kept records
	seen := make(map[uint64][]string, len(rs))

	for _, r := range rs {
		c := canonical(r)
		fp := xxh3.HashString(c)
		if slices.Contains(seen[fp], c) {
			continue
		}
		seen[fp] = append(seen[fp], c)
		res = append(res, r.Clone())
	}
	return res, len(rs) - len(res)
}

// canonical serializes non-null fields in key order with type tags.
func canonical(r record.Record) string {
	keys := make([]string, 0, len(r))
	for k, v := range r {
		if v != nil {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		v := r[k]
		b.WriteString(k)
		b.WriteByte('\x1f')
		b.WriteByte(record.Kind(v))
		b.WriteString(record.Format(v))
		b.WriteByte('\x1e')
	}
	return b.String()
}
