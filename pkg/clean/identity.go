package clean

import (
	"strconv"

	"github.com/gnames/ctryrisk/pkg/record"
)

// IdentityOptions tune ResolveIdentity.
type IdentityOptions struct {
	// KeepSingletons leaves keys that occur once unchanged.
	KeepSingletons bool
}

// ResolveIdentity makes identity keys unique. Records are grouped by
// their current key; the n-th record of a group (zero-based, in input
// order) gets key+n. Records must be sanitized beforehand.
//
// A generated key can coincide with a key generated for another group
// ("A1"+"0" and "A"+"10"). When that happens the occurrence counter
// advances until a free key is found. The result depends only on the
// input order, so repeated runs give identical keys.
//
// It returns the new records and the number of changed keys.
func ResolveIdentity(
	rs []record.Record,
	opts IdentityOptions,
) ([]record.Record, int) {
	ids := make([]string, len(rs))
	counts := make(map[string]int, len(rs))
	for i, r := range rs {
		ids[i], _ = r.String(record.ID)
		counts[ids[i]]++
	}

	used := make(map[string]struct{}, len(rs))
	if opts.KeepSingletons {
		for id, n := range counts {
			if n == 1 {
				used[id] = struct{}{}
			}
		}
	}

	next := make(map[string]int, len(counts))
	res := make([]record.Record, len(rs))
	var changed int
	for i, r := range rs {
		id := ids[i]
		newID := id
		if !opts.KeepSingletons || counts[id] > 1 {
			n := next[id]
			newID = id + strconv.Itoa(n)
			for isUsed(used, newID) {
				n++
				newID = id + strconv.Itoa(n)
			}
			next[id] = n + 1
			used[newID] = struct{}{}
		}

		nr := r.Clone()
		nr[record.ID] = newID
		if newID != id {
			changed++
		}
		res[i] = nr
	}
	return res, changed
}

func isUsed(used map[string]struct{}, id string) bool {
	_, ok := used[id]
	return ok
}
