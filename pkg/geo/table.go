package geo

import "strings"

// DefaultTable is the built-in country to continent mapping.
var DefaultTable = map[string]string{
	"south africa": "Africa",
	"italy":        "Europe",
	"turkey":       "Asia",
}

// Table returns a strategy that looks names up in a fixed mapping.
// Keys are matched in lower case. Names outside of the mapping give
// an empty answer.
func Table(m map[string]string) Strategy {
	tbl := make(map[string]string, len(m))
	for k, v := range m {
		tbl[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return func(country string) string {
		return tbl[strings.ToLower(strings.TrimSpace(country))]
	}
}
