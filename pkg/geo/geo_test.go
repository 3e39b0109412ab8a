package geo_test

import (
	"testing"

	"github.com/gnames/ctryrisk/pkg/geo"
	"github.com/gnames/ctryrisk/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		msg, in, out string
	}{
		{"lower case name", "united states", "North America"},
		{"title case name", "Canada", "North America"},
		{"south america", "brazil", "South America"},
		{"europe", "italy", "Europe"},
		{"africa", "south africa", "Africa"},
		{"asia", "japan", "Asia"},
		{"oceania", "australia", "Oceania"},
		{"padded", "  germany ", "Europe"},
		{"unknown name", "narnia", geo.Unknown},
		{"empty", "", geo.Unknown},
	}

	for _, v := range tests {
		assert.Equal(t, v.out, geo.Lookup(v.in), v.msg)
	}
}

func TestTable(t *testing.T) {
	tbl := geo.Table(geo.DefaultTable)
	tests := []struct {
		msg, in, out string
	}{
		{"known", "italy", "Europe"},
		{"case insensitive", "South Africa", "Africa"},
		{"turkey", "turkey", "Asia"},
		{"miss", "united states", ""},
		{"empty", "", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.out, tbl(v.in), v.msg)
	}

	custom := geo.Table(map[string]string{" Peru ": "South America"})
	assert.Equal(t, "South America", custom("peru"))
}

func TestClassify(t *testing.T) {
	in := []record.Record{
		{"Id": "us10", "CountryCode": "united states"},
		{"Id": "us11", "CountryCode": "canada"},
		{"Id": "it0", "CountryCode": "italy"},
		{"Id": "x0", "CountryCode": "atlantis"},
		{"Id": "n0", "CountryCode": nil},
	}

	res, unknown := geo.Classify(in, record.CountryCode,
		geo.Classifier{Field: record.Continent, Strategy: geo.Lookup},
		geo.Classifier{
			Field:    record.ContinentLoop,
			Strategy: geo.Table(geo.DefaultTable),
		},
	)
	require.Len(t, res, len(in))
	assert.Equal(t, 2, unknown)

	assert.Equal(t, "North America", res[0][record.Continent])
	assert.Nil(t, res[0][record.ContinentLoop])
	assert.Equal(t, "North America", res[1][record.Continent])
	assert.Equal(t, "Europe", res[2][record.Continent])
	assert.Equal(t, "Europe", res[2][record.ContinentLoop])
	assert.Equal(t, geo.Unknown, res[3][record.Continent])
	assert.Equal(t, geo.Unknown, res[4][record.Continent])
	assert.Nil(t, res[4][record.ContinentLoop])

	names := map[string]struct{}{
		"Africa": {}, "Antarctica": {}, "Asia": {}, "Europe": {},
		"North America": {}, "Oceania": {}, "South America": {},
	}
	for _, r := range res {
		c, _ := r.String(record.Continent)
		if c != geo.Unknown {
			_, ok := names[c]
			assert.True(t, ok, c)
		}
		if l, ok := r.String(record.ContinentLoop); ok {
			_, ok = names[l]
			assert.True(t, ok, l)
		}
	}

	_, ok := in[0][record.Continent]
	assert.False(t, ok)
}
