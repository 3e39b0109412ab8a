package geo

import (
	"strings"
	"sync"

	"github.com/pariz/gountries"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var continentNames = map[string]string{
	"AF": "Africa",
	"AN": "Antarctica",
	"AS": "Asia",
	"EU": "Europe",
	"NA": "North America",
	"OC": "Oceania",
	"SA": "South America",
}

var query = sync.OnceValue(gountries.New)

// Lookup resolves a country name to a continent through its ISO
// alpha-2 code. Any failure on the way gives Unknown.
func Lookup(country string) string {
	country = strings.TrimSpace(country)
	if country == "" {
		return Unknown
	}
	name := cases.Title(language.English).String(country)

	code, ok := alpha2(name)
	if !ok {
		return Unknown
	}
	cont, ok := continentCode(code)
	if !ok {
		return Unknown
	}
	res, ok := continentNames[cont]
	if !ok {
		return Unknown
	}
	return res
}

func alpha2(name string) (string, bool) {
	c, err := query().FindCountryByName(name)
	if err != nil || c.Alpha2 == "" {
		return "", false
	}
	return c.Alpha2, true
}

// continentCode maps a country code to one of the seven continent
// codes. The Americas are split by subregion.
func continentCode(alpha2 string) (string, bool) {
	c, err := query().FindCountryByAlpha(alpha2)
	if err != nil {
		return "", false
	}
	switch c.Region {
	case "Africa":
		return "AF", true
	case "Antarctic", "Antarctica":
		return "AN", true
	case "Asia":
		return "AS", true
	case "Europe":
		return "EU", true
	case "Oceania":
		return "OC", true
	case "Americas":
		if c.SubRegion == "South America" {
			return "SA", true
		}
		return "NA", true
	}
	return "", false
}
