package normalize

import "strings"

// UnknownCountry is the country label used when no destination is recorded.
const UnknownCountry = "Unknown Country"

// NormalizeCountryName maps a raw country string to its canonical upper-case name.
// Names missing from the alias table are returned title-cased instead.
func NormalizeCountryName(raw string) string {
	cleaned := collapseSpaces(raw)
	if cleaned == "" {
		return UnknownCountry
	}
	if canonical, ok := countryAliases[strings.ToUpper(cleaned)]; ok {
		return canonical
	}
	return titleCase(cleaned)
}

// IsKnownCountry reports whether raw resolves through the alias table.
func IsKnownCountry(raw string) bool {
	_, ok := countryAliases[countryKey(raw)]
	return ok
}

func countryKey(s string) string {
	return strings.ToUpper(collapseSpaces(s))
}
