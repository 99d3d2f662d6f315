package aggregate

import (
	"strings"

	"pharmatrade/internal/normalize"
)

// countryAbbreviations shortens long country names in "Others" labels. Keys are
// canonical upper-case names; this is not the alias table used for normalization.
var countryAbbreviations = map[string]string{
	"UNITED STATES":        "US",
	"UNITED KINGDOM":       "UK",
	"UNITED ARAB EMIRATES": "UAE",
	"SOUTH AFRICA":         "SA",
	"NEW ZEALAND":          "NZ",
}

// OthersLabel names the remainder row under parent, e.g.
// "Rest of Ipca Laboratories' customers" or "Rest of UK's importers".
func OthersLabel(parent string, kind Kind) string {
	if kind == KindGeographic {
		name := parent
		if abbrev, ok := countryAbbreviations[strings.ToUpper(strings.TrimSpace(parent))]; ok {
			name = abbrev
		}
		return "Rest of " + name + "'s importers"
	}

	name := normalize.StripLegalSuffix(parent)
	if strings.HasSuffix(strings.ToLower(name), "s") {
		return "Rest of " + name + "' customers"
	}
	return "Rest of " + name + "'s customers"
}
