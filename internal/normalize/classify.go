package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sentinel labels substituted for missing or placeholder counterparties.
const (
	UnknownSupplier = "Unknown Supplier"
	UnknownCustomer = "Unknown Customer"
	UnknownImporter = "Unknown Importer"
)

// placeholderNames are generic tokens seen in the buyer column instead of a real party.
var placeholderNames = map[string]struct{}{
	"na":               {},
	"n/a":              {},
	"null":             {},
	"undefined":        {},
	"to":               {},
	"to order":         {},
	"to order of":      {},
	"order of":         {},
	"unknown":          {},
	"unknown customer": {},
	"unknown importer": {},
	"unknown company":  {},
	"customer":         {},
	"buyer":            {},
	"client":           {},
	"end user":         {},
	"end-user":         {},
	"enduser":          {},
	"recipient":        {},
	"consignee":        {},
	"importer":         {},
	"purchaser":        {},
}

// IsPlaceholderName reports whether name carries no usable identity: blank,
// shorter than two characters, or one of the known placeholder tokens.
func IsPlaceholderName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) < 2 {
		return true
	}
	_, ok := placeholderNames[strings.ToLower(trimmed)]
	return ok
}

// ClassifyName returns name unchanged, or sentinel when name is a placeholder.
func ClassifyName(name, sentinel string) string {
	if IsPlaceholderName(name) {
		return sentinel
	}
	return name
}

// OrDefault substitutes fallback for a blank raw value before normalization.
func OrDefault(raw, fallback string) string {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	return raw
}
