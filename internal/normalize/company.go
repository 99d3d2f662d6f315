package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownCompany is returned for company names that are empty after cleaning.
const UnknownCompany = "Unknown Company"

const trailingPunctuation = ".,'\"`“”‘’"

// NormalizeCompanyName canonicalizes a free-text company name using the built-in
// legal-form table.
func NormalizeCompanyName(raw string) string {
	return companyForms.NormalizeCompany(raw)
}

// StripLegalSuffix removes trailing legal forms ("Private Limited", "Inc", "GmbH", ...)
// from an already normalized company name. The leading word is always kept.
func StripLegalSuffix(name string) string {
	return companyForms.StripSuffix(name)
}

// NormalizeCompany applies, in order: whitespace cleanup, trailing punctuation removal,
// legal-form rewrites anywhere in the name, title casing, and display casing of legal forms.
func (f *LegalForms) NormalizeCompany(raw string) string {
	name := strings.TrimRightFunc(collapseSpaces(raw), func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(trailingPunctuation, r)
	})
	if name == "" {
		return UnknownCompany
	}

	for _, rw := range f.rewrites {
		name = rw.re.ReplaceAllString(name, rw.replace)
	}

	name = titleCase(name)

	for _, rs := range f.restores {
		name = rs.re.ReplaceAllLiteralString(name, rs.replace)
	}
	return name
}

// StripSuffix repeatedly drops trailing legal forms until none is left.
func (f *LegalForms) StripSuffix(name string) string {
	name = strings.TrimSpace(name)
	if f.strip == nil {
		return name
	}
	for {
		loc := f.strip.FindStringIndex(name)
		if loc == nil || loc[0] == 0 {
			return name
		}
		stripped := strings.TrimRight(name[:loc[0]], " &,-")
		if stripped == "" {
			return name
		}
		name = stripped
	}
}

// collapseSpaces trims and folds every whitespace run, line breaks included, into one space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// titleCase upper-cases the first letter of each space-delimited word and lower-cases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
