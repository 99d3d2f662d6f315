// Package normalize canonicalizes the free-text company and country names found in
// shipment records so that one real-world party does not split into many groups.
package normalize

import (
	"embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tableFS embed.FS

// LegalFormTable is the on-disk shape of tables/legal_forms.yaml.
type LegalFormTable struct {
	Rewrites []LegalFormRewrite `yaml:"rewrites"`
	Restore  []string           `yaml:"restore"`
	Strip    []string           `yaml:"strip"`
}

// LegalFormRewrite turns one spelling of a legal form into its upper-case canonical token.
type LegalFormRewrite struct {
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
}

// CountryEntry is one canonical country with its known aliases.
type CountryEntry struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

type substitution struct {
	re      *regexp.Regexp
	replace string
}

// LegalForms is the compiled form of a LegalFormTable.
type LegalForms struct {
	rewrites []substitution
	restores []substitution
	strip    *regexp.Regexp
}

var (
	companyForms   *LegalForms
	countryAliases map[string]string
)

func init() {
	raw, err := tableFS.ReadFile("tables/legal_forms.yaml")
	if err != nil {
		panic(fmt.Sprintf("normalize: read legal forms: %v", err))
	}
	companyForms, err = ParseLegalForms(raw)
	if err != nil {
		panic(fmt.Sprintf("normalize: %v", err))
	}

	raw, err = tableFS.ReadFile("tables/countries.yaml")
	if err != nil {
		panic(fmt.Sprintf("normalize: read countries: %v", err))
	}
	countryAliases, err = ParseCountryAliases(raw)
	if err != nil {
		panic(fmt.Sprintf("normalize: %v", err))
	}
}

// ParseLegalForms decodes and compiles a legal-form table.
func ParseLegalForms(data []byte) (*LegalForms, error) {
	var table LegalFormTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to decode legal forms: %w", err)
	}

	forms := &LegalForms{}
	for i, rw := range table.Rewrites {
		if rw.Pattern == "" || rw.Replace == "" {
			return nil, fmt.Errorf("rewrites[%d]: pattern and replace are required", i)
		}
		// A trailing period is consumed only when it ends the token, never when it joins two words.
		re, err := regexp.Compile(`(?i)\b(?:` + rw.Pattern + `)(?:\.(?P<sep>[^\pL\pN]|$)|\b)`)
		if err != nil {
			return nil, fmt.Errorf("rewrites[%d]: %w", i, err)
		}
		replace := strings.ReplaceAll(rw.Replace, "$", "$$") + "${sep}"
		forms.rewrites = append(forms.rewrites, substitution{re: re, replace: replace})
	}

	for _, token := range table.Restore {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("restore %q: %w", token, err)
		}
		forms.restores = append(forms.restores, substitution{re: re, replace: token})
	}

	if len(table.Strip) > 0 {
		alternatives := make([]string, 0, len(table.Strip))
		for _, suffix := range table.Strip {
			words := strings.Fields(suffix)
			for j, w := range words {
				words[j] = regexp.QuoteMeta(w) + `\.?`
			}
			alternatives = append(alternatives, strings.Join(words, `,?\s+`))
		}
		re, err := regexp.Compile(`(?i)[\s,]+(?:` + strings.Join(alternatives, "|") + `)$`)
		if err != nil {
			return nil, fmt.Errorf("strip: %w", err)
		}
		forms.strip = re
	}

	return forms, nil
}

// ParseCountryAliases decodes a country table into an upper-case alias -> canonical map.
// An alias claimed by two different countries is an error.
func ParseCountryAliases(data []byte) (map[string]string, error) {
	var entries []CountryEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode countries: %w", err)
	}

	aliases := make(map[string]string, len(entries)*4)
	add := func(key, canonical string) error {
		key = countryKey(key)
		if key == "" {
			return nil
		}
		if existing, ok := aliases[key]; ok && existing != canonical {
			return fmt.Errorf("country alias %q maps to both %q and %q", key, existing, canonical)
		}
		aliases[key] = canonical
		return nil
	}

	for i, e := range entries {
		canonical := countryKey(e.Name)
		if canonical == "" {
			return nil, fmt.Errorf("countries[%d]: name is required", i)
		}
		if err := add(canonical, canonical); err != nil {
			return nil, err
		}
		for _, alias := range e.Aliases {
			if err := add(alias, canonical); err != nil {
				return nil, err
			}
		}
	}

	return aliases, nil
}

// CountryAliasCount reports how many lookup keys the built-in country table holds.
func CountryAliasCount() int {
	return len(countryAliases)
}
