// Package aggregate folds shipment records into parent -> child trees and rolls them
// up into top-N market-share summaries.
package aggregate

import (
	"fmt"

	"pharmatrade/internal/normalize"
)

// Kind selects which record fields act as the parent and child of the hierarchy.
type Kind string

const (
	KindSupplierCustomer Kind = "supplier-customer"
	KindGeographic       Kind = "geographic"
)

// ParseKind validates an analysis type string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSupplierCustomer, KindGeographic:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown analysis type %q", s)
	}
}

// Record is the minimal shipment shape the engine reads.
type Record struct {
	SupplierName         string
	BuyerName            string
	CountryOfDestination string
	TotalValueUSD        string
}

// Pipeline binds the shared aggregation stages to one analysis kind: which record
// fields feed the parent and child levels, and how each raw value is named.
type Pipeline struct {
	Kind        Kind
	ParentField func(Record) string
	ChildField  func(Record) string
	ParentName  func(raw string) string
	ChildName   func(raw string) string
}

// NewPipeline returns the pipeline for kind. Unknown kinds fall back to supplier-customer.
func NewPipeline(kind Kind) Pipeline {
	if kind == KindGeographic {
		return Pipeline{
			Kind:        KindGeographic,
			ParentField: func(r Record) string { return r.CountryOfDestination },
			ChildField:  func(r Record) string { return r.BuyerName },
			ParentName:  countryName,
			ChildName:   importerName,
		}
	}
	return Pipeline{
		Kind:        KindSupplierCustomer,
		ParentField: func(r Record) string { return r.SupplierName },
		ChildField:  func(r Record) string { return r.BuyerName },
		ParentName:  supplierName,
		ChildName:   customerName,
	}
}

// Run aggregates records and formats the top limit parents.
func (p Pipeline) Run(records []Record, limit int) Rollup {
	return p.FormatTopN(p.Aggregate(records), limit)
}

// Parent names are normalized only; child names also go through the placeholder filter.

func supplierName(raw string) string {
	return normalize.NormalizeCompanyName(normalize.OrDefault(raw, normalize.UnknownSupplier))
}

func customerName(raw string) string {
	name := normalize.NormalizeCompanyName(normalize.OrDefault(raw, normalize.UnknownCustomer))
	return normalize.ClassifyName(name, normalize.UnknownCustomer)
}

func countryName(raw string) string {
	return normalize.NormalizeCountryName(normalize.OrDefault(raw, normalize.UnknownCountry))
}

func importerName(raw string) string {
	name := normalize.NormalizeCompanyName(normalize.OrDefault(raw, normalize.UnknownImporter))
	return normalize.ClassifyName(name, normalize.UnknownImporter)
}
