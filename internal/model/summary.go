package model

import (
	"encoding/json"
	"time"
)

// Analysis types accepted by the summary endpoints
const (
	AnalysisSupplierCustomer = "supplier-customer"
	AnalysisGeographic       = "geographic"
)

// DateRange is the window a summary covers. Both ends are null when no records matched.
type DateRange struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// PartyShare is one counterparty's slice of its parent, or the "Others" remainder.
type PartyShare struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Shipments  int     `json:"shipments"`
	Percentage float64 `json:"percentage"`
}

// SupplierSummary ranks one supplier and its top customers
type SupplierSummary struct {
	Name           string       `json:"name"`
	TotalValue     float64      `json:"totalValue"`
	TotalShipments int          `json:"totalShipments"`
	MarketShare    float64      `json:"marketShare"`
	TotalCustomers int          `json:"totalCustomers"`
	TopCustomers   []PartyShare `json:"topCustomers"`
}

// CountrySummary ranks one destination country and its top importers
type CountrySummary struct {
	Name           string       `json:"name"`
	TotalValue     float64      `json:"totalValue"`
	TotalShipments int          `json:"totalShipments"`
	MarketShare    float64      `json:"marketShare"`
	TotalImporters int          `json:"totalImporters"`
	TopImporters   []PartyShare `json:"topImporters"`
}

// SummaryTotals covers every matched record, not only the ranked rows.
// ParentCount is serialised as supplierCount or countryCount depending on the analysis type.
type SummaryTotals struct {
	TotalValue     float64 `json:"totalValue"`
	TotalShipments int     `json:"totalShipments"`
	AverageValue   float64 `json:"averageValue"`
	ParentCount    int     `json:"-"`
}

// SummaryResult is the response of one summary run. Only the list matching Type is set.
type SummaryResult struct {
	Type         string            `json:"type"`
	DateRange    DateRange         `json:"dateRange"`
	TopSuppliers []SupplierSummary `json:"topSuppliers,omitempty"`
	TopCountries []CountrySummary  `json:"topCountries,omitempty"`
	Summary      SummaryTotals     `json:"summary"`
}

type supplierTotals struct {
	TotalValue     float64 `json:"totalValue"`
	TotalShipments int     `json:"totalShipments"`
	AverageValue   float64 `json:"averageValue"`
	SupplierCount  int     `json:"supplierCount"`
}

type countryTotals struct {
	TotalValue     float64 `json:"totalValue"`
	TotalShipments int     `json:"totalShipments"`
	AverageValue   float64 `json:"averageValue"`
	CountryCount   int     `json:"countryCount"`
}

// MarshalJSON writes the list and count keys of the result's analysis type only.
// The list is always an array, never null.
func (r SummaryResult) MarshalJSON() ([]byte, error) {
	if r.Type == AnalysisGeographic {
		countries := r.TopCountries
		if countries == nil {
			countries = []CountrySummary{}
		}
		return json.Marshal(struct {
			Type         string           `json:"type"`
			DateRange    DateRange        `json:"dateRange"`
			TopCountries []CountrySummary `json:"topCountries"`
			Summary      countryTotals    `json:"summary"`
		}{
			Type:         r.Type,
			DateRange:    r.DateRange,
			TopCountries: countries,
			Summary: countryTotals{
				TotalValue:     r.Summary.TotalValue,
				TotalShipments: r.Summary.TotalShipments,
				AverageValue:   r.Summary.AverageValue,
				CountryCount:   r.Summary.ParentCount,
			},
		})
	}

	suppliers := r.TopSuppliers
	if suppliers == nil {
		suppliers = []SupplierSummary{}
	}
	return json.Marshal(struct {
		Type         string            `json:"type"`
		DateRange    DateRange         `json:"dateRange"`
		TopSuppliers []SupplierSummary `json:"topSuppliers"`
		Summary      supplierTotals    `json:"summary"`
	}{
		Type:         r.Type,
		DateRange:    r.DateRange,
		TopSuppliers: suppliers,
		Summary: supplierTotals{
			TotalValue:     r.Summary.TotalValue,
			TotalShipments: r.Summary.TotalShipments,
			AverageValue:   r.Summary.AverageValue,
			SupplierCount:  r.Summary.ParentCount,
		},
	})
}

// TradeOverview bundles both analyses over the same record set.
type TradeOverview struct {
	SupplierCustomer SummaryResult `json:"supplierCustomer"`
	Geographic       SummaryResult `json:"geographic"`
}
