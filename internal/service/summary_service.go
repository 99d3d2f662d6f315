package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"pharmatrade/internal/aggregate"
	"pharmatrade/internal/cache"
	"pharmatrade/internal/logger"
	"pharmatrade/internal/model"
	"pharmatrade/internal/repository"
	"pharmatrade/pkg/pagination"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SummaryQuery selects the records and ranking size of a summary run.
type SummaryQuery struct {
	Search    string
	Limit     int
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
}

type SummaryService interface {
	GetSummary(ctx context.Context, q SummaryQuery) (model.SummaryResult, error)
	GetOverview(ctx context.Context, q SummaryQuery) (model.TradeOverview, error)
	InvalidateCache()
}

type summaryService struct {
	shipmentRepo repository.ShipmentRepository
	results      *cache.Cache[model.SummaryResult]
	maxRecords   int
}

func NewSummaryService(shipmentRepo repository.ShipmentRepository, results *cache.Cache[model.SummaryResult], maxRecords int) SummaryService {
	return &summaryService{
		shipmentRepo: shipmentRepo,
		results:      results,
		maxRecords:   maxRecords,
	}
}

func (s *summaryService) GetSummary(ctx context.Context, q SummaryQuery) (model.SummaryResult, error) {
	q, err := validateQuery(q)
	if err != nil {
		return model.SummaryResult{}, err
	}
	kind, err := aggregate.ParseKind(q.Type)
	if err != nil {
		return model.SummaryResult{}, fmt.Errorf("%w: %q", ErrInvalidAnalysisType, q.Type)
	}

	key := fingerprint(q, kind)
	if cached, ok := s.results.Get(key); ok {
		logger.Log.WithFields(logrus.Fields{"type": kind, "search": q.Search}).Debug("summary cache hit")
		return cached, nil
	}

	shipments, err := s.fetch(ctx, q)
	if err != nil {
		return model.SummaryResult{}, err
	}

	start := time.Now()
	result := summarize(kind, shipments, q)
	logger.Log.WithFields(logrus.Fields{
		"type":    kind,
		"search":  q.Search,
		"records": len(shipments),
		"parents": result.Summary.ParentCount,
		"elapsed": time.Since(start).String(),
	}).Info("summary computed")

	s.results.Set(key, result)
	return result, nil
}

// GetOverview runs both analyses over one fetch of the records. Each pipeline builds its
// own aggregation, so the two run in parallel without shared state.
func (s *summaryService) GetOverview(ctx context.Context, q SummaryQuery) (model.TradeOverview, error) {
	q, err := validateQuery(q)
	if err != nil {
		return model.TradeOverview{}, err
	}

	supplierKey := fingerprint(q, aggregate.KindSupplierCustomer)
	geoKey := fingerprint(q, aggregate.KindGeographic)
	supplier, supplierHit := s.results.Get(supplierKey)
	geo, geoHit := s.results.Get(geoKey)
	if supplierHit && geoHit {
		return model.TradeOverview{SupplierCustomer: supplier, Geographic: geo}, nil
	}

	shipments, err := s.fetch(ctx, q)
	if err != nil {
		return model.TradeOverview{}, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		supplier = summarize(aggregate.KindSupplierCustomer, shipments, q)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		geo = summarize(aggregate.KindGeographic, shipments, q)
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.TradeOverview{}, fmt.Errorf("failed to build trade overview: %w", err)
	}

	s.results.Set(supplierKey, supplier)
	s.results.Set(geoKey, geo)

	logger.Log.WithFields(logrus.Fields{
		"search":    q.Search,
		"records":   len(shipments),
		"suppliers": supplier.Summary.ParentCount,
		"countries": geo.Summary.ParentCount,
	}).Info("trade overview computed")

	return model.TradeOverview{SupplierCustomer: supplier, Geographic: geo}, nil
}

func (s *summaryService) InvalidateCache() {
	s.results.Purge()
	logger.Log.Debug("summary cache purged")
}

func (s *summaryService) fetch(ctx context.Context, q SummaryQuery) ([]model.Shipment, error) {
	shipments, err := s.shipmentRepo.FindForSummary(ctx, model.ShipmentFilter{
		Search:     q.Search,
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		MaxRecords: s.maxRecords,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load shipments: %w", err)
	}
	if s.maxRecords > 0 && len(shipments) >= s.maxRecords {
		logger.Log.WithFields(logrus.Fields{"search": q.Search, "max_records": s.maxRecords}).
			Warn("summary input truncated at record cap")
	}
	return shipments, nil
}

func validateQuery(q SummaryQuery) (SummaryQuery, error) {
	if q.Type == "" {
		q.Type = model.AnalysisSupplierCustomer
	}
	switch {
	case q.Limit < 1:
		q.Limit = pagination.DefaultTopN
	case q.Limit > pagination.MaxTopN:
		q.Limit = pagination.MaxTopN
	}
	if q.StartDate != nil && q.EndDate != nil && q.StartDate.After(*q.EndDate) {
		return q, ErrInvalidDateRange
	}
	return q, nil
}

func fingerprint(q SummaryQuery, kind aggregate.Kind) string {
	return cache.Fingerprint(q.Search, strconv.Itoa(q.Limit), string(kind), formatBound(q.StartDate), formatBound(q.EndDate))
}

func formatBound(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func summarize(kind aggregate.Kind, shipments []model.Shipment, q SummaryQuery) model.SummaryResult {
	records := make([]aggregate.Record, len(shipments))
	for i, sh := range shipments {
		records[i] = aggregate.Record{
			SupplierName:         sh.SupplierName,
			BuyerName:            sh.BuyerName,
			CountryOfDestination: sh.CountryOfDestination,
			TotalValueUSD:        sh.TotalValueUSD,
		}
	}

	result := toSummaryResult(aggregate.NewPipeline(kind).Run(records, q.Limit))
	result.DateRange = dateRange(q, shipments)
	return result
}

func toSummaryResult(r aggregate.Rollup) model.SummaryResult {
	result := model.SummaryResult{
		Type: string(r.Kind),
		Summary: model.SummaryTotals{
			TotalValue:     r.TotalValue,
			TotalShipments: r.TotalShipments,
			AverageValue:   r.AverageValue,
			ParentCount:    r.ParentCount,
		},
	}

	if r.Kind == aggregate.KindGeographic {
		result.TopCountries = make([]model.CountrySummary, 0, len(r.Rows))
		for _, row := range r.Rows {
			result.TopCountries = append(result.TopCountries, model.CountrySummary{
				Name:           row.Name,
				TotalValue:     row.TotalValue,
				TotalShipments: row.TotalShipments,
				MarketShare:    row.MarketShare,
				TotalImporters: row.ChildCount,
				TopImporters:   toPartyShares(row.Children),
			})
		}
		return result
	}

	result.TopSuppliers = make([]model.SupplierSummary, 0, len(r.Rows))
	for _, row := range r.Rows {
		result.TopSuppliers = append(result.TopSuppliers, model.SupplierSummary{
			Name:           row.Name,
			TotalValue:     row.TotalValue,
			TotalShipments: row.TotalShipments,
			MarketShare:    row.MarketShare,
			TotalCustomers: row.ChildCount,
			TopCustomers:   toPartyShares(row.Children),
		})
	}
	return result
}

func toPartyShares(rows []aggregate.MarketShareRow) []model.PartyShare {
	shares := make([]model.PartyShare, 0, len(rows))
	for _, c := range rows {
		shares = append(shares, model.PartyShare{
			Name:       c.Name,
			Value:      c.Value,
			Shipments:  c.Shipments,
			Percentage: c.Percentage,
		})
	}
	return shares
}

// dateRange prefers the requested window and fills open ends from the records.
func dateRange(q SummaryQuery, shipments []model.Shipment) model.DateRange {
	dr := model.DateRange{Start: q.StartDate, End: q.EndDate}
	if dr.Start != nil && dr.End != nil {
		return dr
	}

	var first, last *time.Time
	for i := range shipments {
		d := shipments[i].ShipmentDate
		if d == nil {
			continue
		}
		if first == nil || d.Before(*first) {
			first = d
		}
		if last == nil || d.After(*last) {
			last = d
		}
	}
	if dr.Start == nil {
		dr.Start = first
	}
	if dr.End == nil {
		dr.End = last
	}
	return dr
}
