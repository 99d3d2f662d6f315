package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pharmatrade/internal/logger"
	"pharmatrade/internal/model"
	"pharmatrade/internal/repository"

	"github.com/sirupsen/logrus"
)

// MaxImportBatch caps the number of shipments accepted by one import call.
const MaxImportBatch = 5000

// EventShipmentsImported is broadcast after new shipments are stored.
const EventShipmentsImported = "shipments.imported"

// RawAmount keeps a declared value as text. It accepts a JSON string or number so feeds
// that send either form import unchanged.
type RawAmount string

func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = RawAmount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("total_value_usd must be a string or a number: %w", err)
	}
	*a = RawAmount(n.String())
	return nil
}

// DTOs
type ShipmentPayload struct {
	SupplierName         string     `json:"supplier_name"`
	BuyerName            string     `json:"buyer_name"`
	CountryOfDestination string     `json:"country_of_destination"`
	TotalValueUSD        RawAmount  `json:"total_value_usd" swaggertype:"string" example:"12500.00"`
	ProductDescription   string     `json:"product_description"`
	HSCode               string     `json:"hs_code"`
	ShipmentDate         *time.Time `json:"shipment_date"`
}

type ImportShipmentsRequest struct {
	Shipments []ShipmentPayload `json:"shipments" binding:"required"`
}

type ImportShipmentsResponse struct {
	Inserted int `json:"inserted"`
}

// EventPublisher pushes realtime notifications to connected dashboards.
type EventPublisher interface {
	Publish(event string, data interface{})
}

// CacheInvalidator drops summaries computed from older data.
type CacheInvalidator interface {
	InvalidateCache()
}

type ShipmentService interface {
	ListShipments(ctx context.Context, page, limit int) ([]model.Shipment, int64, error)
	ImportShipments(ctx context.Context, req ImportShipmentsRequest) (ImportShipmentsResponse, error)
}

type shipmentService struct {
	shipmentRepo repository.ShipmentRepository
	txManager    repository.TransactionManager
	summaries    CacheInvalidator
	events       EventPublisher
}

func NewShipmentService(
	shipmentRepo repository.ShipmentRepository,
	txManager repository.TransactionManager,
	summaries CacheInvalidator,
	events EventPublisher,
) ShipmentService {
	return &shipmentService{
		shipmentRepo: shipmentRepo,
		txManager:    txManager,
		summaries:    summaries,
		events:       events,
	}
}

func (s *shipmentService) ListShipments(ctx context.Context, page, limit int) ([]model.Shipment, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	shipments, total, err := s.shipmentRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	if shipments == nil {
		shipments = []model.Shipment{}
	}
	return shipments, total, nil
}

func (s *shipmentService) ImportShipments(ctx context.Context, req ImportShipmentsRequest) (ImportShipmentsResponse, error) {
	switch n := len(req.Shipments); {
	case n == 0:
		return ImportShipmentsResponse{}, fmt.Errorf("%w: at least one shipment is required", ErrInvalidImport)
	case n > MaxImportBatch:
		return ImportShipmentsResponse{}, fmt.Errorf("%w: %d shipments exceeds the limit of %d", ErrInvalidImport, n, MaxImportBatch)
	}

	shipments := make([]model.Shipment, 0, len(req.Shipments))
	for _, p := range req.Shipments {
		shipments = append(shipments, model.Shipment{
			SupplierName:         p.SupplierName,
			BuyerName:            p.BuyerName,
			CountryOfDestination: p.CountryOfDestination,
			TotalValueUSD:        string(p.TotalValueUSD),
			ProductDescription:   p.ProductDescription,
			HSCode:               p.HSCode,
			ShipmentDate:         p.ShipmentDate,
		})
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.shipmentRepo.CreateBatch(txCtx, shipments)
	})
	if err != nil {
		return ImportShipmentsResponse{}, fmt.Errorf("failed to import shipments: %w", err)
	}

	s.summaries.InvalidateCache()
	s.events.Publish(EventShipmentsImported, map[string]interface{}{
		"inserted": len(shipments),
	})

	logger.Log.WithFields(logrus.Fields{"inserted": len(shipments)}).Info("shipments imported")
	return ImportShipmentsResponse{Inserted: len(shipments)}, nil
}
