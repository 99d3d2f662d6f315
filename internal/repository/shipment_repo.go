package repository

import (
	"context"
	"fmt"
	"strings"

	"pharmatrade/internal/model"

	"gorm.io/gorm"
)

// ImportBatchSize is the number of rows per INSERT when importing shipments.
const ImportBatchSize = 500

type ShipmentRepository interface {
	FindForSummary(ctx context.Context, filter model.ShipmentFilter) ([]model.Shipment, error)
	List(ctx context.Context, page, limit int) ([]model.Shipment, int64, error)
	CreateBatch(ctx context.Context, shipments []model.Shipment) error
}

type shipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) ShipmentRepository {
	return &shipmentRepository{db: db}
}

func (r *shipmentRepository) FindForSummary(ctx context.Context, filter model.ShipmentFilter) ([]model.Shipment, error) {
	var shipments []model.Shipment
	if err := summaryQuery(GetDB(ctx, r.db), filter).Find(&shipments).Error; err != nil {
		return nil, fmt.Errorf("failed to query shipments: %w", err)
	}
	return shipments, nil
}

// likeEscaper makes ILIKE treat the search term literally; backslash is the Postgres default escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// summaryQuery selects only the columns the aggregation reads, oldest shipment first.
func summaryQuery(db *gorm.DB, filter model.ShipmentFilter) *gorm.DB {
	query := db.Model(&model.Shipment{}).
		Select("id, supplier_name, buyer_name, country_of_destination, total_value_usd, shipment_date")

	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		query = query.Where("product_description ILIKE ? OR supplier_name ILIKE ? OR buyer_name ILIKE ?",
			pattern, pattern, pattern)
	}
	if filter.StartDate != nil {
		query = query.Where("shipment_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("shipment_date <= ?", *filter.EndDate)
	}

	query = query.Order("shipment_date ASC").Order("created_at ASC")
	if filter.MaxRecords > 0 {
		query = query.Limit(filter.MaxRecords)
	}
	return query
}

func (r *shipmentRepository) List(ctx context.Context, page, limit int) ([]model.Shipment, int64, error) {
	var shipments []model.Shipment
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Shipment{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count shipments: %w", err)
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&shipments).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list shipments: %w", err)
	}

	return shipments, total, nil
}

func (r *shipmentRepository) CreateBatch(ctx context.Context, shipments []model.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}
	if err := GetDB(ctx, r.db).CreateInBatches(shipments, ImportBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert shipments: %w", err)
	}
	return nil
}
