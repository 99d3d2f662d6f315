package model

import (
	"time"

	"github.com/google/uuid"
)

// Shipment is one declared export line as received from the trade data feed.
// Names and amounts are stored exactly as declared; cleaning happens at summary time.
type Shipment struct {
	ID                   uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SupplierName         string     `gorm:"type:varchar(255);index" json:"supplier_name"`
	BuyerName            string     `gorm:"type:varchar(255);index" json:"buyer_name"`
	CountryOfDestination string     `gorm:"type:varchar(120);index" json:"country_of_destination"`
	TotalValueUSD        string     `gorm:"type:varchar(64)" json:"total_value_usd"` // raw, may be malformed
	ProductDescription   string     `gorm:"type:text" json:"product_description"`
	HSCode               string     `gorm:"type:varchar(20);index" json:"hs_code"`
	ShipmentDate         *time.Time `gorm:"index" json:"shipment_date"`
	CreatedAt            time.Time  `json:"created_at"`
}

// ShipmentFilter narrows the records fed into a summary run.
type ShipmentFilter struct {
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	MaxRecords int
}
