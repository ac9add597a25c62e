package models

import "time"

type InventoryItem struct {
	Base
	Name         string `json:"name" gorm:"not null"`
	Unit         string `json:"unit,omitempty"`
	SKU          string `json:"sku,omitempty" gorm:"column:sku"`
	MinimumLevel int    `json:"minimumLevel,omitempty" gorm:"column:min_level"`
	Notes        string `json:"notes,omitempty"`
}

func (InventoryItem) TableName() string { return "inventory_item" }

func (i InventoryItem) WithMeta(b Base) InventoryItem {
	i.Base = b
	return i
}

func (i InventoryItem) Clone() InventoryItem { return i }

// InventoryBatch is one received lot of an item. Remaining stock is
// QuantityIn - QuantityOut; QuantityOut never exceeds QuantityIn.
type InventoryBatch struct {
	Base
	ItemID      string    `json:"itemId" gorm:"index;not null"`
	BatchNo     string    `json:"batchNo" gorm:"column:batch_no"`
	ExpiryDate  time.Time `json:"expiryDate" gorm:"index;not null"`
	QuantityIn  int       `json:"quantityIn" gorm:"column:qty_in;not null"`
	QuantityOut int       `json:"quantityOut" gorm:"column:qty_out;not null"`
	CostYER     int64     `json:"costYER" gorm:"column:cost_yer;not null"`
}

func (InventoryBatch) TableName() string { return "inventory_batch" }

func (b InventoryBatch) WithMeta(base Base) InventoryBatch {
	b.Base = base
	return b
}

func (b InventoryBatch) Clone() InventoryBatch { return b }

// Remaining returns the quantity still available in the batch.
func (b InventoryBatch) Remaining() int {
	return b.QuantityIn - b.QuantityOut
}
