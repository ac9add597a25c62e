package services

import (
	"context"
	"fmt"
	"time"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
	"dentalpro-backend/utils"
)

type AddItemInput struct {
	Name         string `json:"name" binding:"required"`
	Unit         string `json:"unit"`
	SKU          string `json:"sku"`
	MinimumLevel int    `json:"minimumLevel" binding:"min=0"`
	Notes        string `json:"notes"`
}

type AddBatchInput struct {
	ItemID     string    `json:"itemId" binding:"required"`
	BatchNo    string    `json:"batchNo" binding:"required"`
	ExpiryDate time.Time `json:"expiryDate" binding:"required"`
	QuantityIn int       `json:"quantityIn" binding:"required"`
	CostYER    int64     `json:"costYER"`
}

type SoonToExpireItem struct {
	BatchID       string    `json:"batchId"`
	ItemID        string    `json:"itemId"`
	ItemName      string    `json:"itemName"`
	ExpiryDate    time.Time `json:"expiryDate"`
	DaysRemaining int       `json:"daysRemaining"`
}

type InventoryService struct {
	repos *repository.Bundle
	audit *AuditService
	perms *PermissionService
	clock func() time.Time
}

func NewInventoryService(repos *repository.Bundle, audit *AuditService, perms *PermissionService, clock func() time.Time) *InventoryService {
	if clock == nil {
		clock = time.Now
	}
	return &InventoryService{repos: repos, audit: audit, perms: perms, clock: clock}
}

func (s *InventoryService) AddItem(ctx context.Context, input AddItemInput) (models.InventoryItem, error) {
	if err := s.perms.Assert(ctx, ActionInventoryManage); err != nil {
		return models.InventoryItem{}, err
	}
	item, err := s.repos.InventoryItems.Create(models.InventoryItem{
		Name:         input.Name,
		Unit:         input.Unit,
		SKU:          input.SKU,
		MinimumLevel: input.MinimumLevel,
		Notes:        input.Notes,
	})
	if err != nil {
		return models.InventoryItem{}, err
	}
	if _, err := s.audit.Log(ctx, "create", "inventory_item", item.ID, models.JSONMap{"name": item.Name}); err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func (s *InventoryService) AddBatch(ctx context.Context, input AddBatchInput) (models.InventoryBatch, error) {
	if err := s.perms.Assert(ctx, ActionInventoryManage); err != nil {
		return models.InventoryBatch{}, err
	}
	if input.QuantityIn <= 0 {
		return models.InventoryBatch{}, fmt.Errorf("%w: quantityIn must exceed zero", ErrInvalidQuantity)
	}
	if err := utils.AssertAmount(input.CostYER); err != nil {
		return models.InventoryBatch{}, err
	}
	if _, err := s.repos.InventoryItems.FindByID(input.ItemID); err != nil {
		return models.InventoryBatch{}, err
	}
	batch, err := s.repos.InventoryBatches.Create(models.InventoryBatch{
		ItemID:      input.ItemID,
		BatchNo:     input.BatchNo,
		ExpiryDate:  input.ExpiryDate,
		QuantityIn:  input.QuantityIn,
		QuantityOut: 0,
		CostYER:     input.CostYER,
	})
	if err != nil {
		return models.InventoryBatch{}, err
	}
	if _, err := s.audit.Log(ctx, "receive_batch", "inventory_item", input.ItemID, models.JSONMap{
		"batchId":    batch.ID,
		"batchNo":    batch.BatchNo,
		"quantityIn": batch.QuantityIn,
	}); err != nil {
		return models.InventoryBatch{}, err
	}
	return batch, nil
}

// Consume draws quantity from a batch. The overdraw check and the increment
// happen in one repository update, so concurrent consumes cannot take the
// batch negative.
func (s *InventoryService) Consume(ctx context.Context, batchID string, quantity int) (models.InventoryBatch, error) {
	if quantity <= 0 {
		return models.InventoryBatch{}, ErrInvalidQuantity
	}
	var insufficient bool
	updated, err := s.repos.InventoryBatches.Update(batchID, func(batch *models.InventoryBatch) {
		if quantity > batch.Remaining() {
			insufficient = true
			return
		}
		batch.QuantityOut += quantity
	})
	if err != nil {
		return models.InventoryBatch{}, err
	}
	if insufficient {
		return models.InventoryBatch{}, ErrInsufficientStock
	}
	if _, err := s.audit.Log(ctx, "consume_batch", "inventory_item", updated.ItemID, models.JSONMap{
		"batchId":  batchID,
		"quantity": quantity,
	}); err != nil {
		return models.InventoryBatch{}, err
	}
	return updated, nil
}

// restock reverses a consumption. Compensation path only; not exposed as an
// operation of its own.
func (s *InventoryService) restock(batchID string, quantity int) error {
	_, err := s.repos.InventoryBatches.Update(batchID, func(batch *models.InventoryBatch) {
		batch.QuantityOut -= quantity
		if batch.QuantityOut < 0 {
			batch.QuantityOut = 0
		}
	})
	return err
}

// SoonToExpire returns every batch expiring within the next months,
// annotated with the days remaining. Output order is unspecified; callers
// sort if they need to.
func (s *InventoryService) SoonToExpire(ctx context.Context, months int) []SoonToExpireItem {
	now := s.clock()
	items := s.repos.InventoryItems.List()
	names := make(map[string]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}
	var alerts []SoonToExpireItem
	for _, batch := range s.repos.InventoryBatches.List() {
		if !utils.WithinNextMonths(now, batch.ExpiryDate, months) {
			continue
		}
		name, ok := names[batch.ItemID]
		if !ok {
			name = "unknown item"
		}
		alerts = append(alerts, SoonToExpireItem{
			BatchID:       batch.ID,
			ItemID:        batch.ItemID,
			ItemName:      name,
			ExpiryDate:    batch.ExpiryDate,
			DaysRemaining: utils.DaysUntil(now, batch.ExpiryDate),
		})
	}
	return alerts
}
