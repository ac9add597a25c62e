package services

import (
	"context"
	"time"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
	"dentalpro-backend/reqctx"
)

// AuditService appends one immutable log row per logical mutation. A void
// that touches the receipt, the ledger and the invoice is still one entry.
type AuditService struct {
	repos *repository.Bundle
	clock func() time.Time
}

func NewAuditService(repos *repository.Bundle, clock func() time.Time) *AuditService {
	if clock == nil {
		clock = time.Now
	}
	return &AuditService{repos: repos, clock: clock}
}

func (s *AuditService) Log(ctx context.Context, action, entity, entityID string, delta models.JSONMap) (models.AuditLog, error) {
	return s.repos.AuditLogs.Create(models.AuditLog{
		Timestamp: s.clock(),
		User:      reqctx.UserName(ctx),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Delta:     delta,
	})
}
