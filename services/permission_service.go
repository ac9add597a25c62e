package services

import (
	"context"
	"fmt"

	"dentalpro-backend/models"
	"dentalpro-backend/reqctx"
)

// Action tags every permission-gated operation.
type Action string

const (
	ActionPatientsManage     Action = "patients:manage"
	ActionPatientsFiles      Action = "patients:files"
	ActionSessionsManage     Action = "sessions:manage"
	ActionSessionsInvoice    Action = "sessions:invoice"
	ActionInvoicesManage     Action = "invoices:manage"
	ActionCashboxReceipt     Action = "cashbox:receipt"
	ActionCashboxReceiptVoid Action = "cashbox:receipt:void"
	ActionCashboxPayment     Action = "cashbox:payment"
	ActionCashboxPaymentVoid Action = "cashbox:payment:void"
	ActionInventoryManage    Action = "inventory:manage"
	ActionInventoryReport    Action = "inventory:report"
	ActionLabManage          Action = "lab:manage"
	ActionReportsView        Action = "reports:view"
	ActionBackupExport       Action = "backup:export"
	ActionBackupImport       Action = "backup:import"
)

// The secretary's allow-list covers day-to-day operations. Backup export
// and import stay manager-only.
var secretaryActions = map[Action]struct{}{
	ActionPatientsManage:     {},
	ActionPatientsFiles:      {},
	ActionSessionsManage:     {},
	ActionSessionsInvoice:    {},
	ActionInvoicesManage:     {},
	ActionCashboxReceipt:     {},
	ActionCashboxReceiptVoid: {},
	ActionCashboxPayment:     {},
	ActionCashboxPaymentVoid: {},
	ActionInventoryManage:    {},
	ActionInventoryReport:    {},
	ActionLabManage:          {},
	ActionReportsView:        {},
}

// PermissionService resolves the actor's role from the request context on
// every check. The manager role is unrestricted.
type PermissionService struct{}

func NewPermissionService() *PermissionService {
	return &PermissionService{}
}

func (s *PermissionService) Has(ctx context.Context, action Action) bool {
	switch reqctx.Role(ctx) {
	case models.RoleManager:
		return true
	case models.RoleSecretary:
		_, ok := secretaryActions[action]
		return ok
	default:
		return false
	}
}

func (s *PermissionService) Assert(ctx context.Context, action Action) error {
	if !s.Has(ctx, action) {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, action)
	}
	return nil
}
