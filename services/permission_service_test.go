package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"dentalpro-backend/models"
	"dentalpro-backend/reqctx"
)

func TestPermissionMatrix(t *testing.T) {
	perms := NewPermissionService()

	tests := []struct {
		name   string
		ctx    context.Context
		action Action
		want   bool
	}{
		{"manager has everything", managerCtx(), ActionBackupExport, true},
		{"manager daily ops", managerCtx(), ActionCashboxReceipt, true},
		{"secretary daily ops", secretaryCtx(), ActionPatientsManage, true},
		{"secretary cashbox", secretaryCtx(), ActionCashboxReceiptVoid, true},
		{"secretary reports", secretaryCtx(), ActionReportsView, true},
		{"secretary cannot export backups", secretaryCtx(), ActionBackupExport, false},
		{"secretary cannot import backups", secretaryCtx(), ActionBackupImport, false},
		{"no actor has nothing", context.Background(), ActionPatientsManage, false},
		{"unknown role has nothing", reqctx.WithActor(context.Background(), reqctx.Actor{Role: models.UserRole("intern")}), ActionPatientsManage, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, perms.Has(tt.ctx, tt.action))
		})
	}
}

func TestPermissionAssertWrapsSentinel(t *testing.T) {
	perms := NewPermissionService()

	err := perms.Assert(secretaryCtx(), ActionBackupExport)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Contains(t, err.Error(), string(ActionBackupExport))

	assert.NoError(t, perms.Assert(managerCtx(), ActionBackupExport))
}
