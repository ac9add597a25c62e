package services

import (
	"time"

	"dentalpro-backend/repository"
)

// Core bundles every domain service over one shared repository set.
type Core struct {
	Repos        *repository.Bundle
	Permissions  *PermissionService
	Audit        *AuditService
	Patients     *PatientService
	Appointments *AppointmentService
	Sessions     *SessionService
	Invoices     *InvoiceService
	Cashbox      *CashboxService
	Inventory    *InventoryService
	Lab          *LabService
	Reports      *ReportService
	Backup       *BackupService
}

func NewCore(repos *repository.Bundle, clock func() time.Time) *Core {
	if clock == nil {
		clock = time.Now
	}
	perms := NewPermissionService()
	audit := NewAuditService(repos, clock)
	inventory := NewInventoryService(repos, audit, perms, clock)
	invoices := NewInvoiceService(repos, audit, perms, clock)
	return &Core{
		Repos:        repos,
		Permissions:  perms,
		Audit:        audit,
		Patients:     NewPatientService(repos, audit, perms, clock),
		Appointments: NewAppointmentService(repos, audit, perms),
		Sessions:     NewSessionService(repos, audit, perms, inventory, invoices),
		Invoices:     invoices,
		Cashbox:      NewCashboxService(repos, audit, perms, invoices, clock),
		Inventory:    inventory,
		Lab:          NewLabService(repos, audit, perms),
		Reports:      NewReportService(repos),
		Backup:       NewBackupService(repos, perms),
	}
}
