package services

import (
	"context"
	"errors"
	"time"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
	"dentalpro-backend/utils"
)

// DeriveInvoiceStatus is the single source of truth for invoice status:
// zero paid is draft, paid covering total is paid, anything between is
// partial. Void is terminal and never derived.
func DeriveInvoiceStatus(paidYER, totalYER int64) models.InvoiceStatus {
	switch {
	case paidYER == 0:
		return models.InvoiceDraft
	case paidYER >= totalYER:
		return models.InvoicePaid
	default:
		return models.InvoicePartial
	}
}

type ApplyReceiptInput struct {
	AmountYER int64      `json:"amountYER"`
	Method    string     `json:"method" binding:"required"`
	Reference string     `json:"reference"`
	CreatedBy string     `json:"createdBy"`
	Date      *time.Time `json:"date"`
}

type InvoiceService struct {
	repos *repository.Bundle
	audit *AuditService
	perms *PermissionService
	clock func() time.Time
}

func NewInvoiceService(repos *repository.Bundle, audit *AuditService, perms *PermissionService, clock func() time.Time) *InvoiceService {
	if clock == nil {
		clock = time.Now
	}
	return &InvoiceService{repos: repos, audit: audit, perms: perms, clock: clock}
}

// CreateFromSession creates a draft invoice for the session fee and posts
// the accrual ledger entry: revenue is recognized at invoice creation, not
// at payment. Idempotent per session while the prior invoice is not void.
func (s *InvoiceService) CreateFromSession(ctx context.Context, sessionID string) (models.Invoice, error) {
	if err := s.perms.Assert(ctx, ActionSessionsInvoice); err != nil {
		return models.Invoice{}, err
	}
	session, err := s.repos.Sessions.FindByID(sessionID)
	if err != nil {
		return models.Invoice{}, err
	}
	if existing, err := s.repos.Invoices.FindBySession(sessionID); err == nil {
		return existing, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return models.Invoice{}, err
	}
	if err := utils.AssertAmount(session.FeeYER); err != nil {
		return models.Invoice{}, err
	}
	invoice, err := s.repos.Invoices.Create(models.Invoice{
		PatientID:       session.PatientID,
		Date:            s.clock(),
		TotalYER:        session.FeeYER,
		PaidYER:         0,
		Status:          models.InvoiceDraft,
		LinkedSessionID: sessionID,
		Notes:           session.Notes,
	})
	if err != nil {
		return models.Invoice{}, err
	}
	if _, err := s.repos.Ledger.Create(models.LedgerEntry{
		Date:        invoice.Date,
		Type:        models.LedgerInvoice,
		ReferenceID: invoice.ID,
		Direction:   models.LedgerIn,
		AmountYER:   invoice.TotalYER,
		Note:        "treatment invoice issued",
	}); err != nil {
		return models.Invoice{}, err
	}
	if _, err := s.audit.Log(ctx, "create", "invoice", invoice.ID, models.JSONMap{
		"sessionId": sessionID,
		"totalYER":  invoice.TotalYER,
	}); err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}

func (s *InvoiceService) GetByPatient(patientID string) []models.Invoice {
	return s.repos.Invoices.FindByPatient(patientID)
}

// ApplyReceipt records a payment against the invoice, re-derives its
// status and posts the matching ledger entry. Fails on void invoices.
func (s *InvoiceService) ApplyReceipt(ctx context.Context, invoiceID string, input ApplyReceiptInput) (models.Invoice, models.Receipt, error) {
	if err := s.perms.Assert(ctx, ActionCashboxReceipt); err != nil {
		return models.Invoice{}, models.Receipt{}, err
	}
	invoice, err := s.repos.Invoices.FindByID(invoiceID)
	if err != nil {
		return models.Invoice{}, models.Receipt{}, err
	}
	if invoice.Status == models.InvoiceVoid {
		return models.Invoice{}, models.Receipt{}, ErrInvalidState
	}
	if err := utils.AssertAmount(input.AmountYER); err != nil {
		return models.Invoice{}, models.Receipt{}, err
	}
	date := s.clock()
	if input.Date != nil {
		date = *input.Date
	}
	receipt, err := s.repos.Receipts.Create(models.Receipt{
		InvoiceID: invoiceID,
		Date:      date,
		AmountYER: input.AmountYER,
		Method:    input.Method,
		Reference: input.Reference,
		CreatedBy: input.CreatedBy,
		Voided:    false,
	})
	if err != nil {
		return models.Invoice{}, models.Receipt{}, err
	}
	updated, err := s.repos.Invoices.Update(invoiceID, func(inv *models.Invoice) {
		inv.PaidYER += input.AmountYER
		inv.Status = DeriveInvoiceStatus(inv.PaidYER, inv.TotalYER)
	})
	if err != nil {
		return models.Invoice{}, models.Receipt{}, err
	}
	if _, err := s.repos.Ledger.Create(models.LedgerEntry{
		Date:        receipt.Date,
		Type:        models.LedgerReceipt,
		ReferenceID: receipt.ID,
		Direction:   models.LedgerIn,
		AmountYER:   receipt.AmountYER,
		Note:        "receipt for invoice " + invoiceID,
	}); err != nil {
		return models.Invoice{}, models.Receipt{}, err
	}
	if _, err := s.audit.Log(ctx, "apply_receipt", "invoice", invoiceID, models.JSONMap{
		"receiptId": receipt.ID,
		"amountYER": input.AmountYER,
	}); err != nil {
		return models.Invoice{}, models.Receipt{}, err
	}
	return updated, receipt, nil
}

// Cancel marks the invoice void. Prior receipts and their ledger entries
// are deliberately left untouched: void is an administrative marker, not a
// compensation.
func (s *InvoiceService) Cancel(ctx context.Context, invoiceID, reason string) (models.Invoice, error) {
	if err := s.perms.Assert(ctx, ActionInvoicesManage); err != nil {
		return models.Invoice{}, err
	}
	updated, err := s.repos.Invoices.Update(invoiceID, func(inv *models.Invoice) {
		inv.Status = models.InvoiceVoid
	})
	if err != nil {
		return models.Invoice{}, err
	}
	if _, err := s.audit.Log(ctx, "void", "invoice", invoiceID, models.JSONMap{"reason": reason}); err != nil {
		return models.Invoice{}, err
	}
	return updated, nil
}
