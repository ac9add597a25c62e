package services

import (
	"context"
	"errors"
	"time"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
	"dentalpro-backend/utils"
)

type CreateReceiptInput struct {
	InvoiceID string     `json:"invoiceId"`
	AmountYER int64      `json:"amountYER"`
	Method    string     `json:"method" binding:"required"`
	Reference string     `json:"reference"`
	CreatedBy string     `json:"createdBy"`
	Date      *time.Time `json:"date"`
}

type CreateVoucherInput struct {
	AmountYER int64      `json:"amountYER"`
	Payee     string     `json:"payee" binding:"required"`
	Reason    string     `json:"reason" binding:"required"`
	CreatedBy string     `json:"createdBy"`
	Date      *time.Time `json:"date"`
}

// CashboxService issues and voids receipts and payment vouchers, posting a
// balancing ledger entry for each movement and a reversing one on void.
type CashboxService struct {
	repos    *repository.Bundle
	audit    *AuditService
	perms    *PermissionService
	invoices *InvoiceService
	clock    func() time.Time
}

func NewCashboxService(repos *repository.Bundle, audit *AuditService, perms *PermissionService, invoices *InvoiceService, clock func() time.Time) *CashboxService {
	if clock == nil {
		clock = time.Now
	}
	return &CashboxService{repos: repos, audit: audit, perms: perms, invoices: invoices, clock: clock}
}

// CreateReceipt records incoming cash. With an invoice id it delegates to
// the invoice service so the invoice's paid amount and status stay in step;
// otherwise it is standalone miscellaneous income.
func (s *CashboxService) CreateReceipt(ctx context.Context, input CreateReceiptInput) (models.Receipt, error) {
	if err := utils.AssertAmount(input.AmountYER); err != nil {
		return models.Receipt{}, err
	}
	if input.InvoiceID != "" {
		_, receipt, err := s.invoices.ApplyReceipt(ctx, input.InvoiceID, ApplyReceiptInput{
			AmountYER: input.AmountYER,
			Method:    input.Method,
			Reference: input.Reference,
			CreatedBy: input.CreatedBy,
			Date:      input.Date,
		})
		return receipt, err
	}
	if err := s.perms.Assert(ctx, ActionCashboxReceipt); err != nil {
		return models.Receipt{}, err
	}
	date := s.clock()
	if input.Date != nil {
		date = *input.Date
	}
	if input.Reference == "" {
		input.Reference = "RC-" + utils.GenerateRandomString(8)
	}
	receipt, err := s.repos.Receipts.Create(models.Receipt{
		Date:      date,
		AmountYER: input.AmountYER,
		Method:    input.Method,
		Reference: input.Reference,
		CreatedBy: input.CreatedBy,
		Voided:    false,
	})
	if err != nil {
		return models.Receipt{}, err
	}
	if _, err := s.repos.Ledger.Create(models.LedgerEntry{
		Date:        receipt.Date,
		Type:        models.LedgerReceipt,
		ReferenceID: receipt.ID,
		Direction:   models.LedgerIn,
		AmountYER:   receipt.AmountYER,
		Note:        "standalone receipt",
	}); err != nil {
		return models.Receipt{}, err
	}
	if _, err := s.audit.Log(ctx, "create", "receipt", receipt.ID, models.JSONMap{
		"amountYER": receipt.AmountYER,
		"method":    receipt.Method,
	}); err != nil {
		return models.Receipt{}, err
	}
	return receipt, nil
}

// VoidReceipt marks the receipt voided, posts a reversing ledger entry and,
// for invoice-linked receipts, claws the amount back out of the invoice's
// paid total (floored at zero) with the status re-derived. Voiding an
// already-voided receipt is a no-op.
func (s *CashboxService) VoidReceipt(ctx context.Context, id, reason string) (models.Receipt, error) {
	if err := s.perms.Assert(ctx, ActionCashboxReceiptVoid); err != nil {
		return models.Receipt{}, err
	}
	receipt, err := s.repos.Receipts.FindByID(id)
	if err != nil {
		return models.Receipt{}, err
	}
	if receipt.Voided {
		return receipt, nil
	}
	updated, err := s.repos.Receipts.Update(id, func(r *models.Receipt) {
		r.Voided = true
	})
	if err != nil {
		return models.Receipt{}, err
	}
	if _, err := s.repos.Ledger.Create(models.LedgerEntry{
		Date:        s.clock(),
		Type:        models.LedgerReceipt,
		ReferenceID: id,
		Direction:   models.LedgerOut,
		AmountYER:   receipt.AmountYER,
		Note:        "receipt voided: " + reason,
	}); err != nil {
		return models.Receipt{}, err
	}
	if receipt.InvoiceID != "" {
		if _, err := s.repos.Invoices.Update(receipt.InvoiceID, func(inv *models.Invoice) {
			inv.PaidYER -= receipt.AmountYER
			if inv.PaidYER < 0 {
				inv.PaidYER = 0
			}
			if inv.Status != models.InvoiceVoid {
				inv.Status = DeriveInvoiceStatus(inv.PaidYER, inv.TotalYER)
			}
		}); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return models.Receipt{}, err
		}
	}
	if _, err := s.audit.Log(ctx, "void", "receipt", id, models.JSONMap{"reason": reason}); err != nil {
		return models.Receipt{}, err
	}
	return updated, nil
}

func (s *CashboxService) CreatePaymentVoucher(ctx context.Context, input CreateVoucherInput) (models.PaymentVoucher, error) {
	if err := s.perms.Assert(ctx, ActionCashboxPayment); err != nil {
		return models.PaymentVoucher{}, err
	}
	if err := utils.AssertAmount(input.AmountYER); err != nil {
		return models.PaymentVoucher{}, err
	}
	date := s.clock()
	if input.Date != nil {
		date = *input.Date
	}
	voucher, err := s.repos.PaymentVouchers.Create(models.PaymentVoucher{
		Date:      date,
		AmountYER: input.AmountYER,
		Payee:     input.Payee,
		Reason:    input.Reason,
		CreatedBy: input.CreatedBy,
		Voided:    false,
	})
	if err != nil {
		return models.PaymentVoucher{}, err
	}
	if _, err := s.repos.Ledger.Create(models.LedgerEntry{
		Date:        voucher.Date,
		Type:        models.LedgerPaymentVoucher,
		ReferenceID: voucher.ID,
		Direction:   models.LedgerOut,
		AmountYER:   voucher.AmountYER,
		Note:        input.Reason,
	}); err != nil {
		return models.PaymentVoucher{}, err
	}
	if _, err := s.audit.Log(ctx, "create", "payment_voucher", voucher.ID, models.JSONMap{
		"amountYER": voucher.AmountYER,
		"payee":     voucher.Payee,
	}); err != nil {
		return models.PaymentVoucher{}, err
	}
	return voucher, nil
}

// VoidPayment mirrors VoidReceipt with the ledger direction reversed.
// Idempotent for already-voided vouchers.
func (s *CashboxService) VoidPayment(ctx context.Context, id, reason string) (models.PaymentVoucher, error) {
	if err := s.perms.Assert(ctx, ActionCashboxPaymentVoid); err != nil {
		return models.PaymentVoucher{}, err
	}
	voucher, err := s.repos.PaymentVouchers.FindByID(id)
	if err != nil {
		return models.PaymentVoucher{}, err
	}
	if voucher.Voided {
		return voucher, nil
	}
	updated, err := s.repos.PaymentVouchers.Update(id, func(v *models.PaymentVoucher) {
		v.Voided = true
	})
	if err != nil {
		return models.PaymentVoucher{}, err
	}
	if _, err := s.repos.Ledger.Create(models.LedgerEntry{
		Date:        s.clock(),
		Type:        models.LedgerPaymentVoucher,
		ReferenceID: id,
		Direction:   models.LedgerIn,
		AmountYER:   voucher.AmountYER,
		Note:        "payment voucher voided: " + reason,
	}); err != nil {
		return models.PaymentVoucher{}, err
	}
	if _, err := s.audit.Log(ctx, "void", "payment_voucher", id, models.JSONMap{"reason": reason}); err != nil {
		return models.PaymentVoucher{}, err
	}
	return updated, nil
}
