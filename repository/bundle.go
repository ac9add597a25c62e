package repository

import (
	"strings"
	"time"

	"dentalpro-backend/models"
)

// Typed repositories wrap the generic collection with the read-only queries
// each entity needs. Queries are plain filters; callers sort if they care.

type PatientRepository struct {
	*Collection[models.Patient]
}

func (r *PatientRepository) FindByCode(code string) (models.Patient, error) {
	return r.Find(func(p models.Patient) bool {
		return strings.EqualFold(p.Code, code)
	})
}

func (r *PatientRepository) Search(term string) []models.Patient {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if normalized == "" {
		return r.List()
	}
	return r.Filter(func(p models.Patient) bool {
		return strings.Contains(strings.ToLower(p.FullNameAr), normalized) ||
			strings.Contains(strings.ToLower(p.FullNameEn), normalized) ||
			strings.Contains(p.Phone, normalized) ||
			strings.Contains(strings.ToLower(p.Code), normalized)
	})
}

type ToothStatusRepository struct {
	*Collection[models.ToothStatus]
}

func (r *ToothStatusRepository) FindByCode(code string) (models.ToothStatus, error) {
	return r.Find(func(s models.ToothStatus) bool {
		return strings.EqualFold(s.Code, code)
	})
}

type PatientToothRepository struct {
	*Collection[models.PatientTooth]
}

func (r *PatientToothRepository) FindByPatient(patientID string) []models.PatientTooth {
	return r.Filter(func(t models.PatientTooth) bool { return t.PatientID == patientID })
}

func (r *PatientToothRepository) FindByPatientAndTooth(patientID string, toothNumber int) (models.PatientTooth, error) {
	return r.Find(func(t models.PatientTooth) bool {
		return t.PatientID == patientID && t.ToothNumber == toothNumber
	})
}

type AppointmentRepository struct {
	*Collection[models.Appointment]
}

func (r *AppointmentRepository) FindByDateRange(start, end time.Time) []models.Appointment {
	return r.Filter(func(a models.Appointment) bool {
		return !a.Start.Before(start) && !a.Start.After(end)
	})
}

type SessionRepository struct {
	*Collection[models.Session]
}

func (r *SessionRepository) FindByPatient(patientID string) []models.Session {
	return r.Filter(func(s models.Session) bool { return s.PatientID == patientID })
}

type InvoiceRepository struct {
	*Collection[models.Invoice]
}

func (r *InvoiceRepository) FindByPatient(patientID string) []models.Invoice {
	return r.Filter(func(i models.Invoice) bool { return i.PatientID == patientID })
}

// FindBySession returns the non-void invoice linked to the session, if any.
func (r *InvoiceRepository) FindBySession(sessionID string) (models.Invoice, error) {
	return r.Find(func(i models.Invoice) bool {
		return i.LinkedSessionID == sessionID && i.Status != models.InvoiceVoid
	})
}

type ReceiptRepository struct {
	*Collection[models.Receipt]
}

func (r *ReceiptRepository) FindByInvoice(invoiceID string) []models.Receipt {
	return r.Filter(func(rc models.Receipt) bool { return rc.InvoiceID == invoiceID })
}

type InventoryBatchRepository struct {
	*Collection[models.InventoryBatch]
}

func (r *InventoryBatchRepository) FindByItem(itemID string) []models.InventoryBatch {
	return r.Filter(func(b models.InventoryBatch) bool { return b.ItemID == itemID })
}

type LabOrderRepository struct {
	*Collection[models.LabOrder]
}

func (r *LabOrderRepository) FindByPatient(patientID string) []models.LabOrder {
	return r.Filter(func(o models.LabOrder) bool { return o.PatientID == patientID })
}

type LedgerRepository struct {
	*Collection[models.LedgerEntry]
}

func (r *LedgerRepository) ListByDateRange(start, end time.Time) []models.LedgerEntry {
	return r.Filter(func(e models.LedgerEntry) bool {
		return !e.Date.Before(start) && !e.Date.After(end)
	})
}

type AuditLogRepository struct {
	*Collection[models.AuditLog]
}

func (r *AuditLogRepository) ListByEntity(entity, entityID string) []models.AuditLog {
	return r.Filter(func(l models.AuditLog) bool {
		return l.Entity == entity && l.EntityID == entityID
	})
}

type FileAttachmentRepository struct {
	*Collection[models.FileAttachment]
}

func (r *FileAttachmentRepository) ListByOwner(ownerType, ownerID string) []models.FileAttachment {
	return r.Filter(func(a models.FileAttachment) bool {
		return a.OwnerType == ownerType && a.OwnerID == ownerID
	})
}

type UserRepository struct {
	*Collection[models.User]
}

func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	return r.Find(func(u models.User) bool {
		return strings.EqualFold(u.Email, email)
	})
}

// Bundle owns every collection. Services hold no entity state themselves;
// they always go through the bundle.
type Bundle struct {
	Doctors          *Collection[models.Doctor]
	Patients         *PatientRepository
	ToothStatuses    *ToothStatusRepository
	PatientTeeth     *PatientToothRepository
	Appointments     *AppointmentRepository
	Sessions         *SessionRepository
	Invoices         *InvoiceRepository
	Receipts         *ReceiptRepository
	PaymentVouchers  *Collection[models.PaymentVoucher]
	Suppliers        *Collection[models.Supplier]
	InventoryItems   *Collection[models.InventoryItem]
	InventoryBatches *InventoryBatchRepository
	LabOrders        *LabOrderRepository
	Ledger           *LedgerRepository
	AuditLogs        *AuditLogRepository
	Attachments      *FileAttachmentRepository
	Users            *UserRepository
}

func NewBundle(opts Options) *Bundle {
	return &Bundle{
		Doctors:          NewCollection[models.Doctor](opts),
		Patients:         &PatientRepository{NewCollection[models.Patient](opts)},
		ToothStatuses:    &ToothStatusRepository{NewCollection[models.ToothStatus](opts)},
		PatientTeeth:     &PatientToothRepository{NewCollection[models.PatientTooth](opts)},
		Appointments:     &AppointmentRepository{NewCollection[models.Appointment](opts)},
		Sessions:         &SessionRepository{NewCollection[models.Session](opts)},
		Invoices:         &InvoiceRepository{NewCollection[models.Invoice](opts)},
		Receipts:         &ReceiptRepository{NewCollection[models.Receipt](opts)},
		PaymentVouchers:  NewCollection[models.PaymentVoucher](opts),
		Suppliers:        NewCollection[models.Supplier](opts),
		InventoryItems:   NewCollection[models.InventoryItem](opts),
		InventoryBatches: &InventoryBatchRepository{NewCollection[models.InventoryBatch](opts)},
		LabOrders:        &LabOrderRepository{NewCollection[models.LabOrder](opts)},
		Ledger:           &LedgerRepository{NewCollection[models.LedgerEntry](opts)},
		AuditLogs:        &AuditLogRepository{NewCollection[models.AuditLog](opts)},
		Attachments:      &FileAttachmentRepository{NewCollection[models.FileAttachment](opts)},
		Users:            &UserRepository{NewCollection[models.User](opts)},
	}
}
