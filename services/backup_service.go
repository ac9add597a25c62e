package services

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/scrypt"
	"gorm.io/gorm"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
)

// SchemaVersion must match exactly on import.
const SchemaVersion = "2024-03-01"

const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	backupKeyLen = 32
	gcmNonceLen  = 12
	gcmTagLen    = 16
)

// BackupEnvelope is the on-disk backup format. Data is base64; when
// encrypted, it is AES-256-GCM ciphertext with the 16-byte tag carried
// separately and the key derived from the password via scrypt.
type BackupEnvelope struct {
	SchemaVersion string `json:"schemaVersion"`
	Encrypted     bool   `json:"encrypted"`
	Data          string `json:"data"`
	IV            string `json:"iv,omitempty"`
	Salt          string `json:"salt,omitempty"`
	Tag           string `json:"tag,omitempty"`
}

type backupData struct {
	Doctors          []models.Doctor         `json:"doctors"`
	Patients         []models.Patient        `json:"patients"`
	ToothStatuses    []models.ToothStatus    `json:"toothStatuses"`
	PatientTeeth     []models.PatientTooth   `json:"patientTeeth"`
	Appointments     []models.Appointment    `json:"appointments"`
	Sessions         []models.Session        `json:"sessions"`
	Invoices         []models.Invoice        `json:"invoices"`
	Receipts         []models.Receipt        `json:"receipts"`
	PaymentVouchers  []models.PaymentVoucher `json:"paymentVouchers"`
	Suppliers        []models.Supplier       `json:"suppliers"`
	InventoryItems   []models.InventoryItem  `json:"inventoryItems"`
	InventoryBatches []models.InventoryBatch `json:"inventoryBatches"`
	LabOrders        []models.LabOrder       `json:"labOrders"`
	Ledger           []models.LedgerEntry    `json:"ledger"`
	AuditLogs        []models.AuditLog       `json:"auditLogs"`
	Attachments      []models.FileAttachment `json:"attachments"`
}

type backupPayload struct {
	SchemaVersion string     `json:"schemaVersion"`
	Data          backupData `json:"data"`
}

type BackupService struct {
	repos *repository.Bundle
	perms *PermissionService
}

func NewBackupService(repos *repository.Bundle, perms *PermissionService) *BackupService {
	return &BackupService{repos: repos, perms: perms}
}

func (s *BackupService) collect() backupData {
	return backupData{
		Doctors:          s.repos.Doctors.List(),
		Patients:         s.repos.Patients.List(),
		ToothStatuses:    s.repos.ToothStatuses.List(),
		PatientTeeth:     s.repos.PatientTeeth.List(),
		Appointments:     s.repos.Appointments.List(),
		Sessions:         s.repos.Sessions.List(),
		Invoices:         s.repos.Invoices.List(),
		Receipts:         s.repos.Receipts.List(),
		PaymentVouchers:  s.repos.PaymentVouchers.List(),
		Suppliers:        s.repos.Suppliers.List(),
		InventoryItems:   s.repos.InventoryItems.List(),
		InventoryBatches: s.repos.InventoryBatches.List(),
		LabOrders:        s.repos.LabOrders.List(),
		Ledger:           s.repos.Ledger.List(),
		AuditLogs:        s.repos.AuditLogs.List(),
		Attachments:      s.repos.Attachments.List(),
	}
}

func deriveKey(password string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, backupKeyLen)
}

// ExportJSON serializes every collection into an envelope, optionally
// encrypted with the given password. Manager only.
func (s *BackupService) ExportJSON(ctx context.Context, password string) (BackupEnvelope, error) {
	if err := s.perms.Assert(ctx, ActionBackupExport); err != nil {
		return BackupEnvelope{}, err
	}
	payload, err := json.Marshal(backupPayload{SchemaVersion: SchemaVersion, Data: s.collect()})
	if err != nil {
		return BackupEnvelope{}, err
	}
	if password == "" {
		return BackupEnvelope{
			SchemaVersion: SchemaVersion,
			Encrypted:     false,
			Data:          base64.StdEncoding.EncodeToString(payload),
		}, nil
	}
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return BackupEnvelope{}, err
	}
	key, err := deriveKey(password, salt)
	if err != nil {
		return BackupEnvelope{}, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return BackupEnvelope{}, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return BackupEnvelope{}, err
	}
	iv := make([]byte, gcmNonceLen)
	if _, err := rand.Read(iv); err != nil {
		return BackupEnvelope{}, err
	}
	sealed := gcm.Seal(nil, iv, payload, nil)
	ciphertext, tag := sealed[:len(sealed)-gcmTagLen], sealed[len(sealed)-gcmTagLen:]
	return BackupEnvelope{
		SchemaVersion: SchemaVersion,
		Encrypted:     true,
		Data:          base64.StdEncoding.EncodeToString(ciphertext),
		IV:            base64.StdEncoding.EncodeToString(iv),
		Salt:          base64.StdEncoding.EncodeToString(salt),
		Tag:           base64.StdEncoding.EncodeToString(tag),
	}, nil
}

// ImportJSON replaces every collection with the envelope contents. The
// schema version must match exactly. Manager only.
func (s *BackupService) ImportJSON(ctx context.Context, envelope BackupEnvelope, password string) error {
	if err := s.perms.Assert(ctx, ActionBackupImport); err != nil {
		return err
	}
	if envelope.Encrypted && password == "" {
		return ErrMissingCredential
	}
	var payload []byte
	if envelope.Encrypted {
		decoded, err := decryptEnvelope(envelope, password)
		if err != nil {
			return err
		}
		payload = decoded
	} else {
		decoded, err := base64.StdEncoding.DecodeString(envelope.Data)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
		}
		payload = decoded
	}
	var parsed backupPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	if parsed.SchemaVersion != SchemaVersion {
		return fmt.Errorf("%w: got %q", ErrSchemaVersionMismatch, parsed.SchemaVersion)
	}
	return s.load(parsed.Data)
}

func decryptEnvelope(envelope BackupEnvelope, password string) ([]byte, error) {
	if envelope.IV == "" || envelope.Salt == "" || envelope.Tag == "" {
		return nil, fmt.Errorf("%w: incomplete encryption metadata", ErrDecryptionFailed)
	}
	salt, err := base64.StdEncoding.DecodeString(envelope.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	iv, err := base64.StdEncoding.DecodeString(envelope.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	tag, err := base64.StdEncoding.DecodeString(envelope.Tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(iv) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: bad nonce length", ErrDecryptionFailed)
	}
	plaintext, err := gcm.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

func (s *BackupService) load(data backupData) error {
	if err := s.repos.Doctors.Load(data.Doctors); err != nil {
		return err
	}
	if err := s.repos.Patients.Load(data.Patients); err != nil {
		return err
	}
	if err := s.repos.ToothStatuses.Load(data.ToothStatuses); err != nil {
		return err
	}
	if err := s.repos.PatientTeeth.Load(data.PatientTeeth); err != nil {
		return err
	}
	if err := s.repos.Appointments.Load(data.Appointments); err != nil {
		return err
	}
	if err := s.repos.Sessions.Load(data.Sessions); err != nil {
		return err
	}
	if err := s.repos.Invoices.Load(data.Invoices); err != nil {
		return err
	}
	if err := s.repos.Receipts.Load(data.Receipts); err != nil {
		return err
	}
	if err := s.repos.PaymentVouchers.Load(data.PaymentVouchers); err != nil {
		return err
	}
	if err := s.repos.Suppliers.Load(data.Suppliers); err != nil {
		return err
	}
	if err := s.repos.InventoryItems.Load(data.InventoryItems); err != nil {
		return err
	}
	if err := s.repos.InventoryBatches.Load(data.InventoryBatches); err != nil {
		return err
	}
	if err := s.repos.LabOrders.Load(data.LabOrders); err != nil {
		return err
	}
	if err := s.repos.Ledger.Load(data.Ledger); err != nil {
		return err
	}
	if err := s.repos.AuditLogs.Load(data.AuditLogs); err != nil {
		return err
	}
	return s.repos.Attachments.Load(data.Attachments)
}

// SnapshotSQLite writes the whole working set (staff accounts included)
// into the SQLite database in one transaction, replacing previous rows.
// Called by the scheduler and at shutdown; not permission-gated.
func (s *BackupService) SnapshotSQLite(db *gorm.DB) error {
	data := s.collect()
	users := s.repos.Users.List()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := replaceTable(tx, &models.Doctor{}, data.Doctors); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.Patient{}, data.Patients); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.ToothStatus{}, data.ToothStatuses); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.PatientTooth{}, data.PatientTeeth); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.Appointment{}, data.Appointments); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.Session{}, data.Sessions); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.Invoice{}, data.Invoices); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.Receipt{}, data.Receipts); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.PaymentVoucher{}, data.PaymentVouchers); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.Supplier{}, data.Suppliers); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.InventoryItem{}, data.InventoryItems); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.InventoryBatch{}, data.InventoryBatches); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.LabOrder{}, data.LabOrders); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.LedgerEntry{}, data.Ledger); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.AuditLog{}, data.AuditLogs); err != nil {
			return err
		}
		if err := replaceTable(tx, &models.FileAttachment{}, data.Attachments); err != nil {
			return err
		}
		return replaceTable(tx, &models.User{}, users)
	})
}

func replaceTable[T any](tx *gorm.DB, model *T, rows []T) error {
	if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// RestoreSQLite fills the in-memory collections from the SQLite snapshot.
// Called once at startup.
func (s *BackupService) RestoreSQLite(db *gorm.DB) error {
	var data backupData
	var users []models.User
	readers := []func() error{
		func() error { return db.Find(&data.Doctors).Error },
		func() error { return db.Find(&data.Patients).Error },
		func() error { return db.Find(&data.ToothStatuses).Error },
		func() error { return db.Find(&data.PatientTeeth).Error },
		func() error { return db.Find(&data.Appointments).Error },
		func() error { return db.Find(&data.Sessions).Error },
		func() error { return db.Find(&data.Invoices).Error },
		func() error { return db.Find(&data.Receipts).Error },
		func() error { return db.Find(&data.PaymentVouchers).Error },
		func() error { return db.Find(&data.Suppliers).Error },
		func() error { return db.Find(&data.InventoryItems).Error },
		func() error { return db.Find(&data.InventoryBatches).Error },
		func() error { return db.Find(&data.LabOrders).Error },
		func() error { return db.Find(&data.Ledger).Error },
		func() error { return db.Find(&data.AuditLogs).Error },
		func() error { return db.Find(&data.Attachments).Error },
		func() error { return db.Find(&users).Error },
	}
	for _, read := range readers {
		if err := read(); err != nil {
			return err
		}
	}
	if err := s.load(data); err != nil {
		return err
	}
	return s.repos.Users.Load(users)
}
