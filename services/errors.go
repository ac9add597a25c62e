package services

import "errors"

// Sentinel failures surfaced by the business-logic core. Callers match with
// errors.Is; the controllers map them onto HTTP statuses.
var (
	ErrPermissionDenied      = errors.New("role lacks permission for this action")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrInsufficientStock     = errors.New("insufficient stock in batch")
	ErrInvalidState          = errors.New("operation not allowed in current state")
	ErrSchemaVersionMismatch = errors.New("backup schema version not supported")
	ErrDecryptionFailed      = errors.New("backup decryption failed")
	ErrMissingCredential     = errors.New("backup is encrypted and requires a password")
)
