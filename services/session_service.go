package services

import (
	"context"
	"time"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
	"dentalpro-backend/utils"
)

type AttachmentInput struct {
	Name     string `json:"name" binding:"required"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	DataURL  string `json:"dataUrl"`
}

type CreateSessionInput struct {
	PatientID       string                   `json:"patientId" binding:"required"`
	DoctorID        string                   `json:"doctorId" binding:"required"`
	Date            time.Time                `json:"date" binding:"required"`
	Procedures      []string                 `json:"procedures"`
	Teeth           []int                    `json:"teeth"`
	Materials       []models.SessionMaterial `json:"materials"`
	DurationMinutes int                      `json:"durationMinutes"`
	FeeYER          int64                    `json:"feeYER"`
	Notes           string                   `json:"notes"`
	Attachments     []AttachmentInput        `json:"attachments"`
}

type UpdateSessionInput struct {
	Date            *time.Time                `json:"date"`
	Procedures      *[]string                 `json:"procedures"`
	Teeth           *[]int                    `json:"teeth"`
	Materials       *[]models.SessionMaterial `json:"materials"`
	DurationMinutes *int                      `json:"durationMinutes"`
	FeeYER          *int64                    `json:"feeYER"`
	Notes           *string                   `json:"notes"`
	Attachments     []AttachmentInput         `json:"attachments"`
}

type SessionService struct {
	repos     *repository.Bundle
	audit     *AuditService
	perms     *PermissionService
	inventory *InventoryService
	invoices  *InvoiceService
}

func NewSessionService(repos *repository.Bundle, audit *AuditService, perms *PermissionService, inventory *InventoryService, invoices *InvoiceService) *SessionService {
	return &SessionService{repos: repos, audit: audit, perms: perms, inventory: inventory, invoices: invoices}
}

func assertMaterials(materials []models.SessionMaterial) error {
	for _, material := range materials {
		if material.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

func (s *SessionService) persistAttachments(sessionID string, attachments []AttachmentInput) error {
	for _, attachment := range attachments {
		if _, err := s.repos.Attachments.Create(models.FileAttachment{
			OwnerType: "session",
			OwnerID:   sessionID,
			Name:      attachment.Name,
			MimeType:  attachment.MimeType,
			Size:      attachment.Size,
			DataURL:   attachment.DataURL,
		}); err != nil {
			return err
		}
	}
	return nil
}

// consumeMaterials draws every material from its batch. If any draw fails,
// the ones already applied are re-credited before the error is returned.
func (s *SessionService) consumeMaterials(ctx context.Context, materials []models.SessionMaterial) error {
	for i, material := range materials {
		if _, err := s.inventory.Consume(ctx, material.InventoryBatchID, material.Quantity); err != nil {
			for _, applied := range materials[:i] {
				_ = s.inventory.restock(applied.InventoryBatchID, applied.Quantity)
			}
			return err
		}
	}
	return nil
}

// Create persists the session, its attachments, and consumes the listed
// materials. A consumption failure deletes the session again instead of
// leaving an orphan.
func (s *SessionService) Create(ctx context.Context, input CreateSessionInput) (models.Session, error) {
	if err := s.perms.Assert(ctx, ActionSessionsManage); err != nil {
		return models.Session{}, err
	}
	if err := utils.AssertAmount(input.FeeYER); err != nil {
		return models.Session{}, err
	}
	if err := assertMaterials(input.Materials); err != nil {
		return models.Session{}, err
	}
	session, err := s.repos.Sessions.Create(models.Session{
		PatientID:       input.PatientID,
		DoctorID:        input.DoctorID,
		Date:            input.Date,
		Procedures:      input.Procedures,
		Teeth:           input.Teeth,
		Materials:       input.Materials,
		DurationMinutes: input.DurationMinutes,
		FeeYER:          input.FeeYER,
		Notes:           input.Notes,
	})
	if err != nil {
		return models.Session{}, err
	}
	if err := s.persistAttachments(session.ID, input.Attachments); err != nil {
		return models.Session{}, err
	}
	if err := s.consumeMaterials(ctx, input.Materials); err != nil {
		s.compensateCreate(session.ID)
		return models.Session{}, err
	}
	if _, err := s.audit.Log(ctx, "create", "session", session.ID, models.JSONMap{
		"patientId": session.PatientID,
		"feeYER":    session.FeeYER,
	}); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// compensateCreate removes the session row and its attachments after a
// failed material consumption.
func (s *SessionService) compensateCreate(sessionID string) {
	for _, attachment := range s.repos.Attachments.ListByOwner("session", sessionID) {
		_ = s.repos.Attachments.Delete(attachment.ID)
	}
	_ = s.repos.Sessions.Delete(sessionID)
}

func (s *SessionService) Update(ctx context.Context, id string, input UpdateSessionInput) (models.Session, error) {
	if err := s.perms.Assert(ctx, ActionSessionsManage); err != nil {
		return models.Session{}, err
	}
	if input.FeeYER != nil {
		if err := utils.AssertAmount(*input.FeeYER); err != nil {
			return models.Session{}, err
		}
	}
	if input.Materials != nil {
		if err := assertMaterials(*input.Materials); err != nil {
			return models.Session{}, err
		}
	}
	session, err := s.repos.Sessions.Update(id, func(sess *models.Session) {
		if input.Date != nil {
			sess.Date = *input.Date
		}
		if input.Procedures != nil {
			sess.Procedures = *input.Procedures
		}
		if input.Teeth != nil {
			sess.Teeth = *input.Teeth
		}
		if input.Materials != nil {
			sess.Materials = *input.Materials
		}
		if input.DurationMinutes != nil {
			sess.DurationMinutes = *input.DurationMinutes
		}
		if input.FeeYER != nil {
			sess.FeeYER = *input.FeeYER
		}
		if input.Notes != nil {
			sess.Notes = *input.Notes
		}
	})
	if err != nil {
		return models.Session{}, err
	}
	if len(input.Attachments) > 0 {
		if err := s.persistAttachments(id, input.Attachments); err != nil {
			return models.Session{}, err
		}
	}
	if _, err := s.audit.Log(ctx, "update", "session", id, models.JSONMap{}); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// LinkMaterials consumes additional materials for an existing session. The
// list is additive; it is not checked against previously linked materials.
func (s *SessionService) LinkMaterials(ctx context.Context, id string, materials []models.SessionMaterial) (models.Session, error) {
	if err := s.perms.Assert(ctx, ActionSessionsManage); err != nil {
		return models.Session{}, err
	}
	if err := assertMaterials(materials); err != nil {
		return models.Session{}, err
	}
	if _, err := s.repos.Sessions.FindByID(id); err != nil {
		return models.Session{}, err
	}
	if err := s.consumeMaterials(ctx, materials); err != nil {
		return models.Session{}, err
	}
	session, err := s.repos.Sessions.Update(id, func(sess *models.Session) {
		sess.Materials = append(sess.Materials, materials...)
	})
	if err != nil {
		return models.Session{}, err
	}
	if _, err := s.audit.Log(ctx, "link_materials", "session", id, models.JSONMap{
		"count": len(materials),
	}); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// GenerateInvoice delegates to the invoice service after confirming the
// session exists.
func (s *SessionService) GenerateInvoice(ctx context.Context, sessionID string) (models.Invoice, error) {
	if _, err := s.repos.Sessions.FindByID(sessionID); err != nil {
		return models.Invoice{}, err
	}
	return s.invoices.CreateFromSession(ctx, sessionID)
}

func (s *SessionService) ListByPatient(patientID string) []models.Session {
	return s.repos.Sessions.FindByPatient(patientID)
}
