package services

import (
	"context"
	"fmt"
	"time"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
)

type CreatePatientInput struct {
	FullNameAr   string     `json:"fullNameAr" binding:"required"`
	FullNameEn   string     `json:"fullNameEn"`
	Gender       string     `json:"gender" binding:"required,oneof=male female"`
	DOB          *time.Time `json:"dob"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	NotesMedical string     `json:"notesMedical"`
	DoctorID     string     `json:"doctorId"`
}

type UpdatePatientInput struct {
	FullNameAr   *string    `json:"fullNameAr"`
	FullNameEn   *string    `json:"fullNameEn"`
	Gender       *string    `json:"gender" binding:"omitempty,oneof=male female"`
	DOB          *time.Time `json:"dob"`
	Phone        *string    `json:"phone"`
	Address      *string    `json:"address"`
	NotesMedical *string    `json:"notesMedical"`
	DoctorID     *string    `json:"doctorId"`
}

type PatientService struct {
	repos *repository.Bundle
	audit *AuditService
	perms *PermissionService
	clock func() time.Time
}

func NewPatientService(repos *repository.Bundle, audit *AuditService, perms *PermissionService, clock func() time.Time) *PatientService {
	if clock == nil {
		clock = time.Now
	}
	return &PatientService{repos: repos, audit: audit, perms: perms, clock: clock}
}

// nextPatientCode assigns PT-<year>-<seq>, sequential over the current
// collection size. Codes are immutable after creation.
func (s *PatientService) nextPatientCode() string {
	return fmt.Sprintf("PT-%d-%04d", s.clock().Year(), s.repos.Patients.Count()+1)
}

func (s *PatientService) Create(ctx context.Context, input CreatePatientInput) (models.Patient, error) {
	if err := s.perms.Assert(ctx, ActionPatientsManage); err != nil {
		return models.Patient{}, err
	}
	patient, err := s.repos.Patients.Create(models.Patient{
		Code:         s.nextPatientCode(),
		FullNameAr:   input.FullNameAr,
		FullNameEn:   input.FullNameEn,
		Gender:       input.Gender,
		DOB:          input.DOB,
		Phone:        input.Phone,
		Address:      input.Address,
		NotesMedical: input.NotesMedical,
		DoctorID:     input.DoctorID,
	})
	if err != nil {
		return models.Patient{}, err
	}
	if _, err := s.audit.Log(ctx, "create", "patient", patient.ID, models.JSONMap{
		"code": patient.Code,
		"name": patient.FullNameAr,
	}); err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

func (s *PatientService) Update(ctx context.Context, id string, input UpdatePatientInput) (models.Patient, error) {
	if err := s.perms.Assert(ctx, ActionPatientsManage); err != nil {
		return models.Patient{}, err
	}
	patient, err := s.repos.Patients.Update(id, func(p *models.Patient) {
		if input.FullNameAr != nil {
			p.FullNameAr = *input.FullNameAr
		}
		if input.FullNameEn != nil {
			p.FullNameEn = *input.FullNameEn
		}
		if input.Gender != nil {
			p.Gender = *input.Gender
		}
		if input.DOB != nil {
			p.DOB = input.DOB
		}
		if input.Phone != nil {
			p.Phone = *input.Phone
		}
		if input.Address != nil {
			p.Address = *input.Address
		}
		if input.NotesMedical != nil {
			p.NotesMedical = *input.NotesMedical
		}
		if input.DoctorID != nil {
			p.DoctorID = *input.DoctorID
		}
	})
	if err != nil {
		return models.Patient{}, err
	}
	if _, err := s.audit.Log(ctx, "update", "patient", id, models.JSONMap{}); err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

func (s *PatientService) Search(term string) []models.Patient {
	return s.repos.Patients.Search(term)
}

// AttachFiles stores uploaded files against the patient; one audit entry
// covers the whole upload.
func (s *PatientService) AttachFiles(ctx context.Context, patientID string, files []AttachmentInput) error {
	if err := s.perms.Assert(ctx, ActionPatientsFiles); err != nil {
		return err
	}
	if _, err := s.repos.Patients.FindByID(patientID); err != nil {
		return err
	}
	names := make([]interface{}, 0, len(files))
	for _, file := range files {
		if _, err := s.repos.Attachments.Create(models.FileAttachment{
			OwnerType: "patient",
			OwnerID:   patientID,
			Name:      file.Name,
			MimeType:  file.MimeType,
			Size:      file.Size,
			DataURL:   file.DataURL,
		}); err != nil {
			return err
		}
		names = append(names, file.Name)
	}
	_, err := s.audit.Log(ctx, "attach", "patient", patientID, models.JSONMap{"files": names})
	return err
}

func (s *PatientService) GetToothMap(patientID string) []models.PatientTooth {
	return s.repos.PatientTeeth.FindByPatient(patientID)
}

// SetToothStatus upserts the status of one tooth: at most one row exists
// per (patient, tooth number).
func (s *PatientService) SetToothStatus(ctx context.Context, patientID string, toothNumber int, statusID, notes string) (models.PatientTooth, error) {
	if err := s.perms.Assert(ctx, ActionPatientsManage); err != nil {
		return models.PatientTooth{}, err
	}
	if _, err := s.repos.ToothStatuses.FindByID(statusID); err != nil {
		return models.PatientTooth{}, err
	}
	var tooth models.PatientTooth
	existing, err := s.repos.PatientTeeth.FindByPatientAndTooth(patientID, toothNumber)
	switch {
	case err == nil:
		tooth, err = s.repos.PatientTeeth.Update(existing.ID, func(t *models.PatientTooth) {
			t.StatusID = statusID
			t.Notes = notes
		})
		if err != nil {
			return models.PatientTooth{}, err
		}
	default:
		tooth, err = s.repos.PatientTeeth.Create(models.PatientTooth{
			PatientID:   patientID,
			ToothNumber: toothNumber,
			StatusID:    statusID,
			Notes:       notes,
		})
		if err != nil {
			return models.PatientTooth{}, err
		}
	}
	if _, err := s.audit.Log(ctx, "set_tooth_status", "patient", patientID, models.JSONMap{
		"toothNumber": toothNumber,
		"statusId":    statusID,
	}); err != nil {
		return models.PatientTooth{}, err
	}
	return tooth, nil
}
