package services

import (
	"context"
	"time"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
)

type CreateAppointmentInput struct {
	PatientID string    `json:"patientId" binding:"required"`
	DoctorID  string    `json:"doctorId" binding:"required"`
	Start     time.Time `json:"start" binding:"required"`
	End       time.Time `json:"end" binding:"required"`
	Room      string    `json:"room"`
	Note      string    `json:"note"`
}

type UpdateAppointmentInput struct {
	Start  *time.Time                `json:"start"`
	End    *time.Time                `json:"end"`
	Room   *string                   `json:"room"`
	Status *models.AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no_show"`
	Note   *string                   `json:"note"`
}

type AppointmentService struct {
	repos *repository.Bundle
	audit *AuditService
	perms *PermissionService
}

func NewAppointmentService(repos *repository.Bundle, audit *AuditService, perms *PermissionService) *AppointmentService {
	return &AppointmentService{repos: repos, audit: audit, perms: perms}
}

func (s *AppointmentService) Create(ctx context.Context, input CreateAppointmentInput) (models.Appointment, error) {
	if err := s.perms.Assert(ctx, ActionPatientsManage); err != nil {
		return models.Appointment{}, err
	}
	if input.End.Before(input.Start) {
		return models.Appointment{}, ErrInvalidState
	}
	if _, err := s.repos.Patients.FindByID(input.PatientID); err != nil {
		return models.Appointment{}, err
	}
	appointment, err := s.repos.Appointments.Create(models.Appointment{
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		Start:     input.Start,
		End:       input.End,
		Room:      input.Room,
		Status:    models.AppointmentScheduled,
		Note:      input.Note,
	})
	if err != nil {
		return models.Appointment{}, err
	}
	if _, err := s.audit.Log(ctx, "create", "appointment", appointment.ID, models.JSONMap{
		"patientId": appointment.PatientID,
		"start":     appointment.Start,
	}); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (s *AppointmentService) Update(ctx context.Context, id string, input UpdateAppointmentInput) (models.Appointment, error) {
	if err := s.perms.Assert(ctx, ActionPatientsManage); err != nil {
		return models.Appointment{}, err
	}
	appointment, err := s.repos.Appointments.Update(id, func(a *models.Appointment) {
		if input.Start != nil {
			a.Start = *input.Start
		}
		if input.End != nil {
			a.End = *input.End
		}
		if input.Room != nil {
			a.Room = *input.Room
		}
		if input.Status != nil {
			a.Status = *input.Status
		}
		if input.Note != nil {
			a.Note = *input.Note
		}
	})
	if err != nil {
		return models.Appointment{}, err
	}
	if _, err := s.audit.Log(ctx, "update", "appointment", id, models.JSONMap{}); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (s *AppointmentService) FindByDateRange(start, end time.Time) []models.Appointment {
	return s.repos.Appointments.FindByDateRange(start, end)
}
