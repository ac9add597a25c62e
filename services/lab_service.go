package services

import (
	"context"
	"time"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
	"dentalpro-backend/utils"
)

type CreateLabOrderInput struct {
	PatientID string     `json:"patientId" binding:"required"`
	DoctorID  string     `json:"doctorId" binding:"required"`
	Type      string     `json:"type" binding:"required"`
	SentDate  time.Time  `json:"sentDate" binding:"required"`
	DueDate   *time.Time `json:"dueDate"`
	LabName   string     `json:"labName"`
	CostYER   int64      `json:"costYER"`
	Notes     string     `json:"notes"`
}

type LabService struct {
	repos *repository.Bundle
	audit *AuditService
	perms *PermissionService
}

func NewLabService(repos *repository.Bundle, audit *AuditService, perms *PermissionService) *LabService {
	return &LabService{repos: repos, audit: audit, perms: perms}
}

func (s *LabService) CreateOrder(ctx context.Context, input CreateLabOrderInput) (models.LabOrder, error) {
	if err := s.perms.Assert(ctx, ActionLabManage); err != nil {
		return models.LabOrder{}, err
	}
	if err := utils.AssertAmount(input.CostYER); err != nil {
		return models.LabOrder{}, err
	}
	order, err := s.repos.LabOrders.Create(models.LabOrder{
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		Type:      input.Type,
		SentDate:  input.SentDate,
		DueDate:   input.DueDate,
		LabName:   input.LabName,
		CostYER:   input.CostYER,
		Status:    models.LabOrderSent,
		Notes:     input.Notes,
	})
	if err != nil {
		return models.LabOrder{}, err
	}
	if _, err := s.audit.Log(ctx, "create", "lab_order", order.ID, models.JSONMap{
		"type":    order.Type,
		"labName": order.LabName,
	}); err != nil {
		return models.LabOrder{}, err
	}
	return order, nil
}

func (s *LabService) UpdateStatus(ctx context.Context, id string, status models.LabOrderStatus, notes string) (models.LabOrder, error) {
	if err := s.perms.Assert(ctx, ActionLabManage); err != nil {
		return models.LabOrder{}, err
	}
	order, err := s.repos.LabOrders.Update(id, func(o *models.LabOrder) {
		o.Status = status
		if notes != "" {
			o.Notes = notes
		}
	})
	if err != nil {
		return models.LabOrder{}, err
	}
	if _, err := s.audit.Log(ctx, "update_status", "lab_order", id, models.JSONMap{
		"status": string(status),
	}); err != nil {
		return models.LabOrder{}, err
	}
	return order, nil
}

func (s *LabService) ListByPatient(patientID string) []models.LabOrder {
	return s.repos.LabOrders.FindByPatient(patientID)
}
