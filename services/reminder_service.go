// services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
	"dentalpro-backend/utils"
)

type ReminderService struct {
	repos     *repository.Bundle
	inventory *InventoryService
	backup    *BackupService
	db        *gorm.DB
	client    *twilio.RestClient
}

func NewReminderService(repos *repository.Bundle, inventory *InventoryService, backup *BackupService, db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		repos:     repos,
		inventory: inventory,
		backup:    backup,
		db:        db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Appointment and expiry reminders every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendAppointmentReminders)
	c.AddFunc("0 9 * * *", s.LogExpiryAlerts)

	// Snapshot the working set to SQLite every hour
	c.AddFunc("@hourly", s.Snapshot)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendAppointmentReminders texts every patient with a scheduled
// appointment tomorrow.
func (s *ReminderService) SendAppointmentReminders() {
	log.Println("Starting appointment reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	dayAfter := tomorrow.AddDate(0, 0, 1)

	for _, appointment := range s.repos.Appointments.FindByDateRange(tomorrow, dayAfter) {
		if appointment.Status != models.AppointmentScheduled {
			continue
		}
		patient, err := s.repos.Patients.FindByID(appointment.PatientID)
		if err != nil || patient.Phone == "" {
			continue
		}
		message := fmt.Sprintf("تذكير بموعدك غدا الساعة %s", appointment.Start.Format("15:04"))
		s.sendSMS(patient.Phone, message)
	}

	log.Println("Appointment reminder processing completed")
}

// LogExpiryAlerts reports batches expiring within three months.
func (s *ReminderService) LogExpiryAlerts() {
	for _, alert := range s.inventory.SoonToExpire(context.Background(), 3) {
		log.Printf("[EXPIRY] %s batch %s expires in %d days",
			alert.ItemName, alert.BatchID, alert.DaysRemaining)
	}
}

// Snapshot persists the working set to SQLite.
func (s *ReminderService) Snapshot() {
	if s.db == nil {
		return
	}
	if err := s.backup.SnapshotSQLite(s.db); err != nil {
		log.Printf("Failed to snapshot database: %v", err)
		return
	}
	log.Println("Database snapshot completed")
}

func (s *ReminderService) sendSMS(phone, message string) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetBody(message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send message to %s: %v", phone, err)
	} else if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", phone, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", phone)
	}
}
