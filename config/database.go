package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dentalpro-backend/models"
)

var DB *gorm.DB

// ConnectDB opens the SQLite snapshot database and migrates the schema.
// The in-memory working set is restored from it at startup.
func ConnectDB() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "dentalpro.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	if err := db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.ToothStatus{},
		&models.PatientTooth{},
		&models.Appointment{},
		&models.Session{},
		&models.Invoice{},
		&models.Receipt{},
		&models.PaymentVoucher{},
		&models.Supplier{},
		&models.InventoryItem{},
		&models.InventoryBatch{},
		&models.LabOrder{},
		&models.LedgerEntry{},
		&models.AuditLog{},
		&models.FileAttachment{},
		&models.User{},
	); err != nil {
		panic("Failed to migrate database schema")
	}

	DB = db
}
