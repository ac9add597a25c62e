package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dentalpro-backend/models"
	"dentalpro-backend/reqctx"
	"dentalpro-backend/repository"
)

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func newTestCore() *Core {
	repos := repository.NewBundle(repository.Options{Clock: testClock})
	return NewCore(repos, testClock)
}

func managerCtx() context.Context {
	return reqctx.WithActor(context.Background(), reqctx.Actor{
		UserID: "u-manager",
		Name:   "Huda",
		Role:   models.RoleManager,
	})
}

func secretaryCtx() context.Context {
	return reqctx.WithActor(context.Background(), reqctx.Actor{
		UserID: "u-secretary",
		Name:   "Samia",
		Role:   models.RoleSecretary,
	})
}

func toothStatusFixture(code string) models.ToothStatus {
	return models.ToothStatus{Code: code, LabelAr: code, LabelEn: code}
}

func seedDoctor(t *testing.T, core *Core, share int) models.Doctor {
	t.Helper()
	doctor, err := core.Repos.Doctors.Create(models.Doctor{
		Name:                "Dr. Ali",
		Active:              true,
		RevenueSharePercent: share,
	})
	require.NoError(t, err)
	return doctor
}

func seedPatient(t *testing.T, core *Core) models.Patient {
	t.Helper()
	patient, err := core.Patients.Create(managerCtx(), CreatePatientInput{
		FullNameAr: "أحمد صالح",
		Gender:     "male",
		Phone:      "777123456",
	})
	require.NoError(t, err)
	return patient
}

func seedBatch(t *testing.T, core *Core, quantity int) (models.InventoryItem, models.InventoryBatch) {
	t.Helper()
	item, err := core.Inventory.AddItem(managerCtx(), AddItemInput{Name: "Composite", Unit: "syringe"})
	require.NoError(t, err)
	batch, err := core.Inventory.AddBatch(managerCtx(), AddBatchInput{
		ItemID:     item.ID,
		BatchNo:    "B-100",
		ExpiryDate: testNow.AddDate(1, 0, 0),
		QuantityIn: quantity,
		CostYER:    50000,
	})
	require.NoError(t, err)
	return item, batch
}

func seedSession(t *testing.T, core *Core, patient models.Patient, doctor models.Doctor, fee int64, materials []models.SessionMaterial) models.Session {
	t.Helper()
	session, err := core.Sessions.Create(managerCtx(), CreateSessionInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      testNow,
		FeeYER:    fee,
		Materials: materials,
	})
	require.NoError(t, err)
	return session
}
