package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentalpro-backend/models"
)

func TestCreateSessionConsumesMaterials(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)
	doctor := seedDoctor(t, core, 50)
	_, batch := seedBatch(t, core, 10)

	session := seedSession(t, core, patient, doctor, 15000, []models.SessionMaterial{
		{InventoryBatchID: batch.ID, Quantity: 1},
	})

	stored, err := core.Repos.InventoryBatches.FindByID(batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, stored.Remaining())
	require.Len(t, session.Materials, 1)
}

// A failed consumption must not leave an orphaned session, its attachments,
// or a partial stock draw behind.
func TestCreateSessionCompensatesOnStockFailure(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)
	doctor := seedDoctor(t, core, 50)
	_, okBatch := seedBatch(t, core, 10)
	item, err := core.Inventory.AddItem(managerCtx(), AddItemInput{Name: "Anesthetic"})
	require.NoError(t, err)
	lowBatch, err := core.Inventory.AddBatch(managerCtx(), AddBatchInput{
		ItemID: item.ID, BatchNo: "LOW", ExpiryDate: testNow.AddDate(1, 0, 0), QuantityIn: 1,
	})
	require.NoError(t, err)

	_, err = core.Sessions.Create(managerCtx(), CreateSessionInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      testNow,
		FeeYER:    15000,
		Materials: []models.SessionMaterial{
			{InventoryBatchID: okBatch.ID, Quantity: 2},
			{InventoryBatchID: lowBatch.ID, Quantity: 5},
		},
		Attachments: []AttachmentInput{{Name: "xray.png"}},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 0, core.Repos.Sessions.Count())
	assert.Equal(t, 0, core.Repos.Attachments.Count())

	restocked, err := core.Repos.InventoryBatches.FindByID(okBatch.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, restocked.Remaining())
}

func TestCreateSessionRejectsBadInput(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)
	doctor := seedDoctor(t, core, 50)

	_, err := core.Sessions.Create(managerCtx(), CreateSessionInput{
		PatientID: patient.ID, DoctorID: doctor.ID, Date: testNow, FeeYER: -500,
	})
	assert.Error(t, err)

	_, err = core.Sessions.Create(managerCtx(), CreateSessionInput{
		PatientID: patient.ID, DoctorID: doctor.ID, Date: testNow, FeeYER: 1000,
		Materials: []models.SessionMaterial{{InventoryBatchID: "b", Quantity: 0}},
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestLinkMaterialsIsAdditive(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)
	doctor := seedDoctor(t, core, 50)
	_, batch := seedBatch(t, core, 10)
	session := seedSession(t, core, patient, doctor, 15000, []models.SessionMaterial{
		{InventoryBatchID: batch.ID, Quantity: 1},
	})

	updated, err := core.Sessions.LinkMaterials(managerCtx(), session.ID, []models.SessionMaterial{
		{InventoryBatchID: batch.ID, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Len(t, updated.Materials, 2)

	stored, err := core.Repos.InventoryBatches.FindByID(batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.Remaining())
}

func TestGenerateInvoiceFromSession(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)
	doctor := seedDoctor(t, core, 50)
	session := seedSession(t, core, patient, doctor, 20000, nil)

	invoice, err := core.Sessions.GenerateInvoice(managerCtx(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, invoice.LinkedSessionID)
	assert.Equal(t, int64(20000), invoice.TotalYER)
}

func TestSessionAttachmentsPersisted(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)
	doctor := seedDoctor(t, core, 50)

	session, err := core.Sessions.Create(managerCtx(), CreateSessionInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      testNow,
		FeeYER:    5000,
		Attachments: []AttachmentInput{
			{Name: "before.jpg", MimeType: "image/jpeg", Size: 1024},
			{Name: "after.jpg", MimeType: "image/jpeg", Size: 2048},
		},
	})
	require.NoError(t, err)

	files := core.Repos.Attachments.ListByOwner("session", session.ID)
	assert.Len(t, files, 2)
}
