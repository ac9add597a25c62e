package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentalpro-backend/models"
)

func TestLabOrderLifecycle(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)
	doctor := seedDoctor(t, core, 50)

	order, err := core.Lab.CreateOrder(managerCtx(), CreateLabOrderInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Type:      "crown",
		SentDate:  testNow,
		LabName:   "Sana'a Dental Lab",
		CostYER:   30000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LabOrderSent, order.Status)

	updated, err := core.Lab.UpdateStatus(managerCtx(), order.ID, models.LabOrderReceived, "arrived intact")
	require.NoError(t, err)
	assert.Equal(t, models.LabOrderReceived, updated.Status)
	assert.Equal(t, "arrived intact", updated.Notes)

	orders := core.Lab.ListByPatient(patient.ID)
	assert.Len(t, orders, 1)
}

func TestLabOrderRejectsNegativeCost(t *testing.T) {
	core := newTestCore()

	_, err := core.Lab.CreateOrder(managerCtx(), CreateLabOrderInput{
		PatientID: "p", DoctorID: "d", Type: "bridge", SentDate: testNow, CostYER: -1,
	})
	assert.Error(t, err)
}
