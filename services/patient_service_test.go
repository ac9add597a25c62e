package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentalpro-backend/repository"
)

func TestPatientCodeSequence(t *testing.T) {
	core := newTestCore()

	first := seedPatient(t, core)
	second := seedPatient(t, core)

	year := testNow.Year()
	assert.Equal(t, fmt.Sprintf("PT-%d-0001", year), first.Code)
	assert.Equal(t, fmt.Sprintf("PT-%d-0002", year), second.Code)
}

func TestPatientUpdatePartial(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)

	newPhone := "711000111"
	updated, err := core.Patients.Update(managerCtx(), patient.ID, UpdatePatientInput{Phone: &newPhone})
	require.NoError(t, err)

	assert.Equal(t, newPhone, updated.Phone)
	// Untouched fields survive.
	assert.Equal(t, patient.FullNameAr, updated.FullNameAr)
	assert.Equal(t, patient.Code, updated.Code)
}

func TestSetToothStatusUpserts(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)

	caries, err := core.Repos.ToothStatuses.Create(toothStatusFixture("caries"))
	require.NoError(t, err)
	filled, err := core.Repos.ToothStatuses.Create(toothStatusFixture("filled"))
	require.NoError(t, err)

	tooth, err := core.Patients.SetToothStatus(managerCtx(), patient.ID, 36, caries.ID, "deep cavity")
	require.NoError(t, err)
	assert.Equal(t, 36, tooth.ToothNumber)

	// Second write to the same tooth replaces the row instead of adding one.
	tooth, err = core.Patients.SetToothStatus(managerCtx(), patient.ID, 36, filled.ID, "restored")
	require.NoError(t, err)
	assert.Equal(t, filled.ID, tooth.StatusID)

	chart := core.Patients.GetToothMap(patient.ID)
	require.Len(t, chart, 1)
	assert.Equal(t, filled.ID, chart[0].StatusID)
}

func TestSetToothStatusUnknownStatus(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)

	_, err := core.Patients.SetToothStatus(managerCtx(), patient.ID, 36, "missing-status", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAttachFilesAuditsOnce(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)

	err := core.Patients.AttachFiles(managerCtx(), patient.ID, []AttachmentInput{
		{Name: "panorama.jpg"},
		{Name: "consent.pdf"},
	})
	require.NoError(t, err)

	assert.Len(t, core.Repos.Attachments.ListByOwner("patient", patient.ID), 2)

	var attachEntries int
	for _, entry := range core.Repos.AuditLogs.ListByEntity("patient", patient.ID) {
		if entry.Action == "attach" {
			attachEntries++
		}
	}
	assert.Equal(t, 1, attachEntries)
}

func TestAuditRecordsActorName(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)

	logs := core.Repos.AuditLogs.ListByEntity("patient", patient.ID)
	require.NotEmpty(t, logs)
	assert.Equal(t, "Huda", logs[0].User)
	assert.Equal(t, testNow, logs[0].Timestamp)
}
