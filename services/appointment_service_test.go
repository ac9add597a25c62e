package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentalpro-backend/models"
	"dentalpro-backend/repository"
)

func TestCreateAppointment(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)
	doctor := seedDoctor(t, core, 50)

	start := testNow.Add(24 * time.Hour)
	appointment, err := core.Appointments.Create(managerCtx(), CreateAppointmentInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Start:     start,
		End:       start.Add(30 * time.Minute),
		Room:      "A",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentScheduled, appointment.Status)
}

func TestCreateAppointmentValidation(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)
	doctor := seedDoctor(t, core, 50)

	_, err := core.Appointments.Create(managerCtx(), CreateAppointmentInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Start:     testNow.Add(2 * time.Hour),
		End:       testNow.Add(1 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = core.Appointments.Create(managerCtx(), CreateAppointmentInput{
		PatientID: "missing",
		DoctorID:  doctor.ID,
		Start:     testNow,
		End:       testNow.Add(time.Hour),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAppointmentDateRange(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)
	doctor := seedDoctor(t, core, 50)

	for _, offset := range []int{1, 3, 20} {
		start := testNow.AddDate(0, 0, offset)
		_, err := core.Appointments.Create(managerCtx(), CreateAppointmentInput{
			PatientID: patient.ID, DoctorID: doctor.ID,
			Start: start, End: start.Add(time.Hour),
		})
		require.NoError(t, err)
	}

	week := core.Appointments.FindByDateRange(testNow, testNow.AddDate(0, 0, 7))
	assert.Len(t, week, 2)
}
