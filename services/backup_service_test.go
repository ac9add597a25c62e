package services

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRoundTripPlain(t *testing.T) {
	source := newTestCore()
	patient := seedPatient(t, source)
	doctor := seedDoctor(t, source, 50)
	seedSession(t, source, patient, doctor, 10000, nil)

	envelope, err := source.Backup.ExportJSON(managerCtx(), "")
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, envelope.SchemaVersion)
	assert.False(t, envelope.Encrypted)
	assert.Empty(t, envelope.IV)

	target := newTestCore()
	require.NoError(t, target.Backup.ImportJSON(managerCtx(), envelope, ""))

	restored, err := target.Repos.Patients.FindByID(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.Code, restored.Code)
	assert.Equal(t, 1, target.Repos.Sessions.Count())
	assert.Equal(t, 1, target.Repos.Doctors.Count())
}

func TestBackupRoundTripEncrypted(t *testing.T) {
	source := newTestCore()
	seedPatient(t, source)

	envelope, err := source.Backup.ExportJSON(managerCtx(), "hunter2-clinic")
	require.NoError(t, err)
	assert.True(t, envelope.Encrypted)
	assert.NotEmpty(t, envelope.IV)
	assert.NotEmpty(t, envelope.Salt)
	assert.NotEmpty(t, envelope.Tag)

	target := newTestCore()
	require.NoError(t, target.Backup.ImportJSON(managerCtx(), envelope, "hunter2-clinic"))
	assert.Equal(t, 1, target.Repos.Patients.Count())
}

func TestBackupImportWrongPassword(t *testing.T) {
	source := newTestCore()
	seedPatient(t, source)

	envelope, err := source.Backup.ExportJSON(managerCtx(), "correct")
	require.NoError(t, err)

	target := newTestCore()
	err = target.Backup.ImportJSON(managerCtx(), envelope, "wrong")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Equal(t, 0, target.Repos.Patients.Count())
}

func TestBackupImportMissingPassword(t *testing.T) {
	source := newTestCore()
	envelope, err := source.Backup.ExportJSON(managerCtx(), "secret")
	require.NoError(t, err)

	err = newTestCore().Backup.ImportJSON(managerCtx(), envelope, "")
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestBackupImportSchemaMismatch(t *testing.T) {
	legacyPayload, err := json.Marshal(map[string]interface{}{
		"schemaVersion": "2021-01-01",
		"data":          map[string]interface{}{},
	})
	require.NoError(t, err)

	legacy := BackupEnvelope{
		SchemaVersion: "2021-01-01",
		Encrypted:     false,
		Data:          base64.StdEncoding.EncodeToString(legacyPayload),
	}
	err = newTestCore().Backup.ImportJSON(managerCtx(), legacy, "")
	assert.ErrorIs(t, err, ErrSchemaVersionMismatch)
}

func TestBackupPermissions(t *testing.T) {
	core := newTestCore()

	_, err := core.Backup.ExportJSON(secretaryCtx(), "")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = core.Backup.ImportJSON(secretaryCtx(), BackupEnvelope{}, "")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestBackupImportReplacesExistingData(t *testing.T) {
	source := newTestCore()
	patient := seedPatient(t, source)
	envelope, err := source.Backup.ExportJSON(managerCtx(), "")
	require.NoError(t, err)

	target := newTestCore()
	stale := seedPatient(t, target)
	seedDoctor(t, target, 50)

	require.NoError(t, target.Backup.ImportJSON(managerCtx(), envelope, ""))

	assert.Equal(t, 1, target.Repos.Patients.Count())
	assert.Equal(t, 0, target.Repos.Doctors.Count())
	_, err = target.Repos.Patients.FindByID(stale.ID)
	assert.Error(t, err)
	_, err = target.Repos.Patients.FindByID(patient.ID)
	assert.NoError(t, err)
}
