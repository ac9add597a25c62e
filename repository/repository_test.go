package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentalpro-backend/models"
)

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestCollection[T Entity[T]]() *Collection[T] {
	var seq int
	return NewCollection[T](Options{
		Clock: func() time.Time { return testNow },
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	})
}

func TestCollectionCreate(t *testing.T) {
	c := newTestCollection[models.Patient]()

	created, err := c.Create(models.Patient{
		Base:       models.Base{ID: "caller-set-id"},
		FullNameAr: "أحمد",
	})
	require.NoError(t, err)

	// Caller metadata is discarded.
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.Equal(t, testNow, created.UpdatedAt)
	assert.Equal(t, "أحمد", created.FullNameAr)
}

func TestCollectionUpdatePreservesMeta(t *testing.T) {
	c := newTestCollection[models.Patient]()

	created, err := c.Create(models.Patient{FullNameAr: "أحمد"})
	require.NoError(t, err)

	updated, err := c.Update(created.ID, func(p *models.Patient) {
		p.FullNameAr = "محمد"
		p.ID = "tampered"
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "محمد", updated.FullNameAr)
}

func TestCollectionNotFound(t *testing.T) {
	c := newTestCollection[models.Patient]()

	_, err := c.FindByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Update("missing", func(*models.Patient) {})
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent id is a no-op.
	assert.NoError(t, c.Delete("missing"))
}

func TestCollectionReturnsCopies(t *testing.T) {
	c := newTestCollection[models.Session]()

	created, err := c.Create(models.Session{
		PatientID:  "p1",
		Procedures: models.StringList{"filling"},
	})
	require.NoError(t, err)

	created.Procedures[0] = "mutated"

	stored, err := c.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"filling"}, stored.Procedures)
}

func TestCollectionUpdateIsAtomic(t *testing.T) {
	c := newTestCollection[models.InventoryBatch]()

	batch, err := c.Create(models.InventoryBatch{ItemID: "i1", QuantityIn: 1000})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Update(batch.ID, func(b *models.InventoryBatch) {
				b.QuantityOut++
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := c.FindByID(batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.QuantityOut)
}

func TestCollectionLoadReplacesEverything(t *testing.T) {
	c := newTestCollection[models.Doctor]()

	_, err := c.Create(models.Doctor{Name: "stale"})
	require.NoError(t, err)

	restored := []models.Doctor{
		{Base: models.Base{ID: "restored-1", CreatedAt: testNow, UpdatedAt: testNow}, Name: "Dr. Ali"},
		{Base: models.Base{ID: "restored-2", CreatedAt: testNow, UpdatedAt: testNow}, Name: "Dr. Huda"},
	}
	require.NoError(t, c.Load(restored))

	assert.Equal(t, 2, c.Count())

	doctor, err := c.FindByID("restored-1")
	require.NoError(t, err)
	// Load keeps the metadata the records carry.
	assert.Equal(t, "Dr. Ali", doctor.Name)
	assert.Equal(t, testNow, doctor.CreatedAt)
}

func TestPatientSearch(t *testing.T) {
	bundle := NewBundle(Options{})

	_, err := bundle.Patients.Create(models.Patient{Code: "PT-2024-0001", FullNameAr: "أحمد صالح", Phone: "777123456"})
	require.NoError(t, err)
	_, err = bundle.Patients.Create(models.Patient{Code: "PT-2024-0002", FullNameAr: "فاطمة علي", FullNameEn: "Fatima Ali", Phone: "711999888"})
	require.NoError(t, err)

	assert.Len(t, bundle.Patients.Search("أحمد"), 1)
	assert.Len(t, bundle.Patients.Search("fatima"), 1)
	assert.Len(t, bundle.Patients.Search("777"), 1)
	assert.Len(t, bundle.Patients.Search("pt-2024"), 2)
	assert.Len(t, bundle.Patients.Search(""), 2)
	assert.Empty(t, bundle.Patients.Search("nobody"))
}

func TestInvoiceFindBySessionSkipsVoid(t *testing.T) {
	bundle := NewBundle(Options{})

	voided, err := bundle.Invoices.Create(models.Invoice{LinkedSessionID: "s1", Status: models.InvoiceVoid})
	require.NoError(t, err)

	_, err = bundle.Invoices.FindBySession("s1")
	assert.ErrorIs(t, err, ErrNotFound)

	active, err := bundle.Invoices.Create(models.Invoice{LinkedSessionID: "s1", Status: models.InvoiceDraft})
	require.NoError(t, err)

	found, err := bundle.Invoices.FindBySession("s1")
	require.NoError(t, err)
	assert.Equal(t, active.ID, found.ID)
	assert.NotEqual(t, voided.ID, found.ID)
}
