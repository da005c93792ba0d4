package services

import (
	"testing"

	"bizops-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.PurchaseOrder{},
		&models.Invoice{},
		&models.Payment{},
		&models.Agreement{},
	))
	return db
}

func TestResolveCustomer(t *testing.T) {
	db := setupTestDB(t)

	customer := models.Customer{Name: "Acme Corp"}
	require.NoError(t, db.Create(&customer).Error)

	t.Run("resolves existing customer", func(t *testing.T) {
		found, err := ResolveCustomer(db, customer.ID.String())
		require.NoError(t, err)
		assert.Equal(t, customer.ID, found.ID)
		assert.Equal(t, "Acme Corp", found.Name)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := ResolveCustomer(db, "not-a-uuid")
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("missing customer", func(t *testing.T) {
		_, err := ResolveCustomer(db, uuid.NewString())
		assert.ErrorIs(t, err, ErrReferenceMissing)
	})
}

func TestResolvePurchaseOrder(t *testing.T) {
	db := setupTestDB(t)

	customer := models.Customer{Name: "Acme Corp"}
	require.NoError(t, db.Create(&customer).Error)
	po := models.PurchaseOrder{PONumber: "PO-1", CustomerID: customer.ID, Amount: 1000, Status: models.POStatusActive}
	require.NoError(t, db.Create(&po).Error)

	found, err := ResolvePurchaseOrder(db, po.ID.String())
	require.NoError(t, err)
	assert.Equal(t, po.ID, found.ID)

	_, err = ResolvePurchaseOrder(db, "garbage")
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = ResolvePurchaseOrder(db, uuid.NewString())
	assert.ErrorIs(t, err, ErrReferenceMissing)
}

func TestResolveInvoice(t *testing.T) {
	db := setupTestDB(t)

	customer := models.Customer{Name: "Acme Corp"}
	require.NoError(t, db.Create(&customer).Error)
	po := models.PurchaseOrder{PONumber: "PO-1", CustomerID: customer.ID, Amount: 1000, Status: models.POStatusActive}
	require.NoError(t, db.Create(&po).Error)
	invoice := models.Invoice{InvoiceNumber: "INV-1", POID: po.ID, CustomerID: customer.ID, Amount: 500}
	require.NoError(t, db.Create(&invoice).Error)

	found, err := ResolveInvoice(db, invoice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, invoice.ID, found.ID)

	_, err = ResolveInvoice(db, "")
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = ResolveInvoice(db, uuid.NewString())
	assert.ErrorIs(t, err, ErrReferenceMissing)
}
