package orderControllers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Waleedkhan5609/Online-Shopping-cart/models"
	"github.com/Waleedkhan5609/Online-Shopping-cart/store"
)

func newTestStore(t *testing.T) (*store.Store, string, string) {
	t.Helper()
	dir := t.TempDir()
	productFile := filepath.Join(dir, "product_data.txt")
	accountFile := filepath.Join(dir, "User_data.txt")
	s := store.New(productFile, accountFile, zap.NewNop())
	require.NoError(t, s.AddProduct(&models.Product{
		ID: 1, Name: "Phone", Price: decimal.RequireFromString("100"), Description: "desc",
	}))
	require.NoError(t, s.AddProduct(&models.Product{
		ID: 2, Name: "Case", Price: decimal.RequireFromString("10"), Description: "desc",
	}))
	return s, productFile, accountFile
}

func newTestCustomer(t *testing.T, s *store.Store) *models.Customer {
	t.Helper()
	customer := models.NewCustomer(models.Profile{
		Username: "ann", Password: "pw", FirstName: "A", LastName: "B", Address: "addr",
	})
	require.NoError(t, s.AddAccount(customer))
	return customer
}

func TestCheckoutEmptyCart(t *testing.T) {
	s, _, _ := newTestStore(t)
	customer := newTestCustomer(t, s)

	_, err := Checkout(s, customer)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, customer.History)
	assert.True(t, customer.Cart.IsEmpty())
}

func TestCheckoutMovesCartToHistory(t *testing.T) {
	s, _, _ := newTestStore(t)
	customer := newTestCustomer(t, s)

	phone, err := s.Product(1)
	require.NoError(t, err)
	cover, err := s.Product(2)
	require.NoError(t, err)
	require.NoError(t, customer.Cart.Add(phone, 2))
	require.NoError(t, customer.Cart.Add(cover, 3))

	wantTotal := customer.Cart.Total()
	record, err := Checkout(s, customer)
	require.NoError(t, err)

	assert.True(t, record.Total.Equal(wantTotal))
	assert.Equal(t, "230", record.Total.String())
	assert.True(t, customer.Cart.IsEmpty())

	require.Len(t, customer.History, 1)
	assert.Equal(t, record.Date, customer.History[0].Date)

	_, err = time.Parse(models.PurchaseDateLayout, record.Date)
	assert.NoError(t, err, "date must use the purchase timestamp layout")

	require.Len(t, record.Items, 2)
	assert.Equal(t, "Phone", record.Items[0].Name)
	assert.Equal(t, 2, record.Items[0].Quantity)
	assert.Equal(t, "Case", record.Items[1].Name)
	assert.Equal(t, 3, record.Items[1].Quantity)
}

func TestCheckoutSnapshotIsIndependent(t *testing.T) {
	s, _, _ := newTestStore(t)
	customer := newTestCustomer(t, s)

	phone, err := s.Product(1)
	require.NoError(t, err)
	require.NoError(t, customer.Cart.Add(phone, 1))

	record, err := Checkout(s, customer)
	require.NoError(t, err)

	// Later cart activity and catalog edits must not reach the record.
	require.NoError(t, customer.Cart.Add(phone, 7))
	phone.Name = "Renamed"
	phone.Price = decimal.NewFromInt(1)

	assert.Equal(t, "Phone", record.Items[0].Name)
	assert.Equal(t, "100", record.Items[0].UnitPrice.String())
	assert.Equal(t, "100", record.Total.String())
	require.Len(t, customer.History, 1)
	assert.Len(t, customer.History[0].Items, 1)
}

func TestCheckoutPersistsHistory(t *testing.T) {
	s, productFile, accountFile := newTestStore(t)
	customer := newTestCustomer(t, s)

	phone, err := s.Product(1)
	require.NoError(t, err)
	require.NoError(t, customer.Cart.Add(phone, 2))

	_, err = Checkout(s, customer)
	require.NoError(t, err)

	reloaded := store.New(productFile, accountFile, zap.NewNop())
	reloaded.Load()
	ann, err := reloaded.Account("ann")
	require.NoError(t, err)

	assert.True(t, ann.Cart.IsEmpty())
	require.Len(t, ann.History, 1)
	assert.Equal(t, "200", ann.History[0].Total.String())
}

func TestHistoryReadOnly(t *testing.T) {
	s, _, _ := newTestStore(t)
	customer := newTestCustomer(t, s)

	assert.Empty(t, History(customer))

	phone, err := s.Product(1)
	require.NoError(t, err)
	require.NoError(t, customer.Cart.Add(phone, 1))
	_, err = Checkout(s, customer)
	require.NoError(t, err)

	assert.Len(t, History(customer), 1)
}
