package productControllers

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Waleedkhan5609/Online-Shopping-cart/store"
)

func newTestStore(t *testing.T) (*store.Store, string, string) {
	t.Helper()
	dir := t.TempDir()
	productFile := filepath.Join(dir, "product_data.txt")
	accountFile := filepath.Join(dir, "User_data.txt")
	return store.New(productFile, accountFile, zap.NewNop()), productFile, accountFile
}

func phoneRequest() AddProductRequest {
	return AddProductRequest{
		ID:          1,
		Name:        "Phone",
		Price:       decimal.RequireFromString("100"),
		Description: "desc",
	}
}

func TestAddProduct(t *testing.T) {
	s, _, _ := newTestStore(t)

	product, err := Add(s, phoneRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, "Phone", product.Name)

	listed := List(s)
	require.Len(t, listed, 1)
	assert.Equal(t, product, listed[0])
}

func TestAddProductDuplicateID(t *testing.T) {
	s, _, _ := newTestStore(t)
	_, err := Add(s, phoneRequest())
	require.NoError(t, err)

	req := phoneRequest()
	req.Name = "Other"
	_, err = Add(s, req)
	assert.ErrorIs(t, err, store.ErrDuplicateProduct)
	assert.Len(t, List(s), 1)
}

func TestAddProductNegativePrice(t *testing.T) {
	s, _, _ := newTestStore(t)
	req := phoneRequest()
	req.Price = decimal.RequireFromString("-5")

	_, err := Add(s, req)
	assert.ErrorIs(t, err, ErrNegativePrice)
	assert.Empty(t, List(s))
}

func TestRemoveProduct(t *testing.T) {
	s, productFile, accountFile := newTestStore(t)
	_, err := Add(s, phoneRequest())
	require.NoError(t, err)

	require.NoError(t, Remove(s, 1))
	assert.Empty(t, List(s))

	assert.ErrorIs(t, Remove(s, 1), store.ErrNotFound)

	// Removal must reach the products file.
	reloaded := store.New(productFile, accountFile, zap.NewNop())
	reloaded.Load()
	assert.Empty(t, List(reloaded))
}

func TestAddProductPersists(t *testing.T) {
	s, productFile, accountFile := newTestStore(t)
	req := phoneRequest()
	req.Price = decimal.RequireFromString("99.99")
	_, err := Add(s, req)
	require.NoError(t, err)

	reloaded := store.New(productFile, accountFile, zap.NewNop())
	reloaded.Load()

	listed := List(reloaded)
	require.Len(t, listed, 1)
	assert.Equal(t, "99.99", listed[0].Price.String())
}
