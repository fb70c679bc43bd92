package infrastructure

import (
	"context"
	"testing"

	"github.com/ordersaga/choreography/product-validation-service/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProductRepository_ExistsByCode(t *testing.T) {
	repo := NewMemoryProductRepository(domain.Catalog...)

	tests := []struct {
		code     string
		expected bool
	}{
		{code: "COMIC_BOOKS", expected: true},
		{code: "MUSIC", expected: true},
		{code: "music", expected: false},
		{code: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			exists, err := repo.ExistsByCode(context.Background(), tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestMemoryValidationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryValidationRepository()

	_, err := repo.FindByOrderIDAndTransactionID(ctx, "order-1", "tx-1")
	assert.ErrorIs(t, err, domain.ErrValidationNotFound)

	validation := domain.NewValidation("order-1", "tx-1", true)
	require.NoError(t, repo.Save(ctx, validation))

	exists, err := repo.ExistsByOrderIDAndTransactionID(ctx, "order-1", "tx-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByOrderIDAndTransactionID(ctx, "order-1", "tx-2")
	require.NoError(t, err)
	assert.False(t, exists)

	found, err := repo.FindByOrderIDAndTransactionID(ctx, "order-1", "tx-1")
	require.NoError(t, err)
	found.Fail()

	stillStored, err := repo.FindByOrderIDAndTransactionID(ctx, "order-1", "tx-1")
	require.NoError(t, err)
	assert.True(t, stillStored.Success)

	require.NoError(t, repo.Save(ctx, found))
	updated, err := repo.FindByOrderIDAndTransactionID(ctx, "order-1", "tx-1")
	require.NoError(t, err)
	assert.False(t, updated.Success)
	assert.Equal(t, validation.ID, updated.ID)
}
