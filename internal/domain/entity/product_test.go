package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProduct_WithQuantity_ZeroStockRule(t *testing.T) {
	now := time.Now()

	product := Product{Status: ProductStatusActive, Quantity: 5}

	emptied := product.WithQuantity(0, now)
	assert.Equal(t, ProductStatusOutOfStock, emptied.Status)
	assert.False(t, emptied.IsOrderable())

	restocked := emptied.WithQuantity(10, now)
	assert.Equal(t, ProductStatusActive, restocked.Status)
	assert.True(t, restocked.IsOrderable())
}

func TestProduct_WithQuantity_InactiveStaysInactive(t *testing.T) {
	now := time.Now()

	product := Product{Status: ProductStatusInactive, Quantity: 5}

	emptied := product.WithQuantity(0, now)
	assert.Equal(t, ProductStatusInactive, emptied.Status)

	restocked := emptied.WithQuantity(3, now)
	assert.Equal(t, ProductStatusInactive, restocked.Status)
	assert.False(t, restocked.IsOrderable())
}

func TestProduct_IsOrderable(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		status    ProductStatus
		quantity  int
		deleted   bool
		orderable bool
	}{
		{"active with stock", ProductStatusActive, 3, false, true},
		{"active without stock", ProductStatusActive, 0, false, false},
		{"inactive with stock", ProductStatusInactive, 3, false, false},
		{"out of stock", ProductStatusOutOfStock, 0, false, false},
		{"deleted", ProductStatusActive, 3, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := Product{Status: tt.status, Quantity: tt.quantity}
			if tt.deleted {
				product = product.WithDeleted(now)
			}

			assert.Equal(t, tt.orderable, product.IsOrderable())
		})
	}
}
