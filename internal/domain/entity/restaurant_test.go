package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRestaurant_IsVisible(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		status  RestaurantStatus
		deleted bool
		visible bool
	}{
		{"active", RestaurantStatusActive, false, true},
		{"pending", RestaurantStatusPending, false, false},
		{"suspended", RestaurantStatusSuspended, false, false},
		{"inactive", RestaurantStatusInactive, false, false},
		{"active but deleted", RestaurantStatusActive, true, false},
		{"suspended and deleted", RestaurantStatusSuspended, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restaurant := Restaurant{Status: tt.status}
			if tt.deleted {
				restaurant = restaurant.WithDeleted(now)
			}

			assert.Equal(t, tt.visible, restaurant.IsVisible())
			assert.Equal(t, tt.visible, restaurant.VisibilityScore() == 100)
		})
	}
}

func TestRestaurant_CanReceiveOrders(t *testing.T) {
	assert.True(t, Restaurant{Status: RestaurantStatusActive}.CanReceiveOrders())
	assert.False(t, Restaurant{Status: RestaurantStatusPending}.CanReceiveOrders())
	assert.False(t, Restaurant{Status: RestaurantStatusSuspended}.CanReceiveOrders())
}

func TestRestaurant_DeleteAndRestore(t *testing.T) {
	now := time.Now()
	restaurant := Restaurant{Status: RestaurantStatusActive}

	deleted := restaurant.WithDeleted(now)
	assert.True(t, deleted.IsDeleted())
	assert.False(t, deleted.IsVisible())

	restored := deleted.WithRestored(now)
	assert.False(t, restored.IsDeleted())
	assert.True(t, restored.IsVisible())
}

func TestRestaurantStatus_IsValid(t *testing.T) {
	valid := []RestaurantStatus{
		RestaurantStatusPending,
		RestaurantStatusActive,
		RestaurantStatusSuspended,
		RestaurantStatusInactive,
	}
	for _, status := range valid {
		assert.True(t, status.IsValid())
	}

	assert.False(t, RestaurantStatus("DELETED").IsValid())
	assert.False(t, RestaurantStatus("").IsValid())
}
