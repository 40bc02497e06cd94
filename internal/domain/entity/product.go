// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus represents the availability state of a product.
type ProductStatus string

const (
	// ProductStatusActive indicates a product available for ordering.
	ProductStatusActive ProductStatus = "ACTIVE"
	// ProductStatusInactive indicates a product hidden by its owner.
	ProductStatusInactive ProductStatus = "INACTIVE"
	// ProductStatusOutOfStock indicates a product whose quantity reached zero.
	ProductStatusOutOfStock ProductStatus = "OUT_OF_STOCK"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// Product represents a sellable item belonging to a restaurant.
type Product struct {
	ID           uuid.UUID     `json:"id"`                   // The Global Unique Identifier (GUID) for the product.
	RestaurantID uuid.UUID     `json:"restaurant_id"`        // The owning restaurant.
	Name         string        `json:"name"`                 // The product's display name.
	PriceCents   int64         `json:"price_cents"`          // Unit price, in cents.
	Quantity     int           `json:"quantity"`             // Units in stock.
	Status       ProductStatus `json:"status"`               // Current availability status.
	DeletedAt    *time.Time    `json:"deleted_at,omitempty"` // Soft-delete timestamp; nil when the product is live.
	CreatedAt    time.Time     `json:"created_at"`           // Timestamp of when the product was created.
	UpdatedAt    time.Time     `json:"updated_at"`           // Timestamp of the last modification.
}

// IsDeleted reports whether the product has been soft-deleted.
func (p Product) IsDeleted() bool {
	return p.DeletedAt != nil
}

// IsVisible reports whether the product is exposed to customer-facing reads.
func (p Product) IsVisible() bool {
	return p.Status == ProductStatusActive && !p.IsDeleted()
}

// IsOrderable reports whether the product can be placed on a new order.
func (p Product) IsOrderable() bool {
	return p.IsVisible() && p.Quantity > 0
}

// WithQuantity returns a copy of the product with the given stock level.
// Setting quantity to zero moves the product to OUT_OF_STOCK unless it is
// already INACTIVE; restocking an OUT_OF_STOCK product reactivates it.
// Negative quantities are the caller's responsibility to reject beforehand.
func (p Product) WithQuantity(quantity int, now time.Time) Product {
	p.Quantity = quantity
	switch {
	case quantity == 0 && p.Status != ProductStatusInactive:
		p.Status = ProductStatusOutOfStock
	case quantity > 0 && p.Status == ProductStatusOutOfStock:
		p.Status = ProductStatusActive
	}
	p.UpdatedAt = now

	return p
}

// WithStatus returns a copy of the product in the given status.
func (p Product) WithStatus(status ProductStatus, now time.Time) Product {
	p.Status = status
	p.UpdatedAt = now

	return p
}

// WithDeleted returns a soft-deleted copy of the product.
func (p Product) WithDeleted(now time.Time) Product {
	deletedAt := now
	p.DeletedAt = &deletedAt
	p.UpdatedAt = now

	return p
}
