package service

import "github.com/google/uuid"

// QRCodeService defines the contract for generating storefront QR codes.
type QRCodeService interface {
	// GenerateStorefrontQR renders a PNG QR code pointing at the restaurant's public menu.
	GenerateStorefrontQR(restaurantID uuid.UUID) ([]byte, error)
}
