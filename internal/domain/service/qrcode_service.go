package service

// QRCodeService renders pickup tokens as QR code images.
type QRCodeService interface {
	// GeneratePickupCode encodes the order's pickup payload as a PNG.
	GeneratePickupCode(orderID int64) ([]byte, error)
}
