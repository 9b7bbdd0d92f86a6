package service

// QRCodeService defines the interface for offer share codes
type QRCodeService interface {
	// GenerateOfferQR renders a PNG QR code pointing at the offer's share URL
	GenerateOfferQR(offerKey string) ([]byte, error)

	// ParseOfferQR extracts the offer key from a scanned share URL
	ParseOfferQR(content string) (string, error)
}
