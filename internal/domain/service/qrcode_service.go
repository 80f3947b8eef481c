package service

// QRCodeService defines the interface for family invite QR codes
type QRCodeService interface {
	// GenerateFamilyInviteQR renders a PNG QR code that encodes the join link for familyCode.
	GenerateFamilyInviteQR(familyCode string) ([]byte, error)

	// ParseFamilyInviteQR extracts the family code from a scanned join link.
	ParseFamilyInviteQR(qrData string) (string, error)
}
