package service

// QRCodeService renders QR codes for printed flyers.
type QRCodeService interface {
	// GenerateURLCode encodes url as a PNG image.
	GenerateURLCode(url string) ([]byte, error)
}
