package service

import "github.com/google/uuid"

// QRCodeService generates and parses the payment QR codes embedded in
// order confirmation mails.
type QRCodeService interface {
	// GeneratePaymentQR renders a PNG QR code carrying the order id and total.
	GeneratePaymentQR(orderID uuid.UUID, totalPrice string) ([]byte, error)

	// ParsePaymentQR decodes QR payload data back into an order id.
	ParsePaymentQR(qrData string) (uuid.UUID, error)
}
