package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// ReceiptQRGenerator encodes the receipt lookup URL for an order number.
type ReceiptQRGenerator struct {
	BaseURL string
}

func (g ReceiptQRGenerator) Generate(orderNumber string) ([]byte, error) {
	data := fmt.Sprintf("%s/api/receipt?order=%s", g.BaseURL, orderNumber)
	return qrcode.Encode(data, qrcode.Medium, 256)
}

var _ QRGenerator = ReceiptQRGenerator{}
