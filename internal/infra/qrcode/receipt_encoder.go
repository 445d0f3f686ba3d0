// Package qrcode renders receipt references for confirmed orders.
package qrcode

import (
	"encoding/json"
	"fmt"

	"pos/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type receiptEncoder struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData represents the QR code data structure
type ReceiptData struct {
	OrderID    string `json:"order_id"`
	GrandTotal int64  `json:"grand_total"`
	Type       string `json:"type"`
}

// NewReceiptEncoder creates a new receipt encoder instance
func NewReceiptEncoder(size int, errorCorrectionLevel string) service.ReceiptEncoder {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &receiptEncoder{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// EncodeReceipt generates a PNG QR code referencing the confirmed order
func (s *receiptEncoder) EncodeReceipt(orderID string, grandTotal int64) ([]byte, error) {
	data := ReceiptData{
		OrderID:    orderID,
		GrandTotal: grandTotal,
		Type:       "receipt",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
