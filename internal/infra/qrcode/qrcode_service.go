// Package qrcode renders pickup tokens as QR code images.
package qrcode

import (
	"fmt"
	"strconv"
	"strings"

	"bistro/config"
	"bistro/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	baseURL := ""
	levelName := ""

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		baseURL = cfg.QRCode.BaseURL
		levelName = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(levelName),
		baseURL:              baseURL,
	}
}

// GeneratePickupCode encodes the order's pickup URL as a PNG. The payload is
// a plain URL so any camera app can resolve it at the counter.
func (s *qrcodeService) GeneratePickupCode(orderID int64) ([]byte, error) {
	payload := strconv.FormatInt(orderID, 10)
	if s.baseURL != "" {
		payload = strings.TrimSuffix(s.baseURL, "/") + "/" + payload
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

func parseRecoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToLower(name) {
	case "l", "low":
		return qrcode.Low
	case "m", "medium":
		return qrcode.Medium
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
