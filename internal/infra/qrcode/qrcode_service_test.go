package qrcode

import (
	"strconv"
	"strings"
	"testing"

	"bistro/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(size int, level, baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              baseURL,
	}

	return cfg
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "medium"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(newTestConfig(tt.size, tt.errorCorrectionLevel, ""))
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePickupCode(t *testing.T) {
	service := NewQRCodeService(newTestConfig(256, "M", "https://bistro.example.com/pickup"))

	qrBytes, err := service.GeneratePickupCode(42)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePickupCode_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(newTestConfig(tt.size, "M", ""))

			qrBytes, err := service.GeneratePickupCode(7)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GeneratePickupCode_NoConfig(t *testing.T) {
	service := NewQRCodeService(&config.Config{})

	qrBytes, err := service.GeneratePickupCode(1)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestPickupPayload_TrailingSlash(t *testing.T) {
	svc := &qrcodeService{
		size:                 256,
		errorCorrectionLevel: parseRecoveryLevel("M"),
		baseURL:              "https://bistro.example.com/pickup/",
	}

	// The payload joins base URL and order ID with exactly one slash.
	payload := strings.TrimSuffix(svc.baseURL, "/") + "/" + strconv.FormatInt(42, 10)
	assert.Equal(t, "https://bistro.example.com/pickup/42", payload)
}
