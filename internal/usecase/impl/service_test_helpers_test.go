package impl

import (
	"io"
	"log/slog"
	"time"

	"bistro/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Promo: &config.PromoConfig{
			Codes: map[string]float64{
				"WELCOME10": 0.10,
				"HALF":      0.50,
			},
		},
		Loyalty: &config.LoyaltyConfig{
			MonthlyThreshold: 3,
		},
		Session: &config.SessionConfig{
			TTL: 30 * time.Minute,
		},
	}
}
