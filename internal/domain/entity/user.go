package entity

import (
	"strings"
	"time"
	"unicode"
)

// User is a registered customer. The identifier is assigned by the messaging
// platform and is stable across sessions, so it doubles as the primary key.
type User struct {
	ID           int64
	Username     string // Platform handle, may be empty.
	FullName     string
	Phone        string // Normalized, see NormalizePhone.
	RegisteredAt time.Time
	ProfilePhoto string // Optional reference to a profile photo.
}

// NormalizePhone reduces a phone number to digits with an optional leading
// '+'. Returns an empty string when no digits remain.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	b.Grow(len(raw))

	plus := strings.HasPrefix(raw, "+")
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return ""
	}
	if plus {
		return "+" + b.String()
	}

	return b.String()
}
