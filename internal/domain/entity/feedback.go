package entity

import "time"

// Rating bounds for feedback entries.
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a post-order (or general) rating left by a customer. OrderID
// is nil for feedback not tied to a particular order.
type Feedback struct {
	ID        int64
	UserID    int64
	OrderID   *int64
	Rating    int // In [MinRating, MaxRating].
	Comment   string
	CreatedAt time.Time
}

// RatingInRange reports whether rating is an acceptable feedback score.
func RatingInRange(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
