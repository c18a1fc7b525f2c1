package entity

import "time"

// SessionFlow identifies a multi-step conversation a user is in the middle
// of. This per-session state machine is entirely separate from the order
// status machine: it tracks where a conversation is suspended, not what
// happened to an order.
type SessionFlow string

const (
	FlowRegistration SessionFlow = "registration"
	FlowCheckout     SessionFlow = "checkout"
	FlowFeedback     SessionFlow = "feedback"
	FlowAdminDish    SessionFlow = "admin_dish"
)

// SessionStep is a suspend point within a flow, waiting for the next user
// input.
type SessionStep string

const (
	// Registration: phone -> name -> optional photo.
	StepRegistrationPhone SessionStep = "registration_phone"
	StepRegistrationName  SessionStep = "registration_name"
	StepRegistrationPhoto SessionStep = "registration_photo"

	// Checkout: delivery choice -> address (delivery only) -> phone -> optional promo.
	StepCheckoutDelivery SessionStep = "checkout_delivery"
	StepCheckoutAddress  SessionStep = "checkout_address"
	StepCheckoutPhone    SessionStep = "checkout_phone"
	StepCheckoutPromo    SessionStep = "checkout_promo"

	// Feedback: free-text comment after a rating.
	StepFeedbackComment SessionStep = "feedback_comment"

	// Admin dish entry: name -> description -> price -> category.
	StepAdminDishName        SessionStep = "admin_dish_name"
	StepAdminDishDescription SessionStep = "admin_dish_description"
	StepAdminDishPrice       SessionStep = "admin_dish_price"
	StepAdminDishCategory    SessionStep = "admin_dish_category"
)

// sessionSteps lists the legal step progression of each flow, in order.
// Optional trailing steps may be skipped by completing the flow early.
var sessionSteps = map[SessionFlow][]SessionStep{
	FlowRegistration: {StepRegistrationPhone, StepRegistrationName, StepRegistrationPhoto},
	FlowCheckout:     {StepCheckoutDelivery, StepCheckoutAddress, StepCheckoutPhone, StepCheckoutPromo},
	FlowFeedback:     {StepFeedbackComment},
	FlowAdminDish:    {StepAdminDishName, StepAdminDishDescription, StepAdminDishPrice, StepAdminDishCategory},
}

// FirstStep returns the entry step of a flow, or false for an unknown flow.
func (f SessionFlow) FirstStep() (SessionStep, bool) {
	steps, ok := sessionSteps[f]
	if !ok || len(steps) == 0 {
		return "", false
	}

	return steps[0], true
}

// CanAdvanceTo reports whether next is a later step of the same flow than
// current. Skipping forward is allowed (the address step is bypassed for
// pickup, the promo step when no code is entered); moving backwards is not.
func (f SessionFlow) CanAdvanceTo(current, next SessionStep) bool {
	steps, ok := sessionSteps[f]
	if !ok {
		return false
	}

	curIdx, nextIdx := -1, -1
	for i, s := range steps {
		if s == current {
			curIdx = i
		}
		if s == next {
			nextIdx = i
		}
	}

	return curIdx >= 0 && nextIdx > curIdx
}

// Session is the suspended state of one user's conversation flow. Data
// carries the answers collected so far (address, promo code, dish fields).
type Session struct {
	UserID    int64             `json:"user_id"`
	Flow      SessionFlow       `json:"flow"`
	Step      SessionStep       `json:"step"`
	Data      map[string]string `json:"data,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}
