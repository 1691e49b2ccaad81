package domain

import (
	"encoding/json"
	"time"
)

// Order as stored. Items is kept opaque: the storefront serializes whatever
// the cart sent, and it is returned to admins as structured JSON unchanged.
type Order struct {
	ID                int
	Name              string
	Phone             string
	Address           string
	Items             json.RawMessage
	Total             float64
	PaymentMethod     string
	PaymentStatus     string
	TransactionID     *string
	FulfillmentStatus *string
	ConfirmationToken *string
	CreatedAt         time.Time
}

const (
	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "ONLINE"
)

const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	// PaymentCOD marks cash-on-delivery orders, settled for workflow purposes
	// from the moment the order is placed.
	PaymentCOD = "COD"
)

// InitialPaymentStatus infers the payment state a new order starts in.
// COD orders are treated as settled immediately; everything else waits for
// an out-of-band confirmation.
func InitialPaymentStatus(paymentMethod string) string {
	if paymentMethod == PaymentMethodCOD {
		return PaymentCOD
	}
	return PaymentPending
}

// PaymentRequired reports whether the caller still owes a payment
// confirmation for an order created with the given method.
func PaymentRequired(paymentMethod string) bool {
	return paymentMethod != PaymentMethodCOD
}

func IsPaymentSettled(status string) bool {
	return status == PaymentPaid || status == PaymentCOD
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentPaid, PaymentCOD:
		return true
	}
	return false
}

// CanTransitionPayment enforces the one rule on the payment axis: a settled
// order never goes back to PENDING. Settled-to-settled moves are allowed so
// an admin can record collected cash as PAID.
func CanTransitionPayment(from, to string) bool {
	if !ValidPaymentStatus(to) {
		return false
	}
	if IsPaymentSettled(from) && to == PaymentPending {
		return false
	}
	return true
}
