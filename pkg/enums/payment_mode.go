package enums

import "strings"

// PaymentMode is how the customer settled an order.
type PaymentMode string

const (
	PaymentModeCOD    PaymentMode = "COD"
	PaymentModeCash   PaymentMode = "Cash"
	PaymentModeOnline PaymentMode = "Online"
	PaymentModeUPI    PaymentMode = "UPI"
	PaymentModeCard   PaymentMode = "Card"
	PaymentModeWallet PaymentMode = "Wallet"
)

var AllPaymentModes = []PaymentMode{
	PaymentModeCOD,
	PaymentModeCash,
	PaymentModeOnline,
	PaymentModeUPI,
	PaymentModeCard,
	PaymentModeWallet,
}

// String implements fmt.Stringer.
func (p PaymentMode) String() string {
	return string(p)
}

// IsCashOnDelivery reports whether the rider collected cash for the order.
// Apps write the mode with inconsistent casing so the match is case-insensitive.
func (p PaymentMode) IsCashOnDelivery() bool {
	v := strings.TrimSpace(string(p))
	return strings.EqualFold(v, string(PaymentModeCOD)) || strings.EqualFold(v, string(PaymentModeCash))
}
