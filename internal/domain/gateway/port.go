package gateway

import "context"

//go:generate mockgen -source port.go -destination mock_port.go -package gateway

// Provider is the hosted-checkout side of the payment processor.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSession, error)
}

type CheckoutSessionRequest struct {
	LineItems          []LineItem
	PaymentMethodTypes []string
	SuccessURL         string
	CancelURL          string
	AllowedCountries   []string
	Metadata           map[string]string
}

type LineItem struct {
	Name        string
	Description string
	Images      []string
	UnitAmount  int64
	Currency    string
	Quantity    int64
}

type CheckoutSession struct {
	ID  string
	URL string
}
