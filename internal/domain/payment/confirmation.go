package payment

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

const (
	confirmationSubject = "Your Alloy 000 order is confirmed"
	confirmationProduct = "Alloy 000 Bomber Jacket"
)

//go:embed templates/confirmation.html
var templatesFS embed.FS

var confirmationTmpl = template.Must(template.ParseFS(templatesFS, "templates/confirmation.html"))

type confirmationData struct {
	ProductName    string
	Size           string
	Amount         string
	OrderReference string
}

// ConfirmationEmail renders the order confirmation for a completed checkout.
func ConfirmationEmail(from string, session CheckoutSession) (Email, error) {
	data := confirmationData{
		ProductName:    confirmationProduct,
		Size:           session.Size,
		Amount:         FormatAmount(session.AmountTotal, session.Currency),
		OrderReference: OrderReference(session.ID),
	}

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return Email{}, fmt.Errorf("render confirmation: %w", err)
	}

	// A missing size is left out rather than guessed.
	text := fmt.Sprintf("Thank you! Your %s order has been confirmed.", data.ProductName)
	if data.Size != "" {
		text = fmt.Sprintf("Thank you! Your %s (size %s) order has been confirmed.", data.ProductName, data.Size)
	}
	if data.OrderReference != "" {
		text += " Order reference: " + data.OrderReference + "."
	}

	return Email{
		From:    from,
		To:      []string{session.CustomerEmail},
		Subject: confirmationSubject,
		HTML:    buf.String(),
		Text:    text,
	}, nil
}

// FormatAmount renders minor units, e.g. 30000 usd -> "$300.00". Zero renders as empty.
func FormatAmount(minor int64, currency string) string {
	if minor == 0 {
		return ""
	}
	amount := fmt.Sprintf("%d.%02d", minor/100, minor%100)
	if strings.EqualFold(currency, "usd") || currency == "" {
		return "$" + amount
	}
	return amount + " " + strings.ToUpper(currency)
}
