package payment

import "context"

//go:generate mockgen -source mailer.go -destination mock_mailer.go -package payment

type Mailer interface {
	Send(ctx context.Context, msg Email) (string, error)
}

type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}
