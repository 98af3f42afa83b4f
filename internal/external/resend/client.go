package resend

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"UnrulyHuman/internal/domain/payment"

	"github.com/resend/resend-go/v2"
)

type Options struct {
	APIKey  string
	Timeout time.Duration
	// BaseURL overrides the API endpoint (tests).
	BaseURL string
}

// Client implements payment.Mailer on top of the Resend API.
type Client struct {
	api    *resend.Client
	logger *slog.Logger
}

func New(opts Options, l *slog.Logger) (*Client, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	api := resend.NewCustomClient(&http.Client{Timeout: timeout}, opts.APIKey)
	if opts.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse resend base url: %w", err)
		}
		api.BaseURL = base
	}

	return &Client{api: api, logger: l}, nil
}

func (c *Client) Send(ctx context.Context, msg payment.Email) (string, error) {
	resp, err := c.api.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", fmt.Errorf("resend send email: %w", err)
	}

	c.logger.DebugContext(ctx, "Email accepted by provider", slog.String("message_id", resp.Id))
	return resp.Id, nil
}
