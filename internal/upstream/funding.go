package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
)

// PaymentIntent is the checkout bootstrap returned by the platform. The
// client only embeds the secret for the provider's JS; it never talks to
// the payment provider itself.
type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

// ListFunding calls GET /api/funding.
func (c *Client) ListFunding(ctx context.Context, token string, page, limit int) (Page[entity.FundingEntry], error) {
	q := url.Values{}
	setPaging(q, page, limit)
	payload, err := c.do(ctx, http.MethodGet, withQuery("/api/funding", q), nil, token)
	if err != nil {
		return Page[entity.FundingEntry]{}, err
	}
	return decodePage[entity.FundingEntry](payload, page, limit)
}

// CreatePaymentIntent calls POST /api/funding/create-payment-intent.
// Amount is in whole currency units (BDT).
func (c *Client) CreatePaymentIntent(ctx context.Context, token string, amount int64) (*PaymentIntent, error) {
	payload, err := c.do(ctx, http.MethodPost, "/api/funding/create-payment-intent", map[string]int64{"amount": amount}, token)
	if err != nil {
		return nil, err
	}
	var pi PaymentIntent
	if err := decode(payload, &pi); err != nil {
		return nil, err
	}
	return &pi, nil
}
