package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
)

var ErrMissingID = errors.New("request id is required")

// RequestInput is the create/edit payload, in the canonical nested shape.
type RequestInput struct {
	Recipient      entity.Recipient `json:"recipient"`
	HospitalName   string           `json:"hospitalName"`
	FullAddress    string           `json:"fullAddress"`
	BloodGroup     string           `json:"bloodGroup"`
	DonationDate   string           `json:"donationDate"`
	DonationTime   string           `json:"donationTime"`
	RequestMessage string           `json:"requestMessage"`
}

// ListRequestsParams filters any request list endpoint.
type ListRequestsParams struct {
	Status string // empty means all
	Page   int
	Limit  int
}

func (c *Client) listRequests(ctx context.Context, path, token string, p ListRequestsParams) (Page[entity.DonationRequest], error) {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	setPaging(q, p.Page, p.Limit)

	payload, err := c.do(ctx, http.MethodGet, withQuery(path, q), nil, token)
	if err != nil {
		return Page[entity.DonationRequest]{}, err
	}
	return decodePage[entity.DonationRequest](payload, p.Page, p.Limit)
}

// PendingPublic calls GET /api/requests/pending-public (no credential).
func (c *Client) PendingPublic(ctx context.Context, p ListRequestsParams) (Page[entity.DonationRequest], error) {
	p.Status = ""
	return c.listRequests(ctx, "/api/requests/pending-public", "", p)
}

// MyRequests calls GET /api/requests/my.
func (c *Client) MyRequests(ctx context.Context, token string, p ListRequestsParams) (Page[entity.DonationRequest], error) {
	return c.listRequests(ctx, "/api/requests/my", token, p)
}

// AllRequests calls GET /api/requests/all (admin only upstream).
func (c *Client) AllRequests(ctx context.Context, token string, p ListRequestsParams) (Page[entity.DonationRequest], error) {
	return c.listRequests(ctx, "/api/requests/all", token, p)
}

// VolunteerRequests calls GET /api/requests/volunteer/my.
func (c *Client) VolunteerRequests(ctx context.Context, token string, p ListRequestsParams) (Page[entity.DonationRequest], error) {
	return c.listRequests(ctx, "/api/requests/volunteer/my", token, p)
}

// CreateRequest calls POST /api/requests.
func (c *Client) CreateRequest(ctx context.Context, token string, in RequestInput) (*entity.DonationRequest, error) {
	payload, err := c.do(ctx, http.MethodPost, "/api/requests", in, token)
	if err != nil {
		return nil, err
	}
	var r entity.DonationRequest
	if err := decode(payload, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRequest calls GET /api/requests/:id.
func (c *Client) GetRequest(ctx context.Context, token, id string) (*entity.DonationRequest, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	payload, err := c.do(ctx, http.MethodGet, "/api/requests/"+url.PathEscape(id), nil, token)
	if err != nil {
		return nil, err
	}
	var r entity.DonationRequest
	if err := decode(payload, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRequest calls PUT /api/requests/:id.
func (c *Client) UpdateRequest(ctx context.Context, token, id string, in RequestInput) (*entity.DonationRequest, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	payload, err := c.do(ctx, http.MethodPut, "/api/requests/"+url.PathEscape(id), in, token)
	if err != nil {
		return nil, err
	}
	var r entity.DonationRequest
	if err := decode(payload, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Donate calls PATCH /api/requests/:id/donate, assigning the caller as the
// donor and moving the request to inprogress. Server-enforced.
func (c *Client) Donate(ctx context.Context, token, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := c.do(ctx, http.MethodPatch, "/api/requests/"+url.PathEscape(id)+"/donate", nil, token)
	return err
}

// ChangeRequestStatus calls PATCH /api/requests/:id/status.
func (c *Client) ChangeRequestStatus(ctx context.Context, token, id string, status entity.RequestStatus) error {
	if id == "" {
		return ErrMissingID
	}
	body := map[string]string{"status": string(status)}
	_, err := c.do(ctx, http.MethodPatch, "/api/requests/"+url.PathEscape(id)+"/status", body, token)
	return err
}

// DeleteRequest calls DELETE /api/requests/:id.
func (c *Client) DeleteRequest(ctx context.Context, token, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := c.do(ctx, http.MethodDelete, "/api/requests/"+url.PathEscape(id), nil, token)
	return err
}
