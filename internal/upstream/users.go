package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
)

// ProfileUpdate is a partial self-service profile patch. Empty fields are
// omitted so the server only touches what the form submitted.
type ProfileUpdate struct {
	Name       string `json:"name,omitempty"`
	BloodGroup string `json:"bloodGroup,omitempty"`
	District   string `json:"district,omitempty"`
	Upazila    string `json:"upazila,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
}

// Me calls GET /api/users/me.
func (c *Client) Me(ctx context.Context, token string) (*entity.User, error) {
	payload, err := c.do(ctx, http.MethodGet, "/api/users/me", nil, token)
	if err != nil {
		return nil, err
	}
	var u entity.User
	if err := decode(payload, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateMe calls PATCH /api/users/me and returns the updated user.
func (c *Client) UpdateMe(ctx context.Context, token string, in ProfileUpdate) (*entity.User, error) {
	payload, err := c.do(ctx, http.MethodPatch, "/api/users/me", in, token)
	if err != nil {
		return nil, err
	}
	var u entity.User
	if err := decode(payload, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsersParams filters the admin user table.
type ListUsersParams struct {
	Role   string
	Status string
	Page   int
	Limit  int
}

// ListUsers calls GET /api/users (admin only upstream).
func (c *Client) ListUsers(ctx context.Context, token string, p ListUsersParams) (Page[entity.User], error) {
	q := url.Values{}
	if p.Role != "" {
		q.Set("role", p.Role)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	setPaging(q, p.Page, p.Limit)

	payload, err := c.do(ctx, http.MethodGet, withQuery("/api/users", q), nil, token)
	if err != nil {
		return Page[entity.User]{}, err
	}
	return decodePage[entity.User](payload, p.Page, p.Limit)
}

func (c *Client) userAction(ctx context.Context, token, id, action string) error {
	_, err := c.do(ctx, http.MethodPatch, "/api/users/"+url.PathEscape(id)+"/"+action, nil, token)
	return err
}

func (c *Client) BlockUser(ctx context.Context, token, id string) error {
	return c.userAction(ctx, token, id, "block")
}

func (c *Client) UnblockUser(ctx context.Context, token, id string) error {
	return c.userAction(ctx, token, id, "unblock")
}

func (c *Client) MakeAdmin(ctx context.Context, token, id string) error {
	return c.userAction(ctx, token, id, "make-admin")
}

func (c *Client) MakeVolunteer(ctx context.Context, token, id string) error {
	return c.userAction(ctx, token, id, "make-volunteer")
}

// DonorSearchParams filters the public donor search.
type DonorSearchParams struct {
	BloodGroup string
	District   string
	Upazila    string
	Page       int
	Limit      int
}

// SearchDonors calls GET /api/users/search-donors. Public endpoint; no
// credential is attached.
func (c *Client) SearchDonors(ctx context.Context, p DonorSearchParams) (Page[entity.User], error) {
	q := url.Values{}
	if p.BloodGroup != "" {
		q.Set("bloodGroup", p.BloodGroup)
	}
	if p.District != "" {
		q.Set("district", p.District)
	}
	if p.Upazila != "" {
		q.Set("upazila", p.Upazila)
	}
	setPaging(q, p.Page, p.Limit)

	payload, err := c.do(ctx, http.MethodGet, withQuery("/api/users/search-donors", q), nil, "")
	if err != nil {
		return Page[entity.User]{}, err
	}
	return decodePage[entity.User](payload, p.Page, p.Limit)
}

func setPaging(q url.Values, page, limit int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
}

func withQuery(path string, q url.Values) string {
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}
