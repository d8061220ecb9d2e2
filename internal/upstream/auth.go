package upstream

import (
	"context"
	"net/http"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
)

// Credentials is the token+user pair returned by the auth endpoints.
type Credentials struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the registration payload. The avatar is a URL produced
// by the external image-hosting upload; the platform never receives bytes
// from this client.
type RegisterInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	Avatar     string `json:"avatar,omitempty"`
}

// Login calls POST /api/auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	payload, err := c.do(ctx, http.MethodPost, "/api/auth/login", loginPayload{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}
	var creds Credentials
	if err := decode(payload, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Register calls POST /api/auth/register.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*Credentials, error) {
	payload, err := c.do(ctx, http.MethodPost, "/api/auth/register", in, "")
	if err != nil {
		return nil, err
	}
	var creds Credentials
	if err := decode(payload, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}
