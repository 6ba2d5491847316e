package booker

import (
	"context"
	"fmt"
	"net/http"

	"restful_booker/internal/domain"
)

// AuthAPI wraps /auth.
type AuthAPI struct{ c *Client }

// Login logs in with the client's configured credentials.
func (a *AuthAPI) Login(ctx context.Context) (*Response, error) {
	return a.LoginWith(ctx, a.c.creds.Username, a.c.creds.Password)
}

func (a *AuthAPI) LoginWith(ctx context.Context, username, password string) (*Response, error) {
	return a.c.do(ctx, request{
		method:   http.MethodPost,
		resource: "auth",
		segments: []string{"login"},
		body:     domain.Credentials{Username: username, Password: password},
	})
}

func (a *AuthAPI) Logout(ctx context.Context, token string) (*Response, error) {
	return a.c.do(ctx, request{
		method:   http.MethodPost,
		resource: "auth",
		segments: []string{"logout"},
		body:     domain.Token{Token: token},
	})
}

func (a *AuthAPI) Validate(ctx context.Context, token string) (*Response, error) {
	return a.c.do(ctx, request{
		method:   http.MethodPost,
		resource: "auth",
		segments: []string{"validate"},
		body:     domain.Token{Token: token},
	})
}

// Token logs in and returns a fresh token. Every call issues a new login.
func (a *AuthAPI) Token(ctx context.Context) (string, error) {
	resp, err := a.Login(ctx)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login: %w: %s", resp.Err(), resp.Body)
	}
	var t domain.Token
	if err := resp.JSON(&t); err != nil {
		return "", err
	}
	if t.Token == "" {
		return "", fmt.Errorf("login: empty token in %s", resp.Body)
	}
	return t.Token, nil
}
