package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ranchers-app/storefront/internal/domain"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Password string `json:"password"`
}

// SignIn exchanges email+password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	var session domain.Session
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "",
		signInRequest{Email: email, Password: password}, &session)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if session.AccessToken == "" {
		return nil, fmt.Errorf("sign in: %w: empty access token", ErrNoSession)
	}
	return &session, nil
}

// SignOut revokes the session token.
func (c *Client) SignOut(ctx context.Context, token string) error {
	if err := c.do(ctx, http.MethodPost, "/auth/v1/logout", token, nil, nil); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// CurrentIdentity resolves the principal behind the token.
func (c *Client) CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	var ident domain.Identity
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", token, nil, &ident); err != nil {
		return nil, fmt.Errorf("current identity: %w", err)
	}
	if ident.ID == "" {
		return nil, fmt.Errorf("current identity: %w: empty user id", ErrNoSession)
	}
	return &ident, nil
}

// UpdatePassword sets a new password for the token's user. Callers
// re-authenticate with the current password first.
func (c *Client) UpdatePassword(ctx context.Context, token, newPassword string) error {
	err := c.do(ctx, http.MethodPut, "/auth/v1/user", token,
		updateUserRequest{Password: newPassword}, nil)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
