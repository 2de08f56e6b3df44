package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ranchers-app/storefront/internal/domain"
)

// GetProfile fetches the profile row keyed by identity id.
func (c *Client) GetProfile(ctx context.Context, token, identityID string) (*domain.Profile, error) {
	path := "/rest/v1/profiles?select=first_name,last_name,email,phone&id=eq." + url.QueryEscape(identityID)

	var rows []domain.Profile
	if err := c.do(ctx, http.MethodGet, path, token, nil, &rows); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("get profile: %w", ErrNotFound)
	}
	profile := rows[0]
	profile.ID = identityID
	return &profile, nil
}

// InsertOrder appends one order row.
func (c *Client) InsertOrder(ctx context.Context, token string, order *domain.Order) error {
	if err := c.do(ctx, http.MethodPost, "/rest/v1/orders", token, []*domain.Order{order}, nil); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListOrdersByUser returns every order row belonging to userID.
func (c *Client) ListOrdersByUser(ctx context.Context, token, userID string) ([]domain.Order, error) {
	path := "/rest/v1/orders?select=*&user_id=eq." + url.QueryEscape(userID)

	var rows []domain.Order
	if err := c.do(ctx, http.MethodGet, path, token, nil, &rows); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return rows, nil
}

// InsertFeedback appends one feedback row.
func (c *Client) InsertFeedback(ctx context.Context, token string, fb *domain.Feedback) error {
	if err := c.do(ctx, http.MethodPost, "/rest/v1/feedbacks", token, []*domain.Feedback{fb}, nil); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// InsertQuery appends one contact-us row.
func (c *Client) InsertQuery(ctx context.Context, token string, q *domain.ContactQuery) error {
	if err := c.do(ctx, http.MethodPost, "/rest/v1/queries", token, []*domain.ContactQuery{q}, nil); err != nil {
		return fmt.Errorf("insert query: %w", err)
	}
	return nil
}
