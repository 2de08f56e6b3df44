package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ranchers-app/storefront/internal/backend"
	"github.com/ranchers-app/storefront/internal/cart"
	"github.com/ranchers-app/storefront/internal/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Service turns a session's cart into a durable order. Steps run strictly
// in sequence and the cart is cleared if and only if the insert succeeded,
// so a failed checkout can always be retried as-is.
type Service struct {
	carts *cart.Manager
	api   backend.DataAPI
	sfg   singleflight.Group // Serializes double-submits per session
	log   *logrus.Logger
}

func NewService(carts *cart.Manager, api backend.DataAPI, log *logrus.Logger) *Service {
	return &Service{
		carts: carts,
		api:   api,
		log:   log,
	}
}

// Checkout validates the cart, binds the caller's identity and profile,
// submits the order, and clears the cart on acceptance. Concurrent calls
// for the same session share a single execution.
func (s *Service) Checkout(ctx context.Context, token string) (*domain.OrderConfirmation, error) {
	v, err, _ := s.sfg.Do(token, func() (interface{}, error) {
		return s.checkout(ctx, token)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.OrderConfirmation), nil
}

func (s *Service) checkout(ctx context.Context, token string) (*domain.OrderConfirmation, error) {
	store := s.carts.ForSession(token)

	snap := store.Snapshot()
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}

	ident, err := s.api.CurrentIdentity(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}

	profile, err := s.api.GetProfile(ctx, token, ident.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}

	// Frozen snapshot of the cart, not a live reference.
	itemsJSON, err := json.Marshal(snap.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal cart snapshot: %w", err)
	}

	order := &domain.Order{
		UserID:      ident.ID,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		Email:       profile.Email,
		TotalAmount: snap.Total,
		Items:       string(itemsJSON),
		Status:      domain.OrderStatusPlaced,
	}

	if err := s.api.InsertOrder(ctx, token, order); err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": ident.ID,
			"total":   snap.Total,
		}).Warnf("order submission failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	store.Clear()

	s.log.WithFields(logrus.Fields{
		"user_id": ident.ID,
		"total":   snap.Total,
		"items":   len(snap.Items),
	}).Info("order placed")

	return &domain.OrderConfirmation{
		Total:   snap.Total,
		Message: fmt.Sprintf("Your order of PKR %.2f has been placed!", snap.Total),
	}, nil
}
