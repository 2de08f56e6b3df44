package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/ranchers-app/storefront/internal/backend"
	"github.com/ranchers-app/storefront/internal/cache"
	"github.com/ranchers-app/storefront/internal/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var (
	ErrMissingFields = errors.New("all fields are mandatory")
	ErrBadRating     = errors.New("rating must be between 1 and 5")
)

// Service backs the account screens: profile, password change, feedback,
// contact queries, and order history.
type Service struct {
	api   backend.DataAPI
	cache cache.ProfileCache
	sfg   singleflight.Group // Prevents profile fetch stampede
	log   *logrus.Logger
}

func NewService(api backend.DataAPI, profileCache cache.ProfileCache, log *logrus.Logger) *Service {
	return &Service{
		api:   api,
		cache: profileCache,
		log:   log,
	}
}

// Profile resolves the caller's identity and returns their profile row.
func (s *Service) Profile(ctx context.Context, token string) (*domain.Profile, error) {
	ident, err := s.api.CurrentIdentity(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.profileFor(ctx, token, ident.ID)
}

// profileFor is a read-through cached profile lookup shared by concurrent
// callers of the same identity.
func (s *Service) profileFor(ctx context.Context, token, identityID string) (*domain.Profile, error) {
	v, err, _ := s.sfg.Do(identityID, func() (interface{}, error) {
		profile, err := s.cache.Get(ctx, identityID)
		if err == nil {
			return profile, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warnf("profile cache get error: %v", err) // log cache error but continue
		}

		profile, err = s.api.GetProfile(ctx, token, identityID)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), identityID, profile); errSet != nil {
				s.log.Warnf("profile cache set error: %v", errSet)
			}
		}()

		return profile, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Profile), nil
}

// ChangePassword re-authenticates with the current password before setting
// the new one, mirroring the sign-in + update flow of the client app.
func (s *Service) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrMissingFields
	}

	ident, err := s.api.CurrentIdentity(ctx, token)
	if err != nil {
		return err
	}

	if _, err := s.api.SignIn(ctx, ident.Email, currentPassword); err != nil {
		return fmt.Errorf("re-authentication failed: %w", err)
	}

	if err := s.api.UpdatePassword(ctx, token, newPassword); err != nil {
		return err
	}

	s.log.WithField("user_id", ident.ID).Info("password changed")
	return nil
}

// SubmitFeedback copies the caller's profile fields onto the feedback row
// at submission time.
func (s *Service) SubmitFeedback(ctx context.Context, token, message, category string, rating int) error {
	if message == "" || category == "" {
		return ErrMissingFields
	}
	if rating < 1 || rating > 5 {
		return ErrBadRating
	}

	ident, err := s.api.CurrentIdentity(ctx, token)
	if err != nil {
		return err
	}

	profile, err := s.profileFor(ctx, token, ident.ID)
	if err != nil {
		return err
	}

	fb := &domain.Feedback{
		UserID:   ident.ID,
		FullName: profile.FullName(),
		Email:    profile.Email,
		Phone:    profile.Phone,
		Message:  message,
		Category: category,
		Rating:   rating,
	}
	if err := s.api.InsertFeedback(ctx, token, fb); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  ident.ID,
		"category": category,
		"rating":   rating,
	}).Info("feedback recorded")
	return nil
}

// SubmitQuery records a contact-us message. Name, email, and message are
// supplied by the caller rather than read from the profile.
func (s *Service) SubmitQuery(ctx context.Context, token, fullName, email, phone, message string) error {
	if fullName == "" || email == "" || message == "" {
		return ErrMissingFields
	}

	ident, err := s.api.CurrentIdentity(ctx, token)
	if err != nil {
		return err
	}

	q := &domain.ContactQuery{
		UserID:   ident.ID,
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Message:  message,
	}
	if err := s.api.InsertQuery(ctx, token, q); err != nil {
		return err
	}

	s.log.WithField("user_id", ident.ID).Info("contact query recorded")
	return nil
}

// OrderHistory lists the caller's submitted orders.
func (s *Service) OrderHistory(ctx context.Context, token string) ([]domain.Order, error) {
	ident, err := s.api.CurrentIdentity(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.api.ListOrdersByUser(ctx, token, ident.ID)
}
