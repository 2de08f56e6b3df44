package cache

import (
	"context"
	"errors"

	"github.com/ranchers-app/storefront/internal/domain"
)

type ProfileCache interface {
	Get(ctx context.Context, identityID string) (*domain.Profile, error)
	Set(ctx context.Context, identityID string, profile *domain.Profile) error
	Delete(ctx context.Context, identityID string) error
}

var ErrCacheMiss = errors.New("cache miss")
