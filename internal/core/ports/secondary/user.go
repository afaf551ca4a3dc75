package secondary

import (
	"context"

	"gitlab.com/codebench-2025.net/internal/domain"
)

type UserPort interface {
	Create(ctx context.Context, user *domain.Users) error
	GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error)
	GetByUserName(ctx context.Context, userName string) (*domain.Users, error)
}
