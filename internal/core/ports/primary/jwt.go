package primary

import (
	"context"

	"gitlab.com/codebench-2025.net/internal/domain"
)

type JWTService interface {
	GenerateTokenHMAC(ctx context.Context, method string, claims map[string]interface{}) (string, error)
	VerifyTokenHMAC(ctx context.Context, token string, method string) (bool, error)
	DecodeTokenPayload(ctx context.Context, token string) (domain.AuthPayload, error)
	EncryptPassword(ctx context.Context, password string) (string, error)
	VerifyPassword(ctx context.Context, passwordHash string, pwd string) (bool, error)
}
