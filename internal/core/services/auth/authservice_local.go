package auth

import (
	"context"
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/domain"
	"gitlab.com/codebench-2025.net/internal/global/logger"
	"gitlab.com/codebench-2025.net/internal/static/errs"
)

var _ IAuthService = &localAuthService{}

type localAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
}

func NewLocalAuthService(
	userPort secondary.UserPort,
	jwtProvider primary.JWTService,
) IAuthService {
	return &localAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
	}
}

func (g localAuthService) ProviderName() domain.Provider {
	return domain.ProviderLocal
}

func (g localAuthService) Login(ctx context.Context, users *domain.Users) (string, error) {
	usr, err := g.userPort.GetByUserName(ctx, users.UserName)
	if err != nil {
		return "", err
	}
	if usr == nil || usr.PasswordHash == nil {
		return "", errs.InvalidCredentials
	}
	if users.PasswordHash == nil {
		return "", errs.InvalidCredentials
	}
	valid, err := g.jwtProvider.VerifyPassword(ctx, *usr.PasswordHash, *users.PasswordHash)
	if err != nil {
		return "", errs.InvalidCredentials
	}
	if !valid {
		return "", errs.InvalidCredentials
	}

	return issueToken(ctx, g.jwtProvider, usr)
}

// issueToken wraps the user identity into an HS256 token shared by both
// providers
func issueToken(ctx context.Context, jwtProvider primary.JWTService, user *domain.Users) (string, error) {
	authPayload := domain.AuthPayload{
		Username:   user.UserName,
		Permission: []string{"codebench.execute"},
	}

	raw, err := json.Marshal(authPayload)
	if err != nil {
		return "", errs.InternalError
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		logger.Error("Failed to unmarshal auth payload", "error", err)
		return "", errs.InternalError
	}
	token, err := jwtProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, payload)
	if err != nil {
		return "", errs.GeneratingToken
	}
	return token, nil
}
