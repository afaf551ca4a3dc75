package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/codebench-2025.net/internal/config"
	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/domain"
	"gitlab.com/codebench-2025.net/internal/static/errs"
)

var _ IAuthService = &googleAuthService{}

type googleAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
	Config      *config.GGAuthConfig
}

func NewGoogleAuthService(userPort secondary.UserPort, jwtProvider primary.JWTService, Config *config.GGAuthConfig) IAuthService {
	return &googleAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
		Config:      Config,
	}
}

func (g googleAuthService) ProviderName() domain.Provider {
	return domain.ProviderGoogle
}

// Login signs a Google user in, creating the account on first contact.
func (g googleAuthService) Login(ctx context.Context, users *domain.Users) (string, error) {
	if users.GoogleID == nil {
		return "", errs.InvalidCredentials
	}

	if users.AuthProvider != string(domain.ProviderGoogle) {
		return "", errs.InvalidCredentials
	}

	if users.Email == nil {
		return "", errs.EmailRequired
	}

	if g.Config.AllowedDomain != "" && !strings.HasSuffix(*users.Email, "@"+g.Config.AllowedDomain) {
		return "", errs.EmailDomainDenied
	}

	usr, err := g.userPort.GetByGoogleID(ctx, *users.GoogleID)
	if err != nil {
		return "", err
	}

	if usr != nil {
		return issueToken(ctx, g.jwtProvider, usr)
	}

	users.ID = uuid.New()
	users.PasswordHash = nil
	users.UserName = strings.Split(*users.Email, "@")[0]
	users.AuthProvider = string(domain.ProviderGoogle)
	err = g.userPort.Create(ctx, users)
	if err != nil {
		return "", errs.FailedToCreateUser
	}

	return issueToken(ctx, g.jwtProvider, users)
}
