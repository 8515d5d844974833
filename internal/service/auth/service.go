package auth

import (
	"slots_backend/internal/config"
	"slots_backend/internal/repository"
	"slots_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
	// Every new account starts with this many coins
	initialBalance int
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	initialBalance int,
) service.AuthService {
	return &serv{
		txManager:      txManager,
		userRepo:       userRepo,
		authRepo:       authRepo,
		jwtConfig:      jwtConfig,
		initialBalance: initialBalance,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
