package auth

import (
	"context"
	"time"

	"slots_backend/internal/common"
	"slots_backend/internal/model"
	"slots_backend/pkg/pass"
	"slots_backend/pkg/token"
)

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if !pass.VerifyPassword(user.Password, password) {
		return nil, common.ErrInvalidCredentials
	}

	sessionID := generateSessionID()

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			UserID:       user.ID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
