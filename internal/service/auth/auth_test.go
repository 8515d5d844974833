package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"slots_backend/internal/common"
	"slots_backend/internal/model"
	"slots_backend/pkg/token"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJWTConfig struct{}

func (fakeJWTConfig) AccessTokenSecretKey() []byte        { return []byte("test-secret") }
func (fakeJWTConfig) AccessTokenDuration() time.Duration  { return time.Minute }
func (fakeJWTConfig) RefreshTokenDuration() time.Duration { return time.Hour }

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (int, error) {
	if _, ok := r.users[user.Login]; ok {
		return 0, common.ErrLoginTaken
	}
	u := *user
	u.ID = r.nextID
	r.nextID++
	r.users[u.Login] = &u
	return u.ID, nil
}

func (r *fakeUserRepo) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	u, ok := r.users[login]
	if !ok {
		return nil, errors.New("no rows")
	}
	return u, nil
}

func (r *fakeUserRepo) GetBalance(_ context.Context, id int) (int, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u.Balance, nil
		}
	}
	return 0, nil
}

func (r *fakeUserRepo) GetBalanceForUpdate(ctx context.Context, id int) (int, error) {
	return r.GetBalance(ctx, id)
}

func (r *fakeUserRepo) UpdateBalance(_ context.Context, id int, amount int) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Balance = amount
			return nil
		}
	}
	return errors.New("no such user")
}

type fakeAuthRepo struct {
	sessions map[string]*model.Session
	users    *fakeUserRepo
}

func newFakeAuthRepo(users *fakeUserRepo) *fakeAuthRepo {
	return &fakeAuthRepo{sessions: make(map[string]*model.Session), users: users}
}

func (r *fakeAuthRepo) CreateSession(_ context.Context, session *model.Session) error {
	s := *session
	r.sessions[s.ID] = &s
	return nil
}

func (r *fakeAuthRepo) GetRefreshTokenBySessionID(_ context.Context, sessionID string) (string, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return "", errors.New("no session")
	}
	return s.RefreshToken, nil
}

func (r *fakeAuthRepo) DeleteSession(_ context.Context, sessionID string) error {
	delete(r.sessions, sessionID)
	return nil
}

func (r *fakeAuthRepo) GetUserBySessionID(_ context.Context, sessionID string) (*model.User, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, errors.New("no session")
	}
	for _, u := range r.users.users {
		if u.ID == s.UserID {
			return u, nil
		}
	}
	return nil, errors.New("no user")
}

func newTestService() (*serv, *fakeUserRepo, *fakeAuthRepo) {
	users := newFakeUserRepo()
	sessions := newFakeAuthRepo(users)
	s := NewAuthService(fakeTxManager{}, users, sessions, fakeJWTConfig{}, 1000).(*serv)
	return s, users, sessions
}

func TestRegister(t *testing.T) {
	s, users, sessions := newTestService()
	ctx := context.Background()

	data, err := s.Register(ctx, &model.User{Name: "Ann", Login: "ann", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.RefreshToken)
	assert.NotEmpty(t, data.SessionID)

	// New accounts start funded and the stored password is hashed.
	stored := users.users["ann"]
	require.NotNil(t, stored)
	assert.Equal(t, 1000, stored.Balance)
	assert.NotEqual(t, "pw", stored.Password)

	// The session stores a hash, never the refresh token itself.
	sess := sessions.sessions[data.SessionID]
	require.NotNil(t, sess)
	assert.NotEqual(t, data.RefreshToken, sess.RefreshToken)
	assert.True(t, token.VerifyRefreshToken(data.RefreshToken, sess.RefreshToken))

	// The access token carries the new user's ID.
	claims, err := token.VerifyToken(data.AccessToken, fakeJWTConfig{}.AccessTokenSecretKey())
	require.NoError(t, err)
	id, err := token.UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, id)
}

func TestRegisterLoginTaken(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	_, err := s.Register(ctx, &model.User{Login: "ann", Password: "pw"})
	require.NoError(t, err)

	_, err = s.Register(ctx, &model.User{Login: "ann", Password: "other"})
	assert.ErrorIs(t, err, common.ErrLoginTaken)
}

func TestLogin(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	_, err := s.Register(ctx, &model.User{Login: "ann", Password: "pw"})
	require.NoError(t, err)

	data, err := s.Login(ctx, "ann", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.SessionID)
}

func TestLoginBadCredentials(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	_, err := s.Register(ctx, &model.User{Login: "ann", Password: "pw"})
	require.NoError(t, err)

	_, err = s.Login(ctx, "ann", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = s.Login(ctx, "nobody", "pw")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	data, err := s.Register(ctx, &model.User{Login: "ann", Password: "pw"})
	require.NoError(t, err)

	access, err := s.Refresh(ctx, data.SessionID, data.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	_, err = s.Refresh(ctx, data.SessionID, "forged")
	assert.Error(t, err)

	_, err = s.Refresh(ctx, "no-such-session", data.RefreshToken)
	assert.Error(t, err)
}

func TestLogout(t *testing.T) {
	s, _, sessions := newTestService()
	ctx := context.Background()

	data, err := s.Register(ctx, &model.User{Login: "ann", Password: "pw"})
	require.NoError(t, err)
	require.Contains(t, sessions.sessions, data.SessionID)

	require.NoError(t, s.Logout(ctx, data.SessionID))
	assert.NotContains(t, sessions.sessions, data.SessionID)

	// Refresh no longer works after logout.
	_, err = s.Refresh(ctx, data.SessionID, data.RefreshToken)
	assert.Error(t, err)
}
