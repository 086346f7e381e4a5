package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warnaku/warnaku/internal/auth"
	"github.com/warnaku/warnaku/internal/token"
	"github.com/warnaku/warnaku/internal/user"
)

type fakeProvider struct {
	loginURL    string
	info        *auth.UserInfo
	exchangeErr error
}

func (p *fakeProvider) LoginURL(state string) string {
	return p.loginURL + "?state=" + state
}

func (p *fakeProvider) Exchange(_ context.Context, _ string) (*auth.UserInfo, error) {
	if p.exchangeErr != nil {
		return nil, p.exchangeErr
	}
	return p.info, nil
}

type mockUserRepo struct {
	createFn        func(ctx context.Context, u *user.User) error
	getByGoogleIDFn func(ctx context.Context, googleID string) (*user.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	return m.createFn(ctx, u)
}

func (m *mockUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*user.User, error) {
	return m.getByGoogleIDFn(ctx, googleID)
}

func (m *mockUserRepo) GetByID(context.Context, uuid.UUID) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepo) List(context.Context) ([]user.WithProfileCount, error) { return nil, nil }

func (m *mockUserRepo) SetAdmin(context.Context, uuid.UUID, bool) error { return nil }

func (m *mockUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (m *mockUserRepo) Stats(context.Context) (*user.Stats, error) { return nil, nil }

func testCodec() *token.Codec {
	return token.NewCodec("test-secret", time.Hour)
}

func TestHandleCallback_ExistingUser(t *testing.T) {
	t.Parallel()

	existing := &user.User{
		ID:       uuid.New(),
		GoogleID: "google-123",
		Email:    "sari@example.com",
		Name:     "Sari",
		IsAdmin:  true,
	}

	created := false
	repo := &mockUserRepo{
		getByGoogleIDFn: func(_ context.Context, googleID string) (*user.User, error) {
			assert.Equal(t, "google-123", googleID)
			return existing, nil
		},
		createFn: func(_ context.Context, _ *user.User) error {
			created = true
			return nil
		},
	}
	provider := &fakeProvider{info: &auth.UserInfo{Subject: "google-123", Email: "sari@example.com"}}

	codec := testCodec()
	svc := auth.NewService(provider, repo, codec)

	credential, err := svc.HandleCallback(context.Background(), "code")
	require.NoError(t, err)
	assert.False(t, created, "existing user must not be re-created")

	claims, err := codec.Verify(credential)
	require.NoError(t, err)
	assert.Equal(t, existing.ID.String(), claims.Subject)
	assert.True(t, claims.IsAdmin)
}

func TestHandleCallback_FirstLoginCreatesUser(t *testing.T) {
	t.Parallel()

	newID := uuid.New()
	var createdUser *user.User
	repo := &mockUserRepo{
		getByGoogleIDFn: func(_ context.Context, _ string) (*user.User, error) {
			return nil, user.ErrUserNotFound
		},
		createFn: func(_ context.Context, u *user.User) error {
			u.ID = newID
			createdUser = u
			return nil
		},
	}
	provider := &fakeProvider{info: &auth.UserInfo{
		Subject: "google-456",
		Email:   "budi@example.com",
		Name:    "Budi",
		Picture: "https://example.com/budi.png",
	}}

	codec := testCodec()
	svc := auth.NewService(provider, repo, codec)

	credential, err := svc.HandleCallback(context.Background(), "code")
	require.NoError(t, err)

	require.NotNil(t, createdUser)
	assert.Equal(t, "google-456", createdUser.GoogleID)
	assert.Equal(t, "budi@example.com", createdUser.Email)
	assert.Equal(t, "Budi", createdUser.Name)
	assert.False(t, createdUser.IsAdmin)

	claims, err := codec.Verify(credential)
	require.NoError(t, err)
	assert.Equal(t, newID.String(), claims.Subject)
}

func TestHandleCallback_ExchangeError(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{exchangeErr: errors.New("provider down")}
	repo := &mockUserRepo{
		getByGoogleIDFn: func(_ context.Context, _ string) (*user.User, error) {
			t.Fatal("must not look up user when the exchange fails")
			return nil, nil
		},
	}

	svc := auth.NewService(provider, repo, testCodec())

	_, err := svc.HandleCallback(context.Background(), "code")
	assert.Error(t, err)
}

func TestHandleCallback_RepositoryError(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{
		getByGoogleIDFn: func(_ context.Context, _ string) (*user.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	provider := &fakeProvider{info: &auth.UserInfo{Subject: "google-789"}}

	svc := auth.NewService(provider, repo, testCodec())

	_, err := svc.HandleCallback(context.Background(), "code")
	assert.Error(t, err)
}

func TestLoginURL_PassesState(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{loginURL: "https://accounts.example.com/consent"}
	svc := auth.NewService(provider, &mockUserRepo{}, testCodec())

	assert.Equal(t, "https://accounts.example.com/consent?state=abc", svc.LoginURL("abc"))
}

func TestNewState_Unique(t *testing.T) {
	t.Parallel()

	a, err := auth.NewState()
	require.NoError(t, err)
	b, err := auth.NewState()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
