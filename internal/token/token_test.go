package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warnaku/warnaku/internal/token"
	"github.com/warnaku/warnaku/internal/user"
)

func sampleUser(isAdmin bool) *user.User {
	return &user.User{
		ID:      uuid.New(),
		Email:   "budi@example.com",
		Name:    "Budi Santoso",
		Picture: "https://example.com/budi.png",
		IsAdmin: isAdmin,
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec("test-secret", time.Hour)
	u := sampleUser(true)

	signed, err := codec.Issue(u)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := codec.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, u.ID.String(), claims.Subject)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, u.Name, claims.Name)
	assert.Equal(t, u.Picture, claims.Picture)
	assert.True(t, claims.IsAdmin)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec("test-secret", -time.Minute)

	signed, err := codec.Issue(sampleUser(false))
	require.NoError(t, err)

	// A correctly signed but expired token must fail as expired, not invalid.
	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := token.NewCodec("secret-a", time.Hour)
	verifier := token.NewCodec("secret-b", time.Hour)

	signed, err := issuer.Issue(sampleUser(false))
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec("test-secret", time.Hour)

	_, err := codec.Verify("not-a-token")
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestDecodeUnverified_IgnoresSignature(t *testing.T) {
	t.Parallel()

	issuer := token.NewCodec("secret-the-client-never-knows", time.Hour)
	u := sampleUser(true)

	signed, err := issuer.Issue(u)
	require.NoError(t, err)

	claims, err := token.DecodeUnverified(signed)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.Subject)
	assert.True(t, claims.IsAdmin)
}

func TestDecodeUnverified_Expired(t *testing.T) {
	t.Parallel()

	issuer := token.NewCodec("secret", -time.Minute)

	signed, err := issuer.Issue(sampleUser(false))
	require.NoError(t, err)

	_, err = token.DecodeUnverified(signed)
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestDecodeUnverified_Malformed(t *testing.T) {
	t.Parallel()

	_, err := token.DecodeUnverified("garbage")
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}
