package auth_test

import (
	"context"
	"testing"
	"time"

	"inkpost/auth"
	"inkpost/store"
	"inkpost/store/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key"

func newService(ttl time.Duration) (*auth.Service, *memstore.Store) {
	users := memstore.New()
	return auth.NewService(users, testSecret, bcrypt.MinCost, ttl), users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newService(time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.ID)

	token, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newService(time.Hour)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"missing username", "", "secret1"},
		{"missing password", "bob", ""},
		{"blank username", "   ", "secret1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, auth.ErrInvalid)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, users := newService(time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "different")
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)

	// No second row behind the duplicate failure.
	u, err := users.GetUserByName(ctx, "alice")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))
}

func TestPasswordStoredHashed(t *testing.T) {
	svc, users := newService(time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	u, err := users.GetUserByName(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newService(time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, auth.ErrBadCredentials)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	svc, _ := newService(-time.Minute)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, auth.ErrBadToken)
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	svc, _ := newService(time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	// Flip one character of the signature.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.VerifyToken(string(tampered))
	assert.ErrorIs(t, err, auth.ErrBadToken)
}

func TestVerifyTokenRejectsGarbageAndWrongSecret(t *testing.T) {
	svc, users := newService(time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.VerifyToken("")
	assert.ErrorIs(t, err, auth.ErrBadToken)

	_, err = svc.VerifyToken("not.a.jwt")
	assert.ErrorIs(t, err, auth.ErrBadToken)

	other := auth.NewService(users, "other-secret", bcrypt.MinCost, time.Hour)
	token, err := other.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, auth.ErrBadToken)
}
