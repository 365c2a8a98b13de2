package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohanpasi/storefront/pkg/auth"
)

func testUser(role auth.Role) auth.User {
	return auth.User{ID: uuid.New(), UserName: "alice", Email: "alice@example.com", Role: role}
}

func TestIssueAndVerify(t *testing.T) {
	g := NewGenerator("test-secret", 30*time.Minute)
	user := testUser(auth.RoleShopper)

	token, err := g.Issue(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := g.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, string(auth.RoleShopper), claims.Role)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyExpired(t *testing.T) {
	g := NewGenerator("test-secret", -time.Minute)
	token, err := g.Issue(context.Background(), testUser(auth.RoleShopper))
	require.NoError(t, err)

	_, err = g.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	g := NewGenerator("test-secret", 30*time.Minute)
	token, err := g.Issue(context.Background(), testUser(auth.RoleAdmin))
	require.NoError(t, err)

	other := NewGenerator("another-secret", 30*time.Minute)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyMalformed(t *testing.T) {
	g := NewGenerator("test-secret", 30*time.Minute)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := g.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestVerifyTampered(t *testing.T) {
	g := NewGenerator("test-secret", 30*time.Minute)
	token, err := g.Issue(context.Background(), testUser(auth.RoleShopper))
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = g.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
