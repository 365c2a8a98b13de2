package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(userName, email, password string) map[string]any {
	return map[string]any{"userName": userName, "email": email, "password": password}
}

func login(email, password string) map[string]any {
	return map[string]any{"email": email, "password": password}
}

func TestRegisterLoginCheckAuthFlow(t *testing.T) {
	env := newTestEnv(t)

	// Register with un-normalized email.
	resp := env.do(t, http.MethodPost, "/api/auth/register",
		register("alice", "Alice@Example.com ", "secret1"), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["success"])

	// Login with the normalized variant.
	resp = env.do(t, http.MethodPost, "/api/auth/login",
		login("alice@example.com", "secret1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "login must set the session cookie")

	body := decodeBody(t, resp)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "alice", user["userName"])
	assert.Equal(t, "alice@example.com", user["email"])

	// Check-auth with the returned cookie.
	resp = env.do(t, http.MethodGet, "/api/auth/check-auth", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	user, ok = body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user", user["role"])

	// Same cookie against an admin-scoped path.
	resp = env.do(t, http.MethodGet, "/api/admin/product/get", nil, cookie)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/register",
		register("alice", "alice@example.com", "secret1"), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Variant differing only in case/whitespace.
	resp = env.do(t, http.MethodPost, "/api/auth/register",
		register("alice2", " ALICE@example.com", "secret2"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email is already registered.", decodeBody(t, resp)["message"])
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/register",
		register("bob", "bob@example.com", "12345"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/auth/register",
		register("bob", "not-an-email", "secret1"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginFailuresShareOneShape(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/register",
		register("alice", "alice@example.com", "secret1"), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	wrongPassword := env.do(t, http.MethodPost, "/api/auth/login",
		login("alice@example.com", "wrong"), nil)
	unknownEmail := env.do(t, http.MethodPost, "/api/auth/login",
		login("nobody@example.com", "secret1"), nil)

	assert.Equal(t, http.StatusBadRequest, wrongPassword.StatusCode)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.StatusCode)
	assert.Equal(t, decodeBody(t, wrongPassword)["message"], decodeBody(t, unknownEmail)["message"],
		"login failures must not reveal whether the email exists")
}

func TestLoginCookieFlags(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/register",
		register("alice", "alice@example.com", "secret1"), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/auth/login",
		login("alice@example.com", "secret1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.False(t, cookie.Secure, "not secure over plain-text transport")
	assert.NotEmpty(t, cookie.Value)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/register",
		register("alice", "alice@example.com", "secret1"), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = env.do(t, http.MethodPost, "/api/auth/login",
		login("alice@example.com", "secret1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)

	resp = env.do(t, http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cleared := sessionCookie(resp)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	// Logout is idempotent without a session.
	resp = env.do(t, http.MethodPost, "/api/auth/logout", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The client no longer holds a cookie: check-auth fails.
	resp = env.do(t, http.MethodGet, "/api/auth/check-auth", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
