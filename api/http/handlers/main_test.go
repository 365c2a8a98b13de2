package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	apihttp "github.com/yohanpasi/storefront/api/http"
	"github.com/yohanpasi/storefront/api/http/handlers"
	"github.com/yohanpasi/storefront/pkg/auth"
	"github.com/yohanpasi/storefront/pkg/catalog"
	"github.com/yohanpasi/storefront/pkg/health"
	"github.com/yohanpasi/storefront/pkg/security/jwt"
)

// --- fakes ---

type memUserRepo struct {
	users map[string]auth.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]auth.User{}} }

func (m *memUserRepo) Create(ctx context.Context, u auth.User) error {
	if _, ok := m.users[u.Email]; ok {
		return auth.ErrEmailTaken
	}
	for _, existing := range m.users {
		if existing.UserName == u.UserName {
			return auth.ErrUserNameTaken
		}
	}
	m.users[u.Email] = u
	return nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	u, ok := m.users[auth.NormalizeEmail(email)]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

type memProductRepo struct {
	products map[uuid.UUID]catalog.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[uuid.UUID]catalog.Product{}}
}

func (m *memProductRepo) Create(ctx context.Context, p catalog.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *memProductRepo) GetByID(ctx context.Context, id uuid.UUID) (catalog.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

func (m *memProductRepo) List(ctx context.Context, limit, offset int) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProductRepo) Update(ctx context.Context, p catalog.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return catalog.ErrNotFound
	}
	m.products[p.ID] = p
	return nil
}

func (m *memProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.products[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	return f.url, f.err
}

// --- app setup ---

type testEnv struct {
	app *fiber.App
	gen *jwt.Generator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gen := jwt.NewGenerator("test-secret", 30*time.Minute)

	authUC := auth.NewAuthService(newMemUserRepo(), gen)
	catalogUC := catalog.NewService(newMemProductRepo())
	uploader := &fakeUploader{url: "https://cdn.example.com/images/2026/1/1/shoe.png"}

	app := fiber.New()
	apihttp.Register(app,
		handlers.NewAuthHandler(authUC),
		handlers.NewProductHandler(catalogUC),
		handlers.NewUploadHandler(uploader),
		handlers.NewHealthHandler(health.NewService()),
		jwt.NewAuthMiddleware(gen),
	)
	return &testEnv{app: app, gen: gen}
}

// mintCookie fabricates a session cookie directly; used where a role other
// than the registration default is needed.
func (e *testEnv) mintCookie(t *testing.T, role auth.Role) *http.Cookie {
	t.Helper()
	token, err := e.gen.Issue(context.Background(), auth.User{ID: uuid.New(), Role: role})
	require.NoError(t, err)
	return &http.Cookie{Name: jwt.CookieName, Value: token}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == jwt.CookieName {
			return c
		}
	}
	return nil
}
