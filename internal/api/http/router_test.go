package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/parokitomang/content-service/internal/api/http/handlers"
	"github.com/parokitomang/content-service/internal/auth"
	"github.com/parokitomang/content-service/internal/config"
	"github.com/parokitomang/content-service/internal/domain"
	"github.com/parokitomang/content-service/internal/events"
	"github.com/parokitomang/content-service/internal/observability"
	"github.com/parokitomang/content-service/internal/service"
)

const (
	testSecret   = "router-test-secret"
	testEmail    = "joni@email.com"
	testPassword = "joni2#Marjoni"
)

type fakeSliderRepo struct {
	items []domain.SliderItem
}

func (r *fakeSliderRepo) Create(_ context.Context, item *domain.SliderItem) error {
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeSliderRepo) ListActive(_ context.Context) ([]domain.SliderItem, error) {
	out := make([]domain.SliderItem, 0)
	for _, item := range r.items {
		if item.Active {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

type fakeMenuRepo struct {
	items []domain.MenuItem
}

func (r *fakeMenuRepo) Create(_ context.Context, item *domain.MenuItem) error {
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeMenuRepo) ListActive(_ context.Context) ([]domain.MenuItem, error) {
	out := make([]domain.MenuItem, 0)
	for _, item := range r.items {
		if item.Active {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := auth.HashPassword(testPassword, bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.Config{
		App: config.AppConfig{Name: "content-service-test", Version: "test"},
		Auth: config.AuthConfig{
			JWTSecret:             testSecret,
			AccessTokenTTLMinutes: 60,
			BcryptCost:            bcrypt.MinCost,
		},
		Admin: config.AdminConfig{Email: testEmail, PasswordHash: hash},
	}

	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()
	notifications := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notifications.RegisterHandlers()

	credentials := auth.NewStaticCredentialStore(cfg.Admin.Email, cfg.Admin.PasswordHash)
	authService := service.NewAuthService(cfg, credentials)
	contentService := service.NewContentService(cfg, service.ContentDependencies{
		SliderRepo: &fakeSliderRepo{},
		MenuRepo:   &fakeMenuRepo{},
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, nil, nil),
		Auth:           handlers.NewAuthHandler(authService),
		Content:        handlers.NewContentHandler(contentService),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager()),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, resp, &payload)
	return payload.Error.Code
}

func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", map[string]string{
		"email":    testEmail,
		"password": testPassword,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, resp, &payload)
	require.NotEmpty(t, payload.AccessToken)
	require.Equal(t, "bearer", payload.TokenType)
	return payload.AccessToken
}

func bearer(token string) map[string]string {
	return map[string]string{fiber.HeaderAuthorization: "Bearer " + token}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	decodeBody(t, resp, &payload)
	require.Equal(t, "healthy", payload.Status)
	require.False(t, payload.Timestamp.IsZero())
}

func TestReadyReportsMissingDependencies(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/health/ready", nil, nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	require.Equal(t, "DEPENDENCY_UNAVAILABLE", errorCode(t, resp))
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", map[string]string{
		"email":    testEmail,
		"password": testPassword,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, resp, &payload)
	require.NotEmpty(t, payload.AccessToken)
	require.Equal(t, "bearer", payload.TokenType)
	require.Equal(t, testEmail, payload.User.Email)
	require.Equal(t, "admin", payload.User.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", testEmail, "wrong"},
		{"wrong email", "other@email.com", testPassword},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", map[string]string{
				"email":    tc.email,
				"password": tc.password,
			}, nil)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			require.Equal(t, "INVALID_CREDENTIALS", errorCode(t, resp))
		})
	}
}

func TestLoginValidatesPayload(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", map[string]string{"email": testEmail}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMe(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, fiber.MethodGet, "/api/auth/me", nil, bearer(token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	decodeBody(t, resp, &payload)
	require.Equal(t, testEmail, payload.Email)
	require.Equal(t, "admin", payload.Role)
}

func TestMeRejectsBadTokens(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app)

	expiredClaims := jwt.MapClaims{
		"sub": testEmail,
		"exp": jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": testEmail,
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		headers  map[string]string
		wantCode string
	}{
		{"no header", nil, "MISSING_CREDENTIAL"},
		{"wrong scheme", map[string]string{fiber.HeaderAuthorization: "Basic " + token}, "MISSING_CREDENTIAL"},
		{"garbage token", bearer("not-a-token"), "TOKEN_MALFORMED"},
		{"expired token", bearer(expired), "TOKEN_EXPIRED"},
		{"foreign signature", bearer(foreign), "TOKEN_SIGNATURE_INVALID"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodGet, "/api/auth/me", nil, tc.headers)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			require.Equal(t, tc.wantCode, errorCode(t, resp))
		})
	}
}

func TestSliderCreateRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/sliders", map[string]any{
		"image_base64": "aGVsbG8=",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "MISSING_CREDENTIAL", errorCode(t, resp))
}

func TestSliderCreateAndList(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app)

	for _, order := range []int{2, 0, 1} {
		resp := doJSON(t, app, fiber.MethodPost, "/api/sliders", map[string]any{
			"image_base64": "aGVsbG8=",
			"order":        order,
		}, bearer(token))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var created struct {
			ID        string    `json:"id"`
			Order     int       `json:"order"`
			Active    bool      `json:"active"`
			CreatedAt time.Time `json:"created_at"`
		}
		decodeBody(t, resp, &created)
		require.NotEmpty(t, created.ID)
		require.Equal(t, order, created.Order)
		require.True(t, created.Active)
		require.False(t, created.CreatedAt.IsZero())
	}

	inactive := false
	resp := doJSON(t, app, fiber.MethodPost, "/api/sliders", map[string]any{
		"image_base64": "aGVsbG8=",
		"order":        99,
		"active":       inactive,
	}, bearer(token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/sliders", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		Order  int  `json:"order"`
		Active bool `json:"active"`
	}
	decodeBody(t, resp, &items)
	require.Len(t, items, 3)
	for i, item := range items {
		require.Equal(t, i, item.Order)
		require.True(t, item.Active)
	}
}

func TestSliderCreateValidatesPayload(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/sliders", map[string]any{"order": 1}, bearer(token))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_FAILED", errorCode(t, resp))
}

func TestMenuCreateAndList(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app)

	route := "/home"
	resp := doJSON(t, app, fiber.MethodPost, "/api/menus", map[string]any{
		"title": "Home",
		"icon":  "home",
		"route": route,
		"order": 1,
	}, bearer(token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created struct {
		ID    string  `json:"id"`
		Title string  `json:"title"`
		Route *string `json:"route"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Home", created.Title)
	require.NotNil(t, created.Route)
	require.Equal(t, route, *created.Route)

	resp = doJSON(t, app, fiber.MethodGet, "/api/menus", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		Title string `json:"title"`
		Icon  string `json:"icon"`
	}
	decodeBody(t, resp, &items)
	require.Len(t, items, 1)
	require.Equal(t, "Home", items[0].Title)
	require.Equal(t, "home", items[0].Icon)
}

func TestMenuCreateRequiresAuthAndFields(t *testing.T) {
	app := newTestApp(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/menus", map[string]any{"title": "Home", "icon": "home"}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/menus", map[string]any{"title": "Home"}, bearer(token))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
