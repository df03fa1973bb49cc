package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-system/pkg/config"
	"hr-system/pkg/contextkeys"
	"hr-system/pkg/service"
)

func testAuthMiddleware(t *testing.T) (*AuthMiddleware, service.JWTService) {
	t.Helper()
	jwtSvc := service.NewJWTService(config.JWTConfig{
		SecretKey:      "test-tajna",
		Issuer:         "hr-system",
		Audience:       "hr-system-client",
		AccessTokenTTL: time.Hour,
	}, zap.NewNop())
	return NewAuthMiddleware(jwtSvc, zap.NewNop()), jwtSvc
}

func echoCtx(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidanToken(t *testing.T) {
	mw, jwtSvc := testAuthMiddleware(t)
	zaposleniID := 7
	token, _, err := jwtSvc.GenerateToken(42, "petar", "petar@firma.local", "Zaposleni", &zaposleniID)
	require.NoError(t, err)

	c, _ := echoCtx("Bearer " + token)
	pozvan := false
	handler := mw.Auth(func(c echo.Context) error {
		pozvan = true
		ctx := c.Request().Context()
		assert.Equal(t, 42, ctx.Value(contextkeys.UserIDKey))
		assert.Equal(t, "Zaposleni", ctx.Value(contextkeys.UserRoleKey))
		assert.Equal(t, 7, ctx.Value(contextkeys.ZaposleniIDKey))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, pozvan)
}

func TestAuth_BezZaglavlja(t *testing.T) {
	mw, _ := testAuthMiddleware(t)

	c, rec := echoCtx("")
	handler := mw.Auth(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_NeispravanFormat(t *testing.T) {
	mw, jwtSvc := testAuthMiddleware(t)
	token, _, err := jwtSvc.GenerateToken(1, "admin", "a@b.c", "SuperAdmin", nil)
	require.NoError(t, err)

	c, rec := echoCtx("Token " + token)
	handler := mw.Auth(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_NevazeciToken(t *testing.T) {
	mw, _ := testAuthMiddleware(t)

	c, rec := echoCtx("Bearer nevazeci.token")
	handler := mw.Auth(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles(t *testing.T) {
	mw, jwtSvc := testAuthMiddleware(t)
	token, _, err := jwtSvc.GenerateToken(1, "jelena", "j@firma.local", "HRManager", nil)
	require.NoError(t, err)

	naredni := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	c, rec := echoCtx("Bearer " + token)
	handler := mw.Auth(mw.RequireRoles("SuperAdmin", "HRManager")(naredni))
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = echoCtx("Bearer " + token)
	handler = mw.Auth(mw.RequireRoles("SuperAdmin")(naredni))
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
