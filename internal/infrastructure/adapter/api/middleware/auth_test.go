package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/token"
	coremocks "github.com/agrikarbon/carbon-marketplace/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(t *testing.T, clock *coremocks.FixedClock, allowed ...entity.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewJWTManager("test-secret", token.DefaultTTL, clock)
	require.NoError(t, err)

	router := gin.New()
	group := router.Group("/protected", Auth(tokens))
	if len(allowed) > 0 {
		group.Use(RequireRoles(allowed...))
	}
	group.GET("", func(c *gin.Context) {
		id, _ := SessionUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.String()})
	})
	return router
}

func issueToken(t *testing.T, clock *coremocks.FixedClock, role entity.Role) string {
	t.Helper()
	tokens, err := token.NewJWTManager("test-secret", token.DefaultTTL, clock)
	require.NoError(t, err)
	raw, err := tokens.Issue(uuid.New(), role)
	require.NoError(t, err)
	return raw
}

func TestAuthMiddleware(t *testing.T) {
	clock := coremocks.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	t.Run("rejects a missing bearer token", func(t *testing.T) {
		router := newProtectedRouter(t, clock)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		router := newProtectedRouter(t, clock)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an expired session", func(t *testing.T) {
		clock := coremocks.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
		raw := issueToken(t, clock, entity.RoleFarmer)
		clock.Advance(8 * 24 * time.Hour)

		router := newProtectedRouter(t, clock)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+raw)

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("passes a valid session through", func(t *testing.T) {
		router := newProtectedRouter(t, clock)
		raw := issueToken(t, clock, entity.RoleFarmer)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+raw)

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	clock := coremocks.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	t.Run("blocks a company token on a farmer route", func(t *testing.T) {
		router := newProtectedRouter(t, clock, entity.RoleFarmer)
		raw := issueToken(t, clock, entity.RoleCompany)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+raw)

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Insufficient role")
	})

	t.Run("blocks a farmer token on an admin route", func(t *testing.T) {
		router := newProtectedRouter(t, clock, entity.RoleAdmin)
		raw := issueToken(t, clock, entity.RoleFarmer)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+raw)

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admits a matching role", func(t *testing.T) {
		router := newProtectedRouter(t, clock, entity.RoleAdmin)
		raw := issueToken(t, clock, entity.RoleAdmin)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+raw)

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
