package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"promptly/internal/policy"
	"promptly/pkg/utils"
)

func newGatedRouter(cap policy.Capability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", JWTAuthMiddleware(), RequireCapability(cap), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("user_email")})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuardedRouteRejectsAnonymous(t *testing.T) {
	r := newGatedRouter(policy.CapPromptsManage)

	w := doGet(r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardedRouteRejectsGarbageToken(t *testing.T) {
	r := newGatedRouter(policy.CapPromptsManage)

	w := doGet(r, "not-a-real-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardedRouteForbidsInsufficientRole(t *testing.T) {
	r := newGatedRouter(policy.CapPromptsManage)

	token, err := utils.CreateToken(uuid.New(), "member@example.com", policy.RoleUser)
	require.NoError(t, err)

	w := doGet(r, token)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGuardedRouteAdmitsGrantedRole(t *testing.T) {
	r := newGatedRouter(policy.CapBlogAuthor)

	token, err := utils.CreateToken(uuid.New(), "editor@example.com", policy.RoleEditor)
	require.NoError(t, err)

	w := doGet(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "editor@example.com")
}

func TestOptionalAuthPassesAnonymousThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/open", OptionalAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	req := httptest.NewRequest(http.MethodPost, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthAttachesPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/open", OptionalAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	userID := uuid.New()
	token, err := utils.CreateToken(userID, "member@example.com", policy.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), userID.String())
}
