package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/azzami13/Mapasset/models"
	"github.com/azzami13/Mapasset/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(operation string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/guarded", AuthMiddleware(), Authorize(operation), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(1, "tester", role, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	utils.SecretKey = []byte("secret-untuk-test")
	r := setupRouter("assets.update")

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	utils.SecretKey = []byte("secret-untuk-test")
	r := setupRouter("assets.update")

	w := doRequest(r, "token-ngawur")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorizeMutationByRole(t *testing.T) {
	utils.SecretKey = []byte("secret-untuk-test")
	r := setupRouter("assets.update")

	cases := []struct {
		role string
		want int
	}{
		{models.RoleViewer, http.StatusForbidden},
		{models.RoleEditor, http.StatusOK},
		{models.RoleAdmin, http.StatusOK},
	}
	for _, tc := range cases {
		w := doRequest(r, tokenFor(t, tc.role))
		assert.Equal(t, tc.want, w.Code, "role %s", tc.role)
	}
}

func TestAuthorizeReadAllowsViewer(t *testing.T) {
	utils.SecretKey = []byte("secret-untuk-test")
	r := setupRouter("assets.list")

	w := doRequest(r, tokenFor(t, models.RoleViewer))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorizeUnknownOperation(t *testing.T) {
	utils.SecretKey = []byte("secret-untuk-test")
	r := setupRouter("assets.nuke")

	w := doRequest(r, tokenFor(t, models.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthorizeUnknownRoleDenied(t *testing.T) {
	utils.SecretKey = []byte("secret-untuk-test")
	r := setupRouter("assets.update")

	w := doRequest(r, tokenFor(t, "SUPERUSER"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
