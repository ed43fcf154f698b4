package middlewares

import (
	"net/http"
	"strings"

	"github.com/azzami13/Mapasset/models"
	"github.com/azzami13/Mapasset/utils"

	"github.com/gin-gonic/gin"
)

// Kunci context yang di-set oleh AuthMiddleware.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token tidak ditemukan"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token tidak valid"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// Tabel kebijakan: operasi -> role minimum. Satu-satunya tempat aturan
// otorisasi didefinisikan; route hanya menyebut nama operasinya.
var operationPolicy = map[string]string{
	"auth.me":               models.RoleViewer,
	"assets.list":           models.RoleViewer,
	"assets.detail":         models.RoleViewer,
	"assets.geojson":        models.RoleViewer,
	"assets.create_point":   models.RoleEditor,
	"assets.create_polygon": models.RoleEditor,
	"assets.update":         models.RoleEditor,
	"assets.delete":         models.RoleEditor,
}

var roleRank = map[string]int{
	models.RoleViewer: 1,
	models.RoleEditor: 2,
	models.RoleAdmin:  3,
}

// Authorize membandingkan role pada sesi dengan role minimum operasinya.
// Dipasang setelah AuthMiddleware.
func Authorize(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		minRole, ok := operationPolicy[operation]
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Operasi tidak dikenal"})
			c.Abort()
			return
		}

		role := c.GetString(CtxRole)
		if roleRank[role] < roleRank[minRole] {
			c.JSON(http.StatusForbidden, gin.H{"error": "Akses ditolak"})
			c.Abort()
			return
		}
		c.Next()
	}
}
