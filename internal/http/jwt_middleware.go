package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nila-backend/internal/domain"
	"nila-backend/internal/repository"
	"nila-backend/internal/service"
)

const authUserKey = "auth_user"

// JWTAuthMiddleware valida el bearer token y resuelve el subject a un usuario
// existente. Token inválido, expirado o sin usuario registrado: 401.
func JWTAuthMiddleware(jwtSvc *service.JWTService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSvc == nil || users == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		username, err := jwtSvc.ParseToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}

		user, err := users.GetByUsername(c.Request.Context(), username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// GetAuthUser obtiene el usuario autenticado desde el contexto.
func GetAuthUser(c *gin.Context) (domain.User, bool) {
	val, ok := c.Get(authUserKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := val.(domain.User)
	return user, ok
}
