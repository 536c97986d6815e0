package middleware

import (
	"net/http"

	"github.com/pici355/Match-predictory-sub000/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionUserKey is the session field holding the logged-in user's id.
const SessionUserKey = "user_id"

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw := session.Get(SessionUserKey)
		if raw == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "autenticazione richiesta"})
			return
		}

		userID, ok := raw.(uint)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sessione non valida"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// AdminRequired assumes AuthRequired already ran and resolves the user's
// admin flag from the database on every request.
func AdminRequired(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		user, err := authService.GetUser(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "autenticazione richiesta"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "operazione riservata agli amministratori"})
			return
		}
		c.Next()
	}
}
