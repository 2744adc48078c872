package middleware

import (
	"net/http"

	"github.com/nickksoares/drivetube/services"
	"github.com/nickksoares/drivetube/utils"

	"github.com/gin-gonic/gin"
)

// AdminOnly restricts a route to administrator accounts. Runs after
// AuthMiddleware.
func AdminOnly(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Me(c.Request.Context(), c.GetUint("user_id"))
		if err != nil || !user.IsAdmin {
			utils.Error(c, http.StatusForbidden, "Acesso não autorizado")
			c.Abort()
			return
		}
		c.Next()
	}
}
