package middleware

import (
	"net/http"

	"github.com/nickksoares/drivetube/services"
	"github.com/nickksoares/drivetube/utils"

	"github.com/gin-gonic/gin"
)

// AccessGate blocks subscriber-only routes. Runs after AuthMiddleware and
// recomputes access on every request, so a freshly expired subscription is
// denied without waiting for a sweep.
func AccessGate(access services.AccessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := access.HasAccess(c.Request.Context(), c.GetUint("user_id"))
		if err != nil {
			if appErr, isApp := err.(*services.AppError); isApp {
				utils.Error(c, appErr.HTTPCode, appErr.Message)
			} else {
				utils.Error(c, http.StatusInternalServerError, "Erro ao verificar acesso")
			}
			c.Abort()
			return
		}
		if !ok {
			utils.Error(c, http.StatusForbidden, "Assinatura necessária para acessar este recurso")
			c.Abort()
			return
		}
		c.Next()
	}
}
