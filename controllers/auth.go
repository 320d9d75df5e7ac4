package controllers

import (
	"crypto/subtle"
	"net/http"

	"memberly/config"

	"github.com/gin-gonic/gin"
)

// AdminRequired protege rotas administrativas com um token estático
// (header X-Admin-Token). Identidade de usuário final fica fora deste
// backend; isso cobre só a administração de tenants/planos.
func AdminRequired(cfg config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminToken == "" {
			RespondError(c, "admin token não configurado no servidor", http.StatusInternalServerError)
			c.Abort()
			return
		}
		token := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.AdminToken)) != 1 {
			RespondError(c, "forbidden", http.StatusForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
