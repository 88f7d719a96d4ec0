// Package admin mounts the admin panel endpoints.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authsvc "github.com/linhao/promptmaster/internal/service/auth"
	"github.com/linhao/promptmaster/internal/transport/session"
)

func Register(rg *gin.RouterGroup, svc *authsvc.Service) {
	rg.GET("/user-count", userCount(svc))
}

func userCount(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Role(c).CanManage() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "admin access required"})
			return
		}

		count, err := svc.UserCount(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
	}
}
