// Package favorites mounts the per-user favorites endpoints. Reads are open
// and empty for guests; mutations require a signed-in user.
package favorites

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainprompt "github.com/linhao/promptmaster/internal/domain/prompt"
	favsvc "github.com/linhao/promptmaster/internal/service/favorites"
	"github.com/linhao/promptmaster/internal/transport/session"
)

func Register(rg *gin.RouterGroup, svc *favsvc.Service) {
	rg.GET("", list(svc))
	rg.POST("", replace(svc))
	rg.POST("/toggle", toggle(svc))
}

func list(svc *favsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"favorites": svc.IDs(session.Username(c)),
		})
	}
}

type replaceReq struct {
	IDs []domainprompt.ID `json:"ids" binding:"required"`
}

func replace(svc *favsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req replaceReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := svc.Replace(c.Request.Context(), session.Username(c), req.IDs); err != nil {
			if errors.Is(err, favsvc.ErrNotLoggedIn) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "favorites": svc.IDs(session.Username(c))})
	}
}

type toggleReq struct {
	ID domainprompt.ID `json:"id" binding:"required"`
}

func toggle(svc *favsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req toggleReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		nowFavorite, err := svc.Toggle(c.Request.Context(), session.Username(c), req.ID)
		if err != nil {
			if errors.Is(err, favsvc.ErrNotLoggedIn) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "favorite": nowFavorite})
	}
}
