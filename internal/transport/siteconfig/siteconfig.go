// Package siteconfig mounts the site configuration endpoints. Reads are
// public; writes and resets are admin only.
package siteconfig

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domaincfg "github.com/linhao/promptmaster/internal/domain/siteconfig"
	cfgsvc "github.com/linhao/promptmaster/internal/service/siteconfig"
	"github.com/linhao/promptmaster/internal/transport/session"
)

func Register(rg *gin.RouterGroup, svc *cfgsvc.Service) {
	rg.GET("", get(svc))
	rg.PUT("", put(svc))
	rg.DELETE("", reset(svc))
}

func get(svc *cfgsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "config": svc.Get()})
	}
}

func put(svc *cfgsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Role(c).CanManage() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "admin access required"})
			return
		}

		var cfg domaincfg.Config
		if err := c.ShouldBindJSON(&cfg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := svc.Update(c.Request.Context(), cfg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "config": svc.Get()})
	}
}

// reset restores the compiled-in defaults.
func reset(svc *cfgsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Role(c).CanManage() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "admin access required"})
			return
		}
		if err := svc.Update(c.Request.Context(), domaincfg.Default()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "config": svc.Get()})
	}
}
