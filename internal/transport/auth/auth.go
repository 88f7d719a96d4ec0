// Package auth mounts the login, registration and session endpoints.
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authsvc "github.com/linhao/promptmaster/internal/service/auth"
	favsvc "github.com/linhao/promptmaster/internal/service/favorites"
	cfgsvc "github.com/linhao/promptmaster/internal/service/siteconfig"
	"github.com/linhao/promptmaster/internal/transport/session"
)

func Register(rg *gin.RouterGroup, svc *authsvc.Service, cfg *cfgsvc.Service, favs *favsvc.Service) {
	rg.POST("/login", login(svc, favs))
	rg.POST("/register", register(svc, cfg))
	rg.POST("/logout", logout(svc))
	rg.GET("/session", currentSession())
	rg.POST("/announcement-seen", announcementSeen(svc))
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func login(svc *authsvc.Service, favs *favsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		token, sess, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrBadCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"token":     token,
			"user":      sess,
			"favorites": favs.IDs(sess.Username),
		})
	}
}

type registerReq struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Email      string `json:"email" binding:"required"`
	InviteCode string `json:"inviteCode"`
}

func register(svc *authsvc.Service, cfg *cfgsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		enabled, inviteRequired, inviteCode := cfg.RegistrationPolicy()
		policy := authsvc.RegistrationPolicy{
			Enabled:        enabled,
			InviteRequired: inviteRequired,
			InviteCode:     inviteCode,
		}

		sess, err := svc.Register(c.Request.Context(), policy, req.Username, req.Password, req.Email, req.InviteCode)
		if err != nil {
			switch {
			case errors.Is(err, authsvc.ErrUsernameTaken):
				c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
			case errors.Is(err, authsvc.ErrRegisterArgs),
				errors.Is(err, authsvc.ErrRegisterClosed),
				errors.Is(err, authsvc.ErrBadInviteCode),
				errors.Is(err, authsvc.ErrNoRegistration):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "user": sess})
	}
}

func logout(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := session.Token(c); token != "" {
			svc.Logout(token)
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func currentSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Current(c)
		if sess == nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": sess})
	}
}

func announcementSeen(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.Token(c)
		if token == "" || session.Current(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "sign in first"})
			return
		}
		svc.MarkAnnouncementSeen(token)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
