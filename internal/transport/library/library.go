// Package library mounts the application-facing endpoints: the filtered,
// sorted, paged view of the collection and its permission-gated mutations.
package library

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainprompt "github.com/linhao/promptmaster/internal/domain/prompt"
	"github.com/linhao/promptmaster/internal/domain/query"
	"github.com/linhao/promptmaster/internal/port/promptstore"
	favsvc "github.com/linhao/promptmaster/internal/service/favorites"
	libsvc "github.com/linhao/promptmaster/internal/service/library"
	"github.com/linhao/promptmaster/internal/transport/session"
)

func Register(rg *gin.RouterGroup, lib *libsvc.Service, favs *favsvc.Service) {
	rg.GET("", view(lib, favs))
	rg.POST("", create(lib))
	rg.PUT("/:id", update(lib))
	rg.DELETE("", deleteBatch(lib, favs))
	rg.POST("/import", importBatch(lib))
	rg.GET("/export", export(lib))
	rg.POST("/refresh", refresh(lib))
}

func parseCriteria(c *gin.Context) query.Criteria {
	page := 1
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}
	return query.Criteria{
		Category:   domainprompt.Category(c.DefaultQuery("category", "all")),
		Complexity: domainprompt.Complexity(c.DefaultQuery("complexity", "all")),
		Search:     c.Query("q"),
		Sort:       query.Sort(c.DefaultQuery("sort", "latest")),
		Page:       page,
	}
}

func view(lib *libsvc.Service, favs *favsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := parseCriteria(c)
		favorites := favs.MemberSet(session.Username(c))

		res := lib.View(criteria, favorites)
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"prompts":    res.Items,
			"total":      res.Total,
			"totalPages": res.TotalPages,
			"page":       res.Page,
			"window":     res.Window,
			"counts":     res.Counts,
		})
	}
}

func create(lib *libsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Role(c).CanCreate() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "sign in to create prompts"})
			return
		}

		var fields domainprompt.Fields
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		rec, err := lib.Create(c.Request.Context(), fields, session.UserID(c))
		if err != nil {
			status := http.StatusInternalServerError
			if fields.Validate() != nil {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "prompt": rec})
	}
}

func update(lib *libsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := domainprompt.ID(c.Param("id"))
		existing, ok := lib.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prompt not found"})
			return
		}
		if !session.Role(c).CanEdit(existing.IsCustom) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "not allowed to edit this prompt"})
			return
		}

		var patch domainprompt.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		rec, err := lib.Update(c.Request.Context(), id, patch)
		if err != nil {
			if errors.Is(err, promptstore.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prompt not found"})
				return
			}
			if patch.Validate() != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "prompt": rec})
	}
}

type deleteReq struct {
	IDs []domainprompt.ID `json:"ids" binding:"required"`
}

func deleteBatch(lib *libsvc.Service, favs *favsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Role(c).CanManage() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "admin access required"})
			return
		}

		var req deleteReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		deleted, err := lib.Delete(c.Request.Context(), req.IDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := favs.Prune(c.Request.Context(), req.IDs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
	}
}

type importReq struct {
	Prompts []domainprompt.Fields `json:"prompts" binding:"required"`
}

func importBatch(lib *libsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Role(c).CanManage() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "admin access required"})
			return
		}

		var req importReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		for i := range req.Prompts {
			req.Prompts[i].IsCustom = true
		}

		imported, itemErrs, err := lib.Import(c.Request.Context(), req.Prompts, session.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		resp := gin.H{"success": true, "imported": imported}
		if len(itemErrs) > 0 {
			resp["errors"] = itemErrs
		}
		c.JSON(http.StatusOK, resp)
	}
}

// export writes the collection, or the subset named by ?ids=a,b,c, as a JSON
// download.
func export(lib *libsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		records := lib.Export()

		if raw := c.Query("ids"); raw != "" {
			want := make(map[domainprompt.ID]struct{})
			for _, part := range strings.Split(raw, ",") {
				if part = strings.TrimSpace(part); part != "" {
					want[domainprompt.NormalizeID(part)] = struct{}{}
				}
			}
			subset := make([]domainprompt.Record, 0, len(want))
			for _, r := range records {
				if _, ok := want[domainprompt.NormalizeID(r.ID)]; ok {
					subset = append(subset, r)
				}
			}
			records = subset
		}

		c.Header("Content-Disposition", `attachment; filename="prompts.json"`)
		c.JSON(http.StatusOK, records)
	}
}

func refresh(lib *libsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Role(c).CanManage() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "admin access required"})
			return
		}
		if err := lib.Refresh(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
