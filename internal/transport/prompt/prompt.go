// Package prompt mounts the relational storage endpoints. In remote mode the
// library repository consumes these over HTTP; in local mode the router
// mounts them behind a guard that rejects every call.
package prompt

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainprompt "github.com/linhao/promptmaster/internal/domain/prompt"
	"github.com/linhao/promptmaster/internal/port/promptstore"
)

// Register mounts the prompt table REST endpoints on the given router group.
// [SRP] HTTP handler only; persistence behavior lives behind the store port.
func Register(rg *gin.RouterGroup, store promptstore.Store) {
	rg.GET("", list(store))
	rg.POST("", create(store))
	rg.GET("/:id", get(store))
	rg.PUT("/:id", update(store))
	rg.DELETE("/:id", deleteOne(store))
	rg.DELETE("/batch", deleteBatch(store))
	rg.POST("/batch", importBatch(store))
}

func list(store promptstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := store.GetAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "prompts": records})
	}
}

func get(store promptstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := store.GetByID(c.Request.Context(), domainprompt.ID(c.Param("id")))
		if err != nil {
			if errors.Is(err, promptstore.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prompt not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "prompt": rec})
	}
}

type createReq struct {
	domainprompt.Fields
	UserID *int64 `json:"userId"`
}

func create(store promptstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := req.Fields.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		rec, err := store.Create(c.Request.Context(), req.Fields, req.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "prompt": rec})
	}
}

func update(store promptstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch domainprompt.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := patch.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		id := domainprompt.ID(c.Param("id"))
		if _, err := store.Update(c.Request.Context(), id, patch); err != nil {
			if errors.Is(err, promptstore.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "prompt not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		rec, err := store.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "prompt": rec})
	}
}

func deleteOne(store promptstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := []domainprompt.ID{domainprompt.ID(c.Param("id"))}
		deleted, err := store.DeleteMany(c.Request.Context(), ids)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
	}
}

type deleteBatchReq struct {
	IDs []domainprompt.ID `json:"ids" binding:"required"`
}

func deleteBatch(store promptstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req deleteBatchReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		deleted, err := store.DeleteMany(c.Request.Context(), req.IDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
	}
}

type importReq struct {
	Prompts []domainprompt.Fields `json:"prompts" binding:"required"`
	UserID  *int64                `json:"userId"`
	Seed    bool                  `json:"seed"`
}

func importBatch(store promptstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req importReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		// Seed batches preserve the isCustom flag of each item; user imports
		// always mark content custom.
		if !req.Seed {
			for i := range req.Prompts {
				req.Prompts[i].IsCustom = true
			}
		}

		imported, itemErrs, err := store.Import(c.Request.Context(), req.Prompts, req.UserID)
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
