package backend

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the store over the wire contract the aggregation service
// expects: GET /<collection>, GET with exact-match query filters,
// GET/PUT/DELETE /<collection>/<id>, POST /<collection>. Responses are bare
// documents, json-server style, not envelopes.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Register mounts one route group per collection. The set is closed, so the
// routes are explicit rather than a wildcard.
func (h *Handler) Register(r *gin.Engine) {
	for name := range collections {
		group := r.Group("/" + name)
		group.GET("", h.list(name))
		group.POST("", h.create(name))
		group.GET("/:id", h.get(name))
		group.PUT("/:id", h.update(name))
		group.DELETE("/:id", h.remove(name))
	}
}

func (h *Handler) list(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := map[string]string{}
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				filter[key] = values[0]
			}
		}

		docs, err := h.store.List(name, filter)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

func (h *Handler) get(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := h.store.Get(name, c.Param("id"))
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func (h *Handler) create(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc map[string]any
		if err := c.ShouldBindJSON(&doc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		created, err := h.store.Create(name, doc)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (h *Handler) update(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc map[string]any
		if err := c.ShouldBindJSON(&doc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		updated, err := h.store.Update(name, c.Param("id"), doc)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (h *Handler) remove(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.store.Delete(name, c.Param("id")); err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{})
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrNoRecord) {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	log.Printf("❌ store error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
}
