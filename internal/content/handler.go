package content

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:category", h.list)        // GET /content/signs
	rg.GET("/:category/:name", h.getOne) // GET /content/signs/aries
}

func (h *Handler) list(c *gin.Context) {
	category := c.Param("category")
	entries := h.Store.List(category)
	if entries == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"total":    len(entries),
		"items":    entries,
	})
}

func (h *Handler) getOne(c *gin.Context) {
	category := c.Param("category")
	name := c.Param("name")

	e, ok := h.Store.Lookup(category, name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}
