package reading

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fateshift/internal/astro"
	"fateshift/internal/auth"
	"fateshift/internal/numerology"
	"fateshift/internal/profile"
	"fateshift/internal/sync"
	"fateshift/pkg/models"
)

type Handler struct {
	Repo     *Repo
	Profiles *profile.Repo
	Hub      *sync.Hub
}

func NewHandler(repo *Repo, profiles *profile.Repo, hub *sync.Hub) *Handler {
	return &Handler{Repo: repo, Profiles: profiles, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/readings", h.list)
	rg.POST("/readings", h.create)
	rg.DELETE("/readings/:id", h.remove)
}

type createReq struct {
	ProfileID string `json:"profile_id"`
	Note      string `json:"note"`
}

// create snapshots the classification trio for a stored profile and saves
// it with the user's note. The heavier timeline output is recomputed on
// demand rather than persisted.
func (h *Handler) create(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	req.ProfileID = strings.TrimSpace(req.ProfileID)
	if req.ProfileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile_id required"})
		return
	}
	if len(req.Note) > 2000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "note must be at most 2000 chars"})
		return
	}

	p, err := h.Profiles.Get(c.Request.Context(), claims.UserID, req.ProfileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get profile failed"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	birth, err := models.ParseBirthDate(p.BirthDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored birth date invalid"})
		return
	}

	saved, err := h.Repo.Create(c.Request.Context(), models.Reading{
		UserID:        claims.UserID,
		ProfileID:     p.ID,
		SunSign:       astro.SunSign(birth),
		LifePath:      numerology.LifePathNumber(birth),
		ChineseZodiac: astro.ChineseZodiac(birth.Year),
		Note:          strings.TrimSpace(req.Note),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	if h.Hub != nil {
		ev := sync.ReadingEvent{
			Type:      "reading.save",
			UserID:    claims.UserID,
			ReadingID: saved.ID,
			ProfileID: saved.ProfileID,
			SunSign:   saved.SunSign,
			At:        time.Now().UTC(),
		}
		go h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) list(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)

	items, err := h.Repo.ListByUser(c.Request.Context(), claims.UserID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (h *Handler) remove(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reading id"})
		return
	}

	ok, err := h.Repo.Delete(c.Request.Context(), id, claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if h.Hub != nil {
		ev := sync.ReadingEvent{
			Type:      "reading.delete",
			UserID:    claims.UserID,
			ReadingID: id,
			At:        time.Now().UTC(),
		}
		go h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
