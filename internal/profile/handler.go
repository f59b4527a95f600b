package profile

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fateshift/internal/auth"
	"fateshift/internal/sync"
	"fateshift/internal/timeline"
	"fateshift/pkg/models"
)

type Handler struct {
	Repo      *Repo
	Hub       *sync.Hub
	Generator *timeline.Generator
	Clock     timeline.Clock
}

func NewHandler(repo *Repo, hub *sync.Hub, gen *timeline.Generator, clock timeline.Clock) *Handler {
	if gen == nil {
		gen = timeline.Default()
	}
	if clock == nil {
		clock = timeline.RealClock{}
	}
	return &Handler{Repo: repo, Hub: hub, Generator: gen, Clock: clock}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profiles", h.list)
	rg.POST("/profiles", h.create)
	rg.GET("/profiles/:id", h.getOne)
	rg.PUT("/profiles/:id", h.update)
	rg.DELETE("/profiles/:id", h.remove)
	rg.GET("/profiles/:id/timeline", h.timeline)
}

type upsertReq struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
	Timezone   string `json:"timezone"`
}

func (req *upsertReq) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.BirthDate = strings.TrimSpace(req.BirthDate)
	req.BirthTime = strings.TrimSpace(req.BirthTime)

	if req.Name == "" || len(req.Name) > 100 {
		return "name must be 1-100 chars"
	}
	if _, err := models.ParseBirthDate(req.BirthDate); err != nil {
		return "birth_date must be a valid YYYY-MM-DD date"
	}
	if req.BirthTime != "" {
		if _, err := time.Parse("15:04", req.BirthTime); err != nil {
			return "birth_time must be HH:MM"
		}
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return "timezone must be a valid IANA name"
		}
	}
	return ""
}

func (h *Handler) create(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	p := models.BirthProfile{
		ID:         uuid.NewString(),
		UserID:     claims.UserID,
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		BirthTime:  req.BirthTime,
		BirthPlace: strings.TrimSpace(req.BirthPlace),
		Timezone:   strings.TrimSpace(req.Timezone),
	}

	if err := h.Repo.Create(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	saved, err := h.Repo.Get(c.Request.Context(), claims.UserID, p.ID)
	if err != nil || saved == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch saved failed"})
		return
	}

	h.broadcast("profile.update", saved)
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) update(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile id required"})
		return
	}

	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	p := models.BirthProfile{
		ID:         id,
		UserID:     claims.UserID,
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		BirthTime:  req.BirthTime,
		BirthPlace: strings.TrimSpace(req.BirthPlace),
		Timezone:   strings.TrimSpace(req.Timezone),
	}

	ok, err := h.Repo.Update(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	saved, err := h.Repo.Get(c.Request.Context(), claims.UserID, id)
	if err != nil || saved == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch saved failed"})
		return
	}

	h.broadcast("profile.update", saved)
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) list(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)

	items, total, err := h.Repo.List(c.Request.Context(), claims.UserID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (h *Handler) getOne(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	p, err := h.Repo.Get(c.Request.Context(), claims.UserID, strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) remove(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile id required"})
		return
	}

	ok, err := h.Repo.Delete(c.Request.Context(), claims.UserID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if h.Hub != nil {
		ev := sync.ProfileEvent{
			Type:      "profile.delete",
			UserID:    claims.UserID,
			ProfileID: id,
			At:        time.Now().UTC(),
		}
		go h.Hub.BroadcastJSON(ev)
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// timeline generates the stored profile's critical periods, returns and
// dasha on demand. Nothing is cached: each call recomputes from the date.
func (h *Handler) timeline(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	p, err := h.Repo.Get(c.Request.Context(), claims.UserID, strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	birth, err := models.ParseBirthDate(p.BirthDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored birth date invalid"})
		return
	}

	currentYear := h.Clock.Now().Year()
	c.JSON(http.StatusOK, gin.H{
		"profile_id":        p.ID,
		"birth_date":        p.BirthDate,
		"critical_periods":  h.Generator.CriticalPeriods(birth),
		"planetary_returns": timeline.PlanetaryReturns(birth, currentYear, nil),
		"dasha_timeline":    timeline.DashaTimeline(birth.Year),
	})
}

func (h *Handler) broadcast(eventType string, p *models.BirthProfile) {
	if h.Hub == nil {
		return
	}
	ev := sync.ProfileEvent{
		Type:      eventType,
		UserID:    p.UserID,
		ProfileID: p.ID,
		BirthDate: p.BirthDate,
		At:        time.Now().UTC(),
	}
	go h.Hub.BroadcastJSON(ev)
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
