package insight

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fateshift/internal/astro"
	"fateshift/internal/ephemeris"
	"fateshift/internal/numerology"
	"fateshift/internal/timeline"
	"fateshift/pkg/models"
)

// Handler serves the public insight endpoints: the combined analysis and
// the individual timeline views. The ephemeris client is optional; when
// absent, the analysis simply omits planet positions.
type Handler struct {
	Generator *timeline.Generator
	Ephemeris *ephemeris.Client
	Clock     timeline.Clock
	Picker    timeline.ThemePicker
}

func NewHandler(gen *timeline.Generator, eph *ephemeris.Client, clock timeline.Clock) *Handler {
	if gen == nil {
		gen = timeline.Default()
	}
	if clock == nil {
		clock = timeline.RealClock{}
	}
	return &Handler{Generator: gen, Ephemeris: eph, Clock: clock}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analysis", h.analysis)
	rg.GET("/timeline", h.timeline)
	rg.GET("/returns", h.returns)
	rg.GET("/dasha", h.dasha)
	rg.GET("/profections", h.profections)
}

type analysisReq struct {
	Date string `json:"date"`          // YYYY-MM-DD, required
	Time string `json:"time"`          // HH:MM, defaults to noon
	TZ   string `json:"tz,omitempty"`  // IANA name, passed through to ephemeris
}

type numerologyResult struct {
	LifePathNumber int                          `json:"life_path_number"`
	Pinnacles      []models.PinnacleOrChallenge `json:"pinnacles"`
	Challenges     []models.PinnacleOrChallenge `json:"challenges"`
}

type analysisResp struct {
	BirthDate        string                           `json:"birth_date"`
	SunSign          string                           `json:"sun_sign"`
	ChineseZodiac    string                           `json:"chinese_zodiac"`
	Numerology       numerologyResult                 `json:"numerology"`
	CriticalPeriods  []models.CriticalPeriod          `json:"critical_periods"`
	PlanetaryReturns []models.PlanetaryReturnEvent    `json:"planetary_returns"`
	DashaTimeline    []models.DashaPeriod             `json:"dasha_timeline"`
	AnnualProfection models.AnnualProfection          `json:"annual_profection"`
	Planets          map[string]models.PlanetPosition `json:"planets,omitempty"`
}

// dashaItem pairs a mahadasha with its antardasha subdivision.
type dashaItem struct {
	models.DashaPeriod
	Antardashas []models.AntardashaPeriod `json:"antardashas"`
}

func (h *Handler) analysis(c *gin.Context) {
	var req analysisReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	birth, err := models.ParseBirthDate(strings.TrimSpace(req.Date))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid YYYY-MM-DD date"})
		return
	}

	hour := 12.0 // noon when no birth time is known
	if t := strings.TrimSpace(req.Time); t != "" {
		parsed, err := time.Parse("15:04", t)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "time must be HH:MM"})
			return
		}
		hour = float64(parsed.Hour()) + float64(parsed.Minute())/60
	}

	currentYear := h.Clock.Now().Year()
	pinnacles, challenges := numerology.PinnaclesAndChallenges(birth.Year, birth.Month, birth.Day)

	resp := analysisResp{
		BirthDate:     birth.String(),
		SunSign:       astro.SunSign(birth),
		ChineseZodiac: astro.ChineseZodiac(birth.Year),
		Numerology: numerologyResult{
			LifePathNumber: numerology.LifePathNumber(birth),
			Pinnacles:      pinnacles,
			Challenges:     challenges,
		},
		CriticalPeriods:  h.Generator.CriticalPeriods(birth),
		PlanetaryReturns: timeline.PlanetaryReturns(birth, currentYear, h.Picker),
		DashaTimeline:    timeline.DashaTimeline(birth.Year),
		AnnualProfection: timeline.AnnualProfection(birth, currentYear),
	}

	if h.Ephemeris != nil {
		positions := h.Ephemeris.Positions(c.Request.Context(), ephemeris.DefaultPlanets, ephemeris.Query{
			Year:  birth.Year,
			Month: birth.Month,
			Day:   birth.Day,
			Hour:  hour,
			TZ:    strings.TrimSpace(req.TZ),
		})
		if len(positions) > 0 {
			resp.Planets = positions
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) timeline(c *gin.Context) {
	birth, ok := h.birthFromQuery(c)
	if !ok {
		return
	}
	periods := h.Generator.CriticalPeriods(birth)
	c.JSON(http.StatusOK, gin.H{
		"birth_date": birth.String(),
		"total":      len(periods),
		"items":      periods,
	})
}

func (h *Handler) returns(c *gin.Context) {
	birth, ok := h.birthFromQuery(c)
	if !ok {
		return
	}
	events := timeline.PlanetaryReturns(birth, h.Clock.Now().Year(), h.Picker)
	c.JSON(http.StatusOK, gin.H{
		"birth_date": birth.String(),
		"total":      len(events),
		"items":      events,
	})
}

func (h *Handler) dasha(c *gin.Context) {
	birth, ok := h.birthFromQuery(c)
	if !ok {
		return
	}
	periods := timeline.DashaTimeline(birth.Year)
	items := make([]dashaItem, 0, len(periods))
	for _, p := range periods {
		items = append(items, dashaItem{DashaPeriod: p, Antardashas: timeline.Antardashas(p)})
	}
	c.JSON(http.StatusOK, gin.H{
		"birth_date": birth.String(),
		"total":      len(items),
		"items":      items,
	})
}

func (h *Handler) profections(c *gin.Context) {
	birth, ok := h.birthFromQuery(c)
	if !ok {
		return
	}
	items := timeline.AnnualProfections(birth, h.Clock.Now().Year())
	c.JSON(http.StatusOK, gin.H{
		"birth_date": birth.String(),
		"total":      len(items),
		"items":      items,
	})
}

func (h *Handler) birthFromQuery(c *gin.Context) (models.BirthDate, bool) {
	birth, err := models.ParseBirthDate(strings.TrimSpace(c.Query("date")))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, models.ErrInvalidDate) {
			c.JSON(status, gin.H{"error": "date must be a valid YYYY-MM-DD date"})
		} else {
			c.JSON(status, gin.H{"error": "date required"})
		}
		return models.BirthDate{}, false
	}
	return birth, true
}
