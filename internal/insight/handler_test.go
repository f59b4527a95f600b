package insight

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fateshift/internal/timeline"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := timeline.FixedClock{T: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	h := NewHandler(nil, nil, clock)

	r := gin.New()
	h.RegisterRoutes(r.Group("/insights"))
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalysis(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/insights/analysis", `{"date":"1990-03-15"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp analysisResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "1990-03-15", resp.BirthDate)
	assert.Equal(t, "Pisces", resp.SunSign)
	assert.Equal(t, "Horse", resp.ChineseZodiac)
	assert.Equal(t, 1, resp.Numerology.LifePathNumber) // 1+9+9+3+1+5 = 28 -> 10 -> 1
	assert.Len(t, resp.Numerology.Pinnacles, 4)
	assert.Len(t, resp.Numerology.Challenges, 4)
	assert.NotEmpty(t, resp.CriticalPeriods)
	assert.NotEmpty(t, resp.PlanetaryReturns)
	assert.Len(t, resp.DashaTimeline, 9)
	// fixed clock year 2025, born 1990: age 35 profects the 12th house
	assert.Equal(t, 35, resp.AnnualProfection.Age)
	assert.Equal(t, 12, resp.AnnualProfection.House)
	assert.Nil(t, resp.Planets) // no ephemeris client wired
}

func TestAnalysisBadRequests(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "birthdate=1990"},
		{"missing date", `{}`},
		{"malformed date", `{"date":"15/03/1990"}`},
		{"impossible date", `{"date":"1990-02-30"}`},
		{"bad time", `{"date":"1990-03-15","time":"25:99"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/insights/analysis", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestTimelineEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/insights/timeline?date=1990-03-15", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		BirthDate string `json:"birth_date"`
		Total     int    `json:"total"`
		Items     []struct {
			Label     string `json:"label"`
			RiskLevel string `json:"risk_level"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "1990-03-15", resp.BirthDate)
	assert.Equal(t, 26, resp.Total)
	assert.Len(t, resp.Items, 26)
}

func TestReturnsEndpointUsesClock(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/insights/returns?date=1990-03-15", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// horizon is fixed-clock year 2025 + 50
	assert.Equal(t, 20, resp.Total)
}

func TestDashaEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/insights/dasha?date=1990-03-15", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total int `json:"total"`
		Items []struct {
			Lord        string `json:"lord"`
			StartYear   int    `json:"start_year"`
			Antardashas []struct {
				Lord      string  `json:"lord"`
				MajorLord string  `json:"major_lord"`
				StartYear float64 `json:"start_year"`
			} `json:"antardashas"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 9, resp.Total)
	assert.Equal(t, "Ketu", resp.Items[0].Lord)
	assert.Equal(t, 1990, resp.Items[0].StartYear)

	require.Len(t, resp.Items[0].Antardashas, 9)
	assert.Equal(t, "Ketu", resp.Items[0].Antardashas[0].Lord)
	assert.Equal(t, "Ketu", resp.Items[0].Antardashas[0].MajorLord)
	assert.InDelta(t, 1990.0, resp.Items[0].Antardashas[0].StartYear, 1e-9)
	assert.Equal(t, "Saturn", resp.Items[7].Antardashas[0].Lord)
}

func TestProfectionsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/insights/profections?date=1990-03-15", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total int `json:"total"`
		Items []struct {
			Age    int      `json:"age"`
			Year   int      `json:"year"`
			House  int      `json:"house"`
			Topics []string `json:"topics"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Total)
	// fixed clock year 2025: age 35 -> 12th house
	assert.Equal(t, 2025, resp.Items[0].Year)
	assert.Equal(t, 35, resp.Items[0].Age)
	assert.Equal(t, 12, resp.Items[0].House)
	assert.Contains(t, resp.Items[0].Topics, "isolation")
}

func TestQueryDateValidation(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/insights/timeline",
		"/insights/timeline?date=bogus",
		"/insights/returns?date=1990-13-01",
		"/insights/dasha?date=",
		"/insights/profections?date=1990-02-30",
	} {
		w := doRequest(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}
