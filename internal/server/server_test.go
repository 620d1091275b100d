package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"photobooking/internal/database"
	"photobooking/internal/metrics"
	"photobooking/internal/modules/booking"
	"photobooking/internal/modules/catalog"
	"photobooking/internal/modules/gallery"
	"photobooking/internal/modules/session"
	"photobooking/internal/pkg/jwt"
	"photobooking/internal/repository"
)

const opsToken = "ops-test-token"

type TestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type suite struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupSuite(t *testing.T) *suite {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	db, err := database.Connect(":memory:", log)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	seed, err := catalog.LoadFile(filepath.Join("..", "..", "configs", "catalog.yaml"))
	require.NoError(t, err)

	photographerRepo := repository.NewPhotographerRepository(db)
	require.NoError(t, photographerRepo.Upsert(context.Background(), seed.Photographers))
	bookingRepo := repository.NewBookingRepository(db)

	m := metrics.New()
	catalogService := catalog.NewService(photographerRepo, seed.Services, nil, 0, log)
	bookingService := booking.NewService(bookingRepo, photographerRepo, nil, m, log)
	galleryService := gallery.NewService(nil, nil, "http://localhost:5000", log)

	r, err := NewRouter(Deps{
		DB:       db,
		Log:      log,
		Metrics:  m,
		Sessions: session.NewManager(jwt.New("test_secret_key_32_characters_min", time.Hour), false, log),
		Catalog:  catalogService,
		Bookings: bookingService,
		Gallery:  galleryService,
		OpsToken: opsToken,
	})
	require.NoError(t, err)

	return &suite{router: r, db: db}
}

func (s *suite) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *suite) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func (s *suite) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req, cookies...)
}

func (s *suite) ops(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+opsToken)
	return s.do(req)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) TestResponse {
	t.Helper()
	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPublicPages(t *testing.T) {
	s := setupSuite(t)

	w := s.get("/photographers")
	require.Equal(t, http.StatusOK, w.Code)
	for _, name := range []string{"John Doe", "Jane Smith", "Sam Wilson", "Priya Patel", "Alex Kim", "Maria Garcia"} {
		assert.Contains(t, w.Body.String(), name)
	}

	w = s.get("/services")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Family Portraits")

	w = s.get("/book")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="ph-001"`)

	assert.Equal(t, http.StatusOK, s.get("/success").Code)
	assert.Equal(t, http.StatusNotFound, s.get("/nope").Code)
	assert.Equal(t, http.StatusOK, s.get("/static/style.css").Code)
}

func TestLoginLogoutFlow(t *testing.T) {
	s := setupSuite(t)

	w := s.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/login"`)
	assert.NotContains(t, w.Body.String(), `href="/logout"`)

	w = s.postForm("/login", url.Values{"email": {"anyone@example.com"}, "password": {"anything"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	w = s.get("/", cookie)
	assert.Contains(t, w.Body.String(), `href="/logout"`)

	w = s.get("/logout", cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	cleared := w.Result().Cookies()[0]

	w = s.get("/", cleared)
	assert.NotContains(t, w.Body.String(), `href="/logout"`)

	w = s.postForm("/register", url.Values{"email": {"new@example.com"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestBookingFlow(t *testing.T) {
	s := setupSuite(t)

	form := url.Values{
		"event_type":      {"Wedding"},
		"start_date":      {"2026-12-01"},
		"end_date":        {"2026-12-01"},
		"user_name":       {"Asha Rao"},
		"email":           {"asha@example.com"},
		"phone":           {"9876543210"},
		"package":         {"Premium"},
		"photographer_id": {"ph-003"},
		"payment_method":  {"card"},
	}
	for i := 0; i < 2; i++ {
		w := s.postForm("/book", form)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/success", w.Header().Get("Location"))
	}

	var count int64
	require.NoError(t, s.db.Table("bookings").Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// bookings never flip catalog availability
	w := s.get("/photographers")
	assert.Contains(t, w.Body.String(), "Booked")

	w = s.ops(http.MethodGet, "/api/v1/ops/bookings")
	require.Equal(t, http.StatusOK, w.Code)
	var list booking.ListBookingsResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	require.Equal(t, 2, list.Count)
	assert.NotEqual(t, list.Bookings[0].BookingID, list.Bookings[1].BookingID)
	assert.Equal(t, "", list.Bookings[0].SpecialRequests)

	w = s.get("/metrics")
	assert.Contains(t, w.Body.String(), `photobooking_bookings_submitted_total{result="success"} 2`)
}

func TestOpsEndpoints(t *testing.T) {
	s := setupSuite(t)

	w := s.get("/api/v1/ops/bookings")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_MISSING", decode(t, w).Error.Code)

	w = s.ops(http.MethodPost, "/api/v1/ops/bookings/unknown/confirm")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = s.ops(http.MethodPost, "/api/v1/ops/galleries/wedding_001")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "STORAGE_DISABLED", decode(t, w).Error.Code)
}

func TestHealthz(t *testing.T) {
	s := setupSuite(t)

	w := s.get("/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Success)
}
