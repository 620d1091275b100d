package gallery

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"photobooking/internal/domain"
	"photobooking/internal/gateway"
	"photobooking/internal/gateway/notify"
	"photobooking/internal/middleware"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) AssembleGallery(ctx context.Context, eventID string, filenames []string) (*domain.Gallery, error) {
	args := m.Called(ctx, eventID, filenames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gallery), args.Error(1)
}

func (m *MockStore) ListEventPhotos(ctx context.Context, eventID string) ([]string, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendGalleryReady(ctx context.Context, g notify.GalleryReady) bool {
	return m.Called(ctx, g).Bool(0)
}

func (m *MockNotifier) SendSMS(ctx context.Context, phone, message string) bool {
	return m.Called(ctx, phone, message).Bool(0)
}

func weddingGallery(n int) *domain.Gallery {
	g := &domain.Gallery{EventID: "wedding_001", AccessCode: "CMNG_001", PhotoCount: n}
	for i := 0; i < n; i++ {
		g.Photos = append(g.Photos, domain.GalleryPhoto{Filename: "a.jpg", URL: "u", ThumbnailURL: "t"})
	}
	return g
}

func TestAssemble_ListsWhenNoFilenames(t *testing.T) {
	store := &MockStore{}
	store.On("ListEventPhotos", mock.Anything, "wedding_001").Return([]string{"a.jpg", "b.jpg"}, nil)
	store.On("AssembleGallery", mock.Anything, "wedding_001", []string{"a.jpg", "b.jpg"}).Return(weddingGallery(2), nil)
	svc := NewService(store, nil, "https://site.test", zap.NewNop())

	g, err := svc.Assemble(context.Background(), "wedding_001", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, g.PhotoCount)
}

func TestAssemble_StorageUnavailable(t *testing.T) {
	svc := NewService(nil, nil, "", zap.NewNop())
	_, err := svc.Assemble(context.Background(), "e1", []string{"a.jpg"})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestOpen_ChecksAccessCode(t *testing.T) {
	store := &MockStore{}
	store.On("ListEventPhotos", mock.Anything, "wedding_001").Return([]string{"a.jpg"}, nil)
	store.On("AssembleGallery", mock.Anything, "wedding_001", []string{"a.jpg"}).Return(weddingGallery(1), nil)
	svc := NewService(store, nil, "", zap.NewNop())

	_, err := svc.Open(context.Background(), "wedding_001", "CMXXXXXX")
	assert.ErrorIs(t, err, ErrAccessDenied)

	g, err := svc.Open(context.Background(), "wedding_001", "cmng_001")
	require.NoError(t, err)
	assert.Equal(t, "CMNG_001", g.AccessCode)
}

func TestLink(t *testing.T) {
	svc := NewService(nil, nil, "https://site.test/", zap.NewNop())
	assert.Equal(t, "https://site.test/gallery/wedding_001?code=CMNG_001", svc.Link("wedding_001"))
}

func TestDeliver(t *testing.T) {
	store := &MockStore{}
	notifier := &MockNotifier{}
	store.On("AssembleGallery", mock.Anything, "wedding_001", []string{"a.jpg", "b.jpg", "c.jpg"}).Return(weddingGallery(2), nil)
	notifier.On("SendGalleryReady", mock.Anything, notify.GalleryReady{
		ClientName:  "Asha",
		ClientEmail: "asha@example.com",
		ClientPhone: "9876543210",
		EventID:     "wedding_001",
		AccessCode:  "CMNG_001",
		PhotoCount:  2,
		GalleryURL:  "https://site.test/gallery/wedding_001?code=CMNG_001",
	}).Return(true)
	notifier.On("SendSMS", mock.Anything, "9876543210", mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "CMNG_001") && strings.Contains(msg, "2 photos")
	})).Return(false)
	svc := NewService(store, notifier, "https://site.test", zap.NewNop())

	d, err := svc.Deliver(context.Background(), "wedding_001", []string{"a.jpg", "b.jpg", "c.jpg"},
		Recipient{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"})

	require.NoError(t, err)
	assert.True(t, d.Email)
	assert.False(t, d.SMS)
	assert.Equal(t, 2, d.Gallery.PhotoCount)
	notifier.AssertExpectations(t)
}

func TestDeliver_Errors(t *testing.T) {
	store := &MockStore{}
	notifier := &MockNotifier{}

	_, err := NewService(store, nil, "", zap.NewNop()).Deliver(context.Background(), "e1", nil, Recipient{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrNotifierUnavailable)

	svc := NewService(store, notifier, "", zap.NewNop())
	_, err = svc.Deliver(context.Background(), "e1", nil, Recipient{Name: "x"})
	assert.ErrorIs(t, err, ErrNoRecipient)

	store.On("AssembleGallery", mock.Anything, "e1", []string{"gone.jpg"}).Return(weddingGallery(0), nil)
	_, err = svc.Deliver(context.Background(), "e1", []string{"gone.jpg"}, Recipient{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrEmptyGallery)
	notifier.AssertNotCalled(t, "SendGalleryReady", mock.Anything, mock.Anything)
}

const testTemplates = `
{{define "gallery.html"}}{{if .Gallery}}photos={{.Gallery.PhotoCount}}{{else if .Error}}denied{{else}}enter code{{end}}{{end}}
{{define "error.html"}}error{{end}}`

func setupRouter(svc *Service) *gin.Engine {
	return setupLimitedRouter(svc, func(c *gin.Context) { c.Next() })
}

func setupLimitedRouter(svc *Service, limit gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	h := NewHandler(svc)
	h.RegisterRoutes(&r.RouterGroup, limit)
	h.RegisterOpsRoutes(r.Group("/api/v1/ops"))
	return r
}

func TestHandler_View(t *testing.T) {
	store := &MockStore{}
	store.On("ListEventPhotos", mock.Anything, "wedding_001").Return([]string{"a.jpg"}, nil)
	store.On("AssembleGallery", mock.Anything, "wedding_001", []string{"a.jpg"}).Return(weddingGallery(1), nil)
	r := setupRouter(NewService(store, nil, "", zap.NewNop()))

	cases := []struct {
		path string
		code int
		body string
	}{
		{"/gallery/wedding_001", http.StatusOK, "enter code"},
		{"/gallery/wedding_001?code=WRONG", http.StatusForbidden, "denied"},
		{"/gallery/wedding_001?code=CMNG_001", http.StatusOK, "photos=1"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.code, w.Code, tc.path)
		assert.Equal(t, tc.body, w.Body.String(), tc.path)
	}
}

func TestHandler_Assemble(t *testing.T) {
	store := &MockStore{}
	store.On("AssembleGallery", mock.Anything, "wedding_001", []string{"a.jpg"}).Return(weddingGallery(1), nil)
	store.On("ListEventPhotos", mock.Anything, "missing").Return(nil, gateway.NotFound("op", "no bucket", nil))
	r := setupRouter(NewService(store, nil, "", zap.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops/galleries/wedding_001", strings.NewReader(`{"filenames":["a.jpg"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_code":"CMNG_001"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ops/galleries/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_NotifyValidation(t *testing.T) {
	r := setupRouter(NewService(&MockStore{}, &MockNotifier{}, "", zap.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops/galleries/e1/notify", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/ops/galleries/e1/notify", strings.NewReader(`{"name":"Asha"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email or phone is required")
}

func TestHandler_ViewIsRateLimited(t *testing.T) {
	store := &MockStore{}
	r := setupLimitedRouter(NewService(store, nil, "", zap.NewNop()), middleware.NewRateLimiter(1, zap.NewNop()).Middleware())

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/gallery/wedding_001", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestAssemble_RejectsPathFilenames(t *testing.T) {
	store := &MockStore{}
	svc := NewService(store, nil, "", zap.NewNop())

	_, err := svc.Assemble(context.Background(), "wedding_001", []string{"a.jpg", "../corp_777/secret.jpg"})
	assert.ErrorIs(t, err, ErrInvalidFilename)
	store.AssertNotCalled(t, "AssembleGallery", mock.Anything, mock.Anything, mock.Anything)

	r := setupRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops/galleries/wedding_001", strings.NewReader(`{"filenames":["../corp_777/secret.jpg"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
