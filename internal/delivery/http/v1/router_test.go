package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"destiny-global-backend/config"
	v1 "destiny-global-backend/internal/delivery/http/v1"
	"destiny-global-backend/internal/domain"
	"destiny-global-backend/internal/usecase"
	"destiny-global-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMailer records every message and fails the n-th send when failOn > 0
type recordingMailer struct {
	mu     sync.Mutex
	sent   []domain.Mail
	failOn int
}

func (m *recordingMailer) Send(ctx context.Context, msg domain.Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	if m.failOn == len(m.sent) {
		return errors.New("simulated transport failure")
	}
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

func testConfig() *config.Config {
	return &config.Config{
		Env:                config.EnvProduction,
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, mailer domain.Mailer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	business := domain.Company{Name: "Destiny Global Import Export", Brand: "Destiny Global", SupportEmail: "support@destinyglobalimportexport.com"}
	return v1.NewRouter(v1.RouterDeps{
		EnquiryUC: usecase.NewEnquiryUsecase(mailer, validation.New(), usecase.EnquiryConfig{
			FromEmail:      "sender@gmail.com",
			SupportEmailTo: business.SupportEmail,
			Business:       business,
		}),
		HealthUC: usecase.NewHealthUsecase(business.Name),
		Config:   cfg,
	})
}

func postEnquiry(r http.Handler, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(http.MethodPost, "/api/enquiry", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

const janeDoe = `{"name":"Jane Doe","email":"jane@example.com","phone":"1234567890","message":"Interested in pellets","product":"Organic Cow Dung Pellets"}`

func TestSubmitEnquiry(t *testing.T) {
	t.Run("valid enquiry sends two emails", func(t *testing.T) {
		mailer := &recordingMailer{}
		w, env := postEnquiry(newTestRouter(t, testConfig(), mailer), janeDoe)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Enquiry submitted successfully! We will contact you soon.", env.Message)
		assert.NotEmpty(t, env.RequestID)
		require.Equal(t, 2, mailer.count())
		assert.Equal(t, "support@destinyglobalimportexport.com", mailer.sent[0].To)
		assert.Equal(t, "jane@example.com", mailer.sent[1].To)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		mailer := &recordingMailer{}
		w, env := postEnquiry(newTestRouter(t, testConfig(), mailer), `{"name":"Jane","email":"not-an-email","phone":"123","message":"hi"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Please provide a valid email address", env.Message)
		assert.Zero(t, mailer.count())
	})

	t.Run("email with surrounding spaces is rejected", func(t *testing.T) {
		mailer := &recordingMailer{}
		w, env := postEnquiry(newTestRouter(t, testConfig(), mailer), `{"name":"Jane","email":" jane@example.com ","phone":"123","message":"hi"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Please provide a valid email address", env.Message)
		assert.Zero(t, mailer.count())
	})

	for name, body := range map[string]string{
		"missing name":    `{"email":"jane@example.com","phone":"1","message":"hi"}`,
		"missing email":   `{"name":"Jane","phone":"1","message":"hi"}`,
		"missing phone":   `{"name":"Jane","email":"jane@example.com","message":"hi"}`,
		"missing message": `{"name":"Jane","email":"jane@example.com","phone":"1"}`,
		"blank message":   `{"name":"Jane","email":"jane@example.com","phone":"1","message":"  "}`,
		"wrong type":      `{"name":"Jane","email":"jane@example.com","phone":1234,"message":"hi"}`,
		"empty body":      ``,
	} {
		t.Run(name, func(t *testing.T) {
			mailer := &recordingMailer{}
			w, env := postEnquiry(newTestRouter(t, testConfig(), mailer), body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, "Please fill all required fields (name, email, phone, message)", env.Message)
			assert.Zero(t, mailer.count())
		})
	}

	t.Run("second send failure is reported as failure", func(t *testing.T) {
		mailer := &recordingMailer{failOn: 2}
		w, env := postEnquiry(newTestRouter(t, testConfig(), mailer), janeDoe)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Failed to process enquiry. Please try again later.", env.Message)
		assert.Empty(t, env.Error)
		assert.Equal(t, 2, mailer.count())
	})

	t.Run("development mode exposes error detail", func(t *testing.T) {
		cfg := testConfig()
		cfg.Env = config.EnvDevelopment
		mailer := &recordingMailer{failOn: 1}
		w, env := postEnquiry(newTestRouter(t, cfg, mailer), janeDoe)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, env.Error, "simulated transport failure")
		assert.Equal(t, 1, mailer.count())
	})
}

func TestServiceRoutes(t *testing.T) {
	r := newTestRouter(t, testConfig(), &recordingMailer{})

	t.Run("banner", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Destiny Global Import Export API is running!", body["message"])
		assert.Equal(t, "active", body["status"])
		assert.NotEmpty(t, body["timestamp"])
	})

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "email-api", body["service"])
	})

	for _, path := range []string{"/api/unknown", "/api/docs/index.html", "/nothing/here"} {
		t.Run("404 "+path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusNotFound, w.Code)

			var env envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.False(t, env.Success)
			assert.Equal(t, "Route not found", env.Message)
			assert.Equal(t, w.Header().Get("X-Request-ID"), env.RequestID)
		})
	}

	t.Run("GET on the enquiry endpoint is not a route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/enquiry", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCORSPolicy(t *testing.T) {
	preflight := func(r http.Handler, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/enquiry", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("listed origin is allowed", func(t *testing.T) {
		w := preflight(newTestRouter(t, testConfig(), &recordingMailer{}), "http://localhost:5173")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin is rejected", func(t *testing.T) {
		w := preflight(newTestRouter(t, testConfig(), &recordingMailer{}), "https://evil.example")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow-all must be explicit", func(t *testing.T) {
		cfg := testConfig()
		cfg.CORSAllowAll = true
		w := preflight(newTestRouter(t, cfg, &recordingMailer{}), "https://evil.example")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://evil.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin gets no CORS headers on a real request", func(t *testing.T) {
		mailer := &recordingMailer{}
		req := httptest.NewRequest(http.MethodPost, "/api/enquiry", strings.NewReader(janeDoe))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		newTestRouter(t, testConfig(), mailer).ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(t, testConfig(), &recordingMailer{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "3f2c1a9e-8d6b-4c2f-9a1e-2b7d5c4e6f80")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "3f2c1a9e-8d6b-4c2f-9a1e-2b7d5c4e6f80", w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "not a uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not a uuid", w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
