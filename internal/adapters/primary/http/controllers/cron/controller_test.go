package cronController

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/TBOO-AI/agent/internal/usecases/fortune"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSocial struct {
	loggedIn bool
}

func (s *stubSocial) SearchMentions(_ context.Context, _ string, _ int) ([]*domain.InboundMessage, error) {
	return nil, nil
}

func (s *stubSocial) PostReply(_ context.Context, _ string, _ string) (string, error) {
	return "", nil
}

func (s *stubSocial) VerifyCredentials(_ context.Context) (bool, error) {
	return s.loggedIn, nil
}

type stubCache struct{}

func (stubCache) Get(_ context.Context, _ string) (string, error) { return "", nil }
func (stubCache) Set(_ context.Context, _ string, _ string, _ time.Duration) error {
	return nil
}
func (stubCache) Delete(_ context.Context, _ string) error         { return nil }
func (stubCache) Exists(_ context.Context, _ string) (bool, error) { return false, nil }
func (stubCache) Close() error                                     { return nil }

func newTestRouter(t *testing.T, secret string, social *stubSocial) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := fortune.New(
		&fortune.Config{BotHandle: "tboo_diin", MaxPostLength: 250, FetchLimit: 30},
		nil, nil, nil,
		stubCache{},
		nil, nil,
		social,
		nil,
		log,
	)

	router := gin.New()
	controller := New(&Config{Secret: secret}, svc, social, log)
	controller.RegisterRoutes(router)
	return router
}

func TestCron_MissingAuthorizationRejected(t *testing.T) {
	router := newTestRouter(t, "s3cret", &stubSocial{loggedIn: true})

	req := httptest.NewRequest(http.MethodGet, "/api/cron", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCron_WrongSecretRejected(t *testing.T) {
	router := newTestRouter(t, "s3cret", &stubSocial{loggedIn: true})

	req := httptest.NewRequest(http.MethodGet, "/api/cron", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCron_BearerSchemeRequired(t *testing.T) {
	router := newTestRouter(t, "s3cret", &stubSocial{loggedIn: true})

	req := httptest.NewRequest(http.MethodGet, "/api/cron", nil)
	req.Header.Set("Authorization", "s3cret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCron_ValidSecretRunsPipeline(t *testing.T) {
	router := newTestRouter(t, "s3cret", &stubSocial{loggedIn: true})

	req := httptest.NewRequest(http.MethodGet, "/api/cron", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CronResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Cron Job is Done", resp.Message)
	assert.Equal(t, 0, resp.ProcessedCandidates)
	assert.True(t, resp.LoggedIn)
}

func TestCron_LoggedOutReported(t *testing.T) {
	router := newTestRouter(t, "s3cret", &stubSocial{loggedIn: false})

	req := httptest.NewRequest(http.MethodGet, "/api/cron", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CronResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.LoggedIn)
}
