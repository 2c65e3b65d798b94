package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectivity-check-service/internal/adapters/sqlclock"
	"connectivity-check-service/internal/domain"
	"connectivity-check-service/internal/platform/logger"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panickingClock struct{}

func (panickingClock) Now(context.Context) (time.Time, error) {
	panic("driver exploded")
}

func newTestRouter(t *testing.T, clock *sqlclock.MockClock) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewRouter(clock, Options{Logger: logger.New("production", false, &buf)}), &buf
}

func TestRouter_RootServesCheck(t *testing.T) {
	clock := sqlclock.NewMockClock(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC))
	h, logs := newTestRouter(t, clock)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), domain.SuccessPrefix))
	assert.Equal(t, 1, clock.Calls())

	reqID := rec.Header().Get("X-Request-Id")
	_, err := uuid.FromString(reqID)
	require.NoError(t, err, "request id must be a UUID")

	assert.Contains(t, logs.String(), `"req_id":"`+reqID+`"`)
	assert.Contains(t, logs.String(), `"status":200`)
}

func TestRouter_EachRequestProbesAgain(t *testing.T) {
	clock := sqlclock.NewMockClock(time.Now())
	h, _ := newTestRouter(t, clock)

	for i := 0; i < 3; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	assert.Equal(t, 3, clock.Calls())
}

func TestRouter_UnknownPathIsNotFound(t *testing.T) {
	clock := sqlclock.NewMockClock(time.Now())
	h, _ := newTestRouter(t, clock)

	for _, path := range []string{"/health", "/index.html", "/a/b"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "404 page not found\n", rec.Body.String(), path)
	}
	assert.Equal(t, 0, clock.Calls())
}

func TestRouter_OtherMethodsNotAllowed(t *testing.T) {
	clock := sqlclock.NewMockClock(time.Now())
	h, _ := newTestRouter(t, clock)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Header().Get("Allow"), http.MethodGet)
	assert.Equal(t, 0, clock.Calls())
}

func TestRouter_PanicIsRecovered(t *testing.T) {
	var buf bytes.Buffer
	h := NewRouter(panickingClock{}, Options{Logger: logger.New("production", false, &buf)})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "driver exploded")
}
