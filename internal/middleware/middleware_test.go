package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"foster-intake/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEntry struct {
	level  string
	msg    string
	fields map[string]any
}

type recordingLogger struct {
	entries *[]recordedEntry
}

func (l recordingLogger) With(map[string]any) logger.Logger { return l }

func (l recordingLogger) Debug(msg string, f map[string]any) { l.add("debug", msg, f) }
func (l recordingLogger) Info(msg string, f map[string]any)  { l.add("info", msg, f) }
func (l recordingLogger) Warn(msg string, f map[string]any)  { l.add("warn", msg, f) }
func (l recordingLogger) Error(msg string, f map[string]any) { l.add("error", msg, f) }

func (l recordingLogger) add(level, msg string, f map[string]any) {
	*l.entries = append(*l.entries, recordedEntry{level: level, msg: msg, fields: f})
}

func TestStaffContext_SetsStaffFromHeader(t *testing.T) {
	var got Staff
	var ok bool
	h := StaffContext(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetStaff(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(StaffHeader, "  Ana ")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, ok)
	assert.Equal(t, "Ana", got.Name)

	ok = true
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	var entries []recordedEntry
	log := recordingLogger{entries: &entries}

	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Len(t, entries, 2)
	assert.Equal(t, "info", entries[0].level)
	assert.Equal(t, http.StatusOK, entries[0].fields["status"])
	assert.Equal(t, "/health", entries[0].fields["path"])
	assert.Equal(t, "warn", entries[1].level)
	assert.Equal(t, http.StatusNotFound, entries[1].fields["status"])
}

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/intakes/{intakeID}/plan", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/intakes/a/plan", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/intakes/b/plan", nil))

	got := testutil.ToFloat64(m.requests.WithLabelValues("/intakes/{intakeID}/plan", http.MethodGet, "404"))
	assert.Equal(t, 2.0, got)
}
