package lottie

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/couchcryptid/weather-advisory-service/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sunAnimation = `{"v":"5.5.7","fr":30,"ip":0,"op":60,"w":200,"h":200,"layers":[]}`

func testLoader() *Loader {
	return NewLoader(time.Second, 8, observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoader_LoadAnimation_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sunAnimation))
	}))
	defer srv.Close()

	l := testLoader()
	doc, err := l.LoadAnimation(context.Background(), srv.URL+"/sun.json")
	require.NoError(t, err)
	assert.JSONEq(t, sunAnimation, string(doc))
	assert.Equal(t, 1.0, testutil.ToFloat64(l.metrics.AssetFetches.WithLabelValues("success")))
}

func TestLoader_LoadAnimation_Cached(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(sunAnimation))
	}))
	defer srv.Close()

	l := testLoader()
	for range 3 {
		_, err := l.LoadAnimation(context.Background(), srv.URL+"/sun.json")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), hits.Load(), "should only fetch once")
	assert.Equal(t, 2.0, testutil.ToFloat64(l.metrics.AssetFetches.WithLabelValues("cached")))
}

func TestLoader_LoadAnimation_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	l := testLoader()
	_, err := l.LoadAnimation(context.Background(), srv.URL+"/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, 1.0, testutil.ToFloat64(l.metrics.AssetFetches.WithLabelValues("error")))
}

func TestLoader_LoadAnimation_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>moved</html>"))
	}))
	defer srv.Close()

	l := testLoader()
	_, err := l.LoadAnimation(context.Background(), srv.URL+"/sun.json")
	require.ErrorIs(t, err, errInvalidDocument)

	// Failures are not cached.
	_, err = l.LoadAnimation(context.Background(), srv.URL+"/sun.json")
	require.Error(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(l.metrics.AssetFetches.WithLabelValues("error")))
}
