package prometheus_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/monitor-bot/internal/adapters/secondary/prometheus"
	"github.com/admin/tg-bots/monitor-bot/internal/domain"
)

func newClient(serverURL string) *prometheus.Client {
	return prometheus.NewClient(&prometheus.Config{URL: serverURL}, slog.Default())
}

func TestQuery_Success(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/query", r.URL.Path)
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"resultType": "vector",
				"result": [{"metric": {"instance": "host1"}, "value": [1700000000.123, "42.5"]}]
			}
		}`))
	}))
	defer server.Close()

	value, err := newClient(server.URL).Query(context.Background(), "up")
	require.NoError(t, err)
	assert.Equal(t, 42.5, value)
	assert.Equal(t, "up", gotQuery)
}

func TestQuery_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","errorType":"bad_data","error":"parse error"}`))
	}))
	defer server.Close()

	_, err := newClient(server.URL).Query(context.Background(), "up{")
	assert.True(t, errors.Is(err, domain.ErrNoValue))
}

func TestQuery_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"resultType":"vector","result":[]}}`))
	}))
	defer server.Close()

	_, err := newClient(server.URL).Query(context.Background(), "up")
	assert.True(t, errors.Is(err, domain.ErrNoValue))
}

func TestQuery_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newClient(server.URL).Query(context.Background(), "up")
	assert.True(t, errors.Is(err, domain.ErrNoValue))
}

func TestQuery_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	_, err := newClient(server.URL).Query(context.Background(), "up")
	assert.True(t, errors.Is(err, domain.ErrNoValue))
}
