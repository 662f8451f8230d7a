package service

import (
	"ai_interviewer_backend/internal/config"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStreamTestServer(t *testing.T, handler http.HandlerFunc) (*StreamService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewStreamService(config.DIDConfig{
		APIKey:           "test-key",
		BaseURL:          srv.URL,
		DefaultPresenter: "presenter-1",
		DefaultDriver:    "driver-1",
	})
	return svc, srv
}

func TestCreateStreamInjectsDefaults(t *testing.T) {
	var captured map[string]any
	var auth string

	svc, _ := newStreamTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "/clips/streams", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"stream-1","session_id":"sess-1"}`))
	})

	result, err := svc.CreateStream(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Contains(t, string(result.Body), "stream-1")

	assert.Equal(t, "presenter-1", captured["presenter_id"])
	assert.Equal(t, "driver-1", captured["driver_id"])

	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("test-key:"))
	assert.Equal(t, expected, auth)
}

func TestCreateStreamKeepsExplicitPresenter(t *testing.T) {
	var captured map[string]any

	svc, _ := newStreamTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.Write([]byte(`{}`))
	})

	_, err := svc.CreateStream(context.Background(), []byte(`{"presenter_id":"custom"}`))
	require.NoError(t, err)
	assert.Equal(t, "custom", captured["presenter_id"])
	assert.Equal(t, "driver-1", captured["driver_id"])
}

func TestSubmitSDPWrapsAnswer(t *testing.T) {
	var captured map[string]json.RawMessage
	var cookie string

	svc, _ := newStreamTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clips/streams/stream-1/sdp", r.URL.Path)
		cookie = r.Header.Get("Cookie")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.Write([]byte("v=0"))
	})

	result, err := svc.SubmitSDP(context.Background(), "stream-1",
		[]byte(`{"session_id":"sess-1","answer":{"type":"answer","sdp":"v=0"}}`))
	require.NoError(t, err)

	assert.Equal(t, "application/sdp", result.ContentType)
	assert.Equal(t, "sess-1", cookie)
	assert.JSONEq(t, `{"type":"answer","sdp":"v=0"}`, string(captured["answer"]))
}

func TestDeleteStreamForwardsBody(t *testing.T) {
	svc, _ := newStreamTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/clips/streams/stream-1", r.URL.Path)
		assert.Equal(t, "sess-1", r.Header.Get("Cookie"))
		w.Write([]byte(`{}`))
	})

	result, err := svc.DeleteStream(context.Background(), "stream-1", []byte(`{"session_id":"sess-1"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
}

func TestProxyPassesUpstreamStatus(t *testing.T) {
	svc, _ := newStreamTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	})

	result, err := svc.Presenters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, result.Status)
}

func TestStreamServiceConfigured(t *testing.T) {
	assert.False(t, NewStreamService(config.DIDConfig{}).Configured())
	assert.True(t, NewStreamService(config.DIDConfig{APIKey: "k"}).Configured())
}
