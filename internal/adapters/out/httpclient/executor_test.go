package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoPayload struct {
	Name string `json:"name"`
}

func newExecutor(t *testing.T, handler http.HandlerFunc) *Executor {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewExecutor("test", srv.URL+"/", time.Second, zap.NewNop())
}

func TestExecute_Success_DecodesBody(t *testing.T) {
	e := newExecutor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/things", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, _ := io.ReadAll(r.Body)
		var in echoPayload
		require.NoError(t, json.Unmarshal(raw, &in))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(echoPayload{Name: in.Name + "!"})
	})

	res := Execute[echoPayload](context.Background(), e, Request{
		Method: http.MethodPost,
		Path:   "/things",
		Body:   echoPayload{Name: "pizza"},
	})

	require.True(t, res.IsSuccess())
	assert.Equal(t, "pizza!", res.Data().Name)
}

func TestExecute_NonSuccessStatus_LogicalFailureWithBody(t *testing.T) {
	e := newExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("product not found\n"))
	})

	res := Execute[echoPayload](context.Background(), e, Request{Method: http.MethodGet, Path: "/things/1"})

	require.True(t, res.IsLogicalFailure())
	assert.Equal(t, "product not found", res.Message())
}

func TestExecute_NonSuccessStatusWithoutBody_UsesStatusText(t *testing.T) {
	e := newExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	res := Execute[echoPayload](context.Background(), e, Request{Method: http.MethodGet, Path: "/"})

	require.True(t, res.IsLogicalFailure())
	assert.Equal(t, "Unprocessable Entity", res.Message())
}

func TestExecute_MalformedBody_InternalFailure(t *testing.T) {
	e := newExecutor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	res := Execute[echoPayload](context.Background(), e, Request{Method: http.MethodGet, Path: "/"})

	require.True(t, res.IsInternalFailure())
	assert.ErrorContains(t, res.Fault(), "decode response")
}

func TestExecute_Timeout_InternalFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	e := NewExecutor("slow", srv.URL, 20*time.Millisecond, zap.NewNop())

	res := Execute[echoPayload](context.Background(), e, Request{Method: http.MethodGet, Path: "/"})

	assert.True(t, res.IsInternalFailure())
}

func TestExecute_Unreachable_InternalFailure(t *testing.T) {
	e := NewExecutor("down", "http://127.0.0.1:1", time.Second, zap.NewNop())

	res := Execute[echoPayload](context.Background(), e, Request{Method: http.MethodGet, Path: "/"})

	assert.True(t, res.IsInternalFailure())
}
