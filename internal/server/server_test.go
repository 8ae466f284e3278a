package server_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/rohmanhakim/msgrender/internal/metadata"
	"github.com/rohmanhakim/msgrender/internal/pipeline"
	"github.com/rohmanhakim/msgrender/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer() *server.Server {
	p := pipeline.NewMessagePipeline(&metadata.NoopSink{}, nil, pipeline.DefaultPolicy())
	return server.New(&p, zap.NewNop(), server.Param{
		ListenAddr: ":0",
	})
}

func postRender(t *testing.T, s *server.Server, body string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/v1/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, sonic.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestServer_Health(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, sonic.Unmarshal(raw, &decoded))
	assert.Equal(t, "ok", decoded["status"])
	assert.NotEmpty(t, decoded["version"])
}

func TestServer_Render_LTR(t *testing.T) {
	s := newTestServer()

	status, body := postRender(t, s, `{"message": "Hello **world**"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "ltr", body["direction"])
	assert.Contains(t, body["html"], "<strong>world</strong>")
}

func TestServer_Render_RTL(t *testing.T) {
	s := newTestServer()

	status, body := postRender(t, s, `{"message": "مرحبا"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "rtl", body["direction"])
	assert.Contains(t, body["html"], `<span dir="rtl"`)
}

func TestServer_Render_EmptyMessage(t *testing.T) {
	s := newTestServer()

	status, body := postRender(t, s, `{"message": ""}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "ltr", body["direction"])
	assert.Equal(t, "", body["html"])
}

func TestServer_Render_MalformedBody(t *testing.T) {
	s := newTestServer()

	status, body := postRender(t, s, `{not json`)
	assert.Equal(t, 400, status)
	assert.NotEmpty(t, body["error"])
}

func TestServer_RateLimit(t *testing.T) {
	p := pipeline.NewMessagePipeline(&metadata.NoopSink{}, nil, pipeline.DefaultPolicy())
	s := server.New(&p, zap.NewNop(), server.Param{
		ListenAddr:        ":0",
		RequestsPerMinute: 2,
	})

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/healthz", nil)
		resp, err := s.App().Test(req)
		require.NoError(t, err)
		last = resp.StatusCode
		resp.Body.Close()
	}
	assert.Equal(t, 429, last)
}
