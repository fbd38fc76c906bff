package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stayease/navbar/model"
	"github.com/stayease/navbar/web"
	"github.com/stayease/navbar/web/live"
	"github.com/stayease/navbar/web/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, cfg web.Config) *httptest.Server {
	t.Helper()

	m := metrics.New()
	hub := live.NewHub(m, cfg.Dev)

	handler, err := web.BuildServer(cfg, m, hub)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})

	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestPagesAreRouted(t *testing.T) {
	srv := startServer(t, web.Config{AssetsDir: t.TempDir()})

	for _, item := range model.Navigation() {
		t.Run(item.Label, func(t *testing.T) {
			resp, body := get(t, srv.URL+item.Path)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, body, `href="`+item.Path+`" aria-current="page"`)
		})
	}
}

func TestUnknownPage(t *testing.T) {
	srv := startServer(t, web.Config{AssetsDir: t.TempDir()})

	resp, body := get(t, srv.URL+"/nowhere")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page not found")
	assert.Contains(t, body, `id="site-navbar"`)
}

func TestStaticAndHealth(t *testing.T) {
	srv := startServer(t, web.Config{Dev: true, AssetsDir: t.TempDir()})

	resp, body := get(t, srv.URL+"/static/navbar.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "data-navbar-toggle")
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	resp, body = get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestAssetsDir(t *testing.T) {
	dir := t.TempDir()
	logoDir := filepath.Join(dir, "img", "brand-logo")
	require.NoError(t, os.MkdirAll(logoDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(logoDir, "stayEase-Logo.webp"), []byte("RIFF"), 0o644))

	srv := startServer(t, web.Config{AssetsDir: dir})

	resp, body := get(t, srv.URL+"/"+model.LogoPath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "RIFF", body)
	assert.Empty(t, resp.Header.Get("Cache-Control"))

	resp, _ = get(t, srv.URL+"/assets/missing.png")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := startServer(t, web.Config{AssetsDir: t.TempDir()})

	get(t, srv.URL+"/about")
	get(t, srv.URL+"/nowhere")

	resp, body := get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `stayease_page_views_total{code="200",path="/about"} 1`)
	assert.Contains(t, body, `stayease_page_views_total{code="404",path="unknown"} 1`)
}

func TestLiveEndpoint(t *testing.T) {
	srv := startServer(t, web.Config{AssetsDir: t.TempDir()})

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live?path=/contact"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg live.ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "/contact", msg.Path)

	require.NoError(t, conn.WriteJSON(live.ClientEvent{Type: live.EventToggle}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.True(t, msg.MenuOpen)

	require.NoError(t, conn.WriteJSON(live.ClientEvent{Type: live.EventNavigate, Path: "/blog"}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.False(t, msg.MenuOpen)
	assert.Equal(t, "/blog", msg.Path)
}

func TestOpenMenuPageMatchesLiveSession(t *testing.T) {
	srv := startServer(t, web.Config{AssetsDir: t.TempDir()})

	resp, body := get(t, srv.URL+"/about?menu=open")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `aria-expanded="true"`)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live?path=/about&menu=open"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg live.ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.True(t, msg.MenuOpen)
	assert.Contains(t, msg.HTML, `aria-expanded="true"`)

	require.NoError(t, conn.WriteJSON(live.ClientEvent{Type: live.EventToggle}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.False(t, msg.MenuOpen)
	assert.Contains(t, msg.HTML, `aria-expanded="false"`)
}
