package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ItsNotGoodName/x-collage/collage"
	"github.com/ItsNotGoodName/x-collage/internal/bus"
	"github.com/ItsNotGoodName/x-collage/internal/config"
	"github.com/ItsNotGoodName/x-collage/internal/svgview"
	"github.com/ItsNotGoodName/x-collage/mosaic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	server  *Server
	handler http.Handler
	collage *collage.Collage
	host    *svgview.Host
	clicks  *bus.Hub[bus.PanelClicked]
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	host := svgview.NewHost()
	c := collage.New(host, host, collage.Config{})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go c.Serve(ctx)

	store, err := config.NewStore(config.NewMemory())
	require.NoError(t, err)

	apply := func(cfg config.Config) error {
		layout, err := mosaic.Lookup(cfg.Layout)
		if err != nil {
			return err
		}
		return c.Attach(layout, 400, 400, cfg.Images)
	}

	cfg, err := store.GetConfig()
	require.NoError(t, err)
	require.NoError(t, apply(cfg))

	clicks := bus.NewHub[bus.PanelClicked]()
	server := New(c, store, apply, clicks)
	server.SetRenderer(func(buf *bytes.Buffer, snap collage.Snapshot) {
		host.Render(buf, snap)
	})
	go server.Serve(ctx)

	return testServer{
		server:  server,
		handler: server.Handler(),
		collage: c,
		host:    host,
		clicks:  clicks,
	}
}

func (ts testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeCollage(t *testing.T, rec *httptest.ResponseRecorder) Collage {
	t.Helper()

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var c Collage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	return c
}

func TestGetCollage(t *testing.T) {
	ts := newTestServer(t)

	c := decodeCollage(t, ts.do(t, http.MethodGet, "/api/collage", nil))
	assert.True(t, c.Attached)
	assert.Equal(t, "split-top", c.Layout)
	assert.Equal(t, float32(400), c.Width)
	assert.Equal(t, "idle", c.GestureState)
	require.Len(t, c.Panels, 3)
	assert.Equal(t, Panel{ID: c.Panels[1].ID, Index: 1, X: 0, Y: 200, W: 200, H: 200, Synced: true}, c.Panels[1])
	assert.Nil(t, c.LastClick)
}

func TestResizeCollage(t *testing.T) {
	ts := newTestServer(t)

	c := decodeCollage(t, ts.do(t, http.MethodPost, "/api/collage/size", map[string]any{"width": 800, "height": 200}))
	assert.Equal(t, float32(800), c.Width)
	assert.Equal(t, float32(200), c.Height)
	assert.Equal(t, float32(400), c.Panels[2].X)
	assert.Equal(t, float32(100), c.Panels[2].H)

	rec := ts.do(t, http.MethodPost, "/api/collage/size", map[string]any{"width": 0, "height": 200})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBorder(t *testing.T) {
	ts := newTestServer(t)

	c := decodeCollage(t, ts.do(t, http.MethodPut, "/api/collage/border", map[string]any{"enabled": true}))
	assert.True(t, c.Border)
	assert.True(t, ts.host.Surfaces()[0].Border())

	c = decodeCollage(t, ts.do(t, http.MethodPost, "/api/collage/border/toggle", nil))
	assert.False(t, c.Border)
}

func TestSetPanelImage(t *testing.T) {
	ts := newTestServer(t)

	decodeCollage(t, ts.do(t, http.MethodPut, "/api/collage/panels/1/image", map[string]any{"uri": "https://example.com/a.png"}))
	assert.Equal(t, "https://example.com/a.png", ts.host.Surfaces()[1].URI())

	rec := ts.do(t, http.MethodPut, "/api/collage/panels/3/image", map[string]any{"uri": "https://example.com/a.png"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetLayout(t *testing.T) {
	ts := newTestServer(t)

	c := decodeCollage(t, ts.do(t, http.MethodPut, "/api/collage/layout", map[string]any{"layout": "2x2"}))
	assert.Equal(t, "2x2", c.Layout)
	assert.Len(t, c.Panels, 4)
	assert.Len(t, ts.host.Surfaces(), 4)

	rec := ts.do(t, http.MethodPut, "/api/collage/layout", map[string]any{"layout": "3x3"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListLayouts(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/layouts?width=800&height=600", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var layouts []Layout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &layouts))
	require.Len(t, layouts, 3)
	assert.Equal(t, "split-top", layouts[0].Name)
	assert.Equal(t, Panel{Index: 0, X: 0, Y: 0, W: 800, H: 300}, layouts[0].Panels[0])
	assert.Equal(t, "split-right", layouts[1].Name)
	assert.Equal(t, 4, layouts[2].Count)
}

func TestCollageSVG(t *testing.T) {
	ts := newTestServer(t)
	ts.collage.SetImageAt(0, "https://example.com/a.png")

	rec := ts.do(t, http.MethodGet, "/api/collage.svg", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Body.String(), "<svg"))
	assert.Contains(t, rec.Body.String(), "https://example.com/a.png")

	ts.collage.Close()
	rec = ts.do(t, http.MethodGet, "/api/collage.svg", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetBuild(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/build", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version"`)
}

func TestLastClick(t *testing.T) {
	ts := newTestServer(t)

	click := bus.PanelClicked{ID: "a", Index: 2, Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.Eventually(t, func() bool {
		_ = ts.clicks.Broadcast(context.Background(), click)
		return ts.server.LastClick() != nil
	}, time.Second, 10*time.Millisecond)

	c := decodeCollage(t, ts.do(t, http.MethodGet, "/api/collage", nil))
	require.NotNil(t, c.LastClick)
	assert.Equal(t, 2, c.LastClick.Index)
}
