package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/ItsNotGoodName/x-collage/collage"
	"github.com/ItsNotGoodName/x-collage/internal/build"
	"github.com/ItsNotGoodName/x-collage/internal/bus"
	"github.com/ItsNotGoodName/x-collage/internal/config"
	"github.com/ItsNotGoodName/x-collage/internal/svgview"
	"github.com/ItsNotGoodName/x-collage/mosaic"
	"github.com/ItsNotGoodName/x-collage/pkg/chiext"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Applier replaces the running collage with cfg.
type Applier func(cfg config.Config) error

type Server struct {
	collage *collage.Collage
	store   *config.Store
	apply   Applier
	render  func(buf *bytes.Buffer, snap collage.Snapshot)
	clicks  *bus.Hub[bus.PanelClicked]

	mu        sync.Mutex
	lastClick *bus.PanelClicked
}

func New(c *collage.Collage, store *config.Store, apply Applier, clicks *bus.Hub[bus.PanelClicked]) *Server {
	return &Server{
		collage: c,
		store:   store,
		apply:   apply,
		clicks:  clicks,
		render: func(buf *bytes.Buffer, snap collage.Snapshot) {
			svgview.Render(buf, snap, nil)
		},
	}
}

// SetRenderer replaces the SVG renderer, the headless host labels panels with
// their images.
func (s *Server) SetRenderer(render func(buf *bytes.Buffer, snap collage.Snapshot)) {
	s.render = render
}

func (s *Server) String() string {
	return "api.Server"
}

// Serve records panel clicks until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	if s.clicks == nil {
		<-ctx.Done()
		return ctx.Err()
	}

	clickC, unsubscribe := s.clicks.Subscribe(ctx)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case click := <-clickC:
			s.mu.Lock()
			s.lastClick = &click
			s.mu.Unlock()
		}
	}
}

func (s *Server) LastClick() *bus.PanelClicked {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastClick
}

// Handler returns the HTTP API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(chiext.Logger())
	r.Use(middleware.Recoverer)

	api := humachi.New(r, huma.DefaultConfig("x-collage", build.Current.Version))
	s.register(api)

	return r
}

func (s *Server) register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-collage",
		Method:      http.MethodGet,
		Path:        "/api/collage",
		Summary:     "Get collage",
	}, func(ctx context.Context, input *struct{}) (*CollageOutput, error) {
		return s.collageOutput(), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "resize-collage",
		Method:      http.MethodPost,
		Path:        "/api/collage/size",
		Summary:     "Resize the whole collage",
	}, func(ctx context.Context, input *SizeInput) (*CollageOutput, error) {
		if !s.collage.Snapshot().Attached {
			return nil, huma.Error409Conflict("collage is not attached")
		}
		s.collage.ResizeWhole(input.Body.Width, input.Body.Height)
		return s.collageOutput(), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-border",
		Method:      http.MethodPut,
		Path:        "/api/collage/border",
		Summary:     "Enable or disable panel borders",
	}, func(ctx context.Context, input *BorderInput) (*CollageOutput, error) {
		s.collage.EnableBorder(input.Body.Enabled)
		return s.collageOutput(), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "toggle-border",
		Method:      http.MethodPost,
		Path:        "/api/collage/border/toggle",
		Summary:     "Toggle panel borders",
	}, func(ctx context.Context, input *struct{}) (*CollageOutput, error) {
		s.collage.ToggleBorder()
		return s.collageOutput(), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-panel-image",
		Method:      http.MethodPut,
		Path:        "/api/collage/panels/{index}/image",
		Summary:     "Show an image in a panel",
	}, func(ctx context.Context, input *ImageInput) (*CollageOutput, error) {
		if input.Index >= len(s.collage.Panels()) {
			return nil, huma.Error404NotFound("panel not found")
		}
		s.collage.SetImageAt(input.Index, input.Body.URI)
		return s.collageOutput(), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-layout",
		Method:      http.MethodPut,
		Path:        "/api/collage/layout",
		Summary:     "Replace the collage layout",
	}, func(ctx context.Context, input *LayoutInput) (*CollageOutput, error) {
		if _, err := mosaic.Lookup(input.Body.Layout); err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		if s.store == nil || s.apply == nil {
			return nil, huma.Error501NotImplemented("layout changes are disabled")
		}

		err := s.store.UpdateConfig(func(cfg config.Config) (config.Config, error) {
			cfg.Layout = input.Body.Layout
			return cfg, nil
		})
		if err != nil {
			return nil, err
		}

		cfg, err := s.store.GetConfig()
		if err != nil {
			return nil, err
		}
		if err := s.apply(cfg); err != nil {
			if errors.Is(err, collage.ErrCanvasSize) {
				return nil, huma.Error409Conflict(err.Error())
			}
			return nil, err
		}

		return s.collageOutput(), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-layouts",
		Method:      http.MethodGet,
		Path:        "/api/layouts",
		Summary:     "List layouts",
	}, func(ctx context.Context, input *LayoutsInput) (*LayoutsOutput, error) {
		return &LayoutsOutput{Body: Layouts(input.Width, input.Height)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-collage-svg",
		Method:      http.MethodGet,
		Path:        "/api/collage.svg",
		Summary:     "Render the collage as SVG",
	}, func(ctx context.Context, input *struct{}) (*SVGOutput, error) {
		snap := s.collage.Snapshot()
		if !snap.Attached {
			return nil, huma.Error409Conflict("collage is not attached")
		}

		var buf bytes.Buffer
		s.render(&buf, snap)
		return &SVGOutput{ContentType: "image/svg+xml", Body: buf.Bytes()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-build",
		Method:      http.MethodGet,
		Path:        "/api/build",
		Summary:     "Get build information",
	}, func(ctx context.Context, input *struct{}) (*BuildOutput, error) {
		return &BuildOutput{Body: build.Current}, nil
	})
}

func (s *Server) collageOutput() *CollageOutput {
	body := NewCollage(s.collage.Snapshot())
	body.GestureState = s.collage.GestureState().String()
	body.LastClick = s.LastClick()
	return &CollageOutput{Body: body}
}
