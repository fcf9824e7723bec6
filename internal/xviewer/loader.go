package xviewer

import (
	"context"
	"log/slog"
	"time"

	"github.com/ItsNotGoodName/x-collage/collage"
)

// Surface is a collage surface backed by a viewer.
type Surface interface {
	collage.Surface
	Viewer() *Viewer
}

// Loader loads images into surfaces that implement Surface.
type Loader struct {
	Timeout time.Duration
}

func (l Loader) Load(surface collage.Surface, uri string) {
	s, ok := surface.(Surface)
	if !ok {
		slog.Debug("Surface has no viewer", "package", "xviewer", "surface", surface)
		return
	}

	timeout := l.Timeout
	if timeout <= 0 {
		timeout = time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Viewer().Load(ctx, uri); err != nil {
		slog.Error("Failed to load image", "package", "xviewer", "viewer", s.Viewer().ID, "uri", uri, "error", err)
	}
}
