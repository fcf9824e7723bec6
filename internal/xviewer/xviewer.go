package xviewer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ItsNotGoodName/x-collage/collage"
	"github.com/gen2brain/go-mpv"
	"github.com/jezek/xgb/xproto"
)

// DefaultPlaceholder is a solid color shown by panels without an image.
const DefaultPlaceholder = "av://lavfi:color=c=0x202020:s=64x64"

var ErrViewerClosed = errors.New("viewer closed")

type (
	CommandLoad struct {
		URI string
	}
)

type Options struct {
	Placeholder string
	Hwdec       string
}

// Viewer shows one image in an X window with its own libmpv instance.
type Viewer struct {
	ID       string
	commandC chan any
	doneC    chan struct{}
	closeC   chan struct{}
}

func New(id string, wid xproto.Window, opts Options) (*Viewer, error) {
	m := mpv.New()

	// Base options
	_ = m.SetOption("wid", mpv.FormatInt64, int64(wid))    // bind to x window
	_ = m.SetOptionString("input-vo-keyboard", "no")       // passthrough keyboard input to parent x window
	_ = m.SetOption("input-cursor", mpv.FormatFlag, false) // passthrough mouse input to parent x window
	_ = m.SetOption("osc", mpv.FormatFlag, false)          // don't render on screen ui
	_ = m.SetOption("force-window", mpv.FormatFlag, true)  // render empty video when no file-loaded
	_ = m.SetOption("idle", mpv.FormatFlag, true)          // keep window open when no file-loaded
	_ = m.SetOptionString("image-display-duration", "inf") // keep showing images
	_ = m.SetOptionString("keep-open", "yes")              // keep the last frame of other media
	_ = m.SetOptionString("keepaspect", "no")              // fill the whole pane
	_ = m.SetOption("audio", mpv.FormatFlag, false)        // images only
	_ = m.SetOptionString("loop-file", "inf")              // animated images

	// Custom options
	if opts.Hwdec != "" {
		_ = m.SetOptionString("hwdec", opts.Hwdec)
	}

	_ = m.RequestLogMessages("warn")

	if err := m.Initialize(); err != nil {
		m.TerminateDestroy()
		return nil, err
	}

	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	v := &Viewer{
		ID:       id,
		commandC: make(chan any, 8),
		doneC:    make(chan struct{}),
		closeC:   make(chan struct{}),
	}

	go v.run(m, placeholder)

	return v, nil
}

func (v *Viewer) String() string {
	return "xviewer.Viewer(" + v.ID + ")"
}

func (v *Viewer) Send(ctx context.Context, cmds ...any) error {
	for _, cmd := range cmds {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-v.doneC:
			return ErrViewerClosed
		case v.commandC <- cmd:
		}
	}
	return nil
}

// Load shows uri, or the placeholder when uri is empty or cannot be shown.
func (v *Viewer) Load(ctx context.Context, uri string) error {
	return v.Send(ctx, CommandLoad{URI: uri})
}

func (v *Viewer) Close(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-v.doneC:
		return nil
	case v.closeC <- struct{}{}:
		<-v.doneC
		return nil
	}
}

func (v *Viewer) run(m *mpv.Mpv, placeholder string) {
	slog := slog.With("package", "xviewer", "viewer-id", v.ID)

	defer close(v.doneC)
	defer m.TerminateDestroy()

	eventTicker := time.NewTicker(250 * time.Millisecond)
	defer eventTicker.Stop()

	uri := NewState("")
	shown := ""

	show := func(file string) {
		if file == shown {
			return
		}
		if err := m.Command([]string{"loadfile", file}); err != nil {
			slog.Error("Failed to load file", "file", file, "error", err)
			return
		}
		shown = file
	}
	uri.AddEffect(func() {
		show(collage.ResolveURI(uri.V, placeholder))
	})
	show(placeholder)

	for {
		select {
		case <-v.closeC:
			return
		case <-eventTicker.C:
		eventLoop:
			for {
				e := m.WaitEvent(0)
				if e.Error != nil {
					slog.Error("Failed to listen for events", "error", e.Error)
					break
				}

				switch e.EventID {
				case mpv.EventNone:
					break eventLoop
				case mpv.EventShutdown:
					return
				case mpv.EventEnd:
					ef := e.EndFile()
					if ef.Reason == mpv.EndFileError && shown != placeholder {
						slog.Warn("Failed to show image, using placeholder", "uri", shown, "error", ef.Error)
						show(placeholder)
					}
				case mpv.EventLogMsg:
					msg := e.LogMessage()
					switch msg.Level {
					case "fatal", "error":
						slog.Error(msg.Text, "prefix", msg.Prefix)
					case "warn":
						slog.Warn(msg.Text, "prefix", msg.Prefix)
					}
				default:
					slog.Debug("MPV event", "event-id", e.EventID)
				}
			}
		case c := <-v.commandC:
			switch c := c.(type) {
			case CommandLoad:
				uri.Update(c.URI)
			}
		}
	}
}
