package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ItsNotGoodName/x-collage/collage"
	"github.com/ItsNotGoodName/x-collage/internal/api"
	"github.com/ItsNotGoodName/x-collage/internal/app"
	"github.com/ItsNotGoodName/x-collage/internal/build"
	"github.com/ItsNotGoodName/x-collage/internal/bus"
	"github.com/ItsNotGoodName/x-collage/internal/config"
	"github.com/ItsNotGoodName/x-collage/internal/core"
	"github.com/ItsNotGoodName/x-collage/internal/svgview"
	"github.com/ItsNotGoodName/x-collage/internal/xviewer"
	"github.com/ItsNotGoodName/x-collage/internal/xwm"
	"github.com/ItsNotGoodName/x-collage/mosaic"
	"github.com/ItsNotGoodName/x-collage/pkg/sutureext"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/jezek/xgb"
	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
	"github.com/thejerf/suture/v4"
)

type Options struct {
	Debug    bool   `doc:"enable debug"`
	Host     string `doc:"host to listen on"`
	Port     int    `doc:"port to listen on" default:"8080"`
	Config   string `doc:"config file (.yaml or .json)" default:".x-collage.yaml"`
	Watch    bool   `doc:"replace the layout when the config file changes"`
	Headless bool   `doc:"run without an X server, panels are only rendered as SVG"`
	Width    int    `doc:"canvas width when headless" default:"1920"`
	Height   int    `doc:"canvas height when headless" default:"1080"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			return serve(ctx, options)
		})
	})

	cli.Root().Use = "x-collage"
	cli.Root().Version = build.Current.Version
	cli.Root().AddCommand(layoutsCommand())

	cli.Run()
}

func serve(ctx context.Context, options *Options) error {
	bus.SetContext(ctx)
	slog.Info("Starting", "build", build.Current)

	configFilePath, err := filepath.Abs(options.Config)
	if err != nil {
		return err
	}

	driver, err := config.Open(configFilePath)
	if err != nil {
		return err
	}

	store, err := config.NewStore(driver)
	if err != nil {
		return err
	}

	cfg, err := store.GetConfig()
	if err != nil {
		return err
	}

	super := sutureext.NewSimple("root")

	var (
		host          collage.Host
		loader        collage.Loader
		width, height float32
		headless      *svgview.Host
		conn          *xgb.Conn
		window        xwm.Window
	)
	if options.Headless {
		headless = svgview.NewHost()
		host, loader = headless, headless
		width, height = float32(options.Width), float32(options.Height)
	} else {
		conn, err = xgb.NewConn()
		if err != nil {
			return err
		}
		defer conn.Close()

		window, err = xwm.CreateWindow(conn)
		if err != nil {
			return err
		}

		host = app.NewHost(conn, window, xviewer.Options{
			Placeholder: cfg.Placeholder,
			Hwdec:       cfg.Hwdec,
		})
		loader = xviewer.Loader{}
		width, height = float32(window.Width), float32(window.Height)
	}

	c := collage.New(host, loader, cfg.Collage())
	defer c.Close()

	c.SetImageClickListener(func(p *collage.Panel) {
		slog.Info("Panel clicked", "index", p.Index, "id", p.ID)
		bus.Publish(bus.PanelClicked{ID: p.ID, Index: p.Index, Time: time.Now()})
	})

	apply := func(cfg config.Config) error {
		layout, err := mosaic.Lookup(cfg.Layout)
		if err != nil {
			return err
		}

		w, h := width, height
		if snap := c.Snapshot(); snap.Attached {
			w, h = snap.Canvas.Width, snap.Canvas.Height
		}

		if err := c.Attach(layout, w, h, cfg.Images); err != nil {
			return err
		}
		c.EnableBorder(cfg.Border)
		return nil
	}
	if err := apply(cfg); err != nil {
		return err
	}

	clicks := bus.NewHub[bus.PanelClicked]().Register()
	server := api.New(c, store, apply, clicks)
	if headless != nil {
		server.SetRenderer(func(buf *bytes.Buffer, snap collage.Snapshot) {
			headless.Render(buf, snap)
		})
	}

	sutureext.Add(super, c)
	sutureext.Add(super, server)
	sutureext.Add(super, sutureext.NewServiceFunc("http", func(ctx context.Context) error {
		return listen(ctx, core.Address(options.Host, options.Port), server.Handler())
	}))
	if conn != nil {
		sutureext.Add(super, app.New(conn, window, c))
	}
	if options.Watch {
		sutureext.Add(super, sutureext.NewServiceFunc("config.Watch", func(ctx context.Context) error {
			return config.Watch(ctx, configFilePath, func() {
				cfg, err := store.GetConfig()
				if err != nil {
					slog.Error("Failed to read config", "path", configFilePath, "error", err)
					return
				}
				if err := apply(cfg); err != nil {
					slog.Error("Failed to apply config", "path", configFilePath, "error", err)
				}
			})
		}))
	}

	err = super.Serve(ctx)
	if errors.Is(err, suture.ErrTerminateSupervisorTree) {
		return nil
	}
	return err
}

func listen(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errC := make(chan error, 1)
	go func() { errC <- srv.ListenAndServe() }()
	slog.Info("Listening", "address", addr)

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errC

	return ctx.Err()
}

func layoutsCommand() *cobra.Command {
	var width, height float32

	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Print the initial geometry of every layout",
		Run: func(cmd *cobra.Command, args []string) {
			for _, layout := range api.Layouts(width, height) {
				pp.Println(layout)
			}
		},
	}
	cmd.Flags().Float32Var(&width, "width", 1920, "canvas width")
	cmd.Flags().Float32Var(&height, "height", 1080, "canvas height")

	return cmd
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}
