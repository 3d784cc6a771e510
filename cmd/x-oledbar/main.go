package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ItsNotGoodName/x-oledbar/internal/bar"
	"github.com/ItsNotGoodName/x-oledbar/internal/build"
	"github.com/ItsNotGoodName/x-oledbar/internal/config"
	"github.com/ItsNotGoodName/x-oledbar/internal/offset"
	"github.com/ItsNotGoodName/x-oledbar/internal/placement"
	"github.com/ItsNotGoodName/x-oledbar/pkg/sutureext"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
)

type Options struct {
	Debug    bool   `doc:"enable debug"`
	Tallness int    `doc:"combined height of both bars in pixels" short:"t" default:"200"`
	Config   string `doc:"optional config file (yaml, json or toml)"`
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
			opts, err := NewBarOptions(options)
			if err != nil {
				return err
			}

			conn, err := xgb.NewConn()
			if err != nil {
				return fmt.Errorf("cannot open display: %w", err)
			}
			defer conn.Close()

			controller, err := bar.Setup(conn, opts)
			if err != nil {
				return err
			}
			defer controller.Close()

			return sutureext.Run(ctx, build.Name, controller)
		})
	})

	cli.Root().Use = build.Name
	cli.Root().Short = "Randomly sized top and bottom docks against OLED burn-in"
	cli.Root().Version = build.Current.Version
	cli.Root().SetVersionTemplate(build.Current.String() + "\n")

	cli.Root().AddCommand(&cobra.Command{
		Use:   "layout",
		Short: "Print where the bars would be placed without creating them",
		Run: humacli.WithOptions(func(cmd *cobra.Command, args []string, options *Options) {
			pair, err := offset.Draw(options.Tallness, offset.NewSource())
			if err != nil {
				log.Fatal(err)
			}

			conn, err := xgb.NewConn()
			if err != nil {
				log.Fatal(fmt.Errorf("cannot open display: %w", err))
			}
			defer conn.Close()

			root := xproto.Setup(conn).DefaultScreen(conn).Root
			pp.Println(pair)
			pp.Println(bar.Resolve(placement.NewConn(conn, root), pair))
		}),
	})

	cli.Run()
}

// NewBarOptions validates the flags and config file before any window exists.
func NewBarOptions(options *Options) (bar.Options, error) {
	store := config.NewDefaultStore()
	if options.Config != "" {
		driver, err := config.NewDriver(options.Config)
		if err != nil {
			return bar.Options{}, err
		}
		store = config.NewStore(driver)
	}

	cfg, err := store.GetConfig()
	if err != nil {
		return bar.Options{}, err
	}

	background, err := cfg.BackgroundPixel()
	if err != nil {
		return bar.Options{}, err
	}

	pair, err := offset.Draw(options.Tallness, offset.NewSource())
	if err != nil {
		return bar.Options{}, err
	}

	return bar.Options{
		Offset:     pair,
		Background: background,
		Cursor:     cfg.Cursor,
	}, nil
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
