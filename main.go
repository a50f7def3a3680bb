package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/flipbook/api"
	"github.com/matt-g-everett/flipbook/desk"
	"github.com/matt-g-everett/flipbook/render"
	"github.com/matt-g-everett/flipbook/stream"
	"github.com/matt-g-everett/flipbook/window"
)

type app struct {
	Config desk.Config
	Desk   *desk.Desk
}

func newApp(config desk.Config) (*app, error) {
	a := new(app)
	a.Config = config

	d, err := desk.New(context.Background(), config, nil)
	if err != nil {
		return nil, err
	}
	a.Desk = d
	return a, nil
}

func (a *app) runHeadless(ctx context.Context) error {
	raster := render.NewRasterizer(a.Config.Window.Width, a.Config.Window.Height)
	sinks := []desk.Submitter{raster}

	if a.Config.Mqtt.Enabled() {
		client, err := stream.Connect(a.Config.Mqtt)
		if err != nil {
			return err
		}
		streamer := stream.NewStreamer(a.Config.Mqtt, client)
		defer streamer.Close()
		sinks = append(sinks, streamer)
	}

	if addr := a.Config.Headless.Listen; addr != "" {
		server := api.NewApi(a.Desk.Button(), a.Desk.Status)
		go func() {
			if err := server.Serve(ctx, addr); err != nil {
				log.Printf("api: %v", err)
			}
		}()
	}

	err := desk.RunHeadless(ctx, a.Desk, a.Config.Headless, sinks...)
	if path := a.Config.Headless.Snapshot; path != "" && raster.Image() != nil {
		if werr := render.WritePNG(path, raster.Image()); werr != nil {
			log.Printf("snapshot: %v", werr)
		} else {
			log.Printf("Wrote %s", path)
		}
	}
	return err
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "", "YAML config file.")
	headless := flag.Bool("headless", false, "Run without a window.")
	frames := flag.Uint64("frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	presses := flag.Int("presses", 0, "Press the flip button N times at start in headless mode.")
	snapshot := flag.String("snapshot", "", "Write the last headless frame to this PNG file.")
	flag.Parse()

	config := desk.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = desk.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *frames > 0 {
		config.Headless.Frames = *frames
	}
	if *presses > 0 {
		config.Headless.Presses = *presses
	}
	if *snapshot != "" {
		config.Headless.Snapshot = *snapshot
	}
	log.Printf("Config: %+v", config)

	a, err := newApp(config)
	if err != nil {
		log.Fatal(err)
	}

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := a.runHeadless(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
		return
	}

	if err := window.Run(a.Desk); err != nil {
		log.Fatal(err)
	}
}
