package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilefade/audio"
	"github.com/lixenwraith/tilefade/config"
	"github.com/lixenwraith/tilefade/core"
	"github.com/lixenwraith/tilefade/engine"
	"github.com/lixenwraith/tilefade/input"
	"github.com/lixenwraith/tilefade/render"
)

func main() {
	cfg, opts, err := config.Parse("tilefade", os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "tilefade: %v\n", err)
		os.Exit(2)
	}

	if opts.SavePath != "" {
		if err := config.Save(cfg, opts.SavePath); err != nil {
			fmt.Fprintf(os.Stderr, "tilefade: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: %s %dx%d", opts.Path, cfg.Rows, cfg.Columns)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "tilefade: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	keys := input.DefaultKeyTable()
	if err := keys.Bind(cfg.Keys); err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	var player engine.SoundPlayer
	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else {
		player = sound
		defer sound.Cleanup()
	}

	ctx, err := engine.NewGameContext(cfg, nil, player)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetResetHook(screen.Fini)
	defer screen.Fini()
	defer func() {
		core.HandleCrash(recover())
	}()

	screen.HideCursor()
	ctx.Resize(screen.Size())
	renderer := render.NewTerminalRenderer(screen)

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(ctx.FrameClock.Interval())
	defer ticker.Stop()

	renderer.Render(ctx)
	for {
		select {
		case ev := <-events:
			intent := keys.Translate(ev)
			if intent == input.IntentResize {
				screen.Sync()
				ctx.Resize(screen.Size())
				log.Printf("resize: %dx%d", ctx.Width, ctx.Height)
			}
			if !ctx.Apply(intent) {
				return nil
			}

		case <-ticker.C:
			ctx.Tick()
			renderer.Render(ctx)
		}
	}
}
