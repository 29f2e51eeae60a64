package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/tilefade/audio"
	"github.com/lixenwraith/tilefade/config"
	"github.com/lixenwraith/tilefade/engine"
	"github.com/lixenwraith/tilefade/gui"
)

const (
	windowWidth  = 900
	windowHeight = 720
)

func main() {
	cfg, opts, err := config.Parse("tilefade-gui", os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "tilefade-gui: %v\n", err)
		os.Exit(2)
	}
	if opts.SavePath != "" {
		if err := config.Save(cfg, opts.SavePath); err != nil {
			fmt.Fprintf(os.Stderr, "tilefade-gui: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Debug logs go to stderr; there is no raw-mode terminal to protect
	if !cfg.Debug {
		log.SetOutput(io.Discard)
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
		log.Fatalf("context: %v", err)
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("tilefade")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(gui.NewGame(ctx)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("run: %v", err)
	}
}
