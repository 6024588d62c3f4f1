package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/geometry-fighter/audio"
	"github.com/lixenwraith/geometry-fighter/config"
	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/save"
)

func main() {
	// Panic recovery: reset the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(config.DefaultEnvFile, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "geometry-fighter: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: save=%s lives=%d bias=%s tick=%v audio=%v",
		cfg.SaveFile, cfg.InitialLives, cfg.ColorBias, cfg.TickRate, cfg.Audio.Enabled)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	core.SetCrashHook(screen.Fini)

	screen.EnableMouse()
	screen.HideCursor()

	// Audio is optional; the game runs silent without a device
	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		sound.LoadOverrides()
		defer sound.Cleanup()
	}

	store := save.NewFileStore(cfg.SaveFile)
	a := newApp(cfg, screen, sound, store, engine.NewMonotonicTimeProvider())

	run(a, screen, cfg.TickRate)
}

// run is the main loop: a single select serializes terminal events, signals and frame ticks
func run(a *app, screen tcell.Screen, tick time.Duration) {
	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if a.handleEvent(ev) {
				a.shutdown()
				return
			}
		case sig := <-sigChan:
			log.Printf("signal %v", sig)
			a.shutdown()
			return
		case <-ticker.C:
			a.frame()
		}
	}
}
