// Command orbit-term flies the vessel in a terminal, plotting the scene with
// braille characters.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"

	"orbit-lod/internal/app"
	"orbit-lod/internal/audio"
	"orbit-lod/internal/term"
	"orbit-lod/pkg/core"
)

// frameInterval paces redraws; the simulation keeps its own tick period.
const frameInterval = 33 * time.Millisecond

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "orbit-term: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	scene, err := app.NewScene(cfg)
	if err != nil {
		return err
	}

	var thruster *audio.Thruster
	if cfg.Audio {
		thruster, err = startAudio(scene.Seed)
		if err != nil {
			// Non-fatal, the viewer runs silent
			log.Printf("audio disabled: %v", err)
		} else {
			defer speaker.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableFocus()
	screen.Clear()

	loop(screen, term.NewViewer(screen, scene, thruster))
	return nil
}

func startAudio(seed core.Seed) (*audio.Thruster, error) {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	thruster := audio.NewThruster(seed)
	speaker.Play(audio.NewRumble(thruster, 0.6))
	return thruster, nil
}

func loop(screen tcell.Screen, v *term.Viewer) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.Handle(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			v.Tick(now)
		}
	}
}
