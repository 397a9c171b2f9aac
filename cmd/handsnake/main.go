package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/himanshmunjal/Hand-Gesture/internal/app"
	"github.com/himanshmunjal/Hand-Gesture/internal/capture"
	"github.com/himanshmunjal/Hand-Gesture/internal/store"
	"github.com/himanshmunjal/Hand-Gesture/internal/tray"
)

func main() {
	cameraID := flag.Int("camera", capture.AutoDetect, "camera device index (-1 probes automatically)")
	classic := flag.Bool("classic", false, "classic walls instead of wrap-around edges")
	dbPath := flag.String("db", "", "score database path (default ~/.handsnake/handsnake.db)")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	withTray := flag.Bool("tray", false, "show a system tray menu")
	flag.Parse()

	fmt.Println("Gesture Snake - hand-tracked snake game")

	cfg := app.DefaultConfig()
	cfg.CameraID = *cameraID
	cfg.WindowWidth = *width
	cfg.WindowHeight = *height
	cfg.Game.Wrap = !*classic

	// A broken score database degrades to an unpersisted session.
	st, err := openStore(*dbPath)
	if err != nil {
		log.Printf("score store unavailable: %v (scores will not be saved)", err)
	} else {
		defer st.Close()
		cfg.Store = st
	}

	a := app.New(cfg)

	if *withTray {
		runWithTray(a)
		return
	}

	if err := a.Run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

// openStore opens the score database, creating the data directory on
// first run.
func openStore(path string) (*store.Store, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}

		dbDir := filepath.Join(homeDir, ".handsnake")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		path = filepath.Join(dbDir, "handsnake.db")
	}

	return store.New(path)
}

// runWithTray runs the game loop in a goroutine while the tray owns
// the main one; systray requires that on macOS.
func runWithTray(a *app.App) {
	t := tray.New()
	t.OnPause(func(bool) {
		a.Send(app.CommandTogglePause)
	})
	t.OnWrap(func() {
		a.Send(app.CommandToggleWrap)
	})
	t.OnQuit(func() {
		a.Send(app.CommandQuit)
	})

	go func() {
		if err := a.Run(); err != nil {
			log.Printf("Application failed: %v", err)
		}
		t.Quit()
	}()

	t.Run()
}
