package main

import (
	"flag"
	"fmt"
	"os"

	"cubefield/internal/cubefield"
	"cubefield/internal/debug"
	"cubefield/internal/engineconfig"
	"cubefield/internal/env"
	"cubefield/internal/graphics"
	"cubefield/internal/logger"
)

func main() {
	configPath := flag.String("config", engineconfig.DefaultPath, "YAML config file")
	envPath := flag.String("env", ".env", "file with CUBEFIELD_* overrides")
	flag.Parse()

	if err := run(*configPath, *envPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run opens the window, attaches the cube field to it, and drives the frame loop
// until the window is closed. Resize events go straight to the field so the next
// frame is drawn with the new projection.
func run(configPath, envPath string) error {
	if _, err := env.Load(envPath); err != nil {
		return fmt.Errorf("load %s: %w", envPath, err)
	}
	prefs, _ := engineconfig.Load(configPath)
	prefs, err := engineconfig.ApplyEnv(prefs)
	if err != nil {
		return err
	}
	log := logger.New(prefs.LogPath)

	win, err := graphics.Open(graphics.Options{
		Width:       prefs.Width,
		Height:      prefs.Height,
		Title:       prefs.Title,
		TargetFPS:   prefs.TargetFPS,
		Fullscreen:  prefs.Fullscreen,
		Transparent: prefs.Transparent,
		MSAA:        prefs.MSAA,
	})
	if err != nil {
		log.Log(err.Error())
		return err
	}
	defer win.Close()
	width, height := win.Size()
	log.Logf("window opened %dx%d", width, height)

	opts := []cubefield.Option{
		cubefield.WithErrorHandler(func(err error) {
			log.Logf("cube field stopped: %v", err)
		}),
	}
	if prefs.Seed != 0 {
		opts = append(opts, cubefield.WithSeed(prefs.Seed))
	}
	field := cubefield.New(graphics.NewBackend(), win, opts...)
	if err := field.AttachSurface(win); err != nil {
		log.Logf("attach surface: %v", err)
		return err
	}
	defer field.DetachSurface()
	log.Logf("cube field attached (%d cubes)", field.Scene().Group.Len())

	dbg := debug.New()
	dbg.SetShow(prefs.ShowFPS)
	overlay := func() {
		stats := debug.Stats{State: field.State().String()}
		if l := field.Loop(); l != nil {
			stats.Frames = l.Frames()
		}
		if s := field.Scene(); s != nil {
			stats.Cubes = s.Group.Len()
		}
		dbg.Draw(stats)
	}
	win.Run(field.NotifyResize, overlay)

	if l := field.Loop(); l != nil {
		log.Logf("window closed after %d frames", l.Frames())
	}
	return nil
}
