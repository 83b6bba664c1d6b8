/*
Orrery draws the Sun, Mercury, Venus, the Earth and the Moon moving on their
orbits. Run it from the repository root so the default asset directory
resolves, or point -config at a file naming another one.
*/
package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/orrery/engine"
	"github.com/spaghettifunk/orrery/engine/config"
	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/orrery"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		core.LogFatal("%s", err)
	}

	game := orrery.NewOrrery(cfg)

	e, err := engine.New(game.Game)
	if err != nil {
		core.LogFatal("failed to create the engine: %s", err)
	}

	if err := e.Initialize(); err != nil {
		if errors.Is(err, core.ErrGraphicsUnavailable) {
			core.LogFatal("%s", err)
		}
		_ = e.Shutdown()
		core.LogFatal("failed to initialize: %s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigCh
		e.RequestQuit()
	}()

	runErr := e.Run()
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogError("%s", runErr)
		os.Exit(1)
	}
}
