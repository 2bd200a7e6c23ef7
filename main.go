package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mkarls/pixelphys/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	watch := flag.Bool("watch", false, "reload gravity from the config file while running")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *config.Watcher
	if *watch {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("pixelphys demo")
	ebiten.SetTPS(cfg.TargetFPS)

	if err := ebiten.RunGame(NewGame(cfg, watcher)); err != nil {
		log.Fatal(err)
	}
}
