package main

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/SKINIKE/Roll-Write-Foundry/internal/assets"
	"github.com/SKINIKE/Roll-Write-Foundry/internal/helpers"
)

// bootstrapWatch re-runs the preparation whenever the manifest
// directory or the icons directory changes. Development convenience
// only; the packaging pipeline uses the one-shot default action.
// 		Args: c: cli.Context
func bootstrapWatch(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	prepare := func() {
		if err := assets.EnsurePlaceholderIcon(cfg.ManifestDir); err != nil {
			// Fatal in one-shot mode, but a watch session should survive it
			helpers.PrintError("icon", err)
			return
		}
		runCompat(cfg, porcelain(c))
	}
	prepare()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.ManifestDir); err != nil {
		return err
	}
	iconsDir := filepath.Join(cfg.ManifestDir, "icons")
	if helpers.Exists(iconsDir) {
		if err := watcher.Add(iconsDir); err != nil {
			return err
		}
	}
	log.Println("Watching", cfg.ManifestDir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Remove == fsnotify.Remove ||
				event.Op&fsnotify.Rename == fsnotify.Rename {
				log.Println("event:", event)
				prepare()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("error:", err)
		}
	}
}
