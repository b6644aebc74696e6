// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/ManuGH/medialive-go/internal/log"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Holder keeps the current configuration and reloads it when the config
// file or the schema file changes on disk.
type Holder struct {
	mu      sync.RWMutex
	current Config
	loader  *Loader
	logger  zerolog.Logger

	// runMu serializes reloads fired by the debounce timer.
	runMu   sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewHolder creates a holder with an already loaded configuration.
func NewHolder(initial Config, loader *Loader) *Holder {
	return &Holder{
		current: initial,
		loader:  loader,
		logger:  log.WithComponent("config"),
	}
}

// Get returns the current configuration.
func (h *Holder) Get() Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Reload loads the configuration again. On failure the previous
// configuration stays in place.
func (h *Holder) Reload() (Config, error) {
	h.logger.Info().Str(log.FieldEvent, "config.reload_start").Msg("reloading configuration")

	next, err := h.loader.Load()
	if err != nil {
		h.logger.Error().
			Err(err).
			Str(log.FieldEvent, "config.reload_failed").
			Msg("failed to load new configuration")
		return h.Get(), fmt.Errorf("load config: %w", err)
	}

	h.mu.Lock()
	old := h.current
	h.current = next
	h.mu.Unlock()

	h.logChanges(old, next)
	return next, nil
}

// watchedFiles lists the files whose changes trigger a reload.
func (h *Holder) watchedFiles() []string {
	files := []string{h.Get().Schema}
	if p := h.loader.Path(); p != "" {
		files = append(files, p)
	}
	for i, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			files[i] = abs
		}
	}
	return files
}

// StartWatcher watches the schema and config files and calls onChange with
// the reloaded configuration after each debounced burst of changes. The
// parent directories are watched so editors that replace files by rename
// are seen too. The watched set is fixed when the watcher starts.
func (h *Holder) StartWatcher(ctx context.Context, onChange func(context.Context, Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	files := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range h.watchedFiles() {
		files[f] = true
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	h.watcher = watcher
	h.done = make(chan struct{})
	h.logger.Info().
		Str(log.FieldEvent, "config.watcher_started").
		Int(log.FieldCount, len(files)).
		Msg("watching schema and config for changes")

	go h.watchLoop(ctx, files, onChange)
	return nil
}

func (h *Holder) watchLoop(ctx context.Context, files map[string]bool, onChange func(context.Context, Config)) {
	defer close(h.done)

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = h.watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str(log.FieldEvent, "config.watcher_stopped").Msg("watcher stopped")
			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if !files[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			h.logger.Debug().
				Str(log.FieldEvent, "config.file_changed").
				Str(log.FieldFile, event.Name).
				Str("op", event.Op.String()).
				Msg("watched file changed")

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(h.Get().Debounce, func() {
				h.runMu.Lock()
				defer h.runMu.Unlock()
				if ctx.Err() != nil {
					return
				}
				cfg, err := h.Reload()
				if err != nil {
					return
				}
				onChange(ctx, cfg)
			})

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().
				Err(err).
				Str(log.FieldEvent, "config.watcher_error").
				Msg("watcher error")
		}
	}
}

// Wait blocks until a started watcher has stopped.
func (h *Holder) Wait() {
	if h.done != nil {
		<-h.done
	}
}

func (h *Holder) logChanges(old, next Config) {
	if old.Schema != next.Schema {
		h.logger.Info().Str("old", old.Schema).Str("new", next.Schema).Msg("config changed: schema")
	}
	if old.OutputDir != next.OutputDir {
		h.logger.Info().Str("old", old.OutputDir).Str("new", next.OutputDir).Msg("config changed: outputDir")
	}
	if old.Package != next.Package {
		h.logger.Info().Str("old", old.Package).Str("new", next.Package).Msg("config changed: package")
	}
	if old.Workers != next.Workers {
		h.logger.Info().Int("old", old.Workers).Int("new", next.Workers).Msg("config changed: workers")
	}
}
