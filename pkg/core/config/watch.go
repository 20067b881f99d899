// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     config
// Description: Reloads a configuration file when it changes on disk
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/mystring/foundation/core/error"
	"github.com/msto63/mystring/foundation/core/log"
)

// DefaultDebounce suppresses the burst of events one save produces
const DefaultDebounce = 200 * time.Millisecond

// Watcher delivers a freshly loaded Config whenever its file is written.
// Reloads that fail to parse or validate are logged and skipped.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	updates  chan *Config
	logger   *log.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// Watch starts watching path until ctx is cancelled or Close is called.
// The parent directory is watched so that editors replacing the file are seen.
func Watch(ctx context.Context, path string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.GetDefault()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to resolve config path").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeInternal).
			WithOperation("config.Watch")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", abs)
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		watcher:  fsw,
		updates:  make(chan *Config, 1),
		logger:   logger.WithField("component", "config-watcher"),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}

	w.logger.Debug("watching configuration", log.String("path", abs))
	go w.loop(ctx)

	return w, nil
}

// Updates returns the channel of reloaded configurations. It is closed when
// the watcher stops.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops the watcher and waits for it to finish
func (w *Watcher) Close() error {
	w.stopOnce.Do(func() { close(w.stopCh) })
	<-w.done
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer func() {
		w.watcher.Close()
		close(w.updates)
		close(w.done)
	}()

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(w.debounce)

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.WarnWithErr("configuration reload skipped", err, log.String("path", w.path))
		return
	}

	w.logger.Info("configuration reloaded", log.String("path", w.path))

	// Keep only the newest configuration if the reader is behind.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
