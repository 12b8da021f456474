// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
)

// LoadEnvironmentFile - seed the process environment from an env file,
// variables already set in the environment are kept
func LoadEnvironmentFile(fileName string) error {
	return godotenv.Load(fileName)
}

// EnvironmentWatcher - background process reloading the env file when
// it changes so the next reconnect attempt reads rotated credentials
type EnvironmentWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	fileName string
	reloaded chan struct{}
}

// NewEnvironmentWatcher - watch the directory of the file, editors
// often replace a file rather than write it in place
func NewEnvironmentWatcher(fileName string) (*EnvironmentWatcher, error) {
	log := logger.New("environment")

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(fileName)); nil != err {
		log.Errorf("watch: %q  error: %s", fileName, err)
		watcher.Close()
		return nil, err
	}

	return &EnvironmentWatcher{
		log:      log,
		watcher:  watcher,
		fileName: fileName,
		reloaded: make(chan struct{}, 1),
	}, nil
}

// Reloaded - receives after each successful reload, never blocks the watcher
func (w *EnvironmentWatcher) Reloaded() <-chan struct{} {
	return w.reloaded
}

// Run - background process entry
func (w *EnvironmentWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Infof("watching: %q", w.fileName)

	defer w.watcher.Close()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != filepath.Base(w.fileName) {
				continue
			}
			if !fileChanged(event) {
				continue
			}
			log.Infof("file event: %s", event)
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	log.Info("shutting down…")
	log.Flush()
}

func (w *EnvironmentWatcher) reload() {
	if err := godotenv.Overload(w.fileName); nil != err {
		w.log.Errorf("reload: %q  error: %s", w.fileName, err)
		return
	}
	w.log.Info("environment reloaded")

	select {
	case w.reloaded <- struct{}{}:
	default:
	}
}

func fileChanged(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
