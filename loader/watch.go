// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/projconf/models"
)

// Watch reloads the configuration whenever a defaults or main file
// candidate is created, written, renamed or removed, and passes every result
// to onChange. Bursts of events are collapsed into one reload after the
// debounce delay (see [WithWatchDebounce]).
//
// Watch blocks until ctx is done and then returns nil.
func (l *Loader) Watch(ctx context.Context, onChange func(models.Mapping, error)) error {
	name, root, err := l.identity()
	if err != nil {
		return fmt.Errorf("error resolving project: %w", err)
	}

	watched := l.candidatePaths(name, root)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating file watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range watchDirs(watched) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("error watching %s: %w", dir, err)
		}
		l.log.Debug().Str("dir", dir).Msg("watching config directory")
	}

	var (
		timer   *time.Timer
		reloadC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, relevant := watched[filepath.Clean(ev.Name)]; !relevant {
				continue
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			l.log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("config file changed")

			if timer == nil {
				timer = time.NewTimer(l.debounce)
			} else {
				timer.Reset(l.debounce)
			}
			reloadC = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onChange(nil, fmt.Errorf("error watching config files: %w", err))

		case <-reloadC:
			reloadC = nil
			onChange(l.Load(ctx))
		}
	}
}

// candidatePaths returns every absolute path Load could pick for the
// defaults or the main file.
func (l *Loader) candidatePaths(name, root string) map[string]struct{} {
	out := make(map[string]struct{})

	add := func(candidates, dirs []string) {
		for _, dir := range dirs {
			for _, c := range candidates {
				p := c
				if !filepath.IsAbs(p) {
					p = filepath.Join(dir, c)
				}
				if abs, err := filepath.Abs(p); err == nil {
					out[abs] = struct{}{}
				}
			}
		}
	}

	add(l.defaultsCandidates(name), []string{root})
	add(l.mainCandidates(name), l.mainDirs(root))

	return out
}

// watchDirs returns the existing parent directories of paths.
func watchDirs(paths map[string]struct{}) []string {
	seen := make(map[string]struct{})
	var dirs []string
	for p := range paths {
		dir := filepath.Dir(p)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
