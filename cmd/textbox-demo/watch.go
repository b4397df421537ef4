package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// fileWatcher reports the new contents of one file. The parent directory is
// watched so that editors replacing the file by rename are noticed.
type fileWatcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
}

func watchFile(path string, log zerolog.Logger, onChange func(string)) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	fw := &fileWatcher{w: w, done: make(chan struct{})}
	go fw.loop(abs, log.With().Str("component", "watch").Logger(), onChange)
	return fw, nil
}

func (fw *fileWatcher) loop(path string, log zerolog.Logger, onChange func(string)) {
	defer close(fw.done)
	var last string
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			b, err := os.ReadFile(path)
			if err != nil {
				log.Debug().Err(err).Msg("read after change")
				continue
			}
			if text := string(b); text != last {
				last = text
				log.Debug().Str("op", ev.Op.String()).Int("bytes", len(b)).Msg("file changed")
				onChange(text)
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (fw *fileWatcher) Close() error {
	err := fw.w.Close()
	<-fw.done
	return err
}
