// Copyright 2020 ZUP IT SERVICOS EM TECNOLOGIA E INOVACAO SA
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config reads the cdecl configuration file: a plain script of
// set and define commands executed through the same command reader as
// interactive input.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/cdecl-go/cdecl/internal/cmdlang"
	"github.com/cdecl-go/cdecl/internal/session"
	"github.com/cdecl-go/cdecl/internal/source"
)

// EnvVar names the environment variable that overrides the default config
// file location.
const EnvVar = "CDECLRC"

// DefaultPath resolves the config file path: $CDECLRC if set, else
// $HOME/.cdeclrc.
func DefaultPath() string {
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cdeclrc")
}

// Load executes the config file at path against sess. A missing file is
// not an error (most users have no config); any other read failure is.
// Command errors within the file are reported to errw with a caret
// diagnostic and do not stop the remaining commands, matching batch-mode
// error handling.
func Load(sess *session.Session, path string, errw io.Writer) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	f := source.New(path, data)
	r := &cmdlang.Runner{Sess: sess, Out: io.Discard}
	f.Lines(func(row int, text string) bool {
		if _, cerr := r.Execute(text, row); cerr != nil {
			fmt.Fprintf(errw, "%s:%d:\n", f.DisplayName(), row)
			cmdlang.PrintError(errw, text, cerr)
		}
		return true
	})
	return nil
}

// Watcher reloads the config file whenever it changes on disk, so a
// long-lived interactive session picks up edits to ~/.cdeclrc without a
// restart.
type Watcher struct {
	w    *fsnotify.Watcher
	path string
	sess *session.Session
	errw io.Writer
	done chan struct{}
}

// Watch starts watching path, applying it to sess on every write. The
// returned Watcher must be closed by the caller.
func Watch(sess *session.Session, path string, errw io.Writer) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	// Watch the directory, not the file: editors commonly replace the file
	// on save, which drops a watch registered on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: %w", err)
	}

	w := &Watcher{w: fw, path: path, sess: sess, errw: errw, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				if err := Load(w.sess, w.path, w.errw); err != nil {
					fmt.Fprintf(w.errw, "%s\n", err)
				}
			}
		case _, ok := <-w.w.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.w.Close()
}
