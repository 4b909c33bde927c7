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

// Package cli builds cdecl's command-line surface: flag parsing, config
// loading, language selection, and the dispatch into interactive or batch
// mode.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cdecl-go/cdecl/internal/clirepl"
	"github.com/cdecl-go/cdecl/internal/config"
	"github.com/cdecl-go/cdecl/internal/langver"
	"github.com/cdecl-go/cdecl/internal/session"
	"github.com/cdecl-go/cdecl/internal/source"
)

// Version is stamped by the build.
var Version = "dev"

// Exit codes, following the BSD sysexits convention.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitData     = 65
	ExitNoInput  = 66
	ExitInternal = 70
	ExitOSErr    = 71
	ExitIO       = 74
	ExitNoPerm   = 77
)

// exitError carries an explicit process exit code through cobra's error
// return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// ExitCode maps an error returned by the root command to a process exit
// code.
func ExitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, clirepl.ErrCommandFailed) {
		return ExitData
	}
	if errors.Is(err, os.ErrNotExist) {
		return ExitNoInput
	}
	if errors.Is(err, os.ErrPermission) {
		return ExitNoPerm
	}
	return ExitUsage
}

type options struct {
	language    string
	configPath  string
	noConfig    bool
	eastConst   bool
	explicitInt string
	altTokens   bool
	digraphs    bool
	trigraphs   bool
	color       string
	file        string
}

// NewRootCmd builds the cdecl root command. defaultCPP selects C++ as the
// default language, for cppdecl/cxxdecl invocations.
func NewRootCmd(defaultCPP bool) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "cdecl [flags] [FILE|-]",
		Short:         "compose and decompose C/C++ declarations",
		Long:          "cdecl translates English descriptions of C and C++ declarations into\nsource syntax and back again.",
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args, defaultCPP)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opts.language, "language", "l", "", "language version (c89..c23, c++98..c++20)")
	fl.StringVarP(&opts.configPath, "config", "c", "", "config file path (default $CDECLRC or ~/.cdeclrc)")
	fl.BoolVar(&opts.noConfig, "no-config", false, "do not read any config file")
	fl.BoolVar(&opts.eastConst, "east-const", false, "print \"int const\" instead of \"const int\"")
	fl.StringVar(&opts.explicitInt, "explicit-int", "", "always print \"int\" even when implicit")
	fl.BoolVar(&opts.altTokens, "alt-tokens", false, "use alternative tokens in gibberish output")
	fl.BoolVar(&opts.digraphs, "digraphs", false, "use digraphs in gibberish output")
	fl.BoolVar(&opts.trigraphs, "trigraphs", false, "use trigraphs in gibberish output")
	fl.StringVar(&opts.color, "color", "auto", "colorize output: auto, always, never")
	fl.StringVar(&opts.file, "file", "", "read commands from FILE")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string, defaultCPP bool) error {
	sess, err := newSession(opts, defaultCPP)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})).With("session", sess.ID.String())

	if !opts.noConfig {
		path := opts.configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if path != "" {
			if err := config.Load(sess, path, cmd.ErrOrStderr()); err != nil {
				log.Warn("config load failed", "path", path, "err", err)
			}
		}
	}

	input := opts.file
	if input == "" && len(args) == 1 {
		input = args[0]
	}

	if input != "" && input != "-" {
		return runFile(cmd, sess, input)
	}
	return runStdin(cmd, sess)
}

func newSession(opts *options, defaultCPP bool) (*session.Session, error) {
	v := langver.C17
	if defaultCPP {
		v = langver.CPP17
	}
	if opts.language != "" {
		parsed, ok := langver.Parse(opts.language)
		if !ok {
			return nil, &exitError{
				code: ExitUsage,
				err:  fmt.Errorf("unknown language %q", opts.language),
			}
		}
		v = parsed
	}

	sess := session.New(v)
	sess.Options.EastConst = opts.eastConst
	sess.Options.ExplicitInt = opts.explicitInt != ""
	sess.Options.AltTokens = opts.altTokens
	sess.Options.Digraphs = opts.digraphs
	sess.Options.Trigraphs = opts.trigraphs
	sess.Options.Color = opts.color == "always"
	return sess, nil
}

func runFile(cmd *cobra.Command, sess *session.Session, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &exitError{code: ExitNoInput, err: err}
		}
		if errors.Is(err, os.ErrPermission) {
			return &exitError{code: ExitNoPerm, err: err}
		}
		return &exitError{code: ExitIO, err: err}
	}

	repl := &clirepl.REPL{
		Sess: sess,
		Out:  cmd.OutOrStdout(),
		Err:  cmd.ErrOrStderr(),
	}
	if err := repl.RunFile(source.New(path, data)); err != nil {
		return &exitError{code: ExitData, err: err}
	}
	return nil
}

func runStdin(cmd *cobra.Command, sess *session.Session) error {
	interactive := isTerminal(cmd.InOrStdin())
	if interactive {
		// Pick up ~/.cdeclrc edits live for long-running sessions.
		if path := config.DefaultPath(); path != "" {
			if w, err := config.Watch(sess, path, cmd.ErrOrStderr()); err == nil {
				defer w.Close()
			}
		}
	}
	repl := &clirepl.REPL{
		Sess:        sess,
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Err:         cmd.ErrOrStderr(),
		Interactive: interactive,
	}
	if err := repl.Run(); err != nil {
		if errors.Is(err, clirepl.ErrCommandFailed) {
			return &exitError{code: ExitData, err: err}
		}
		return &exitError{code: ExitIO, err: err}
	}
	return nil
}

// isTerminal reports whether in is an interactive terminal. cobra tests
// substitute bytes.Buffer inputs, which are never interactive.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
