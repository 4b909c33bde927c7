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

// Package clirepl implements cdecl's line-oriented front end: the
// interactive prompt loop and the batch runner for files and pipes. The
// core never sees this package; it is handed commands one line at a time
// through cmdlang.
package clirepl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/cdecl-go/cdecl/internal/cmdlang"
	"github.com/cdecl-go/cdecl/internal/session"
	"github.com/cdecl-go/cdecl/internal/source"
)

// Prompt is the interactive prompt string.
const Prompt = "cdecl> "

// REPL drives a command session over a reader/writer pair.
type REPL struct {
	Sess *session.Session
	In   io.Reader
	Out  io.Writer
	Err  io.Writer

	// Interactive enables the prompt and the redefinition confirmation
	// dialog; batch mode leaves both off.
	Interactive bool
}

// Run reads commands until EOF or quit. In batch mode it returns
// ErrCommandFailed if any command failed, so the process can exit with the
// data-format error code; interactive mode always returns nil on EOF.
func (r *REPL) Run() error {
	runner := &cmdlang.Runner{Sess: r.Sess, Out: r.Out}
	if r.Interactive {
		runner.OnRedefine = r.confirmRedefine
	}

	failed := false
	sc := bufio.NewScanner(r.In)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for {
		if r.Interactive {
			fmt.Fprint(r.Out, Prompt)
		}
		if !sc.Scan() {
			break
		}
		lineNo++
		line := sc.Text()
		quit, err := runner.Execute(line, lineNo)
		if err != nil {
			failed = true
			cmdlang.PrintError(r.Err, line, err)
		}
		if quit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if failed && !r.Interactive {
		return ErrCommandFailed
	}
	return nil
}

// RunFile executes every command in the named file's content, reporting
// errors with file:line prefixes.
func (r *REPL) RunFile(f *source.File) error {
	runner := &cmdlang.Runner{Sess: r.Sess, Out: r.Out}

	failed := false
	stop := false
	f.Lines(func(row int, text string) bool {
		quit, err := runner.Execute(text, row)
		if err != nil {
			failed = true
			fmt.Fprintf(r.Err, "%s:%d:\n", f.DisplayName(), row)
			cmdlang.PrintError(r.Err, text, err)
		}
		stop = quit
		return !quit
	})
	if failed && !stop {
		return ErrCommandFailed
	}
	return nil
}

// ErrCommandFailed reports that at least one command in a batch failed;
// the CLI maps it to the data-format exit code.
var ErrCommandFailed = fmt.Errorf("one or more commands failed")

// confirmRedefine asks the user whether an existing typedef should be
// replaced by a structurally different redefinition.
func (r *REPL) confirmRedefine(name string) bool {
	replace := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("%q is already defined with a different type", name)).
			Description("Replace the existing definition?").
			Value(&replace),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return replace
}
