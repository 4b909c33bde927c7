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

package cmdlang

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cdecl-go/cdecl/internal/check"
	"github.com/cdecl-go/cdecl/internal/decl"
	"github.com/cdecl-go/cdecl/internal/dump"
	"github.com/cdecl-go/cdecl/internal/english"
	"github.com/cdecl-go/cdecl/internal/gibberish"
	"github.com/cdecl-go/cdecl/internal/langver"
	"github.com/cdecl-go/cdecl/internal/session"
	"github.com/cdecl-go/cdecl/internal/sname"
)

// Runner executes cdecl command lines against a Session, writing results
// to Out. A command's errors are returned to the caller, which decides how
// to print them (caret diagnostics in the REPL, exit codes in batch mode);
// the one exception is include, which prints the diagnostic of each
// failing command of the included file to standard error itself.
type Runner struct {
	Sess *session.Session
	Out  io.Writer

	// OnRedefine, when non-nil, is consulted when a define command names an
	// already defined typedef with a different tree; returning true replaces
	// the existing definition. The interactive front-end wires a
	// confirmation prompt here; batch mode leaves it nil and the
	// redefinition stays an error.
	OnRedefine func(name string) bool
}

// Execute runs one command line. It reports quit=true when the command
// asks the process to exit; a non-nil error is a lex, parse, or semantic
// error that suppressed the command's output.
func (r *Runner) Execute(line string, lineNo int) (quit bool, err error) {
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ";"))
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	cmd, rest := splitCommand(line)
	// Token columns are offset by the command word so caret diagnostics
	// line up under the full command line.
	off := len(line) - len(rest)
	switch strings.ToLower(cmd) {
	case "declare":
		return false, r.declare(rest, lineNo, off)
	case "explain":
		return false, r.explain(rest, lineNo, off)
	case "cast":
		return false, r.cast(rest, lineNo, off)
	case "define":
		return false, r.define(rest, lineNo, off)
	case "typedef":
		return false, r.typedefCmd(rest, lineNo, off)
	case "set":
		return false, r.set(rest)
	case "show":
		return false, r.show(rest)
	case "include":
		return false, r.include(rest)
	case "help", "?":
		r.help()
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	default:
		// A line with no command word is an implicit explain, matching the
		// original's treatment of raw gibberish typed at the prompt.
		return false, r.explain(line, lineNo, 0)
	}
}

func splitCommand(line string) (cmd, rest string) {
	parts := strings.SplitN(line, " ", 2)
	cmd = parts[0]
	if len(parts) == 2 {
		rest = strings.TrimSpace(parts[1])
	}
	return cmd, rest
}

// declare handles "declare NAME as PHRASE": English in, gibberish out.
func (r *Runner) declare(rest string, lineNo, colOffset int) error {
	a := decl.NewArena()
	defer a.Release()

	s, err := newStream(rest, lineNo, colOffset)
	if err != nil {
		return err
	}
	name, err := expectNameAs(s)
	if err != nil {
		return err
	}
	ep := &englishParser{a: a, sess: r.Sess, s: s}
	tree, err := ep.parsePhrase()
	if err != nil {
		return err
	}
	tree.Name = name
	if err := check.Check(r.Sess, tree); err != nil {
		return err
	}
	r.debugDump(tree)
	fmt.Fprintln(r.Out, gibberish.Render(r.Sess, tree))
	return nil
}

// debugDump writes the tree's structured dump when "set debug" is on.
func (r *Runner) debugDump(tree *decl.Node) {
	if r.Sess.Options.Debug {
		_ = dump.Dump(r.Out, tree)
	}
}

// cast handles "cast NAME into PHRASE": English in, C-style cast out.
func (r *Runner) cast(rest string, lineNo, colOffset int) error {
	a := decl.NewArena()
	defer a.Release()

	s, err := newStream(rest, lineNo, colOffset)
	if err != nil {
		return err
	}
	operandTok, ok := s.next()
	if !ok {
		return &SyntaxError{Message: "expected a name to cast"}
	}
	if err := s.expect("into"); err != nil {
		return err
	}
	ep := &englishParser{a: a, sess: r.Sess, s: s}
	tree, err := ep.parsePhrase()
	if err != nil {
		return err
	}
	if err := check.Check(r.Sess, tree); err != nil {
		return err
	}
	fmt.Fprintln(r.Out, gibberish.RenderCast(r.Sess, tree, operandTok.Text))
	return nil
}

// explain handles "explain GIBBERISH" (and "explain (TYPE)x" cast
// expressions): C/C++ in, English out.
func (r *Runner) explain(rest string, lineNo, colOffset int) error {
	a := decl.NewArena()
	defer a.Release()

	s, err := newStream(rest, lineNo, colOffset)
	if err != nil {
		return err
	}

	if s.is("(") {
		if out, ok, err := r.explainCast(a, s); ok || err != nil {
			if err != nil {
				return err
			}
			fmt.Fprintln(r.Out, out)
			return nil
		}
	}

	gp := &gibberishParser{a: a, sess: r.Sess, s: s}
	tree, err := gp.parseDecl()
	if err != nil {
		return err
	}
	if !s.eof() {
		t, _ := s.peek()
		return &SyntaxError{Pos: t.Pos, Message: "unexpected " + t.Text}
	}
	if err := check.Check(r.Sess, tree); err != nil {
		return err
	}
	r.debugDump(tree)
	fmt.Fprintln(r.Out, english.Render(tree))
	return nil
}

// explainCast tries to read "( decl-specs abstract-declarator ) NAME"; it
// reports ok=false with the stream rewound when the input turns out not to
// be a cast expression after all.
func (r *Runner) explainCast(a *decl.Arena, s *stream) (out string, ok bool, err error) {
	save := s.pos
	s.accept("(")

	gp := &gibberishParser{a: a, sess: r.Sess, s: s}
	tree, perr := gp.parseDecl()
	if perr != nil || !s.accept(")") {
		s.pos = save
		return "", false, nil
	}
	operand, hasOperand := s.next()
	if !hasOperand || !isIdent(operand.Text) || !s.eof() {
		s.pos = save
		return "", false, nil
	}
	if err := check.Check(r.Sess, tree); err != nil {
		return "", true, err
	}
	return english.RenderCast(tree, operand.Text), true, nil
}

// define handles "define NAME as PHRASE": adds a user typedef.
func (r *Runner) define(rest string, lineNo, colOffset int) error {
	a := decl.NewArena()
	// No Release: on success the registry takes ownership of the tree.

	s, err := newStream(rest, lineNo, colOffset)
	if err != nil {
		return err
	}
	name, err := expectNameAs(s)
	if err != nil {
		return err
	}
	ep := &englishParser{a: a, sess: r.Sess, s: s}
	tree, err := ep.parsePhrase()
	if err != nil {
		return err
	}
	if err := check.Check(r.Sess, tree); err != nil {
		return err
	}
	tree.Name = name
	return r.defineTree(name, tree)
}

// typedefCmd handles "typedef GIBBERISH", the C-form synonym of define:
// the declared name becomes the typedef name.
func (r *Runner) typedefCmd(rest string, lineNo, colOffset int) error {
	a := decl.NewArena()

	s, err := newStream(rest, lineNo, colOffset)
	if err != nil {
		return err
	}
	gp := &gibberishParser{a: a, sess: r.Sess, s: s}
	tree, err := gp.parseDecl()
	if err != nil {
		return err
	}
	decl.TakeTypedef(tree)
	name := decl.TakeName(tree)
	if name.Empty() {
		return &SyntaxError{Message: "typedef requires a name"}
	}
	if err := check.Check(r.Sess, tree); err != nil {
		return err
	}
	tree.Name = name
	return r.defineTree(name, tree)
}

func (r *Runner) defineTree(name sname.Name, tree *decl.Node) error {
	err := r.Sess.Typedefs.Define(name, tree)
	if err != nil && r.OnRedefine != nil && r.OnRedefine(name.Full()) {
		return r.Sess.Typedefs.Replace(name, tree)
	}
	return err
}

// set handles "set OPTION": a language version name or an option toggle.
func (r *Runner) set(rest string) error {
	opt := strings.ToLower(strings.TrimSpace(rest))
	if opt == "" || opt == "options" {
		r.showOptions()
		return nil
	}

	if v, ok := langver.Parse(opt); ok {
		r.Sess.LangVersion = v
		return nil
	}

	value := true
	if strings.HasPrefix(opt, "no-") {
		value = false
		opt = strings.TrimPrefix(opt, "no-")
	}
	switch opt {
	case "east-const":
		r.Sess.Options.EastConst = value
	case "explicit-int":
		r.Sess.Options.ExplicitInt = value
	case "alt-tokens":
		r.Sess.Options.AltTokens = value
	case "digraphs":
		r.Sess.Options.Digraphs = value
	case "trigraphs":
		r.Sess.Options.Trigraphs = value
	case "color":
		r.Sess.Options.Color = value
	case "debug":
		r.Sess.Options.Debug = value
	default:
		return &SyntaxError{Message: "unknown option " + opt}
	}
	return nil
}

// show handles "show": lists every typedef as a define command, or the
// option state for "show options".
func (r *Runner) show(rest string) error {
	if strings.EqualFold(strings.TrimSpace(rest), "options") {
		r.showOptions()
		return nil
	}
	for _, name := range r.Sess.Typedefs.Names() {
		tree := r.Sess.Typedefs.Lookup(sname.New(name))
		if tree == nil {
			continue
		}
		fmt.Fprintf(r.Out, "define %s as %s\n", name, english.RenderType(tree))
	}
	return nil
}

func (r *Runner) showOptions() {
	o := r.Sess.Options
	fmt.Fprintf(r.Out, "lang=%s\n", r.Sess.LangVersion)
	for _, opt := range []struct {
		name string
		on   bool
	}{
		{"east-const", o.EastConst},
		{"explicit-int", o.ExplicitInt},
		{"alt-tokens", o.AltTokens},
		{"digraphs", o.Digraphs},
		{"trigraphs", o.Trigraphs},
		{"color", o.Color},
		{"debug", o.Debug},
	} {
		if opt.on {
			fmt.Fprintf(r.Out, "  %s\n", opt.name)
		} else {
			fmt.Fprintf(r.Out, "  no-%s\n", opt.name)
		}
	}
}

// include handles "include PATH": reads commands from the file, continuing
// past individual command errors the way batch mode does.
func (r *Runner) include(rest string) error {
	path := strings.Trim(strings.TrimSpace(rest), `"`)
	if path == "" {
		return &SyntaxError{Message: "include requires a file path"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("include %s: %w", path, err)
	}
	for i, line := range strings.Split(string(data), "\n") {
		quit, err := r.Execute(line, i+1)
		if err != nil {
			PrintError(os.Stderr, line, err)
		}
		if quit {
			break
		}
	}
	return nil
}

func (r *Runner) help() {
	fmt.Fprint(r.Out, `commands:
  declare NAME as ENGLISH      compose a C/C++ declaration
  explain GIBBERISH            describe a C/C++ declaration in English
  cast NAME into ENGLISH       compose a C-style cast
  define NAME as ENGLISH       define a typedef
  typedef GIBBERISH            define a typedef, C style
  set OPTION                   set an option or language (e.g. set c++17)
  show [options]               list typedefs or options
  include "FILE"               read commands from FILE
  help                         print this help
  quit                         exit
`)
}

// PrintError renders err to w, with a caret diagnostic against line for
// errors that carry source positions.
func PrintError(w io.Writer, line string, err error) {
	switch e := err.(type) {
	case check.Errors:
		p := &check.Printer{Source: line}
		p.Print(w, e)
	case *SyntaxError:
		fmt.Fprintf(w, "%s\nerror: %s\n", line, e)
	default:
		fmt.Fprintf(w, "error: %s\n", err)
	}
}

// newStream tokenizes src into a parser stream; colOffset shifts every
// token's column so positions refer to the full command line.
func newStream(src string, lineNo, colOffset int) (*stream, error) {
	toks, err := newLexer(src, lineNo, colOffset).tokenize()
	if err != nil {
		return nil, err
	}
	return &stream{toks: toks}, nil
}

// expectNameAs reads the "NAME as" prefix shared by declare and define.
func expectNameAs(s *stream) (sname.Name, error) {
	t, ok := s.next()
	if !ok {
		return sname.Name{}, &SyntaxError{Message: "expected a name"}
	}
	name := sname.New(t.Text)
	for s.is("::") && s.pos+1 < len(s.toks) && isIdent(s.toks[s.pos+1].Text) {
		s.accept("::")
		seg, _ := s.next()
		name = name.Append(sname.Segment{Name: seg.Text, Scope: sname.ScopeNamespace})
	}
	if err := s.expect("as"); err != nil {
		return sname.Name{}, err
	}
	return name, nil
}
