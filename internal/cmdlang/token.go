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

// Package cmdlang implements a minimal reader for cdecl's command
// language (declare/explain/cast/define/typedef/set/show/include/help/
// quit). It tokenizes with the standard library's text/scanner and hand-
// writes a small recursive-descent parser for the two declaration
// surfaces the commands need: an English phrase ("pointer to function
// (char) returning int") and a raw C/C++ declarator ("int (*f)(char)").
// It is deliberately thin: no parser-generator dependency, since none
// appears project-shaped in the retrieval pack for a grammar this small,
// and it is not part of the core under test in internal/decl/internal/check.
package cmdlang

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/cdecl-go/cdecl/internal/decl"
)

// Token is one lexical unit of a command line.
type Token struct {
	Text string
	Pos  decl.Pos
	// Int is true when Text is a decimal integer literal.
	Int bool
}

// SyntaxError is a lex or parse error, carrying the offending token's
// position and a human-readable description of what was expected.
type SyntaxError struct {
	Pos      decl.Pos
	Message  string
	Expected string
}

func (e *SyntaxError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return fmt.Sprintf("%s: %s (expected %s)", e.Pos, e.Message, e.Expected)
}

// lexer wraps text/scanner.Scanner and produces a flat Token slice for one
// command line at a time.
type lexer struct {
	sc        scanner.Scanner
	line      int
	colOffset int
}

func newLexer(src string, line, colOffset int) *lexer {
	l := &lexer{line: line, colOffset: colOffset}
	l.sc.Init(strings.NewReader(src))
	l.sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanStrings
	l.sc.Whitespace = 1<<'\t' | 1<<' '
	l.sc.Error = func(*scanner.Scanner, string) {} // surfaced via Scan's rune instead
	return l
}

// tokenize reads every token up to end of input, returning them in order
// with adjacent punctuation runes merged into the multi-character operator
// tokens the declaration parsers expect ("&&", "::", "->*", ...).
func (l *lexer) tokenize() ([]Token, error) {
	var out []Token
	for {
		r := l.sc.Scan()
		if r == scanner.EOF {
			return mergeOperators(out), nil
		}
		text := l.sc.TokenText()
		pos := decl.Pos{Column: uint32(l.sc.Column + l.colOffset), Row: uint32(l.line)}
		if r == scanner.Int {
			out = append(out, Token{Text: text, Pos: pos, Int: true})
			continue
		}
		out = append(out, Token{Text: text, Pos: pos})
	}
}

// multiRuneOperators is every operator spelling longer than one rune that
// the command language can mention, longest first so merging is greedy.
var multiRuneOperators = []string{
	"<<=", ">>=", "<=>", "->*", "...",
	"::", "&&", "||", "<<", ">>", "->", "++", "--",
	"==", "!=", "<=", ">=", "+=", "-=", "*=", "/=",
	"%=", "&=", "|=", "^=", ".*",
}

// mergeOperators joins runs of adjacent single-rune tokens into the longest
// matching multi-rune operator. Adjacency is checked by column so that
// "& &" (two tokens) stays distinct from "&&".
func mergeOperators(toks []Token) []Token {
	out := toks[:0]
	for i := 0; i < len(toks); {
		// "non-member" lexes as three tokens; rejoin it so the English
		// parser sees the keyword it documents.
		if toks[i].Text == "non" && i+2 < len(toks) &&
			toks[i+1].Text == "-" && toks[i+2].Text == "member" &&
			toks[i+1].Pos.Column == toks[i].Pos.Column+3 &&
			toks[i+2].Pos.Column == toks[i+1].Pos.Column+1 {
			out = append(out, Token{Text: "non-member", Pos: toks[i].Pos})
			i += 3
			continue
		}
		merged := false
		for _, op := range multiRuneOperators {
			n := len(op)
			if joined, ok := joinAdjacent(toks, i, n); ok && joined == op {
				out = append(out, Token{Text: op, Pos: toks[i].Pos})
				i += n
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, toks[i])
			i++
		}
	}
	return out
}

// joinAdjacent concatenates n single-rune tokens starting at i, reporting
// whether they exist and abut one another with no intervening space.
func joinAdjacent(toks []Token, i, n int) (string, bool) {
	if i+n > len(toks) {
		return "", false
	}
	joined := toks[i].Text
	for k := 1; k < n; k++ {
		prev, cur := toks[i+k-1], toks[i+k]
		if len(cur.Text) != 1 || cur.Pos.Row != prev.Pos.Row ||
			cur.Pos.Column != prev.Pos.Column+uint32(len(prev.Text)) {
			return "", false
		}
		joined += cur.Text
	}
	if len(toks[i].Text) != 1 {
		return "", false
	}
	return joined, true
}

// parseInt parses a decimal-int Token's text, panicking only on an
// internal inconsistency (the scanner already validated the digits).
func parseInt(tok Token) int {
	n, err := strconv.Atoi(tok.Text)
	if err != nil {
		panic(fmt.Sprintf("cmdlang: scanner produced a non-integer Int token %q", tok.Text))
	}
	return n
}
