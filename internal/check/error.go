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

// Package check implements cdecl's semantic checker: the pass that walks
// a composed declaration tree and rejects declarations that parse but
// don't mean anything in C or C++ (a function returning an array,
// "static" on a destructor, a `[]` operator with two parameters, and so
// on), gated by the language version in effect.
package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/cdecl-go/cdecl/internal/decl"
)

// Error is a single semantic-check failure, carrying the source position
// of the offending node so a Printer can render a caret under it.
type Error struct {
	Pos     decl.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos.Start, e.Message)
}

// Errors collects every Error found by a single Check call. Checking
// continues past the first failure so a user sees every problem with a
// declaration at once rather than one at a time.
type Errors []*Error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func newError(n *decl.Node, format string, args ...interface{}) *Error {
	return &Error{Pos: n.Pos, Message: fmt.Sprintf(format, args...)}
}

// Printer renders Errors as caret-annotated diagnostics against the
// original source line, in the style of a compiler's single-line error
// output.
type Printer struct {
	// Source is the original command text the declaration was parsed
	// from, used to print the line an Error's Pos points into.
	Source string
}

// Print writes one caret-annotated block per Error in errs to w.
func (p *Printer) Print(w io.Writer, errs Errors) {
	for _, e := range errs {
		col := int(e.Pos.Start.Column)
		if col > 0 {
			col--
		}
		if col > len(p.Source) {
			col = len(p.Source)
		}
		fmt.Fprintf(w, "%s\n", p.Source)
		fmt.Fprintf(w, "%s^\n", strings.Repeat(" ", col))
		fmt.Fprintf(w, "error: %s\n", e.Message)
	}
}
