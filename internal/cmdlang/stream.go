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
	"strings"

	"github.com/cdecl-go/cdecl/internal/decl"
)

// stream is a cursor over a Token slice shared by the English-phrase and
// C-declarator recursive-descent parsers below.
type stream struct {
	toks []Token
	pos  int
}

func (s *stream) peek() (Token, bool) {
	if s.pos >= len(s.toks) {
		return Token{}, false
	}
	return s.toks[s.pos], true
}

func (s *stream) next() (Token, bool) {
	t, ok := s.peek()
	if ok {
		s.pos++
	}
	return t, ok
}

// eof reports whether the stream is exhausted.
func (s *stream) eof() bool { return s.pos >= len(s.toks) }

// is reports whether the next token's text case-insensitively matches word,
// without consuming it.
func (s *stream) is(word string) bool {
	t, ok := s.peek()
	return ok && strings.EqualFold(t.Text, word)
}

// accept consumes the next token if it case-insensitively matches word.
func (s *stream) accept(word string) bool {
	if s.is(word) {
		s.pos++
		return true
	}
	return false
}

// expect consumes the next token, requiring it to case-insensitively match
// word, or returns a SyntaxError.
func (s *stream) expect(word string) error {
	if s.accept(word) {
		return nil
	}
	got := "end of input"
	pos := decl.Pos{}
	if t, ok := s.peek(); ok {
		got = t.Text
		pos = t.Pos
	}
	return &SyntaxError{Pos: pos, Message: "unexpected " + got, Expected: word}
}
