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

// Package session carries the per-invocation configuration that every
// core cdecl entry point (parsing, composition, checking, rendering)
// takes explicitly rather than reading from globals: the target language
// version, the active rendering/parsing options, and the typedef
// registry in effect.
package session

import (
	"github.com/google/uuid"

	"github.com/cdecl-go/cdecl/internal/langver"
	"github.com/cdecl-go/cdecl/internal/typedefs"
)

// Options holds the boolean knobs that change how declarations are
// parsed or rendered without changing their meaning.
type Options struct {
	// EastConst renders "int const" instead of "const int".
	EastConst bool
	// ExplicitInt always spells "int" in combination with short/long/
	// signed/unsigned instead of eliding it.
	ExplicitInt bool
	// AltTokens records the alt-tokens setting. No parser or renderer
	// reads it: alternative tokens ("and" for "&&", etc) are neither
	// accepted nor rendered.
	AltTokens bool
	// Digraphs records the digraphs setting. No parser or renderer reads
	// it: digraph spellings ("<%" for "{", etc) are neither accepted nor
	// rendered.
	Digraphs bool
	// Trigraphs records the trigraphs setting. No parser or renderer reads
	// it: trigraph spellings ("??(" for "[", etc) are neither accepted nor
	// rendered.
	Trigraphs bool
	// Color records the color setting. No diagnostic printer or renderer
	// reads it; output carries no ANSI color.
	Color bool
	// Debug dumps each command's declaration tree before rendering it.
	Debug bool
}

// Session bundles everything a single cdecl command needs beyond the
// declaration tree itself.
type Session struct {
	// ID correlates every diagnostic emitted during one process run; it
	// only ever appears in logs, never in command output.
	ID uuid.UUID

	LangVersion langver.Version
	Options     Options
	Typedefs    *typedefs.Registry
}

// New returns a Session for the given language version with a freshly
// seeded typedef registry and default (all-false) options.
func New(v langver.Version) *Session {
	return &Session{
		ID:          uuid.New(),
		LangVersion: v,
		Typedefs:    typedefs.NewRegistry(),
	}
}

// WithOptions returns a copy of s with Options replaced by opts.
func (s *Session) WithOptions(opts Options) *Session {
	cp := *s
	cp.Options = opts
	return &cp
}
