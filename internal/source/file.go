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

// Package source tracks the text of a command script (an included file, a
// config file, or the interactive session's history) so diagnostics can
// re-echo the offending line under a caret. The line index is built once
// per file; lookups by byte offset or line number are O(log n) against the
// newline index.
package source

import (
	"path/filepath"
	"sort"
	"strings"
)

// File is one command script with a precomputed newline index.
type File struct {
	// Name is the display name used in diagnostics, e.g. the path given to
	// an include command, or "<stdin>".
	Name string

	content string

	// newlineOffsets holds the byte offset of each '\n' in content; entry i
	// ends line i+1.
	newlineOffsets []int
}

// New builds a File over content. name may be a path; DisplayName shows
// only its base name.
func New(name string, content []byte) *File {
	f := &File{Name: name, content: string(content)}
	for i, c := range f.content {
		if c == '\n' {
			f.newlineOffsets = append(f.newlineOffsets, i)
		}
	}
	return f
}

// Content returns the full raw text.
func (f *File) Content() string { return f.content }

// NumLines returns the number of lines, counting a trailing partial line.
func (f *File) NumLines() int {
	n := len(f.newlineOffsets)
	if len(f.content) > 0 && !strings.HasSuffix(f.content, "\n") {
		n++
	}
	return n
}

// Line returns the text of 1-based line row, without its newline, or ""
// when row is out of range.
func (f *File) Line(row int) string {
	if row < 1 || row > f.NumLines() {
		return ""
	}
	start := 0
	if row > 1 {
		start = f.newlineOffsets[row-2] + 1
	}
	end := len(f.content)
	if row-1 < len(f.newlineOffsets) {
		end = f.newlineOffsets[row-1]
	}
	return f.content[start:end]
}

// LineColumn maps a byte offset into 1-based line and column numbers.
func (f *File) LineColumn(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.content) {
		offset = len(f.content)
	}
	idx := sort.SearchInts(f.newlineOffsets, offset)
	line = idx + 1
	start := 0
	if idx > 0 {
		start = f.newlineOffsets[idx-1] + 1
	}
	return line, offset - start + 1
}

// Lines iterates every line in order, calling fn with the 1-based line
// number and the line text; fn returning false stops the walk.
func (f *File) Lines(fn func(row int, text string) bool) {
	for row := 1; row <= f.NumLines(); row++ {
		if !fn(row, f.Line(row)) {
			return
		}
	}
}

// DisplayName returns the base name of f.Name for compact diagnostics.
func (f *File) DisplayName() string {
	if f.Name == "" {
		return "<input>"
	}
	return filepath.Base(f.Name)
}
