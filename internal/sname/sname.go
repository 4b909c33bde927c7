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

// Package sname implements the scoped name: an ordered sequence of
// name-segments with a per-segment scope kind, supporting fully-qualified
// identifiers like std::chrono::duration.
package sname

import "strings"

// ScopeKind says what kind of scope a Segment was declared in.
type ScopeKind int

const (
	// ScopeNone is an unscoped segment, e.g. a plain variable name.
	ScopeNone ScopeKind = iota
	ScopeNamespace
	ScopeClass
	ScopeStruct
	ScopeUnion
)

// Segment is a single component of a scoped name, e.g. "chrono" in
// std::chrono::duration, along with the kind of scope it was declared in.
type Segment struct {
	Name  string
	Scope ScopeKind
}

// Name is an ordered sequence of Segments, outermost scope first, local name
// last. A Name with zero Segments is empty.
type Name struct {
	segs []Segment
}

// New constructs a Name from a single unscoped identifier. Use Append to
// build up a fully qualified name.
func New(name string) Name {
	if name == "" {
		return Name{}
	}
	return Name{segs: []Segment{{Name: name}}}
}

// NewScoped constructs a single-segment Name tagged with the given scope
// kind, e.g. the tag name of an elaborated "struct foo".
func NewScoped(name string, scope ScopeKind) Name {
	if name == "" {
		return Name{}
	}
	return Name{segs: []Segment{{Name: name, Scope: scope}}}
}

// Append appends a new outermost-to-innermost segment and returns the
// extended Name; the receiver is left unmodified.
func (n Name) Append(seg Segment) Name {
	segs := make([]Segment, len(n.segs), len(n.segs)+1)
	copy(segs, n.segs)
	segs = append(segs, seg)
	return Name{segs: segs}
}

// Concat concatenates n and other, with other's segments appended after n's.
func (n Name) Concat(other Name) Name {
	segs := make([]Segment, 0, len(n.segs)+len(other.segs))
	segs = append(segs, n.segs...)
	segs = append(segs, other.segs...)
	return Name{segs: segs}
}

// Empty reports whether n has no segments.
func (n Name) Empty() bool { return len(n.segs) == 0 }

// Count returns the number of segments in n.
func (n Name) Count() int { return len(n.segs) }

// Local returns the innermost (rightmost) segment's name, or "" if n is
// empty.
func (n Name) Local() string {
	if n.Empty() {
		return ""
	}
	return n.segs[len(n.segs)-1].Name
}

// Segments returns a copy of n's segments, outermost first.
func (n Name) Segments() []Segment {
	out := make([]Segment, len(n.segs))
	copy(out, n.segs)
	return out
}

// Full renders the fully-qualified name joined by "::", e.g.
// "std::chrono::duration".
func (n Name) Full() string {
	parts := make([]string, len(n.segs))
	for i, s := range n.segs {
		parts[i] = s.Name
	}
	return strings.Join(parts, "::")
}

// Scope returns the ScopeKind of the innermost segment, or ScopeNone if n is
// empty.
func (n Name) Scope() ScopeKind {
	if n.Empty() {
		return ScopeNone
	}
	return n.segs[len(n.segs)-1].Scope
}

func (n Name) String() string { return n.Full() }

// Equal reports whether n and other denote the same fully-qualified name.
func (n Name) Equal(other Name) bool {
	if len(n.segs) != len(other.segs) {
		return false
	}
	for i := range n.segs {
		if n.segs[i] != other.segs[i] {
			return false
		}
	}
	return true
}
