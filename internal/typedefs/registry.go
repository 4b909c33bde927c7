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

// Package typedefs implements the ordered name -> owned-tree map that
// backs cdecl's `define`/`typedef` commands: the user-defined-typedef
// registry. The red-black tree the original implementation used to keep
// this map is treated as an opaque ordered map per spec; a Go map plus an
// insertion-order slice gives the same externally visible behavior
// (define, lookup, ordered listing) without reimplementing balanced-tree
// internals that aren't part of the core algorithm being studied here.
package typedefs

import (
	"fmt"

	"github.com/cdecl-go/cdecl/internal/decl"
	"github.com/cdecl-go/cdecl/internal/sname"
)

// Registry is an ordered map from fully-qualified scoped name to an owned
// declaration tree. Entries, once defined, live for the process lifetime;
// the per-command Arena that built the tree may be released, but trees
// handed to Define must have been built in an Arena the registry now
// effectively takes ownership of (the caller must stop using that Arena
// for anything else).
type Registry struct {
	byName map[string]*decl.Node
	order  []string
}

// NewRegistry returns a Registry seeded with the predefined typedef names
// cdecl recognizes out of the box.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]*decl.Node)}
	seedPredefined(r)
	return r
}

// Define adds name -> tree to the registry. Redefining an existing name
// with a structurally different tree is an error; redefining with a
// structurally equivalent tree is a no-op.
func (r *Registry) Define(name sname.Name, tree *decl.Node) error {
	key := name.Full()
	if existing, ok := r.byName[key]; ok {
		if equalTrees(existing, tree) {
			return nil
		}
		return fmt.Errorf("typedefs: %q already defined with a different type", key)
	}
	r.byName[key] = tree
	r.order = append(r.order, key)
	return nil
}

// Replace overwrites an existing definition of name with tree, or defines
// it if absent. Used by the interactive front-end after the user confirms
// a redefinition that Define rejected.
func (r *Registry) Replace(name sname.Name, tree *decl.Node) error {
	key := name.Full()
	if _, ok := r.byName[key]; !ok {
		return r.Define(name, tree)
	}
	r.byName[key] = tree
	return nil
}

// Lookup returns the tree defined for name, or nil if none.
func (r *Registry) Lookup(name sname.Name) *decl.Node {
	return r.byName[name.Full()]
}

// Names returns every defined name in definition order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// equalTrees reports whether a and b are structurally equivalent
// declaration trees: same Kind, Type bits and ArraySize/ClassName/
// OperatorID/FuncFlags, and recursively equivalent children. Names are not
// compared.
func equalTrees(a, b *decl.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Type != b.Type {
		return false
	}
	switch a.Kind {
	case decl.KArray:
		if a.ArraySize != b.ArraySize {
			return false
		}
	case decl.KPointerToMember, decl.KEnumClassStructUnion:
		if !a.ClassName.Equal(b.ClassName) {
			return false
		}
	case decl.KOperator:
		if a.OperatorID != b.OperatorID {
			return false
		}
	case decl.KFunction:
		if a.FuncFlags != b.FuncFlags {
			return false
		}
	}
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if !equalTrees(a.Params[i], b.Params[i]) {
			return false
		}
	}
	return equalTrees(childOf(a), childOf(b))
}

func childOf(n *decl.Node) *decl.Node {
	switch n.Kind {
	case decl.KArray, decl.KPointer, decl.KPointerToMember, decl.KReference,
		decl.KRValueReference, decl.KUserDefConversion:
		return n.Of
	case decl.KBlock, decl.KFunction, decl.KOperator, decl.KUserDefLiteral:
		return n.Ret
	default:
		return nil
	}
}
