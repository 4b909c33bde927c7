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

package decl

import "github.com/cdecl-go/cdecl/internal/csym"

// Direction says which way Visit walks the single-child spine.
type Direction int

const (
	// Down walks from a node toward its child (of/to/ret).
	Down Direction = iota
	// Up walks from a node toward its parent.
	Up
)

// Visit performs a depth-first traversal of the single-child spine (of/to/
// ret) starting at root, in the given Direction, returning the first node
// for which pred returns true, or nil if none matches. Parameter lists are
// never traversed by Visit; searching over parameters is always explicit,
// since the spine is the only axis composition and patching ever walk.
func Visit(root *Node, dir Direction, pred func(*Node) bool) *Node {
	for n := root; n != nil; n = step(n, dir) {
		if pred(n) {
			return n
		}
	}
	return nil
}

func step(n *Node, dir Direction) *Node {
	if dir == Up {
		return n.Parent
	}
	return n.child()
}

// FindKind walks root in direction dir looking for the first node whose
// Kind is one of kinds.
func FindKind(root *Node, dir Direction, kinds Kind) *Node {
	return Visit(root, dir, func(n *Node) bool { return n.Kind.Has(kinds) })
}

// FindType walks root in direction dir looking for the first node whose
// Type shares at least one bit with types.
func FindType(root *Node, dir Direction, types csym.TypeID) *Node {
	return Visit(root, dir, func(n *Node) bool { return n.Type.HasAny(types) })
}

// FindName walks root in direction dir looking for the first node carrying
// a non-empty scoped name.
func FindName(root *Node, dir Direction) *Node {
	return Visit(root, dir, func(n *Node) bool { return n.IsNamed() })
}
