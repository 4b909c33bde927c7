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

import (
	"github.com/cdecl-go/cdecl/internal/csym"
	"github.com/cdecl-go/cdecl/internal/sname"
)

// ArraySizeKind says whether an Array node has a fixed, variable, or
// unspecified size.
type ArraySizeKind int

const (
	// ArraySizeUnspecified is an array with no size, e.g. `int a[]`.
	ArraySizeUnspecified ArraySizeKind = iota
	// ArraySizeVariable is a C99 variable-length array, e.g. `int a[n]`.
	ArraySizeVariable
	// ArraySizeInt is a fixed-size array, e.g. `int a[3]`.
	ArraySizeInt
)

// ArraySize is the size attribute of an Array node.
type ArraySize struct {
	Kind  ArraySizeKind
	Value int // only meaningful when Kind == ArraySizeInt
}

// FuncFlags says whether a Function node is known to be a member,
// non-member, or of unspecified linkage.
type FuncFlags int

const (
	FuncUnspecified FuncFlags = iota
	FuncMember
	FuncNonMember
)

// Node is a single node of the declaration tree: a tagged variant carrying
// an id, a Kind tag, an optional scoped name, a type-bit set, a source
// location, the depth it was introduced at, a single parent link, and a
// kind-dependent child payload.
//
// Rather than modeling kinds as distinct Go types behind an interface, Node
// is one struct with every possible child slot; only the slots valid for
// Kind are ever populated. Checkers and renderers dispatch with an
// exhaustive switch on Kind, matching the tagged-variant design called for
// by a systems reimplementation of cdecl's c_ast_t union.
type Node struct {
	ID    int
	Kind  Kind
	Name  sname.Name
	Type  csym.TypeID
	Pos   Position
	Depth int

	Parent *Node

	// Of is the single child for Array ("of"), Pointer/PointerToMember/
	// Reference/RValueReference ("to"), and UserDefConversion ("to").
	Of *Node

	// Ret is the return-type child for Block, Function, Operator and
	// UserDefLiteral.
	Ret *Node

	// Params holds the parameter list for Constructor, Function, Block,
	// Operator and UserDefLiteral kinds.
	Params []*Node

	// ArraySize is meaningful only when Kind == KArray.
	ArraySize ArraySize

	// ClassName is the node's secondary scoped name: the owning class of a
	// PointerToMember, or the tag name of an EnumClassStructUnion. Keeping
	// it apart from Name leaves Name free for the declared name, so that
	// "struct foo x" carries both "foo" and "x".
	ClassName sname.Name

	// FuncFlags is meaningful only when Kind is KFunction or KOperator.
	FuncFlags FuncFlags

	// OperatorID is meaningful only when Kind == KOperator.
	OperatorID csym.OperatorID

	// Typedef is a non-owning link into the typedef registry, meaningful
	// only when Kind == KTypedef. The tree never owns the node it points
	// to; its lifetime is the registry's.
	Typedef *Node
}

// IsNamed reports whether n carries a non-empty scoped name.
func (n *Node) IsNamed() bool { return n != nil && !n.Name.Empty() }

// Root walks Parent links from n and returns the root of the tree (the
// unique node with no parent).
func Root(n *Node) *Node {
	for n != nil && n.Parent != nil {
		n = n.Parent
	}
	return n
}

// child returns n's single spine child, i.e. whichever of Of/Ret is
// populated for n's Kind, or nil for a leaf kind.
func (n *Node) child() *Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KArray, KPointer, KPointerToMember, KReference, KRValueReference, KUserDefConversion:
		return n.Of
	case KBlock, KFunction, KOperator, KUserDefLiteral:
		return n.Ret
	default:
		return nil
	}
}

// setChild sets n's single spine child to c, writing to whichever of
// Of/Ret is appropriate for n's Kind. It does not touch c.Parent; callers
// use SetParent for that half of the link.
func (n *Node) setChild(c *Node) {
	switch n.Kind {
	case KArray, KPointer, KPointerToMember, KReference, KRValueReference, KUserDefConversion:
		n.Of = c
	case KBlock, KFunction, KOperator, KUserDefLiteral:
		n.Ret = c
	}
}

// SetParent links child as a child of parent, writing both the child's
// Parent pointer and the parent's kind-specific child slot, and unlinking
// any previous owner of child. This is the only place in the package that
// writes the Parent field, which keeps the tree acyclic: a node can only
// ever be parented once at a time.
func SetParent(child, parent *Node) {
	if child == nil {
		return
	}
	if child.Parent != nil && child.Parent != parent {
		child.Parent.clearChild(child)
	}
	child.Parent = parent
	if parent != nil {
		parent.setChild(child)
	}
}

// clearChild removes c from whichever slot of n currently holds it.
func (n *Node) clearChild(c *Node) {
	switch n.Kind {
	case KArray, KPointer, KPointerToMember, KReference, KRValueReference, KUserDefConversion:
		if n.Of == c {
			n.Of = nil
		}
	case KBlock, KFunction, KOperator, KUserDefLiteral:
		if n.Ret == c {
			n.Ret = nil
		}
	}
}
