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

// Arena is the per-command node pool. The grammar (external to this
// package; simulated directly by tests here) allocates every Node for a
// single top-level command from one Arena; Release drops the whole pool in
// a single step once the command completes, whether it succeeded or
// errored. This is the systems-language analogue of an arena allocator: no
// Node is ever freed individually, and re-parenting during composition
// never needs to worry about dangling owners because nothing is freed
// until the whole arena goes away.
type Arena struct {
	nodes  []*Node
	nextID int
}

// NewArena returns an empty Arena ready to allocate nodes for one top-level
// command.
func NewArena() *Arena {
	return &Arena{}
}

// Release drops every Node this Arena has allocated. After Release, any
// Node previously returned by this Arena must not be used.
func (a *Arena) Release() {
	a.nodes = nil
}

// Len returns the number of nodes currently live in the arena.
func (a *Arena) Len() int { return len(a.nodes) }

func (a *Arena) alloc(kind Kind) *Node {
	a.nextID++
	n := &Node{ID: a.nextID, Kind: kind}
	a.nodes = append(a.nodes, n)
	return n
}

// NewPlaceholder creates a Placeholder leaf, the sentinel the declarator
// grammar inserts where the base type will later be patched in.
func (a *Arena) NewPlaceholder(pos Position, depth int) *Node {
	n := a.alloc(KPlaceholder)
	n.Pos, n.Depth = pos, depth
	return n
}

// NewBuiltin creates a Builtin base-type leaf, e.g. void, char, int.
func (a *Arena) NewBuiltin(pos Position, depth int, t csym.TypeID) *Node {
	n := a.alloc(KBuiltin)
	n.Pos, n.Depth, n.Type = pos, depth, t
	return n
}

// NewName creates a typeless K&R-style argument node (a bare identifier).
func (a *Arena) NewName(pos Position, depth int, name sname.Name) *Node {
	n := a.alloc(KName)
	n.Pos, n.Depth, n.Name = pos, depth, name
	return n
}

// NewEnumClassStructUnion creates an elaborated tag-type node. The tag
// name goes in ClassName; Name stays free for the declared name.
func (a *Arena) NewEnumClassStructUnion(pos Position, depth int, t csym.TypeID, tag sname.Name) *Node {
	n := a.alloc(KEnumClassStructUnion)
	n.Pos, n.Depth, n.Type, n.ClassName = pos, depth, t, tag
	return n
}

// NewTypedef creates a reference to a defined type; referencedTree is a
// non-owning borrow into the typedef registry.
func (a *Arena) NewTypedef(pos Position, depth int, name sname.Name, referencedTree *Node) *Node {
	n := a.alloc(KTypedef)
	n.Pos, n.Depth, n.Name, n.Typedef = pos, depth, name, referencedTree
	return n
}

// NewVariadic creates the `...` function-parameter sentinel.
func (a *Arena) NewVariadic(pos Position, depth int) *Node {
	n := a.alloc(KVariadic)
	n.Pos, n.Depth = pos, depth
	return n
}

// NewArray creates an Array node whose "of" slot is left nil (a Placeholder
// is typically installed there by the caller before the node is used by the
// composition algebra).
func (a *Arena) NewArray(pos Position, depth int, size ArraySize) *Node {
	n := a.alloc(KArray)
	n.Pos, n.Depth, n.ArraySize = pos, depth, size
	return n
}

// NewPointer creates a Pointer node.
func (a *Arena) NewPointer(pos Position, depth int, t csym.TypeID) *Node {
	n := a.alloc(KPointer)
	n.Pos, n.Depth, n.Type = pos, depth, t
	return n
}

// NewPointerToMember creates a C++ pointer-to-member node for the given
// owning class.
func (a *Arena) NewPointerToMember(pos Position, depth int, t csym.TypeID, class sname.Name) *Node {
	n := a.alloc(KPointerToMember)
	n.Pos, n.Depth, n.Type, n.ClassName = pos, depth, t, class
	return n
}

// NewReference creates a C++ lvalue reference node.
func (a *Arena) NewReference(pos Position, depth int, t csym.TypeID) *Node {
	n := a.alloc(KReference)
	n.Pos, n.Depth, n.Type = pos, depth, t
	return n
}

// NewRValueReference creates a C++ rvalue reference node.
func (a *Arena) NewRValueReference(pos Position, depth int, t csym.TypeID) *Node {
	n := a.alloc(KRValueReference)
	n.Pos, n.Depth, n.Type = pos, depth, t
	return n
}

// NewBlock creates an Apple-extension block node with the given parameters.
func (a *Arena) NewBlock(pos Position, depth int, params []*Node) *Node {
	n := a.alloc(KBlock)
	n.Pos, n.Depth, n.Params = pos, depth, params
	return n
}

// NewFunction creates a Function node with the given parameters and
// linkage flags; its "ret" slot is left nil for the caller to fill via
// SetParent or AddFunction.
func (a *Arena) NewFunction(pos Position, depth int, params []*Node, flags FuncFlags) *Node {
	n := a.alloc(KFunction)
	n.Pos, n.Depth, n.Params, n.FuncFlags = pos, depth, params, flags
	return n
}

// NewConstructor creates a C++ constructor node with the given parameters.
func (a *Arena) NewConstructor(pos Position, depth int, params []*Node) *Node {
	n := a.alloc(KConstructor)
	n.Pos, n.Depth, n.Params = pos, depth, params
	return n
}

// NewDestructor creates a C++ destructor node.
func (a *Arena) NewDestructor(pos Position, depth int) *Node {
	n := a.alloc(KDestructor)
	n.Pos, n.Depth = pos, depth
	return n
}

// NewOperator creates a C++ overloaded-operator node.
func (a *Arena) NewOperator(pos Position, depth int, id csym.OperatorID, params []*Node) *Node {
	n := a.alloc(KOperator)
	n.Pos, n.Depth, n.OperatorID, n.Params = pos, depth, id, params
	return n
}

// NewUserDefConversion creates a C++ user-defined conversion operator node.
func (a *Arena) NewUserDefConversion(pos Position, depth int, params []*Node) *Node {
	n := a.alloc(KUserDefConversion)
	n.Pos, n.Depth, n.Params = pos, depth, params
	return n
}

// NewUserDefLiteral creates a C++ user-defined literal node.
func (a *Arena) NewUserDefLiteral(pos Position, depth int, params []*Node) *Node {
	n := a.alloc(KUserDefLiteral)
	n.Pos, n.Depth, n.Params = pos, depth, params
	return n
}
