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

// Package decl implements the declaration tree: the intermediate,
// typed, directed acyclic structure that represents a C/C++ declarator, the
// composition algebra that assembles it and the tree utilities used by the
// semantic checker and renderers.
package decl

import "fmt"

// Kind is the tag of a declaration-tree Node. A Node is exactly one Kind,
// never a combination; a bitwise-or of Kinds is only ever used to test
// whether a Node is any one of a set.
type Kind uint32

// The full set of node kinds, mirroring original_source/src/c_kind.h's
// enum c_kind in membership and in which kinds are "parent" kinds (carry a
// single-child spine).
const (
	KNone        Kind = 0
	KPlaceholder Kind = 1 << iota
	KBuiltin
	KEnumClassStructUnion
	KName
	KTypedef
	KVariadic

	// Parent kinds: these carry a single-child spine (of/to/ret).
	KArray
	KBlock
	KFunction
	KPointer

	// Parent kinds, C++ only.
	KConstructor
	KDestructor
	KOperator
	KPointerToMember
	KReference
	KRValueReference
	KUserDefConversion
	KUserDefLiteral
)

// KFunctionLike is the bitwise-or of all function-like kinds: Block,
// Constructor, Destructor, Function, Operator, UserDefConversion and
// UserDefLiteral.
const KFunctionLike = KBlock | KConstructor | KDestructor | KFunction |
	KOperator | KUserDefConversion | KUserDefLiteral

// KAnyPointer is the bitwise-or of Pointer and PointerToMember.
const KAnyPointer = KPointer | KPointerToMember

// KAnyReference is the bitwise-or of Reference and RValueReference.
const KAnyReference = KReference | KRValueReference

// kParentMin is the lowest-valued parent kind; any kind at or above it in
// bit value is a parent kind. This mirrors c_kind.h's K_PARENT_MIN.
const kParentMin = KArray

// IsParent reports whether k is a "parent" kind, i.e. one that carries a
// single-child spine (of/to/ret) rather than being a leaf.
func (k Kind) IsParent() bool { return k >= kParentMin }

// Has reports whether k is exactly one of the kinds in the bitwise-or mask.
func (k Kind) Has(mask Kind) bool { return k&mask != 0 }

var kindNames = map[Kind]string{
	KNone:                 "none",
	KPlaceholder:          "placeholder",
	KBuiltin:              "builtin",
	KEnumClassStructUnion: "enum/class/struct/union",
	KName:                 "name",
	KTypedef:              "typedef",
	KVariadic:             "variadic",
	KArray:                "array",
	KBlock:                "block",
	KFunction:             "function",
	KPointer:              "pointer",
	KConstructor:          "constructor",
	KDestructor:           "destructor",
	KOperator:             "operator",
	KPointerToMember:      "pointer-to-member",
	KReference:            "reference",
	KRValueReference:      "rvalue reference",
	KUserDefConversion:    "user-defined conversion",
	KUserDefLiteral:       "user-defined literal",
}

// String returns a human-readable name for k, used by diagnostics and the
// debug dump.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint32(k))
}
