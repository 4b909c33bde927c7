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

// TakeName walks node downward, finds the first node carrying a non-empty
// scoped name, moves that name out (leaving the source node's name empty)
// and returns it. If no name is found, TakeName returns an empty Name.
func TakeName(node *Node) sname.Name {
	found := FindName(node, Down)
	if found == nil {
		return sname.Name{}
	}
	name := found.Name
	found.Name = sname.Name{}
	return name
}

// TakeStorage finds the first node of kind Builtin or Typedef reachable by
// walking node downward, extracts its storage-class and attribute bits,
// clears them on that node, and returns the extracted bits. add_array and
// add_function use this to relocate storage bits (e.g. static) from a
// Builtin base onto the outermost array or function, so that
// "static int f()" is described as "static function returning int" and not
// "function returning static int".
func TakeStorage(node *Node) csym.TypeID {
	found := FindKind(node, Down, KBuiltin|KTypedef)
	if found == nil {
		return csym.TNone
	}
	storage := found.Type.Storage()
	found.Type = found.Type.ClearStorage()
	return storage
}

// TakeTypedef clears the typedef storage bit on the first node reachable
// by walking ast downward that carries it, of whatever kind, and reports
// whether such a node was found.
func TakeTypedef(ast *Node) bool {
	found := FindType(ast, Down, csym.TTypedef)
	if found == nil {
		return false
	}
	found.Type = found.Type.Diff(csym.TTypedef)
	return true
}
