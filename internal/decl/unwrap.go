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

// Untypedef strips any chain of Typedef nodes, following each one's shared
// link into the registry, and returns the first non-Typedef node reached. A
// nil ast returns nil.
func Untypedef(ast *Node) *Node {
	for ast != nil && ast.Kind == KTypedef {
		ast = ast.Typedef
	}
	return ast
}

// Unpointer returns the "to" node of a Pointer (after stripping any
// Typedef layers from both ast and the result), or nil if ast is not,
// after untypedeffing, a Pointer.
func Unpointer(ast *Node) *Node {
	ast = Untypedef(ast)
	if ast == nil || ast.Kind != KPointer {
		return nil
	}
	return Untypedef(ast.Of)
}

// Unreference chains through a sequence of Reference (never
// RValueReference) nodes, stripping Typedef layers at each step, and
// returns the first node that is neither a Typedef nor a Reference.
func Unreference(ast *Node) *Node {
	for {
		ast = Untypedef(ast)
		if ast == nil || ast.Kind != KReference {
			return ast
		}
		ast = ast.Of
	}
}
