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

// Patch reconciles the base-type subtree typ (parentless, produced by the
// type grammar) with the declarator subtree decl (which somewhere contains
// a Placeholder leaf where the base type belongs), returning the final
// tree. Mirrors c_ast_patch_placeholder in
// original_source/src/c_ast_util.c.
func Patch(typ, decl *Node) *Node {
	if decl == nil {
		return typ
	}
	if typ.Parent != nil {
		return decl
	}

	placeholder := FindKind(decl, Down, KPlaceholder)
	if placeholder == nil {
		return decl
	}

	if typ.Depth >= decl.Depth {
		// typ becomes the final tree; decl (containing the placeholder)
		// is discarded after giving typ its name if it didn't already
		// have one.
		if typ.Name.Empty() {
			typ.Name = TakeName(decl)
		}
		return typ
	}

	// Splice typ's root in place of the placeholder.
	typeRoot := Root(typ)
	SetParent(typeRoot, placeholder.Parent)
	if decl.Name.Empty() {
		decl.Name = TakeName(typ)
	}
	return decl
}
