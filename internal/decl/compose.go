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

// AddArray splices array in at the depth-correct position of the
// in-progress declarator tree ast (which may be nil) and returns the new
// root of the subtree the grammar action should propagate. array's "of"
// slot must already hold a Placeholder; after splicing, storage bits
// (e.g. static) found under array's final "of" subtree are relocated onto
// array itself, mirroring c_ast_add_array in
// original_source/src/c_ast_util.c.
func AddArray(ast, array *Node) *Node {
	rv := addArrayImpl(ast, array)
	array.Type = array.Type.Union(TakeStorage(array.Of))
	return rv
}

func addArrayImpl(ast, array *Node) *Node {
	if ast == nil {
		return array
	}

	switch ast.Kind {
	case KArray:
		return appendArray(ast, array)

	case KPointer:
		if ast.Depth > array.Depth {
			addArrayImpl(ast.Of, array)
			return ast
		}
		// Not more deeply parenthesized than the array: fall through to
		// the default case exactly like the pointer is any other kind.
		fallthrough

	default:
		if ast.Depth > array.Depth {
			//
			// ast is strictly more deeply parenthesized than the array:
			// insert array below ast.
			//
			//   Before: [ast-child] --> [ast]
			//           [array]
			//   After:  [ast-child] --> [array] --> [ast]
			//
			if isParentNode(ast) {
				SetParent(ast.child(), array)
			}
			SetParent(array, ast)
			return ast
		}
		//
		// Otherwise insert array above ast.
		//
		//   Before: [ast] --> [parent]
		//           [array]
		//   After:  [ast] --> [array] --> [parent]
		//
		if isParentNode(ast.Parent) {
			SetParent(array, ast.Parent)
		}
		SetParent(ast, array)
		return array
	}
}

// appendArray handles chaining array onto an existing array spine, possibly
// descending through an intervening pointer so that, e.g.,
// "type (*(*x)[3])[5]" ends up as "pointer to array 3 of pointer to array 5
// of type" rather than "pointer to array 3 of array 5 of pointer to type".
func appendArray(ast, array *Node) *Node {
	descend := false
	switch ast.Kind {
	case KPointer:
		if array.Depth < ast.Depth {
			descend = true
		}
	case KArray:
		descend = true
	}

	if descend {
		// On the next-to-last recursive call this sets ast to be an array
		// of the new array; for all prior recursive calls it's a no-op
		// re-parenting of the same subtree.
		temp := appendArray(ast.child(), array)
		SetParent(temp, ast)
		return ast
	}

	// Reached the end of the array chain: array becomes an array of ast,
	// and the caller's parent link now points to array instead.
	SetParent(ast, array)
	return array
}

// AddFunction splices the function-like node fn (with parameters already
// filled and return slot empty) into the in-progress declarator tree ast,
// using ret as fn's return-type subtree, and returns the root the grammar
// should propagate. Mirrors c_ast_add_func in
// original_source/src/c_ast_util.c.
func AddFunction(ast, ret, fn *Node) *Node {
	rv := addFunctionImpl(ast, ret, fn)
	if fn.Name.Empty() {
		fn.Name = TakeName(ast)
	}
	fn.Type = fn.Type.Union(TakeStorage(fn.Ret))
	return rv
}

func addFunctionImpl(ast, ret, fn *Node) *Node {
	if ast.Kind.Has(KArray | KAnyPointer | KAnyReference) {
		var childKind Kind
		if child := ast.Of; child != nil {
			childKind = child.Kind
		}

		switch childKind {
		case KArray, KPointer, KPointerToMember, KReference, KRValueReference:
			addFunctionImpl(ast.Of, ret, fn)
			return ast

		case KPlaceholder:
			if ret == ast {
				break
			}
			SetParent(fn, ast)
			fallthrough

		case KBlock:
			SetParent(ret, fn)
			return ast
		}
	}

	SetParent(ret, fn)
	return fn
}

// isParentNode reports whether n is non-nil and a parent kind; it exists
// so the composition algebra can safely ask "does this node (possibly nil)
// already have a spine child slot to reparent".
func isParentNode(n *Node) bool { return n != nil && n.Kind.IsParent() }
