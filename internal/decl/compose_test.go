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

package decl_test

import (
	"testing"

	"github.com/cdecl-go/cdecl/internal/csym"
	"github.com/cdecl-go/cdecl/internal/decl"
	"github.com/cdecl-go/cdecl/internal/sname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddArrayNilAST covers spec.md §4.2's first rule: ast == nil returns
// array unchanged.
func TestAddArrayNilAST(t *testing.T) {
	a := decl.NewArena()
	array := a.NewArray(decl.Position{}, 0, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 3})
	array.Of = a.NewPlaceholder(decl.Position{}, 0)

	got := decl.AddArray(nil, array)
	assert.Same(t, array, got)
}

// TestAddArrayAppendsOntoArraySpine covers c_ast_append_array's descent
// along an array spine: appending array 5 onto "array 3 of <placeholder>"
// yields "array 3 of array 5 of <placeholder>".
func TestAddArrayAppendsOntoArraySpine(t *testing.T) {
	a := decl.NewArena()

	outer := a.NewArray(decl.Position{}, 0, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 3})
	outerPlaceholder := a.NewPlaceholder(decl.Position{}, 0)
	decl.SetParent(outerPlaceholder, outer)
	outer.Name = sname.New("a")

	inner := a.NewArray(decl.Position{}, 0, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 5})
	inner.Of = a.NewPlaceholder(decl.Position{}, 0)

	root := decl.AddArray(outer, inner)
	require.Same(t, outer, root)
	require.NotNil(t, outer.Of)
	assert.Same(t, inner, outer.Of)
	assert.Equal(t, 5, inner.ArraySize.Value)
	// inner takes over outer's original placeholder as its own "of" slot;
	// inner's own freshly-allocated placeholder is discarded.
	assert.Same(t, outerPlaceholder, inner.Of)
}

// TestAddArrayInsertsAboveShallowerNode covers the default case's "insert
// array above ast" branch: ast is no more deeply parenthesized than the
// incoming array, so array becomes the new root with ast underneath it.
func TestAddArrayInsertsAboveShallowerNode(t *testing.T) {
	a := decl.NewArena()
	name := a.NewPlaceholder(decl.Position{}, 0)
	name.Name = sname.New("a")

	array := a.NewArray(decl.Position{}, 0, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 3})
	array.Of = a.NewPlaceholder(decl.Position{}, 0)

	root := decl.AddArray(name, array)
	require.Same(t, array, root)
	assert.Same(t, name, array.Of)
	assert.Same(t, array, name.Parent)
}

// TestAddArrayInsertsBelowDeeperNode covers the default case's "insert
// array below ast" branch using a Reference (a parent kind whose depth is
// greater than the incoming array's). A Pointer never reaches this branch:
// a deeper Pointer is handled by its own case, and a Pointer no deeper
// than the array takes the "insert above" branch.
func TestAddArrayInsertsBelowDeeperNode(t *testing.T) {
	a := decl.NewArena()

	ref := a.NewReference(decl.Position{}, 1, csym.TNone)
	placeholder := a.NewPlaceholder(decl.Position{}, 1)
	decl.SetParent(placeholder, ref)
	ref.Name = sname.New("r")

	array := a.NewArray(decl.Position{}, 0, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 3})
	array.Of = a.NewPlaceholder(decl.Position{}, 0)

	root := decl.AddArray(ref, array)
	require.Same(t, ref, root)
	assert.Same(t, array, ref.Of)
	assert.Same(t, placeholder, array.Of, "the reference's original child should now sit under the array")
}

// TestAddArrayBindsUnderDeeperPointer covers "pointer to array", e.g.
// `int (*x)[3]`: a freshly built Pointer (one paren level deep, wrapping
// a not-yet-patched placeholder) has an array applied outside its parens.
// Per spec.md §4.2, the pointer stays the root and the array binds as its
// child.
func TestAddArrayBindsUnderDeeperPointer(t *testing.T) {
	a := decl.NewArena()

	ptr := a.NewPointer(decl.Position{}, 1, csym.TNone)
	placeholder := a.NewPlaceholder(decl.Position{}, 0)
	decl.SetParent(placeholder, ptr)
	ptr.Name = sname.New("x")

	array := a.NewArray(decl.Position{}, 0, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 3})
	array.Of = a.NewPlaceholder(decl.Position{}, 0)

	root := decl.AddArray(ptr, array)
	require.Same(t, ptr, root)
	assert.Same(t, array, ptr.Of, "array should bind under the pointer, not wrap it")
	assert.Same(t, placeholder, array.Of)
}

// TestAddArrayAppendThroughPointer covers c_ast_append_array's pointer
// descent: "type (*(*x)[3])[5]" ends up as "pointer to array 3 of pointer
// to array 5 of type", not "pointer to array 3 of array 5 of pointer to
// type". array3Chain models the already-built "array 3 of pointer to
// placeholder" subtree that a second AddArray call (for "[5]") must
// descend through.
func TestAddArrayAppendThroughPointer(t *testing.T) {
	a := decl.NewArena()

	innerPtr := a.NewPointer(decl.Position{}, 1, csym.TNone)
	innerPlaceholder := a.NewPlaceholder(decl.Position{}, 1)
	decl.SetParent(innerPlaceholder, innerPtr)

	array3Chain := a.NewArray(decl.Position{}, 1, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 3})
	decl.SetParent(innerPtr, array3Chain)

	array5 := a.NewArray(decl.Position{}, 0, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 5})
	array5.Of = a.NewPlaceholder(decl.Position{}, 0)

	root := decl.AddArray(array3Chain, array5)
	require.Same(t, array3Chain, root)
	assert.Same(t, innerPtr, array3Chain.Of)
	assert.Same(t, array5, innerPtr.Of, "array5 should descend through the pointer, not sit above it")
	assert.Same(t, innerPlaceholder, array5.Of)
}

// TestAddFunctionStorageMigratesFromBuiltin covers spec.md §8 scenario 4:
// "static int f(void)" describes storage as migrating onto the function,
// not onto "int". ret already carries the resolved return type by the
// time AddFunction runs (the base type is parsed before the trailing
// parameter list), so AddFunction's TakeStorage(fn.Ret) call finds it.
func TestAddFunctionStorageMigratesFromBuiltin(t *testing.T) {
	a := decl.NewArena()

	ret := a.NewBuiltin(decl.Position{}, 0, csym.New(csym.TStatic, csym.TInt))
	fn := a.NewFunction(decl.Position{}, 0, nil, decl.FuncUnspecified)
	fn.Name = sname.New("f")

	root := decl.AddFunction(ret, ret, fn)
	require.Same(t, fn, root)
	assert.Same(t, ret, fn.Ret)
	assert.True(t, fn.Type.Has(csym.TStatic), "static should migrate onto the function")
	assert.False(t, ret.Type.Has(csym.TStatic), "static should be cleared from the builtin")
	assert.True(t, ret.Type.Has(csym.TInt))
}

// TestAddFunctionPointerToFunction covers AddFunction splicing a function
// under an already-built Pointer whose child is still a Placeholder:
// declare f as pointer to function (char) returning int. The name "f",
// parsed onto the pointer node first, migrates onto the function.
func TestAddFunctionPointerToFunction(t *testing.T) {
	a := decl.NewArena()

	ptr := a.NewPointer(decl.Position{}, 0, csym.TNone)
	placeholder := a.NewPlaceholder(decl.Position{}, 0)
	decl.SetParent(placeholder, ptr)
	ptr.Name = sname.New("f")

	ch := a.NewBuiltin(decl.Position{}, 0, csym.TChar)
	fn := a.NewFunction(decl.Position{}, 0, []*decl.Node{ch}, decl.FuncUnspecified)
	ret := a.NewPlaceholder(decl.Position{}, 0)

	root := decl.AddFunction(ptr, ret, fn)
	require.Same(t, ptr, root)
	assert.Same(t, fn, ptr.Of)
	assert.Same(t, ret, fn.Ret)
	assert.Equal(t, "f", fn.Name.Full(), "the name should migrate onto the function")
	assert.True(t, ptr.Name.Empty())
}

// TestPatchNilDecl covers Patch's "decl == nil" rule: declare x as int,
// with no declarator subtree at all.
func TestPatchNilDecl(t *testing.T) {
	a := decl.NewArena()
	typ := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	got := decl.Patch(typ, nil)
	assert.Same(t, typ, got)
}

// TestPatchSplicesTypeIntoPlaceholder covers the "typ.Depth < decl.Depth"
// branch: the base type is spliced in place of the placeholder and the
// declarator subtree's root is returned.
func TestPatchSplicesTypeIntoPlaceholder(t *testing.T) {
	a := decl.NewArena()

	// ptr sits one paren level deeper than typ, e.g. "int (*p)": the
	// placeholder must be spliced out in favor of typ, not the reverse.
	ptr := a.NewPointer(decl.Position{}, 1, csym.TNone)
	ptr.Name = sname.New("p")
	placeholder := a.NewPlaceholder(decl.Position{}, 1)
	decl.SetParent(placeholder, ptr)

	typ := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	final := decl.Patch(typ, ptr)

	require.Same(t, ptr, final)
	assert.Same(t, typ, ptr.Of)
	assert.Equal(t, "p", final.Name.Full())
}

// TestTakeNameAndTakeStorage cover C4's ownership-transfer helpers in
// isolation.
func TestTakeNameAndTakeStorage(t *testing.T) {
	a := decl.NewArena()
	builtin := a.NewBuiltin(decl.Position{}, 0, csym.New(csym.TStatic, csym.TInt))
	builtin.Name = sname.New("x")

	name := decl.TakeName(builtin)
	assert.Equal(t, "x", name.Full())
	assert.True(t, builtin.Name.Empty())

	storage := decl.TakeStorage(builtin)
	assert.True(t, storage.Has(csym.TStatic))
	assert.False(t, builtin.Type.Has(csym.TStatic))
	assert.True(t, builtin.Type.Has(csym.TInt))
}

func TestUnpointerUnreferenceUntypedef(t *testing.T) {
	a := decl.NewArena()
	target := a.NewBuiltin(decl.Position{}, 0, csym.TInt)

	ptr := a.NewPointer(decl.Position{}, 0, csym.TNone)
	ptr.Of = target
	assert.Same(t, target, decl.Unpointer(ptr))
	assert.Nil(t, decl.Unpointer(target))

	ref2 := a.NewReference(decl.Position{}, 0, csym.TNone)
	ref1 := a.NewReference(decl.Position{}, 0, csym.TNone)
	ref1.Of = ref2
	ref2.Of = target
	assert.Same(t, target, decl.Unreference(ref1))

	td := a.NewTypedef(decl.Position{}, 0, sname.New("myint"), target)
	assert.Same(t, target, decl.Untypedef(td))
}
