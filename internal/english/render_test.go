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

package english_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cdecl-go/cdecl/internal/csym"
	"github.com/cdecl-go/cdecl/internal/decl"
	"github.com/cdecl-go/cdecl/internal/english"
	"github.com/cdecl-go/cdecl/internal/sname"
)

func TestRenderPointerToFunction(t *testing.T) {
	a := decl.NewArena()

	intRet := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	ch := a.NewBuiltin(decl.Position{}, 0, csym.TChar)
	fn := a.NewFunction(decl.Position{}, 0, []*decl.Node{ch}, decl.FuncUnspecified)
	fn.Name = sname.New("f")
	decl.SetParent(intRet, fn)
	ptr := a.NewPointer(decl.Position{}, 0, csym.TNone)
	decl.SetParent(fn, ptr)

	assert.Equal(t,
		"declare f as pointer to function (char) returning int",
		english.Render(ptr))
}

// TestRenderNameOnInnerNode: the declared name may sit anywhere on the
// spine after composition; Render finds it rather than requiring it on the
// root.
func TestRenderNameOnInnerNode(t *testing.T) {
	a := decl.NewArena()
	intBase := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	intBase.Name = sname.New("a")
	array := a.NewArray(decl.Position{}, 0, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 3})
	decl.SetParent(intBase, array)

	assert.Equal(t, "declare a as array 3 of int", english.Render(array))
}

func TestRenderStorageOnFunction(t *testing.T) {
	a := decl.NewArena()
	intRet := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	void := a.NewBuiltin(decl.Position{}, 0, csym.TVoid)
	fn := a.NewFunction(decl.Position{}, 0, []*decl.Node{void}, decl.FuncUnspecified)
	fn.Name = sname.New("f")
	fn.Type = csym.TStatic
	decl.SetParent(intRet, fn)

	assert.Equal(t,
		"declare f as static function (void) returning int",
		english.Render(fn))
}

func TestRenderCast(t *testing.T) {
	a := decl.NewArena()
	void := a.NewBuiltin(decl.Position{}, 0, csym.TVoid)
	fn := a.NewFunction(decl.Position{}, 0, nil, decl.FuncUnspecified)
	decl.SetParent(void, fn)
	ptr := a.NewPointer(decl.Position{}, 0, csym.TNone)
	decl.SetParent(fn, ptr)

	assert.Equal(t,
		"cast x into pointer to function () returning void",
		english.RenderCast(ptr, "x"))
}

func TestRenderQualifiersAndReferences(t *testing.T) {
	a := decl.NewArena()
	ch := a.NewBuiltin(decl.Position{}, 0, csym.New(csym.TConst, csym.TChar))
	ptr := a.NewPointer(decl.Position{}, 0, csym.TNone)
	decl.SetParent(ch, ptr)
	ptr.Name = sname.New("s")
	assert.Equal(t, "declare s as pointer to const char", english.Render(ptr))

	intBase := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	ref := a.NewRValueReference(decl.Position{}, 0, csym.TNone)
	decl.SetParent(intBase, ref)
	ref.Name = sname.New("r")
	assert.Equal(t, "declare r as rvalue reference to int", english.Render(ref))
}

func TestRenderPointerToMemberAndOperator(t *testing.T) {
	a := decl.NewArena()
	intBase := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	ptm := a.NewPointerToMember(decl.Position{}, 0, csym.TNone, sname.New("C"))
	decl.SetParent(intBase, ptm)
	ptm.Name = sname.New("pm")
	assert.Equal(t,
		"declare pm as pointer to member of class C int",
		english.Render(ptm))

	boolBase := a.NewBuiltin(decl.Position{}, 0, csym.TBool)
	other := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	op := a.NewOperator(decl.Position{}, 0, csym.OpLess, []*decl.Node{other})
	op.Name = sname.New("operator<")
	op.FuncFlags = decl.FuncMember
	decl.SetParent(boolBase, op)
	assert.Equal(t,
		"declare operator< as member operator < (int) returning bool",
		english.Render(op))
}

func TestRenderTypedefUsesRegistryName(t *testing.T) {
	a := decl.NewArena()
	entry := a.NewBuiltin(decl.Position{}, 0, csym.New(csym.TUnsigned, csym.TLong))
	entry.Name = sname.New("size_t")

	td := a.NewTypedef(decl.Position{}, 0, sname.New("x"), entry)
	assert.Equal(t, "declare x as size_t", english.Render(td))
}

func TestRenderTypeOnly(t *testing.T) {
	a := decl.NewArena()
	ch := a.NewBuiltin(decl.Position{}, 0, csym.New(csym.TUnsigned, csym.TChar))
	assert.Equal(t, "unsigned char", english.RenderType(ch))
}
