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

package gibberish_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cdecl-go/cdecl/internal/csym"
	"github.com/cdecl-go/cdecl/internal/decl"
	"github.com/cdecl-go/cdecl/internal/gibberish"
	"github.com/cdecl-go/cdecl/internal/langver"
	"github.com/cdecl-go/cdecl/internal/session"
	"github.com/cdecl-go/cdecl/internal/sname"
)

func sess() *session.Session { return session.New(langver.CPP17) }

// newPointerToArray builds "pointer to array 3 of int" named x, the shape
// whose rendering needs parentheses: int (*x)[3].
func newPointerToArray(a *decl.Arena) *decl.Node {
	intBase := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	array := a.NewArray(decl.Position{}, 0, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 3})
	decl.SetParent(intBase, array)
	ptr := a.NewPointer(decl.Position{}, 0, csym.TNone)
	decl.SetParent(array, ptr)
	ptr.Name = sname.New("x")
	return ptr
}

func TestRenderParenthesization(t *testing.T) {
	a := decl.NewArena()

	assert.Equal(t, "int (*x)[3]", gibberish.Render(sess(), newPointerToArray(a)))

	// The mirror shape, array of pointer, must NOT parenthesize.
	intBase := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	ptr := a.NewPointer(decl.Position{}, 0, csym.TNone)
	decl.SetParent(intBase, ptr)
	array := a.NewArray(decl.Position{}, 0, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 3})
	decl.SetParent(ptr, array)
	array.Name = sname.New("a")
	assert.Equal(t, "int *a[3]", gibberish.Render(sess(), array))
}

func TestRenderPointerToFunction(t *testing.T) {
	a := decl.NewArena()
	intRet := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	ch := a.NewBuiltin(decl.Position{}, 0, csym.TChar)
	fn := a.NewFunction(decl.Position{}, 0, []*decl.Node{ch}, decl.FuncUnspecified)
	decl.SetParent(intRet, fn)
	ptr := a.NewPointer(decl.Position{}, 0, csym.TNone)
	decl.SetParent(fn, ptr)
	ptr.Name = sname.New("f")

	assert.Equal(t, "int (*f)(char)", gibberish.Render(sess(), ptr))
}

func TestRenderCast(t *testing.T) {
	a := decl.NewArena()
	void := a.NewBuiltin(decl.Position{}, 0, csym.TVoid)
	fn := a.NewFunction(decl.Position{}, 0, nil, decl.FuncUnspecified)
	decl.SetParent(void, fn)
	ptr := a.NewPointer(decl.Position{}, 0, csym.TNone)
	decl.SetParent(fn, ptr)

	assert.Equal(t, "(void (*)())x", gibberish.RenderCast(sess(), ptr, "x"))
}

func TestRenderEastConst(t *testing.T) {
	a := decl.NewArena()
	ch := a.NewBuiltin(decl.Position{}, 0, csym.New(csym.TConst, csym.TChar))
	ptr := a.NewPointer(decl.Position{}, 0, csym.TNone)
	decl.SetParent(ch, ptr)
	ptr.Name = sname.New("s")

	west := sess()
	assert.Equal(t, "const char *s", gibberish.Render(west, ptr))

	east := sess()
	east.Options.EastConst = true
	assert.Equal(t, "char const *s", gibberish.Render(east, ptr))
}

func TestRenderConstPointer(t *testing.T) {
	a := decl.NewArena()
	ch := a.NewBuiltin(decl.Position{}, 0, csym.TChar)
	ptr := a.NewPointer(decl.Position{}, 0, csym.TConst)
	decl.SetParent(ch, ptr)
	ptr.Name = sname.New("p")

	// const on the pointer itself goes after the star.
	assert.Equal(t, "char *const p", gibberish.Render(sess(), ptr))
}

func TestRenderPointerToMember(t *testing.T) {
	a := decl.NewArena()
	intBase := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	ptm := a.NewPointerToMember(decl.Position{}, 0, csym.TNone, sname.New("C"))
	decl.SetParent(intBase, ptm)
	ptm.Name = sname.New("pm")

	assert.Equal(t, "int C::*pm", gibberish.Render(sess(), ptm))
}

func TestRenderReferences(t *testing.T) {
	a := decl.NewArena()
	intBase := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	ref := a.NewReference(decl.Position{}, 0, csym.TNone)
	decl.SetParent(intBase, ref)
	ref.Name = sname.New("r")
	assert.Equal(t, "int &r", gibberish.Render(sess(), ref))

	intBase2 := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	rref := a.NewRValueReference(decl.Position{}, 0, csym.TNone)
	decl.SetParent(intBase2, rref)
	rref.Name = sname.New("r")
	assert.Equal(t, "int &&r", gibberish.Render(sess(), rref))
}

func TestRenderTypedef(t *testing.T) {
	a := decl.NewArena()
	entry := a.NewBuiltin(decl.Position{}, 0, csym.New(csym.TUnsigned, csym.TLong))
	entry.Name = sname.New("size_t")
	td := a.NewTypedef(decl.Position{}, 0, sname.New("n"), entry)

	assert.Equal(t, "size_t n", gibberish.Render(sess(), td))
}

func TestRenderArraySizes(t *testing.T) {
	for _, tt := range []struct {
		size     decl.ArraySize
		expected string
	}{
		{decl.ArraySize{Kind: decl.ArraySizeUnspecified}, "int a[]"},
		{decl.ArraySize{Kind: decl.ArraySizeVariable}, "int a[*]"},
		{decl.ArraySize{Kind: decl.ArraySizeInt, Value: 7}, "int a[7]"},
	} {
		a := decl.NewArena()
		intBase := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
		array := a.NewArray(decl.Position{}, 0, tt.size)
		decl.SetParent(intBase, array)
		array.Name = sname.New("a")
		assert.Equal(t, tt.expected, gibberish.Render(sess(), array))
	}
}
