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

package dump_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdecl-go/cdecl/internal/csym"
	"github.com/cdecl-go/cdecl/internal/decl"
	"github.com/cdecl-go/cdecl/internal/dump"
	"github.com/cdecl-go/cdecl/internal/sname"
)

func TestDumpNil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump.Dump(&buf, nil))
	assert.Equal(t, "null\n", buf.String())
}

func TestDumpTree(t *testing.T) {
	a := decl.NewArena()
	intBase := a.NewBuiltin(decl.Position{}, 0, csym.TInt)
	array := a.NewArray(decl.Position{}, 0, decl.ArraySize{Kind: decl.ArraySizeInt, Value: 3})
	decl.SetParent(intBase, array)
	array.Name = sname.New("a")

	var buf bytes.Buffer
	require.NoError(t, dump.Dump(&buf, array))
	out := buf.String()

	assert.Contains(t, out, `kind: "array"`)
	assert.Contains(t, out, "array_size: 3")
	assert.Contains(t, out, `sname: "a"`)
	assert.Contains(t, out, `kind: "builtin"`)
	assert.Contains(t, out, `type: "int"`)
	assert.Contains(t, out, "of: {")
}

func TestDumpFunctionParams(t *testing.T) {
	a := decl.NewArena()
	ch := a.NewBuiltin(decl.Position{}, 0, csym.TChar)
	fn := a.NewFunction(decl.Position{}, 0, []*decl.Node{ch}, decl.FuncMember)
	decl.SetParent(a.NewBuiltin(decl.Position{}, 0, csym.TInt), fn)

	var buf bytes.Buffer
	require.NoError(t, dump.Dump(&buf, fn))
	out := buf.String()

	assert.Contains(t, out, `func_flags: "member"`)
	assert.Contains(t, out, "param_ast_list: [")
	assert.Contains(t, out, `type: "char"`)
	assert.Contains(t, out, "ret: {")
}
