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

// Package dump implements cdecl's structured debug dump: a JSON5-flavored
// rendering of a declaration tree used for diagnostics, grounded on
// original_source/src/dump.h's c_ast_dump family (ENABLE_CDECL_DEBUG
// output). Unlike english/gibberish, the dump is not meant to parse back
// into a tree; it exists purely so a developer can inspect what the
// composition algebra actually built.
package dump

import (
	"fmt"
	"io"

	"github.com/cdecl-go/cdecl/internal/decl"
)

// Dump writes root to w as a JSON5-ish object tree, recursively following
// Of/Ret/Params. A nil root dumps as the bare word "null", mirroring
// c_ast_dump's documented behavior for a NULL ast.
func Dump(w io.Writer, root *decl.Node) error {
	d := &dumper{w: w}
	d.node(root, 0)
	d.nl()
	return d.err
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) write(s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, s)
}

func (d *dumper) nl() { d.write("\n") }

func indent(depth int) string {
	out := ""
	for i := 0; i < depth; i++ {
		out += "  "
	}
	return out
}

func (d *dumper) node(n *decl.Node, depth int) {
	if n == nil {
		d.write("null")
		return
	}

	d.write("{\n")
	in := indent(depth + 1)

	d.field(in, "id", fmt.Sprintf("%d", n.ID))
	d.field(in, "kind", quote(n.Kind.String()))
	d.field(in, "depth", fmt.Sprintf("%d", n.Depth))
	if !n.Name.Empty() {
		d.field(in, "sname", quote(n.Name.Full()))
	}
	if !n.Type.IsNone() {
		d.field(in, "type", quote(n.Type.String()))
	}

	switch n.Kind {
	case decl.KEnumClassStructUnion:
		d.field(in, "ecsu_sname", quote(n.ClassName.Full()))
	case decl.KArray:
		d.field(in, "array_size", arraySizeText(n.ArraySize))
		d.fieldNode(in, "of", n.Of, depth+1)
	case decl.KPointer, decl.KReference, decl.KRValueReference, decl.KUserDefConversion:
		d.fieldNode(in, "to", n.Of, depth+1)
	case decl.KPointerToMember:
		d.field(in, "class_sname", quote(n.ClassName.Full()))
		d.fieldNode(in, "to", n.Of, depth+1)
	case decl.KBlock, decl.KFunction, decl.KOperator, decl.KUserDefLiteral:
		if n.Kind == decl.KFunction {
			d.field(in, "func_flags", quote(funcFlagsText(n.FuncFlags)))
		}
		if n.Kind == decl.KOperator {
			d.field(in, "oper_id", quote(n.OperatorID.Token()))
		}
		d.fieldParams(in, n.Params, depth+1)
		d.fieldNode(in, "ret", n.Ret, depth+1)
	case decl.KConstructor:
		d.fieldParams(in, n.Params, depth+1)
	}

	d.write(indent(depth))
	d.write("}")
}

func (d *dumper) field(in, key, value string) {
	d.write(in)
	d.write(key)
	d.write(": ")
	d.write(value)
	d.write(",\n")
}

func (d *dumper) fieldNode(in, key string, n *decl.Node, depth int) {
	d.write(in)
	d.write(key)
	d.write(": ")
	d.node(n, depth)
	d.write(",\n")
}

func (d *dumper) fieldParams(in string, params []*decl.Node, depth int) {
	d.write(in)
	d.write("param_ast_list: [")
	if len(params) == 0 {
		d.write("],\n")
		return
	}
	d.write("\n")
	for _, p := range params {
		d.write(indent(depth + 1))
		d.node(p, depth+1)
		d.write(",\n")
	}
	d.write(indent(depth))
	d.write("],\n")
}

func quote(s string) string { return fmt.Sprintf("%q", s) }

func arraySizeText(size decl.ArraySize) string {
	switch size.Kind {
	case decl.ArraySizeUnspecified:
		return quote("unspecified")
	case decl.ArraySizeVariable:
		return quote("variable")
	case decl.ArraySizeInt:
		return fmt.Sprintf("%d", size.Value)
	default:
		return quote("unknown")
	}
}

func funcFlagsText(f decl.FuncFlags) string {
	switch f {
	case decl.FuncMember:
		return "member"
	case decl.FuncNonMember:
		return "non-member"
	default:
		return "unspecified"
	}
}
