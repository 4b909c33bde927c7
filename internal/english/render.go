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

// Package english renders a declaration tree as an English sentence in
// cdecl's signature style: "declare x as pointer to function (char)
// returning int".
package english

import (
	"fmt"
	"strings"

	"github.com/cdecl-go/cdecl/internal/csym"
	"github.com/cdecl-go/cdecl/internal/decl"
	"github.com/cdecl-go/cdecl/internal/sname"
)

// Render walks root outermost-first along its single-child spine and
// returns the English sentence describing it, in the style of
// spec.md §4.6: "declare NAME as STORAGE KIND of/to/returning ...".
func Render(root *decl.Node) string {
	if root == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("declare ")
	b.WriteString(treeName(root))
	b.WriteString(" as ")
	writeSpine(&b, root)
	return b.String()
}

// RenderCast renders root as the explanation of a cast expression, e.g.
// "cast x into pointer to int".
func RenderCast(root *decl.Node, operand string) string {
	if root == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("cast ")
	b.WriteString(operand)
	b.WriteString(" into ")
	writeSpine(&b, root)
	return b.String()
}

// RenderType renders just the type phrase of root, with no "declare NAME
// as" prefix: the form used when listing typedef definitions.
func RenderType(root *decl.Node) string {
	if root == nil {
		return ""
	}
	var b strings.Builder
	writeSpine(&b, root)
	return b.String()
}

// treeName finds the declared name wherever composition left it: storage
// and name migration during AddFunction can move the name off the root and
// onto an inner function node.
func treeName(root *decl.Node) string {
	if named := decl.FindName(root, decl.Down); named != nil {
		return named.Name.Full()
	}
	return "-"
}

// writeSpine emits the phrase for n and recurses into its single-child
// slot (Of/Ret/Params-then-Ret) until a leaf is reached.
func writeSpine(b *strings.Builder, n *decl.Node) {
	if n == nil {
		return
	}

	if storage := storageWords(n.Type); storage != "" {
		b.WriteString(storage)
		b.WriteString(" ")
	}

	switch n.Kind {
	case decl.KPlaceholder:
		b.WriteString("<placeholder>")

	case decl.KBuiltin:
		// Storage bits were already emitted by the prefix above; print only
		// the qualifier and base-type bits here.
		b.WriteString(n.Type.Diff(csym.MaskStorage | csym.MaskAttribute).String())

	case decl.KName:
		b.WriteString("<name>")

	case decl.KEnumClassStructUnion:
		b.WriteString(tagWord(n.ClassName.Scope()))
		b.WriteString(" ")
		b.WriteString(n.ClassName.Full())

	case decl.KTypedef:
		if n.Typedef != nil && !n.Typedef.Name.Empty() {
			b.WriteString(n.Typedef.Name.Full())
		} else {
			b.WriteString(n.Name.Full())
		}

	case decl.KVariadic:
		b.WriteString("...")

	case decl.KArray:
		b.WriteString(arrayWords(n.ArraySize))
		b.WriteString(" of ")
		writeSpine(b, n.Of)

	case decl.KPointer:
		b.WriteString(qualWords(n.Type))
		b.WriteString("pointer to ")
		writeSpine(b, n.Of)

	case decl.KPointerToMember:
		b.WriteString(qualWords(n.Type))
		b.WriteString(fmt.Sprintf("pointer to member of class %s ", n.ClassName.Full()))
		writeSpine(b, n.Of)

	case decl.KReference:
		b.WriteString(qualWords(n.Type))
		b.WriteString("reference to ")
		writeSpine(b, n.Of)

	case decl.KRValueReference:
		b.WriteString(qualWords(n.Type))
		b.WriteString("rvalue reference to ")
		writeSpine(b, n.Of)

	case decl.KBlock:
		b.WriteString(fmt.Sprintf("block (%s) returning ", paramList(n.Params)))
		writeSpine(b, n.Ret)

	case decl.KFunction:
		b.WriteString(refQualWords(n.Type))
		b.WriteString(memberWord(n.FuncFlags))
		b.WriteString(fmt.Sprintf("function (%s) returning ", paramList(n.Params)))
		writeSpine(b, n.Ret)

	case decl.KConstructor:
		b.WriteString(fmt.Sprintf("constructor (%s)", paramList(n.Params)))

	case decl.KDestructor:
		b.WriteString("destructor")

	case decl.KOperator:
		b.WriteString(memberWord(n.FuncFlags))
		b.WriteString(fmt.Sprintf("operator %s (%s) returning ", n.OperatorID.Token(), paramList(n.Params)))
		writeSpine(b, n.Ret)

	case decl.KUserDefConversion:
		b.WriteString(fmt.Sprintf("user-defined conversion (%s) returning ", paramList(n.Params)))
		writeSpine(b, n.Of)

	case decl.KUserDefLiteral:
		b.WriteString(fmt.Sprintf("user-defined literal (%s) returning ", paramList(n.Params)))
		writeSpine(b, n.Ret)

	default:
		panic(fmt.Sprintf("english: unexpected kind %s", n.Kind))
	}
}

func paramList(params []*decl.Node) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = paramPhrase(p)
	}
	return strings.Join(parts, ", ")
}

// paramPhrase renders one parameter as "NAME as ..." when named, or the
// bare type phrase when anonymous.
func paramPhrase(p *decl.Node) string {
	if p.Kind == decl.KVariadic {
		return "..."
	}
	var b strings.Builder
	if name := p.Name.Full(); name != "" {
		b.WriteString(name)
		b.WriteString(" as ")
	}
	writeSpine(&b, p)
	return b.String()
}

func storageWords(t csym.TypeID) string {
	var words []string
	for _, bit := range []csym.TypeID{
		csym.TAuto, csym.TStatic, csym.TExtern, csym.TRegister,
		csym.TThreadLocal, csym.TInline, csym.TNoreturn, csym.TConstExpr,
		csym.TVirtual, csym.TPureVirtual, csym.TOverride, csym.TFinal,
		csym.TExplicit, csym.TFriend, csym.TMutable, csym.TDefault,
		csym.TDelete,
	} {
		if t.Has(bit) {
			words = append(words, bit.String())
		}
	}
	return strings.Join(words, " ")
}

// qualWords renders the cv-qualifiers (const, volatile, restrict, _Atomic),
// in that fixed order, with a trailing space when non-empty.
func qualWords(t csym.TypeID) string {
	var words []string
	for _, bit := range []csym.TypeID{
		csym.TConst, csym.TVolatile, csym.TRestrict, csym.TAtomic,
	} {
		if t.Has(bit) {
			words = append(words, bit.String())
		}
	}
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, " ") + " "
}

func refQualWords(t csym.TypeID) string {
	switch {
	case t.Has(csym.TRefQualLValue):
		return "lvalue "
	case t.Has(csym.TRefQualRValue):
		return "rvalue "
	default:
		return ""
	}
}

func memberWord(f decl.FuncFlags) string {
	switch f {
	case decl.FuncMember:
		return "member "
	case decl.FuncNonMember:
		return "non-member "
	default:
		return ""
	}
}

func tagWord(scope sname.ScopeKind) string {
	switch scope {
	case sname.ScopeClass:
		return "class"
	case sname.ScopeStruct:
		return "struct"
	case sname.ScopeUnion:
		return "union"
	default:
		return "enum"
	}
}

func arrayWords(size decl.ArraySize) string {
	switch size.Kind {
	case decl.ArraySizeUnspecified:
		return "array"
	case decl.ArraySizeVariable:
		return "variable length array"
	case decl.ArraySizeInt:
		return fmt.Sprintf("array %d", size.Value)
	default:
		panic(fmt.Sprintf("english: unexpected array size kind %d", size.Kind))
	}
}
