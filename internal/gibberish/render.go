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

// Package gibberish renders a declaration tree as C/C++ source syntax: the
// inverse of the english package. Given the tree for "declare f as pointer
// to function (char) returning int" it produces "int (*f)(char)".
package gibberish

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cdecl-go/cdecl/internal/csym"
	"github.com/cdecl-go/cdecl/internal/decl"
	"github.com/cdecl-go/cdecl/internal/session"
	"github.com/cdecl-go/cdecl/internal/sname"
)

// precedence ranks a Kind for parenthesization purposes: higher binds
// tighter. Array and Function bind tighter than Pointer/Reference, per
// spec.md §4.7's precedence table; a node whose child has strictly higher
// precedence wraps its own declarator in parens, as in "int (*x)[3]".
func precedence(k decl.Kind) int {
	switch {
	case k.Has(decl.KArray | decl.KFunctionLike):
		return 2
	case k.Has(decl.KAnyPointer | decl.KAnyReference):
		return 1
	default:
		return 0
	}
}

// Render walks root and returns its C/C++ source-syntax rendering,
// honoring sess's east-const and explicit-int options. The algorithm
// works in two conceptual passes (spec.md §4.7): inside-out to find the
// base type, outside-in to emit declarator decorations with precedence-
// driven parenthesization; in this implementation both happen in one
// recursive walk that carries the declarator built so far as a string,
// since Go string concatenation makes a literal two-pass buffer
// unnecessary.
func Render(sess *session.Session, root *decl.Node) string {
	if root == nil {
		return ""
	}
	base, decltor := split(sess, root, root.Name.Full())
	base = strings.TrimSpace(base)
	if decltor == "" {
		return base
	}
	if base == "" {
		return decltor
	}
	return base + " " + decltor
}

// RenderCast renders root as a C-style cast applied to operand, e.g.
// "(void (*)())x" for a cast of x to pointer to function returning void. The
// cast's type is rendered as an abstract declarator: same algorithm as
// Render, with no name embedded at the innermost position.
func RenderCast(sess *session.Session, root *decl.Node, operand string) string {
	return "(" + renderType(sess, root) + ")" + operand
}

// typedefName resolves the display name of a Typedef node: the registry
// entry's own name, not the declared name the node may have taken over
// during placeholder patching.
func typedefName(n *decl.Node) string {
	if n.Typedef != nil && !n.Typedef.Name.Empty() {
		return n.Typedef.Name.Full()
	}
	return n.Name.Full()
}

// split returns the base-type text and the fully parenthesized declarator
// text (which embeds name) for n.
func split(sess *session.Session, n *decl.Node, name string) (base, decltor string) {
	switch n.Kind {
	case decl.KPlaceholder:
		return "", name

	case decl.KBuiltin:
		return typeWords(sess, n.Type), name

	case decl.KName:
		return "", name

	case decl.KEnumClassStructUnion:
		return tagKeyword(n) + " " + n.ClassName.Full(), name

	case decl.KTypedef:
		return typedefName(n), name

	case decl.KVariadic:
		return "", "..."

	case decl.KArray:
		inner := name + "[" + arraySizeText(n.ArraySize) + "]"
		return recurse(sess, n, n.Of, inner)

	case decl.KPointer:
		star := "*" + qualSuffix(n.Type) + name
		return recurse(sess, n, n.Of, maybeParen(n, n.Of, star))

	case decl.KPointerToMember:
		star := n.ClassName.Full() + "::*" + qualSuffix(n.Type) + name
		return recurse(sess, n, n.Of, maybeParen(n, n.Of, star))

	case decl.KReference:
		ref := "&" + name
		return recurse(sess, n, n.Of, maybeParen(n, n.Of, ref))

	case decl.KRValueReference:
		ref := "&&" + name
		return recurse(sess, n, n.Of, maybeParen(n, n.Of, ref))

	case decl.KBlock:
		inner := "(^" + name + ")(" + paramList(sess, n.Params) + ")"
		return recurse(sess, n, n.Ret, inner)

	case decl.KFunction:
		inner := name + "(" + paramList(sess, n.Params) + ")" + refQualSuffix(n.Type)
		return recurse(sess, n, n.Ret, inner)

	case decl.KConstructor:
		return "", name + "(" + paramList(sess, n.Params) + ")"

	case decl.KDestructor:
		return "", "~" + name + "()"

	case decl.KOperator:
		inner := "operator" + n.OperatorID.Token() + "(" + paramList(sess, n.Params) + ")"
		return recurse(sess, n, n.Ret, inner)

	case decl.KUserDefConversion:
		inner := "operator " + renderType(sess, n.Of) + "()"
		return "", inner

	case decl.KUserDefLiteral:
		inner := "operator\"\" " + name + "(" + paramList(sess, n.Params) + ")"
		return recurse(sess, n, n.Ret, inner)

	default:
		panic(fmt.Sprintf("gibberish: unexpected kind %s", n.Kind))
	}
}

// recurse resolves the base type from child and combines it with decltor,
// the declarator text already built for n.
func recurse(sess *session.Session, _ *decl.Node, child *decl.Node, decltor string) (base, out string) {
	if child == nil {
		return "", decltor
	}
	b, d := split(sess, child, decltor)
	if d == "" {
		return b, decltor
	}
	return b, d
}

// maybeParen wraps decltor in parens when n's child binds more tightly
// than n, e.g. a Pointer whose child is an Array or Function: without the
// parens "int *x[3]" would misparse as "array of pointer" instead of the
// intended "pointer to array".
func maybeParen(n, child *decl.Node, decltor string) string {
	if child != nil && precedence(child.Kind) > precedence(n.Kind) {
		return "(" + decltor + ")"
	}
	return decltor
}

func arraySizeText(size decl.ArraySize) string {
	switch size.Kind {
	case decl.ArraySizeUnspecified:
		return ""
	case decl.ArraySizeVariable:
		return "*"
	case decl.ArraySizeInt:
		return strconv.Itoa(size.Value)
	default:
		panic(fmt.Sprintf("gibberish: unexpected array size kind %d", size.Kind))
	}
}

func paramList(sess *session.Session, params []*decl.Node) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = Render(sess, p)
	}
	return strings.Join(parts, ", ")
}

// renderType renders n's type only, discarding any name, for contexts like
// a user-defined conversion's target type where no declarator name applies.
func renderType(sess *session.Session, n *decl.Node) string {
	base, decltor := split(sess, n, "")
	if decltor == "" {
		return strings.TrimSpace(base)
	}
	return strings.TrimSpace(base + " " + decltor)
}

func tagKeyword(n *decl.Node) string {
	switch n.ClassName.Scope() {
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

// typeWords renders a Builtin's type bits as C/C++ source tokens, honoring
// sess.Options.EastConst (const/volatile placed after the base type
// instead of before) and ExplicitInt (keep "int" even when a sign/size
// specifier would otherwise make it implicit).
func typeWords(sess *session.Session, t csym.TypeID) string {
	var pre, base, post []string

	for _, bit := range []csym.TypeID{
		csym.TStatic, csym.TExtern, csym.TRegister, csym.TThreadLocal,
		csym.TInline, csym.TNoreturn, csym.TConstExpr,
	} {
		if t.Has(bit) {
			pre = append(pre, bit.String())
		}
	}

	cv := []csym.TypeID{csym.TConst, csym.TVolatile, csym.TRestrict, csym.TAtomic}
	if sess == nil || !sess.Options.EastConst {
		for _, bit := range cv {
			if t.Has(bit) {
				pre = append(pre, bit.String())
			}
		}
	}

	for _, bit := range []csym.TypeID{
		csym.TSigned, csym.TUnsigned, csym.TShort, csym.TLong, csym.TLongLong,
	} {
		if t.Has(bit) {
			base = append(base, bit.String())
		}
	}
	switch {
	case t.Has(csym.TVoid):
		base = append(base, "void")
	case t.Has(csym.TBool):
		base = append(base, "bool")
	case t.Has(csym.TChar):
		base = append(base, "char")
	case t.Has(csym.TChar8T):
		base = append(base, "char8_t")
	case t.Has(csym.TChar16T):
		base = append(base, "char16_t")
	case t.Has(csym.TChar32T):
		base = append(base, "char32_t")
	case t.Has(csym.TWcharT):
		base = append(base, "wchar_t")
	case t.Has(csym.TFloat):
		base = append(base, "float")
	case t.Has(csym.TDouble):
		if t.Has(csym.TLong) {
			base = []string{"long", "double"}
		} else {
			base = append(base, "double")
		}
	case t.Has(csym.TLongDouble):
		base = append(base, "long", "double")
	case t.Has(csym.TAuto_):
		base = append(base, "auto")
	default:
		if len(base) > 0 && (sess == nil || sess.Options.ExplicitInt) {
			base = append(base, "int")
		} else if len(base) == 0 {
			base = append(base, "int")
		}
	}

	if sess != nil && sess.Options.EastConst {
		for _, bit := range cv {
			if t.Has(bit) {
				post = append(post, bit.String())
			}
		}
	}

	words := append(append(pre, base...), post...)
	return strings.Join(words, " ")
}

// qualSuffix renders cv-qualifiers that follow a pointer/reference's `*`/
// `&` token, e.g. the "const" in "char *const p".
func qualSuffix(t csym.TypeID) string {
	var words []string
	for _, bit := range []csym.TypeID{csym.TConst, csym.TVolatile, csym.TRestrict, csym.TAtomic} {
		if t.Has(bit) {
			words = append(words, bit.String())
		}
	}
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, " ") + " "
}

func refQualSuffix(t csym.TypeID) string {
	switch {
	case t.Has(csym.TRefQualLValue):
		return " &"
	case t.Has(csym.TRefQualRValue):
		return " &&"
	default:
		return ""
	}
}
