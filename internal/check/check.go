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

package check

import (
	"fmt"

	"github.com/cdecl-go/cdecl/internal/csym"
	"github.com/cdecl-go/cdecl/internal/decl"
	"github.com/cdecl-go/cdecl/internal/langver"
	"github.com/cdecl-go/cdecl/internal/session"
)

// Check walks root and reports every semantic error found: kind
// combinations illegal for sess's language version, conflicting or
// misplaced type bits, wrong arity for constructors/destructors/
// operators, and illegal recursive compositions (array of function,
// function returning array, reference to reference other than through a
// typedef, pointer to reference). Checking never stops at the first
// error; every Error found is returned together as an Errors. Mirrors
// the two-pass (bottom-up then top-down) shape of c_ast_check in
// original_source/src/c_ast_check.c, minus that file's Bison-parser
// plumbing.
func Check(sess *session.Session, root *decl.Node) error {
	if root == nil {
		return nil
	}
	var errs Errors

	c := &checker{sess: sess, errs: &errs}
	c.checkUp(root)
	c.checkDown(root, 0)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type checker struct {
	sess *session.Session
	errs *Errors
}

func (c *checker) fail(n *decl.Node, format string, args ...interface{}) {
	*c.errs = append(*c.errs, newError(n, format, args...))
}

// failAt reports an error at an explicit position, for rules where the
// offending token (e.g. a qualifier) is not the node's own first token.
func (c *checker) failAt(pos decl.Position, format string, args ...interface{}) {
	*c.errs = append(*c.errs, &Error{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// checkUp visits the spine bottom-up (child before parent), the pass
// c_ast_check.c uses for errors that only make sense once a node's
// "of"/"ret" child is fully known, e.g. "array of function".
func (c *checker) checkUp(n *decl.Node) {
	if n == nil {
		return
	}
	c.checkUp(n.Of)
	c.checkUp(n.Ret)
	for _, p := range n.Params {
		c.checkUp(p)
	}

	switch n.Kind {
	case decl.KArray:
		if n.Of != nil && n.Of.Kind.Has(decl.KFunctionLike) {
			c.fail(n, "array of %s is illegal; use array of pointer to %s",
				n.Of.Kind, n.Of.Kind)
		}
	case decl.KFunction, decl.KBlock, decl.KOperator, decl.KUserDefLiteral:
		if n.Ret != nil {
			switch n.Ret.Kind {
			case decl.KArray:
				c.fail(n, "function returning array is illegal; return pointer to array instead")
			case decl.KFunction, decl.KBlock, decl.KOperator, decl.KUserDefLiteral:
				c.fail(n, "function returning function is illegal; return pointer to function instead")
			}
		}
	case decl.KReference, decl.KRValueReference:
		// Only a direct reference child is illegal; a reference reached
		// through a Typedef node collapses per the usual C++ rules.
		if n.Of != nil && n.Of.Kind.Has(decl.KAnyReference) {
			c.fail(n, "reference to reference is illegal")
		}
	case decl.KPointer:
		if n.Of != nil && n.Of.Kind.Has(decl.KAnyReference) {
			c.fail(n, "pointer to reference is illegal")
		}
	}
}

// checkDown visits the spine top-down, the pass that needs to know a
// node's depth/kind context going in: language-version gating, type-bit
// legality, and per-kind arity rules.
func (c *checker) checkDown(n *decl.Node, depth int) {
	if n == nil {
		return
	}

	c.checkKindLanguage(n)
	c.checkTypeBits(n)
	c.checkArity(n)

	c.checkDown(n.Of, depth+1)
	c.checkDown(n.Ret, depth+1)
	for _, p := range n.Params {
		c.checkDown(p, depth+1)
	}
}

var cppOnlyKinds = decl.KReference | decl.KRValueReference | decl.KPointerToMember |
	decl.KConstructor | decl.KDestructor | decl.KOperator | decl.KUserDefConversion |
	decl.KUserDefLiteral

func (c *checker) checkKindLanguage(n *decl.Node) {
	v := c.sess.LangVersion
	if n.Kind.Has(cppOnlyKinds) && !v.IsCPP() {
		c.fail(n, "%s is not supported in C", n.Kind)
		return
	}
	switch n.Kind {
	case decl.KRValueReference:
		if !v.AtLeast(langver.CPP11) {
			c.fail(n, "rvalue references not supported until C++11")
		}
	case decl.KUserDefLiteral:
		if !v.AtLeast(langver.CPP11) {
			c.fail(n, "user-defined literals not supported until C++11")
		}
	case decl.KArray:
		if n.ArraySize.Kind == decl.ArraySizeVariable && !v.AtLeast(langver.C99) {
			c.fail(n, "variable length arrays not supported until C99")
		}
	}
}

var cppOnlyTypeBits = csym.TVirtual | csym.TPureVirtual | csym.TOverride | csym.TFinal |
	csym.TDefault | csym.TDelete | csym.TExplicit | csym.TFriend | csym.TMutable |
	csym.TRefQualLValue | csym.TRefQualRValue

func (c *checker) checkTypeBits(n *decl.Node) {
	v := c.sess.LangVersion

	if n.Type.HasAny(cppOnlyTypeBits) && !v.IsCPP() {
		c.fail(n, "%s is not supported in C", n.Type)
	}
	if n.Type.Has(csym.TConstExpr) && !v.AtLeast(langver.C23) && !v.AtLeast(langver.CPP11) {
		c.fail(n, "constexpr not supported by %s", v)
	}
	if n.Type.Has(csym.TStatic) && n.Type.Has(csym.TExtern) {
		c.fail(n, `"static" and "extern" are mutually exclusive`)
	}
	if n.Type.Has(csym.TRegister) && v.AtLeast(langver.CPP17) {
		c.fail(n, `"register" not supported in %s`, v)
	}
	if n.Type.Has(csym.TRestrict) && v.IsCPP() {
		c.fail(n, `"restrict" is not supported in C++`)
	}
	if n.Type.Has(csym.TAtomic) && !v.AtLeast(langver.C11) {
		c.fail(n, `"_Atomic" not supported until C11`)
	}
	if n.Type.Has(csym.TThreadLocal) && !v.AtLeast(langver.C11) && !v.AtLeast(langver.CPP11) {
		c.fail(n, `"thread_local" not supported by %s`, v)
	}
	if n.Type.Has(csym.TPureVirtual) && !n.Type.Has(csym.TVirtual) {
		c.fail(n, "pure virtual requires virtual")
	}
	if n.Type.Has(csym.TFinal) && !n.Type.Has(csym.TVirtual) && !n.Type.Has(csym.TOverride) {
		c.fail(n, "final requires virtual or override")
	}
	if n.Type.Has(csym.TDefault) && n.Type.Has(csym.TDelete) {
		c.fail(n, "cannot combine default and delete")
	}

	switch n.Kind {
	case decl.KReference, decl.KRValueReference:
		// A reference is inherently const: cv-qualifying the reference
		// itself (as opposed to the referred-to type) is always an error.
		if n.Type.HasAny(csym.MaskQualifier) {
			pos := n.Pos
			if n.Pos.End != (decl.Pos{}) {
				pos = decl.Position{Start: n.Pos.End, End: n.Pos.End}
			}
			c.failAt(pos, `reference is always const; "%s" not allowed on reference`,
				n.Type.Intersect(csym.MaskQualifier))
		}
	case decl.KDestructor:
		if n.Type.HasAny(csym.MaskBase) {
			c.fail(n, "destructor cannot have a return type")
		}
		if n.Type.Has(csym.TStatic) {
			c.fail(n, `"static" not allowed on destructor`)
		}
	case decl.KBuiltin:
		c.checkBaseType(n)
	}
}

// checkBaseType validates the base-type bits of a Builtin, including the
// "no type at all" case: C89 and C95 had implicit int, later C standards
// and every C++ revision reject it.
func (c *checker) checkBaseType(n *decl.Node) {
	v := c.sess.LangVersion

	if !n.Type.HasAny(csym.MaskBase) {
		if v.IsC() && !v.AtLeast(langver.C99) {
			n.Type = n.Type.Union(csym.TInt)
			return
		}
		c.fail(n, "missing type specifier; implicit int not supported by %s", v)
		return
	}

	switch {
	case n.Type.Has(csym.TBool) && !v.IsCPP() && !v.AtLeast(langver.C99):
		c.fail(n, `"bool" not supported until C99`)
	case n.Type.Has(csym.TChar8T) && !v.AtLeast(langver.CPP20) && !v.AtLeast(langver.C23):
		c.fail(n, `"char8_t" not supported by %s`, v)
	case n.Type.HasAny(csym.TChar16T|csym.TChar32T) &&
		!v.AtLeast(langver.C11) && !v.AtLeast(langver.CPP11):
		c.fail(n, "%s not supported by %s", n.Type.Intersect(csym.TChar16T|csym.TChar32T), v)
	case n.Type.Has(csym.TAuto_) && !v.AtLeast(langver.CPP11) && !v.AtLeast(langver.C23):
		c.fail(n, `"auto" as a deduced type not supported by %s`, v)
	}
}

func (c *checker) checkArity(n *decl.Node) {
	switch n.Kind {
	case decl.KConstructor:
		if n.Ret != nil {
			c.fail(n, "constructor cannot have a return type")
		}
	case decl.KDestructor:
		if len(n.Params) != 0 {
			c.fail(n, "destructor cannot have parameters")
		}
		if n.Ret != nil {
			c.fail(n, "destructor cannot have a return type")
		}
	case decl.KUserDefConversion:
		if len(n.Params) != 0 {
			c.fail(n, "user-defined conversion operator cannot have parameters")
		}
	case decl.KUserDefLiteral:
		if len(n.Params) == 0 {
			c.fail(n, "user-defined literal requires at least one parameter")
		}
	case decl.KVariadic:
		// handled at the KFunction/KBlock/KOperator level below.
	case decl.KOperator:
		c.checkOperatorArity(n)
	}

	if n.Kind.Has(decl.KFunctionLike) {
		for i, p := range n.Params {
			if p.Kind == decl.KVariadic && i != len(n.Params)-1 {
				c.fail(n, "%q must be the last parameter", "...")
			}
		}
	}
}

func (c *checker) checkOperatorArity(n *decl.Node) {
	info := lookupOperator(n.OperatorID)
	if info.overload == overloadNotOverloadable {
		c.fail(n, "%q is not an overloadable operator", n.OperatorID.Token())
		return
	}

	nargs := len(n.Params)

	switch info.overload {
	case overloadMemberOnly:
		if n.FuncFlags == decl.FuncNonMember {
			c.fail(n, "%q can only be a member operator", n.OperatorID.Token())
		}
	case overloadNonMemberOnly:
		if n.FuncFlags == decl.FuncMember {
			c.fail(n, "%q can only be a non-member operator", n.OperatorID.Token())
		}
	}

	if info.argsMax == argsUnlimited {
		return
	}

	switch n.FuncFlags {
	case decl.FuncMember:
		if nargs != info.argsMin {
			c.fail(n, "member %q takes %d argument(s), got %d", n.OperatorID.Token(), info.argsMin, nargs)
		}
	case decl.FuncNonMember:
		if nargs != info.argsMax {
			c.fail(n, "non-member %q takes %d argument(s), got %d", n.OperatorID.Token(), info.argsMax, nargs)
		}
	default:
		if nargs < info.argsMin || nargs > info.argsMax {
			c.fail(n, "%q takes between %d and %d argument(s), got %d",
				n.OperatorID.Token(), info.argsMin, info.argsMax, nargs)
		}
	}
}
