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

package cmdlang

import (
	"github.com/cdecl-go/cdecl/internal/csym"
	"github.com/cdecl-go/cdecl/internal/decl"
	"github.com/cdecl-go/cdecl/internal/session"
	"github.com/cdecl-go/cdecl/internal/sname"
)

// gibberishParser builds a declaration tree from raw C/C++ declarator
// syntax ("int (*f)(char)"), driving the composition algebra the way the
// original grammar does: the in-progress type is kept on a stack, a
// Placeholder stands in for it inside each parenthesized group, array and
// function suffixes are attached with AddArray/AddFunction, and Patch
// reconciles the type subtree with the declarator subtree at each level.
type gibberishParser struct {
	a    *decl.Arena
	sess *session.Session
	s    *stream

	// depth is the current declarator parenthesization depth; every node
	// records the depth at its creation and the composition algebra
	// compares depths to decide association.
	depth int

	// typeStack is the in-progress type at each declarator level: the base
	// type at the bottom, a Placeholder for each open paren group, and the
	// pointer/reference being built during a pointer declarator.
	typeStack []*decl.Node
}

func (p *gibberishParser) pushType(n *decl.Node) { p.typeStack = append(p.typeStack, n) }

func (p *gibberishParser) popType() { p.typeStack = p.typeStack[:len(p.typeStack)-1] }

func (p *gibberishParser) peekType() *decl.Node { return p.typeStack[len(p.typeStack)-1] }

// parseDecl parses "decl-specifiers declarator" and returns the final,
// patched tree.
func (p *gibberishParser) parseDecl() (*decl.Node, error) {
	typ, err := p.parseDeclSpecs()
	if err != nil {
		return nil, err
	}
	p.pushType(typ)
	defer p.popType()

	d, err := p.parseDeclarator()
	if err != nil {
		return nil, err
	}
	return decl.Patch(typ, d), nil
}

// parseDeclSpecs consumes storage-class, qualifier, and type-specifier
// keywords and returns the base-type node: a Builtin, an elaborated
// enum/class/struct/union, or a Typedef reference.
func (p *gibberishParser) parseDeclSpecs() (*decl.Node, error) {
	pos := p.currentPos()
	var bits csym.TypeID
	sawSpec := false

	for {
		t, ok := p.s.peek()
		if !ok {
			break
		}
		word := lower(t.Text)

		if bit, ok := storageWords[word]; ok {
			p.s.next()
			bits |= bit
			continue
		}
		if bit, ok := qualifierWords[word]; ok {
			p.s.next()
			bits |= bit
			continue
		}
		if word == "_atomic" {
			p.s.next()
			bits |= csym.TAtomic
			continue
		}
		if bit, ok := baseTypeWords[word]; ok {
			p.s.next()
			if bit == csym.TLong && bits.Has(csym.TLong) {
				bits = bits.Diff(csym.TLong).Union(csym.TLongLong)
			} else {
				bits |= bit
			}
			sawSpec = true
			continue
		}

		switch word {
		case "struct", "class", "union", "enum":
			p.s.next()
			scope := tagScope(word)
			name, err := p.parseScopedName()
			if err != nil {
				return nil, err
			}
			tagged := sname.NewScoped(name.Local(), scope)
			n := p.a.NewEnumClassStructUnion(decl.Position{Start: pos}, p.depth, bits, tagged)
			return n, nil
		}

		if !sawSpec {
			if td := p.sess.Typedefs.Lookup(sname.New(t.Text)); td != nil {
				p.s.next()
				n := p.a.NewTypedef(decl.Position{Start: pos}, p.depth, sname.Name{}, td)
				n.Type = n.Type.Union(bits)
				return n, nil
			}
		}
		break
	}

	if !sawSpec && bits == csym.TNone {
		t, _ := p.s.peek()
		got := "end of input"
		if t.Text != "" {
			got = t.Text
		}
		return nil, &SyntaxError{Pos: pos, Message: "unexpected " + got, Expected: "a type"}
	}
	return p.a.NewBuiltin(decl.Position{Start: pos}, p.depth, bits), nil
}

// parseDeclarator parses pointer, reference, and direct declarators,
// returning the subtree the enclosing production should propagate.
func (p *gibberishParser) parseDeclarator() (*decl.Node, error) {
	pos := p.currentPos()

	switch {
	case p.s.accept("*"):
		ptr := p.a.NewPointer(decl.Position{Start: pos}, p.depth, csym.TNone)
		p.applyDeclQualifiers(ptr)
		decl.SetParent(p.peekType(), ptr)
		return p.finishPointerish(ptr)

	case p.s.accept("&&"):
		ref := p.a.NewRValueReference(decl.Position{Start: pos}, p.depth, csym.TNone)
		p.applyDeclQualifiers(ref)
		decl.SetParent(p.peekType(), ref)
		return p.finishPointerish(ref)

	case p.s.accept("&"):
		ref := p.a.NewReference(decl.Position{Start: pos}, p.depth, csym.TNone)
		p.applyDeclQualifiers(ref)
		decl.SetParent(p.peekType(), ref)
		return p.finishPointerish(ref)
	}

	if class, ok, err := p.acceptMemberPointerPrefix(); err != nil {
		return nil, err
	} else if ok {
		ptm := p.a.NewPointerToMember(decl.Position{Start: pos}, p.depth, csym.TNone, class)
		p.applyDeclQualifiers(ptm)
		decl.SetParent(p.peekType(), ptm)
		return p.finishPointerish(ptm)
	}

	return p.parseDirectDeclarator()
}

// finishPointerish pushes n as the in-progress type, parses the rest of the
// declarator, and patches n into the result.
func (p *gibberishParser) finishPointerish(n *decl.Node) (*decl.Node, error) {
	p.pushType(n)
	defer p.popType()
	sub, err := p.parseDeclarator()
	if err != nil {
		return nil, err
	}
	return decl.Patch(n, sub), nil
}

// applyDeclQualifiers consumes cv-qualifiers that follow a `*`/`&` token
// and applies them to n, recording the position of the first qualifier in
// n's end position so the checker can point at it.
func (p *gibberishParser) applyDeclQualifiers(n *decl.Node) {
	for {
		t, ok := p.s.peek()
		if !ok {
			return
		}
		bit, ok := qualifierWords[lower(t.Text)]
		if !ok {
			return
		}
		p.s.next()
		n.Type = n.Type.Union(bit)
		if n.Pos.End == (decl.Pos{}) {
			n.Pos.End = t.Pos
		}
	}
}

// acceptMemberPointerPrefix recognizes "Class::*" and returns the class
// name, consuming the tokens only on a full match.
func (p *gibberishParser) acceptMemberPointerPrefix() (sname.Name, bool, error) {
	save := p.s.pos
	t, ok := p.s.peek()
	if !ok || !isIdent(t.Text) || isKeyword(t.Text) {
		return sname.Name{}, false, nil
	}
	name, err := p.parseScopedName()
	if err != nil || name.Empty() {
		p.s.pos = save
		return sname.Name{}, false, nil
	}
	// parseScopedName stops before a "::" not followed by a name, so a
	// member-pointer declarator now sits at "::" "*".
	if !p.s.accept("::") || !p.s.accept("*") {
		p.s.pos = save
		return sname.Name{}, false, nil
	}
	return name, true, nil
}

// parseDirectDeclarator parses the core of a declarator (a name, a
// parenthesized sub-declarator, or nothing for an abstract declarator)
// followed by any number of array and function suffixes.
func (p *gibberishParser) parseDirectDeclarator() (*decl.Node, error) {
	var ast *decl.Node

	switch {
	case p.startsGroup():
		pos := p.currentPos()
		p.s.accept("(")
		// The placeholder stands in for the type while inside the group; it
		// carries the pre-group depth so the composition algebra associates
		// suffixes applied after the closing paren with the group's
		// contents, not above them.
		ph := p.a.NewPlaceholder(decl.Position{Start: pos}, p.depth)
		p.depth++
		p.pushType(ph)
		inner, err := p.parseDeclarator()
		p.popType()
		if err != nil {
			return nil, err
		}
		if err := p.s.expect(")"); err != nil {
			return nil, err
		}
		p.depth--
		ast = inner

	case p.peekIdent():
		name, err := p.parseScopedName()
		if err != nil {
			return nil, err
		}
		ast = p.peekType()
		ast.Name = name

	default:
		// Abstract declarator: the type itself is the core.
		ast = p.peekType()
	}

	return p.parseDeclaratorSuffixes(ast)
}

// parseDeclaratorSuffixes attaches "[size]" and "(params)" suffixes to ast
// via the composition algebra and returns the resulting root.
func (p *gibberishParser) parseDeclaratorSuffixes(ast *decl.Node) (*decl.Node, error) {
	for {
		pos := p.currentPos()
		switch {
		case p.s.accept("["):
			size, err := p.parseArraySize()
			if err != nil {
				return nil, err
			}
			array := p.a.NewArray(decl.Position{Start: pos}, p.depth, size)
			decl.SetParent(p.a.NewPlaceholder(decl.Position{Start: pos}, p.depth), array)
			ast = decl.AddArray(ast, array)

		case p.s.is("("):
			p.s.accept("(")
			params, err := p.parseParams()
			if err != nil {
				return nil, err
			}
			fn := p.a.NewFunction(decl.Position{Start: pos}, p.depth, params, decl.FuncUnspecified)
			p.applyFuncQualifiers(fn)
			if target := funcTarget(ast); target != nil {
				// The placeholder hole sits below a function already in the
				// tree, where AddFunction's own recursion cannot reach it
				// (e.g. the outer "(int)" of "int (*(*f)(char))(int)");
				// splice at the hole's parent and keep the current root.
				decl.AddFunction(target, p.peekType(), fn)
			} else {
				ast = decl.AddFunction(ast, p.peekType(), fn)
			}

		default:
			return ast, nil
		}
	}
}

// funcTarget decides where a function suffix must be spliced: nil when
// AddFunction can reach the tree's placeholder by itself (its recursion
// descends through array/pointer/reference nodes only), else the
// placeholder's parent. This carries the same information as the original
// grammar's ast/target pair for parenthesized declarators.
func funcTarget(ast *decl.Node) *decl.Node {
	ph := decl.FindKind(ast, decl.Down, decl.KPlaceholder)
	if ph == nil || ph.Parent == nil {
		return nil
	}
	for n := ast; n != nil && n.Kind.Has(decl.KArray|decl.KAnyPointer|decl.KAnyReference); n = n.Of {
		if n == ph.Parent {
			return nil
		}
	}
	return ph.Parent
}

func (p *gibberishParser) parseArraySize() (decl.ArraySize, error) {
	if p.s.accept("]") {
		return decl.ArraySize{Kind: decl.ArraySizeUnspecified}, nil
	}
	if p.s.accept("*") {
		if err := p.s.expect("]"); err != nil {
			return decl.ArraySize{}, err
		}
		return decl.ArraySize{Kind: decl.ArraySizeVariable}, nil
	}
	t, ok := p.s.next()
	if !ok || !t.Int {
		return decl.ArraySize{}, &SyntaxError{Pos: t.Pos, Message: "bad array size " + t.Text, Expected: "an integer"}
	}
	if err := p.s.expect("]"); err != nil {
		return decl.ArraySize{}, err
	}
	return decl.ArraySize{Kind: decl.ArraySizeInt, Value: parseInt(t)}, nil
}

// parseParams parses a parenthesized parameter list, the opening paren
// already consumed.
func (p *gibberishParser) parseParams() ([]*decl.Node, error) {
	var params []*decl.Node
	if p.s.accept(")") {
		return params, nil
	}
	for {
		param, err := p.parseParamDecl()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.s.accept(",") {
			continue
		}
		break
	}
	if err := p.s.expect(")"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseParamDecl parses one parameter: "...", a full declaration, or a
// typeless K&R-style bare name.
func (p *gibberishParser) parseParamDecl() (*decl.Node, error) {
	pos := p.currentPos()
	if p.s.accept("...") {
		return p.a.NewVariadic(decl.Position{Start: pos}, p.depth), nil
	}

	// A bare identifier that names neither a type keyword nor a defined
	// typedef is a K&R-style typeless argument.
	if t, ok := p.s.peek(); ok && isIdent(t.Text) && !isKeyword(t.Text) &&
		p.sess.Typedefs.Lookup(sname.New(t.Text)) == nil {
		p.s.next()
		return p.a.NewName(decl.Position{Start: t.Pos}, p.depth, sname.New(t.Text)), nil
	}

	return p.parseDecl()
}

// applyFuncQualifiers consumes trailing member-function qualifiers
// (cv-qualifiers and ref-qualifiers) after a function's parameter list.
func (p *gibberishParser) applyFuncQualifiers(fn *decl.Node) {
	for {
		switch {
		case p.s.accept("&&"):
			fn.Type = fn.Type.Union(csym.TRefQualRValue)
		case p.s.accept("&"):
			fn.Type = fn.Type.Union(csym.TRefQualLValue)
		default:
			t, ok := p.s.peek()
			if !ok {
				return
			}
			bit, isQual := qualifierWords[lower(t.Text)]
			if !isQual {
				return
			}
			p.s.next()
			fn.Type = fn.Type.Union(bit)
		}
	}
}

// startsGroup reports whether a "(" at the current position opens a
// parenthesized sub-declarator rather than a function parameter list. A
// group must contain a nested declarator: a pointer/reference token,
// another group, or a plain name that is not a type.
func (p *gibberishParser) startsGroup() bool {
	if !p.s.is("(") {
		return false
	}
	if p.s.pos+1 >= len(p.s.toks) {
		return false
	}
	next := p.s.toks[p.s.pos+1]
	switch next.Text {
	case "*", "&", "&&", "(":
		return true
	}
	if isIdent(next.Text) && !isKeyword(next.Text) &&
		p.sess.Typedefs.Lookup(sname.New(next.Text)) == nil {
		return true
	}
	return false
}

func (p *gibberishParser) peekIdent() bool {
	t, ok := p.s.peek()
	return ok && isIdent(t.Text) && !isKeyword(t.Text)
}

// parseScopedName parses IDENT ("::" IDENT)* into a scoped name.
func (p *gibberishParser) parseScopedName() (sname.Name, error) {
	t, ok := p.s.next()
	if !ok || !isIdent(t.Text) {
		return sname.Name{}, &SyntaxError{Pos: t.Pos, Message: "expected a name"}
	}
	name := sname.New(t.Text)
	// Only consume "::" when a name segment follows; "Class::*" leaves the
	// "::" for the member-pointer recognizer.
	for p.s.is("::") && p.s.pos+1 < len(p.s.toks) && isIdent(p.s.toks[p.s.pos+1].Text) {
		p.s.accept("::")
		seg, _ := p.s.next()
		name = name.Append(sname.Segment{Name: seg.Text, Scope: sname.ScopeNamespace})
	}
	return name, nil
}

func (p *gibberishParser) currentPos() decl.Pos {
	if t, ok := p.s.peek(); ok {
		return t.Pos
	}
	return decl.Pos{}
}

func tagScope(word string) sname.ScopeKind {
	switch word {
	case "class":
		return sname.ScopeClass
	case "struct":
		return sname.ScopeStruct
	case "union":
		return sname.ScopeUnion
	default:
		return sname.ScopeNone
	}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
