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

// operatorByToken reverses csym's operator-token table for the "operator
// TOKEN" phrase form.
var operatorByToken = map[string]csym.OperatorID{
	"!": csym.OpExclam, "!=": csym.OpExclamEq, "%": csym.OpPercent, "%=": csym.OpPercentEq,
	"&": csym.OpAmper, "&&": csym.OpAmper2, "&=": csym.OpAmperEq, "()": csym.OpParens,
	"*": csym.OpStar, "*=": csym.OpStarEq, "+": csym.OpPlus, "++": csym.OpPlus2,
	"+=": csym.OpPlusEq, ",": csym.OpComma, "-": csym.OpMinus, "--": csym.OpMinus2,
	"-=": csym.OpMinusEq, "->": csym.OpArrow, "->*": csym.OpArrowStar, ".": csym.OpDot,
	".*": csym.OpDotStar, "/": csym.OpSlash, "/=": csym.OpSlashEq, "::": csym.OpColon2,
	"<": csym.OpLess, "<<": csym.OpLess2, "<<=": csym.OpLess2Eq, "<=": csym.OpLessEq,
	"<=>": csym.OpLessEqGreater, "=": csym.OpEq, "==": csym.OpEq2, ">": csym.OpGreater,
	">=": csym.OpGreaterEq, ">>": csym.OpGreater2, ">>=": csym.OpGreater2Eq,
	"?:": csym.OpQmarkColon, "[]": csym.OpBrackets, "^": csym.OpCirc, "^=": csym.OpCircEq,
	"|": csym.OpPipe, "|=": csym.OpPipeEq, "||": csym.OpPipe2, "~": csym.OpTilde,
}

// englishParser builds a declaration tree from the command language's
// English phrase form ("pointer to function (char) returning int"), the
// inverse of internal/english.Render. Unlike the raw C-declarator form,
// English phrases spell out nesting explicitly, so the parser never needs
// the depth-comparison composition algebra (AddArray/AddFunction) to
// resolve ambiguity — it simply recurses in the order the words appear,
// linking each child with SetParent.
type englishParser struct {
	a    *decl.Arena
	sess *session.Session
	s    *stream
}

// parsePhrase parses one declaration phrase, consuming tokens up to end
// of input or a separator the caller handles (comma, end of line).
func (p *englishParser) parsePhrase() (*decl.Node, error) {
	pos := p.currentPos()
	var storage csym.TypeID
	for {
		t, ok := p.s.peek()
		if !ok {
			break
		}
		if p.s.is(pureVirtualWord) {
			p.s.next()
			if err := p.s.expect("virtual"); err != nil {
				return nil, err
			}
			storage |= csym.TPureVirtual
			continue
		}
		if bit, ok := storageWords[lower(t.Text)]; ok {
			p.s.next()
			storage |= bit
			continue
		}
		break
	}

	n, err := p.parseKind(pos)
	if err != nil {
		return nil, err
	}
	n.Type = n.Type.Union(storage)
	return n, nil
}

func (p *englishParser) currentPos() decl.Pos {
	if t, ok := p.s.peek(); ok {
		return t.Pos
	}
	return decl.Pos{}
}

func (p *englishParser) parseKind(pos decl.Pos) (*decl.Node, error) {
	var qual csym.TypeID
	for {
		t, ok := p.s.peek()
		if !ok {
			break
		}
		if bit, ok := qualifierWords[lower(t.Text)]; ok {
			p.s.next()
			qual |= bit
			continue
		}
		break
	}

	switch {
	case p.s.accept("pointer"):
		if err := p.s.expect("to"); err != nil {
			return nil, err
		}
		if p.s.is("member") {
			return p.parsePointerToMember(pos, qual)
		}
		n := p.a.NewPointer(decl.Position{Start: pos}, 0, qual)
		child, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		decl.SetParent(child, n)
		return n, nil

	case p.s.accept("rvalue"):
		if err := p.s.expect("reference"); err != nil {
			return nil, err
		}
		if err := p.s.expect("to"); err != nil {
			return nil, err
		}
		n := p.a.NewRValueReference(decl.Position{Start: pos}, 0, qual)
		child, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		decl.SetParent(child, n)
		return n, nil

	case p.s.accept("reference"):
		if err := p.s.expect("to"); err != nil {
			return nil, err
		}
		n := p.a.NewReference(decl.Position{Start: pos}, 0, qual)
		child, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		decl.SetParent(child, n)
		return n, nil

	case p.s.accept("array"):
		size := decl.ArraySize{Kind: decl.ArraySizeUnspecified}
		if p.s.accept("variable") {
			if err := p.s.expect("length"); err != nil {
				return nil, err
			}
			size = decl.ArraySize{Kind: decl.ArraySizeVariable}
		} else if t, ok := p.s.peek(); ok && t.Int {
			p.s.next()
			size = decl.ArraySize{Kind: decl.ArraySizeInt, Value: parseInt(t)}
		}
		if err := p.s.expect("of"); err != nil {
			return nil, err
		}
		n := p.a.NewArray(decl.Position{Start: pos}, 0, size)
		child, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		decl.SetParent(child, n)
		return n, nil

	case p.s.accept("function"), p.s.accept("member"), p.s.accept("non-member"):
		flags := decl.FuncUnspecified
		p.s.pos-- // re-examine the word consumed by the accept() chain above
		flags = p.acceptMemberFlags()
		var refQual csym.TypeID
		if p.s.accept("lvalue") {
			refQual = csym.TRefQualLValue
		} else if p.s.accept("rvalue") {
			refQual = csym.TRefQualRValue
		}
		if err := p.s.expect("function"); err != nil {
			return nil, err
		}
		params, err := p.parseParamList()
		if err != nil {
			return nil, err
		}
		n := p.a.NewFunction(decl.Position{Start: pos}, 0, params, flags)
		n.Type = n.Type.Union(qual).Union(refQual)
		if err := p.s.expect("returning"); err != nil {
			return nil, err
		}
		ret, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		decl.SetParent(ret, n)
		return n, nil

	case p.s.accept("block"):
		params, err := p.parseParamList()
		if err != nil {
			return nil, err
		}
		n := p.a.NewBlock(decl.Position{Start: pos}, 0, params)
		if err := p.s.expect("returning"); err != nil {
			return nil, err
		}
		ret, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		decl.SetParent(ret, n)
		return n, nil

	case p.s.accept("constructor"):
		params, err := p.parseParamList()
		if err != nil {
			return nil, err
		}
		return p.a.NewConstructor(decl.Position{Start: pos}, 0, params), nil

	case p.s.accept("destructor"):
		return p.a.NewDestructor(decl.Position{Start: pos}, 0), nil

	case p.s.accept("operator"):
		flags := p.acceptMemberFlagsSuffix()
		t, ok := p.s.next()
		if !ok {
			return nil, &SyntaxError{Pos: pos, Message: "missing operator token"}
		}
		id, ok := operatorByToken[t.Text]
		if !ok {
			return nil, &SyntaxError{Pos: t.Pos, Message: "unknown operator " + t.Text}
		}
		params, err := p.parseParamList()
		if err != nil {
			return nil, err
		}
		n := p.a.NewOperator(decl.Position{Start: pos}, 0, id, params)
		n.FuncFlags = flags
		if err := p.s.expect("returning"); err != nil {
			return nil, err
		}
		ret, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		decl.SetParent(ret, n)
		return n, nil

	case p.s.accept("class"), p.s.accept("struct"), p.s.accept("union"), p.s.accept("enum"):
		p.s.pos--
		scope := p.acceptTagScope()
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		return p.a.NewEnumClassStructUnion(decl.Position{Start: pos}, 0, csym.TNone, sname.NewScoped(name, scope)), nil

	default:
		t, ok := p.s.peek()
		if !ok {
			return nil, &SyntaxError{Pos: pos, Message: "expected a type or declarator phrase"}
		}
		if _, ok := baseTypeWords[lower(t.Text)]; ok {
			var bits csym.TypeID
			for {
				t2, ok := p.s.peek()
				if !ok {
					break
				}
				b, ok := baseTypeWords[lower(t2.Text)]
				if !ok {
					break
				}
				if b == csym.TLong && bits.Has(csym.TLong) {
					bits = bits.Diff(csym.TLong).Union(csym.TLongLong)
				} else {
					bits |= b
				}
				p.s.next()
			}
			n := p.a.NewBuiltin(decl.Position{Start: pos}, 0, bits)
			n.Type = n.Type.Union(qual)
			return n, nil
		}
		if td := p.sess.Typedefs.Lookup(sname.New(t.Text)); td != nil {
			p.s.next()
			// The node's own Name stays empty; the registry entry carries
			// the typedef's name, and patching may later move the declared
			// name here.
			n := p.a.NewTypedef(decl.Position{Start: pos}, 0, sname.Name{}, td)
			n.Type = n.Type.Union(qual)
			return n, nil
		}
		return nil, &SyntaxError{Pos: t.Pos, Message: "unknown type " + t.Text}
	}
}

func (p *englishParser) acceptMemberFlags() decl.FuncFlags {
	switch {
	case p.s.accept("member"):
		return decl.FuncMember
	case p.s.accept("non-member"):
		return decl.FuncNonMember
	default:
		return decl.FuncUnspecified
	}
}

func (p *englishParser) acceptMemberFlagsSuffix() decl.FuncFlags {
	return p.acceptMemberFlags()
}

func (p *englishParser) acceptTagScope() sname.ScopeKind {
	switch {
	case p.s.accept("class"):
		return sname.ScopeClass
	case p.s.accept("struct"):
		return sname.ScopeStruct
	case p.s.accept("union"):
		return sname.ScopeUnion
	default:
		return sname.ScopeNone
	}
}

func (p *englishParser) parsePointerToMember(pos decl.Pos, qual csym.TypeID) (*decl.Node, error) {
	if err := p.s.expect("member"); err != nil {
		return nil, err
	}
	if err := p.s.expect("of"); err != nil {
		return nil, err
	}
	if err := p.s.expect("class"); err != nil {
		return nil, err
	}
	class, err := p.parseName()
	if err != nil {
		return nil, err
	}
	n := p.a.NewPointerToMember(decl.Position{Start: pos}, 0, qual, sname.New(class))
	child, err := p.parsePhrase()
	if err != nil {
		return nil, err
	}
	decl.SetParent(child, n)
	return n, nil
}

func (p *englishParser) parseName() (string, error) {
	t, ok := p.s.next()
	if !ok {
		return "", &SyntaxError{Message: "expected a name"}
	}
	return t.Text, nil
}

// parseParamList parses "(" [ param { "," param } ] ")", where each param
// is "NAME as PHRASE" or an anonymous PHRASE, or "...". The whole list is
// optional: "function returning void" means no parameters were described.
func (p *englishParser) parseParamList() ([]*decl.Node, error) {
	if !p.s.is("(") {
		return nil, nil
	}
	if err := p.s.expect("("); err != nil {
		return nil, err
	}
	var params []*decl.Node
	if p.s.accept(")") {
		return params, nil
	}
	for {
		if p.s.accept("...") {
			params = append(params, p.a.NewVariadic(decl.Position{}, 0))
		} else {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
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

func (p *englishParser) parseParam() (*decl.Node, error) {
	// "NAME as PHRASE" is only unambiguous when the word after NAME is
	// literally "as"; otherwise the whole thing is an anonymous phrase.
	if t, ok := p.s.peek(); ok && !isKeyword(t.Text) {
		save := p.s.pos
		p.s.next()
		if p.s.accept("as") {
			n, err := p.parsePhrase()
			if err != nil {
				return nil, err
			}
			n.Name = sname.New(t.Text)
			return n, nil
		}
		p.s.pos = save
	}
	return p.parsePhrase()
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isKeyword(s string) bool {
	l := lower(s)
	if _, ok := storageWords[l]; ok {
		return true
	}
	if _, ok := qualifierWords[l]; ok {
		return true
	}
	if _, ok := baseTypeWords[l]; ok {
		return true
	}
	switch l {
	case "pointer", "reference", "rvalue", "array", "function", "member", "non-member",
		"block", "constructor", "destructor", "operator", "class", "struct", "union", "enum",
		"variable", "of", "to", "returning", "as":
		return true
	}
	return false
}

