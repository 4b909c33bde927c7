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

// Package csym implements the opaque bit-set algebra over storage classes,
// qualifiers, attributes and base types that a declaration's type is built
// from. The bit layout is private; callers only see named constructors,
// set operations and a canonical rendering.
package csym

import "strings"

// TypeID is a bitwise-or of type bits drawn from any of the categories
// below (storage, attributes, qualifiers, ref-qualifiers, base types). Any
// combination, including conflicting ones (e.g. two different base types),
// can be represented; legality of a given combination is the semantic
// checker's job, not this package's.
type TypeID uint64

// Storage-class and attribute bits. These are the bits c_ast_take_storage
// relocates from a builtin/typedef node to an outermost array or function.
const (
	TNone TypeID = 0

	TAuto TypeID = 1 << iota
	TStatic
	TExtern
	TRegister
	TThreadLocal
	TTypedef
	TInline
	TNoreturn
	TConstExpr
	TVirtual
	TPureVirtual
	TOverride
	TFinal
	TDefault
	TDelete
	TExplicit
	TFriend
	TMutable

	// Qualifiers.
	TConst
	TVolatile
	TRestrict
	TAtomic

	// Ref-qualifiers (member-function only).
	TRefQualLValue
	TRefQualRValue

	// Base types.
	TVoid
	TBool
	TChar
	TChar8T
	TChar16T
	TChar32T
	TWcharT
	TShort
	TInt
	TLong
	TLongLong
	TSigned
	TUnsigned
	TFloat
	TDouble
	TLongDouble
	TAuto_ // "auto" as a deduced type, distinct from TAuto storage class.
)

// Category masks used to test which bits of a TypeID belong to which
// category. A node's type-bit set must only ever contain bits from
// categories valid for its Kind; this package does not enforce that — the
// semantic checker does.
const (
	MaskStorage = TAuto | TStatic | TExtern | TRegister | TThreadLocal |
		TTypedef | TInline | TNoreturn | TConstExpr

	MaskAttribute = TVirtual | TPureVirtual | TOverride | TFinal |
		TDefault | TDelete | TExplicit | TFriend | TMutable

	MaskQualifier = TConst | TVolatile | TRestrict | TAtomic

	MaskRefQualifier = TRefQualLValue | TRefQualRValue

	MaskBase = TVoid | TBool | TChar | TChar8T | TChar16T | TChar32T |
		TWcharT | TShort | TInt | TLong | TLongLong | TSigned |
		TUnsigned | TFloat | TDouble | TLongDouble | TAuto_
)

var names = []struct {
	bit  TypeID
	name string
}{
	{TAuto, "auto"},
	{TStatic, "static"},
	{TExtern, "extern"},
	{TRegister, "register"},
	{TThreadLocal, "thread_local"},
	{TTypedef, "typedef"},
	{TInline, "inline"},
	{TNoreturn, "_Noreturn"},
	{TConstExpr, "constexpr"},
	{TVirtual, "virtual"},
	{TPureVirtual, "pure virtual"},
	{TOverride, "override"},
	{TFinal, "final"},
	{TDefault, "default"},
	{TDelete, "delete"},
	{TExplicit, "explicit"},
	{TFriend, "friend"},
	{TMutable, "mutable"},
	{TConst, "const"},
	{TVolatile, "volatile"},
	{TRestrict, "restrict"},
	{TAtomic, "_Atomic"},
	{TRefQualLValue, "&"},
	{TRefQualRValue, "&&"},
	// Base types render in canonical C order: sign, then length, then the
	// type word itself.
	{TSigned, "signed"},
	{TUnsigned, "unsigned"},
	{TShort, "short"},
	{TLong, "long"},
	{TLongLong, "long long"},
	{TVoid, "void"},
	{TBool, "bool"},
	{TChar, "char"},
	{TChar8T, "char8_t"},
	{TChar16T, "char16_t"},
	{TChar32T, "char32_t"},
	{TWcharT, "wchar_t"},
	{TInt, "int"},
	{TFloat, "float"},
	{TDouble, "double"},
	{TLongDouble, "long double"},
	{TAuto_, "auto"},
}

// New constructs a TypeID from the bitwise-or of the given bits.
func New(bits ...TypeID) TypeID {
	var t TypeID
	for _, b := range bits {
		t |= b
	}
	return t
}

// Union returns the bitwise union (t | other).
func (t TypeID) Union(other TypeID) TypeID { return t | other }

// Intersect returns the bitwise intersection (t & other).
func (t TypeID) Intersect(other TypeID) TypeID { return t & other }

// Diff returns the bits in t that are not in other (t &^ other).
func (t TypeID) Diff(other TypeID) TypeID { return t &^ other }

// Has reports whether t contains every bit of other.
func (t TypeID) Has(other TypeID) bool { return t&other == other }

// HasAny reports whether t shares at least one bit with other.
func (t TypeID) HasAny(other TypeID) bool { return t&other != 0 }

// IsNone reports whether t has no bits set.
func (t TypeID) IsNone() bool { return t == TNone }

// Storage returns just the storage-class and attribute bits of t.
func (t TypeID) Storage() TypeID { return t & (MaskStorage | MaskAttribute) }

// ClearStorage returns t with all storage-class and attribute bits removed.
func (t TypeID) ClearStorage() TypeID { return t &^ (MaskStorage | MaskAttribute) }

// String renders t as a canonical, space-separated sequence of keywords in
// the fixed order: storage, attributes, qualifiers, ref-qualifier, base
// type. This order is what the English and gibberish renderers rely on so
// that "static int" and never "int static" is produced.
func (t TypeID) String() string {
	var words []string
	for _, n := range names {
		if t.Has(n.bit) {
			words = append(words, n.name)
		}
	}
	return strings.Join(words, " ")
}
