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

import "github.com/cdecl-go/cdecl/internal/csym"

// overload says which of member/non-member form(s) an operator may be
// declared as.
type overload int

const (
	overloadUnspecified overload = iota // either form is legal
	overloadMemberOnly
	overloadNonMemberOnly
	overloadNotOverloadable
)

// argsUnlimited marks operator() as accepting any number of parameters.
const argsUnlimited = -1

// opInfo is the per-operator legality data cdecl's checker consults:
// whether it's overloadable at all, in which form(s), and the inclusive
// [min,max] parameter-count range across both forms combined. Ported from
// the table implied by original_source/src/c_operator.h's c_operator
// struct and its op_is_ambiguous documentation; the header documents the
// shape of the table but not its literal values (c_operator.c is not
// among the retrieved sources), so the argument counts below are derived
// directly from the C++ standard's overloaded-operator rules referenced
// in that header's comments.
type opInfo struct {
	overload overload
	argsMin  int
	argsMax  int
}

var opTable = map[csym.OperatorID]opInfo{
	csym.OpNone:          {overloadNotOverloadable, 0, 0},
	csym.OpExclam:        {overloadUnspecified, 0, 1},
	csym.OpExclamEq:      {overloadUnspecified, 1, 2},
	csym.OpPercent:       {overloadUnspecified, 1, 2},
	csym.OpPercentEq:     {overloadUnspecified, 1, 2},
	csym.OpAmper:         {overloadUnspecified, 0, 2}, // ambiguous: unary & vs binary &
	csym.OpAmper2:        {overloadUnspecified, 1, 2},
	csym.OpAmperEq:       {overloadUnspecified, 1, 2},
	csym.OpParens:        {overloadMemberOnly, 0, argsUnlimited},
	csym.OpStar:          {overloadUnspecified, 0, 2}, // ambiguous: unary * vs binary *
	csym.OpStarEq:        {overloadUnspecified, 1, 2},
	csym.OpPlus:          {overloadUnspecified, 0, 2}, // ambiguous: unary + vs binary +
	csym.OpPlus2:         {overloadUnspecified, 0, 2}, // ambiguous: prefix vs postfix
	csym.OpPlusEq:        {overloadUnspecified, 1, 2},
	csym.OpComma:         {overloadUnspecified, 1, 2},
	csym.OpMinus:         {overloadUnspecified, 0, 2}, // ambiguous: unary - vs binary -
	csym.OpMinus2:        {overloadUnspecified, 0, 2}, // ambiguous: prefix vs postfix
	csym.OpMinusEq:       {overloadUnspecified, 1, 2},
	csym.OpArrow:         {overloadMemberOnly, 0, 0},
	csym.OpArrowStar:     {overloadUnspecified, 1, 2},
	csym.OpDot:           {overloadNotOverloadable, 0, 0},
	csym.OpDotStar:       {overloadNotOverloadable, 0, 0},
	csym.OpSlash:         {overloadUnspecified, 1, 2},
	csym.OpSlashEq:       {overloadUnspecified, 1, 2},
	csym.OpColon2:        {overloadNotOverloadable, 0, 0},
	csym.OpLess:          {overloadUnspecified, 1, 2},
	csym.OpLess2:         {overloadUnspecified, 1, 2},
	csym.OpLess2Eq:       {overloadUnspecified, 1, 2},
	csym.OpLessEq:        {overloadUnspecified, 1, 2},
	csym.OpLessEqGreater: {overloadUnspecified, 1, 2},
	csym.OpEq:            {overloadMemberOnly, 1, 1},
	csym.OpEq2:           {overloadUnspecified, 1, 2},
	csym.OpGreater:       {overloadUnspecified, 1, 2},
	csym.OpGreaterEq:     {overloadUnspecified, 1, 2},
	csym.OpGreater2:      {overloadUnspecified, 1, 2},
	csym.OpGreater2Eq:    {overloadUnspecified, 1, 2},
	csym.OpQmarkColon:    {overloadNotOverloadable, 0, 0},
	csym.OpBrackets:      {overloadMemberOnly, 1, 1},
	csym.OpCirc:          {overloadUnspecified, 1, 2},
	csym.OpCircEq:        {overloadUnspecified, 1, 2},
	csym.OpPipe:          {overloadUnspecified, 1, 2},
	csym.OpPipeEq:        {overloadUnspecified, 1, 2},
	csym.OpPipe2:         {overloadUnspecified, 1, 2},
	csym.OpTilde:         {overloadUnspecified, 0, 1},
}

// opIsAmbiguous reports whether op's argument-count range spans both the
// member (0) and non-member (2) forms of a unary/binary operator, meaning
// cdecl cannot tell which form was meant from argument count alone.
// Mirrors op_is_ambiguous in original_source/src/c_operator.h.
func opIsAmbiguous(info opInfo) bool {
	return info.argsMin == 0 && info.argsMax == 2
}

// lookupOperator returns id's legality info, defaulting to "not
// overloadable" for an unrecognized id (OpNone always lands here too).
func lookupOperator(id csym.OperatorID) opInfo {
	if info, ok := opTable[id]; ok {
		return info
	}
	return opInfo{overload: overloadNotOverloadable}
}
