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

import "github.com/cdecl-go/cdecl/internal/csym"

// storageWords maps a cdecl command-language keyword to the storage/
// attribute bit it sets, mirroring the reverse of csym.TypeID.String()'s
// own word list.
var storageWords = map[string]csym.TypeID{
	"auto":         csym.TAuto,
	"static":       csym.TStatic,
	"extern":       csym.TExtern,
	"register":     csym.TRegister,
	"thread_local": csym.TThreadLocal,
	"typedef":      csym.TTypedef,
	"inline":       csym.TInline,
	"noreturn":     csym.TNoreturn,
	"constexpr":    csym.TConstExpr,
	"virtual":      csym.TVirtual,
	"override":     csym.TOverride,
	"final":        csym.TFinal,
	"default":      csym.TDefault,
	"delete":       csym.TDelete,
	"explicit":     csym.TExplicit,
	"friend":       csym.TFriend,
	"mutable":      csym.TMutable,
}

var qualifierWords = map[string]csym.TypeID{
	"const":    csym.TConst,
	"volatile": csym.TVolatile,
	"restrict": csym.TRestrict,
	"atomic":   csym.TAtomic,
}

// baseTypeWords maps every single-word base-type spelling to its bit; the
// parsers build "long long" from two consecutive "long" words.
var baseTypeWords = map[string]csym.TypeID{
	"void":      csym.TVoid,
	"bool":      csym.TBool,
	"char":      csym.TChar,
	"char8_t":   csym.TChar8T,
	"char16_t":  csym.TChar16T,
	"char32_t":  csym.TChar32T,
	"wchar_t":   csym.TWcharT,
	"short":     csym.TShort,
	"int":       csym.TInt,
	"long":      csym.TLong,
	"signed":    csym.TSigned,
	"unsigned":  csym.TUnsigned,
	"float":     csym.TFloat,
	"double":    csym.TDouble,
}

// pureVirtualWord is the first word of "pure virtual", which English
// phrases spell as two words.
const pureVirtualWord = "pure"
