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

package typedefs

import (
	"github.com/cdecl-go/cdecl/internal/csym"
	"github.com/cdecl-go/cdecl/internal/decl"
	"github.com/cdecl-go/cdecl/internal/sname"
)

// seedPredefined populates r with the typedef names cdecl recognizes
// without the user ever having defined them: the fixed-width integer
// types, the handful of size/pointer-difference types, and a couple of
// C++ standard-library names cdecl treats specially in its grammar.
// Building each as a tiny Builtin leaf in a scratch Arena mirrors how a
// real `define` command would populate the registry; the Arena itself is
// never released, since the registry keeps these nodes alive for the life
// of the process.
func seedPredefined(r *Registry) {
	a := decl.NewArena()

	def := func(name string, bits ...csym.TypeID) {
		n := a.NewBuiltin(decl.Position{}, 0, csym.New(bits...))
		n.Name = sname.New(name)
		if err := r.Define(sname.New(name), n); err != nil {
			panic(err)
		}
	}

	def("size_t", csym.TUnsigned, csym.TLong)
	def("ptrdiff_t", csym.TLong)
	def("max_align_t", csym.TLongDouble)
	def("intptr_t", csym.TLong)
	def("uintptr_t", csym.TUnsigned, csym.TLong)
	def("wchar_t", csym.TWcharT)

	def("int8_t", csym.TSigned, csym.TChar)
	def("int16_t", csym.TShort)
	def("int32_t", csym.TInt)
	def("int64_t", csym.TLongLong)
	def("uint8_t", csym.TUnsigned, csym.TChar)
	def("uint16_t", csym.TUnsigned, csym.TShort)
	def("uint32_t", csym.TUnsigned, csym.TInt)
	def("uint64_t", csym.TUnsigned, csym.TLongLong)

	def("__int128", csym.TLongLong)

	def("std::nullptr_t", csym.TVoid)
	def("std::string", csym.TChar)
}
