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

package decl

import "fmt"

// Pos represents a single source-code position: a byte offset plus the
// 1-based row and 1-based column it falls on. Modeled after
// internal/ast.Pos in the teacher repository this module was built from.
type Pos struct {
	Byte   uint32
	Row    uint32
	Column uint32
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// Position is a start/end span of source code, e.g. the full extent of a
// single declarator token.
type Position struct {
	Start Pos
	End   Pos
}
