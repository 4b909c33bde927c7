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

package csym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cdecl-go/cdecl/internal/csym"
)

func TestSetAlgebra(t *testing.T) {
	a := csym.New(csym.TStatic, csym.TInt)
	b := csym.New(csym.TConst, csym.TInt)

	assert.True(t, a.Has(csym.TStatic))
	assert.False(t, a.Has(csym.TConst))
	assert.True(t, a.HasAny(b), "shared int bit")

	u := a.Union(b)
	assert.True(t, u.Has(csym.New(csym.TStatic, csym.TConst, csym.TInt)))

	assert.Equal(t, csym.New(csym.TInt), a.Intersect(b))
	assert.Equal(t, csym.New(csym.TStatic), a.Diff(b))
	assert.True(t, csym.TNone.IsNone())
	assert.False(t, a.IsNone())
}

func TestStorageExtraction(t *testing.T) {
	full := csym.New(csym.TStatic, csym.TInline, csym.TConst, csym.TUnsigned, csym.TInt)

	storage := full.Storage()
	assert.True(t, storage.Has(csym.TStatic))
	assert.True(t, storage.Has(csym.TInline))
	assert.False(t, storage.HasAny(csym.TConst), "qualifiers are not storage")
	assert.False(t, storage.HasAny(csym.TInt))

	rest := full.ClearStorage()
	assert.False(t, rest.HasAny(csym.TStatic))
	assert.True(t, rest.Has(csym.TConst))
	assert.True(t, rest.Has(csym.TUnsigned))
}

// TestStringOrder: rendering order is fixed as storage, qualifiers, base
// type, which both renderers rely on.
func TestStringOrder(t *testing.T) {
	assert.Equal(t, "static const unsigned int",
		csym.New(csym.TStatic, csym.TConst, csym.TUnsigned, csym.TInt).String())
	assert.Equal(t, "long long", csym.New(csym.TLongLong).String())
	assert.Equal(t, "", csym.TNone.String())
}

func TestCategoryMasksAreDisjoint(t *testing.T) {
	assert.True(t, (csym.MaskStorage & csym.MaskQualifier).IsNone())
	assert.True(t, (csym.MaskStorage & csym.MaskBase).IsNone())
	assert.True(t, (csym.MaskQualifier & csym.MaskBase).IsNone())
	assert.True(t, (csym.MaskAttribute & csym.MaskStorage).IsNone())
	assert.True(t, (csym.MaskRefQualifier & csym.MaskQualifier).IsNone())
}
