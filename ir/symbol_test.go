/*
 * Copyright 2023 VeloJIT Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ir

import (
    `testing`

    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`
)

func TestSymbol_Equals(t *testing.T) {
    a := &Symbol { Kind: SYM_RELATIVE, ValueLow: 4 }
    b := &Symbol { Kind: SYM_RELATIVE, ValueLow: 4 }
    c := &Symbol { Kind: SYM_RELATIVE, ValueLow: 4, ValueHigh: 1 }
    require.True (t, a.Equals(b))
    require.False(t, a.Equals(c))
    require.False(t, a.Equals(nil))
    require.False(t, a.Equals(&Symbol { Kind: SYM_TEMPORARY, ValueLow: 4 }))
}

func TestSymbol_Classes(t *testing.T) {
    allocatable := []SymbolKind {
        SYM_RELATIVE,
        SYM_TEMPORARY,
        SYM_REL_REFERENCE,
        SYM_TMP_REFERENCE,
        SYM_FP_RELATIVE32,
        SYM_FP_TEMPORARY32,
        SYM_RELATIVE128,
        SYM_TEMPORARY128,
    }
    registers := []SymbolKind {
        SYM_REGISTER,
        SYM_REGISTER128,
        SYM_REG_REFERENCE,
        SYM_FP_REGISTER32,
    }
    for _, k := range allocatable {
        sym := &Symbol { Kind: k }
        assert.True (t, sym.IsAllocatable(), k.String())
        assert.False(t, sym.IsRegister(), k.String())
    }
    for _, k := range registers {
        sym := &Symbol { Kind: k }
        assert.False(t, sym.IsAllocatable(), k.String())
        assert.True (t, sym.IsRegister(), k.String())
    }
    assert.False(t, (&Symbol { Kind: SYM_CONSTANT }).IsAllocatable())
    assert.False(t, (&Symbol { Kind: SYM_CONSTANT }).IsRegister())
}

func TestSymbol_Temporaries(t *testing.T) {
    assert.True (t, (&Symbol { Kind: SYM_TEMPORARY      }).IsTemporary())
    assert.True (t, (&Symbol { Kind: SYM_TMP_REFERENCE  }).IsTemporary())
    assert.True (t, (&Symbol { Kind: SYM_TEMPORARY128   }).IsTemporary())
    assert.True (t, (&Symbol { Kind: SYM_FP_TEMPORARY32 }).IsTemporary())
    assert.False(t, (&Symbol { Kind: SYM_RELATIVE       }).IsTemporary())
    assert.False(t, (&Symbol { Kind: SYM_REGISTER       }).IsTemporary())
}

func TestSymbol_Aliases(t *testing.T) {
    rel0    := &Symbol { Kind: SYM_RELATIVE, ValueLow: 0 }
    rel4    := &Symbol { Kind: SYM_RELATIVE, ValueLow: 4 }
    rel16   := &Symbol { Kind: SYM_RELATIVE, ValueLow: 16 }
    rel128  := &Symbol { Kind: SYM_RELATIVE128, ValueLow: 0 }
    frel12  := &Symbol { Kind: SYM_FP_RELATIVE32, ValueLow: 12 }
    relref2 := &Symbol { Kind: SYM_REL_REFERENCE, ValueLow: 2 }
    tmp0    := &Symbol { Kind: SYM_TEMPORARY, ValueLow: 0 }
    reg0    := &Symbol { Kind: SYM_REGISTER, ValueLow: 0 }

    /* a wide slot covers every narrower slot inside it */
    require.True(t, rel128.Aliases(rel0))
    require.True(t, rel0.Aliases(rel128))
    require.True(t, rel128.Aliases(rel4))
    require.True(t, rel128.Aliases(frel12))
    require.True(t, relref2.Aliases(rel0))
    require.True(t, relref2.Aliases(rel4))

    /* disjoint ranges do not alias */
    require.False(t, rel0.Aliases(rel4))
    require.False(t, rel128.Aliases(rel16))
    require.False(t, rel16.Aliases(rel128))

    /* a symbol never aliases itself or an equal descriptor */
    require.False(t, rel0.Aliases(rel0))
    require.False(t, rel0.Aliases(&Symbol { Kind: SYM_RELATIVE, ValueLow: 0 }))

    /* kinds without addressable storage never alias */
    require.False(t, tmp0.Aliases(rel0))
    require.False(t, rel0.Aliases(tmp0))
    require.False(t, reg0.Aliases(rel0))
}

func TestSymbol_AliasesSymmetric(t *testing.T) {
    syms := []*Symbol {
        { Kind: SYM_RELATIVE, ValueLow: 0 },
        { Kind: SYM_RELATIVE, ValueLow: 8 },
        { Kind: SYM_RELATIVE128, ValueLow: 0 },
        { Kind: SYM_REL_REFERENCE, ValueLow: 4 },
        { Kind: SYM_FP_RELATIVE32, ValueLow: 12 },
        { Kind: SYM_TEMPORARY, ValueLow: 0 },
    }
    for _, a := range syms {
        for _, b := range syms {
            require.Equal(t, a.Aliases(b), b.Aliases(a), "%v / %v", a, b)
        }
    }
}
