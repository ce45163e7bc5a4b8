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

package regalloc

import (
    `fmt`

    `github.com/velojit/velo/ir`
)

// NoIndex is the "never seen" sentinel for statement indices and the
// "unassigned" sentinel for register ids.
const NoIndex = -1

// SymbolRegAlloc tracks one symbol over one allocation range: how hot
// it is, where it is read and written, whether its storage collides
// with another operand, and which register it ended up in.
type SymbolRegAlloc struct {
    UseCount     uint32
    FirstUse     int
    FirstDef     int
    LastUse      int
    LastDef      int
    Aliased      bool
    RegisterType ir.SymbolKind
    RegisterId   int
}

func (self *SymbolRegAlloc) String() string {
    return fmt.Sprintf(
        "{uses=%d use=[%d,%d] def=[%d,%d] aliased=%v reg=(%v,%d)}",
        self.UseCount,
        self.FirstUse,
        self.LastUse,
        self.FirstDef,
        self.LastDef,
        self.Aliased,
        self.RegisterType,
        self.RegisterId,
    )
}

// _SymbolAllocs is the per-range symbol tracking table. Records are
// created lazily on first observation; the observation order is kept
// so every downstream pass iterates deterministically.
type _SymbolAllocs struct {
    order []*ir.Symbol
    table map[*ir.Symbol]*SymbolRegAlloc
}

func newSymbolAllocs() *_SymbolAllocs {
    return &_SymbolAllocs {
        table: make(map[*ir.Symbol]*SymbolRegAlloc, 16),
    }
}

func (self *_SymbolAllocs) at(sym *ir.Symbol) *SymbolRegAlloc {
    if v, ok := self.table[sym]; ok {
        return v
    }
    v := &SymbolRegAlloc {
        FirstUse     : NoIndex,
        FirstDef     : NoIndex,
        LastUse      : NoIndex,
        LastDef      : NoIndex,
        RegisterType : ir.SYM_REGISTER,
        RegisterId   : NoIndex,
    }
    self.order = append(self.order, sym)
    self.table[sym] = v
    return v
}

func (self *_SymbolAllocs) find(sym *ir.Symbol) *SymbolRegAlloc {
    return self.table[sym]
}

func (self *_SymbolAllocs) forEach(action func(sym *ir.Symbol, alloc *SymbolRegAlloc)) {
    for _, sym := range self.order {
        action(sym, self.table[sym])
    }
}

// snapshot re-keys the table by the symbols' printable form, for
// debug dumps only.
func (self *_SymbolAllocs) snapshot() map[string]*SymbolRegAlloc {
    m := make(map[string]*SymbolRegAlloc, len(self.order))
    for _, sym := range self.order {
        m[sym.String()] = self.table[sym]
    }
    return m
}

// computeLivenessForRange records first/last use and def positions
// plus total operand occurrences for every symbol the range touches.
// A symbol appearing as both destination and source of one statement
// counts twice.
func computeLivenessForRange(bb *ir.BasicBlock, rng AllocationRange, allocs *_SymbolAllocs) {
    for i := rng.First; i <= rng.Last; i++ {
        st := &bb.Statements[i]
        idx := i

        st.VisitDestination(func(ref *ir.SymbolRef, _ bool) {
            alloc := allocs.at(ref.Symbol)
            alloc.UseCount++
            if alloc.FirstDef == NoIndex {
                alloc.FirstDef = idx
            }
            if alloc.LastDef == NoIndex || idx > alloc.LastDef {
                alloc.LastDef = idx
            }
        })

        st.VisitSources(func(ref *ir.SymbolRef, _ bool) {
            alloc := allocs.at(ref.Symbol)
            alloc.UseCount++
            if alloc.FirstUse == NoIndex {
                alloc.FirstUse = idx
            }
            if alloc.LastUse == NoIndex || idx > alloc.LastUse {
                alloc.LastUse = idx
            }
        })
    }
}
