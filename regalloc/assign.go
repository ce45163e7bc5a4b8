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
    `sort`

    `github.com/oleiade/lane`
    `github.com/velojit/velo/ir`
)

type _Candidate struct {
    sym   *ir.Symbol
    alloc *SymbolRegAlloc
}

func newRegisterPool(count uint32) *lane.Stack {
    p := lane.NewStack()
    for i := uint32(0); i < count; i++ {
        p.Push(i)
    }
    return p
}

// associateSymbolsToRegisters hands out physical registers greedily,
// hottest symbol first. GP and MD registers form separate pools, a
// candidate's kind picks both the pool and the register kind it turns
// into. Once a pool runs dry the remaining candidates of that class
// simply stay memory-resident.
func associateSymbolsToRegisters(cg CodeGen, allocs *_SymbolAllocs) {
    availableGpRegisters := newRegisterPool(cg.AvailableRegisterCount())
    availableMdRegisters := newRegisterPool(cg.AvailableMdRegisterCount())

    /* collect the allocatable, non-aliased symbols */
    candidates := make([]_Candidate, 0, len(allocs.order))
    allocs.forEach(func(sym *ir.Symbol, alloc *SymbolRegAlloc) {
        if sym.IsAllocatable() && !alloc.Aliased {
            candidates = append(candidates, _Candidate { sym, alloc })
        }
    })

    /* rank by heat, ties by kind then offset, all descending; the
     * stable sort keeps the remaining order at first observation */
    sort.SliceStable(candidates, func(i int, j int) bool {
        s1, a1 := candidates[i].sym, candidates[i].alloc
        s2, a2 := candidates[j].sym, candidates[j].alloc
        if a1.UseCount != a2.UseCount {
            return a1.UseCount > a2.UseCount
        }
        if s1.Kind != s2.Kind {
            return s1.Kind > s2.Kind
        }
        return s1.ValueLow > s2.ValueLow
    })

    for _, c := range candidates {
        var pool *lane.Stack
        var kind ir.SymbolKind

        /* pick the pool and the physical register kind */
        switch c.sym.Kind {
            case ir.SYM_RELATIVE, ir.SYM_TEMPORARY:
                pool, kind = availableGpRegisters, ir.SYM_REGISTER
            case ir.SYM_REL_REFERENCE, ir.SYM_TMP_REFERENCE:
                pool, kind = availableGpRegisters, ir.SYM_REG_REFERENCE
            case ir.SYM_FP_RELATIVE32, ir.SYM_FP_TEMPORARY32:
                pool, kind = availableMdRegisters, ir.SYM_FP_REGISTER32
            case ir.SYM_RELATIVE128, ir.SYM_TEMPORARY128:
                pool, kind = availableMdRegisters, ir.SYM_REGISTER128
        }

        if pool != nil && !pool.Empty() {
            c.alloc.RegisterType = kind
            c.alloc.RegisterId = int(pool.Pop().(uint32))
        }
    }
}
