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
    `github.com/velojit/velo/ir`
)

// markAliasedSymbols flags every tracked symbol whose storage some
// statement in the range can touch through a different symbol. Such
// a symbol must stay memory-resident: a register copy would go stale
// the moment the overlapping operand is written, and the overlapping
// read would miss the copy's value.
//
// OP_PARAM_RET hands its operand's storage to the callee for the
// return value, which clobbers it behind any register copy.
//
// The scan tests every tracked symbol against every operand of every
// statement. Ranges are short in practice, the quadratic walk is
// intentional.
func markAliasedSymbols(bb *ir.BasicBlock, rng AllocationRange, allocs *_SymbolAllocs) {
    for i := rng.First; i <= rng.Last; i++ {
        st := &bb.Statements[i]

        /* return-value slots are written by the callee */
        if st.Op == ir.OP_PARAM_RET {
            if st.Src1 == nil {
                panic("velo: param_ret without a source operand")
            }
            allocs.at(st.Src1.Symbol).Aliased = true
        }

        /* test every still-clean tracked symbol against this
         * statement's operands */
        allocs.forEach(func(tested *ir.Symbol, alloc *SymbolRegAlloc) {
            if alloc.Aliased {
                return
            }
            st.VisitOperands(func(ref *ir.SymbolRef, _ bool) {
                if sym := ref.Symbol; !sym.Equals(tested) && sym.Aliases(tested) {
                    alloc.Aliased = true
                }
            })
        })
    }
}
