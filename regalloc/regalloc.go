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
    `os`

    `github.com/velojit/velo/internal/opts`
    `github.com/velojit/velo/ir`
)

// CodeGen is the slice of the platform code generator the allocator
// consumes: pool sizes for the general purpose and vector register
// classes.
type CodeGen interface {
    AvailableRegisterCount() uint32
    AvailableMdRegisterCount() uint32
}

// RegAlloc binds a block's hottest memory-backed symbols to physical
// registers, one allocation range at a time, and materializes the
// load and spill moves that keep memory and register copies coherent
// at range boundaries.
type RegAlloc struct {
    CodeGen CodeGen
}

// Apply mutates the block in place: operand references to allocated
// symbols are substituted with register references, loads are
// inserted at range entries and spills at range exits.
func (self RegAlloc) Apply(bb *ir.BasicBlock) {
    if opts.DebugRegAlloc {
        ir.DumpStatementList("regalloc input", bb)
    }

    /* load and spill moves staged by original statement index; the
     * per-anchor slices keep generation order */
    loadsAt := make(map[int][]ir.Statement)
    spillsAt := make(map[int][]ir.Statement)

    for _, rng := range ComputeAllocationRanges(bb) {
        isLastRange := rng.Last + 1 == len(bb.Statements)

        allocs := newSymbolAllocs()
        computeLivenessForRange(bb, rng, allocs)
        markAliasedSymbols(bb, rng, allocs)
        associateSymbolsToRegisters(self.CodeGen, allocs)

        if opts.DebugRegAlloc {
            fmt.Fprintf(os.Stderr, "--- range %s allocations ---\n%s", rng, ir.DumpValue(allocs.snapshot()))
        }

        rewriteRange(bb, rng, allocs)
        stageFixups(bb, rng, isLastRange, allocs, loadsAt, spillsAt)
    }

    spliceFixups(bb, loadsAt, spillsAt)

    if opts.DebugRegAlloc {
        ir.DumpStatementList("regalloc output", bb)
    }
}

// rewriteRange substitutes every operand reference to an allocated
// symbol with a reference to its physical register.
func rewriteRange(bb *ir.BasicBlock, rng AllocationRange, allocs *_SymbolAllocs) {
    for i := rng.First; i <= rng.Last; i++ {
        bb.Statements[i].VisitOperandsMut(func(slot **ir.SymbolRef, _ bool) {
            sym := (*slot).Symbol
            if !bb.Symbols.Contains(sym) {
                panic("velo: operand symbol not owned by the block's symbol table")
            }
            if alloc := allocs.find(sym); alloc != nil && alloc.RegisterId != NoIndex {
                *slot = ir.NewSymbolRef(bb.Symbols.MakeSymbol(alloc.RegisterType, uint32(alloc.RegisterId)))
            }
        })
    }
}

// stageFixups decides, per allocated symbol, whether the register
// must be loaded at range entry and spilled back at range exit.
func stageFixups(bb *ir.BasicBlock, rng AllocationRange, isLastRange bool, allocs *_SymbolAllocs, loadsAt map[int][]ir.Statement, spillsAt map[int][]ir.Statement) {
    allocs.forEach(func(sym *ir.Symbol, alloc *SymbolRegAlloc) {
        if alloc.RegisterId == NoIndex {
            return
        }

        reg := bb.Symbols.MakeSymbol(alloc.RegisterType, uint32(alloc.RegisterId))

        /* the register must be loaded when the symbol is read before
         * any definition in the range, including when the range never
         * defines it at all */
        if alloc.FirstUse != NoIndex && (alloc.FirstDef == NoIndex || alloc.FirstUse <= alloc.FirstDef) {
            loadsAt[rng.First] = append(loadsAt[rng.First], ir.Statement {
                Op   : ir.OP_MOV,
                Dst  : ir.NewSymbolRef(reg),
                Src1 : ir.NewSymbolRef(sym),
            })
        }

        /* a defined symbol spills back at range exit; a temporary in
         * the block's final range is dead and keeps its value in the
         * register only */
        deadTemporary := sym.IsTemporary() && isLastRange
        if !deadTemporary && alloc.FirstDef != NoIndex {
            spillsAt[rng.Last] = append(spillsAt[rng.Last], ir.Statement {
                Op   : ir.OP_MOV,
                Dst  : ir.NewSymbolRef(sym),
                Src1 : ir.NewSymbolRef(reg),
            })
        }
    })
}

// spliceFixups rebuilds the statement sequence with the staged moves
// applied against their original-index anchors. Loads land before
// the anchor statement. Spills land after it, unless the anchor is a
// control transfer: the callee or branch target must observe memory
// already updated, so the spill moves in front of it.
func spliceFixups(bb *ir.BasicBlock, loadsAt map[int][]ir.Statement, spillsAt map[int][]ir.Statement) {
    if len(loadsAt) == 0 && len(spillsAt) == 0 {
        return
    }

    extra := 0
    for _, v := range loadsAt {
        extra += len(v)
    }
    for _, v := range spillsAt {
        extra += len(v)
    }

    out := make([]ir.Statement, 0, len(bb.Statements) + extra)
    for i := range bb.Statements {
        st := bb.Statements[i]
        out = append(out, loadsAt[i]...)
        if st.Op.IsControlTransfer() {
            out = append(out, spillsAt[i]...)
            out = append(out, st)
        } else {
            out = append(out, st)
            out = append(out, spillsAt[i]...)
        }
    }
    bb.Statements = out
}
