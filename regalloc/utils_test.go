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
    `github.com/brianvoe/gofakeit/v6`
    `github.com/velojit/velo/ir`
)

func sref(kind ir.SymbolKind, lo uint32) *ir.SymbolRef {
    return ir.NewSymbolRef(&ir.Symbol { Kind: kind, ValueLow: lo })
}

func rel(off uint32) *ir.SymbolRef    { return sref(ir.SYM_RELATIVE, off) }
func tmp(id uint32) *ir.SymbolRef     { return sref(ir.SYM_TEMPORARY, id) }
func rel128(off uint32) *ir.SymbolRef { return sref(ir.SYM_RELATIVE128, off) }

func mov(dst *ir.SymbolRef, src *ir.SymbolRef) ir.Statement {
    return ir.Statement { Op: ir.OP_MOV, Dst: dst, Src1: src }
}

func binop(op ir.OpCode, dst *ir.SymbolRef, src1 *ir.SymbolRef, src2 *ir.SymbolRef) ir.Statement {
    return ir.Statement { Op: op, Dst: dst, Src1: src1, Src2: src2 }
}

func block(sts ...ir.Statement) *ir.BasicBlock {
    bb := ir.NewBasicBlock()
    for _, st := range sts {
        bb.Append(st)
    }
    return bb
}

// randomBlock builds a reproducible pseudo-random block: moves and
// arithmetic over a small symbol universe, sprinkled with calls,
// branches and return-value slots.
func randomBlock(seed int64, size int) *ir.BasicBlock {
    /* gofakeit treats seed 0 as "draw a random seed", shift it away */
    f := gofakeit.New(seed + 1)
    bb := ir.NewBasicBlock()

    for i := 0; i < size; i++ {
        switch f.Number(0, 7) {
            case 0:
                bb.Append(mov(tmp(uint32(f.Number(0, 3))), rel(uint32(f.Number(0, 7)) * 4)))
            case 1:
                bb.Append(mov(rel(uint32(f.Number(0, 7)) * 4), tmp(uint32(f.Number(0, 3)))))
            case 2:
                bb.Append(binop(ir.OP_ADD, tmp(uint32(f.Number(0, 3))), tmp(uint32(f.Number(0, 3))), rel(uint32(f.Number(0, 7)) * 4)))
            case 3:
                bb.Append(binop(ir.OP_XOR, rel(uint32(f.Number(0, 7)) * 4), rel(uint32(f.Number(0, 7)) * 4), tmp(uint32(f.Number(0, 3)))))
            case 4:
                bb.Append(mov(rel128(uint32(f.Number(0, 1)) * 16), rel128(16)))
            case 5:
                bb.Append(ir.Statement { Op: ir.OP_PARAM, Src1: rel(uint32(f.Number(0, 7)) * 4) })
            case 6:
                bb.Append(ir.Statement { Op: ir.OP_PARAM_RET, Src1: tmp(uint32(f.Number(0, 3))) })
            case 7:
                bb.Append(ir.Statement { Op: ir.OP_CALL })
        }
    }

    /* blocks end with a branch half of the time */
    if f.Bool() {
        bb.Append(ir.Statement { Op: ir.OP_CONDJMP, Src1: tmp(0), Src2: rel(0) })
    }
    return bb
}
