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
    `fmt`
)

type OpCode uint8

const (
    OP_NOP OpCode = iota    // no operation
    OP_MOV                  // src1 -> dst
    OP_ADD                  // src1 + src2 -> dst
    OP_SUB                  // src1 - src2 -> dst
    OP_AND                  // src1 & src2 -> dst
    OP_OR                   // src1 | src2 -> dst
    OP_XOR                  // src1 ^ src2 -> dst
    OP_CMP                  // cmp(src1, src2) -> dst
    OP_PARAM                // push src1 as call parameter
    OP_PARAM_RET            // push src1 as call return slot
    OP_CALL                 // call function designated by src1
    OP_RETVAL               // call return value -> dst
    OP_JMP                  // unconditional branch
    OP_CONDJMP              // branch if condition(src1, src2)
    OP_EXTERNJMP            // tail-jump out of generated code
    OP_EXTERNJMP_DYN        // computed tail-jump out of generated code
    OP_LABEL                // branch target marker
)

var _OpNames = map[OpCode]string {
    OP_NOP           : "nop",
    OP_MOV           : "mov",
    OP_ADD           : "add",
    OP_SUB           : "sub",
    OP_AND           : "and",
    OP_OR            : "or",
    OP_XOR           : "xor",
    OP_CMP           : "cmp",
    OP_PARAM         : "param",
    OP_PARAM_RET     : "param_ret",
    OP_CALL          : "call",
    OP_RETVAL        : "retval",
    OP_JMP           : "jmp",
    OP_CONDJMP       : "condjmp",
    OP_EXTERNJMP     : "externjmp",
    OP_EXTERNJMP_DYN : "externjmp_dyn",
    OP_LABEL         : "label",
}

func (self OpCode) String() string {
    if v, ok := _OpNames[self]; ok {
        return v
    } else {
        return fmt.Sprintf("op(%d)", uint8(self))
    }
}

// IsCall is true for opcodes that transfer control to a callee and
// come back, which terminates an allocation range.
func (self OpCode) IsCall() bool {
    return self == OP_CALL
}

// IsControlTransfer is true for calls, branches and jumps out of the
// generated code. Spills anchored at such a statement must land
// before it, not after.
func (self OpCode) IsControlTransfer() bool {
    switch self {
        case OP_CALL          : fallthrough
        case OP_JMP           : fallthrough
        case OP_CONDJMP       : fallthrough
        case OP_EXTERNJMP     : fallthrough
        case OP_EXTERNJMP_DYN : return true
        default               : return false
    }
}
