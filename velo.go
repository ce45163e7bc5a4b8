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

package velo

import (
    `github.com/velojit/velo/ir`
    `github.com/velojit/velo/pgen`
    `github.com/velojit/velo/regalloc`
)

// AllocateRegisters binds the hottest memory-backed symbols of bb to
// physical registers and inserts the load and spill moves that keep
// both copies coherent. The block is mutated in place.
func AllocateRegisters(bb *ir.BasicBlock, cg regalloc.CodeGen) {
    regalloc.RegAlloc { CodeGen: cg }.Apply(bb)
}

// HostCodeGen returns the register-count provider for the host
// architecture.
func HostCodeGen() regalloc.CodeGen {
    return pgen.HostCodeGen{}
}
