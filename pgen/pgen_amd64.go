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

package pgen

import (
    `github.com/chenzhuoyu/iasm/x86_64`
    `github.com/klauspost/cpuid/v2`
)

var ArchRegs = [...]x86_64.Register64 {
    x86_64.RAX,
    x86_64.RCX,
    x86_64.RDX,
    x86_64.RBX,
    x86_64.RSP,
    x86_64.RBP,
    x86_64.RSI,
    x86_64.RDI,
    x86_64.R8,
    x86_64.R9,
    x86_64.R10,
    x86_64.R11,
    x86_64.R12,
    x86_64.R13,
    x86_64.R14,
    x86_64.R15,
}

// ArchRegReserved marks registers the generated code can never hand
// to the allocator: the stack pointer and the context base pointer.
var ArchRegReserved = map[x86_64.Register64]bool {
    x86_64.RSP: true,
    x86_64.RBP: true,
}

const (
    _GpScratch = 2      // codegen keeps two GP scratch registers
    _MdScratch = 1      // and one vector scratch register
)

// HostCodeGen sizes the register pools from the host register file:
// the architectural GP registers minus reserved and scratch ones, and
// the XMM file (32 names with AVX-512, 16 otherwise) minus scratch.
type HostCodeGen struct{}

func (HostCodeGen) AvailableRegisterCount() uint32 {
    n := uint32(0)
    for _, r := range ArchRegs {
        if !ArchRegReserved[r] {
            n++
        }
    }
    return n - _GpScratch
}

func (HostCodeGen) AvailableMdRegisterCount() uint32 {
    if cpuid.CPU.Supports(cpuid.AVX512F) {
        return 32 - _MdScratch
    } else {
        return 16 - _MdScratch
    }
}
