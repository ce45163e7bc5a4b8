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

// AllocationRange is an inclusive pair of statement indices. Ranges
// partition the block, every OP_CALL closes the range it sits in.
type AllocationRange struct {
    First int
    Last  int
}

func (self AllocationRange) String() string {
    return fmt.Sprintf("[%d, %d]", self.First, self.Last)
}

// ComputeAllocationRanges splits the block at call boundaries.
// Allocation works per range because a callee may observe or mutate
// any memory-backed operand, so register copies cannot outlive a
// call. An empty block yields no ranges.
func ComputeAllocationRanges(bb *ir.BasicBlock) []AllocationRange {
    n := len(bb.Statements)
    if n == 0 {
        return nil
    }

    /* split after every call */
    start := 0
    ret := make([]AllocationRange, 0, n / 2 + 1)
    for i := 0; i < n; i++ {
        if bb.Statements[i].Op.IsCall() {
            ret = append(ret, AllocationRange { First: start, Last: i })
            start = i + 1
        }
    }

    /* the final range closes at the last statement, unless a call
     * already closed the block */
    if start < n {
        ret = append(ret, AllocationRange { First: start, Last: n - 1 })
    }
    return ret
}
