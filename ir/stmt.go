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
    `strings`
)

// Statement is one three-address IR instruction. Unused operand
// slots are nil.
type Statement struct {
    Op   OpCode
    Dst  *SymbolRef
    Src1 *SymbolRef
    Src2 *SymbolRef
}

func NewStatement(op OpCode) Statement {
    return Statement { Op: op }
}

// VisitDestination yields the destination operand, if present. The
// marker passed to fn is true for writable (destination) positions.
func (self *Statement) VisitDestination(fn func(ref *SymbolRef, isDef bool)) {
    if self.Dst != nil {
        fn(self.Dst, true)
    }
}

// VisitSources yields the source operands in order.
func (self *Statement) VisitSources(fn func(ref *SymbolRef, isDef bool)) {
    if self.Src1 != nil {
        fn(self.Src1, false)
    }
    if self.Src2 != nil {
        fn(self.Src2, false)
    }
}

// VisitOperands yields the destination, then the sources.
func (self *Statement) VisitOperands(fn func(ref *SymbolRef, isDef bool)) {
    self.VisitDestination(fn)
    self.VisitSources(fn)
}

// VisitOperandsMut yields a writable handle to every occupied
// operand slot, destination first, so the rewrite pass can replace a
// reference in place.
func (self *Statement) VisitOperandsMut(fn func(slot **SymbolRef, isDef bool)) {
    if self.Dst != nil {
        fn(&self.Dst, true)
    }
    if self.Src1 != nil {
        fn(&self.Src1, false)
    }
    if self.Src2 != nil {
        fn(&self.Src2, false)
    }
}

func (self *Statement) String() string {
    ops := make([]string, 0, 3)
    self.VisitOperands(func(ref *SymbolRef, _ bool) {
        ops = append(ops, ref.String())
    })
    if len(ops) == 0 {
        return self.Op.String()
    }
    return fmt.Sprintf("%-13s %s", self.Op, strings.Join(ops, ", "))
}

// BasicBlock is an ordered statement sequence together with the
// symbol table that owns every symbol the statements refer to.
type BasicBlock struct {
    Statements []Statement
    Symbols    *SymbolTable
}

func NewBasicBlock() *BasicBlock {
    return &BasicBlock {
        Symbols: NewSymbolTable(),
    }
}

// Append adds a statement, interning its operand symbols into the
// block's table so identity comparisons hold within the block.
func (self *BasicBlock) Append(st Statement) {
    p := &st
    p.VisitOperandsMut(func(slot **SymbolRef, _ bool) {
        ref := *slot
        *slot = NewVersionedSymbolRef(self.Symbols.MakeSymbolCopy(ref.Symbol), ref.Version)
    })
    self.Statements = append(self.Statements, *p)
}

func (self *BasicBlock) String() string {
    buf := make([]string, 0, len(self.Statements))
    for i := range self.Statements {
        buf = append(buf, fmt.Sprintf("%4d | %s", i, &self.Statements[i]))
    }
    return strings.Join(buf, "\n")
}
