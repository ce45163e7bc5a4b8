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

// SymbolTable interns Symbols so equal descriptors share one
// canonical *Symbol for the table's lifetime. The table exclusively
// owns every symbol it hands out; handles stay valid until Clear.
// Tables may be handed off, never shared between blocks.
type SymbolTable struct {
    symbols map[Symbol]*Symbol
}

func NewSymbolTable() *SymbolTable {
    return &SymbolTable {
        symbols: make(map[Symbol]*Symbol, 64),
    }
}

// MakeSymbol returns the canonical symbol for (kind, lo, hi),
// interning a new one on first sight. hi is optional.
func (self *SymbolTable) MakeSymbol(kind SymbolKind, lo uint32, hi ...uint32) *Symbol {
    sym := Symbol { Kind: kind, ValueLow: lo }
    if len(hi) != 0 {
        sym.ValueHigh = hi[0]
    }
    return self.MakeSymbolCopy(&sym)
}

// MakeSymbolCopy interns by value copy, the source symbol is not
// retained.
func (self *SymbolTable) MakeSymbolCopy(src *Symbol) *Symbol {
    if v, ok := self.symbols[*src]; ok {
        return v
    }
    p := new(Symbol)
    *p = *src
    self.symbols[*p] = p
    return p
}

// Contains reports whether sym is a handle owned by this table.
func (self *SymbolTable) Contains(sym *Symbol) bool {
    if sym == nil {
        return false
    }
    return self.symbols[*sym] == sym
}

// Remove erases a symbol from the table. The handle itself stays
// usable by whoever still holds it, but loses its canonical status.
func (self *SymbolTable) Remove(sym *Symbol) {
    if self.symbols[*sym] == sym {
        delete(self.symbols, *sym)
    }
}

// ForEach visits every interned symbol, in no particular order.
func (self *SymbolTable) ForEach(action func(sym *Symbol)) {
    for _, v := range self.symbols {
        action(v)
    }
}

func (self *SymbolTable) Size() int {
    return len(self.symbols)
}

// Clear drops every interned symbol, all outstanding handles become
// invalid.
func (self *SymbolTable) Clear() {
    self.symbols = make(map[Symbol]*Symbol, 64)
}
