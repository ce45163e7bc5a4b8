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

// Unversioned marks a SymbolRef that carries no SSA-style version.
const Unversioned = -1

// SymbolRef is a versioned handle to an interned Symbol. Statement
// operand slots hold SymbolRefs so passes can substitute a reference
// without touching the statement shape.
type SymbolRef struct {
    Symbol  *Symbol
    Version int
}

func NewSymbolRef(sym *Symbol) *SymbolRef {
    return &SymbolRef {
        Symbol  : sym,
        Version : Unversioned,
    }
}

func NewVersionedSymbolRef(sym *Symbol, version int) *SymbolRef {
    return &SymbolRef {
        Symbol  : sym,
        Version : version,
    }
}

func (self *SymbolRef) Equals(other *SymbolRef) bool {
    if other == nil {
        return false
    }
    return self.Version == other.Version && self.Symbol.Equals(other.Symbol)
}

func (self *SymbolRef) IsVersioned() bool {
    return self.Version != Unversioned
}

func (self *SymbolRef) String() string {
    if self.IsVersioned() {
        return fmt.Sprintf("%s{%d}", self.Symbol, self.Version)
    } else {
        return self.Symbol.String()
    }
}

// SymbolOfKind unwraps a SymbolRef if and only if it refers to a
// symbol of the wanted kind, nil otherwise.
func SymbolOfKind(kind SymbolKind, ref *SymbolRef) *Symbol {
    if ref == nil || ref.Symbol == nil {
        return nil
    }
    if ref.Symbol.Kind != kind {
        return nil
    }
    return ref.Symbol
}
