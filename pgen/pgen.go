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

// CodeGen is the slice of the platform code generator the register
// allocator consumes: how many registers of each class it may hand
// out. Implementations must be safe for concurrent readers.
type CodeGen interface {
    AvailableRegisterCount() uint32
    AvailableMdRegisterCount() uint32
}

// StaticCodeGen serves fixed register counts, mainly for tests and
// non-native targets.
type StaticCodeGen struct {
    GpCount uint32
    MdCount uint32
}

func (self StaticCodeGen) AvailableRegisterCount() uint32 {
    return self.GpCount
}

func (self StaticCodeGen) AvailableMdRegisterCount() uint32 {
    return self.MdCount
}
