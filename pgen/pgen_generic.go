//go:build !amd64

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

// HostCodeGen falls back to conservative fixed counts on targets
// without a native backend description.
type HostCodeGen struct{}

func (HostCodeGen) AvailableRegisterCount() uint32 {
    return 8
}

func (HostCodeGen) AvailableMdRegisterCount() uint32 {
    return 8
}
