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
    `os`

    `github.com/davecgh/go-spew/spew`
)

var _DumpConf = spew.ConfigState {
    Indent                  : "    ",
    DisablePointerAddresses : true,
    DisableCapacities       : true,
    SortKeys                : true,
}

// DumpStatementList prints the block to stderr, one indexed line per
// statement, for eyeballing pass output.
func DumpStatementList(title string, bb *BasicBlock) {
    fmt.Fprintf(os.Stderr, "--- %s (%d statements, %d symbols) ---\n", title, len(bb.Statements), bb.Symbols.Size())
    fmt.Fprintln(os.Stderr, bb.String())
}

// DumpValue renders an arbitrary pass structure with full field
// detail.
func DumpValue(v interface{}) string {
    return _DumpConf.Sdump(v)
}
