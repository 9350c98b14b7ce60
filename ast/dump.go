// Copyright 2021 Torben Schinke
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import "strings"

// dumpFrame is a node awaiting rendering at a known depth, paired with the
// next child index to enumerate — the same resumable-frame shape Teardown
// uses, so the dump walk never recurses either.
type dumpFrame struct {
	node  Node
	depth int
	next  int
}

// Dump renders root and its descendants as an indented tree, one node per
// line, using the identical indexed child-enumerator teardown relies on
// (§4.3, §6.2: "the tree-dump renderer"). It is diagnostic-only output, not
// part of the canonical source form.
func Dump(root Node) string {
	if root == nil {
		return ""
	}

	var sb strings.Builder

	stack := []dumpFrame{{node: root, depth: 0}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next == 0 {
			sb.WriteString(strings.Repeat("  ", top.depth))
			sb.WriteString(top.node.Kind().String())
			sb.WriteByte('\n')
		}

		child, ok := top.node.ChildAt(top.next)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		top.next++

		if child != nil {
			stack = append(stack, dumpFrame{node: child, depth: top.depth + 1})
		}
	}

	return sb.String()
}
