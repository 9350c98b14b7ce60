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

// poolBlockSize is the element count of one pool block. Blocks are never
// resized once allocated, only appended to the block list, so a pointer
// returned by make never dangles the way an element of a growing slice
// would after a reallocating append.
const poolBlockSize = 64

// pool is a typed, growable arena for exactly one node kind: nodes are
// carved out of fixed-size blocks instead of one slice that reallocates (and
// so invalidates already-returned pointers) as it grows. Modeled on
// go-fAST's per-kind miniArena allocator.
type pool[T any] struct {
	blocks [][]T
	used   int
}

func (p *pool[T]) make() *T {
	if len(p.blocks) == 0 || p.used == poolBlockSize {
		p.blocks = append(p.blocks, make([]T, poolBlockSize))
		p.used = 0
	}

	n := &p.blocks[len(p.blocks)-1][p.used]
	p.used++

	return n
}

// Arena owns every node created during one parse session (§3.5). It is the
// single allocator §5 requires: node construction and teardown both go
// through it, so every node a parse allocates is visible and releasable in
// one place (the parser's work stack and pushback buffer live outside it). Allocation is a typed pool per node kind; liveness tracking
// on top of that is what lets Teardown (and the P4 test) confirm every
// allocated node was actually destroyed.
type Arena struct {
	live map[Node]struct{}

	roots   pool[Root]
	vars    pool[VarDecl]
	idents  pool[Identifier]
	fns     pool[FnProto]
	params  pool[ParamDecl]
	addrOfs pool[AddrOfExpr]
	blocks  pool[Block]
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{live: make(map[Node]struct{})}
}

// Live returns the number of nodes the Arena has allocated and not yet torn
// down. Used by tests to verify P4 (teardown totality).
func (a *Arena) Live() int {
	return len(a.live)
}

func (a *Arena) alloc(n Node) Node {
	a.live[n] = struct{}{}
	return n
}

func (a *Arena) NewRoot() *Root {
	n := a.roots.make()
	a.alloc(n)

	return n
}

func (a *Arena) NewVarDecl() *VarDecl {
	n := a.vars.make()
	a.alloc(n)

	return n
}

func (a *Arena) NewIdentifier() *Identifier {
	n := a.idents.make()
	a.alloc(n)

	return n
}

func (a *Arena) NewFnProto() *FnProto {
	n := a.fns.make()
	a.alloc(n)

	return n
}

func (a *Arena) NewParamDecl() *ParamDecl {
	n := a.params.make()
	a.alloc(n)

	return n
}

func (a *Arena) NewAddrOfExpr() *AddrOfExpr {
	n := a.addrOfs.make()
	a.alloc(n)

	return n
}

func (a *Arena) NewBlock() *Block {
	n := a.blocks.make()
	a.alloc(n)

	return n
}

// teardownFrame tracks one ancestor on the path from root to the node
// currently being visited, plus how many of its children have already been
// pushed. Resuming from `next` rather than re-scanning from 0 is what keeps
// auxiliary space at O(depth) instead of O(size) (§4.3).
type teardownFrame struct {
	node Node
	next int
}

// Teardown destroys root and every node reachable from it via ChildAt, using
// an iterative post-order walk: a node is destroyed once ChildAt(next)
// returns none, which for a leaf is immediately (ChildAt(0) returns none);
// an internal node is left on the stack until its children have all been
// pushed and popped ahead of it.
// Teardown never recurses on the host stack (§4.3, §5).
func (a *Arena) Teardown(root Node) {
	if root == nil {
		return
	}

	stack := []teardownFrame{{node: root, next: 0}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		child, ok := top.node.ChildAt(top.next)
		if !ok {
			a.destroy(top.node)
			stack = stack[:len(stack)-1]

			continue
		}

		top.next++

		if child != nil {
			stack = append(stack, teardownFrame{node: child, next: 0})
		}
	}
}

func (a *Arena) destroy(n Node) {
	delete(a.live, n)
}
