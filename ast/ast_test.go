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

import (
	"testing"

	"github.com/golangee/langfmt/token"
)

// buildSample constructs a small tree exercising every node kind:
// fn main(argc: c_int, argv: &&u8) { const a = b; }
func buildSample(a *Arena) Node {
	root := a.NewRoot()

	fn := a.NewFnProto()
	fn.Fn = token.Token{Kind: token.KeywordFn}
	fn.Name = Some(token.Token{Kind: token.Identifier})

	argc := a.NewParamDecl()
	argc.Name = Some(token.Token{Kind: token.Identifier})
	argcType := a.NewIdentifier()
	argcType.Name = token.Token{Kind: token.Identifier}
	argc.Type = argcType

	argv := a.NewParamDecl()
	argv.Name = Some(token.Token{Kind: token.Identifier})

	inner := a.NewAddrOfExpr()
	inner.Amp = token.Token{Kind: token.Ampersand}
	innerOperand := a.NewIdentifier()
	innerOperand.Name = token.Token{Kind: token.Identifier}
	inner.Operand = innerOperand

	outer := a.NewAddrOfExpr()
	outer.Amp = token.Token{Kind: token.Ampersand}
	outer.Operand = inner
	argv.Type = outer

	fn.Params = []Node{argc, argv}

	body := a.NewBlock()
	stmt := a.NewVarDecl()
	stmt.Mut = token.Token{Kind: token.KeywordConst}
	stmt.Name = token.Token{Kind: token.Identifier}
	init := a.NewIdentifier()
	init.Name = token.Token{Kind: token.Identifier}
	stmt.Init = init
	body.Stmts = []Node{stmt}

	fn.Body = body

	root.Decls = []Node{fn}

	return root
}

func TestTeardownTotality(t *testing.T) {
	a := NewArena()
	root := buildSample(a)

	if got := a.Live(); got == 0 {
		t.Fatalf("expected live nodes after construction, got 0")
	}

	a.Teardown(root)

	if got := a.Live(); got != 0 {
		t.Fatalf("Live() after Teardown = %d, want 0", got)
	}
}

func TestTeardownOfNilIsNoop(t *testing.T) {
	a := NewArena()
	a.Teardown(nil)

	if got := a.Live(); got != 0 {
		t.Fatalf("Live() = %d, want 0", got)
	}
}

func TestDumpVisitsEveryChild(t *testing.T) {
	a := NewArena()
	root := buildSample(a)

	out := Dump(root)

	for _, want := range []string{"Root", "FnProto", "ParamDecl", "AddrOfExpr", "Identifier", "Block", "VarDecl"} {
		if !containsLine(out, want) {
			t.Errorf("Dump() missing node kind %q, got:\n%s", want, out)
		}
	}
}

func containsLine(dump, kind string) bool {
	for i := 0; i+len(kind) <= len(dump); i++ {
		if dump[i:i+len(kind)] == kind {
			return true
		}
	}

	return false
}

func TestChildAtSkipsAbsentOptionalSlots(t *testing.T) {
	a := NewArena()

	v := a.NewVarDecl()
	// No LibName, no Align: Type and Init are the only present slots.
	typ := a.NewIdentifier()
	v.Type = typ
	initNode := a.NewIdentifier()
	v.Init = initNode

	first, ok := v.ChildAt(0)
	if !ok || first != Node(typ) {
		t.Fatalf("ChildAt(0) = %v, %v; want Type node", first, ok)
	}

	second, ok := v.ChildAt(1)
	if !ok || second != Node(initNode) {
		t.Fatalf("ChildAt(1) = %v, %v; want Init node", second, ok)
	}

	if _, ok := v.ChildAt(2); ok {
		t.Fatalf("ChildAt(2) should be absent")
	}
}
