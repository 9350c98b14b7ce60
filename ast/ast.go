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

// Package ast defines the heterogeneous node graph built by the parser: a
// closed set of node kinds sharing a common enumeration contract, owned by a
// single Arena for the lifetime of one parse (§3.3, §3.5).
package ast

import "github.com/golangee/langfmt/token"

// Kind discriminates the concrete node variant. The set is closed (§3.3).
type Kind uint8

const (
	KindRoot Kind = iota
	KindVarDecl
	KindIdentifier
	KindFnProto
	KindParamDecl
	KindAddrOfExpr
	KindBlock
)

//nolint:gochecknoglobals
var kindNames = map[Kind]string{
	KindRoot:       "Root",
	KindVarDecl:    "VarDecl",
	KindIdentifier: "Identifier",
	KindFnProto:    "FnProto",
	KindParamDecl:  "ParamDecl",
	KindAddrOfExpr: "AddrOfExpr",
	KindBlock:      "Block",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Node is the common header every concrete variant implements. ChildAt
// returns the k-th child in a stable order, or (nil, false) once k runs off
// the end; it is the sole traversal primitive, shared by teardown (§4.3) and
// the tree-dump renderer.
type Node interface {
	Kind() Kind
	ChildAt(k int) (Node, bool)
}

// OptToken is an optional token field: "the token that introduced this
// modifier, if any" (§9). A native present flag is used instead of a
// sentinel offset.
type OptToken struct {
	Tok     token.Token
	Present bool
}

// Some wraps t as a present OptToken.
func Some(t token.Token) OptToken {
	return OptToken{Tok: t, Present: true}
}

// None is the absent OptToken.
var None = OptToken{} //nolint:gochecknoglobals

// Get returns the wrapped token and whether it is present.
func (o OptToken) Get() (token.Token, bool) {
	return o.Tok, o.Present
}

// childAt returns the k-th element of children that is non-nil, skipping
// absent (nil) slots, so every node type can express its field order
// declaratively without hand-indexing.
func childAt(k int, children ...Node) (Node, bool) {
	i := 0

	for _, c := range children {
		if c == nil {
			continue
		}

		if i == k {
			return c, true
		}

		i++
	}

	return nil, false
}

// Root is the sole entry point of a parse session: an ordered list of
// top-level declarations (§3.3).
type Root struct {
	Decls []Node
}

func (*Root) Kind() Kind { return KindRoot }

func (r *Root) ChildAt(k int) (Node, bool) {
	if k < 0 || k >= len(r.Decls) {
		return nil, false
	}

	return r.Decls[k], true
}

// VarDecl is a var/const declaration, at top level or as a block statement.
type VarDecl struct {
	Visib    OptToken // pub | export
	Mut      token.Token
	Name     token.Token
	Equal    OptToken
	Comptime OptToken
	Extern   OptToken
	// LibName is reserved for extern-with-library-string declarations; the
	// grammar for that construct is an UnsupportedConstruct (Open Question
	// ii), so this field is always nil in the current implementation.
	LibName Node
	Type    Node
	// Align is reserved for `align(expr)`; GroupedExpression is unimplemented
	// (Open Question iii), so this field is always nil.
	Align Node
	Init  Node
}

func (*VarDecl) Kind() Kind { return KindVarDecl }

func (v *VarDecl) ChildAt(k int) (Node, bool) {
	return childAt(k, v.LibName, v.Type, v.Align, v.Init)
}

// Identifier is a bare name reference.
type Identifier struct {
	Name token.Token
}

func (*Identifier) Kind() Kind { return KindIdentifier }

func (*Identifier) ChildAt(int) (Node, bool) { return nil, false }

// FnProto is a function prototype: signature plus an optional body (§3.3).
type FnProto struct {
	Visib      OptToken
	Fn         token.Token
	Name       OptToken
	Params     []Node // ParamDecl
	VarArgs    OptToken
	Extern     OptToken
	Inline     OptToken
	CallConv   OptToken
	ReturnType Node
	Body       Node // Block, if this is a definition rather than a forward declaration
	// LibName and Align are both reserved (see VarDecl) and always nil.
	LibName Node
	Align   Node
}

func (*FnProto) Kind() Kind { return KindFnProto }

func (f *FnProto) ChildAt(k int) (Node, bool) {
	n := len(f.Params)
	if k < n {
		return f.Params[k], true
	}

	return childAt(k-n, f.Align, f.ReturnType, f.Body, f.LibName)
}

// ParamDecl is a single function parameter.
type ParamDecl struct {
	Comptime OptToken
	NoAlias  OptToken
	Name     OptToken
	// Type is required unless VarArgs is present.
	Type    Node
	VarArgs OptToken
}

func (*ParamDecl) Kind() Kind { return KindParamDecl }

func (p *ParamDecl) ChildAt(k int) (Node, bool) {
	return childAt(k, p.Type)
}

// AddrOfExpr is `&operand`, with optional align/bit-offset/const/volatile
// modifiers recognised by PrefixOpExpression (§4.2).
type AddrOfExpr struct {
	Amp token.Token
	// Align is reserved (see VarDecl) and always nil.
	Align          Node
	BitOffsetStart OptToken
	BitOffsetEnd   OptToken
	Const          OptToken
	Volatile       OptToken
	Operand        Node
}

func (*AddrOfExpr) Kind() Kind { return KindAddrOfExpr }

func (a *AddrOfExpr) ChildAt(k int) (Node, bool) {
	return childAt(k, a.Align, a.Operand)
}

// Block is `{ stmt* }`.
type Block struct {
	LBrace token.Token
	RBrace token.Token
	Stmts  []Node
}

func (*Block) Kind() Kind { return KindBlock }

func (b *Block) ChildAt(k int) (Node, bool) {
	if k < 0 || k >= len(b.Stmts) {
		return nil, false
	}

	return b.Stmts[k], true
}
