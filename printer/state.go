package printer

import "github.com/golangee/langfmt/ast"

// renderTopLevelDecl is RenderState "TopLevelDecl(node)": dispatch on node
// kind and delegate to whichever render state owns that kind's canonical
// form (§4.4).
type renderTopLevelDecl struct {
	node ast.Node
}

func (s renderTopLevelDecl) run(p *Printer) error {
	switch n := s.node.(type) {
	case *ast.VarDecl:
		p.push(renderVarDecl{n: n})
		return nil
	case *ast.FnProto:
		p.push(renderFnProto{n: n})
		return nil
	default:
		return unsupportedNode(s.node)
	}
}

// writeOptPrefix emits "<lexeme> " for a present optional token, or nothing
// for an absent one, through Sink.print — the formatted-write verb §6.4
// defines alongside write and writeByteNTimes.
func writeOptPrefix(p *Printer, o ast.OptToken) error {
	if t, ok := o.Get(); ok {
		return p.sink.print("%s ", p.lexeme(t))
	}

	return nil
}

// renderVarDecl is RenderState "VarDecl": emits
// `(pub )?(extern )?(comptime )?mut name` and the optional `: type`, then
// defers the optional `align(expr)` and `= init` tails to renderVarDeclAlign.
type renderVarDecl struct {
	n *ast.VarDecl
}

func (s renderVarDecl) run(p *Printer) error {
	for _, o := range []ast.OptToken{s.n.Visib, s.n.Extern, s.n.Comptime} {
		if err := writeOptPrefix(p, o); err != nil {
			return err
		}
	}

	if err := p.sink.print("%s %s", p.lexeme(s.n.Mut), p.lexeme(s.n.Name)); err != nil {
		return err
	}

	if s.n.Type == nil {
		return renderVarDeclAlign{n: s.n}.run(p)
	}

	if err := p.sink.write([]byte(": ")); err != nil {
		return err
	}

	p.push(renderVarDeclAlign{n: s.n})
	p.push(renderExpression{node: s.n.Type})

	return nil
}

// renderVarDeclAlign is RenderState "VarDeclAlign": emits the optional
// ` align(expr)` and hands off to the `= init` / trailing `;` tail.
type renderVarDeclAlign struct {
	n *ast.VarDecl
}

func (s renderVarDeclAlign) run(p *Printer) error {
	if s.n.Align == nil {
		return renderVarDeclEq{n: s.n}.run(p)
	}

	if err := p.sink.write([]byte(" align(")); err != nil {
		return err
	}

	p.push(renderVarDeclEq{n: s.n, closeAlign: true})
	p.push(renderExpression{node: s.n.Align})

	return nil
}

type renderVarDeclEq struct {
	n          *ast.VarDecl
	closeAlign bool
}

func (s renderVarDeclEq) run(p *Printer) error {
	if s.closeAlign {
		if err := p.sink.write([]byte(")")); err != nil {
			return err
		}
	}

	if s.n.Init == nil {
		return p.sink.write([]byte(";"))
	}

	if err := p.sink.write([]byte(" = ")); err != nil {
		return err
	}

	p.push(text(";"))
	p.push(renderExpression{node: s.n.Init})

	return nil
}

// renderExpression is RenderState "Expression(node)": dispatch on
// expression kind. This core has exactly two expression-shaped node kinds.
type renderExpression struct {
	node ast.Node
}

func (s renderExpression) run(p *Printer) error {
	switch n := s.node.(type) {
	case *ast.Identifier:
		return p.sink.write([]byte(p.lexeme(n.Name)))
	case *ast.AddrOfExpr:
		return renderAddrOfExpr(p, n)
	default:
		return unsupportedNode(s.node)
	}
}

func renderAddrOfExpr(p *Printer, n *ast.AddrOfExpr) error {
	if err := p.sink.write([]byte(p.lexeme(n.Amp))); err != nil {
		return err
	}

	if n.Align == nil {
		return renderAddrOfExprBit{n: n}.run(p)
	}

	if err := p.sink.write([]byte("align(")); err != nil {
		return err
	}

	p.push(renderAddrOfExprBit{n: n, closeAlign: true})
	p.push(renderExpression{node: n.Align})

	return nil
}

// renderAddrOfExprBit is RenderState "AddrOfExprBit": emits the optional
// bit-offset / `const ` / `volatile ` qualifiers, then the operand. The
// bit-offset tokens have no surface grammar producing them yet (§3.3); they
// render correctly if ever populated but are always absent today.
type renderAddrOfExprBit struct {
	n          *ast.AddrOfExpr
	closeAlign bool
}

func (s renderAddrOfExprBit) run(p *Printer) error {
	if s.closeAlign {
		if err := p.sink.write([]byte(")")); err != nil {
			return err
		}
	}

	if start, ok := s.n.BitOffsetStart.Get(); ok {
		if end, ok := s.n.BitOffsetEnd.Get(); ok {
			if err := p.sink.print(":%s:%s", p.lexeme(start), p.lexeme(end)); err != nil {
				return err
			}
		} else if err := p.sink.print(":%s", p.lexeme(start)); err != nil {
			return err
		}
	}

	for _, o := range []ast.OptToken{s.n.Const, s.n.Volatile} {
		if err := writeOptPrefix(p, o); err != nil {
			return err
		}
	}

	p.push(renderExpression{node: s.n.Operand})

	return nil
}

// renderFnProto is RenderState "FnProto" (paired with FnProtoRParen below):
// emits the prefix, `fn`, the optional name, and `(`, then the parameter
// list.
type renderFnProto struct {
	n *ast.FnProto
}

func (s renderFnProto) run(p *Printer) error {
	for _, o := range []ast.OptToken{s.n.Visib, s.n.Extern, s.n.Inline, s.n.CallConv} {
		if err := writeOptPrefix(p, o); err != nil {
			return err
		}
	}

	if name, ok := s.n.Name.Get(); ok {
		if err := p.sink.print("%s %s(", p.lexeme(s.n.Fn), p.lexeme(name)); err != nil {
			return err
		}
	} else if err := p.sink.print("%s(", p.lexeme(s.n.Fn)); err != nil {
		return err
	}

	p.push(renderFnProtoRParen{n: s.n})
	p.pushParamList(s.n.Params)

	return nil
}

// pushParamList pushes each parameter in order, separated by ", ", so that
// popping reproduces the original left-to-right parameter order (the same
// reverse-push discipline the parser uses for left-to-right consumption).
func (p *Printer) pushParamList(params []ast.Node) {
	for i := len(params) - 1; i >= 0; i-- {
		if i < len(params)-1 {
			p.push(text(", "))
		}

		p.push(renderParamDecl{node: params[i]})
	}
}

// renderParamDecl is RenderState "ParamDecl": emits
// `(comptime )?(noalias )?(name: )?type` or `...`.
type renderParamDecl struct {
	node ast.Node
}

func (s renderParamDecl) run(p *Printer) error {
	pd, ok := s.node.(*ast.ParamDecl)
	if !ok {
		return unsupportedNode(s.node)
	}

	for _, o := range []ast.OptToken{pd.Comptime, pd.NoAlias} {
		if err := writeOptPrefix(p, o); err != nil {
			return err
		}
	}

	if name, ok := pd.Name.Get(); ok {
		if err := p.sink.print("%s: ", p.lexeme(name)); err != nil {
			return err
		}
	}

	if va, ok := pd.VarArgs.Get(); ok {
		return p.sink.print("%s", p.lexeme(va))
	}

	p.push(renderExpression{node: pd.Type})

	return nil
}

// renderFnProtoRParen is RenderState "FnProtoRParen": emits `)`, then
// ` -> return_type` if present, then ` body` if present.
type renderFnProtoRParen struct {
	n *ast.FnProto
}

func (s renderFnProtoRParen) run(p *Printer) error {
	if err := p.sink.write([]byte(")")); err != nil {
		return err
	}

	if s.n.Align == nil {
		return renderFnProtoReturnType{n: s.n}.run(p)
	}

	if err := p.sink.write([]byte(" align(")); err != nil {
		return err
	}

	p.push(renderFnProtoReturnType{n: s.n, closeAlign: true})
	p.push(renderExpression{node: s.n.Align})

	return nil
}

type renderFnProtoReturnType struct {
	n          *ast.FnProto
	closeAlign bool
}

func (s renderFnProtoReturnType) run(p *Printer) error {
	if s.closeAlign {
		if err := p.sink.write([]byte(")")); err != nil {
			return err
		}
	}

	if s.n.ReturnType == nil {
		return renderFnProtoBody{n: s.n}.run(p)
	}

	if err := p.sink.write([]byte(" -> ")); err != nil {
		return err
	}

	p.push(renderFnProtoBody{n: s.n})
	p.push(renderExpression{node: s.n.ReturnType})

	return nil
}

type renderFnProtoBody struct {
	n *ast.FnProto
}

func (s renderFnProtoBody) run(p *Printer) error {
	if s.n.Body == nil {
		return p.sink.write([]byte(";"))
	}

	block, ok := s.n.Body.(*ast.Block)
	if !ok {
		return unsupportedNode(s.n.Body)
	}

	if err := p.sink.write([]byte(" ")); err != nil {
		return err
	}

	p.push(renderBlock{n: block})

	return nil
}

// renderBlock is RenderState "Block": emits `{`, a newline, each statement
// on its own line at indent+4, a newline, the restored indent, and `}`.
type renderBlock struct {
	n *ast.Block
}

func (s renderBlock) run(p *Printer) error {
	if err := p.sink.write([]byte("{\n")); err != nil {
		return err
	}

	outer := p.indent
	inner := outer + 4

	p.push(text("}"))
	p.push(printIndent{})
	p.push(setIndent(outer))

	for i := len(s.n.Stmts) - 1; i >= 0; i-- {
		p.push(text("\n"))
		p.push(renderStatement{node: s.n.Stmts[i]})
		p.push(printIndent{})
	}

	p.push(setIndent(inner))

	return nil
}

// renderStatement is RenderState "Statement(node)": a VarDecl statement
// already carries its own trailing `;`; any other statement node is a bare
// expression and needs one appended.
type renderStatement struct {
	node ast.Node
}

func (s renderStatement) run(p *Printer) error {
	if n, ok := s.node.(*ast.VarDecl); ok {
		p.push(renderVarDecl{n: n})
		return nil
	}

	p.push(text(";"))
	p.push(renderExpression{node: s.node})

	return nil
}
