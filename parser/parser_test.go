package parser

import (
	"strings"
	"testing"

	"github.com/golangee/langfmt/ast"
)

func parse(t *testing.T, src string) (*ast.Root, error) {
	t.Helper()

	p := NewParser("test.src", []byte(src))
	root, err := p.Parse()

	if err == nil {
		t.Cleanup(func() { p.Arena().Teardown(root) })
	}

	return root, err
}

func TestParseSimpleVarDecl(t *testing.T) {
	root, err := parse(t, "const a = b;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(root.Decls) != 1 {
		t.Fatalf("Decls = %d, want 1", len(root.Decls))
	}

	decl, ok := root.Decls[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("Decls[0] = %T, want *ast.VarDecl", root.Decls[0])
	}

	if _, ok := decl.Init.(*ast.Identifier); !ok {
		t.Fatalf("Init = %T, want *ast.Identifier", decl.Init)
	}
}

func TestParseFnProtoWithParamsAndReturnType(t *testing.T) {
	root, err := parse(t, "pub fn main(argc: c_int, argv: &&u8) -> c_int {}")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	fn, ok := root.Decls[0].(*ast.FnProto)
	if !ok {
		t.Fatalf("Decls[0] = %T, want *ast.FnProto", root.Decls[0])
	}

	if !fn.Visib.Present {
		t.Fatalf("Visib not set for pub fn")
	}

	if len(fn.Params) != 2 {
		t.Fatalf("Params = %d, want 2", len(fn.Params))
	}

	argvParam, ok := fn.Params[1].(*ast.ParamDecl)
	if !ok {
		t.Fatalf("Params[1] = %T, want *ast.ParamDecl", fn.Params[1])
	}

	argv, ok := argvParam.Type.(*ast.AddrOfExpr)
	if !ok {
		t.Fatalf("Params[1].Type = %T, want *ast.AddrOfExpr", argvParam.Type)
	}

	if _, ok := argv.Operand.(*ast.AddrOfExpr); !ok {
		t.Fatalf("Params[1].Type.Operand = %T, want nested *ast.AddrOfExpr", argv.Operand)
	}

	if _, ok := fn.Body.(*ast.Block); !ok {
		t.Fatalf("Body = %T, want *ast.Block", fn.Body)
	}
}

func TestParseFnForwardDeclaration(t *testing.T) {
	root, err := parse(t, "extern fn write(fd: c_int, buf: &u8, n: c_int) -> c_int;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	fn, ok := root.Decls[0].(*ast.FnProto)
	if !ok {
		t.Fatalf("Decls[0] = %T, want *ast.FnProto", root.Decls[0])
	}

	if !fn.Extern.Present {
		t.Fatalf("Extern not set")
	}

	if fn.Body != nil {
		t.Fatalf("Body = %v, want nil for a forward declaration", fn.Body)
	}
}

func TestParseVariadicParamMustBeLast(t *testing.T) {
	root, err := parse(t, "fn printf(fmt: &u8, args: ...) -> c_int;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	fn := root.Decls[0].(*ast.FnProto)
	last := fn.Params[len(fn.Params)-1].(*ast.ParamDecl)

	if !last.VarArgs.Present {
		t.Fatalf("last param VarArgs not set")
	}

	if _, err := parse(t, "fn printf(args: ..., fmt: &u8) -> c_int;"); err == nil {
		t.Fatalf("Parse() error = nil, want an error for a parameter after ...")
	}
}

func TestParseBlockStatements(t *testing.T) {
	root, err := parse(t, "fn f() { const a = b; var c; }")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	fn := root.Decls[0].(*ast.FnProto)
	body := fn.Body.(*ast.Block)

	if len(body.Stmts) != 2 {
		t.Fatalf("Stmts = %d, want 2", len(body.Stmts))
	}
}

func TestParseMissingNameReportsPosition(t *testing.T) {
	_, err := parse(t, "const = 1;")
	if err == nil {
		t.Fatalf("Parse() error = nil, want UnexpectedTokenError")
	}

	uerr, ok := err.(*UnexpectedTokenError)
	if !ok {
		t.Fatalf("err = %T, want *UnexpectedTokenError", err)
	}

	if !strings.Contains(uerr.Error(), "test.src:1:7:") {
		t.Fatalf("Error() = %q, want it to contain position 1:7", uerr.Error())
	}
}

func TestParseAlignExprIsUnsupported(t *testing.T) {
	_, err := parse(t, "var a align(4) = b;")
	if err == nil {
		t.Fatalf("Parse() error = nil, want UnsupportedConstructError")
	}

	if _, ok := err.(*UnsupportedConstructError); !ok {
		t.Fatalf("err = %T, want *UnsupportedConstructError", err)
	}
}

func TestParseExternLibraryNameIsUnsupported(t *testing.T) {
	_, err := parse(t, `extern "c" fn abort();`)
	if err == nil {
		t.Fatalf("Parse() error = nil, want UnsupportedConstructError")
	}

	if _, ok := err.(*UnsupportedConstructError); !ok {
		t.Fatalf("err = %T, want *UnsupportedConstructError", err)
	}
}

func TestParseVarInTypePositionIsUnsupported(t *testing.T) {
	_, err := parse(t, "const a: var = b;")
	if err == nil {
		t.Fatalf("Parse() error = nil, want UnsupportedConstructError")
	}

	if _, ok := err.(*UnsupportedConstructError); !ok {
		t.Fatalf("err = %T, want *UnsupportedConstructError", err)
	}
}

func TestParseFailureTearsDownPartialTree(t *testing.T) {
	p := NewParser("test.src", []byte("const = 1;"))

	if _, err := p.Parse(); err == nil {
		t.Fatalf("Parse() error = nil, want error")
	}

	if got := p.Arena().Live(); got != 0 {
		t.Fatalf("Live() after failed Parse = %d, want 0", got)
	}
}

// TestPushbackNeverExceedsTwo exercises the one grammar point that
// speculatively reads two tokens ahead of the lexer -- the name-vs-type
// lookahead in a parameter list -- and checks it never panics, which it
// would the moment a third simultaneous unget was attempted (§8 P5).
func TestPushbackNeverExceedsTwo(t *testing.T) {
	cases := []string{
		"fn f(a: u8) {}",
		"fn f(a, b: u8) {}",
		"fn f(comptime a: u8) {}",
	}

	for _, src := range cases {
		if _, err := parse(t, src); err != nil {
			t.Fatalf("Parse(%q) error = %v", src, err)
		}
	}
}
