package fixture

import (
	"bytes"
	"testing"

	"cflow/internal/ast"
	"cflow/internal/ir"
	"cflow/internal/symbols"
)

func TestEncodeDecodeRoundTrips(t *testing.T) {
	b := ast.NewBuilder()

	fnSym := symbols.Symbol{Tag: symbols.Other, Name: "f"}
	want := &Fixture{AST: b.Arena, Symbols: symbols.NewArena()}
	fnSymID := want.Symbols.New(fnSym)

	val := b.IntLit("7")
	ret := b.Return(val)
	body := b.Code(ret)
	fn := b.FnImpl(fnSymID, body)
	want.Entry = fn

	var buf bytes.Buffer
	if err := Encode(&buf, want); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Entry != want.Entry {
		t.Fatalf("entry mismatch: got %d want %d", got.Entry, want.Entry)
	}
	if got.AST.Len() != want.AST.Len() {
		t.Fatalf("AST length mismatch: got %d want %d", got.AST.Len(), want.AST.Len())
	}
	if got.Symbols.Len() != want.Symbols.Len() {
		t.Fatalf("symbol length mismatch: got %d want %d", got.Symbols.Len(), want.Symbols.Len())
	}
	gotSym := got.Symbols.Get(fnSymID)
	if gotSym == nil || gotSym.Name != "f" {
		t.Fatalf("expected decoded symbol named f, got %+v", gotSym)
	}
	gotNode := got.AST.Get(fn)
	if gotNode.Tag != b.Arena.Get(fn).Tag {
		t.Fatalf("expected decoded FnImpl tag to match, got %v", gotNode.Tag)
	}
}

func TestEncodeDecodeModuleRoundTrips(t *testing.T) {
	fn := &ir.Func{
		Name:       "f",
		Label:      "_f_1",
		ParamCount: 0,
		Locals:     []ir.Local{{Name: "x", Offset: -8}},
		FrameSize:  8,
	}
	entry := fn.NewBlock()
	epilogue := fn.NewBlock()
	fn.Entry = entry
	fn.Epilogue = epilogue
	fn.Emit(entry, ir.Instr{Kind: ir.InstrMove, Move: ir.MoveInstr{
		Dst: ir.Operand{Kind: ir.OperandRegister, Register: "RAX"},
		Src: ir.Operand{Kind: ir.OperandConst, Const: ir.Const{Kind: ir.ConstInt, Int: 7}},
	}})
	fn.SetTerm(entry, ir.Terminator{Kind: ir.TermJump, Target: epilogue})
	fn.SetTerm(epilogue, ir.Terminator{Kind: ir.TermReturn})

	want := &ir.Module{Funcs: []*ir.Func{fn}}

	var buf bytes.Buffer
	if err := EncodeModule(&buf, want); err != nil {
		t.Fatalf("EncodeModule: %v", err)
	}

	got, err := DecodeModule(&buf)
	if err != nil {
		t.Fatalf("DecodeModule: %v", err)
	}

	if len(got.Funcs) != 1 {
		t.Fatalf("expected 1 func, got %d", len(got.Funcs))
	}
	gotFn := got.Funcs[0]
	if gotFn.Name != "f" || gotFn.Label != "_f_1" {
		t.Fatalf("func identity mismatch: got %+v", gotFn)
	}
	if gotFn.FrameSize != 8 || len(gotFn.Locals) != 1 || gotFn.Locals[0].Offset != -8 {
		t.Fatalf("frame/locals mismatch: got %+v", gotFn)
	}
	if len(gotFn.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(gotFn.Blocks))
	}
	if gotFn.Blocks[entry].Term.Kind != ir.TermJump || gotFn.Blocks[entry].Term.Target != epilogue {
		t.Fatalf("expected entry block to jump to epilogue, got %+v", gotFn.Blocks[entry].Term)
	}
	if gotFn.Blocks[epilogue].Term.Kind != ir.TermReturn {
		t.Fatalf("expected epilogue block to return, got %+v", gotFn.Blocks[epilogue].Term)
	}
}
