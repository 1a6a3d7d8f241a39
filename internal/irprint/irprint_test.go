package irprint

import (
	"bytes"
	"strings"
	"testing"

	"cflow/internal/ir"
)

func TestDumpRendersBlocksAndSummary(t *testing.T) {
	f := &ir.Func{Name: "add", FrameSize: 16}
	f.Locals = []ir.Local{{Name: "a", Offset: -8}, {Name: "b", Offset: -16}}
	entry := f.NewBlock()
	f.Entry = entry
	epilogue := f.NewBlock()
	f.Epilogue = epilogue

	f.Emit(entry, ir.Instr{
		Kind: ir.InstrAssign,
		Assign: ir.AssignInstr{
			Dst: ir.Place{Kind: ir.PlaceLocal, Local: 0},
			Src: ir.RValue{Kind: ir.RValueBinary, Binary: ir.BinaryOp{
				Op:    "+",
				Left:  ir.Operand{Kind: ir.OperandConst, Const: ir.Const{Kind: ir.ConstInt, Int: 1}},
				Right: ir.Operand{Kind: ir.OperandConst, Const: ir.Const{Kind: ir.ConstInt, Int: 2}},
			}},
		},
	})
	f.SetTerm(entry, ir.Terminator{Kind: ir.TermJump, Target: epilogue})
	f.SetTerm(epilogue, ir.Terminator{Kind: ir.TermReturn})

	m := &ir.Module{Funcs: []*ir.Func{f}}

	var buf bytes.Buffer
	Dump(&buf, m, Options{})
	out := buf.String()

	for _, want := range []string{
		"func", "blocks", "frame",
		"add", "2", "16",
		"func add (frame=16, epilogue=bb1)",
		"local a",
		"@-8",
		"bb0: (entry)",
		"local0 = 1 + 2",
		"jump bb1",
		"bb1:",
		"return",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected dump to contain %q, got:\n%s", want, out)
		}
	}
}
