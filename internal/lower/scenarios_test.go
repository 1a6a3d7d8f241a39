package lower

import (
	"testing"

	"cflow/internal/ir"
	"cflow/internal/symbols"
)

func TestEmptyFunction(t *testing.T) {
	fx := newFixture()
	fnSym := fx.symArena.New(symbols.Symbol{Tag: symbols.Other, Name: "f", Type: fx.typesIn.Builtins().Void})
	body := fx.b.Code()
	fnNode := fx.b.FnImpl(fnSym, body)

	f := fx.lowerFunc(t, fnNode)
	assertAllTerminated(t, f)

	if len(f.Blocks) != 2 {
		t.Fatalf("expected exactly entry and epilogue, got %d blocks", len(f.Blocks))
	}
	entry := f.Block(f.Entry)
	if entry.Term.Kind != ir.TermJump || entry.Term.Target != f.Epilogue {
		t.Fatalf("expected entry to jump straight to epilogue, got %+v", entry.Term)
	}
	if f.FrameSize != 0 {
		t.Fatalf("expected zero frame size for a function with no locals, got %d", f.FrameSize)
	}
	epilogue := f.Block(f.Epilogue)
	if epilogue.Term.Kind != ir.TermReturn {
		t.Fatalf("expected epilogue terminator TermReturn, got %v", epilogue.Term.Kind)
	}
}

func TestIfElseBothArmsReturn(t *testing.T) {
	fx := newFixture()
	intT := fx.typesIn.Builtins().Int
	boolT := fx.typesIn.Builtins().Bool
	fnSym := fx.symArena.New(symbols.Symbol{Tag: symbols.Other, Name: "f", Type: intT})

	cond := fx.b.BoolLit(true)
	fx.b.Arena.SetDataType(cond, boolT)
	one := fx.b.IntLit("1")
	fx.b.Arena.SetDataType(one, intT)
	two := fx.b.IntLit("2")
	fx.b.Arena.SetDataType(two, intT)

	trueArm := fx.b.Code(fx.b.Return(one))
	falseArm := fx.b.Code(fx.b.Return(two))
	branch := fx.b.Branch(cond, trueArm, falseArm)

	body := fx.b.Code(branch)
	fnNode := fx.b.FnImpl(fnSym, body)

	f := fx.lowerFunc(t, fnNode)
	assertAllTerminated(t, f)

	entry := f.Block(f.Entry)
	if entry.Term.Kind != ir.TermBranch {
		t.Fatalf("expected entry to branch on the if condition, got %v", entry.Term.Kind)
	}
	trueID, falseID := entry.Term.TrueTarget, entry.Term.FalseTarget

	trueBlk := f.Block(trueID)
	if trueBlk.Term.Kind != ir.TermJump || trueBlk.Term.Target != f.Epilogue {
		t.Fatalf("expected the true arm's return to jump to epilogue, got %+v", trueBlk.Term)
	}
	falseBlk := f.Block(falseID)
	if falseBlk.Term.Kind != ir.TermJump || falseBlk.Term.Target != f.Epilogue {
		t.Fatalf("expected the false arm's return to jump to epilogue, got %+v", falseBlk.Term)
	}

	if len(trueBlk.Instrs) == 0 {
		t.Fatalf("expected the true arm to materialize its return value before jumping")
	}
	if len(falseBlk.Instrs) == 0 {
		t.Fatalf("expected the false arm to materialize its return value before jumping")
	}
}
