package lower

import (
	"testing"

	"cflow/internal/arch"
	"cflow/internal/ast"
	"cflow/internal/diag"
	"cflow/internal/exprlower"
	"cflow/internal/ir"
	"cflow/internal/symbols"
	"cflow/internal/types"
)

// fixture bundles the arenas and collaborators one hand-built lowering test
// needs, wired the way LowerFunction expects to receive them.
type fixture struct {
	b        *ast.Builder
	symArena *symbols.Arena
	typesIn  *types.Interner
	arch     arch.Descriptor
	values   *exprlower.Lowerer
	diags    *diag.Bag
}

func newFixture() *fixture {
	typesIn := types.NewInterner()
	descriptor := arch.NewSysVx8664(typesIn)
	return &fixture{
		b:        ast.NewBuilder(),
		symArena: symbols.NewArena(),
		typesIn:  typesIn,
		arch:     descriptor,
		values:   exprlower.New(descriptor),
		diags:    diag.NewBag(0),
	}
}

func (fx *fixture) lowerFunc(t *testing.T, fnNode ast.NodeID) *ir.Func {
	t.Helper()
	f, err := LowerFunction(1, fnNode, fx.b.Arena, fx.symArena, fx.arch, fx.values, fx.diags)
	if err != nil {
		t.Fatalf("LowerFunction: %v", err)
	}
	return f
}

// reachableBlocks walks the CFG from f.Entry following jump/branch edges.
func reachableBlocks(f *ir.Func) map[ir.BlockID]bool {
	seen := map[ir.BlockID]bool{}
	var walk func(id ir.BlockID)
	walk = func(id ir.BlockID) {
		if id == ir.NoBlockID || seen[id] {
			return
		}
		seen[id] = true
		b := f.Block(id)
		if b == nil {
			return
		}
		switch b.Term.Kind {
		case ir.TermJump:
			walk(b.Term.Target)
		case ir.TermBranch:
			walk(b.Term.TrueTarget)
			walk(b.Term.FalseTarget)
		}
	}
	walk(f.Entry)
	return seen
}

// assertAllTerminated checks P1: every block reachable from entry has
// exactly one terminator.
func assertAllTerminated(t *testing.T, f *ir.Func) {
	t.Helper()
	for id := range reachableBlocks(f) {
		if b := f.Block(id); !b.Terminated() {
			t.Errorf("block %d is reachable from entry but not terminated", id)
		}
	}
}

// jumpChainEnd follows TermJump edges from id until it reaches a block with
// a different terminator (or a cycle), and returns that block's id.
func jumpChainEnd(f *ir.Func, id ir.BlockID) ir.BlockID {
	seen := map[ir.BlockID]bool{}
	for !seen[id] {
		seen[id] = true
		b := f.Block(id)
		if b == nil || b.Term.Kind != ir.TermJump {
			return id
		}
		id = b.Term.Target
	}
	return id
}
