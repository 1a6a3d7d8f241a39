package lower

import (
	"cflow/internal/ast"
	"cflow/internal/diag"
	"cflow/internal/ir"
)

// lowerBranch lowers an if/else: the condition terminates block with a
// conditional branch, each arm is lowered into its own block, and both
// arms converge on a shared continuation.
func (fl *funcLowerer) lowerBranch(block ir.BlockID, node ast.NodeID) (ir.BlockID, error) {
	n := fl.arena.Get(node)
	if len(n.Children) == 0 {
		return ir.NoBlockID, diagError(fl.diags, diag.CodeInvariant, n.Span, "Branch node missing condition child")
	}
	cond := n.Children[0]

	ifTrue := fl.f.NewBlock()
	ifFalse := fl.f.NewBlock()
	continuation := fl.f.NewBlock()

	if err := fl.values.LowerBranch(fl.f, block, cond, fl.arena, ifTrue, ifFalse); err != nil {
		return ir.NoBlockID, err
	}
	if err := fl.lowerCode(ifTrue, n.L, continuation); err != nil {
		return ir.NoBlockID, err
	}
	if err := fl.lowerCode(ifFalse, n.R, continuation); err != nil {
		return ir.NoBlockID, err
	}
	return continuation, nil
}
