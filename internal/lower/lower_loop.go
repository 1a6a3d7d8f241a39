package lower

import (
	"cflow/internal/ast"
	"cflow/internal/ir"
)

// lowerLoop lowers while and do-while, distinguished by AST shape: if the
// left child is itself a Code node the construct is do-while (L=body,
// R=cond); otherwise it is while (L=cond, R=body).
func (fl *funcLowerer) lowerLoop(block ir.BlockID, node ast.NodeID) (ir.BlockID, error) {
	n := fl.arena.Get(node)

	body := fl.f.NewBlock()
	loopCheck := fl.f.NewBlock()
	continuation := fl.f.NewBlock()

	var cond, code ast.NodeID
	if fl.arena.Get(n.L).Tag == ast.Code {
		code, cond = n.L, n.R
		fl.f.SetTerm(block, ir.Terminator{Kind: ir.TermJump, Target: body})
	} else {
		cond, code = n.L, n.R
		if err := fl.values.LowerBranch(fl.f, block, cond, fl.arena, body, continuation); err != nil {
			return ir.NoBlockID, err
		}
	}

	savedBreak, savedContinue := fl.breakTo, fl.continueTo
	fl.breakTo, fl.continueTo = continuation, loopCheck
	err := fl.lowerCode(body, code, loopCheck)
	fl.breakTo, fl.continueTo = savedBreak, savedContinue
	if err != nil {
		return ir.NoBlockID, err
	}

	if err := fl.values.LowerBranch(fl.f, loopCheck, cond, fl.arena, body, continuation); err != nil {
		return ir.NoBlockID, err
	}
	return continuation, nil
}
