package lower

import (
	"cflow/internal/ast"
	"cflow/internal/diag"
	"cflow/internal/ir"
)

// lowerIter lowers a C-style for loop: Children[0..2] are init/cond/iter,
// L is the body.
func (fl *funcLowerer) lowerIter(block ir.BlockID, node ast.NodeID) (ir.BlockID, error) {
	n := fl.arena.Get(node)
	if len(n.Children) < 3 {
		return ir.NoBlockID, diagError(fl.diags, diag.CodeInvariant, n.Span, "Iter node missing init/cond/iter children")
	}
	initNode, condNode, iterNode := n.Children[0], n.Children[1], n.Children[2]
	code := n.L

	body := fl.f.NewBlock()
	iterate := fl.f.NewBlock()
	continuation := fl.f.NewBlock()

	cur, err := fl.lowerForHeader(block, initNode)
	if err != nil {
		return ir.NoBlockID, err
	}

	if err := fl.values.LowerBranch(fl.f, cur, condNode, fl.arena, body, continuation); err != nil {
		return ir.NoBlockID, err
	}

	savedBreak, savedContinue := fl.breakTo, fl.continueTo
	fl.breakTo, fl.continueTo = continuation, iterate
	err = fl.lowerCode(body, code, iterate)
	fl.breakTo, fl.continueTo = savedBreak, savedContinue
	if err != nil {
		return ir.NoBlockID, err
	}

	iterEnd, err := fl.lowerForHeader(iterate, iterNode)
	if err != nil {
		return ir.NoBlockID, err
	}

	if err := fl.values.LowerBranch(fl.f, iterEnd, condNode, fl.arena, body, continuation); err != nil {
		return ir.NoBlockID, err
	}
	return continuation, nil
}

// lowerForHeader lowers one of the for-header's init/iter slots: a Decl uses
// the declaration lowerer, anything else is lowered in discard mode. A
// NoNodeID slot (an omitted init or iter clause) passes block through
// unchanged.
func (fl *funcLowerer) lowerForHeader(block ir.BlockID, node ast.NodeID) (ir.BlockID, error) {
	if !node.IsValid() {
		return block, nil
	}
	if fl.arena.Get(node).Tag == ast.Decl {
		return fl.values.LowerDecl(fl.f, block, node, fl.arena, fl.symArena)
	}
	return fl.values.LowerVoid(fl.f, block, node, fl.arena)
}
