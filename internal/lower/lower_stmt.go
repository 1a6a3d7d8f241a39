package lower

import (
	"cflow/internal/ast"
	"cflow/internal/diag"
	"cflow/internal/ir"
)

// lowerLine is the statement dispatcher: it appends node's straight-line
// effect to block, possibly creating further blocks and edges, and returns
// the single open block the next sibling statement must be appended to.
func (fl *funcLowerer) lowerLine(block ir.BlockID, node ast.NodeID) (ir.BlockID, error) {
	n := fl.arena.Get(node)

	switch {
	case n.Tag == ast.Branch:
		return fl.lowerBranch(block, node)

	case n.Tag == ast.Loop:
		return fl.lowerLoop(block, node)

	case n.Tag == ast.Iter:
		return fl.lowerIter(block, node)

	case n.Tag == ast.Code:
		k := fl.f.NewBlock()
		if err := fl.lowerCode(block, node, k); err != nil {
			return ir.NoBlockID, err
		}
		return k, nil

	case n.Tag == ast.Return:
		if err := fl.lowerReturn(block, node); err != nil {
			return ir.NoBlockID, err
		}
		return fl.f.NewBlock(), nil

	case n.Tag == ast.Break:
		if fl.breakTo == ir.NoBlockID {
			return ir.NoBlockID, diagError(fl.diags, diag.CodeInvariant, n.Span, "break with no enclosing loop")
		}
		fl.f.SetTerm(block, ir.Terminator{Kind: ir.TermJump, Target: fl.breakTo})
		return fl.f.NewBlock(), nil

	case n.Tag == ast.Continue:
		if fl.continueTo == ir.NoBlockID {
			return ir.NoBlockID, diagError(fl.diags, diag.CodeInvariant, n.Span, "continue with no enclosing loop")
		}
		fl.f.SetTerm(block, ir.Terminator{Kind: ir.TermJump, Target: fl.continueTo})
		return fl.f.NewBlock(), nil

	case n.Tag == ast.Decl:
		return fl.values.LowerDecl(fl.f, block, node, fl.arena, fl.symArena)

	case ast.IsValueTag(n.Tag):
		return fl.values.LowerVoid(fl.f, block, node, fl.arena)

	case n.Tag == ast.Empty:
		return block, nil

	default:
		return ir.NoBlockID, diagError(fl.diags, diag.CodeUnhandledTag, n.Span, "unhandled AST tag %s at statement position", n.Tag)
	}
}

// lowerCode threads block through node's children in sibling order, then
// closes the running block with an unconditional jump to continuation —
// the compound's single exit point.
func (fl *funcLowerer) lowerCode(block ir.BlockID, node ast.NodeID, continuation ir.BlockID) error {
	n := fl.arena.Get(node)
	cur := block
	for _, child := range n.Children {
		next, err := fl.lowerLine(cur, child)
		if err != nil {
			return err
		}
		cur = next
	}
	fl.f.SetTerm(cur, ir.Terminator{Kind: ir.TermJump, Target: continuation})
	return nil
}
