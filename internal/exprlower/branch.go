package exprlower

import (
	"cflow/internal/ast"
	"cflow/internal/ir"
)

// LowerBranch lowers a condition and terminates block with a conditional
// branch to trueBB/falseBB. Logical `&&`, `||`, and `!` get genuine
// short-circuit treatment: they split the block rather than materializing
// an intermediate boolean operand, which is the block-splitting behavior
// spec.md §9 calls out as a frequent bug class to get right.
func (lo *Lowerer) LowerBranch(f *ir.Func, block ir.BlockID, node ast.NodeID, arena *ast.Arena, trueBB, falseBB ir.BlockID) error {
	n := arena.Get(node)

	if n.Tag == ast.Binary && n.Value == "&&" {
		mid := f.NewBlock()
		if err := lo.LowerBranch(f, block, n.L, arena, mid, falseBB); err != nil {
			return err
		}
		return lo.LowerBranch(f, mid, n.R, arena, trueBB, falseBB)
	}
	if n.Tag == ast.Binary && n.Value == "||" {
		mid := f.NewBlock()
		if err := lo.LowerBranch(f, block, n.L, arena, trueBB, mid); err != nil {
			return err
		}
		return lo.LowerBranch(f, mid, n.R, arena, trueBB, falseBB)
	}
	if n.Tag == ast.Unary && n.Value == "!" && len(n.Children) > 0 {
		return lo.LowerBranch(f, block, n.Children[0], arena, falseBB, trueBB)
	}

	cond, cur, err := lo.LowerValue(f, block, node, arena)
	if err != nil {
		return err
	}
	f.SetTerm(cur, ir.Terminator{Kind: ir.TermBranch, Cond: cond, TrueTarget: trueBB, FalseTarget: falseBB})
	return nil
}
