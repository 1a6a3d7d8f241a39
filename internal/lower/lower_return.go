package lower

import (
	"cflow/internal/ast"
	"cflow/internal/diag"
	"cflow/internal/ir"
)

// lowerReturn lowers a Return statement, terminating block with a jump to
// the function's epilogue after materializing the return value (if any)
// per the target's small/large return-value ABI.
func (fl *funcLowerer) lowerReturn(block ir.BlockID, node ast.NodeID) error {
	n := fl.arena.Get(node)

	var valueNode ast.NodeID
	if len(n.Children) > 0 {
		valueNode = n.Children[0]
	}
	if !valueNode.IsValid() {
		fl.f.SetTerm(block, ir.Terminator{Kind: ir.TermJump, Target: fl.returnTo})
		return nil
	}

	op, cur, err := fl.values.LowerValue(fl.f, block, valueNode, fl.arena)
	if err != nil {
		return err
	}

	retType := fl.arena.Get(valueNode).DataType
	w := fl.arch.WordSize()
	size := fl.arch.SizeOf(retType)
	retReg := fl.arch.ReturnRegisterName()

	if size <= w {
		if reg, ok := fl.regs.RequestNamed(retReg, size*8); ok {
			fl.f.Emit(cur, ir.Instr{Kind: ir.InstrMove, Move: ir.MoveInstr{
				Dst: ir.Operand{Kind: ir.OperandRegister, Register: reg.Name},
				Src: op,
			}})
			fl.regs.Free(reg)
		} else if !fl.regs.IsLive(retReg) || op.Kind != ir.OperandRegister || op.Register != retReg {
			return diagError(fl.diags, diag.CodeRegisterAllocation, n.Span, "return value register %s unavailable", retReg)
		}
	} else {
		scratch, ok := fl.regs.Request(w * 8)
		if !ok {
			return diagError(fl.diags, diag.CodeRegisterAllocation, n.Span, "no scratch register for large return")
		}
		fl.f.Emit(cur, ir.Instr{Kind: ir.InstrMove, Move: ir.MoveInstr{
			Dst: ir.Operand{Kind: ir.OperandRegister, Register: scratch.Name},
			Src: ir.Operand{Kind: ir.OperandFrameMem, FrameOffset: 2 * int32(w)},
		}})
		fl.f.Emit(cur, ir.Instr{Kind: ir.InstrMemCopy, MemCopy: ir.MemCopyInstr{
			DstReg: scratch.Name,
			Src:    op,
			Size:   size,
		}})
		fl.f.Emit(cur, ir.Instr{Kind: ir.InstrMove, Move: ir.MoveInstr{
			Dst: ir.Operand{Kind: ir.OperandRegister, Register: retReg},
			Src: ir.Operand{Kind: ir.OperandRegister, Register: scratch.Name},
		}})
		fl.regs.Free(scratch)
	}

	fl.f.SetTerm(cur, ir.Terminator{Kind: ir.TermJump, Target: fl.returnTo})
	return nil
}
