package irprint

import (
	"fmt"
	"strings"

	"cflow/internal/ir"
)

func formatInstr(in ir.Instr) string {
	switch in.Kind {
	case ir.InstrAssign:
		return fmt.Sprintf("%s = %s", formatPlace(in.Assign.Dst), formatRValue(in.Assign.Src))
	case ir.InstrCall:
		return formatCall(in.Call)
	case ir.InstrMove:
		return fmt.Sprintf("move %s, %s", formatOperand(in.Move.Dst), formatOperand(in.Move.Src))
	case ir.InstrMemCopy:
		return fmt.Sprintf("memcopy [%s], %s, %d", in.MemCopy.DstReg, formatOperand(in.MemCopy.Src), in.MemCopy.Size)
	default:
		return fmt.Sprintf("<unknown instr kind %d>", in.Kind)
	}
}

func formatCall(c ir.CallInstr) string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = formatOperand(a)
	}
	call := fmt.Sprintf("call sym%d(%s)", c.Callee, strings.Join(args, ", "))
	if c.HasDst {
		return fmt.Sprintf("%s = %s", formatPlace(c.Dst), call)
	}
	return call
}

func formatRValue(r ir.RValue) string {
	switch r.Kind {
	case ir.RValueUse:
		return formatOperand(r.Use)
	case ir.RValueUnary:
		return fmt.Sprintf("%s%s", r.Unary.Op, formatOperand(r.Unary.Operand))
	case ir.RValueBinary:
		return fmt.Sprintf("%s %s %s", formatOperand(r.Binary.Left), r.Binary.Op, formatOperand(r.Binary.Right))
	case ir.RValueCall:
		return formatCall(r.Call)
	default:
		return fmt.Sprintf("<unknown rvalue kind %d>", r.Kind)
	}
}

func formatPlace(p ir.Place) string {
	switch p.Kind {
	case ir.PlaceLocal:
		return fmt.Sprintf("local%d", p.Local)
	case ir.PlaceGlobal:
		return fmt.Sprintf("global%d", p.Local)
	default:
		return fmt.Sprintf("<unknown place kind %d>", p.Kind)
	}
}

func formatOperand(op ir.Operand) string {
	switch op.Kind {
	case ir.OperandConst:
		switch op.Const.Kind {
		case ir.ConstBool:
			return fmt.Sprintf("%t", op.Const.Bool)
		default:
			return fmt.Sprintf("%d", op.Const.Int)
		}
	case ir.OperandPlace:
		return formatPlace(op.Place)
	case ir.OperandRegister:
		return op.Register
	case ir.OperandFrameMem:
		return fmt.Sprintf("[fp+%d]", op.FrameOffset)
	default:
		return fmt.Sprintf("<unknown operand kind %d>", op.Kind)
	}
}

func formatTerm(t ir.Terminator) string {
	switch t.Kind {
	case ir.TermNone:
		return "<unterminated>"
	case ir.TermJump:
		return fmt.Sprintf("jump bb%d", t.Target)
	case ir.TermBranch:
		return fmt.Sprintf("branch %s, bb%d, bb%d", formatOperand(t.Cond), t.TrueTarget, t.FalseTarget)
	case ir.TermReturn:
		return "return"
	default:
		return fmt.Sprintf("<unknown terminator kind %d>", t.Kind)
	}
}
