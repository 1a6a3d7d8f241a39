package exprlower

import (
	"fmt"
	"strconv"

	"cflow/internal/ast"
	"cflow/internal/ir"
	"cflow/internal/types"
)

// LowerValue lowers node for its result, returning the operand holding the
// value and the (possibly split) current block.
func (lo *Lowerer) LowerValue(f *ir.Func, block ir.BlockID, node ast.NodeID, arena *ast.Arena) (ir.Operand, ir.BlockID, error) {
	n := arena.Get(node)

	switch n.Tag {
	case ast.IntLit:
		v, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return ir.Operand{}, block, fmt.Errorf("invalid integer literal %q: %w", n.Value, err)
		}
		return ir.Operand{Kind: ir.OperandConst, Type: n.DataType, Const: ir.Const{Kind: ir.ConstInt, Int: v}}, block, nil

	case ast.BoolLit:
		return ir.Operand{Kind: ir.OperandConst, Type: n.DataType, Const: ir.Const{Kind: ir.ConstBool, Bool: n.Value == "true"}}, block, nil

	case ast.VarRef:
		local, ok := lo.localFor(f, n.Symbol)
		if !ok {
			return ir.Operand{}, block, fmt.Errorf("VarRef to symbol %d with no bound local", n.Symbol)
		}
		return ir.Operand{Kind: ir.OperandPlace, Type: n.DataType, Place: ir.Place{Kind: ir.PlaceLocal, Local: local}}, block, nil

	case ast.Unary:
		if len(n.Children) == 0 {
			return ir.Operand{}, block, fmt.Errorf("Unary node missing operand")
		}
		operand, cur, err := lo.LowerValue(f, block, n.Children[0], arena)
		if err != nil {
			return ir.Operand{}, cur, err
		}
		dst := lo.newTemp(f)
		f.Emit(cur, ir.Instr{Kind: ir.InstrAssign, Assign: ir.AssignInstr{
			Dst: ir.Place{Kind: ir.PlaceLocal, Local: dst},
			Src: ir.RValue{Kind: ir.RValueUnary, Unary: ir.UnaryOp{Op: n.Value, Operand: operand}},
		}})
		return ir.Operand{Kind: ir.OperandPlace, Type: n.DataType, Place: ir.Place{Kind: ir.PlaceLocal, Local: dst}}, cur, nil

	case ast.Binary:
		left, cur, err := lo.LowerValue(f, block, n.L, arena)
		if err != nil {
			return ir.Operand{}, cur, err
		}
		right, cur, err := lo.LowerValue(f, cur, n.R, arena)
		if err != nil {
			return ir.Operand{}, cur, err
		}
		dst := lo.newTemp(f)
		f.Emit(cur, ir.Instr{Kind: ir.InstrAssign, Assign: ir.AssignInstr{
			Dst: ir.Place{Kind: ir.PlaceLocal, Local: dst},
			Src: ir.RValue{Kind: ir.RValueBinary, Binary: ir.BinaryOp{Op: n.Value, Left: left, Right: right}},
		}})
		return ir.Operand{Kind: ir.OperandPlace, Type: n.DataType, Place: ir.Place{Kind: ir.PlaceLocal, Local: dst}}, cur, nil

	case ast.Call:
		return lo.lowerCall(f, block, n, arena)

	case ast.Assign:
		return lo.lowerAssign(f, block, n, arena)

	default:
		return ir.Operand{}, block, fmt.Errorf("unhandled value tag %s", n.Tag)
	}
}

func (lo *Lowerer) lowerCall(f *ir.Func, block ir.BlockID, n ast.Node, arena *ast.Arena) (ir.Operand, ir.BlockID, error) {
	cur := block
	args := make([]ir.Operand, 0, len(n.Children))
	for _, argNode := range n.Children {
		v, next, err := lo.LowerValue(f, cur, argNode, arena)
		if err != nil {
			return ir.Operand{}, next, err
		}
		args = append(args, v)
		cur = next
	}

	call := ir.CallInstr{Callee: n.Symbol, Args: args}
	if n.DataType == types.NoTypeID {
		f.Emit(cur, ir.Instr{Kind: ir.InstrCall, Call: call})
		return ir.Operand{}, cur, nil
	}

	dst := lo.newTemp(f)
	call.HasDst = true
	call.Dst = ir.Place{Kind: ir.PlaceLocal, Local: dst}
	f.Emit(cur, ir.Instr{Kind: ir.InstrCall, Call: call})
	return ir.Operand{Kind: ir.OperandPlace, Type: n.DataType, Place: call.Dst}, cur, nil
}

func (lo *Lowerer) lowerAssign(f *ir.Func, block ir.BlockID, n ast.Node, arena *ast.Arena) (ir.Operand, ir.BlockID, error) {
	targetNode, valueNode := n.L, n.R

	rhs, cur, err := lo.LowerValue(f, block, valueNode, arena)
	if err != nil {
		return ir.Operand{}, cur, err
	}

	targetSym := arena.Get(targetNode).Symbol
	local, ok := lo.localFor(f, targetSym)
	if !ok {
		return ir.Operand{}, cur, fmt.Errorf("assignment to symbol %d with no bound local", targetSym)
	}
	dst := ir.Place{Kind: ir.PlaceLocal, Local: local}
	f.Emit(cur, ir.Instr{Kind: ir.InstrAssign, Assign: ir.AssignInstr{
		Dst: dst,
		Src: ir.RValue{Kind: ir.RValueUse, Use: rhs},
	}})
	return rhs, cur, nil
}

// LowerVoid lowers node for side effects only, discarding its result.
func (lo *Lowerer) LowerVoid(f *ir.Func, block ir.BlockID, node ast.NodeID, arena *ast.Arena) (ir.BlockID, error) {
	_, cur, err := lo.LowerValue(f, block, node, arena)
	return cur, err
}
