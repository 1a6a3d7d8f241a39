package exprlower

import (
	"fmt"

	"cflow/internal/ast"
	"cflow/internal/ir"
	"cflow/internal/symbols"
)

// LowerDecl lowers a local Decl: binds the symbol to a fresh Local (its
// Offset was already assigned by the storage planner) and, if present,
// lowers and stores the initializer.
func (lo *Lowerer) LowerDecl(f *ir.Func, block ir.BlockID, node ast.NodeID, arena *ast.Arena, symArena *symbols.Arena) (ir.BlockID, error) {
	n := arena.Get(node)
	local := lo.bindLocal(f, n.Symbol, symArena.Get(n.Symbol))

	var initNode ast.NodeID
	if len(n.Children) > 0 {
		initNode = n.Children[0]
	}
	if !initNode.IsValid() {
		return block, nil
	}

	val, cur, err := lo.LowerValue(f, block, initNode, arena)
	if err != nil {
		return ir.NoBlockID, err
	}
	f.Emit(cur, ir.Instr{Kind: ir.InstrAssign, Assign: ir.AssignInstr{
		Dst: ir.Place{Kind: ir.PlaceLocal, Local: local},
		Src: ir.RValue{Kind: ir.RValueUse, Use: val},
	}})
	return cur, nil
}

// LowerGlobalDecl lowers a module-scope Decl directly into the module's
// global storage list. Module-scope initializers beyond static placement
// are an emitter concern (spec.md §1's IR consumer), not this core's.
func (lo *Lowerer) LowerGlobalDecl(m *ir.Module, arena *ast.Arena, symArena *symbols.Arena, node ast.NodeID) error {
	n := arena.Get(node)
	sym := symArena.Get(n.Symbol)
	name := ""
	if sym != nil {
		name = sym.Name
	}
	m.Globals = append(m.Globals, ir.Local{Sym: n.Symbol, Name: name})
	return nil
}

// bindLocal returns the LocalID already bound to symID, or appends and
// binds a fresh one.
func (lo *Lowerer) bindLocal(f *ir.Func, symID symbols.ID, sym *symbols.Symbol) ir.LocalID {
	if id, ok := lo.localFor(f, symID); ok {
		return id
	}
	name, offset := "", int32(0)
	if sym != nil {
		name, offset = sym.Name, sym.Offset
	}
	id := ir.LocalID(len(f.Locals))
	f.Locals = append(f.Locals, ir.Local{Sym: symID, Name: name, Offset: offset})
	return id
}

// newTemp allocates a compiler-internal local with no front-end symbol, for
// intermediate expression results.
func (lo *Lowerer) newTemp(f *ir.Func) ir.LocalID {
	lo.tempCount++
	id := ir.LocalID(len(f.Locals))
	f.Locals = append(f.Locals, ir.Local{Sym: symbols.NoID, Name: fmt.Sprintf("%%t%d", lo.tempCount)})
	return id
}

// localFor looks up the Local index already bound to symID.
func (lo *Lowerer) localFor(f *ir.Func, symID symbols.ID) (ir.LocalID, bool) {
	for i, l := range f.Locals {
		if l.Sym == symID && symID != symbols.NoID {
			return ir.LocalID(i), true
		}
	}
	return ir.NoLocalID, false
}
