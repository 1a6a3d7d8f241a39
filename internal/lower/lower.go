// Package lower is the statement/control-flow lowering core: it walks a
// type-checked, symbol-resolved AST and produces a control-flow-graph IR of
// basic blocks, assigning stack storage to every local and parameter along
// the way. Individual expressions are out of scope here — lowering defers to
// a ValueLowerer for everything below statement granularity.
package lower

import (
	"fmt"

	"cflow/internal/arch"
	"cflow/internal/ast"
	"cflow/internal/diag"
	"cflow/internal/ir"
	"cflow/internal/regalloc"
	"cflow/internal/source"
	"cflow/internal/symbols"
)

// ValueLowerer is the expression-lowering sub-contract the statement core
// relies on but does not implement. A real implementation dispatches on the
// value-tag family (ast.IsValueTag) and may split the current block, which
// is why every method returns (or mutates) the current block explicitly.
type ValueLowerer interface {
	// LowerValue lowers node for its result: the returned Operand holds the
	// value, and the returned BlockID is the (possibly new) current block.
	LowerValue(f *ir.Func, block ir.BlockID, node ast.NodeID, arena *ast.Arena) (ir.Operand, ir.BlockID, error)
	// LowerVoid lowers node for side effects only, discarding any result.
	LowerVoid(f *ir.Func, block ir.BlockID, node ast.NodeID, arena *ast.Arena) (ir.BlockID, error)
	// LowerBranch lowers a condition and terminates block with a conditional
	// branch to trueBB/falseBB.
	LowerBranch(f *ir.Func, block ir.BlockID, node ast.NodeID, arena *ast.Arena, trueBB, falseBB ir.BlockID) error
	// LowerDecl lowers a local Decl, appending a Local to f and any
	// initializer code to block.
	LowerDecl(f *ir.Func, block ir.BlockID, node ast.NodeID, arena *ast.Arena, symArena *symbols.Arena) (ir.BlockID, error)
	// LowerGlobalDecl lowers a module-scope Decl directly into m's globals.
	LowerGlobalDecl(m *ir.Module, arena *ast.Arena, symArena *symbols.Arena, node ast.NodeID) error
}

// funcLowerer carries the per-function state threaded through statement
// lowering: the IR being built, the read-only AST and symbol table, the
// target descriptor, the expression-lowering collaborator, a register
// allocator scoped to this one function, and the control-flow context
// (returnTo/breakTo/continueTo) described in spec terms as a mutable record
// with save/restore-on-entry discipline. Using plain struct fields for the
// latter and restoring them by hand around Loop/Iter lowering is exactly
// that discipline — the Go call stack does the stacking for us.
type funcLowerer struct {
	f        *ir.Func
	arena    *ast.Arena
	symArena *symbols.Arena
	arch     arch.Descriptor
	values   ValueLowerer
	regs     *regalloc.Allocator
	diags    *diag.Bag

	returnTo   ir.BlockID
	breakTo    ir.BlockID
	continueTo ir.BlockID
}

// LowerFunction orchestrates one FnImpl: mangles the symbol, assigns
// parameter offsets and runs the storage planner, creates the entry and
// epilogue blocks, lowers the body, and closes the epilogue with a return
// terminator.
func LowerFunction(id ir.FuncID, node ast.NodeID, arena *ast.Arena, symArena *symbols.Arena, descriptor arch.Descriptor, values ValueLowerer, diags *diag.Bag) (*ir.Func, error) {
	n := arena.Get(node)
	sym := symArena.Get(n.Symbol)
	if sym == nil {
		return nil, diagError(diags, diag.CodeInvariant, n.Span, "FnImpl node carries no symbol")
	}
	descriptor.Mangle(sym)

	// sym.Type on a function symbol names its return type directly — this
	// trimmed symbol table carries no separate function-type shape.
	w := int32(descriptor.WordSize())
	lastOffset := 2 * w
	if descriptor.SizeOf(sym.Type) > int(w) {
		lastOffset += w
	}

	var locals []ir.Local
	for _, childID := range sym.Children {
		child := symArena.Get(childID)
		if child == nil || child.Tag != symbols.ParamSym {
			break
		}
		child.Offset = lastOffset
		locals = append(locals, ir.Local{Sym: childID, Name: child.Name, Offset: lastOffset})
		lastOffset += int32(descriptor.SizeOf(child.Type))
	}

	minOffset := symbols.Plan(symArena, descriptor, n.Symbol, 0)

	f := &ir.Func{
		ID:         id,
		Sym:        n.Symbol,
		Name:       sym.Name,
		Label:      sym.Label,
		Locals:     locals,
		ParamCount: len(locals),
		FrameSize:  -minOffset,
	}
	f.Entry = f.NewBlock()
	f.Epilogue = f.NewBlock()

	fl := &funcLowerer{
		f:          f,
		arena:      arena,
		symArena:   symArena,
		arch:       descriptor,
		values:     values,
		regs:       descriptor.GeneralPurposeAllocator(),
		diags:      diags,
		returnTo:   f.Epilogue,
		breakTo:    ir.NoBlockID,
		continueTo: ir.NoBlockID,
	}

	if err := fl.lowerCode(f.Entry, n.R, f.Epilogue); err != nil {
		return nil, err
	}
	f.SetTerm(f.Epilogue, ir.Terminator{Kind: ir.TermReturn})
	return f, nil
}

func diagError(diags *diag.Bag, code diag.Code, span source.Span, format string, args ...any) error {
	d := diag.Diagnostic{Severity: diag.SevError, Code: code, Message: fmt.Sprintf(format, args...), Span: span}
	if diags != nil {
		diags.Add(d)
	}
	return d
}
