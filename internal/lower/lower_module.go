package lower

import (
	"cflow/internal/arch"
	"cflow/internal/ast"
	"cflow/internal/diag"
	"cflow/internal/ir"
	"cflow/internal/symbols"
)

// LowerModule drives top-level lowering: it dispatches Using re-exports,
// FnImpl definitions, and module-scope Decls over root's children. Cycles
// among Using re-exports are the front-end name resolver's responsibility;
// this walk trusts that they cannot occur.
func LowerModule(root ast.NodeID, arena *ast.Arena, symArena *symbols.Arena, descriptor arch.Descriptor, values ValueLowerer, diags *diag.Bag) (*ir.Module, error) {
	m := &ir.Module{}
	nextFuncID := ir.FuncID(1)

	var visit func(node ast.NodeID) error
	visit = func(node ast.NodeID) error {
		mod := arena.Get(node)
		if mod.Tag != ast.Module {
			return diagError(diags, diag.CodeUnhandledTag, mod.Span, "expected Module at top level, got %s", mod.Tag)
		}
		for _, childID := range mod.Children {
			n := arena.Get(childID)
			switch n.Tag {
			case ast.Using:
				if n.R.IsValid() {
					if err := visit(n.R); err != nil {
						return err
					}
				}
			case ast.FnImpl:
				f, err := LowerFunction(nextFuncID, childID, arena, symArena, descriptor, values, diags)
				if err != nil {
					return err
				}
				nextFuncID++
				m.Funcs = append(m.Funcs, f)
			case ast.Decl:
				if err := values.LowerGlobalDecl(m, arena, symArena, childID); err != nil {
					return err
				}
			case ast.Empty:
				// no-op
			default:
				return diagError(diags, diag.CodeUnhandledTag, n.Span, "unhandled AST tag %s at module position", n.Tag)
			}
		}
		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}
	return m, nil
}
