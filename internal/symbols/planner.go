package symbols

import "cflow/internal/types"

// Sizer is the minimal slice of arch.Descriptor the storage planner needs.
// Kept as a local interface (rather than importing internal/arch directly)
// so arch can depend on symbols for Mangle without a cycle.
type Sizer interface {
	SizeOf(types.TypeID) int
}

// Plan assigns a stack-relative offset to every IDSym symbol reachable
// through nested ScopeSym children of root, walking depth-first in
// declaration order. It returns the minimum (most negative) offset used;
// its magnitude is the function's total auto-storage requirement.
//
// Symbols tagged neither ScopeSym nor IDSym (type aliases, tag names, ...)
// are skipped, not failures. An empty scope returns offset unchanged.
func Plan(arena *Arena, sizer Sizer, root ID, offset int32) int32 {
	sym := arena.Get(root)
	if sym == nil {
		return offset
	}
	for _, childID := range sym.Children {
		child := arena.Get(childID)
		if child == nil {
			continue
		}
		switch child.Tag {
		case IDSym:
			offset -= int32(sizer.SizeOf(child.Type))
			child.Offset = offset
		case ScopeSym:
			offset = Plan(arena, sizer, childID, offset)
		default:
			// type aliases, tags, etc: not a storage concern.
		}
	}
	return offset
}
