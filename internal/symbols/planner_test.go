package symbols

import (
	"testing"

	"cflow/internal/types"
)

// wordSizer is a stand-in Sizer that charges every type a fixed width,
// regardless of its TypeID — enough to exercise the planner's offset
// arithmetic without pulling in the arch package.
type wordSizer struct{ width int }

func (s wordSizer) SizeOf(types.TypeID) int { return s.width }

func TestPlanAssignsDecreasingDisjointOffsets(t *testing.T) {
	arena := NewArena()
	a := arena.New(Symbol{Tag: IDSym, Name: "a"})
	b := arena.New(Symbol{Tag: IDSym, Name: "b"})
	root := arena.New(Symbol{Tag: ScopeSym, Children: []ID{a, b}})

	min := Plan(arena, wordSizer{width: 4}, root, 0)

	if min != -8 {
		t.Fatalf("expected total auto-storage of 8 bytes (min offset -8), got %d", min)
	}
	if off := arena.Get(a).Offset; off != -4 {
		t.Fatalf("expected a's offset -4, got %d", off)
	}
	if off := arena.Get(b).Offset; off != -8 {
		t.Fatalf("expected b's offset -8 (declared after a), got %d", off)
	}
}

func TestPlanRecursesNestedScopes(t *testing.T) {
	arena := NewArena()
	inner := arena.New(Symbol{Tag: IDSym, Name: "inner"})
	innerScope := arena.New(Symbol{Tag: ScopeSym, Children: []ID{inner}})
	outer := arena.New(Symbol{Tag: IDSym, Name: "outer"})
	root := arena.New(Symbol{Tag: ScopeSym, Children: []ID{outer, innerScope}})

	min := Plan(arena, wordSizer{width: 8}, root, 0)

	if off := arena.Get(outer).Offset; off != -8 {
		t.Fatalf("expected outer's offset -8, got %d", off)
	}
	if off := arena.Get(inner).Offset; off != -16 {
		t.Fatalf("expected inner's offset -16 (nested scope continues the running offset), got %d", off)
	}
	if min != -16 {
		t.Fatalf("expected min offset -16, got %d", min)
	}
}

func TestPlanSkipsNonScopeNonIDSymbols(t *testing.T) {
	arena := NewArena()
	alias := arena.New(Symbol{Tag: Other, Name: "TypeAlias"})
	id := arena.New(Symbol{Tag: IDSym, Name: "x"})
	root := arena.New(Symbol{Tag: ScopeSym, Children: []ID{alias, id}})

	min := Plan(arena, wordSizer{width: 4}, root, 0)

	if off := arena.Get(alias).Offset; off != 0 {
		t.Fatalf("expected the type alias to be skipped (offset untouched), got %d", off)
	}
	if off := arena.Get(id).Offset; off != -4 {
		t.Fatalf("expected x's offset -4, got %d", off)
	}
	if min != -4 {
		t.Fatalf("expected min offset -4, got %d", min)
	}
}

func TestPlanEmptyScopeReturnsOffsetUnchanged(t *testing.T) {
	arena := NewArena()
	root := arena.New(Symbol{Tag: ScopeSym})

	if got := Plan(arena, wordSizer{width: 4}, root, -16); got != -16 {
		t.Fatalf("expected an empty scope to return the input offset unchanged, got %d", got)
	}
}
