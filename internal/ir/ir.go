// Package ir is the control-flow-graph intermediate representation the
// lowering core produces: basic blocks terminated by explicit jumps and
// conditional branches, plus per-function local/parameter storage already
// assigned by the storage planner. A downstream emitter (out of scope,
// spec.md §1) serializes this to assembly.
package ir

import (
	"fmt"

	"fortio.org/safecast"

	"cflow/internal/symbols"
)

// BlockID indexes into a Func's Blocks. Stable across the Func's lifetime,
// per the arena design note in spec.md §9 — never a raw pointer.
type BlockID int32

// NoBlockID marks the absence of a block.
const NoBlockID BlockID = -1

// LocalID indexes into a Func's Locals (both parameters and plain locals
// share this space, parameters first).
type LocalID int32

// NoLocalID marks the absence of a local.
const NoLocalID LocalID = -1

// FuncID indexes into a Module's Funcs.
type FuncID int32

// TermKind enumerates the closed set of block terminators (spec.md §3: a
// block is either unterminated ("open"), or terminated by exactly one of
// these).
type TermKind uint8

const (
	TermNone TermKind = iota
	TermJump
	TermBranch
	// TermReturn marks a function's epilogue block: the machine return
	// sequence itself, not a jump to anywhere else in this Func.
	TermReturn
)

// Terminator is a block's single control-flow exit.
type Terminator struct {
	Kind TermKind

	// TermJump
	Target BlockID

	// TermBranch
	Cond        Operand
	TrueTarget  BlockID
	FalseTarget BlockID
}

// Block is an append-only instruction sequence ending in one Terminator.
// Between creation and termination it is "open"; the statement lowerer
// holds at most one open block per live control path (spec.md §3).
type Block struct {
	ID     BlockID
	Instrs []Instr
	Term   Terminator
}

// Terminated reports whether the block already has a non-None terminator.
// After termination a block is immutable — Emit/SetTerm below enforce this.
func (b *Block) Terminated() bool {
	return b != nil && b.Term.Kind != TermNone
}

// Local is one parameter or local variable of a Func, already placed by the
// storage planner (spec.md §4.1) or the function lowerer's parameter walk
// (spec.md §4.7 step 3).
type Local struct {
	Sym    symbols.ID
	Name   string
	Offset int32
}

// Func is one lowered function: its blocks, its locals, and the entry point.
type Func struct {
	ID    FuncID
	Sym   symbols.ID
	Name  string
	Label string

	Locals     []Local
	ParamCount int

	Blocks []Block
	Entry  BlockID

	// FrameSize is the total stack frame size in bytes, the most negative
	// offset any Local was assigned by the storage planner, negated.
	FrameSize int32
	// Epilogue is the block the function lowerer routes every return path
	// to; its terminator is always TermReturn.
	Epilogue BlockID
}

// Module owns every Func of one compilation unit, plus one storage entry
// per module-scope Decl (spec.md §4.8). Initializers of module-scope Decls
// are not recorded here.
type Module struct {
	Funcs   []*Func
	Globals []Local
}

// NewBlock is the block factory of spec.md §3: it registers a fresh, open
// block with its owning Func and returns a stable handle to it.
func (f *Func) NewBlock() BlockID {
	id, err := safecast.Conv[BlockID](len(f.Blocks))
	if err != nil {
		panic(fmt.Errorf("ir: func exceeded BlockID range: %w", err))
	}
	f.Blocks = append(f.Blocks, Block{ID: id, Term: Terminator{Kind: TermNone}})
	return id
}

// Block returns a mutable pointer to the block at id, or nil if id is out
// of range.
func (f *Func) Block(id BlockID) *Block {
	if id < 0 || int(id) >= len(f.Blocks) {
		return nil
	}
	return &f.Blocks[id]
}

// Emit appends ins to the open block at id. A no-op on a terminated or
// missing block, so callers never need to guard every call site.
func (f *Func) Emit(id BlockID, ins Instr) {
	b := f.Block(id)
	if b == nil || b.Terminated() {
		return
	}
	b.Instrs = append(b.Instrs, ins)
}

// SetTerm terminates the open block at id. A no-op if the block is already
// terminated, so a caller can unconditionally call SetTerm after lowering a
// compound's last statement without checking for early returns first.
func (f *Func) SetTerm(id BlockID, term Terminator) {
	b := f.Block(id)
	if b == nil || b.Terminated() {
		return
	}
	b.Term = term
}
