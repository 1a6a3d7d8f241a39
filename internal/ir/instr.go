package ir

import (
	"cflow/internal/symbols"
	"cflow/internal/types"
)

// InstrKind enumerates the straight-line instruction forms a block can hold.
type InstrKind uint8

const (
	// InstrAssign stores an RValue into a Place; the expression lowerer
	// (spec.md §6's sub-contract) emits these for declarations,
	// assignments, and side-effect statements.
	InstrAssign InstrKind = iota
	// InstrCall invokes a function, optionally storing its result.
	InstrCall
	// InstrMove copies between two operands of equal width, used by
	// return-value materialization (spec.md §4.6).
	InstrMove
	// InstrMemCopy copies Size bytes from Src to the memory at Dst,
	// used by the large-aggregate return path (spec.md §4.6 step 4).
	InstrMemCopy
)

// Instr is one straight-line instruction appended to an open Block.
type Instr struct {
	Kind InstrKind

	Assign   AssignInstr
	Call     CallInstr
	Move     MoveInstr
	MemCopy  MemCopyInstr
}

// AssignInstr stores Src into Dst.
type AssignInstr struct {
	Dst Place
	Src RValue
}

// CallInstr invokes Callee with Args, optionally storing the result in Dst.
type CallInstr struct {
	HasDst bool
	Dst    Place
	Callee symbols.ID
	Args   []Operand
}

// MoveInstr copies Src into the register/place Dst.
type MoveInstr struct {
	Dst Operand
	Src Operand
}

// MemCopyInstr copies Size bytes starting at Src to the memory addressed by
// DstReg (a register holding a pointer).
type MemCopyInstr struct {
	DstReg string
	Src    Operand
	Size   int
}

// PlaceKind distinguishes where a Place's storage lives.
type PlaceKind uint8

const (
	PlaceLocal PlaceKind = iota
	PlaceGlobal
)

// Place is a storage location an instruction reads or writes.
type Place struct {
	Kind  PlaceKind
	Local LocalID
}

// OperandKind distinguishes how an Operand's value is produced.
type OperandKind uint8

const (
	OperandConst OperandKind = iota
	OperandPlace
	OperandRegister
	// OperandFrameMem addresses memory at a fixed offset from the frame
	// pointer, used for the large-return hidden-pointer slot
	// (spec.md §4.6 step 4: "offset 2·W from the frame base").
	OperandFrameMem
)

// Operand is a value location: a constant, a stack place, a register
// already holding a live value (as returned by the register allocator), or
// frame-relative memory.
type Operand struct {
	Kind        OperandKind
	Type        types.TypeID
	Const       Const
	Place       Place
	Register    string
	FrameOffset int32
}

// ConstKind enumerates literal forms.
type ConstKind uint8

const (
	ConstInt ConstKind = iota
	ConstBool
)

// Const is a literal value baked directly into an instruction.
type Const struct {
	Kind    ConstKind
	Int     int64
	Bool    bool
}

// RValueKind enumerates the right-hand-side forms an assignment can produce.
type RValueKind uint8

const (
	RValueUse RValueKind = iota
	RValueUnary
	RValueBinary
	RValueCall
)

// RValue is the right-hand side of an AssignInstr.
type RValue struct {
	Kind RValueKind

	Use    Operand
	Unary  UnaryOp
	Binary BinaryOp
	Call   CallInstr
}

// UnaryOp applies Op to Operand.
type UnaryOp struct {
	Op      string
	Operand Operand
}

// BinaryOp applies Op to Left and Right.
type BinaryOp struct {
	Op    string
	Left  Operand
	Right Operand
}
