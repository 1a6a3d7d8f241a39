package ast

import (
	"fmt"

	"fortio.org/safecast"

	"cflow/internal/source"
	"cflow/internal/symbols"
	"cflow/internal/types"
)

// NodeID indexes into an Arena. Zero is reserved as NoNodeID.
type NodeID uint32

// NoNodeID marks the absence of a node (e.g. a void return, a missing else).
const NoNodeID NodeID = 0

// IsValid reports whether id refers to a real node.
func (id NodeID) IsValid() bool {
	return id != NoNodeID
}

// Node is one entry of the AST. L and R serve the one/two-operand
// control-flow forms (Branch, Loop) and the operands of Binary and Assign;
// Children serves the variable-arity forms (Module, Code, Iter's
// init/cond/iter header, Call's arguments, Unary/Return's single operand
// slot).
type Node struct {
	Tag      Tag
	Span     source.Span
	L, R     NodeID
	Children []NodeID
	Symbol   symbols.ID
	DataType types.TypeID
	Value    string // literal text / operator name, tag-dependent
}

// Arena owns all Nodes of one compilation unit, addressed by stable ID.
// The front end builds it and hands it to the core read-only; the core
// holds no durable references into it after lowering completes.
type Arena struct {
	entries []Node
}

// NewArena creates an empty Arena with id 0 reserved as NoNodeID.
func NewArena() *Arena {
	return &Arena{entries: []Node{{}}}
}

// New allocates a Node and returns its ID.
func (a *Arena) New(n Node) NodeID {
	id, err := safecast.Conv[NodeID](len(a.entries))
	if err != nil {
		panic(fmt.Errorf("ast: arena exceeded NodeID range: %w", err))
	}
	a.entries = append(a.entries, n)
	return id
}

// Get returns the Node for id, or the zero Node if id is invalid.
func (a *Arena) Get(id NodeID) Node {
	if id == NoNodeID || int(id) >= len(a.entries) {
		return Node{}
	}
	return a.entries[id]
}

// Len returns the number of allocated nodes, including the reserved slot 0.
func (a *Arena) Len() int {
	return len(a.entries)
}

// SetDataType overwrites the attached type of an already-allocated node.
// The AST producer normally sets DataType at construction time during type
// checking; this exists for callers (fixture builders, tests) that build a
// tree before a type is known.
func (a *Arena) SetDataType(id NodeID, t types.TypeID) {
	if id == NoNodeID || int(id) >= len(a.entries) {
		return
	}
	a.entries[id].DataType = t
}
