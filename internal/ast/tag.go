// Package ast is the read-only tree the lowering core consumes. The AST is
// built and owned by the (external) parser; this package only supplies the
// arena and tag vocabulary the core's dispatch is written against.
package ast

// Tag discriminates an AST node. The statement-position subset is closed
// (spec.md §3); value tags are an open family recognized via IsValueTag.
type Tag uint8

const (
	// Invalid marks an unset node; never produced by a well-formed tree.
	Invalid Tag = iota

	// Module is the top-level driver node; its Children are declarations.
	Module
	// Using re-exports another module; R is the referent Module node, or
	// NoNodeID if the import has no forwarding target.
	Using
	// FnImpl is a function definition: Symbol names the function, R is the
	// body (a Code node).
	FnImpl
	// Decl is a local (or, at module scope, global) declaration.
	Decl
	// Code is a compound statement; Children are the statements in order.
	Code
	// Branch is if/else: L is the true arm, R the false arm (both Code;
	// an absent `else` is an empty Code synthesized by the front end).
	// Children[0] is the condition.
	Branch
	// Loop is while / do-while, distinguished at lowering time by shape:
	// L is Code for do-while (L=body, R=cond); otherwise while (L=cond,
	// R=body).
	Loop
	// Iter is a C-style for: Children[0..2] are init/cond/iter, L is the body.
	Iter
	// Return optionally carries a value in Children[0].
	Return
	// Break jumps to the innermost loop's exit block.
	Break
	// Continue jumps to the innermost loop's re-test block.
	Continue
	// Empty is a no-op statement.
	Empty

	// firstValueTag marks the start of the open expression-tag family;
	// IsValueTag reports true for any tag after this one.
	firstValueTag

	// IntLit is an integer literal; Value holds its text.
	IntLit
	// BoolLit is a boolean literal; Value is "true" or "false".
	BoolLit
	// VarRef reads a symbol (Symbol names it).
	VarRef
	// Unary is a unary operator; Value names the op, Children[0] the operand.
	Unary
	// Binary is a binary operator; Value names the op, L and R the operands.
	Binary
	// Call invokes Symbol with Children as arguments.
	Call
	// Assign stores R into the place named by L.
	Assign
)

// IsValueTag reports whether t belongs to the open expression-tag family.
func IsValueTag(t Tag) bool {
	return t > firstValueTag
}

func (t Tag) String() string {
	switch t {
	case Invalid:
		return "Invalid"
	case Module:
		return "Module"
	case Using:
		return "Using"
	case FnImpl:
		return "FnImpl"
	case Decl:
		return "Decl"
	case Code:
		return "Code"
	case Branch:
		return "Branch"
	case Loop:
		return "Loop"
	case Iter:
		return "Iter"
	case Return:
		return "Return"
	case Break:
		return "Break"
	case Continue:
		return "Continue"
	case Empty:
		return "Empty"
	case IntLit:
		return "IntLit"
	case BoolLit:
		return "BoolLit"
	case VarRef:
		return "VarRef"
	case Unary:
		return "Unary"
	case Binary:
		return "Binary"
	case Call:
		return "Call"
	case Assign:
		return "Assign"
	default:
		return "Unknown"
	}
}
