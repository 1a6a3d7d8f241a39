package ast

import "cflow/internal/symbols"

// Builder is a thin convenience layer over Arena for hand-constructing
// fixture trees in tests (and, eventually, for an AST producer to target).
type Builder struct {
	Arena *Arena
}

// NewBuilder creates a Builder over a fresh Arena.
func NewBuilder() *Builder {
	return &Builder{Arena: NewArena()}
}

// Leaf allocates a childless node (Empty, Break, Continue, ...).
func (b *Builder) Leaf(tag Tag) NodeID {
	return b.Arena.New(Node{Tag: tag})
}

// Code allocates a compound-statement node over the given statements.
func (b *Builder) Code(stmts ...NodeID) NodeID {
	return b.Arena.New(Node{Tag: Code, Children: stmts})
}

// Branch allocates an if/else node; falseArm should be an empty Code node
// when the source had no `else`, per spec.md §4.3.
func (b *Builder) Branch(cond, trueArm, falseArm NodeID) NodeID {
	return b.Arena.New(Node{Tag: Branch, Children: []NodeID{cond}, L: trueArm, R: falseArm})
}

// While allocates a pre-test loop: Loop{L: cond, R: body}.
func (b *Builder) While(cond, body NodeID) NodeID {
	return b.Arena.New(Node{Tag: Loop, L: cond, R: body})
}

// DoWhile allocates a post-test loop: Loop{L: body (a Code), R: cond}.
func (b *Builder) DoWhile(body, cond NodeID) NodeID {
	return b.Arena.New(Node{Tag: Loop, L: body, R: cond})
}

// Iter allocates a C-style for: Children[init, cond, iter], L: body.
func (b *Builder) Iter(init, cond, iter, body NodeID) NodeID {
	return b.Arena.New(Node{Tag: Iter, Children: []NodeID{init, cond, iter}, L: body})
}

// Return allocates a return statement; pass NoNodeID for a void return.
func (b *Builder) Return(value NodeID) NodeID {
	n := Node{Tag: Return}
	if value.IsValid() {
		n.Children = []NodeID{value}
	}
	return b.Arena.New(n)
}

// Decl allocates a local declaration bound to sym, with an optional
// initializer (NoNodeID for none).
func (b *Builder) Decl(sym symbols.ID, init NodeID) NodeID {
	n := Node{Tag: Decl, Symbol: sym}
	if init.IsValid() {
		n.Children = []NodeID{init}
	}
	return b.Arena.New(n)
}

// IntLit allocates an integer literal.
func (b *Builder) IntLit(text string) NodeID {
	return b.Arena.New(Node{Tag: IntLit, Value: text})
}

// BoolLit allocates a boolean literal.
func (b *Builder) BoolLit(v bool) NodeID {
	text := "false"
	if v {
		text = "true"
	}
	return b.Arena.New(Node{Tag: BoolLit, Value: text})
}

// VarRef allocates a read of sym.
func (b *Builder) VarRef(sym symbols.ID) NodeID {
	return b.Arena.New(Node{Tag: VarRef, Symbol: sym})
}

// Binary allocates a binary operator node.
func (b *Builder) Binary(op string, lhs, rhs NodeID) NodeID {
	return b.Arena.New(Node{Tag: Binary, Value: op, L: lhs, R: rhs})
}

// Unary allocates a unary operator node.
func (b *Builder) Unary(op string, operand NodeID) NodeID {
	return b.Arena.New(Node{Tag: Unary, Value: op, Children: []NodeID{operand}})
}

// Call allocates a call to sym with the given arguments.
func (b *Builder) Call(sym symbols.ID, args ...NodeID) NodeID {
	return b.Arena.New(Node{Tag: Call, Symbol: sym, Children: args})
}

// Assign allocates an assignment statement.
func (b *Builder) Assign(target, value NodeID) NodeID {
	return b.Arena.New(Node{Tag: Assign, L: target, R: value})
}

// Expr wraps a value-tag node at statement position unchanged; the
// statement lowerer recognizes it via IsValueTag, not a distinct Tag.
func (b *Builder) Expr(value NodeID) NodeID {
	return value
}

// FnImpl allocates a function definition.
func (b *Builder) FnImpl(sym symbols.ID, body NodeID) NodeID {
	return b.Arena.New(Node{Tag: FnImpl, Symbol: sym, R: body})
}

// Module allocates a top-level driver node.
func (b *Builder) Module(decls ...NodeID) NodeID {
	return b.Arena.New(Node{Tag: Module, Children: decls})
}

// Using allocates a re-export; referent is NoNodeID for a forwardless import.
func (b *Builder) Using(referent NodeID) NodeID {
	return b.Arena.New(Node{Tag: Using, R: referent})
}
