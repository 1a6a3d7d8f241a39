// Package fixture is the msgpack wire format cmd/cflow's lower subcommand
// reads: a fully type-checked AST, its symbol table, and the entry node to
// lower, bundled together since the parser and type checker that would
// normally produce this input stay out of scope (see spec.md §1).
package fixture

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"cflow/internal/ast"
	"cflow/internal/ir"
	"cflow/internal/symbols"
	"cflow/internal/types"
)

// Fixture is a serialized "a fully type-checked module, ready to lower".
type Fixture struct {
	Types   *types.Interner
	AST     *ast.Arena
	Symbols *symbols.Arena
	Entry   ast.NodeID
}

// Encode writes f to w as msgpack.
func Encode(w io.Writer, f *Fixture) error {
	return msgpack.NewEncoder(w).Encode(f)
}

// Decode reads a Fixture from r.
func Decode(r io.Reader) (*Fixture, error) {
	f := &Fixture{Types: types.NewInterner(), AST: ast.NewArena(), Symbols: symbols.NewArena()}
	if err := msgpack.NewDecoder(r).Decode(f); err != nil {
		return nil, err
	}
	return f, nil
}

// EncodeModule writes a lowered ir.Module to w as msgpack, the CLI's --out
// format: every field ir.Module/Func/Block/Instr carries is already
// exported, so no custom codec is needed on that side.
func EncodeModule(w io.Writer, m *ir.Module) error {
	return msgpack.NewEncoder(w).Encode(m)
}

// DecodeModule is the inverse of EncodeModule.
func DecodeModule(r io.Reader) (*ir.Module, error) {
	var m ir.Module
	if err := msgpack.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}
