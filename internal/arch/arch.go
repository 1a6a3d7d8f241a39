// Package arch is the architecture descriptor the lowering core consumes
// by interface only (spec.md §6): word size, symbol mangling, and the two
// named registers return-lowering touches. A real back end would supply a
// richer descriptor (instruction selection, calling-convention details
// beyond the hidden-pointer large-return rule); this one carries exactly
// what the core needs.
package arch

import (
	"fmt"

	"cflow/internal/regalloc"
	"cflow/internal/symbols"
	"cflow/internal/types"
)

// Descriptor is what the core and the storage planner read from the target.
type Descriptor interface {
	// WordSize is the natural pointer/integer width, in bytes.
	WordSize() int
	// Mangle assigns sym a non-empty linker label, idempotently.
	Mangle(sym *symbols.Symbol)
	// SizeOf returns the size in bytes of a type, per this target's layout.
	SizeOf(t types.TypeID) int
	// ReturnRegisterName names the architecture's return-value register.
	ReturnRegisterName() string
	// FramePointerName names the architecture's frame-pointer register.
	FramePointerName() string
	// GeneralPurposeAllocator returns a fresh allocator over this target's
	// scratch register bank, for one function lowering.
	GeneralPurposeAllocator() *regalloc.Allocator
}

// SysVx8664 implements the System V AMD64 ABI subset the core relies on:
// 8-byte words, integer return in RAX, frame pointer RBP.
type SysVx8664 struct {
	Types *types.Interner

	nextLabel int
}

// NewSysVx8664 builds a descriptor backed by the given type interner.
func NewSysVx8664(typesIn *types.Interner) *SysVx8664 {
	return &SysVx8664{Types: typesIn}
}

func (a *SysVx8664) WordSize() int { return 8 }

func (a *SysVx8664) Mangle(sym *symbols.Symbol) {
	if sym == nil || sym.Label != "" {
		return
	}
	a.nextLabel++
	sym.Label = fmt.Sprintf("_%s_%d", sym.Name, a.nextLabel)
}

func (a *SysVx8664) SizeOf(t types.TypeID) int {
	if a.Types == nil {
		return a.WordSize()
	}
	tt, ok := a.Types.Lookup(t)
	if !ok {
		return a.WordSize()
	}
	switch tt.Kind {
	case types.KindVoid:
		return 0
	case types.KindBool:
		return 1
	case types.KindInt, types.KindUint:
		if tt.Width == types.WidthNative {
			return a.WordSize()
		}
		return int(tt.Width) / 8
	case types.KindPointer:
		return a.WordSize()
	case types.KindArray:
		return int(tt.Count) * a.SizeOf(tt.Elem)
	case types.KindStruct:
		return a.layoutStruct(t)
	default:
		return a.WordSize()
	}
}

// layoutStruct computes and caches a struct's field offsets, size, and
// alignment using simple sequential packing with natural alignment.
func (a *SysVx8664) layoutStruct(t types.TypeID) int {
	info, ok := a.Types.StructInfo(t)
	if !ok {
		return a.WordSize()
	}
	if info.Size != 0 {
		return info.Size
	}
	offsets := make([]int, len(info.Fields))
	offset, maxAlign := 0, 1
	for i, f := range info.Fields {
		size := a.SizeOf(f.Type)
		align := size
		if align == 0 {
			align = 1
		}
		if align > 8 {
			align = 8
		}
		if maxAlign < align {
			maxAlign = align
		}
		if rem := offset % align; rem != 0 {
			offset += align - rem
		}
		offsets[i] = offset
		offset += size
	}
	if rem := offset % maxAlign; rem != 0 {
		offset += maxAlign - rem
	}
	a.Types.SetStructLayout(t, offset, maxAlign, offsets)
	return offset
}

func (a *SysVx8664) ReturnRegisterName() string { return "RAX" }
func (a *SysVx8664) FramePointerName() string   { return "RBP" }

func (a *SysVx8664) GeneralPurposeAllocator() *regalloc.Allocator {
	return regalloc.New([]string{"RAX", "RCX", "RDX", "RSI", "RDI", "R8", "R9", "R10", "R11"})
}
