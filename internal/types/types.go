// Package types is a small structural type table. It answers exactly the
// queries the lowering core needs from the type checker: sizes, alignments,
// and struct field layout. It carries no generics, no unions, no nominal
// method tables — those belong to the (external) front end.
package types

import "fmt"

// TypeID uniquely identifies a type inside an Interner.
type TypeID uint32

// NoTypeID marks the absence of a type (e.g. a void return).
const NoTypeID TypeID = 0

// Kind enumerates the closed set of type shapes the core understands.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	KindInt
	KindUint
	KindFloat
	KindPointer
	KindArray
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindPointer:
		return "pointer"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width captures the bit-width of a numeric primitive; 0 means "native int".
type Width uint8

const (
	WidthNative Width = 0
	Width8      Width = 8
	Width16     Width = 16
	Width32     Width = 32
	Width64     Width = 64
)

// Type is a compact descriptor for one entry in the interner.
type Type struct {
	Kind   Kind
	Width  Width  // KindInt / KindUint / KindFloat
	Elem   TypeID // KindPointer / KindArray element type
	Count  uint32 // KindArray length
	Struct StructID
}

// StructID indexes into an Interner's struct table.
type StructID uint32

// NoStructID marks a Type that is not a struct.
const NoStructID StructID = 0

// StructField is one member of a struct layout.
type StructField struct {
	Name   string
	Type   TypeID
	Offset int // byte offset within the struct, filled by SetStructLayout
}

// StructInfo describes a struct's fields and its overall size/align.
type StructInfo struct {
	Name   string
	Fields []StructField
	Size   int
	Align  int
}

// Builtins are the TypeIDs of the primitives every Interner seeds itself with.
type Builtins struct {
	Void  TypeID
	Bool  TypeID
	Int8  TypeID
	Int16 TypeID
	Int32 TypeID
	Int64 TypeID
	Int   TypeID
	Uint  TypeID
}

// Interner hands out stable TypeIDs for structurally-equal descriptors.
type Interner struct {
	entries  []Type
	index    map[Type]TypeID
	structs  []StructInfo
	builtins Builtins
}

// NewInterner creates an Interner seeded with the primitive builtins.
func NewInterner() *Interner {
	in := &Interner{index: make(map[Type]TypeID, 32)}
	in.entries = append(in.entries, Type{Kind: KindInvalid}) // reserve 0
	in.structs = append(in.structs, StructInfo{})            // reserve 0
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int8 = in.Intern(Type{Kind: KindInt, Width: Width8})
	in.builtins.Int16 = in.Intern(Type{Kind: KindInt, Width: Width16})
	in.builtins.Int32 = in.Intern(Type{Kind: KindInt, Width: Width32})
	in.builtins.Int64 = in.Intern(Type{Kind: KindInt, Width: Width64})
	in.builtins.Int = in.Intern(Type{Kind: KindInt, Width: WidthNative})
	in.builtins.Uint = in.Intern(Type{Kind: KindUint, Width: WidthNative})
	return in
}

// Builtins returns the interned primitive TypeIDs.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern returns the stable TypeID for t, interning it if new.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	if id, ok := in.index[t]; ok {
		return id
	}
	id := TypeID(len(in.entries))
	in.entries = append(in.entries, t)
	in.index[t] = id
	return id
}

// Lookup resolves a TypeID to its descriptor.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.entries) {
		return Type{}, false
	}
	return in.entries[id], true
}

// NewStruct registers a struct's fields (offsets not yet computed — an
// arch.Descriptor fills them in via SetStructLayout when asked for the
// struct's SizeOf) and returns its TypeID.
func (in *Interner) NewStruct(info StructInfo) TypeID {
	id := StructID(len(in.structs))
	in.structs = append(in.structs, info)
	return in.Intern(Type{Kind: KindStruct, Struct: id})
}

// StructInfo returns the struct layout for a KindStruct TypeID.
func (in *Interner) StructInfo(id TypeID) (*StructInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindStruct || int(t.Struct) >= len(in.structs) {
		return nil, false
	}
	return &in.structs[t.Struct], true
}

// SetStructLayout overwrites the computed size/align/offsets for a struct
// TypeID. Callers (normally an arch.Descriptor) own the layout algorithm.
func (in *Interner) SetStructLayout(id TypeID, size, align int, offsets []int) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindStruct || int(t.Struct) >= len(in.structs) {
		return
	}
	info := &in.structs[t.Struct]
	info.Size = size
	info.Align = align
	for i := range info.Fields {
		if i < len(offsets) {
			info.Fields[i].Offset = offsets[i]
		}
	}
}
