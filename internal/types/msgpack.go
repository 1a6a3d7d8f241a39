package types

import "github.com/vmihailenco/msgpack/v5"

// wireInterner is the on-the-wire shape of an Interner: the index map is
// rebuilt on decode rather than serialized, since it is pure derived state.
type wireInterner struct {
	Entries  []Type
	Structs  []StructInfo
	Builtins Builtins
}

// EncodeMsgpack lets an Interner round-trip through msgpack (cmd/cflow's
// fixture format) without exposing its derived index map.
func (in *Interner) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(wireInterner{Entries: in.entries, Structs: in.structs, Builtins: in.builtins})
}

// DecodeMsgpack is the inverse of EncodeMsgpack; it rebuilds the
// structural-equality index from the decoded entries.
func (in *Interner) DecodeMsgpack(dec *msgpack.Decoder) error {
	var w wireInterner
	if err := dec.Decode(&w); err != nil {
		return err
	}
	in.entries = w.Entries
	in.structs = w.Structs
	in.builtins = w.Builtins
	in.index = make(map[Type]TypeID, len(in.entries))
	for id, t := range in.entries {
		if t.Kind == KindInvalid {
			continue
		}
		in.index[t] = TypeID(id)
	}
	return nil
}
