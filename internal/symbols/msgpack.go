package symbols

import "github.com/vmihailenco/msgpack/v5"

// EncodeMsgpack lets an Arena round-trip through msgpack (cmd/cflow's
// fixture format) without exposing entries as a public field.
func (a *Arena) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(a.entries)
}

// DecodeMsgpack is the inverse of EncodeMsgpack.
func (a *Arena) DecodeMsgpack(dec *msgpack.Decoder) error {
	return dec.Decode(&a.entries)
}
