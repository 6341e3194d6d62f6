package msgpack

import (
	"bytes"

	"github.com/pwnedgod/synchro/codec"
	"github.com/vmihailenco/msgpack/v5"
)

type msgpackCodec struct {
}

// NewCodec returns the default key codec. Structs are encoded field by field, so
// two struct keys collide only when every exported field matches.
func NewCodec() codec.Codec {
	return &msgpackCodec{}
}

// Marshal sorts map keys so that equal maps produce equal bytes.
func (c msgpackCodec) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
