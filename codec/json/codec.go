package json

import (
	"encoding/json"

	"github.com/pwnedgod/synchro/codec"
)

type jsonCodec struct {
}

// NewCodec returns a codec over encoding/json, which already writes map keys in
// sorted order.
func NewCodec() codec.Codec {
	return &jsonCodec{}
}

func (c jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
