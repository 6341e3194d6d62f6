// Package codec encodes values whose bytes are hashed into lock keys. Implementations
// must be deterministic: equal values encode to equal bytes.
package codec

// Codec turns an arbitrary key value into bytes. Keys are only ever hashed, never
// read back, so there is no decoding half.
type Codec interface {
	// Marshal returns the encoding of v, or an error when v has no stable encoding
	// (channels, functions and the like).
	Marshal(v interface{}) ([]byte, error)
}
