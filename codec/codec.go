// Package codec (de)serializes configuration values for persisted sources.
// A Codec turns a value into the bytes a backend stores and back; which
// codec fits depends on the config's consumers (JSON for hand-editable
// files, CBOR/Msgpack for compactness, Protobuf for schema'd messages).
package codec

// Codec encodes/decodes configuration values T to []byte for storage.
type Codec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}
