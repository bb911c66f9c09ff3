package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack serializes values using vmihailenco/msgpack/v5. The zero value
// is ready to use.
//
// Compact and fast; mind the struct tag differences vs JSON. Use
// `msgpack:"fieldName"` tags for explicit control.
type Msgpack[T any] struct{}

func (Msgpack[T]) Encode(v T) ([]byte, error) {
	return msgpack.Marshal(v)
}
func (Msgpack[T]) Decode(b []byte) (T, error) {
	var v T
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
