package codec

import "fmt"

// Limit wraps another codec to enforce a maximum allowed payload size at
// Decode time; Encode is forwarded unchanged. If MaxDecode <= 0, limiting
// is disabled.
//
// Typical use: a persisted file or shared byte store is attacker- or
// operator-writable, and decoding an oversized blob should fail before it
// allocates.
type Limit[T any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[T]
	// MaxDecode is the maximum permitted payload length in bytes.
	MaxDecode int
}

func (c Limit[T]) Encode(v T) ([]byte, error) { return c.Inner.Encode(v) }
func (c Limit[T]) Decode(b []byte) (T, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero T
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
