package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR serializes values using fxamacker/cbor. The zero value is NOT
// ready to use; construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core
// Deterministic) when byte-for-byte stable output matters — e.g. when the
// encrypted flavor is layered on top and re-encryption of unchanged config
// should be detectable. Otherwise PreferredUnsortedEncOptions are used.
// Time values are encoded as RFC3339Nano.
type CBOR[T any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[struct{}] = CBOR[struct{}]{}

// NewCBOR constructs a CBOR codec.
func NewCBOR[T any](deterministic bool) (CBOR[T], error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[T]{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR[T]{}, err
	}
	return CBOR[T]{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error. Handy for package-level
// source variables; prefer NewCBOR where an error can be handled.
func MustCBOR[T any](deterministic bool) CBOR[T] {
	c, err := NewCBOR[T](deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[T]) Encode(v T) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBOR[T]) Decode(b []byte) (T, error) {
	var v T
	err := c.dec.Unmarshal(b, &v)
	return v, err
}
