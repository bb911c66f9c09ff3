package crypt

import (
	"context"

	"github.com/kingwingfly/encrypt-config/backend"
)

// Backend decorates another backend with encryption: Write seals the
// payload, Read opens it. The inner store only ever sees ciphertext.
type Backend struct {
	Inner backend.Backend
	Enc   *Encrypter
}

var _ backend.Backend = Backend{}

func (b Backend) Read(ctx context.Context, name string) ([]byte, bool, error) {
	enc, ok, err := b.Inner.Read(ctx, name)
	if err != nil || !ok {
		return nil, ok, err
	}
	plain, err := b.Enc.Decrypt(enc)
	if err != nil {
		return nil, false, err
	}
	return plain, true, nil
}

func (b Backend) Write(ctx context.Context, name string, data []byte) error {
	enc, err := b.Enc.Encrypt(data)
	if err != nil {
		return err
	}
	return b.Inner.Write(ctx, name, enc)
}

func (b Backend) Delete(ctx context.Context, name string) error {
	return b.Inner.Delete(ctx, name)
}

func (b Backend) Close(ctx context.Context) error {
	return b.Inner.Close(ctx)
}
