// Package source provides the building blocks a configuration type
// composes into its LoadOrDefault/Save methods — the Source capability the
// cache consumes.
//
// The three flavors:
//
//   - normal: not persisted at all. Nothing to compose; LoadOrDefault
//     fills in defaults and Save returns nil.
//
//   - persisted: a named slot in a backend plus a codec.
//
//     var counterSlot = source.Persist[Counter]{
//     	Name:    "counter.json",
//     	Backend: files, // *backend.File
//     	Codec:   codec.JSON[Counter]{},
//     }
//
//     func (c *Counter) LoadOrDefault() {
//     	*c = Counter{} // defaults first
//     	counterSlot.Load(c) // best-effort overlay
//     }
//     func (c *Counter) Save() error { return counterSlot.Save(c) }
//
//   - secret: the same, with the backend wrapped in encryption; see Secret.
//
// Load failures never propagate out of LoadOrDefault — a missing,
// corrupted or undecryptable payload degrades to the defaults. Save
// failures do propagate; they surface through explicit Save/Flush calls
// and through the write-back failure hooks at eviction.
package source

import (
	"context"

	"github.com/kingwingfly/encrypt-config/backend"
	"github.com/kingwingfly/encrypt-config/codec"
	"github.com/kingwingfly/encrypt-config/crypt"
)

// Persist ties a config type to a named slot in a byte store plus a codec.
type Persist[T any] struct {
	Name    string
	Backend backend.Backend
	Codec   codec.Codec[T]
}

// Load decodes the persisted value into v, reporting whether a usable
// payload existed. On miss or failure v is left untouched, so a caller
// that filled v with defaults first keeps them.
func (p Persist[T]) Load(v *T) (bool, error) {
	b, ok, err := p.Backend.Read(context.Background(), p.Name)
	if err != nil || !ok {
		return false, err
	}
	decoded, err := p.Codec.Decode(b)
	if err != nil {
		return false, err
	}
	*v = decoded
	return true, nil
}

// Save encodes v and replaces the slot's content.
func (p Persist[T]) Save(v *T) error {
	b, err := p.Codec.Encode(*v)
	if err != nil {
		return err
	}
	return p.Backend.Write(context.Background(), p.Name, b)
}

// Delete removes the slot's content. The next Load reports a miss.
func (p Persist[T]) Delete() error {
	return p.Backend.Delete(context.Background(), p.Name)
}

// Secret builds the encrypted flavor: a Persist whose backend seals every
// payload with enc before it reaches b.
func Secret[T any](name string, b backend.Backend, c codec.Codec[T], enc *crypt.Encrypter) Persist[T] {
	return Persist[T]{Name: name, Backend: crypt.Backend{Inner: b, Enc: enc}, Codec: c}
}
