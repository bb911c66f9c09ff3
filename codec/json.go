package codec

import "encoding/json"

// JSON serializes values with encoding/json. This is the default choice
// for file-persisted config: the on-disk form stays hand-editable.
type JSON[T any] struct{}

func (JSON[T]) Encode(v T) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
func (JSON[T]) Decode(b []byte) (T, error) {
	var v T
	err := json.Unmarshal(b, &v)
	return v, err
}
