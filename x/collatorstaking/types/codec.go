package types

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/collections"
)

// jsonValueCodec implements collections.ValueCodec[T] over plain JSON
// encoding. The teacher module stores protobuf-generated types and so
// reaches for codec.CollValue(cdc); collator staking's domain types are
// hand-written structs with no .proto counterpart, so this is the
// equivalent adapter for that case, built directly against the collections
// ValueCodec contract rather than against a protobuf BinaryCodec.
type jsonValueCodec[T any] struct {
	name string
}

// JSONValue returns a collections.ValueCodec[T] for a plain Go struct,
// named for diagnostics the way codec.CollValue's name shows up in schema
// introspection.
func JSONValue[T any](name string) collections.ValueCodec[T] {
	return jsonValueCodec[T]{name: name}
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("<%s: %v>", c.name, err)
	}
	return string(b)
}

func (c jsonValueCodec[T]) ValueType() string {
	return c.name
}
