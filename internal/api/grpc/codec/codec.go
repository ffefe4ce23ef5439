// Package codec registers the JSON wire codec used by the mermory gRPC API.
//
// Messages are plain Go structs with json tags, so the API needs no protoc
// step. Clients select the codec with grpc.CallContentSubtype(codec.Name).
package codec

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name is the gRPC content-subtype of the codec.
const Name = "json"

// JSON marshals gRPC messages with encoding/json.
type JSON struct{}

func init() {
	encoding.RegisterCodec(JSON{})
}

// Marshal implements encoding.Codec.
func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements encoding.Codec. An empty payload leaves v untouched.
func (JSON) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// Name implements encoding.Codec.
func (JSON) Name() string {
	return Name
}
