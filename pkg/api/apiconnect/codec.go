// Package apiconnect wires the messages of package api to Connect handlers
// and clients.
//
// The services are served under the splitpayment.v1 package name, e.g.
// POST /splitpayment.v1.FolderService/CreateFolder, and speak JSON only.
package apiconnect

import (
	"bytes"
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// CodecName is the Connect codec name, which maps to application/json.
const CodecName = "json"

// jsonCodec marshals plain Go structs with encoding/json. Connect's built-in
// JSON codec only accepts protobuf messages.
type jsonCodec struct {
	name string
}

func (c jsonCodec) Name() string { return c.name }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal rejects unknown fields so a typo in a request never passes silently.
// An empty body decodes to the zero message.
func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		return fmt.Errorf("decode %T: %w", msg, err)
	}
	return nil
}

// WithJSON registers the JSON codec under both names Connect negotiates for
// application/json. Handlers and clients built by this package include it.
func WithJSON() connect.Option {
	return connect.WithOptions(
		connect.WithCodec(jsonCodec{name: CodecName}),
		connect.WithCodec(jsonCodec{name: CodecName + "; charset=utf-8"}),
	)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{WithJSON()}, opts...)
}

// The "; charset=utf-8" variant is only for handlers. A client sends with the
// last codec registered, so clients get the plain name alone.
func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(jsonCodec{name: CodecName})}, opts...)
}
