// Package v1alpha1 defines the fabula.v1alpha1 PlayerService wire contract:
// JSON messages carried over gRPC with the "json" content subtype.
package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content subtype of every PlayerService call
const CodecName = "json"

// Metadata keys read by the server
const (
	MetadataUserID   = "x-user-id"
	MetadataLanguage = "x-language"
)

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec encodes PlayerService messages with encoding/json. Protobuf
// messages, such as health checks made with the same content subtype, use
// protojson.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if m, ok := v.(proto.Message); ok {
		return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

// CallOption selects the JSON codec for a call
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}

// WithUser attaches the caller identity to an outgoing context
func WithUser(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, MetadataUserID, userID)
}

// WithLanguage attaches a language preference to an outgoing context
func WithLanguage(ctx context.Context, language string) context.Context {
	if language == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, MetadataLanguage, language)
}
