package v1alpha1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
)

func TestCodecMessages(t *testing.T) {
	codec := jsonCodec{}

	data, err := codec.Marshal(&CloseSessionRequest{SessionID: "sess_1", Force: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sessionId":"sess_1","force":true}`, string(data))

	var req CloseSessionRequest
	require.NoError(t, codec.Unmarshal(data, &req))
	assert.Equal(t, CloseSessionRequest{SessionID: "sess_1", Force: true}, req)

	var empty Empty
	assert.NoError(t, codec.Unmarshal(nil, &empty))
}

func TestCodecProtoMessages(t *testing.T) {
	codec := jsonCodec{}

	data, err := codec.Marshal(&grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), "SERVING")

	var resp grpc_health_v1.HealthCheckResponse
	require.NoError(t, codec.Unmarshal(data, &resp))
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestOutgoingMetadata(t *testing.T) {
	ctx := WithLanguage(WithUser(context.Background(), "user_1"), "it")
	ctx = WithUser(ctx, "")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"user_1"}, md.Get(MetadataUserID))
	assert.Equal(t, []string{"it"}, md.Get(MetadataLanguage))
}
