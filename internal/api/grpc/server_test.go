package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/grpc/codecpb"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/grpc/interceptors"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
	codec "github.com/danilovkiri/dk_go_secret_decoder/internal/service/codec/v1"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/decoder/v1"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/inmemory"
)

func startServer(t *testing.T, trustedSubnet string) codecpb.SecretCodecClient {
	cfg := config.NewDefaultConfiguration()
	cfg.UserKey = "jds__63h3_7ds"
	cfg.TrustedSubnet = trustedSubnet
	processor, err := decoder.InitDecoder(codec.NewSecretCodec(), inmemory.InitStorage(), nil, cfg)
	require.NoError(t, err)
	server, err := InitServer(context.Background(), processor)
	require.NoError(t, err)
	s, err := NewGRPCServer(cfg, server)
	require.NoError(t, err)
	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go s.Serve(listen)
	t.Cleanup(s.GracefulStop)
	conn, err := grpc.Dial(listen.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return codecpb.NewSecretCodecClient(conn)
}

func TestServer_DecodeAndHistory(t *testing.T) {
	client := startServer(t, "")

	request, err := structpb.NewStruct(map[string]interface{}{
		codecpb.FieldEncryptedPassword: "094F471A1A0A",
		codecpb.FieldVendorType:        "cisco-type7",
	})
	require.NoError(t, err)
	var header metadata.MD
	response, err := client.Decode(context.Background(), request, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, "cisco", response.GetFields()[codecpb.FieldDecryptedPassword].GetStringValue())
	require.Len(t, header.Get(interceptors.UserAuthKey), 1)

	// the issued token identifies the same user on later calls
	ctx := metadata.AppendToOutgoingContext(context.Background(), interceptors.UserAuthKey, header.Get(interceptors.UserAuthKey)[0])
	history, err := client.GetHistory(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, history.GetValues(), 1)
	record := history.GetValues()[0].GetStructValue().GetFields()
	assert.Equal(t, response.GetFields()[codecpb.FieldRecordID].GetStringValue(), record[codecpb.FieldRecordID].GetStringValue())

	// a new identity has no history
	_, err = client.GetHistory(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_DecodeFailure(t *testing.T) {
	client := startServer(t, "")
	request, err := structpb.NewStruct(map[string]interface{}{
		codecpb.FieldEncryptedPassword: "0000000000000000000000000000000",
		codecpb.FieldVendorType:        "generic-md5",
	})
	require.NoError(t, err)
	_, err = client.Decode(context.Background(), request)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "hash not found in known passwords database", st.Message())
}

func TestServer_ListSchemesAndUptime(t *testing.T) {
	client := startServer(t, "")
	schemes, err := client.ListSchemes(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Len(t, schemes.GetValues(), 4)
	up, err := client.GetUptime(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, up.GetValue(), int64(0))
	_, err = client.PingDB(context.Background(), &emptypb.Empty{})
	assert.NoError(t, err)
}

func TestServer_GetStatsTrustedSubnet(t *testing.T) {
	client := startServer(t, "")
	_, err := client.GetStats(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	client = startServer(t, "127.0.0.0/8")
	stats, err := client.GetStats(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, float64(0), stats.GetFields()[codecpb.FieldRecords].GetNumberValue())
}
