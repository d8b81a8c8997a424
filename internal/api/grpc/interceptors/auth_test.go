package interceptors

import (
	"context"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/grpc/codecpb"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/secretary/v1"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *secretary.Secretary) {
	cfg := config.NewDefaultConfiguration()
	cfg.UserKey = "jds__63h3_7ds"
	secretaryService, err := secretary.NewSecretaryService(cfg)
	require.NoError(t, err)
	authHandler, err := NewAuthHandler(secretaryService)
	require.NoError(t, err)
	return authHandler, secretaryService
}

// pingServer answers PingDB with the user ID it was called with in the response header.
type pingServer struct {
	codecpb.UnimplementedSecretCodecServer
	seen chan string
}

func (p *pingServer) PingDB(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	userID, _ := UserID(ctx)
	p.seen <- userID
	return &emptypb.Empty{}, nil
}

func startServer(t *testing.T, authHandler *AuthHandler) (codecpb.SecretCodecClient, *pingServer) {
	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := grpc.NewServer(grpc.UnaryInterceptor(authHandler.UnaryServerInterceptor()))
	srv := &pingServer{seen: make(chan string, 1)}
	codecpb.RegisterSecretCodecServer(s, srv)
	go s.Serve(listen)
	t.Cleanup(s.GracefulStop)
	conn, err := grpc.Dial(listen.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return codecpb.NewSecretCodecClient(conn), srv
}

func TestNewAuthHandler_NilSecretary(t *testing.T) {
	_, err := NewAuthHandler(nil)
	assert.Error(t, err)
}

func TestAuthHandler_AuthFunc_NoMD(t *testing.T) {
	authHandler, sec := newAuthHandler(t)
	newCtx, token, err := authHandler.AuthFunc(context.Background())
	require.NoError(t, err)
	userID, ok := UserID(newCtx)
	assert.True(t, ok)
	decoded, err := sec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, userID, decoded)
}

func TestAuthHandler_AuthFunc_EmptyMD(t *testing.T) {
	authHandler, _ := newAuthHandler(t)
	md := metadata.New(map[string]string{"some_key": "some_token"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	newCtx, token, err := authHandler.AuthFunc(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	_, ok := UserID(newCtx)
	assert.True(t, ok)
}

func TestAuthHandler_AuthFunc_CorrectMD(t *testing.T) {
	authHandler, sec := newAuthHandler(t)
	userID := uuid.New().String()
	md := metadata.New(map[string]string{UserAuthKey: sec.Encode(userID)})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	newCtx, token, err := authHandler.AuthFunc(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	got, ok := UserID(newCtx)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestAuthHandler_AuthFunc_IncorrectMD(t *testing.T) {
	authHandler, _ := newAuthHandler(t)
	md := metadata.New(map[string]string{UserAuthKey: "some_incorrect_token"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	newCtx, _, err := authHandler.AuthFunc(ctx)
	assert.Nil(t, newCtx)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestAuthHandler_UnaryServerInterceptor_NoMD(t *testing.T) {
	authHandler, sec := newAuthHandler(t)
	client, srv := startServer(t, authHandler)

	var header metadata.MD
	resp, err := client.PingDB(context.Background(), &emptypb.Empty{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.NotNil(t, resp)
	require.Len(t, header.Get(UserAuthKey), 1)
	userID, err := sec.Decode(header.Get(UserAuthKey)[0])
	require.NoError(t, err)
	assert.Equal(t, userID, <-srv.seen)
}

func TestAuthHandler_UnaryServerInterceptor_CorrectMD(t *testing.T) {
	authHandler, sec := newAuthHandler(t)
	client, srv := startServer(t, authHandler)

	userID := uuid.New().String()
	ctx := metadata.AppendToOutgoingContext(context.Background(), UserAuthKey, sec.Encode(userID))
	var header metadata.MD
	_, err := client.PingDB(ctx, &emptypb.Empty{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Empty(t, header.Get(UserAuthKey))
	assert.Equal(t, userID, <-srv.seen)
}

func TestAuthHandler_UnaryServerInterceptor_IncorrectMD(t *testing.T) {
	authHandler, _ := newAuthHandler(t)
	client, _ := startServer(t, authHandler)

	ctx := metadata.AppendToOutgoingContext(context.Background(), UserAuthKey, "some_incorrect_token")
	_, err := client.PingDB(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}
