// Package grpc provides functionality for initializing a gRPC server for the secret decoding service.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/grpc/codecpb"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/grpc/handlers"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/grpc/interceptors"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/decoder"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/secretary/v1"
)

var (
	serverStart = time.Now()
)

// uptime returns time in seconds since the server start-up.
func uptime() int64 {
	return int64(time.Since(serverStart).Seconds())
}

// SecretCodecServer defines server methods and attributes.
type SecretCodecServer struct {
	codecpb.UnimplementedSecretCodecServer
	grpcHandler *handlers.GRPCHandler
}

// InitServer returns a SecretCodecServer object ready to be registered.
func InitServer(ctx context.Context, processor decoder.Processor) (server *SecretCodecServer, err error) {
	grpcHandler, err := handlers.InitGRPCHandler(processor)
	if err != nil {
		return nil, err
	}
	return &SecretCodecServer{grpcHandler: grpcHandler}, nil
}

// NewGRPCServer builds a grpc.Server with the subnet and auth interceptors and srv registered.
func NewGRPCServer(cfg *config.Config, srv *SecretCodecServer) (*grpc.Server, error) {
	secretaryService, err := secretary.NewSecretaryService(cfg)
	if err != nil {
		return nil, err
	}
	authHandler, err := interceptors.NewAuthHandler(secretaryService)
	if err != nil {
		return nil, err
	}
	subnetHandler := interceptors.NewSubnetHandler(cfg.TrustedSubnet, codecpb.GetStatsMethod)
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		subnetHandler.UnaryServerInterceptor(),
		authHandler.UnaryServerInterceptor(),
	))
	codecpb.RegisterSecretCodecServer(s, srv)
	return s, nil
}

// Decode is a GRPC method for decoding a device secret.
func (s *SecretCodecServer) Decode(ctx context.Context, request *structpb.Struct) (*structpb.Struct, error) {
	return s.grpcHandler.HandleDecode(ctx, request)
}

// ListSchemes is a GRPC method for listing supported vendor types.
func (s *SecretCodecServer) ListSchemes(_ context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return s.grpcHandler.HandleListSchemes()
}

// GetUptime is a GRPC method for getting server uptime data.
func (s *SecretCodecServer) GetUptime(_ context.Context, _ *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return wrapperspb.Int64(uptime()), nil
}

// GetHistory is a GRPC method for getting the caller's decode history.
func (s *SecretCodecServer) GetHistory(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return s.grpcHandler.HandleGetHistory(ctx)
}

// DeleteHistory is a GRPC method for deleting the caller's history records.
func (s *SecretCodecServer) DeleteHistory(ctx context.Context, request *structpb.ListValue) (*wrapperspb.Int64Value, error) {
	return s.grpcHandler.HandleDeleteHistory(ctx, request)
}

// GetStats is a GRPC method to retrieve history usage stats.
func (s *SecretCodecServer) GetStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.grpcHandler.HandleGetStats(ctx)
}

// PingDB is a GRPC method to check storage availability.
func (s *SecretCodecServer) PingDB(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return s.grpcHandler.HandlePingDB()
}
