package codecpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// SecretCodecClient is the client API for the SecretCodec service.
type SecretCodecClient interface {
	Decode(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListSchemes(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetUptime(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	GetHistory(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	DeleteHistory(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	GetStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	PingDB(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type secretCodecClient struct {
	cc grpc.ClientConnInterface
}

// NewSecretCodecClient wraps a client connection.
func NewSecretCodecClient(cc grpc.ClientConnInterface) SecretCodecClient {
	return &secretCodecClient{cc}
}

func (c *secretCodecClient) Decode(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, DecodeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *secretCodecClient) ListSchemes(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListSchemesMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *secretCodecClient) GetUptime(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, GetUptimeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *secretCodecClient) GetHistory(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, GetHistoryMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *secretCodecClient) DeleteHistory(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, DeleteHistoryMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *secretCodecClient) GetStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetStatsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *secretCodecClient) PingDB(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, PingDBMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
