// Package codecpb describes the netdecoder.SecretCodec gRPC service. Messages are protobuf
// well-known types so that no generated message code is required.
package codecpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "netdecoder.SecretCodec"

// Field names of the decode request and response structs.
const (
	FieldEncryptedPassword = "encryptedPassword"
	FieldVendorType        = "vendorType"
	FieldSuccess           = "success"
	FieldDecryptedPassword = "decryptedPassword"
	FieldMessage           = "message"
	FieldRecordID          = "recordId"
	FieldFingerprint       = "fingerprint"
	FieldCreatedAt         = "createdAt"
	FieldRecords           = "records"
	FieldUsers             = "users"
	FieldSucceeded         = "succeeded"
)

// Full method names.
const (
	DecodeMethod        = "/" + ServiceName + "/Decode"
	ListSchemesMethod   = "/" + ServiceName + "/ListSchemes"
	GetUptimeMethod     = "/" + ServiceName + "/GetUptime"
	GetHistoryMethod    = "/" + ServiceName + "/GetHistory"
	DeleteHistoryMethod = "/" + ServiceName + "/DeleteHistory"
	GetStatsMethod      = "/" + ServiceName + "/GetStats"
	PingDBMethod        = "/" + ServiceName + "/PingDB"
)

// SecretCodecServer is the server API for the SecretCodec service.
type SecretCodecServer interface {
	Decode(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSchemes(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetUptime(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error)
	GetHistory(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	DeleteHistory(context.Context, *structpb.ListValue) (*wrapperspb.Int64Value, error)
	GetStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	PingDB(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// UnimplementedSecretCodecServer can be embedded to have forward compatible implementations.
type UnimplementedSecretCodecServer struct{}

func (UnimplementedSecretCodecServer) Decode(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Decode not implemented")
}
func (UnimplementedSecretCodecServer) ListSchemes(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSchemes not implemented")
}
func (UnimplementedSecretCodecServer) GetUptime(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUptime not implemented")
}
func (UnimplementedSecretCodecServer) GetHistory(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetHistory not implemented")
}
func (UnimplementedSecretCodecServer) DeleteHistory(context.Context, *structpb.ListValue) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteHistory not implemented")
}
func (UnimplementedSecretCodecServer) GetStats(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedSecretCodecServer) PingDB(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PingDB not implemented")
}

// RegisterSecretCodecServer registers srv on s.
func RegisterSecretCodecServer(s grpc.ServiceRegistrar, srv SecretCodecServer) {
	s.RegisterService(&SecretCodecServiceDesc, srv)
}

func _SecretCodec_Decode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SecretCodecServer).Decode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DecodeMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SecretCodecServer).Decode(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _SecretCodec_ListSchemes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SecretCodecServer).ListSchemes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListSchemesMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SecretCodecServer).ListSchemes(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _SecretCodec_GetUptime_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SecretCodecServer).GetUptime(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetUptimeMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SecretCodecServer).GetUptime(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _SecretCodec_GetHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SecretCodecServer).GetHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetHistoryMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SecretCodecServer).GetHistory(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _SecretCodec_DeleteHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SecretCodecServer).DeleteHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeleteHistoryMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SecretCodecServer).DeleteHistory(ctx, req.(*structpb.ListValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _SecretCodec_GetStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SecretCodecServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetStatsMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SecretCodecServer).GetStats(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _SecretCodec_PingDB_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SecretCodecServer).PingDB(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PingDBMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SecretCodecServer).PingDB(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// SecretCodecServiceDesc is the grpc.ServiceDesc for the SecretCodec service.
var SecretCodecServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SecretCodecServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Decode", Handler: _SecretCodec_Decode_Handler},
		{MethodName: "ListSchemes", Handler: _SecretCodec_ListSchemes_Handler},
		{MethodName: "GetUptime", Handler: _SecretCodec_GetUptime_Handler},
		{MethodName: "GetHistory", Handler: _SecretCodec_GetHistory_Handler},
		{MethodName: "DeleteHistory", Handler: _SecretCodec_DeleteHistory_Handler},
		{MethodName: "GetStats", Handler: _SecretCodec_GetStats_Handler},
		{MethodName: "PingDB", Handler: _SecretCodec_PingDB_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "netdecoder/secret_codec.proto",
}
