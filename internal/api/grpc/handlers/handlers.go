// Package handlers provides gRPC handler functions for the secret decoding service.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/grpc/codecpb"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/grpc/interceptors"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/decoder"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/modelcodec"
	storageErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/storage/errors"
)

// GRPCHandler defines data structure handling and provides support for adding new implementations.
type GRPCHandler struct {
	processor decoder.Processor
	timeout   time.Duration
}

// InitGRPCHandler initializes a GRPCHandler object and sets its attributes.
func InitGRPCHandler(processor decoder.Processor) (*GRPCHandler, error) {
	if processor == nil {
		return nil, fmt.Errorf("nil Decoder Service was passed to service GRPC Handler initializer")
	}
	return &GRPCHandler{processor: processor, timeout: 500 * time.Millisecond}, nil
}

// HandleDecode decodes {"encryptedPassword","vendorType"} and responds with
// {"success","decryptedPassword","vendorType","recordId"}. A failed decode is reported as
// InvalidArgument carrying the failure reason, with the full response attached as a detail.
func (h *GRPCHandler) HandleDecode(ctx context.Context, request *structpb.Struct) (*structpb.Struct, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	userID, ok := interceptors.UserID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user is not identified")
	}
	fields := request.GetFields()
	vendorType := fields[codecpb.FieldVendorType].GetStringValue()
	req := modelcodec.DecodeRequest{
		EncodedText: fields[codecpb.FieldEncryptedPassword].GetStringValue(),
		Scheme:      modelcodec.Scheme(vendorType),
	}
	result, recordID, err := h.processor.Decode(ctx, req, userID)
	if err != nil {
		log.Println("HandleDecode:", err)
		return nil, storageStatus(err)
	}
	response, err := structpb.NewStruct(map[string]interface{}{
		codecpb.FieldSuccess:           result.Success,
		codecpb.FieldDecryptedPassword: result.Plaintext,
		codecpb.FieldVendorType:        vendorType,
		codecpb.FieldMessage:           result.FailureReason,
		codecpb.FieldRecordID:          recordID,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !result.Success {
		st, err := status.New(codes.InvalidArgument, result.FailureReason).WithDetails(response)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, result.FailureReason)
		}
		return nil, st.Err()
	}
	return response, nil
}

// HandleListSchemes lists supported vendor types.
func (h *GRPCHandler) HandleListSchemes() (*structpb.ListValue, error) {
	schemes := h.processor.Schemes()
	values := make([]interface{}, 0, len(schemes))
	for _, scheme := range schemes {
		values = append(values, string(scheme))
	}
	response, err := structpb.NewList(values)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return response, nil
}

// HandleGetHistory provides client with its decode history.
func (h *GRPCHandler) HandleGetHistory(ctx context.Context) (*structpb.ListValue, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	userID, ok := interceptors.UserID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user is not identified")
	}
	records, err := h.processor.HistoryByUserID(ctx, userID)
	if err != nil {
		log.Println("HandleGetHistory:", err)
		return nil, storageStatus(err)
	}
	if len(records) == 0 {
		return nil, status.Error(codes.NotFound, `No content available`)
	}
	values := make([]interface{}, 0, len(records))
	for _, record := range records {
		values = append(values, map[string]interface{}{
			codecpb.FieldRecordID:    record.RecordID,
			codecpb.FieldVendorType:  record.Scheme,
			codecpb.FieldFingerprint: record.Fingerprint,
			codecpb.FieldSuccess:     record.Success,
			codecpb.FieldMessage:     record.FailureReason,
			codecpb.FieldCreatedAt:   record.CreatedAt.Format(time.RFC3339Nano),
		})
	}
	response, err := structpb.NewList(values)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return response, nil
}

// HandleDeleteHistory removes the listed history records owned by the client.
func (h *GRPCHandler) HandleDeleteHistory(ctx context.Context, request *structpb.ListValue) (*wrapperspb.Int64Value, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	userID, ok := interceptors.UserID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user is not identified")
	}
	recordIDs := make([]string, 0, len(request.GetValues()))
	for _, value := range request.GetValues() {
		recordID, ok := value.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "record IDs must be strings")
		}
		recordIDs = append(recordIDs, recordID.StringValue)
	}
	deleted, err := h.processor.DeleteHistory(ctx, recordIDs, userID)
	if err != nil {
		log.Println("HandleDeleteHistory:", err)
		return nil, storageStatus(err)
	}
	return wrapperspb.Int64(deleted), nil
}

// HandleGetStats provides client with history statistics.
func (h *GRPCHandler) HandleGetStats(ctx context.Context) (*structpb.Struct, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	stats, err := h.processor.GetStats(ctx)
	if err != nil {
		log.Println("HandleGetStats:", err)
		return nil, storageStatus(err)
	}
	response, err := structpb.NewStruct(map[string]interface{}{
		codecpb.FieldRecords:   stats.Records,
		codecpb.FieldUsers:     stats.Users,
		codecpb.FieldSucceeded: stats.Succeeded,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return response, nil
}

// HandlePingDB handles storage pinging to check connection status.
func (h *GRPCHandler) HandlePingDB() (*emptypb.Empty, error) {
	if err := h.processor.PingDB(); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &emptypb.Empty{}, nil
}

// storageStatus maps storage errors onto gRPC status codes.
func storageStatus(err error) error {
	var contextTimeoutExceededError *storageErrors.ContextTimeoutExceededError
	var notFoundError *storageErrors.NotFoundError
	switch {
	case errors.As(err, &contextTimeoutExceededError):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.As(err, &notFoundError):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
