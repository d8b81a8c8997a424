// Package interceptors provides various middleware functionality for GRPC.
package interceptors

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/secretary"
)

type contextKey string

// userIDKey is the context key holding the authenticated user ID.
const userIDKey contextKey = "userID"

// UserAuthKey sets a metadata key to be used in user identification.
const UserAuthKey = "user"

// AuthHandler sets object structure.
type AuthHandler struct {
	sec secretary.Secretary
}

// NewAuthHandler initializes a new auth handler.
func NewAuthHandler(sec secretary.Secretary) (*AuthHandler, error) {
	if sec == nil {
		return nil, errors.New("nil Secretary was passed to auth handler initializer")
	}
	return &AuthHandler{sec: sec}, nil
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID retrieves the authenticated user ID from ctx.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// AuthFunc identifies the caller by the token in the incoming metadata. Callers without a token
// get a new identity, returned as a non-empty token to be sent back in the response header.
func (a *AuthHandler) AuthFunc(ctx context.Context) (context.Context, string, error) {
	var values []string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values = md.Get(UserAuthKey)
	}
	if len(values) == 0 {
		userID := uuid.New().String()
		return WithUserID(ctx, userID), a.sec.Encode(userID), nil
	}
	userID, err := a.sec.Decode(values[0])
	if err != nil {
		return nil, "", status.Error(codes.PermissionDenied, err.Error())
	}
	return WithUserID(ctx, userID), "", nil
}

// UnaryServerInterceptor returns a new unary server interceptor that performs per-request auth.
func (a *AuthHandler) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		newCtx, token, err := a.AuthFunc(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			err = grpc.SendHeader(newCtx, metadata.New(map[string]string{UserAuthKey: token}))
			if err != nil {
				return nil, err
			}
		}
		return handler(newCtx, req)
	}
}
