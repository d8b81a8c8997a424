package interceptors

import (
	"context"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// SubnetHandler restricts a set of methods to peers from a trusted subnet.
type SubnetHandler struct {
	ipNet   *net.IPNet
	methods map[string]struct{}
}

// NewSubnetHandler initializes a subnet handler guarding methods. An empty or invalid subnet
// denies every guarded call.
func NewSubnetHandler(trustedSubnet string, methods ...string) *SubnetHandler {
	h := &SubnetHandler{methods: make(map[string]struct{}, len(methods))}
	for _, m := range methods {
		h.methods[m] = struct{}{}
	}
	_, ipNet, err := net.ParseCIDR(trustedSubnet)
	if err != nil {
		log.Println("Trusted network was not initialized:", err)
		return h
	}
	h.ipNet = ipNet
	return h
}

// UnaryServerInterceptor returns a new unary server interceptor that checks the peer address of
// guarded methods.
func (h *SubnetHandler) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if _, guarded := h.methods[info.FullMethod]; guarded && !h.trusted(ctx) {
			return nil, status.Error(codes.PermissionDenied, "Internal subnet access violation")
		}
		return handler(ctx, req)
	}
}

func (h *SubnetHandler) trusted(ctx context.Context) bool {
	if h.ipNet == nil {
		return false
	}
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return false
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return false
	}
	ip := net.ParseIP(host)
	return ip != nil && h.ipNet.Contains(ip)
}
