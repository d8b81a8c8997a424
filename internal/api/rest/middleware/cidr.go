// Package middleware provides various middleware functionality.
package middleware

import (
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
)

// TrustedNetHandler sets object structure.
type TrustedNetHandler struct {
	Resolved bool
	IPNet    *net.IPNet
}

// NewTrustedNetHandler initializes a new trusted network handler. An empty or invalid subnet
// denies every request.
func NewTrustedNetHandler(cfg *config.Config) *TrustedNetHandler {
	_, ipnet, err := net.ParseCIDR(cfg.TrustedSubnet)
	if err != nil {
		log.Println("Trusted network was not initialized:", err)
		return &TrustedNetHandler{}
	}
	return &TrustedNetHandler{
		Resolved: true,
		IPNet:    ipnet,
	}
}

// TrustedNetworkHandler lets through requests originating from the trusted subnet only.
func (tn *TrustedNetHandler) TrustedNetworkHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !tn.Resolved || !tn.trusted(r) {
			http.Error(w, "Internal subnet access violation", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// trusted checks the peer address first, then X-Real-IP and the first X-Forwarded-For entry.
func (tn *TrustedNetHandler) trusted(r *http.Request) bool {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		if ip := net.ParseIP(host); ip != nil && tn.IPNet.Contains(ip) {
			return true
		}
	}
	candidate := r.Header.Get("X-Real-IP")
	if candidate == "" {
		candidate = strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0])
	}
	ip := net.ParseIP(candidate)
	return ip != nil && tn.IPNet.Contains(ip)
}
