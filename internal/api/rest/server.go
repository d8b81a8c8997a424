// Package rest provides functionality for initializing a server for the secret decoding service.
package rest

import (
	"context"
	"expvar"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/rest/handlers"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/metrics"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/decoder"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/secretary/v1"
)

var (
	serverStart = time.Now()
)

func init() {
	expvar.Publish("system.uptime", expvar.Func(uptime))
}

// uptime returns time in seconds since the server start-up.
func uptime() interface{} {
	return int64(time.Since(serverStart).Seconds())
}

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(ctx context.Context, cfg *config.Config, processor decoder.Processor, recorder *metrics.Recorder) (server *http.Server, err error) {
	decodeHandler, err := handlers.InitDecodeHandler(processor, cfg)
	if err != nil {
		return nil, err
	}
	secretaryService, err := secretary.NewSecretaryService(cfg)
	if err != nil {
		return nil, err
	}
	cookieHandler, err := middleware.NewCookieHandler(secretaryService, cfg)
	if err != nil {
		return nil, err
	}
	trustedNetHandler := middleware.NewTrustedNetHandler(cfg)

	r := chi.NewRouter()
	if recorder != nil {
		r.Use(recorder.RequestsHandle)
		r.Handle("/metrics", recorder.Handler())
	}
	r.Get("/ping", decodeHandler.HandlePingDB())
	r.Mount("/debug", chiMiddleware.Profiler()) // see https://github.com/go-chi/chi/blob/master/middleware/profiler.go
	r.Group(func(r chi.Router) {
		r.Use(middleware.CompressHandle)
		r.Use(middleware.DecompressHandle)
		r.Get("/api/schemes", decodeHandler.HandleGetSchemes())
		r.With(trustedNetHandler.TrustedNetworkHandler).Get("/api/internal/stats", decodeHandler.HandleGetStats())
		r.Group(func(r chi.Router) {
			r.Use(cookieHandler.CookieHandle)
			r.Post("/api/decode", decodeHandler.HandlePostDecode())
			r.Post("/api/decode/batch", decodeHandler.HandlePostDecodeBatch())
			r.Get("/api/user/decodes", decodeHandler.HandleGetHistory())
			r.Get("/api/user/decodes/{recordID}", decodeHandler.HandleGetHistoryRecord())
			r.Delete("/api/user/decodes", decodeHandler.HandleDeleteHistory())
		})
	})

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
	return srv, nil
}
