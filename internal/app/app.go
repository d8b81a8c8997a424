// Package app wires storage, codec, metrics and the decoder service shared by the binaries.
package app

import (
	"context"
	"sync"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/metrics"
	codec "github.com/danilovkiri/dk_go_secret_decoder/internal/service/codec/v1"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/decoder/v1"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/janitor"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/infile"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/inpsql"
)

// App holds the initialized service components.
type App struct {
	Config    *config.Config
	Storage   storage.DecodeStorage
	Metrics   *metrics.Recorder
	Processor *decoder.Decoder
	Janitor   *janitor.Janitor
}

// InitStorage switches between "inpsql", "infile" and "inmemory" modules. wg is released when
// the storage is closed after ctx is done.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config) (storage.DecodeStorage, error) {
	if cfg.DatabaseDSN == "" && cfg.FileStoragePath == "" {
		return inmemory.InitStorage(), nil
	}
	wg.Add(1)
	var st storage.DecodeStorage
	var err error
	if cfg.DatabaseDSN != "" {
		st, err = inpsql.InitStorage(ctx, wg, cfg)
	} else {
		st, err = infile.InitStorage(ctx, wg, cfg)
	}
	if err != nil {
		// the closing goroutine was never started
		wg.Done()
		return nil, err
	}
	return st, nil
}

// New initializes every component and schedules history pruning; the schedule stops once ctx
// is done.
func New(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config) (*App, error) {
	st, err := InitStorage(ctx, wg, cfg)
	if err != nil {
		return nil, err
	}
	recorder := metrics.NewRecorder()
	processor, err := decoder.InitDecoder(codec.NewSecretCodec(), st, recorder, cfg)
	if err != nil {
		return nil, err
	}
	j, err := janitor.NewJanitor(processor, cfg.PruneSchedule)
	if err != nil {
		return nil, err
	}
	j.Start(ctx)
	return &App{
		Config:    cfg,
		Storage:   st,
		Metrics:   recorder,
		Processor: processor,
		Janitor:   j,
	}, nil
}
