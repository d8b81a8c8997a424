// Package decoder provides interfaces for types to be in compliance with.
package decoder

import (
	"context"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/modelcodec"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/modelstorage"
)

// Processor defines a set of methods for types implementing Processor.
type Processor interface {
	Decode(ctx context.Context, req modelcodec.DecodeRequest, userID string) (result modelcodec.DecodeResult, recordID string, err error)
	DecodeBatch(ctx context.Context, items []modelcodec.BatchItem, userID string) (results []modelcodec.BatchResult, err error)
	Schemes() []modelcodec.Scheme
	HistoryByUserID(ctx context.Context, userID string) (records []modelstorage.DecodeRecord, err error)
	HistoryRecord(ctx context.Context, recordID string, userID string) (record modelstorage.DecodeRecord, err error)
	DeleteHistory(ctx context.Context, recordIDs []string, userID string) (deleted int64, err error)
	GetStats(ctx context.Context) (stats modelstorage.Stats, err error)
	Prune(ctx context.Context) (pruned int64, err error)
	PingDB() error
}
