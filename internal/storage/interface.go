// Package storage provides interfaces for types to be in compliance with.
package storage

import (
	"context"
	"time"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/modelstorage"
)

// RecordSetter defines a set of methods for types implementing RecordSetter.
type RecordSetter interface {
	Dump(ctx context.Context, record modelstorage.DecodeRecord) error
}

// RecordGetter defines a set of methods for types implementing RecordGetter.
type RecordGetter interface {
	Retrieve(ctx context.Context, recordID string) (record modelstorage.DecodeRecord, err error)
}

// RecordGetterByUserID defines a set of methods for types implementing RecordGetterByUserID.
type RecordGetterByUserID interface {
	RetrieveByUserID(ctx context.Context, userID string) (records []modelstorage.DecodeRecord, err error)
}

// RecordBatchDeleter defines a set of methods for types implementing RecordBatchDeleter.
type RecordBatchDeleter interface {
	DeleteBatch(ctx context.Context, recordIDs []string, userID string) (deleted int64, err error)
}

// StatsGetter defines a set of methods for types implementing StatsGetter.
type StatsGetter interface {
	GetStats(ctx context.Context) (stats modelstorage.Stats, err error)
}

// Pruner defines a set of methods for types implementing Pruner.
type Pruner interface {
	Prune(ctx context.Context, before time.Time) (pruned int64, err error)
}

// Pinger defines a set of methods for types implementing Pinger.
type Pinger interface {
	PingDB() error
}

// Closer defines a set of methods for types implementing Closer.
type Closer interface {
	CloseDB() error
}

// DecodeStorage defines a set of embedded interfaces for types implementing DecodeStorage.
type DecodeStorage interface {
	RecordSetter
	RecordGetter
	RecordGetterByUserID
	RecordBatchDeleter
	StatsGetter
	Pruner
	Pinger
	Closer
}
