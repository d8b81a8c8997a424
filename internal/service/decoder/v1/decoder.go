// Package decoder provides functionality for decoding secrets on behalf of users and keeping
// a history of decode attempts.
package decoder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync/atomic"
	"time"

	"github.com/speps/go-hashids/v2"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/metrics"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/codec"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/decoder"
	serviceErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/service/errors"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/modelcodec"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/storage/errors"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/modelstorage"
)

const SaltKey = "Some Hashing Key"
const MinLength = 8

// Check interface implementation explicitly
var (
	_ decoder.Processor = (*Decoder)(nil)
)

// Decoder struct defines data structure handling and provides support for adding new implementations.
type Decoder struct {
	seq       int64
	codec     codec.Decoder
	storage   storage.DecodeStorage
	metrics   *metrics.Recorder
	hashID    *hashids.HashID
	retention time.Duration
	now       func() time.Time
}

// InitDecoder initializes a Decoder object and sets its attributes. m may be nil.
func InitDecoder(c codec.Decoder, s storage.DecodeStorage, m *metrics.Recorder, cfg *config.Config) (*Decoder, error) {
	if c == nil {
		return nil, &serviceErrors.ServiceFoundNilCodec{Msg: "nil codec was passed to service initializer"}
	}
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	hd := hashids.NewData()
	hd.Salt = SaltKey
	hd.MinLength = MinLength
	hashID, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, &serviceErrors.ServiceInitHashError{Msg: err.Error()}
	}
	return &Decoder{
		codec:     c,
		storage:   s,
		metrics:   m,
		hashID:    hashID,
		retention: cfg.HistoryRetention,
		now:       time.Now,
	}, nil
}

// Decode runs the codec and stores a history record of the attempt. A failed decode is reported
// through the result; the error is reserved for storage problems.
func (d *Decoder) Decode(ctx context.Context, req modelcodec.DecodeRequest, userID string) (modelcodec.DecodeResult, string, error) {
	start := time.Now()
	result := d.codec.Decode(req)
	d.metrics.ObserveDecode(string(req.Scheme), result.Success, time.Since(start))
	recordID, err := d.record(ctx, req, result, userID)
	if err != nil {
		return result, "", err
	}
	return result, recordID, nil
}

// DecodeBatch decodes every item, preserving correlation IDs and order.
func (d *Decoder) DecodeBatch(ctx context.Context, items []modelcodec.BatchItem, userID string) ([]modelcodec.BatchResult, error) {
	results := make([]modelcodec.BatchResult, 0, len(items))
	for _, item := range items {
		result, recordID, err := d.Decode(ctx, item.Request, userID)
		if err != nil {
			return nil, err
		}
		results = append(results, modelcodec.BatchResult{
			CorrelationID: item.CorrelationID,
			RecordID:      recordID,
			Result:        result,
		})
	}
	return results, nil
}

// Schemes lists the supported schemes.
func (d *Decoder) Schemes() []modelcodec.Scheme {
	schemes := make([]modelcodec.Scheme, len(modelcodec.Schemes))
	copy(schemes, modelcodec.Schemes)
	return schemes
}

// HistoryByUserID retrieves all history records of a user.
func (d *Decoder) HistoryByUserID(ctx context.Context, userID string) ([]modelstorage.DecodeRecord, error) {
	return d.storage.RetrieveByUserID(ctx, userID)
}

// HistoryRecord retrieves one history record owned by userID.
func (d *Decoder) HistoryRecord(ctx context.Context, recordID string, userID string) (modelstorage.DecodeRecord, error) {
	record, err := d.storage.Retrieve(ctx, recordID)
	if err != nil {
		return modelstorage.DecodeRecord{}, err
	}
	if record.UserID != userID {
		return modelstorage.DecodeRecord{}, &storageErrors.NotFoundError{RecordID: recordID}
	}
	return record, nil
}

// DeleteHistory removes history records owned by userID.
func (d *Decoder) DeleteHistory(ctx context.Context, recordIDs []string, userID string) (int64, error) {
	if len(recordIDs) == 0 {
		return 0, nil
	}
	return d.storage.DeleteBatch(ctx, recordIDs, userID)
}

// GetStats retrieves history usage statistics.
func (d *Decoder) GetStats(ctx context.Context) (modelstorage.Stats, error) {
	return d.storage.GetStats(ctx)
}

// Prune removes history records older than the configured retention.
func (d *Decoder) Prune(ctx context.Context) (int64, error) {
	pruned, err := d.storage.Prune(ctx, d.now().Add(-d.retention))
	if err != nil {
		return 0, err
	}
	d.metrics.ObservePruned(pruned)
	return pruned, nil
}

// PingDB checks storage availability.
func (d *Decoder) PingDB() error {
	return d.storage.PingDB()
}

// record stores a history entry, regenerating the record ID once on collision.
func (d *Decoder) record(ctx context.Context, req modelcodec.DecodeRequest, result modelcodec.DecodeResult, userID string) (string, error) {
	fingerprint := sha256.Sum256([]byte(req.EncodedText))
	record := modelstorage.DecodeRecord{
		UserID:        userID,
		Scheme:        string(req.Scheme),
		Fingerprint:   hex.EncodeToString(fingerprint[:]),
		Success:       result.Success,
		FailureReason: result.FailureReason,
		CreatedAt:     d.now().UTC(),
	}
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		record.RecordID, err = d.generateRecordID()
		if err != nil {
			return "", &serviceErrors.ServiceEncodingHashError{Msg: err.Error()}
		}
		err = d.storage.Dump(ctx, record)
		var alreadyExistsError *storageErrors.AlreadyExistsError
		if !errors.As(err, &alreadyExistsError) {
			break
		}
	}
	if err != nil {
		return "", err
	}
	return record.RecordID, nil
}

// generateRecordID generates a short unique identifier for a history record.
func (d *Decoder) generateRecordID() (string, error) {
	seq := atomic.AddInt64(&d.seq, 1)
	return d.hashID.EncodeInt64([]int64{d.now().UnixNano(), seq})
}
