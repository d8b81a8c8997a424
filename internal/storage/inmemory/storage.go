// Package inmemory provides functionality for dumping/retrieving decode history records to/from local
// storage implemented as a map.
package inmemory

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/storage/errors"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.DecodeStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu sync.RWMutex
	DB map[string]modelstorage.DecodeRecord
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage() *Storage {
	db := make(map[string]modelstorage.DecodeRecord)
	return &Storage{DB: db}
}

// Retrieve returns a record stored under recordID.
func (s *Storage) Retrieve(ctx context.Context, recordID string) (modelstorage.DecodeRecord, error) {
	// create channels for listening to the go routine result
	retrieveDone := make(chan modelstorage.DecodeRecord, 1)
	retrieveError := make(chan error, 1)
	go func() {
		s.mu.RLock()
		defer s.mu.RUnlock()
		record, ok := s.DB[recordID]
		if !ok {
			retrieveError <- &storageErrors.NotFoundError{RecordID: recordID}
			return
		}
		retrieveDone <- record
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Retrieving record:", ctx.Err())
		return modelstorage.DecodeRecord{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case err := <-retrieveError:
		log.Println("Retrieving record:", err)
		return modelstorage.DecodeRecord{}, err
	case record := <-retrieveDone:
		return record, nil
	}
}

// RetrieveByUserID returns all records of one particular user ID, oldest first.
func (s *Storage) RetrieveByUserID(ctx context.Context, userID string) ([]modelstorage.DecodeRecord, error) {
	retrieveDone := make(chan []modelstorage.DecodeRecord, 1)
	go func() {
		s.mu.RLock()
		defer s.mu.RUnlock()
		var records []modelstorage.DecodeRecord
		for _, record := range s.DB {
			if record.UserID == userID {
				records = append(records, record)
			}
		}
		sortRecords(records)
		retrieveDone <- records
	}()

	select {
	case <-ctx.Done():
		log.Println("Retrieving records by user ID:", ctx.Err())
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case records := <-retrieveDone:
		return records, nil
	}
}

// Dump stores a record under its record ID.
func (s *Storage) Dump(ctx context.Context, record modelstorage.DecodeRecord) error {
	dumpError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.DB[record.RecordID]; ok {
			dumpError <- &storageErrors.AlreadyExistsError{RecordID: record.RecordID}
			return
		}
		s.DB[record.RecordID] = record
		dumpError <- nil
	}()

	select {
	case <-ctx.Done():
		log.Println("Dumping record:", ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case err := <-dumpError:
		if err != nil {
			log.Println("Dumping record:", err)
		}
		return err
	}
}

// Put stores a record synchronously, failing if its record ID is taken.
func (s *Storage) Put(record modelstorage.DecodeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.DB[record.RecordID]; ok {
		return &storageErrors.AlreadyExistsError{RecordID: record.RecordID}
	}
	s.DB[record.RecordID] = record
	return nil
}

// Remove deletes a record regardless of its owner.
func (s *Storage) Remove(recordID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.DB, recordID)
}

// DeleteBatch removes the given records owned by userID and reports how many were removed.
func (s *Storage) DeleteBatch(ctx context.Context, recordIDs []string, userID string) (int64, error) {
	deleteDone := make(chan int64, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		var deleted int64
		for _, recordID := range recordIDs {
			record, ok := s.DB[recordID]
			if ok && record.UserID == userID {
				delete(s.DB, recordID)
				deleted++
			}
		}
		deleteDone <- deleted
	}()

	select {
	case <-ctx.Done():
		log.Println("Deleting records:", ctx.Err())
		return 0, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case deleted := <-deleteDone:
		return deleted, nil
	}
}

// GetStats counts records, distinct users and successful decodes.
func (s *Storage) GetStats(ctx context.Context) (modelstorage.Stats, error) {
	statsDone := make(chan modelstorage.Stats, 1)
	go func() {
		s.mu.RLock()
		defer s.mu.RUnlock()
		users := map[string]struct{}{}
		stats := modelstorage.Stats{Records: len(s.DB)}
		for _, record := range s.DB {
			users[record.UserID] = struct{}{}
			if record.Success {
				stats.Succeeded++
			}
		}
		stats.Users = len(users)
		statsDone <- stats
	}()

	select {
	case <-ctx.Done():
		log.Println("Getting stats:", ctx.Err())
		return modelstorage.Stats{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case stats := <-statsDone:
		return stats, nil
	}
}

// Prune removes records created before the given moment.
func (s *Storage) Prune(ctx context.Context, before time.Time) (int64, error) {
	pruneDone := make(chan int64, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		var pruned int64
		for recordID, record := range s.DB {
			if record.CreatedAt.Before(before) {
				delete(s.DB, recordID)
				pruned++
			}
		}
		pruneDone <- pruned
	}()

	select {
	case <-ctx.Done():
		log.Println("Pruning records:", ctx.Err())
		return 0, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case pruned := <-pruneDone:
		return pruned, nil
	}
}

// Snapshot returns a copy of all records, oldest first.
func (s *Storage) Snapshot() []modelstorage.DecodeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]modelstorage.DecodeRecord, 0, len(s.DB))
	for _, record := range s.DB {
		records = append(records, record)
	}
	sortRecords(records)
	return records
}

// PingDB is a mock for PSQL DB pinger for inmemory DB handling.
func (s *Storage) PingDB() error {
	return nil
}

// CloseDB is a mock for PSQL DB closer for inmemory DB handling.
func (s *Storage) CloseDB() error {
	return nil
}

func sortRecords(records []modelstorage.DecodeRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].RecordID < records[j].RecordID
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}
