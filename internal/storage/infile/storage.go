// Package infile provides data types and methods for local file storage operations.
package infile

import (
	"bufio"
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/storage/errors"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.DecodeStorage = (*Storage)(nil)
)

// Storage keeps records in memory and mirrors them to a JSON lines file.
type Storage struct {
	*inmemory.Storage
	mu      sync.Mutex
	Cfg     *config.Config
	file    *os.File
	Encoder *json.Encoder
}

// InitStorage initializes a Storage object, restores records from file and starts a listener
// closing the file once ctx is done.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config) (*Storage, error) {
	st := Storage{
		Storage: inmemory.InitStorage(),
		Cfg:     cfg,
	}
	if err := st.restore(); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(st.Cfg.FileStoragePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, &storageErrors.FileWriteError{Err: err}
	}
	st.file = file
	st.Encoder = json.NewEncoder(file)
	// use sync.WaitGroup to prevent goroutine premature termination when main exits
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.CloseDB(); err != nil {
			log.Println("File storage closure failed:", err)
			return
		}
		log.Println("File storage closed successfully")
	}()
	return &st, nil
}

// Dump stores a record in memory and appends it to the file. A record that could not be written to
// the file is removed from memory again, so both always hold the same records.
func (s *Storage) Dump(ctx context.Context, record modelstorage.DecodeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		log.Println("Dumping record:", err)
		return &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	if err := s.Storage.Put(record); err != nil {
		log.Println("Dumping record:", err)
		return err
	}
	if err := s.Encoder.Encode(&record); err != nil {
		log.Println("Dumping record to file:", err)
		s.Storage.Remove(record.RecordID)
		return &storageErrors.FileWriteError{Err: err}
	}
	return nil
}

// DeleteBatch removes records owned by userID and rewrites the file.
func (s *Storage) DeleteBatch(ctx context.Context, recordIDs []string, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted, err := s.Storage.DeleteBatch(ctx, recordIDs, userID)
	if err != nil || deleted == 0 {
		return deleted, err
	}
	return deleted, s.rewrite()
}

// Prune removes records created before the given moment and rewrites the file.
func (s *Storage) Prune(ctx context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pruned, err := s.Storage.Prune(ctx, before)
	if err != nil || pruned == 0 {
		return pruned, err
	}
	return pruned, s.rewrite()
}

// CloseDB closes the underlying file.
func (s *Storage) CloseDB() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// restore reads previously dumped records from file if it exists.
func (s *Storage) restore() error {
	file, err := os.Open(s.Cfg.FileStoragePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &storageErrors.FileReadError{Err: err}
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var record modelstorage.DecodeRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			return &storageErrors.FileReadError{Err: err}
		}
		s.Storage.DB[record.RecordID] = record
	}
	if err := scanner.Err(); err != nil {
		return &storageErrors.FileReadError{Err: err}
	}
	log.Println("File storage restored with", len(s.Storage.DB), "records")
	return nil
}

// rewrite replaces the file content with the current in-memory snapshot.
func (s *Storage) rewrite() error {
	if s.file == nil {
		return &storageErrors.FileWriteError{Err: os.ErrClosed}
	}
	if err := s.file.Truncate(0); err != nil {
		return &storageErrors.FileWriteError{Err: err}
	}
	for _, record := range s.Storage.Snapshot() {
		if err := s.Encoder.Encode(&record); err != nil {
			return &storageErrors.FileWriteError{Err: err}
		}
	}
	return nil
}
