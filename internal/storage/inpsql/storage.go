// Package inpsql provides data types and methods for PostgreSQL storage operations.
package inpsql

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/lib/pq"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
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
	Cfg *config.Config
	DB  *sql.DB
}

// InitStorage initializes a Storage object, creates the table and starts a listener closing the
// connection pool once ctx is done.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config) (*Storage, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	st := Storage{
		Cfg: cfg,
		DB:  db,
	}
	if err := st.createTable(ctx); err != nil {
		return nil, err
	}
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.CloseDB(); err != nil {
			log.Println("PSQL DB connection closure failed:", err)
			return
		}
		log.Println("PSQL DB connection closed successfully")
	}()
	return &st, nil
}

// Dump inserts a record.
func (s *Storage) Dump(ctx context.Context, record modelstorage.DecodeRecord) error {
	query := `INSERT INTO decodes (record_id, user_id, scheme, fingerprint, success, failure_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.DB.ExecContext(ctx, query, record.RecordID, record.UserID, record.Scheme, record.Fingerprint,
		record.Success, record.FailureReason, record.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return &storageErrors.AlreadyExistsError{RecordID: record.RecordID, Err: err}
		}
		return s.wrap(ctx, &storageErrors.ExecutionPSQLError{Err: err})
	}
	return nil
}

// Retrieve returns the record stored under recordID.
func (s *Storage) Retrieve(ctx context.Context, recordID string) (modelstorage.DecodeRecord, error) {
	query := `SELECT record_id, user_id, scheme, fingerprint, success, failure_reason, created_at
		FROM decodes WHERE record_id = $1`
	var record modelstorage.DecodeRecord
	err := s.DB.QueryRowContext(ctx, query, recordID).Scan(&record.RecordID, &record.UserID, &record.Scheme,
		&record.Fingerprint, &record.Success, &record.FailureReason, &record.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return modelstorage.DecodeRecord{}, &storageErrors.NotFoundError{RecordID: recordID, Err: err}
	}
	if err != nil {
		return modelstorage.DecodeRecord{}, s.wrap(ctx, &storageErrors.ScanningPSQLError{Err: err})
	}
	return record, nil
}

// RetrieveByUserID returns all records of one particular user ID, oldest first.
func (s *Storage) RetrieveByUserID(ctx context.Context, userID string) ([]modelstorage.DecodeRecord, error) {
	query := `SELECT record_id, user_id, scheme, fingerprint, success, failure_reason, created_at
		FROM decodes WHERE user_id = $1 ORDER BY created_at, record_id`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, s.wrap(ctx, &storageErrors.ExecutionPSQLError{Err: err})
	}
	defer rows.Close()
	var records []modelstorage.DecodeRecord
	for rows.Next() {
		var record modelstorage.DecodeRecord
		err = rows.Scan(&record.RecordID, &record.UserID, &record.Scheme, &record.Fingerprint, &record.Success,
			&record.FailureReason, &record.CreatedAt)
		if err != nil {
			return nil, &storageErrors.ScanningPSQLError{Err: err}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, s.wrap(ctx, &storageErrors.ScanningPSQLError{Err: err})
	}
	return records, nil
}

// DeleteBatch removes the given records owned by userID.
func (s *Storage) DeleteBatch(ctx context.Context, recordIDs []string, userID string) (int64, error) {
	query := "DELETE FROM decodes WHERE user_id = $1 AND record_id = ANY($2)"
	res, err := s.DB.ExecContext(ctx, query, userID, pq.Array(recordIDs))
	if err != nil {
		return 0, s.wrap(ctx, &storageErrors.ExecutionPSQLError{Err: err})
	}
	return res.RowsAffected()
}

// GetStats counts records, distinct users and successful decodes.
func (s *Storage) GetStats(ctx context.Context) (modelstorage.Stats, error) {
	query := "SELECT COUNT(*), COUNT(DISTINCT user_id), COUNT(*) FILTER (WHERE success) FROM decodes"
	var stats modelstorage.Stats
	err := s.DB.QueryRowContext(ctx, query).Scan(&stats.Records, &stats.Users, &stats.Succeeded)
	if err != nil {
		return modelstorage.Stats{}, s.wrap(ctx, &storageErrors.ScanningPSQLError{Err: err})
	}
	return stats, nil
}

// Prune removes records created before the given moment.
func (s *Storage) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM decodes WHERE created_at < $1", before)
	if err != nil {
		return 0, s.wrap(ctx, &storageErrors.ExecutionPSQLError{Err: err})
	}
	return res.RowsAffected()
}

// PingDB checks the connection pool.
func (s *Storage) PingDB() error {
	return s.DB.Ping()
}

// CloseDB closes the connection pool.
func (s *Storage) CloseDB() error {
	return s.DB.Close()
}

// wrap reports a cancelled context in place of the driver error.
func (s *Storage) wrap(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	}
	return err
}

// createTable creates a table for PSQL DB storage if not exist.
func (s *Storage) createTable(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS decodes (
		id bigserial not null,
		record_id text not null unique,
		user_id uuid not null,
		scheme text not null,
		fingerprint text not null,
		success boolean not null,
		failure_reason text not null default '',
		created_at timestamptz not null
	);`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return err
	}
	_, err := s.DB.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS decodes_user_id_idx ON decodes (user_id)")
	return err
}
