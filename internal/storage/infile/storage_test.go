package infile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
	storageErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/storage/errors"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/modelstorage"
)

func newStorage(t *testing.T, path string) (*Storage, context.CancelFunc, *sync.WaitGroup) {
	cfg := config.NewDefaultConfiguration()
	cfg.FileStoragePath = path
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	st, err := InitStorage(ctx, wg, cfg)
	require.NoError(t, err)
	return st, cancel, wg
}

func TestStorage_RestoreAfterRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decodes.json")
	st, cancel, wg := newStorage(t, path)
	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, st.Dump(context.Background(), modelstorage.DecodeRecord{RecordID: "rec1", UserID: "user1", Success: true, CreatedAt: now}))
	require.NoError(t, st.Dump(context.Background(), modelstorage.DecodeRecord{RecordID: "rec2", UserID: "user1", CreatedAt: now}))
	cancel()
	wg.Wait()

	st, cancel, wg = newStorage(t, path)
	defer func() {
		cancel()
		wg.Wait()
	}()
	records, err := st.RetrieveByUserID(context.Background(), "user1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec1", records[0].RecordID)
	assert.True(t, records[0].CreatedAt.Equal(now))
}

func TestStorage_DeleteRewritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decodes.json")
	st, cancel, wg := newStorage(t, path)
	defer func() {
		cancel()
		wg.Wait()
	}()
	now := time.Now()
	require.NoError(t, st.Dump(context.Background(), modelstorage.DecodeRecord{RecordID: "rec1", UserID: "user1", CreatedAt: now}))
	require.NoError(t, st.Dump(context.Background(), modelstorage.DecodeRecord{RecordID: "rec2", UserID: "user1", CreatedAt: now}))

	deleted, err := st.DeleteBatch(context.Background(), []string{"rec1"}, "user1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"recordID":"rec2"`)
}

func TestStorage_PruneRewritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decodes.json")
	st, cancel, wg := newStorage(t, path)
	defer func() {
		cancel()
		wg.Wait()
	}()
	now := time.Now()
	require.NoError(t, st.Dump(context.Background(), modelstorage.DecodeRecord{RecordID: "old", UserID: "user1", CreatedAt: now.Add(-48 * time.Hour)}))
	require.NoError(t, st.Dump(context.Background(), modelstorage.DecodeRecord{RecordID: "new", UserID: "user1", CreatedAt: now}))

	pruned, err := st.Prune(context.Background(), now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), `"old"`)
	assert.Contains(t, string(content), `"new"`)
}

func TestInitStorage_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decodes.json")
	require.NoError(t, os.WriteFile(path, []byte("not json\n"), 0600))
	cfg := config.NewDefaultConfiguration()
	cfg.FileStoragePath = path
	_, err := InitStorage(context.Background(), &sync.WaitGroup{}, cfg)
	assert.Error(t, err)
}

func TestStorage_DumpRollsBackOnFileWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decodes.json")
	st, cancel, wg := newStorage(t, path)
	defer func() {
		cancel()
		wg.Wait()
	}()
	require.NoError(t, st.CloseDB())

	err := st.Dump(context.Background(), modelstorage.DecodeRecord{RecordID: "rec1", UserID: "user1", CreatedAt: time.Now()})
	var writeErr *storageErrors.FileWriteError
	require.True(t, errors.As(err, &writeErr))

	_, err = st.Retrieve(context.Background(), "rec1")
	var notFoundErr *storageErrors.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
	stats, err := st.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Records)
}

func TestStorage_DumpCanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decodes.json")
	st, cancel, wg := newStorage(t, path)
	defer func() {
		cancel()
		wg.Wait()
	}()
	ctx, cancelDump := context.WithCancel(context.Background())
	cancelDump()

	err := st.Dump(ctx, modelstorage.DecodeRecord{RecordID: "rec1", UserID: "user1", CreatedAt: time.Now()})
	var timeoutErr *storageErrors.ContextTimeoutExceededError
	require.True(t, errors.As(err, &timeoutErr))

	_, err = st.Retrieve(context.Background(), "rec1")
	assert.Error(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}
