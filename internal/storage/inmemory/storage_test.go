package inmemory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	storageErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/storage/errors"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/modelstorage"
)

type StorageTestSuite struct {
	suite.Suite
	storage *Storage
	now     time.Time
}

func (suite *StorageTestSuite) SetupTest() {
	suite.storage = InitStorage()
	suite.now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	records := []modelstorage.DecodeRecord{
		{RecordID: "rec1", UserID: "user1", Scheme: "cisco-type7", Success: true, CreatedAt: suite.now.Add(-2 * time.Hour)},
		{RecordID: "rec2", UserID: "user1", Scheme: "base64", FailureReason: "invalid Base64 format", CreatedAt: suite.now.Add(-time.Hour)},
		{RecordID: "rec3", UserID: "user2", Scheme: "generic-md5", Success: true, CreatedAt: suite.now},
	}
	for _, record := range records {
		require.NoError(suite.T(), suite.storage.Dump(context.Background(), record))
	}
}

func TestStorageTestSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (suite *StorageTestSuite) TestDump_AlreadyExists() {
	err := suite.storage.Dump(context.Background(), modelstorage.DecodeRecord{RecordID: "rec1"})
	var alreadyExistsError *storageErrors.AlreadyExistsError
	assert.True(suite.T(), errors.As(err, &alreadyExistsError))
}

func (suite *StorageTestSuite) TestRetrieve() {
	record, err := suite.storage.Retrieve(context.Background(), "rec2")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "invalid Base64 format", record.FailureReason)

	_, err = suite.storage.Retrieve(context.Background(), "missing")
	var notFoundError *storageErrors.NotFoundError
	assert.True(suite.T(), errors.As(err, &notFoundError))
}

func (suite *StorageTestSuite) TestRetrieveByUserID() {
	records, err := suite.storage.RetrieveByUserID(context.Background(), "user1")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), records, 2)
	assert.Equal(suite.T(), "rec1", records[0].RecordID)
	assert.Equal(suite.T(), "rec2", records[1].RecordID)

	records, err = suite.storage.RetrieveByUserID(context.Background(), "nobody")
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), records)
}

func (suite *StorageTestSuite) TestDeleteBatch() {
	deleted, err := suite.storage.DeleteBatch(context.Background(), []string{"rec1", "rec3", "missing"}, "user1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), deleted)
	_, err = suite.storage.Retrieve(context.Background(), "rec3")
	assert.NoError(suite.T(), err)
}

func (suite *StorageTestSuite) TestGetStats() {
	stats, err := suite.storage.GetStats(context.Background())
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), modelstorage.Stats{Records: 3, Users: 2, Succeeded: 2}, stats)
}

func (suite *StorageTestSuite) TestPrune() {
	pruned, err := suite.storage.Prune(context.Background(), suite.now.Add(-30*time.Minute))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), pruned)
	assert.Len(suite.T(), suite.storage.Snapshot(), 1)
}

func (suite *StorageTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var timeoutError *storageErrors.ContextTimeoutExceededError
	// the goroutine may win the race, so only check the error type when one is returned
	if _, err := suite.storage.GetStats(ctx); err != nil {
		assert.True(suite.T(), errors.As(err, &timeoutError))
	}
}

func (suite *StorageTestSuite) TestPutRemove() {
	err := suite.storage.Put(modelstorage.DecodeRecord{RecordID: "rec1", UserID: "user9"})
	var existsErr *storageErrors.AlreadyExistsError
	suite.True(errors.As(err, &existsErr))

	suite.Require().NoError(suite.storage.Put(modelstorage.DecodeRecord{RecordID: "rec4", UserID: "user9", CreatedAt: suite.now}))
	record, err := suite.storage.Retrieve(context.Background(), "rec4")
	suite.Require().NoError(err)
	suite.Equal("user9", record.UserID)

	suite.storage.Remove("rec4")
	_, err = suite.storage.Retrieve(context.Background(), "rec4")
	var notFoundErr *storageErrors.NotFoundError
	suite.True(errors.As(err, &notFoundErr))
}
