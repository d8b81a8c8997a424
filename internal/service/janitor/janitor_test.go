package janitor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPruner struct {
	calls int32
	err   error
}

func (p *countingPruner) Prune(ctx context.Context) (int64, error) {
	atomic.AddInt32(&p.calls, 1)
	return 1, p.err
}

func TestNewJanitor_InvalidSchedule(t *testing.T) {
	_, err := NewJanitor(&countingPruner{}, "not a schedule")
	assert.Error(t, err)
}

func TestJanitor_RunOnce(t *testing.T) {
	p := &countingPruner{}
	j, err := NewJanitor(p, "@hourly")
	require.NoError(t, err)
	j.RunOnce()
	p.err = errors.New("generic error")
	j.RunOnce()
	assert.Equal(t, int32(2), atomic.LoadInt32(&p.calls))
}

func TestJanitor_StartStop(t *testing.T) {
	j, err := NewJanitor(&countingPruner{}, "@every 1h")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	j.Start(ctx)
	assert.Len(t, j.cron.Entries(), 1)
	cancel()
}
