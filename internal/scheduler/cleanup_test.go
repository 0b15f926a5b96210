package scheduler

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guyitswalid/corefit/internal/tasks"
)

func setupClient(t *testing.T) *tasks.Client {
	t.Helper()

	cfg := tasks.DefaultConfig()
	cfg.Workers = 1

	client, err := tasks.NewClient(filepath.Join(t.TempDir(), "test.db"), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client
}

type recordingPruner struct {
	calls chan time.Time
}

func (p *recordingPruner) DeleteFinishedBefore(cutoff time.Time) (int64, error) {
	p.calls <- cutoff
	return 0, nil
}

func TestCleanupScheduler_StartStop(t *testing.T) {
	client := setupClient(t)
	scheduler := NewCleanupScheduler(client, "0 3 * * *", 30)

	require.NoError(t, scheduler.Start(context.Background()))
	assert.True(t, scheduler.IsRunning())
	require.NotNil(t, scheduler.GetNextRunTime())

	scheduler.Stop()
	assert.False(t, scheduler.IsRunning())
	assert.Nil(t, scheduler.GetNextRunTime())
}

func TestCleanupScheduler_InvalidSchedule(t *testing.T) {
	client := setupClient(t)
	scheduler := NewCleanupScheduler(client, "not a schedule", 30)

	err := scheduler.Start(context.Background())

	require.Error(t, err)
	assert.False(t, scheduler.IsRunning())
}

func TestCleanupScheduler_RunNow(t *testing.T) {
	client := setupClient(t)

	pruner := &recordingPruner{calls: make(chan time.Time, 1)}
	client.Register(tasks.NewCleanupImportRunsQueue(pruner))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	scheduler := NewCleanupScheduler(client, "0 3 * * *", 7)
	require.NoError(t, scheduler.RunNow())

	select {
	case cutoff := <-pruner.calls:
		expected := time.Now().Add(-7 * 24 * time.Hour)
		assert.WithinDuration(t, expected, cutoff, time.Minute)
	case <-time.After(5 * time.Second):
		t.Fatal("cleanup task was not executed within timeout")
	}
}
