package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

type fakeActivityRepo struct {
	mu      sync.Mutex
	entries []models.ActivityEntry
	fail    int
	calls   int
	done    chan struct{}
}

func (f *fakeActivityRepo) Insert(_ context.Context, entry models.ActivityEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	defer func() {
		if f.done != nil {
			f.done <- struct{}{}
		}
	}()
	if f.fail > 0 {
		f.fail--
		return errors.New("insert failed")
	}
	f.entries = append(f.entries, entry)
	return nil
}

func waitFor(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d of %d signals", i, n)
		}
	}
}

func TestActivityServiceWritesEntry(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	repo := &fakeActivityRepo{done: make(chan struct{}, 4)}
	svc := NewActivityService(repo, nil, ActivityConfig{MaxRetries: 1, RetryDelay: time.Millisecond}, zap.NewNop())
	svc.Start(context.Background())
	defer svc.Stop()

	svc.Log(context.Background(), " aruiz@jcpao.org ", models.ActivityUpdatePhoto)
	waitFor(t, repo.done, 1)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Len(t, repo.entries, 1)
	assert.Equal(t, "aruiz@jcpao.org", repo.entries[0].WorkEmail)
	assert.Equal(t, models.ActivityUpdatePhoto, repo.entries[0].Activity)
}

func TestActivityServiceRetriesOnce(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	metrics := NewMetricsService()
	repo := &fakeActivityRepo{fail: 5, done: make(chan struct{}, 4)}
	svc := NewActivityService(repo, metrics, ActivityConfig{MaxRetries: 1, RetryDelay: time.Millisecond}, zap.NewNop())
	svc.Start(context.Background())
	defer svc.Stop()

	svc.Log(context.Background(), "aruiz@jcpao.org", models.ActivityLogin)
	waitFor(t, repo.done, 2)

	require.Eventually(t, func() bool {
		return metrics.Snapshot().ActivityDropped == 1
	}, time.Second, 5*time.Millisecond)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, 2, repo.calls)
	assert.Empty(t, repo.entries)
}

func TestActivityServiceStoresDatabaseLabel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	repo := &fakeActivityRepo{done: make(chan struct{}, 4)}
	svc := NewActivityService(repo, nil, ActivityConfig{RetryDelay: time.Millisecond}, zap.NewNop())
	svc.Start(context.Background())
	defer svc.Stop()

	svc.Log(context.Background(), "a@x.org", models.ActivityKind("UPDATE_PHOTO"))
	waitFor(t, repo.done, 1)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Len(t, repo.entries, 1)
	assert.Equal(t, models.ActivityUpdatePhoto, repo.entries[0].Activity)
}

func TestActivityServiceCapsConfiguredRetries(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	metrics := NewMetricsService()
	repo := &fakeActivityRepo{fail: 5, done: make(chan struct{}, 8)}
	svc := NewActivityService(repo, metrics, ActivityConfig{MaxRetries: 3, RetryDelay: time.Millisecond}, zap.NewNop())
	svc.Start(context.Background())
	defer svc.Stop()

	svc.Log(context.Background(), "aruiz@jcpao.org", models.ActivitySignUp)
	waitFor(t, repo.done, 2)

	require.Eventually(t, func() bool {
		return metrics.Snapshot().ActivityDropped == 1
	}, time.Second, 5*time.Millisecond)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, 2, repo.calls)
}

func TestActivityServiceIgnoresInvalidInput(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	repo := &fakeActivityRepo{}
	svc := NewActivityService(repo, nil, ActivityConfig{}, zap.NewNop())
	svc.Start(context.Background())

	svc.Log(context.Background(), "", models.ActivityLogin)
	svc.Log(context.Background(), "a@x.org", models.ActivityKind("DANCE"))
	svc.Stop()

	assert.Zero(t, repo.calls)
}

func TestActivityServiceNeverBlocksWhenStopped(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	metrics := NewMetricsService()
	svc := NewActivityService(&fakeActivityRepo{}, metrics, ActivityConfig{}, zap.NewNop())

	svc.Log(context.Background(), "a@x.org", models.ActivityLogin)
	assert.EqualValues(t, 1, metrics.Snapshot().ActivityDropped)
}
