package settlement

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestScheduler_Tick(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(sweeper *MockSweeper, locker *MockLocker)
		expectedRan bool
		result      string
	}{
		{
			name: "Sweep runs under the cluster lock",
			prepareMock: func(sweeper *MockSweeper, locker *MockLocker) {
				released := false
				locker.EXPECT().Acquire(gomock.Any(), "settlement:sweep", gomock.Any()).
					Return(func() { released = true }, nil)
				sweeper.EXPECT().Sweep(gomock.Any()).DoAndReturn(func(ctx context.Context) (Report, error) {
					assert.False(t, released)
					return Report{Settled: 1}, nil
				})
			},
			expectedRan: true,
			result:      "ok",
		},
		{
			name: "Another instance holds the lock",
			prepareMock: func(sweeper *MockSweeper, locker *MockLocker) {
				locker.EXPECT().Acquire(gomock.Any(), "settlement:sweep", gomock.Any()).Return(nil, domain.ErrLockHeld)
			},
			expectedRan: false,
			result:      "skipped",
		},
		{
			name: "Failed sweep is counted",
			prepareMock: func(sweeper *MockSweeper, locker *MockLocker) {
				locker.EXPECT().Acquire(gomock.Any(), "settlement:sweep", gomock.Any()).Return(func() {}, nil)
				sweeper.EXPECT().Sweep(gomock.Any()).Return(Report{}, errors.New("db error"))
			},
			expectedRan: true,
			result:      "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sweeper := NewMockSweeper(ctrl)
			locker := NewMockLocker(ctrl)
			m := metrics.New()
			tt.prepareMock(sweeper, locker)

			s := NewScheduler(sweeper, locker, m, time.Minute)
			assert.Equal(t, tt.expectedRan, s.Tick(context.Background()))
			assert.Equal(t, 1.0, testutil.ToFloat64(m.Sweeps.WithLabelValues(tt.result)))
		})
	}
}

type blockingSweeper struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func (b *blockingSweeper) Sweep(ctx context.Context) (Report, error) {
	b.mu.Lock()
	b.calls++
	first := b.calls == 1
	b.mu.Unlock()
	if first {
		close(b.started)
		<-b.release
	}
	return Report{}, nil
}

func TestScheduler_OverlappingTickSkipped(t *testing.T) {
	sweeper := &blockingSweeper{started: make(chan struct{}), release: make(chan struct{})}
	s := NewScheduler(sweeper, NewLocalLocker(), nil, time.Minute)

	done := make(chan bool)
	go func() { done <- s.Tick(context.Background()) }()
	<-sweeper.started

	assert.False(t, s.Tick(context.Background()))
	close(sweeper.release)
	assert.True(t, <-done)

	assert.True(t, s.Tick(context.Background()))
	assert.Equal(t, 2, sweeper.calls)
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeper := NewMockSweeper(ctrl)
	ran := make(chan struct{}, 1)
	sweeper.EXPECT().Sweep(gomock.Any()).DoAndReturn(func(ctx context.Context) (Report, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return Report{}, nil
	}).MinTimes(1)

	s := NewScheduler(sweeper, NewLocalLocker(), nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("initial sweep did not run")
	}
	cancel()
	s.Wait()
}
