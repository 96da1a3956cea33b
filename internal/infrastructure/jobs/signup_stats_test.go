package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type signupCounterStub struct {
	mu    sync.Mutex
	count int64
	err   error
	calls int
}

func (s *signupCounterStub) Count(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.count, s.err
}

func (s *signupCounterStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type gaugeStub struct {
	mu   sync.Mutex
	last int64
	sets int
}

func (g *gaugeStub) SetStoredSignups(n int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last = n
	g.sets++
}

func (g *gaugeStub) Sets() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sets
}

func TestNewSignupStatsJob_DefaultInterval(t *testing.T) {
	job := NewSignupStatsJob(&signupCounterStub{}, &gaugeStub{}, 0)
	require.Equal(t, time.Minute, job.interval)
	require.NotNil(t, job.stop)
}

func TestRefresh_SetsGauge(t *testing.T) {
	repo := &signupCounterStub{count: 42}
	gauge := &gaugeStub{}
	job := NewSignupStatsJob(repo, gauge, time.Millisecond)

	job.refresh(context.Background())
	require.Equal(t, int64(42), gauge.last)
	require.Equal(t, 1, gauge.sets)
}

func TestRefresh_CountError(t *testing.T) {
	repo := &signupCounterStub{err: errors.New("db down")}
	gauge := &gaugeStub{}
	job := NewSignupStatsJob(repo, gauge, time.Millisecond)

	job.refresh(context.Background())
	require.Equal(t, 1, repo.calls)
	require.Equal(t, 0, gauge.sets)
}

func TestStartStop_StopsByContext(t *testing.T) {
	repo := &signupCounterStub{count: 1}
	gauge := &gaugeStub{}
	job := NewSignupStatsJob(repo, gauge, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return repo.Calls() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on context cancel")
	}
	require.GreaterOrEqual(t, gauge.Sets(), 2)
}

func TestStartStop_StopsByStopSignal(t *testing.T) {
	job := NewSignupStatsJob(&signupCounterStub{}, &gaugeStub{}, time.Hour)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()

	job.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on stop signal")
	}
}
