// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NewWorkers ────────────────────────────────────────────────────────────────

func TestNewWorkers_ExplicitSizes(t *testing.T) {
	w := NewWorkers(config.Workers{GenerationWorkers: 2, CipherWorkers: 5}, metrics.Nop())

	assert.Equal(t, 2, w.Generation.Size())
	assert.Equal(t, 5, w.Cipher.Size())
	assert.Equal(t, LaneGeneration, w.Generation.Name())
	assert.Equal(t, LaneCipher, w.Cipher.Name())
}

func TestNewWorkers_Defaults(t *testing.T) {
	w := NewWorkers(config.Workers{}, nil)

	assert.GreaterOrEqual(t, w.Generation.Size(), 1)
	assert.GreaterOrEqual(t, w.Cipher.Size(), w.Generation.Size())
}

// ── Pool ──────────────────────────────────────────────────────────────────────

func TestPool_Do_ReturnsFnError(t *testing.T) {
	p := NewPool("test", 1, nil)
	want := errors.New("boom")

	err := p.Do(context.Background(), func() error { return want })

	assert.ErrorIs(t, err, want)
}

func TestPool_Do_BoundsConcurrency(t *testing.T) {
	const size = 3
	p := NewPool("test", size, metrics.Nop())

	var (
		running atomic.Int32
		peak    atomic.Int32
		wg      sync.WaitGroup
	)

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := p.Do(context.Background(), func() error {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(size))
	assert.Positive(t, peak.Load())
}

func TestPool_Do_ContextCancelledWhileWaiting(t *testing.T) {
	p := NewPool("test", 1, metrics.Nop())

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	err := p.Do(ctx, func() error {
		called = true
		return nil
	})
	close(release)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLaneUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called)
}

func TestPool_Do_RunsToCompletionAfterStart(t *testing.T) {
	p := NewPool("test", 1, nil)
	ctx, cancel := context.WithCancel(context.Background())

	finished := false
	err := p.Do(ctx, func() error {
		cancel()
		time.Sleep(5 * time.Millisecond)
		finished = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, finished)
}

// A saturated generation lane must not delay the cipher lane.
func TestWorkers_LanesAreIndependent(t *testing.T) {
	w := NewWorkers(config.Workers{GenerationWorkers: 1, CipherWorkers: 1}, metrics.Nop())

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = w.Generation.Do(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	done := false
	err := w.Cipher.Do(ctx, func() error {
		done = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, done)
}
