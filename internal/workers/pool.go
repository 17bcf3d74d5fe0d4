package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"golang.org/x/sync/semaphore"
)

// Pool is a [Lane] backed by a weighted semaphore.
type Pool struct {
	name string
	size int
	sem  *semaphore.Weighted

	metrics *metrics.Metrics
}

// NewPool returns a lane with size slots. size below 1 is raised to 1.
func NewPool(name string, size int, m *metrics.Metrics) *Pool {
	if size < 1 {
		size = 1
	}
	if m == nil {
		m = metrics.Nop()
	}

	return &Pool{
		name:    name,
		size:    size,
		sem:     semaphore.NewWeighted(int64(size)),
		metrics: m,
	}
}

func (p *Pool) Do(ctx context.Context, fn func() error) error {
	start := time.Now()
	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.metrics.RecordLaneRejection(p.name)
		return fmt.Errorf("%w: %s: %w", ErrLaneUnavailable, p.name, err)
	}
	defer p.sem.Release(1)

	p.metrics.RecordLaneWait(p.name, time.Since(start))

	return fn()
}

func (p *Pool) Size() int {
	return p.size
}

func (p *Pool) Name() string {
	return p.name
}
