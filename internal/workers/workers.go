package workers

import (
	"errors"
	"runtime"

	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
)

// Lane names, also used as metrics labels.
const (
	LaneGeneration = "generation"
	LaneCipher     = "cipher"
)

// ErrLaneUnavailable is returned when the context ends before a slot frees up.
var ErrLaneUnavailable = errors.New("worker lane unavailable")

// Workers groups the two lanes used by the service layer.
type Workers struct {
	Generation Lane
	Cipher     Lane
}

// NewWorkers sizes the lanes from cfg. A zero count picks a default derived
// from GOMAXPROCS: half the CPUs for generation, all of them for ciphering.
func NewWorkers(cfg config.Workers, m *metrics.Metrics) *Workers {
	cpus := runtime.GOMAXPROCS(0)

	generation := cfg.GenerationWorkers
	if generation <= 0 {
		generation = max(1, cpus/2)
	}

	cipher := cfg.CipherWorkers
	if cipher <= 0 {
		cipher = max(1, cpus)
	}

	return &Workers{
		Generation: NewPool(LaneGeneration, generation, m),
		Cipher:     NewPool(LaneCipher, cipher, m),
	}
}
