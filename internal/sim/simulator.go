package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/aura24/internal/models"
)

// DefaultDelay is how long sensing appears to take before a batch is revealed.
const DefaultDelay = 2 * time.Second

// Simulator senses batches of nearby souls from an injected random source.
// It is not safe for concurrent use; the rng is owned by the caller's event loop.
type Simulator struct {
	rng   *rand.Rand
	delay time.Duration
}

func New(rng *rand.Rand, delay time.Duration) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if delay < 0 {
		delay = 0
	}
	return &Simulator{rng: rng, delay: delay}
}

// NewSeeded builds a simulator from a seed. Seed 0 means time-based.
func NewSeeded(seed int64, delay time.Duration) *Simulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(rand.New(rand.NewSource(seed)), delay)
}

func (s *Simulator) Delay() time.Duration { return s.delay }

// Simulate returns a fresh batch. Every soul is sampled independently.
func (s *Simulator) Simulate() []models.Soul {
	souls := make([]models.Soul, models.BatchSize)
	for i := range souls {
		souls[i] = models.Soul{
			ID:        fmt.Sprintf("soul-%d", i),
			AuraColor: models.AuraPalette[s.rng.Intn(len(models.AuraPalette))].Hex,
			Symbol:    models.Symbols[s.rng.Intn(len(models.Symbols))].ID,
			Distance:  models.MinDistance + s.rng.Float64()*(models.MaxDistance-models.MinDistance),
			Affinity:  s.rng.Intn(models.MaxAffinity),
			Bearing:   s.rng.Float64() * models.MaxBearing,
		}
	}
	return souls
}

// SimulateContext waits out the sensing delay and then returns a batch.
// Nothing is returned if ctx ends first.
func (s *Simulator) SimulateContext(ctx context.Context) ([]models.Soul, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return s.Simulate(), nil
}
