package sim

import (
	"math"

	"github.com/san-kum/aura24/internal/models"
)

// HistogramBins splits the affinity range into tenths.
const HistogramBins = 10

// Stats summarizes many scans.
type Stats struct {
	Batches      int
	Souls        int
	MinDistance  float64
	MaxDistance  float64
	MeanDistance float64
	MeanAffinity float64
	Reachable    int
	Resonant     int
	Histogram    [HistogramBins]int
}

func (st Stats) ReachableShare() float64 {
	if st.Souls == 0 {
		return 0
	}
	return float64(st.Reachable) / float64(st.Souls)
}

func (st Stats) ResonantShare() float64 {
	if st.Souls == 0 {
		return 0
	}
	return float64(st.Resonant) / float64(st.Souls)
}

// HistogramSeries returns the histogram as a float series for plotting.
func (st Stats) HistogramSeries() []float64 {
	out := make([]float64, HistogramBins)
	for i, n := range st.Histogram {
		out[i] = float64(n)
	}
	return out
}

func (st *Stats) Observe(batch []models.Soul) {
	if st.Souls == 0 {
		st.MinDistance = math.Inf(1)
		st.MaxDistance = math.Inf(-1)
	}
	st.Batches++
	for _, s := range batch {
		n := float64(st.Souls)
		st.MeanDistance = (st.MeanDistance*n + s.Distance) / (n + 1)
		st.MeanAffinity = (st.MeanAffinity*n + float64(s.Affinity)) / (n + 1)
		st.Souls++

		st.MinDistance = math.Min(st.MinDistance, s.Distance)
		st.MaxDistance = math.Max(st.MaxDistance, s.Distance)
		if s.Reachable() {
			st.Reachable++
		}
		if s.Resonant() {
			st.Resonant++
		}
		bin := s.Affinity * HistogramBins / models.MaxAffinity
		if bin >= HistogramBins {
			bin = HistogramBins - 1
		}
		if bin < 0 {
			bin = 0
		}
		st.Histogram[bin]++
	}
}

// Scan runs n batches without any sensing delay and summarizes them.
func (s *Simulator) Scan(n int) Stats {
	var st Stats
	for i := 0; i < n; i++ {
		st.Observe(s.Simulate())
	}
	return st
}
