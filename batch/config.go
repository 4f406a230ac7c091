package batch

import "github.com/emilleishida/RESSPECT-1/sampler"

const (
	// DefaultChunkSize is the number of candidates scored per tile.
	DefaultChunkSize = 256

	// DefaultSampleBudget is the number of label draws taken per stochastic
	// pass when building a sample table.
	DefaultSampleBudget = 1000
)

// Config carries the tuning knobs shared by the joint entropy estimators.
// The zero value selects the defaults: tiles of DefaultChunkSize candidates,
// DefaultSampleBudget draws per pass and the process-global random
// generator.
type Config struct {
	ChunkSize    int            // candidates per scoring tile
	SampleBudget int            // draws per pass when sampling a joint table
	Src          sampler.Source // uniform variate source for those draws
}

// DefaultConfig returns a Config with every knob set to its default.
func DefaultConfig() Config {
	return Config{
		ChunkSize:    DefaultChunkSize,
		SampleBudget: DefaultSampleBudget,
	}
}

// resolved tile size
func (c Config) chunkSize() int {
	if c.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return c.ChunkSize
}

// resolved per-pass draw budget
func (c Config) sampleBudget() int {
	if c.SampleBudget <= 0 {
		return DefaultSampleBudget
	}
	return c.SampleBudget
}
