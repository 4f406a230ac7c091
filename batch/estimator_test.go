package batch

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatorRegistry(t *testing.T) {
	for _, name := range []string{"exact", "sampled"} {
		ctor, err := GetEstimator(name)
		require.NoError(t, err, name)
		assert.NotNil(t, ctor(DefaultConfig()), name)
	}

	_, err := GetEstimator("nonesuch")
	assert.Error(t, err)
}

func TestExactJointLifecycle(t *testing.T) {
	selected := testCube(1, 2, 2, 71)
	candidates := testCube(3, 2, 2, 72)

	est := NewExactJoint(DefaultConfig()).(*ExactJoint)
	assert.Nil(t, est.Joint())
	assert.Equal(t, 0.0, est.Entropy())

	before, err := est.Score(candidates)
	require.NoError(t, err)
	direct, err := ExactEntropy(candidates, nil, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, direct, before)

	require.NoError(t, est.Fold(selected))
	rows, cols := est.Joint().Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Greater(t, est.Entropy(), 0.0)

	after, err := est.Score(candidates)
	require.NoError(t, err)
	scored, err := ExactEntropy(candidates, est.Joint(), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, scored, after)
}

func TestSampledJointLifecycle(t *testing.T) {
	selected := testCube(1, 2, 2, 73)
	candidates := testCube(3, 2, 2, 74)

	cfg := Config{SampleBudget: 200, Src: rand.New(rand.NewSource(75))}
	est := NewSampledJoint(cfg).(*SampledJoint)
	assert.Nil(t, est.Samples())
	assert.Equal(t, 0.0, est.Entropy())

	require.NoError(t, est.Fold(selected))
	rows, cols := est.Samples().Dims()
	assert.Equal(t, 400, rows)
	assert.Equal(t, 2, cols)
	assert.Greater(t, est.Entropy(), 0.0)

	scores, err := est.Score(candidates)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	for b, h := range scores {
		assert.False(t, math.IsNaN(h), "candidate %d", b)
		assert.Greater(t, h, 0.0, "candidate %d", b)
	}
}

func TestScoreBeforeFoldMatchesExact(t *testing.T) {
	candidates := testCube(4, 3, 2, 76)

	exactScores, err := NewExactJoint(DefaultConfig()).Score(candidates)
	require.NoError(t, err)
	sampledScores, err := NewSampledJoint(DefaultConfig()).Score(candidates)
	require.NoError(t, err)

	require.Len(t, sampledScores, 4)
	for b := 0; b < 4; b += 1 {
		assert.InDelta(t, exactScores[b], sampledScores[b], 1e-12, "candidate %d", b)
	}
}
