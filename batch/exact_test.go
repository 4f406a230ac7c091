package batch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/emilleishida/RESSPECT-1/tensor"
)

func TestJointEntropyIdentity(t *testing.T) {
	assert.Equal(t, 0.0, JointEntropy(IdentityJoint(5)))
}

func TestFoldZeroItems(t *testing.T) {
	joint, err := FoldItems(tensor.NewCube(0, 4, 2, nil), nil)

	require.NoError(t, err)
	rows, cols := joint.Dims()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 4, cols)
	for k := 0; k < 4; k += 1 {
		assert.Equal(t, 1.0, joint.At(0, k))
	}
}

func TestFoldFairCoin(t *testing.T) {
	probs := tensor.NewCube(1, 1, 2, []float64{0.5, 0.5})

	joint, err := FoldItems(probs, nil)

	require.NoError(t, err)
	rows, cols := joint.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 1, cols)
	assert.Equal(t, 0.5, joint.At(0, 0))
	assert.Equal(t, 0.5, joint.At(1, 0))
	assert.InDelta(t, math.Ln2, JointEntropy(joint), 1e-12)
}

func TestFoldOutcomeOrdering(t *testing.T) {
	probs := tensor.NewCube(2, 1, 2, []float64{
		0.3, 0.7,
		0.2, 0.8,
	})

	joint, err := FoldItems(probs, nil)

	require.NoError(t, err)
	rows, _ := joint.Dims()
	require.Equal(t, 4, rows)
	assert.InDelta(t, 0.3*0.2, joint.At(0, 0), 1e-15)
	assert.InDelta(t, 0.3*0.8, joint.At(1, 0), 1e-15)
	assert.InDelta(t, 0.7*0.2, joint.At(2, 0), 1e-15)
	assert.InDelta(t, 0.7*0.8, joint.At(3, 0), 1e-15)
}

func TestFoldMatchesChainedFolds(t *testing.T) {
	probs := testCube(3, 2, 2, 7)

	whole, err := FoldItems(probs, nil)
	require.NoError(t, err)

	var chained *mat.Dense
	for b := 0; b < 3; b += 1 {
		chained, err = FoldItems(probs.Slice(b, b+1), chained)
		require.NoError(t, err)
	}

	assert.True(t, mat.EqualApprox(whole, chained, 1e-15))
}

func TestFoldGrowth(t *testing.T) {
	probs := testCube(3, 2, 2, 11)

	joint, err := FoldItems(probs, nil)

	require.NoError(t, err)
	rows, cols := joint.Dims()
	assert.Equal(t, 8, rows)
	assert.Equal(t, 2, cols)
}

func TestFoldPassMismatch(t *testing.T) {
	probs := tensor.NewCube(1, 2, 2, nil)

	_, err := FoldItems(probs, IdentityJoint(3))

	assert.ErrorIs(t, err, ErrPassMismatch)
}

func TestExactEntropyKnownValues(t *testing.T) {
	probs := tensor.NewCube(2, 4, 2, nil)
	for k := 0; k < 4; k += 1 {
		probs.Set(0, k, 0, 0.9)
		probs.Set(0, k, 1, 0.1)
		probs.Set(1, k, 0, 0.5)
		probs.Set(1, k, 1, 0.5)
	}

	entropy, err := ExactEntropy(probs, nil, DefaultConfig())

	require.NoError(t, err)
	require.Len(t, entropy, 2)
	assert.InDelta(t, 0.3251, entropy[0], 1e-4)
	assert.InDelta(t, math.Ln2, entropy[1], 1e-12)
}

func TestExactEntropyChunkInvariance(t *testing.T) {
	probs := testCube(10, 3, 2, 21)
	prior, err := FoldItems(testCube(2, 3, 2, 22), nil)
	require.NoError(t, err)

	small, err := ExactEntropy(probs, prior, Config{ChunkSize: 3})
	require.NoError(t, err)
	big, err := ExactEntropy(probs, prior, Config{ChunkSize: 1024})
	require.NoError(t, err)

	assert.Equal(t, big, small)
}

func TestExactEntropyMatchesFoldedJoint(t *testing.T) {
	selected := testCube(2, 2, 3, 31)
	candidates := testCube(4, 2, 3, 32)

	prior, err := FoldItems(selected, nil)
	require.NoError(t, err)

	entropy, err := ExactEntropy(candidates, prior, DefaultConfig())
	require.NoError(t, err)

	for b := 0; b < 4; b += 1 {
		joint, err := FoldItems(candidates.Slice(b, b+1), prior)
		require.NoError(t, err)
		assert.InDelta(t, JointEntropy(joint), entropy[b], 1e-12, "candidate %d", b)
	}
}

func TestExactEntropyPassMismatch(t *testing.T) {
	probs := tensor.NewCube(1, 2, 2, nil)

	_, err := ExactEntropy(probs, IdentityJoint(3), DefaultConfig())

	assert.ErrorIs(t, err, ErrPassMismatch)
}
