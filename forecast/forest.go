package forecast

import (
	"math"
	"math/rand"
)

// Ensemble hyperparameters are fixed: 100 bootstrap-sampled regression
// trees and a constant seed, so identical inputs always yield identical
// predictions. Determinism is part of the contract, not a convenience.
const (
	forestTrees  = 100
	randomSeed   = 42
	maxTreeDepth = 12
)

type treeNode struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

// fitTree grows a CART regression tree on the rows selected by idx,
// splitting greedily on the feature/threshold pair that minimises the
// summed squared error of the two sides.
func fitTree(X [][]float64, y []float64, idx []int, depth int) *treeNode {
	if depth <= 0 || len(idx) < 2 || constantTarget(y, idx) {
		return &treeNode{leaf: true, value: meanAt(y, idx)}
	}

	bestFeature, bestThreshold, bestSSE := -1, 0.0, math.Inf(1)
	nFeatures := len(X[idx[0]])
	for f := 0; f < nFeatures; f++ {
		for _, threshold := range candidateThresholds(X, idx, f) {
			sse, ok := splitSSE(X, y, idx, f, threshold)
			if ok && sse < bestSSE {
				bestFeature, bestThreshold, bestSSE = f, threshold, sse
			}
		}
	}
	if bestFeature < 0 {
		return &treeNode{leaf: true, value: meanAt(y, idx)}
	}

	var leftIdx, rightIdx []int
	for _, i := range idx {
		if X[i][bestFeature] <= bestThreshold {
			leftIdx = append(leftIdx, i)
		} else {
			rightIdx = append(rightIdx, i)
		}
	}
	return &treeNode{
		feature:   bestFeature,
		threshold: bestThreshold,
		left:      fitTree(X, y, leftIdx, depth-1),
		right:     fitTree(X, y, rightIdx, depth-1),
	}
}

func (n *treeNode) predict(x []float64) float64 {
	for !n.leaf {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

// candidateThresholds returns the midpoints between consecutive distinct
// values of feature f across the selected rows.
func candidateThresholds(X [][]float64, idx []int, f int) []float64 {
	seen := make(map[float64]struct{}, len(idx))
	values := make([]float64, 0, len(idx))
	for _, i := range idx {
		v := X[i][f]
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	if len(values) < 2 {
		return nil
	}
	// Insertion sort keeps this allocation-free; the feature space is tiny.
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
	thresholds := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		thresholds = append(thresholds, (values[i-1]+values[i])/2)
	}
	return thresholds
}

// splitSSE computes the summed squared error of partitioning the selected
// rows at threshold on feature f. Returns false when a side is empty.
func splitSSE(X [][]float64, y []float64, idx []int, f int, threshold float64) (float64, bool) {
	var nL, nR float64
	var sumL, sumR, sqL, sqR float64
	for _, i := range idx {
		v := y[i]
		if X[i][f] <= threshold {
			nL++
			sumL += v
			sqL += v * v
		} else {
			nR++
			sumR += v
			sqR += v * v
		}
	}
	if nL == 0 || nR == 0 {
		return 0, false
	}
	// SSE = Σy² − (Σy)²/n per side.
	return (sqL - sumL*sumL/nL) + (sqR - sumR*sumR/nR), true
}

func constantTarget(y []float64, idx []int) bool {
	for _, i := range idx[1:] {
		if y[i] != y[idx[0]] {
			return false
		}
	}
	return true
}

func meanAt(y []float64, idx []int) float64 {
	var sum float64
	for _, i := range idx {
		sum += y[i]
	}
	return sum / float64(len(idx))
}

// forestRegressor is a bagged ensemble of regression trees.
type forestRegressor struct {
	trees []*treeNode
}

// fitForest trains the ensemble: each tree sees a bootstrap sample of the
// rows drawn from rng.
func fitForest(X [][]float64, y []float64, rng *rand.Rand) *forestRegressor {
	n := len(y)
	forest := &forestRegressor{trees: make([]*treeNode, 0, forestTrees)}
	for t := 0; t < forestTrees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		forest.trees = append(forest.trees, fitTree(X, y, sample, maxTreeDepth))
	}
	return forest
}

func (f *forestRegressor) predict(x []float64) float64 {
	var sum float64
	for _, tree := range f.trees {
		sum += tree.predict(x)
	}
	return sum / float64(len(f.trees))
}

// trainTestSplit shuffles row indices and carves off testFrac of them for
// held-out evaluation.
func trainTestSplit(n int, testFrac float64, rng *rand.Rand) (train, test []int) {
	perm := rng.Perm(n)
	nTest := int(float64(n) * testFrac)
	if nTest < 1 && n > 1 {
		nTest = 1
	}
	return perm[nTest:], perm[:nTest]
}
