package ml

import (
	"sort"
)

// node is a binary regression tree node, a leaf when left is nil.
type node struct {
	feature   int
	threshold float64
	value     float64
	left      *node
	right     *node
}

type treeConfig struct {
	maxDepth int
	minLeaf  int
}

// tree is a CART regression tree splitting on variance reduction.
type tree struct {
	root *node
}

const minGain = 1e-12

func growTree(x [][]float64, y []float64, idx []int, cfg treeConfig, importance []float64) *tree {
	return &tree{root: split(x, y, idx, cfg.maxDepth, cfg, importance)}
}

func split(x [][]float64, y []float64, idx []int, depth int, cfg treeConfig, importance []float64) *node {
	n := len(idx)
	var sum, sumSq float64
	for _, i := range idx {
		sum += y[i]
		sumSq += y[i] * y[i]
	}
	mean := sum / float64(n)
	sse := sumSq - sum*sum/float64(n)

	leaf := &node{value: mean}
	if depth <= 0 || n < 2*cfg.minLeaf || sse <= minGain {
		return leaf
	}

	bestGain := 0.0
	bestFeature := -1
	bestThreshold := 0.0
	sorted := make([]int, n)
	cols := len(x[idx[0]])

	for f := 0; f < cols; f++ {
		copy(sorted, idx)
		sort.Slice(sorted, func(a, b int) bool {
			return x[sorted[a]][f] < x[sorted[b]][f]
		})
		var lSum, lSumSq float64
		for k := 1; k < n; k++ {
			v := y[sorted[k-1]]
			lSum += v
			lSumSq += v * v
			if x[sorted[k]][f] == x[sorted[k-1]][f] {
				continue
			}
			if k < cfg.minLeaf || n-k < cfg.minLeaf {
				continue
			}
			rSum := sum - lSum
			rSumSq := sumSq - lSumSq
			lSSE := lSumSq - lSum*lSum/float64(k)
			rSSE := rSumSq - rSum*rSum/float64(n-k)
			gain := sse - lSSE - rSSE
			if gain > bestGain {
				bestGain = gain
				bestFeature = f
				bestThreshold = (x[sorted[k-1]][f] + x[sorted[k]][f]) / 2
			}
		}
	}

	if bestFeature < 0 || bestGain <= minGain {
		return leaf
	}
	if importance != nil {
		importance[bestFeature] += bestGain
	}

	left := make([]int, 0, n)
	right := make([]int, 0, n)
	for _, i := range idx {
		if x[i][bestFeature] <= bestThreshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return &node{
		feature:   bestFeature,
		threshold: bestThreshold,
		value:     mean,
		left:      split(x, y, left, depth-1, cfg, importance),
		right:     split(x, y, right, depth-1, cfg, importance),
	}
}

func (t *tree) predict(row []float64) float64 {
	n := t.root
	for n.left != nil {
		if row[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}
