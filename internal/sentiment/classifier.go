package sentiment

import "math"

// Classifier maps a feature vector to per-class probabilities. The class
// ordering is fixed by the label list stored next to the trained weights.
type Classifier interface {
	Name() string
	Fit(X []Vector, y []int, numClasses, numFeatures int)
	PredictProba(v Vector) []float64
}

// softmax converts raw scores into a probability distribution, subtracting the
// maximum score for numerical stability.
func softmax(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}
	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - best)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// classCounts tallies samples per class.
func classCounts(y []int, numClasses int) []int {
	counts := make([]int, numClasses)
	for _, label := range y {
		counts[label]++
	}
	return counts
}

// balancedClassWeights weights each class inversely to its frequency, so the
// synthetic Neutral minority is not drowned out by the binary majority.
func balancedClassWeights(y []int, numClasses int) []float64 {
	counts := classCounts(y, numClasses)
	weights := make([]float64, numClasses)
	total := float64(len(y))
	for c, n := range counts {
		if n > 0 {
			weights[c] = total / (float64(numClasses) * float64(n))
		}
	}
	return weights
}
