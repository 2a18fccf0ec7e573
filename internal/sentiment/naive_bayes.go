package sentiment

import "math"

// NaiveBayes is a multinomial Naive Bayes classifier over TF-IDF weights with
// Laplace smoothing.
type NaiveBayes struct {
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

// NewNaiveBayes returns an untrained classifier.
func NewNaiveBayes() *NaiveBayes {
	return &NaiveBayes{}
}

func (nb *NaiveBayes) Name() string { return "naive_bayes" }

// Fit accumulates per-class feature mass and converts it to smoothed
// log-probabilities.
func (nb *NaiveBayes) Fit(X []Vector, y []int, numClasses, numFeatures int) {
	counts := classCounts(y, numClasses)
	featureMass := make([][]float64, numClasses)
	classTotal := make([]float64, numClasses)
	for c := range featureMass {
		featureMass[c] = make([]float64, numFeatures)
	}

	for i, vec := range X {
		c := y[i]
		for idx, w := range vec {
			featureMass[c][idx] += w
			classTotal[c] += w
		}
	}

	nb.ClassLogPrior = make([]float64, numClasses)
	nb.FeatureLogProb = make([][]float64, numClasses)
	total := float64(len(y))
	for c := 0; c < numClasses; c++ {
		nb.ClassLogPrior[c] = math.Log(float64(counts[c]) / total)
		nb.FeatureLogProb[c] = make([]float64, numFeatures)
		denom := classTotal[c] + float64(numFeatures)
		for j := 0; j < numFeatures; j++ {
			nb.FeatureLogProb[c][j] = math.Log((featureMass[c][j] + 1) / denom)
		}
	}
}

// PredictProba scores v against every class and normalizes the joint
// log-likelihoods into probabilities.
func (nb *NaiveBayes) PredictProba(v Vector) []float64 {
	scores := make([]float64, len(nb.ClassLogPrior))
	for c := range scores {
		score := nb.ClassLogPrior[c]
		for idx, w := range v {
			if idx < len(nb.FeatureLogProb[c]) {
				score += w * nb.FeatureLogProb[c][idx]
			}
		}
		scores[c] = score
	}
	return softmax(scores)
}
