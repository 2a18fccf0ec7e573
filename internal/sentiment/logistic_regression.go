package sentiment

// LogisticRegression is a multinomial softmax classifier trained with
// per-sample stochastic gradient descent and balanced class weights.
type LogisticRegression struct {
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`

	Epochs       int     `json:"epochs"`
	LearningRate float64 `json:"learning_rate"`
}

// NewLogisticRegression returns an untrained classifier with default training
// hyperparameters.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		Epochs:       50,
		LearningRate: 0.5,
	}
}

func (lr *LogisticRegression) Name() string { return "logistic_regression" }

// Fit runs SGD over the cross-entropy loss. Samples are visited in dataset
// order each epoch; the caller shuffles the training split once up front.
func (lr *LogisticRegression) Fit(X []Vector, y []int, numClasses, numFeatures int) {
	lr.Weights = make([][]float64, numClasses)
	lr.Bias = make([]float64, numClasses)
	for c := range lr.Weights {
		lr.Weights[c] = make([]float64, numFeatures)
	}
	classWeights := balancedClassWeights(y, numClasses)

	for epoch := 0; epoch < lr.Epochs; epoch++ {
		// Decay keeps late epochs from oscillating.
		step := lr.LearningRate / (1 + 0.1*float64(epoch))
		for i, vec := range X {
			target := y[i]
			probs := lr.scores(vec)
			sampleWeight := classWeights[target]
			for c := 0; c < numClasses; c++ {
				grad := probs[c]
				if c == target {
					grad -= 1
				}
				grad *= sampleWeight
				lr.Bias[c] -= step * grad
				for idx, w := range vec {
					lr.Weights[c][idx] -= step * grad * w
				}
			}
		}
	}
}

func (lr *LogisticRegression) scores(v Vector) []float64 {
	raw := make([]float64, len(lr.Bias))
	for c := range raw {
		score := lr.Bias[c]
		weights := lr.Weights[c]
		for idx, w := range v {
			if idx < len(weights) {
				score += weights[idx] * w
			}
		}
		raw[c] = score
	}
	return softmax(raw)
}

// PredictProba returns the softmax class distribution for v.
func (lr *LogisticRegression) PredictProba(v Vector) []float64 {
	return lr.scores(v)
}
