package sentiment

// LinearSVM is a one-vs-rest linear classifier trained with hinge-loss SGD.
// Class probabilities are a softmax over the per-class margins, which keeps
// the classifier interchangeable with the probabilistic families.
type LinearSVM struct {
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`

	Epochs       int     `json:"epochs"`
	LearningRate float64 `json:"learning_rate"`
	Lambda       float64 `json:"lambda"`
}

// NewLinearSVM returns an untrained classifier with default training
// hyperparameters.
func NewLinearSVM() *LinearSVM {
	return &LinearSVM{
		Epochs:       50,
		LearningRate: 0.5,
		Lambda:       1e-4,
	}
}

func (svm *LinearSVM) Name() string { return "linear_svm" }

// Fit trains one binary hinge-loss separator per class against the rest,
// with balanced class weighting on the positive side.
func (svm *LinearSVM) Fit(X []Vector, y []int, numClasses, numFeatures int) {
	svm.Weights = make([][]float64, numClasses)
	svm.Bias = make([]float64, numClasses)
	for c := range svm.Weights {
		svm.Weights[c] = make([]float64, numFeatures)
	}
	classWeights := balancedClassWeights(y, numClasses)

	for epoch := 0; epoch < svm.Epochs; epoch++ {
		step := svm.LearningRate / (1 + 0.1*float64(epoch))
		for i, vec := range X {
			for c := 0; c < numClasses; c++ {
				target := -1.0
				sampleWeight := 1.0
				if y[i] == c {
					target = 1.0
					sampleWeight = classWeights[c]
				}
				margin := svm.Bias[c]
				weights := svm.Weights[c]
				for idx, w := range vec {
					margin += weights[idx] * w
				}
				if target*margin < 1 {
					for idx, w := range vec {
						weights[idx] += step * (sampleWeight*target*w - svm.Lambda*weights[idx])
					}
					svm.Bias[c] += step * sampleWeight * target
				} else {
					for idx := range vec {
						weights[idx] -= step * svm.Lambda * weights[idx]
					}
				}
			}
		}
	}
}

// PredictProba returns a softmax over the per-class margins.
func (svm *LinearSVM) PredictProba(v Vector) []float64 {
	margins := make([]float64, len(svm.Bias))
	for c := range margins {
		margin := svm.Bias[c]
		weights := svm.Weights[c]
		for idx, w := range v {
			if idx < len(weights) {
				margin += weights[idx] * w
			}
		}
		margins[c] = margin
	}
	return softmax(margins)
}
