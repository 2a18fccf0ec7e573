package sentiment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// trainingFixture builds a small, clearly separable three-class problem.
func trainingFixture(t *testing.T) (*Vectorizer, []Vector, []int, []string) {
	t.Helper()

	texts := []string{
		"delicious tasty amazing wonderful food",
		"amazing delicious great wonderful meal",
		"tasty great amazing food loved it",
		"wonderful delicious loved the great dish",
		"terrible awful disgusting horrible food",
		"horrible awful worst terrible meal",
		"disgusting terrible worst awful dish",
		"awful horrible disgusting worst service",
		"okay average ordinary acceptable food",
		"ordinary okay acceptable average meal",
		"average ordinary okay acceptable dish",
		"acceptable average ordinary okay service",
	}
	labels := []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}

	v := NewVectorizer(2000)
	v.Fit(texts)

	X := make([]Vector, len(texts))
	for i, text := range texts {
		X[i] = v.Transform(text)
	}
	return v, X, labels, texts
}

func checkFamily(t *testing.T, clf Classifier) {
	t.Helper()

	v, X, y, texts := trainingFixture(t)
	clf.Fit(X, y, 3, v.NumFeatures())

	for i, text := range texts {
		probs := clf.PredictProba(v.Transform(text))
		require.Len(t, probs, 3)

		var sum float64
		best := 0
		for c, p := range probs {
			require.GreaterOrEqual(t, p, 0.0)
			sum += p
			if p > probs[best] {
				best = c
			}
		}
		require.InDelta(t, 1.0, sum, 1e-9)
		require.Equal(t, y[i], best, "family %s misclassified %q", clf.Name(), text)
	}
}

func TestNaiveBayesSeparatesClasses(t *testing.T) {
	checkFamily(t, NewNaiveBayes())
}

func TestLogisticRegressionSeparatesClasses(t *testing.T) {
	checkFamily(t, NewLogisticRegression())
}

func TestLinearSVMSeparatesClasses(t *testing.T) {
	checkFamily(t, NewLinearSVM())
}

func TestSoftmaxIsDistribution(t *testing.T) {
	probs := softmax([]float64{-1000, 0, 1000})
	require.Len(t, probs, 3)

	var sum float64
	for _, p := range probs {
		sum += p
	}
	require.InDelta(t, 1.0, sum, 1e-9)
	require.Greater(t, probs[2], probs[0])
}

func TestBalancedClassWeightsFavorMinority(t *testing.T) {
	y := []int{0, 0, 0, 0, 0, 0, 1, 1, 2}
	weights := balancedClassWeights(y, 3)
	require.Less(t, weights[0], weights[1])
	require.Less(t, weights[1], weights[2])
}
