package sentiment

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestArtifactRoundTrip(t *testing.T) {
	dir := t.TempDir()
	classifierPath := filepath.Join(dir, "sentiment_model.json")
	vectorizerPath := filepath.Join(dir, "vectorizer.json")

	v, X, y, _ := trainingFixture(t)
	clf := NewNaiveBayes()
	clf.Fit(X, y, 3, v.NumFeatures())

	artifact := ClassifierArtifact{
		RunID:     "run-1",
		TrainedAt: time.Now(),
		Labels:    []string{"Positive", "Negative", "Neutral"},
		Accuracy:  0.91,
	}
	require.NoError(t, SaveClassifier(classifierPath, artifact, clf))
	require.NoError(t, SaveVectorizer(vectorizerPath, v))

	model, err := LoadModel(classifierPath, vectorizerPath, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, []string{"Positive", "Negative", "Neutral"}, model.Labels())

	label, probs := model.Predict("delicious tasty amazing food")
	require.Equal(t, "Positive", label)
	require.Len(t, probs, 3)
}

func TestLoadClassifierPreservesFamily(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")

	v, X, y, _ := trainingFixture(t)
	trained := NewLogisticRegression()
	trained.Fit(X, y, 3, v.NumFeatures())

	require.NoError(t, SaveClassifier(path, ClassifierArtifact{RunID: "run-2", Labels: []string{"a", "b", "c"}}, trained))

	loaded, artifact, err := LoadClassifier(path)
	require.NoError(t, err)
	require.Equal(t, "logistic_regression", artifact.Family)

	vec := v.Transform("delicious tasty amazing food")
	want := trained.PredictProba(vec)
	got := loaded.PredictProba(vec)
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestLoadClassifierUnknownFamily(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"family":"decision_tree","labels":["a"],"params":{}}`), 0o644))

	_, _, err := LoadClassifier(path)
	require.ErrorContains(t, err, "unknown classifier family")
}

func TestLoadModelMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadModel(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing2.json"), zap.NewNop())
	require.Error(t, err)
}
